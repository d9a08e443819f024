package funil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB abre um banco SQLite em memória já migrado.
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, db.AutoMigrate(&Funil{}), "failed to migrate test database")
	return db
}

func TestSeedCriaFunisCanonicos(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Seed(db))

	repo := NewRepository()

	ganha, err := repo.BuscarPorID(db, 1)
	require.NoError(t, err)
	assert.Equal(t, "ganha", ganha.Nome)

	perdida, err := repo.BuscarPorID(db, 2)
	require.NoError(t, err)
	assert.Equal(t, "perdida", perdida.Nome)
}

func TestSeedIdempotente(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	funis, err := NewRepository().ListarTodos(db)
	require.NoError(t, err)
	assert.Len(t, funis, 2, "rodar o seed duas vezes não deve duplicar funis")
}

func TestSeedNaoSobrescreveExistente(t *testing.T) {
	db := setupTestDB(t)

	// Linha pré-existente com o id canônico deve ficar intocada.
	require.NoError(t, db.Create(&Funil{ID: 1, Nome: "renomeado"}).Error)

	require.NoError(t, Seed(db))

	f, err := NewRepository().BuscarPorID(db, 1)
	require.NoError(t, err)
	assert.Equal(t, "renomeado", f.Nome)
}

func TestBuscarPorIDInexistente(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewRepository().BuscarPorID(db, 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
