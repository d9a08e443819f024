package funil

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	BuscarPorID(db *gorm.DB, id uint) (*Funil, error)
	ListarTodos(db *gorm.DB) ([]Funil, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Funil, error) {
	var f Funil
	if err := db.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Funil, error) {
	var funis []Funil
	err := db.Find(&funis).Error
	return funis, err
}

// Seed garante os funis canônicos id=1 "ganha" e id=2 "perdida".
// Linhas já existentes não são tocadas; rodar mais de uma vez não
// duplica nada.
func Seed(db *gorm.DB) error {
	canonicos := []Funil{
		{ID: 1, Nome: "ganha"},
		{ID: 2, Nome: "perdida"},
	}

	for _, f := range canonicos {
		var existente Funil
		err := db.First(&existente, f.ID).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		novo := f
		if err := db.Create(&novo).Error; err != nil {
			return err
		}
	}
	return nil
}
