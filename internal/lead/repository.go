package lead

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, l *Lead) error
	Listar(db *gorm.DB, offset, limit int) ([]Lead, error)
	BuscarPorID(db *gorm.DB, id uint) (*Lead, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, l *Lead) error {
	return db.Create(l).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB, offset, limit int) ([]Lead, error) {
	var leads []Lead
	err := db.Offset(offset).Limit(limit).Find(&leads).Error
	return leads, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Lead, error) {
	var l Lead
	if err := db.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}
