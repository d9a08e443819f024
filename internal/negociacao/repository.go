package negociacao

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, n *Negociacao) error
	Listar(db *gorm.DB, offset, limit int) ([]Negociacao, error)
	BuscarPorID(db *gorm.DB, id uint) (*Negociacao, error)
	Atualizar(db *gorm.DB, n *Negociacao) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, n *Negociacao) error {
	return db.Create(n).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB, offset, limit int) ([]Negociacao, error) {
	var list []Negociacao
	err := db.Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Negociacao, error) {
	var n Negociacao
	if err := db.First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, n *Negociacao) error {
	return db.Save(n).Error
}
