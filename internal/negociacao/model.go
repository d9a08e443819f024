package negociacao

import (
	"api-pipeline/internal/lead"
)

// Status permitidos na criação de uma negociação.
const (
	StatusEmNegociacao = "em_negociacao"
	StatusPerdida      = "perdida"
	StatusGanha        = "ganha"
)

// Negociacao representa uma oportunidade de negócio ligada a um Lead.
// O campo Funil é uma referência solta (inteiro anulável) para o id de
// um Funil; não há vínculo relacional imposto pelo banco.
type Negociacao struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Titulo string `gorm:"index" json:"titulo"`
	Status string `gorm:"index;default:'em_negociacao'" json:"status"`

	LeadID uint       `json:"lead_id"`
	Lead   *lead.Lead `gorm:"foreignKey:LeadID" json:"-"`

	Funil *uint `json:"funil"`
}

// StatusValido informa se o status está dentro do conjunto permitido.
func StatusValido(s string) bool {
	switch s {
	case StatusEmNegociacao, StatusPerdida, StatusGanha:
		return true
	}
	return false
}
