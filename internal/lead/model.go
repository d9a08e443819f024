package lead

// Lead representa um contato do pipeline de vendas.
// As negociações referenciam o lead via chave estrangeira (lead_id).
type Lead struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Nome     string `gorm:"index" json:"nome"`
	Email    string `gorm:"index" json:"email"`
	Telefone string `gorm:"index" json:"telefone"`
}
