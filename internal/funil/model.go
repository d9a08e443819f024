package funil

// Funil representa uma etapa do pipeline de vendas.
// Os dois funis canônicos ("ganha" e "perdida") são semeados na
// inicialização; não existe endpoint de criação.
type Funil struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Nome string `gorm:"index" json:"nome"`
}
