package utils

import (
	"errors"
	"net/http"
	"strconv"
)

const (
	// LimitePadrao é o tamanho de página quando 'limit' não é informado.
	LimitePadrao = 100
	// LimiteMaximo é o teto de 'limit'; valores acima são rejeitados, nunca truncados.
	LimiteMaximo = 100
)

var (
	ErrOffsetInvalido  = errors.New("parâmetro 'offset' inválido")
	ErrLimitInvalido   = errors.New("parâmetro 'limit' inválido")
	ErrLimitAcimaDoMax = errors.New("parâmetro 'limit' deve ser no máximo 100")
)

// ParsePaginacao extrai offset e limit da query string.
func ParsePaginacao(r *http.Request) (offset, limit int, err error) {
	offset = 0
	limit = LimitePadrao

	if v := r.URL.Query().Get("offset"); v != "" {
		offset, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, ErrOffsetInvalido
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, ErrLimitInvalido
		}
	}
	if limit > LimiteMaximo {
		return 0, 0, ErrLimitAcimaDoMax
	}
	return offset, limit, nil
}
