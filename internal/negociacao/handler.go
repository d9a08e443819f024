package negociacao

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"api-pipeline/internal/funil"
	"api-pipeline/internal/lead"
	"api-pipeline/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type criarNegociacaoRequest struct {
	Titulo string `json:"titulo"`
	Status string `json:"status"`
	LeadID uint   `json:"lead_id"`
}

// Handler encapsula DB e repositories
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Leads      lead.Repository
	Funis      funil.Repository
}

// NewHandler cria um novo handler de negociações
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Leads:      lead.NewRepository(),
		Funis:      funil.NewRepository(),
	}
}

// Criar trata POST /negociacoes/
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarNegociacaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	if req.Status == "" {
		req.Status = StatusEmNegociacao
	}
	if !StatusValido(req.Status) {
		utils.RespondError(w, http.StatusBadRequest,
			fmt.Sprintf("Valor não é <em_negociacao, perdida ou ganha> (valor '%s' recebido)", req.Status))
		return
	}

	l, err := h.Leads.BuscarPorID(h.DB, req.LeadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(w, http.StatusBadRequest, "Id de lead inexistente")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "erro ao buscar lead")
		return
	}

	// O lead_id cru é descartado em favor da relação resolvida.
	n := Negociacao{
		Titulo: req.Titulo,
		Status: req.Status,
		LeadID: l.ID,
		Lead:   l,
	}

	if err := h.Repository.Salvar(h.DB, &n); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "erro ao salvar negociação")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, n)
}

// Listar trata GET /negociacoes/ com offset e limit
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := utils.ParsePaginacao(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.Repository.Listar(h.DB, offset, limit)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "erro ao listar negociações")
		return
	}

	utils.RespondJSON(w, http.StatusOK, list)
}

// BuscarPorID trata GET /negociacoes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	n, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "Negociacao not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, n)
}

// MudarFunil trata PUT /negociacoes/{id}/change_funil_to/{funil_id}.
// O status da negociação passa a ser o nome atual do funil de destino,
// sem revalidação contra o conjunto em_negociacao/perdida/ganha —
// comportamento mantido de propósito por compatibilidade, mesmo
// sabendo que um funil renomeado tiraria o status do conjunto.
func (h *Handler) MudarFunil(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "ID inválido")
		return
	}
	funilID, err := strconv.Atoi(vars["funil_id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "ID de funil inválido")
		return
	}

	n, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "Negociacao not found")
		return
	}

	f, err := h.Funis.BuscarPorID(h.DB, uint(funilID))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "Funil not found")
		return
	}

	n.Funil = &f.ID
	n.Status = f.Nome

	if err := h.Repository.Atualizar(h.DB, n); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "erro ao atualizar negociação")
		return
	}

	utils.RespondJSON(w, http.StatusOK, n)
}
