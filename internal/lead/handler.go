package lead

import (
	"encoding/json"
	"net/http"
	"strconv"

	"api-pipeline/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type criarLeadRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// Criar trata POST /leads/
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	l := Lead{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
	}

	if err := h.Repository.Salvar(h.DB, &l); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "erro ao salvar lead")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, l)
}

// Listar trata GET /leads/ com offset e limit
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := utils.ParsePaginacao(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	leads, err := h.Repository.Listar(h.DB, offset, limit)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "erro ao listar leads")
		return
	}

	utils.RespondJSON(w, http.StatusOK, leads)
}

// BuscarPorID trata GET /leads/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	l, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "Lead not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, l)
}
