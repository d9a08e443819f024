package utils

import (
	"encoding/json"
	"net/http"
)

type erroResponse struct {
	Detail string `json:"detail"`
}

// RespondJSON escreve o payload como JSON com o status informado.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError escreve um corpo de erro no formato {"detail": "..."}.
func RespondError(w http.ResponseWriter, status int, detail string) {
	RespondJSON(w, status, erroResponse{Detail: detail})
}
