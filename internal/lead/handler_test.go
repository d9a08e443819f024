package lead

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupServer sobe um servidor de teste com as rotas de leads.
func setupServer(t *testing.T) *httptest.Server {
	db := setupTestDB(t)
	h := NewHandler(db)

	r := mux.NewRouter()
	r.HandleFunc("/leads/", h.Criar).Methods("POST")
	r.HandleFunc("/leads/", h.Listar).Methods("GET")
	r.HandleFunc("/leads/{id}", h.BuscarPorID).Methods("GET")

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func criarLead(t *testing.T, srv *httptest.Server, nome, email, telefone string) Lead {
	body, _ := json.Marshal(map[string]string{
		"nome": nome, "email": email, "telefone": telefone,
	})
	resp, err := http.Post(srv.URL+"/leads/", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var l Lead
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&l))
	return l
}

func TestCriarEBuscarRoundTrip(t *testing.T) {
	srv := setupServer(t)

	criado := criarLead(t, srv, "João", "joao@example.com", "11988887777")
	require.NotZero(t, criado.ID)

	resp, err := http.Get(fmt.Sprintf("%s/leads/%d", srv.URL, criado.ID))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var lido Lead
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&lido))
	assert.Equal(t, criado, lido, "criar e ler pelo id deve devolver registro idêntico")
}

func TestBuscarPorIDNaoEncontrado(t *testing.T) {
	srv := setupServer(t)

	resp, err := http.Get(srv.URL + "/leads/999")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Lead not found", body["detail"])
}

func TestListarLimitAcimaDoMaximoRejeitado(t *testing.T) {
	srv := setupServer(t)

	resp, err := http.Get(srv.URL + "/leads/?limit=101")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "limit acima de 100 deve ser rejeitado, não truncado")
}

func TestListarPaginado(t *testing.T) {
	srv := setupServer(t)

	for i := 0; i < 3; i++ {
		criarLead(t, srv, fmt.Sprintf("Lead %d", i), "l@example.com", "")
	}

	resp, err := http.Get(srv.URL + "/leads/?offset=1&limit=1")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pagina []Lead
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pagina))
	require.Len(t, pagina, 1)
	assert.Equal(t, uint(2), pagina[0].ID)
}
