package main

import (
	"log"
	"net/http"
	"os"

	"api-pipeline/internal/funil"
	"api-pipeline/internal/lead"
	"api-pipeline/internal/middleware"
	"api-pipeline/internal/negociacao"
	"api-pipeline/internal/utils"
	"api-pipeline/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("erro ao criar logger:", err)
	}
	defer func() { _ = logger.Sync() }()

	database, err := db.GetDB()
	if err != nil {
		logger.Fatal("erro ao conectar no banco", zap.Error(err))
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&lead.Lead{},
		&negociacao.Negociacao{},
		&funil.Funil{},
	); err != nil {
		logger.Fatal("erro no AutoMigrate", zap.Error(err))
	}

	// Funis canônicos precisam existir antes de atender requisições
	if err := funil.Seed(database); err != nil {
		logger.Fatal("erro ao semear funis", zap.Error(err))
	}

	// Handlers
	leadHandler := lead.NewHandler(database)
	negociacaoHandler := negociacao.NewHandler(database)

	// Router
	r := mux.NewRouter()

	metrics := middleware.NewHTTPMetrics(nil)
	r.Use(middleware.Logging(logger), metrics.Wrap)

	// Rotas de leads
	r.HandleFunc("/leads/", leadHandler.Criar).Methods("POST")
	r.HandleFunc("/leads/", leadHandler.Listar).Methods("GET")
	r.HandleFunc("/leads/{id}", leadHandler.BuscarPorID).Methods("GET")

	// Rotas de negociações
	r.HandleFunc("/negociacoes/", negociacaoHandler.Criar).Methods("POST")
	r.HandleFunc("/negociacoes/", negociacaoHandler.Listar).Methods("GET")
	r.HandleFunc("/negociacoes/{id}", negociacaoHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/negociacoes/{id}/change_funil_to/{funil_id}", negociacaoHandler.MudarFunil).Methods("PUT")

	// Observabilidade
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/healthz", healthz(database)).Methods("GET")

	handler := cors.AllowAll().Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	logger.Info("servidor iniciado", zap.String("porta", porta))
	if err := http.ListenAndServe(":"+porta, handler); err != nil {
		logger.Fatal("servidor encerrado", zap.Error(err))
	}
}

// healthz responde 200 enquanto o banco estiver acessível.
func healthz(database *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := database.DB()
		if err == nil {
			err = sqlDB.PingContext(r.Context())
		}
		if err != nil {
			utils.RespondError(w, http.StatusServiceUnavailable, "banco indisponível")
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
