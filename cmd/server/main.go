package main

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"diet-planner-api/internal/advisor"
	"diet-planner-api/internal/config"
	"diet-planner-api/internal/handler"
	"diet-planner-api/internal/middleware"
	"diet-planner-api/internal/nutrition"
	"diet-planner-api/internal/planner"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// The Gemini client refuses to construct without a key; fail fast.
	// The USDA key is deliberately checked lazily per lookup instead.
	generator, err := advisor.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Fatal("failed to create Gemini generator", zap.Error(err))
	}

	foodClient := nutrition.NewClient(cfg.USDAAPIKey, cfg.USDABaseURL, logger)
	dietAdvisor := advisor.New(generator, logger)
	dietPlanner := planner.New(dietAdvisor)

	foodHandler := handler.NewFoodHandler(foodClient, logger)
	planHandler := handler.NewPlanHandler(dietPlanner, logger)

	r := mux.NewRouter()

	// Global middleware: Security Headers → Request Logging → MaxBytesReader
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.RequestLogging(logger))
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
			next.ServeHTTP(w, r)
		})
	})

	r.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/food/search", foodHandler.Search).Methods(http.MethodPost)
	api.HandleFunc("/food/{id}", foodHandler.Details).Methods(http.MethodGet)
	api.HandleFunc("/diet/plan", planHandler.Create).Methods(http.MethodPost)

	// Browser UI
	r.HandleFunc("/ui", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.StaticDir, "index.html"))
	}).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	c := cors.New(cors.Options{
		AllowedOrigins: splitOrigins(cfg.AllowedOrigins),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	addr := ":" + cfg.Port
	logger.Info("server starting", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, c.Handler(r)); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
