package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"chinook-browser/internal/adapter"
	"chinook-browser/internal/core"
	"chinook-browser/pkg/http_client"

	"github.com/go-chi/chi/v5"
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func main() {
	port := getenv("PORT", "3000")
	apiURL := getenv("CHINOOK_API_URL", "http://localhost:8000")

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	client := adapter.NewClient(apiURL, http_client.CreateHTTPClient(10*time.Second), logger)
	svc := core.NewService(client)

	r := chi.NewRouter()
	r.Mount("/", adapter.NewHTTPHandler(svc, logger).Routes())

	log.Printf("listening on :%s (upstream %s)", port, apiURL)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
