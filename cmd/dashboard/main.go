package main

import (
	"log"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/admin"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/api"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/config"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/dashboard"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/reservation"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/storage"
)

func main() {
	cfg := config.Load()

	if cfg.AdminToken == "" {
		log.Fatal("missing env var: ADMIN_TOKEN")
	}

	// The dashboard keeps its admin token in an in-memory store; the API
	// client forwards it as the bearer token on every upstream call.
	creds := storage.NewMemory()
	if err := creds.Set(storage.KeyAccessToken, cfg.AdminToken); err != nil {
		log.Fatal("store admin token:", err)
	}

	client := api.New(cfg.BaseURL, cfg.APIVersion, cfg.RequestTimeout, creds)

	handler := dashboard.NewHandler(
		admin.NewService(client),
		reservation.NewService(client),
	)

	r := dashboard.NewRouter(handler, cfg.DashboardOrigins, cfg.AdminToken)

	log.Printf("dashboard running at %s (backend %s)", cfg.DashboardAddr, cfg.BaseURL)
	if err := r.Run(cfg.DashboardAddr); err != nil {
		log.Fatal(err)
	}
}
