package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	_ "pet-registry/docs"
	"pet-registry/internal/adapters/storage/postgres"
	"pet-registry/internal/config"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/router"
)

//	@title			Pet Registry API
//	@version		1.0
//	@description	CRUD mínimo de mascotas (id, name, species).
//	@BasePath		/
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Server.LogLevel),
		Format: logger.ParseFormat(cfg.Server.LogFormat),
		App:    "pet-registry",
	})

	var db *sql.DB
	if cfg.Database.URL != "" {
		db, err = postgres.Open(cfg.Database.URL)
		if err != nil {
			log.Error("db open failed", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		defer db.Close()

		// Bootstrap de schema al arrancar (una sola tabla, sin migraciones).
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = postgres.EnsureSchema(ctx, db)
		cancel()
		if err != nil {
			log.Error("db schema failed", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
	}

	r := router.NewRouter(router.Options{DB: db, Log: log})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{
		"addr":  srv.Addr,
		"store": storeKind(db),
	})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}

func storeKind(db *sql.DB) string {
	if db != nil {
		return "postgres"
	}
	return "memory"
}
