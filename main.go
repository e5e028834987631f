package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"booststudio/internal/auth"
	intconfig "booststudio/internal/config"
	intdb "booststudio/internal/db"
	router "booststudio/internal/http"
	"booststudio/internal/repositories"
	"booststudio/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db := intconfig.ConnectDB(env.DatabaseDSN)
	defer intconfig.CloseDB()

	if err := intdb.EnsureSchema(db); err != nil {
		log.Fatalf("échec de création du schéma: %v", err)
	}
	if err := intdb.SeedAdmin(db, env.AdminPassword); err != nil {
		log.Fatalf("échec du seed admin: %v", err)
	}

	sessions := auth.NewSessionStore([]byte(env.SessionSecret))
	sessions.StartSweeper(time.Hour)
	defer sessions.Close()

	adminSvc, err := services.NewAdminService(sessions, repositories.AdminRepository{}, env.AdminPassword)
	if err != nil {
		log.Fatalf("échec d'initialisation du service admin: %v", err)
	}

	r := router.NewRouter(router.Deps{
		Env:             env,
		Sessions:        sessions,
		Uploader:        services.NewCloudUploader(env),
		Admin:           adminSvc,
		ReservationRepo: repositories.ReservationRepository{},
		MediaRepo:       repositories.MediaRepository{},
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Boost Studio API démarré sur http://localhost%s (env: %s)", env.AppAddr, env.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("échec de démarrage du serveur: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("arrêt du serveur...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("échec de l'arrêt du serveur: %v", err)
	}

	log.Println("serveur arrêté proprement.")
}
