// cmd/server/serve.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/javajoker/product-catalog/internal/database"
	"github.com/javajoker/product-catalog/internal/i18n"
	"github.com/javajoker/product-catalog/internal/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Initialize database
		db, err := database.Initialize(cfg.Database)
		if err != nil {
			return err
		}
		defer database.Close(db)

		if cfg.Database.AutoMigrate {
			if err := database.RunMigrations(db); err != nil {
				return err
			}
		}

		if err := i18n.Initialize(cfg.I18n.DefaultLocale); err != nil {
			return err
		}

		if cfg.Environment == "production" {
			gin.SetMode(gin.ReleaseMode)
		}

		engineCtx, stopEngine := context.WithCancel(context.Background())
		defer stopEngine()

		srv := &http.Server{
			Addr:         cfg.Address(),
			Handler:      router.Initialize(engineCtx, db, cfg),
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
			IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		}

		serverErr := make(chan error, 1)
		go func() {
			logrus.WithField("addr", srv.Addr).Info("Starting server")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
			close(serverErr)
		}()

		// Wait for interrupt signal to gracefully shutdown the server
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case err := <-serverErr:
			return err
		case sig := <-quit:
			logrus.WithField("signal", sig.String()).Info("Shutting down server...")
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return err
		}

		logrus.Info("Server exited")
		return nil
	},
}
