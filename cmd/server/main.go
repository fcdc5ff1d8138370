package main

//	@title			Mars Estates Brokerage API
//	@version		1.0
//	@description	Public listing and admin back-office API for the Mars Estates brokerage site.
//	@schemes		http https
//	@BasePath		/api

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Admin bearer token (e.g., "Bearer eyJ...")

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/samber/do"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marsestates/brokerage-api/internal/bootstrap"
	"github.com/marsestates/brokerage-api/internal/config"
	"github.com/marsestates/brokerage-api/internal/modules/handler"
	"github.com/marsestates/brokerage-api/internal/router"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "brokerage-api",
		Short: "Mars Estates brokerage site API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newAdminCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServe() error {
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)

	gin.SetMode(cfg.App.Env)

	engine := router.NewRouter(router.RouterDeps{
		Config:              cfg,
		Log:                 log,
		AuthHandler:         do.MustInvoke[*handler.AuthHandler](inj),
		ProjectHandler:      do.MustInvoke[*handler.ProjectHandler](inj),
		ProjectImageHandler: do.MustInvoke[*handler.ProjectImageHandler](inj),
		UnitHandler:         do.MustInvoke[*handler.UnitHandler](inj),
		LeadHandler:         do.MustInvoke[*handler.LeadHandler](inj),
		SettingsHandler:     do.MustInvoke[*handler.SettingsHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
	return nil
}
