package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"archviz/config"
	"archviz/controller"
	"archviz/database"
	"archviz/media"
	"archviz/route"
	"archviz/seed"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Seed empty collections and serve the API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context(), appConfig)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.MongoURL, cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			log.WithError(err).Error("closing database")
		}
	}()

	if cfg.Seed {
		if err := seed.Run(ctx, db, time.Now()); err != nil {
			return err
		}
	}

	opts := []controller.Option{
		controller.WithTimeout(cfg.StoreTimeout),
		controller.WithAuth(cfg.Auth),
	}
	if cfg.Media.Enabled() {
		uploader, err := media.NewS3Uploader(ctx, cfg.Media.Bucket, cfg.Media.Region, cfg.Media.BaseURL)
		if err != nil {
			return err
		}
		opts = append(opts, controller.WithUploader(uploader))
	}

	gin.SetMode(gin.ReleaseMode)
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: route.New(cfg, controller.NewHandler(db, opts...)),
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{
			"port":    cfg.Port,
			"auth":    cfg.Auth.Enabled(),
			"uploads": cfg.Media.Enabled(),
		}).Info("portfolio API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
