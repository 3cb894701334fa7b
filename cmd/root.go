package cmd

import (
	"fmt"
	"os"

	"archviz/config"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "archviz",
	Short: "Architectural visualization portfolio API",
	Long: `archviz serves the portfolio content API (projects, blog posts,
testimonials, site settings and contact submissions) backed by MongoDB.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context(), appConfig)
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initializeConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.JSONFormatter{})

	appConfig = cfg
	return nil
}
