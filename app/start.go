package app

import (
	"github.com/spf13/cobra"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/backend"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/logger"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration directory")
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	rootCmd.AddCommand(startCmd)
}

var (
	configPath string // Path to the configuration directory

	err     error
	cfg     config.Config
	devMode bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the GoFolio-Admin web service",
		PreRun: func(_ *cobra.Command, _ []string) {
			if cfg, err = config.ReadConfig(configPath); err != nil {
				panic(err)
			}

			if devMode {
				cfg.DevMode = true
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := logger.Init(cfg.Log); err != nil {
				return err
			}

			client := backend.New(cfg.Backend.URL, cfg.Backend.Timeout)

			service := web.New(&cfg, client)

			go service.WaitShutdown()

			return service.Start(cfg.Webserver.ListenAddr())
		},
	}
)
