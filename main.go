package main

import (
	"fmt"
	"os"

	"frontera/config"
	"frontera/service"

	"github.com/spf13/cobra"
)

const cliVersion = "1.0.0"

func main() {
	var configPath string

	root := &cobra.Command{
		Use:           "frontera",
		Short:         "Community storytelling service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")

	loadConfig := func() (config.Config, error) {
		return config.Load(configPath)
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the storytelling service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return service.RunAppServer(cfg)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Initialize a new empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return service.InitDB(cfg.DBPath)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "clean",
		Short: "Clean the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return service.Clean(cfg.DBPath)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "backup",
		Short: "Create a backup of the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return service.Backup(cfg.DBPath, "data/backups")
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "restore <file>",
		Short: "Restore the database from a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return service.Restore(cfg.DBPath, args[0])
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("frontera version %s\n", cliVersion)
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
