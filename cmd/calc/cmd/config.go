package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/calc/internal/config"
	"github.com/pengelbrecht/calc/internal/render"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the calc configuration file",
	Long: `Manage the calc configuration file.

The file lives at $HOME/.calc/config.json unless --config or CALC_CONFIG
points elsewhere. Files ending in .yaml or .yml are read as YAML.`,
	// Skips loading the config so a broken file can still be inspected or replaced.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		settings.render = render.New(render.DefaultOptions())
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Args:  usageArgs(cobra.NoArgs),
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  usageArgs(cobra.NoArgs),
	RunE:  runConfigShow,
}

var configForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultPath()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check config: %w", err)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	payload := map[string]any{
		"path":             path,
		"version":          cfg.Version,
		"log_level":        cfg.LogLevel,
		"timestamps":       cfg.History.TimestampsEnabled(),
		"timestamp_format": cfg.History.GetTimestampFormat(),
		"precision":        cfg.Display.GetPrecision(),
		"color":            cfg.Display.ColorEnabled(),
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}
