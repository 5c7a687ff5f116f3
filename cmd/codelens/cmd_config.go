package main

import (
	"fmt"
	"strconv"
	"strings"

	"codelens/internal/config"

	"github.com/spf13/cobra"
)

// configCmd groups the config subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or change configuration",
	Long: `Configuration is stored as JSON in a .codelens directory, project-local
when one exists, otherwise in your home directory.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.File()
		if err != nil {
			return err
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		fmt.Printf("Config file: %s\n\n", path)
		fmt.Printf("  api_key:  %s\n", maskKey(cfg.APIKey))
		fmt.Printf("  provider: %s\n", orUnset(cfg.Provider))
		fmt.Printf("  model:    %s\n", orUnset(cfg.Model))
		fmt.Printf("  theme:    %s\n", cfg.Theme)
		fmt.Printf("  width:    %d\n", cfg.Width)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Keys: api_key, provider (anthropic|openai), model, theme (light|dark),
width (positive integer).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := applyConfigValue(&cfg, args[0], args[1]); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Set %s\n", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func applyConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "api_key":
		cfg.APIKey = value
	case "provider":
		if value != "anthropic" && value != "openai" {
			return fmt.Errorf("invalid provider %q: must be anthropic or openai", value)
		}
		cfg.Provider = value
	case "model":
		cfg.Model = value
	case "theme":
		if value != "light" && value != "dark" {
			return fmt.Errorf("invalid theme %q: must be light or dark", value)
		}
		cfg.Theme = value
	case "width":
		w, err := strconv.Atoi(value)
		if err != nil || w <= 0 {
			return fmt.Errorf("invalid width %q: must be a positive integer", value)
		}
		cfg.Width = w
	default:
		return fmt.Errorf("unknown key %q: valid keys are api_key, provider, model, theme, width", key)
	}
	return nil
}

// maskKey hides all but the tail of an API key.
func maskKey(key string) string {
	if key == "" {
		return "(unset)"
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
