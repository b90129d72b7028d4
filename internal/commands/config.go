package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/docchat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		path, _ := config.GetConfigPath()
		fmt.Printf("Config file:      %s\n", path)
		fmt.Printf("API key:          %s\n", maskKey(cfg.APIKey))
		fmt.Printf("Default model:    %s\n", cfg.DefaultModel)
		fmt.Printf("Request timeout:  %ds\n", cfg.RequestTimeoutSecs)
		fmt.Printf("Reveal interval:  %dms\n", cfg.RevealIntervalMs)
		fmt.Printf("Markdown style:   %s\n", cfg.MarkdownStyle)
		return nil
	},
}

// maskKey hides all but the last four characters of the API key
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
