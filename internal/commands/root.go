// Package commands provides CLI commands for docchat.
package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/diogo/docchat/internal/api"
	"github.com/diogo/docchat/internal/config"
)

var (
	// Global flags
	modelFlag  string
	outputFlag string
	fileFlag   string
	docFlag    string

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "docchat [prompt]",
	Short: "Chat with Gemini about your documents",
	Long: `docchat is a terminal chatbot for Google Gemini that can ground the
conversation in the text of an uploaded document (PDF, TXT or MD).

Set GEMINI_API_KEY (or api_key in ~/.docchat/config.json) before use.

Examples:
  docchat chat                          Start the interactive chat
  docchat "What is Go?"                 Send a single query
  docchat --doc paper.pdf "Summarize"   Ground a query in a document
  docchat -f prompt.md                  Read prompt from file
  cat prompt.md | docchat               Read prompt from stdin
  docchat "Hello" -o response.md        Save response to file`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("docchat %s (built %s)\n", Version, BuildTime)
			return nil
		}

		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data))
		}

		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data))
		}

		if len(args) > 0 {
			return runQuery(args[0])
		}

		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "Model to use (e.g., gemini-2.5-flash)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save response to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read prompt from file")
	rootCmd.Flags().StringVarP(&docFlag, "doc", "d", "", "Document to ground the query in")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(configCmd)
}

// getModel returns the model to use (from flag or config)
func getModel(cfg config.Config) string {
	if modelFlag != "" {
		return modelFlag
	}
	if cfg.DefaultModel != "" {
		return cfg.DefaultModel
	}
	return config.DefaultConfig().DefaultModel
}

// newGenerator builds the transport; swapped out by tests.
var newGenerator = func(cfg config.Config) (api.Generator, error) {
	return api.NewClient(cfg.APIKey,
		api.WithModel(getModel(cfg)),
		api.WithTimeout(time.Duration(cfg.RequestTimeoutSecs)*time.Second),
	)
}

// isTerminal reports whether stdout is an interactive terminal
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
