package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diogo/docchat/internal/config"
	"github.com/diogo/docchat/internal/extract"
	"github.com/diogo/docchat/internal/models"
	"github.com/diogo/docchat/internal/render"
)

// runQuery performs a one-shot exchange: compose the prompt (optionally
// grounded in --doc), send it, and print the answer.
func runQuery(input string) error {
	prompt := strings.TrimSpace(input)
	if prompt == "" {
		return fmt.Errorf("prompt is empty")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if docFlag != "" {
		data, err := os.ReadFile(docFlag)
		if err != nil {
			return fmt.Errorf("failed to read document: %w", err)
		}
		docText, err := extract.New().Extract(data, filepath.Base(docFlag))
		if err != nil {
			return err
		}
		prompt = prompt + models.ContextSeparator + docText
	}

	client, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	answer, err := client.GenerateContent(prompt)
	if err != nil {
		return err
	}

	return writeAnswer(answer, cfg)
}

// writeAnswer prints the answer, rendered as markdown on a TTY, and saves a
// copy when -o was given.
func writeAnswer(answer string, cfg config.Config) error {
	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(answer), 0o644); err != nil {
			return fmt.Errorf("failed to save response: %w", err)
		}
		fmt.Printf("Response saved to %s\n", outputFlag)
		return nil
	}

	if isTerminal() {
		opts := render.DefaultOptions()
		if cfg.MarkdownStyle != "" {
			opts.Style = cfg.MarkdownStyle
		}
		if rendered, err := render.Markdown(answer, opts); err == nil {
			fmt.Print(rendered)
			return nil
		}
	}

	fmt.Println(answer)
	return nil
}
