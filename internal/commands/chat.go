package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/diogo/docchat/internal/config"
	"github.com/diogo/docchat/internal/session"
	"github.com/diogo/docchat/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session with Gemini.

Use /upload <file> inside the chat to ground the conversation in a
document. Type 'exit', 'quit', or press Esc to end the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	client, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	opts := []session.Option{}
	if cfg.RevealIntervalMs > 0 {
		opts = append(opts, session.WithRevealInterval(time.Duration(cfg.RevealIntervalMs)*time.Millisecond))
	}

	ctrl := session.NewController(client, opts...)

	return tui.RunChat(ctrl, getModel(cfg))
}
