package session

import (
	"context"
	"time"
)

// DefaultRevealInterval is the cadence of the simulated incremental delivery:
// one character every 20ms, matching the reference behavior.
const DefaultRevealInterval = 20 * time.Millisecond

// Update is one step of a reveal: the prefix of the answer visible so far,
// keyed by the bot turn it belongs to. Done marks the terminal update where
// Text equals the full answer.
type Update struct {
	ID   string
	Text string
	Done bool
}

// StartReveal emits the successive prefixes of fullText on the returned
// channel, one character per interval, starting with the empty prefix and
// ending with the full text. For a text of n characters exactly n+1 updates
// are emitted. Cancelling ctx stops the emission and releases the timer; the
// channel is closed either way. An empty fullText yields the single terminal
// empty update immediately.
func StartReveal(ctx context.Context, id, fullText string, interval time.Duration) <-chan Update {
	ch := make(chan Update)

	go func() {
		defer close(ch)

		runes := []rune(fullText)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for i := 0; i <= len(runes); i++ {
			update := Update{
				ID:   id,
				Text: string(runes[:i]),
				Done: i == len(runes),
			}

			select {
			case ch <- update:
			case <-ctx.Done():
				return
			}

			if update.Done {
				return
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}
