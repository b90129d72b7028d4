package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/diogo/docchat/internal/api"
	apierrors "github.com/diogo/docchat/internal/errors"
	"github.com/diogo/docchat/internal/extract"
	"github.com/diogo/docchat/internal/models"
)

// Controller orchestrates a conversation: it owns the flight state and
// mediates every write to the message log and the context store. Submit and
// UploadDocument are the two entry points; the render surface observes the
// session through Snapshot, Awaiting and Updates.
type Controller struct {
	log       *Log
	docCtx    *ContextStore
	transport api.Generator
	extractor extract.Extractor
	logger    *slog.Logger

	revealInterval time.Duration

	mu       sync.Mutex
	awaiting bool
	closed   bool

	ctx    context.Context
	cancel context.CancelFunc
	notify chan struct{}
	wg     sync.WaitGroup
}

// Option is a function that configures the controller
type Option func(*Controller)

// WithExtractor sets the document extractor
func WithExtractor(e extract.Extractor) Option {
	return func(c *Controller) {
		c.extractor = e
	}
}

// WithRevealInterval overrides the reveal cadence (tests use a short one)
func WithRevealInterval(interval time.Duration) Option {
	return func(c *Controller) {
		if interval > 0 {
			c.revealInterval = interval
		}
	}
}

// WithLogger sets the logger used for non-fatal failures
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewController creates a session around the given transport
func NewController(transport api.Generator, opts ...Option) *Controller {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Controller{
		log:            NewLog(),
		docCtx:         NewContextStore(),
		transport:      transport,
		extractor:      extract.New(),
		logger:         slog.Default(),
		revealInterval: DefaultRevealInterval,
		ctx:            ctx,
		cancel:         cancel,
		notify:         make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Submit sends the user's input to the model. The prompt is the input alone,
// or the input joined with the current document context. One user message is
// appended per call; blank input is ignored. A submission while a response is
// in flight is rejected with ErrResponseInFlight rather than racing a second
// request against the first.
func (c *Controller) Submit(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return apierrors.ErrSessionClosed
	}
	if c.awaiting {
		c.mu.Unlock()
		return apierrors.ErrResponseInFlight
	}
	c.awaiting = true
	c.mu.Unlock()

	// Context is read once, at composition time. An upload finishing later
	// does not retroactively change a request already in flight.
	prompt := trimmed
	if docText := c.docCtx.Get(); docText != "" {
		prompt = trimmed + models.ContextSeparator + docText
	}

	c.log.Append(models.NewUserMessage(trimmed))
	c.changed()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.exchange(prompt)
	}()

	return nil
}

// exchange performs the remote call and feeds the answer to the reveal.
func (c *Controller) exchange(prompt string) {
	answer, err := c.transport.GenerateContent(prompt)
	if err != nil {
		c.logger.Warn("transport request failed", "error", err)
		c.log.Append(models.NewBotMessage(models.TransportFailureText))
		c.setAwaiting(false)
		c.changed()
		return
	}

	bot := models.NewBotMessage("")
	for update := range StartReveal(c.ctx, bot.ID, answer, c.revealInterval) {
		bot.Content = update.Text
		c.log.Replace(update.ID, bot)
		c.changed()

		if update.Done {
			c.setAwaiting(false)
			c.changed()
		}
	}
}

// UploadDocument records the upload in the transcript immediately, then
// extracts the text asynchronously. The context store is only written on
// success; a failed extraction is logged and surfaced as a single visible
// notice instead of being silently dropped.
func (c *Controller) UploadDocument(data []byte, fileName string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return apierrors.ErrSessionClosed
	}
	c.mu.Unlock()

	c.log.Append(models.NewDocumentNotice(fmt.Sprintf("📄 Document uploaded: %s", fileName)))
	c.changed()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		text, err := c.extractor.Extract(data, fileName)
		if err != nil {
			c.logger.Warn("document extraction failed", "file", fileName, "error", err)
			c.log.Append(models.NewBotMessage(
				fmt.Sprintf("⚠️ Could not read %s; the document was not added to the conversation context.", fileName)))
			c.changed()
			return
		}

		c.docCtx.Set(text)
		c.changed()
	}()

	return nil
}

// Snapshot returns the current transcript for rendering
func (c *Controller) Snapshot() []models.Message {
	return c.log.Snapshot()
}

// Awaiting reports whether a response is currently in flight; it drives the
// typing indicator.
func (c *Controller) Awaiting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.awaiting
}

// Context returns the current document context text
func (c *Controller) Context() string {
	return c.docCtx.Get()
}

// Updates signals whenever the transcript, context or flight state changed.
// The channel is coalescing: consumers re-read Snapshot after each receive.
func (c *Controller) Updates() <-chan struct{} {
	return c.notify
}

// Close tears the session down: any in-progress reveal stops emitting and
// its timer is released. Background work is waited for so nothing writes to
// the log after Close returns.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.awaiting = false
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}

func (c *Controller) setAwaiting(v bool) {
	c.mu.Lock()
	c.awaiting = v
	c.mu.Unlock()
}

// changed publishes a coalesced change notification
func (c *Controller) changed() {
	select {
	case c.notify <- struct{}{}:
	default:
	}
}
