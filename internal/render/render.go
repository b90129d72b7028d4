// Package render draws bot answers as terminal markdown.
package render

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Options configures markdown rendering
type Options struct {
	Style string // "dark", "light", or a glamour style name
	Width int
}

// DefaultOptions returns the default rendering options
func DefaultOptions() Options {
	return Options{
		Style: "dark",
		Width: 80,
	}
}

// WithWidth returns a copy of the options with the given wrap width
func (o Options) WithWidth(width int) Options {
	if width > 0 {
		o.Width = width
	}
	return o
}

// glamour.TermRenderer is not safe for concurrent Render calls, so cached
// renderers are used under the cache lock.
var cache = struct {
	sync.Mutex
	renderers map[string]*glamour.TermRenderer
}{renderers: make(map[string]*glamour.TermRenderer)}

func cacheKey(opts Options) string {
	return fmt.Sprintf("%s:%d", opts.Style, opts.Width)
}

func createRenderer(opts Options) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(opts.Style),
		glamour.WithWordWrap(opts.Width),
		glamour.WithEmoji(),
	)
}

// Markdown renders markdown content for terminal display
func Markdown(content string, opts Options) (string, error) {
	cache.Lock()
	defer cache.Unlock()

	key := cacheKey(opts)
	renderer, ok := cache.renderers[key]
	if !ok {
		var err error
		renderer, err = createRenderer(opts)
		if err != nil {
			return "", err
		}
		cache.renderers[key] = renderer
	}

	return renderer.Render(content)
}

// MarkdownWithWidth renders with default options at the given width
func MarkdownWithWidth(content string, width int) (string, error) {
	return Markdown(content, DefaultOptions().WithWidth(width))
}
