// Package rod implements browser automation using Chrome via go-rod.
package rod

import (
	"context"
	"fmt"
	"sync"

	"github.com/fwojciec/askskill"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultMaxPages is how many pages a Chrome instance serves before it is
// recycled. Chrome accumulates memory over time and the baseline never
// returns to initial levels even with proper page cleanup; periodic recycling
// keeps long-running sessions stable.
const DefaultMaxPages = 75

// Ensure Browser implements askskill.Browser at compile time.
var _ askskill.Browser = (*Browser)(nil)

// Browser drives a headless Chrome instance with automatic recycling.
// Browser is safe for concurrent use.
type Browser struct {
	mu        sync.Mutex
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount int
	maxPages  int
	closed    bool
}

// Option configures a Browser.
type Option func(*Browser)

// WithMaxPages sets the page count at which the Chrome instance is recycled.
func WithMaxPages(n int) Option {
	return func(b *Browser) {
		b.maxPages = n
	}
}

// NewBrowser launches a headless Chrome browser. Close must be called when
// the Browser is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewBrowser(opts ...Option) (*Browser, error) {
	b := &Browser{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.launch(); err != nil {
		return nil, err
	}
	return b, nil
}

// Open creates a page, navigates it to the URL, and waits for the load event.
func (b *Browser) Open(ctx context.Context, url string) (askskill.Page, error) {
	browser, err := b.acquire()
	if err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}

	p := page.Context(ctx)
	if err := p.Navigate(url); err != nil {
		_ = page.Close()
		return nil, err
	}
	if err := p.WaitLoad(); err != nil {
		_ = page.Close()
		return nil, err
	}

	return &Page{page: page}, nil
}

// Close releases browser resources. Safe to call multiple times.
func (b *Browser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	return b.shutdown()
}

// acquire returns the current Chrome instance, recycling it when the page
// count has reached the threshold. Counting happens here: every Open is one
// page toward recycling.
func (b *Browser) acquire() (*rod.Browser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, askskill.Errorf(askskill.EINTERNAL, "browser is closed")
	}

	if b.pageCount >= b.maxPages {
		// Keep the old instance when the replacement fails to launch.
		old, oldLauncher := b.browser, b.launcher
		b.browser, b.launcher = nil, nil
		if err := b.launch(); err != nil {
			b.browser, b.launcher = old, oldLauncher
		} else {
			if old != nil {
				_ = old.Close()
			}
			if oldLauncher != nil {
				oldLauncher.Kill()
			}
			b.pageCount = 0
		}
	}

	b.pageCount++
	return b.browser, nil
}

// launch starts a new Chrome instance with stability flags.
func (b *Browser) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	b.browser = browser
	b.launcher = l
	return nil
}

// shutdown closes the current instance. Must be called with mu held.
func (b *Browser) shutdown() error {
	var err error
	if b.browser != nil {
		err = b.browser.Close()
		b.browser = nil
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher = nil
	}
	return err
}
