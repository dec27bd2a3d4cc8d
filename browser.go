package askskill

import "context"

// Browser drives a real browser. One Browser may serve many pages, but each
// conversation session owns at most one live Page at a time.
type Browser interface {
	// Open creates a page, navigates it to the URL, and waits for the load
	// event. The context bounds navigation; callers must Close the page.
	Open(ctx context.Context, url string) (Page, error)

	// Close releases browser resources.
	// Must be called when the Browser is no longer needed.
	Close() error
}

// Page is one live browser tab. Every operation respects the context's
// deadline and cancellation; no method blocks without a bound.
type Page interface {
	// URL returns the page's current URL.
	URL() string

	// Title returns the document title.
	Title(ctx context.Context) (string, error)

	// HTML returns the rendered HTML of the full document.
	HTML(ctx context.Context) (string, error)

	// Screenshot captures the current viewport as PNG bytes.
	Screenshot(ctx context.Context) ([]byte, error)

	// Has reports whether at least one visible element matches the selector.
	Has(ctx context.Context, selector string) (bool, error)

	// ReadText returns the text content of the first element matching the selector.
	ReadText(ctx context.Context, selector string) (string, error)

	// ReadHTML returns the inner HTML of the first element matching the selector.
	ReadHTML(ctx context.Context, selector string) (string, error)

	// Type focuses the first element matching the selector and types text into it.
	Type(ctx context.Context, selector, text string) error

	// TypeActive types text into whatever element currently has focus.
	TypeActive(ctx context.Context, text string) error

	// Click clicks the first element matching the selector.
	Click(ctx context.Context, selector string) error

	// ClickAt clicks at viewport coordinates. Used for visually-located
	// affordances where no selector is known.
	ClickAt(ctx context.Context, x, y int) error

	// Submit presses Enter in the focused element.
	Submit(ctx context.Context) error

	// Close closes the page and discards its browser context.
	Close() error
}
