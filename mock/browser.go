package mock

import (
	"context"

	"github.com/fwojciec/askskill"
)

// Compile-time interface verification.
var (
	_ askskill.Browser = (*Browser)(nil)
	_ askskill.Page    = (*Page)(nil)
)

// Browser is a mock implementation of askskill.Browser.
type Browser struct {
	OpenFn  func(ctx context.Context, url string) (askskill.Page, error)
	CloseFn func() error
}

func (b *Browser) Open(ctx context.Context, url string) (askskill.Page, error) {
	return b.OpenFn(ctx, url)
}

func (b *Browser) Close() error {
	return b.CloseFn()
}

// Page is a mock implementation of askskill.Page. Zero-valued function fields
// fall back to inert defaults so tests only stub what they exercise.
type Page struct {
	URLFn        func() string
	TitleFn      func(ctx context.Context) (string, error)
	HTMLFn       func(ctx context.Context) (string, error)
	ScreenshotFn func(ctx context.Context) ([]byte, error)
	HasFn        func(ctx context.Context, selector string) (bool, error)
	ReadTextFn   func(ctx context.Context, selector string) (string, error)
	ReadHTMLFn   func(ctx context.Context, selector string) (string, error)
	TypeFn       func(ctx context.Context, selector, text string) error
	TypeActiveFn func(ctx context.Context, text string) error
	ClickFn      func(ctx context.Context, selector string) error
	ClickAtFn    func(ctx context.Context, x, y int) error
	SubmitFn     func(ctx context.Context) error
	CloseFn      func() error
}

func (p *Page) URL() string {
	if p.URLFn == nil {
		return ""
	}
	return p.URLFn()
}

func (p *Page) Title(ctx context.Context) (string, error) {
	if p.TitleFn == nil {
		return "", nil
	}
	return p.TitleFn(ctx)
}

func (p *Page) HTML(ctx context.Context) (string, error) {
	if p.HTMLFn == nil {
		return "", nil
	}
	return p.HTMLFn(ctx)
}

func (p *Page) Screenshot(ctx context.Context) ([]byte, error) {
	if p.ScreenshotFn == nil {
		return nil, nil
	}
	return p.ScreenshotFn(ctx)
}

func (p *Page) Has(ctx context.Context, selector string) (bool, error) {
	if p.HasFn == nil {
		return false, nil
	}
	return p.HasFn(ctx, selector)
}

func (p *Page) ReadText(ctx context.Context, selector string) (string, error) {
	if p.ReadTextFn == nil {
		return "", nil
	}
	return p.ReadTextFn(ctx, selector)
}

func (p *Page) ReadHTML(ctx context.Context, selector string) (string, error) {
	if p.ReadHTMLFn == nil {
		return "", nil
	}
	return p.ReadHTMLFn(ctx, selector)
}

func (p *Page) Type(ctx context.Context, selector, text string) error {
	if p.TypeFn == nil {
		return nil
	}
	return p.TypeFn(ctx, selector, text)
}

func (p *Page) TypeActive(ctx context.Context, text string) error {
	if p.TypeActiveFn == nil {
		return nil
	}
	return p.TypeActiveFn(ctx, text)
}

func (p *Page) Click(ctx context.Context, selector string) error {
	if p.ClickFn == nil {
		return nil
	}
	return p.ClickFn(ctx, selector)
}

func (p *Page) ClickAt(ctx context.Context, x, y int) error {
	if p.ClickAtFn == nil {
		return nil
	}
	return p.ClickAtFn(ctx, x, y)
}

func (p *Page) Submit(ctx context.Context) error {
	if p.SubmitFn == nil {
		return nil
	}
	return p.SubmitFn(ctx)
}

func (p *Page) Close() error {
	if p.CloseFn == nil {
		return nil
	}
	return p.CloseFn()
}
