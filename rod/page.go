package rod

import (
	"context"

	"github.com/fwojciec/askskill"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Page implements askskill.Page at compile time.
var _ askskill.Page = (*Page)(nil)

// Page is one live browser tab. Every method derives a context-bound clone of
// the underlying page so the caller's deadline governs the CDP calls.
type Page struct {
	page *rod.Page
}

func (p *Page) URL() string {
	info, err := p.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

func (p *Page) Title(ctx context.Context) (string, error) {
	info, err := p.page.Context(ctx).Info()
	if err != nil {
		return "", err
	}
	return info.Title, nil
}

func (p *Page) HTML(ctx context.Context) (string, error) {
	return p.page.Context(ctx).HTML()
}

func (p *Page) Screenshot(ctx context.Context) ([]byte, error) {
	return p.page.Context(ctx).Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
}

func (p *Page) Has(ctx context.Context, selector string) (bool, error) {
	has, _, err := p.page.Context(ctx).Has(selector)
	return has, err
}

func (p *Page) ReadText(ctx context.Context, selector string) (string, error) {
	el, err := p.page.Context(ctx).Element(selector)
	if err != nil {
		return "", err
	}
	return el.Text()
}

func (p *Page) ReadHTML(ctx context.Context, selector string) (string, error) {
	el, err := p.page.Context(ctx).Element(selector)
	if err != nil {
		return "", err
	}
	return el.HTML()
}

func (p *Page) Type(ctx context.Context, selector, text string) error {
	el, err := p.page.Context(ctx).Element(selector)
	if err != nil {
		return err
	}
	if err := el.Focus(); err != nil {
		return err
	}
	return el.Input(text)
}

func (p *Page) TypeActive(ctx context.Context, text string) error {
	return p.page.Context(ctx).InsertText(text)
}

func (p *Page) Click(ctx context.Context, selector string) error {
	el, err := p.page.Context(ctx).Element(selector)
	if err != nil {
		return err
	}
	return el.Click(proto.InputMouseButtonLeft, 1)
}

func (p *Page) ClickAt(ctx context.Context, x, y int) error {
	page := p.page.Context(ctx)
	if err := page.Mouse.MoveTo(proto.NewPoint(float64(x), float64(y))); err != nil {
		return err
	}
	return page.Mouse.Click(proto.InputMouseButtonLeft, 1)
}

func (p *Page) Submit(ctx context.Context) error {
	return p.page.Context(ctx).Keyboard.Press(input.Enter)
}

func (p *Page) Close() error {
	return p.page.Close()
}
