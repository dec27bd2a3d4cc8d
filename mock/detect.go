package mock

import (
	"context"

	"github.com/fwojciec/askskill"
)

var _ askskill.TextDetector = (*TextDetector)(nil)

// TextDetector is a mock implementation of askskill.TextDetector.
type TextDetector struct {
	DetectFn func(ctx context.Context, image []byte) ([]askskill.DetectedText, error)
}

func (d *TextDetector) Detect(ctx context.Context, image []byte) ([]askskill.DetectedText, error) {
	return d.DetectFn(ctx, image)
}
