// Package gosseract implements visual text detection using the Tesseract OCR
// engine via gosseract.
package gosseract

import (
	"context"

	"github.com/fwojciec/askskill"
	"github.com/otiai10/gosseract/v2"
)

// Ensure Detector implements askskill.TextDetector at compile time.
var _ askskill.TextDetector = (*Detector)(nil)

// Detector recognizes text in screenshots at text-line granularity, so
// multi-word labels ("chat with ai", "ask a question") arrive as one
// detection. A Tesseract client is not safe for concurrent use, so Detect
// creates one per call; callers partition large images and run detections
// concurrently.
type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// Detect recognizes text in a PNG image and returns each text line with its
// bounding box and the engine's confidence in [0, 100].
func (d *Detector) Detect(ctx context.Context, image []byte) ([]askskill.DetectedText, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImageFromBytes(image); err != nil {
		return nil, askskill.Errorf(askskill.EINVALID, "image could not be read")
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, askskill.Errorf(askskill.EINTERNAL, "text detection failed")
	}

	detected := make([]askskill.DetectedText, 0, len(boxes))
	for _, b := range boxes {
		if b.Word == "" {
			continue
		}
		detected = append(detected, askskill.DetectedText{
			Text: b.Word,
			Box: askskill.Box{
				X:      b.Box.Min.X,
				Y:      b.Box.Min.Y,
				Width:  b.Box.Dx(),
				Height: b.Box.Dy(),
			},
			Confidence: b.Confidence,
		})
	}
	return detected, nil
}
