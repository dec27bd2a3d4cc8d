package askskill

import "context"

// Box is a bounding box in viewport pixel coordinates.
type Box struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Center returns the box's center point.
func (b Box) Center() (x, y int) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// DetectedText is one piece of text recognized on a rendered screenshot.
type DetectedText struct {
	Text string

	// Box locates the text in the image the detection ran against.
	Box Box

	// Confidence is the detector's confidence in [0, 100].
	Confidence float64
}

// TextDetector is the visual text-detection (OCR) capability consumed from a
// collaborator.
type TextDetector interface {
	// Detect recognizes text in a PNG image and returns each word or phrase
	// with its bounding box and confidence.
	Detect(ctx context.Context, image []byte) ([]DetectedText, error)
}

// DiscoverySource identifies how an interactive element was located.
type DiscoverySource string

// Discovery sources for AffordanceLocation.
const (
	SourceStructural DiscoverySource = "structural" // CSS selector match
	SourceVisual     DiscoverySource = "visual"     // OCR match on a screenshot
)

// AffordanceLocation is a located interactive element, such as a site's
// "Ask AI" launcher. For visual matches X and Y hold the bounding-box center
// and Confidence the OCR confidence; structural matches carry the matched
// selector as Label and a Confidence of 100.
type AffordanceLocation struct {
	Label      string          `json:"label"`
	X          int             `json:"x"`
	Y          int             `json:"y"`
	Source     DiscoverySource `json:"source"`
	Confidence float64         `json:"confidence"`
}
