package analyze

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"sort"
	"strings"
	"sync"

	"github.com/fwojciec/askskill"
	"golang.org/x/sync/errgroup"
)

// Screenshot partitioning for concurrent text detection. A 2x2 grid keeps
// each region large enough that words rarely straddle a boundary while still
// cutting detection latency on full-page captures.
const (
	gridCols = 2
	gridRows = 2
)

// detectRegions runs text detection over the screenshot partitioned into a
// grid of regions scanned concurrently, then merges the matches back into
// viewport coordinates. Detections sharing a text line are joined into
// phrases, and results are sorted by position so identical input yields
// identical output regardless of completion order.
func (a *Analyzer) detectRegions(ctx context.Context, screenshot []byte) ([]askskill.DetectedText, error) {
	img, err := png.Decode(bytes.NewReader(screenshot))
	if err != nil {
		return nil, askskill.Errorf(askskill.EINVALID, "screenshot is not a valid PNG image")
	}

	sub, ok := img.(interface {
		SubImage(r image.Rectangle) image.Image
	})
	if !ok {
		// Decoded format doesn't support cropping; scan whole image.
		return a.detectWhole(ctx, screenshot)
	}

	bounds := img.Bounds()
	regionW := bounds.Dx() / gridCols
	regionH := bounds.Dy() / gridRows
	if regionW == 0 || regionH == 0 {
		return a.detectWhole(ctx, screenshot)
	}

	var mu sync.Mutex
	var all []askskill.DetectedText
	g, ctx := errgroup.WithContext(ctx)

	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			rect := image.Rect(
				bounds.Min.X+col*regionW,
				bounds.Min.Y+row*regionH,
				bounds.Min.X+(col+1)*regionW,
				bounds.Min.Y+(row+1)*regionH,
			)
			// The last column and row absorb any remainder pixels.
			if col == gridCols-1 {
				rect.Max.X = bounds.Max.X
			}
			if row == gridRows-1 {
				rect.Max.Y = bounds.Max.Y
			}

			g.Go(func() error {
				var buf bytes.Buffer
				if err := png.Encode(&buf, sub.SubImage(rect)); err != nil {
					return err
				}
				detected, err := a.Detector.Detect(ctx, buf.Bytes())
				if err != nil {
					return err
				}
				offsetX := rect.Min.X - bounds.Min.X
				offsetY := rect.Min.Y - bounds.Min.Y
				for i := range detected {
					detected[i].Box.X += offsetX
					detected[i].Box.Y += offsetY
				}
				mu.Lock()
				all = append(all, detected...)
				mu.Unlock()
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortByPosition(all)
	return mergeLines(all), nil
}

func (a *Analyzer) detectWhole(ctx context.Context, screenshot []byte) ([]askskill.DetectedText, error) {
	detected, err := a.Detector.Detect(ctx, screenshot)
	if err != nil {
		return nil, err
	}
	sortByPosition(detected)
	return mergeLines(detected), nil
}

func sortByPosition(detected []askskill.DetectedText) {
	sort.Slice(detected, func(i, j int) bool {
		if detected[i].Box.Y != detected[j].Box.Y {
			return detected[i].Box.Y < detected[j].Box.Y
		}
		if detected[i].Box.X != detected[j].Box.X {
			return detected[i].Box.X < detected[j].Box.X
		}
		return detected[i].Text < detected[j].Text
	})
}

// mergeLines joins detections that share a text line into phrases, so
// multi-word labels survive word-granularity detection and phrases split at a
// region boundary are reassembled. Detections are on one line when their
// vertical extents overlap; within a line they join left to right while the
// horizontal gap stays within the taller box's height. A merged phrase takes
// the union box and the lowest member confidence.
func mergeLines(detected []askskill.DetectedText) []askskill.DetectedText {
	if len(detected) < 2 {
		return detected
	}

	var lines [][]askskill.DetectedText
	var lineBoxes []askskill.Box
	for _, d := range detected {
		placed := false
		for i := range lines {
			if sameLine(lineBoxes[i], d.Box) {
				lines[i] = append(lines[i], d)
				lineBoxes[i] = unionBox(lineBoxes[i], d.Box)
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, []askskill.DetectedText{d})
			lineBoxes = append(lineBoxes, d.Box)
		}
	}

	var merged []askskill.DetectedText
	for _, line := range lines {
		sort.Slice(line, func(i, j int) bool { return line[i].Box.X < line[j].Box.X })
		run := []askskill.DetectedText{line[0]}
		for _, d := range line[1:] {
			prev := run[len(run)-1]
			if d.Box.X-(prev.Box.X+prev.Box.Width) > max(d.Box.Height, prev.Box.Height) {
				merged = append(merged, mergeRun(run))
				run = []askskill.DetectedText{d}
				continue
			}
			run = append(run, d)
		}
		merged = append(merged, mergeRun(run))
	}

	sortByPosition(merged)
	return merged
}

func mergeRun(run []askskill.DetectedText) askskill.DetectedText {
	out := run[0]
	var text strings.Builder
	text.WriteString(run[0].Text)
	for _, d := range run[1:] {
		text.WriteByte(' ')
		text.WriteString(d.Text)
		out.Box = unionBox(out.Box, d.Box)
		if d.Confidence < out.Confidence {
			out.Confidence = d.Confidence
		}
	}
	out.Text = text.String()
	return out
}

func sameLine(a, b askskill.Box) bool {
	return a.Y <= b.Y+b.Height && b.Y <= a.Y+a.Height
}

func unionBox(a, b askskill.Box) askskill.Box {
	minX := min(a.X, b.X)
	minY := min(a.Y, b.Y)
	maxX := max(a.X+a.Width, b.X+b.Width)
	maxY := max(a.Y+a.Height, b.Y+b.Height)
	return askskill.Box{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
