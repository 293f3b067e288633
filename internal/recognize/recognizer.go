package recognize

import (
	"context"
	"image"
	"strings"
)

// Line is one recognized text fragment with its confidence in [0,1].
type Line struct {
	Text       string
	Confidence float64
}

// Recognizer extracts text lines from a captured image.
type Recognizer interface {
	Recognize(ctx context.Context, img image.Image) ([]Line, error)
}

// JoinLines collapses recognized lines into the single string the matcher
// consumes. Empty fragments are dropped.
func JoinLines(lines []Line) string {
	parts := make([]string, 0, len(lines))

	for _, l := range lines {
		if l.Text == "" {
			continue
		}

		parts = append(parts, l.Text)
	}

	return strings.Join(parts, " ")
}
