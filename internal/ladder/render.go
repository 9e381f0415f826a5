package ladder

import "fmt"

// RenderPoint is a position on a normalized 0-100 drawing canvas.
type RenderPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RenderRung is a rung in canvas coordinates.
type RenderRung struct {
	From RenderPoint `json:"from"`
	To   RenderPoint `json:"to"`
}

// LineX returns the horizontal canvas position of a line. Lines are spaced evenly
// with half a slot of margin on each side.
func LineX(line, lineCount int) float64 {
	return float64(line+1) * (100 / float64(lineCount+1))
}

// ToRenderCoordinates maps a path onto the canvas. Heights are kept as y.
func ToRenderCoordinates(path Path, lineCount int) ([]RenderPoint, error) {
	if lineCount < 1 {
		return nil, fmt.Errorf("%w: line count must be positive, got %d", ErrInvalidInput, lineCount)
	}
	out := make([]RenderPoint, len(path))
	for i, p := range path {
		if p.Line < 0 || p.Line >= lineCount {
			return nil, fmt.Errorf("%w: point %d on line %d outside %d lines", ErrInvalidInput, i, p.Line, lineCount)
		}
		out[i] = RenderPoint{X: LineX(p.Line, lineCount), Y: p.Height}
	}
	return out, nil
}

// RenderBoard maps every rung of b onto the canvas.
func RenderBoard(b Board) []RenderRung {
	out := make([]RenderRung, len(b.rungs))
	for i, r := range b.rungs {
		out[i] = RenderRung{
			From: RenderPoint{X: LineX(r.FromLine, b.lines), Y: r.Height},
			To:   RenderPoint{X: LineX(r.ToLine, b.lines), Y: r.Height},
		}
	}
	return out
}
