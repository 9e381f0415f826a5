package ladder

import "fmt"

// Point is a position on the board: a line index and a height in [0, 100].
type Point struct {
	Line   int     `json:"line"`
	Height float64 `json:"height"`
}

// Path is the ordered descent of one participant.
type Path []Point

// FinalLine returns the line the path ends on, or -1 for an empty path.
func (p Path) FinalLine() int {
	if len(p) == 0 {
		return -1
	}
	return p[len(p)-1].Line
}

// Crossings returns how many rungs the path took.
func (p Path) Crossings() int {
	n := 0
	for i := 1; i < len(p); i++ {
		if p[i].Line != p[i-1].Line {
			n++
		}
	}
	return n
}

// TracePath walks the board from the top of startLine. At each step it takes the
// lowest rung below the current height that touches the current line, records the
// arrival and departure points and crosses over. The walk ends at height 100.
// The returned path starts with (startLine, 0).
func TracePath(b Board, startLine int) (Path, error) {
	if startLine < 0 || startLine >= b.lines {
		return nil, fmt.Errorf("%w: start line %d out of range [0, %d)", ErrInvalidInput, startLine, b.lines)
	}

	line := startLine
	height := TopHeight
	path := Path{{Line: line, Height: height}}
	for {
		next, ok := nextRung(b.rungs, line, height)
		if !ok {
			break
		}
		path = append(path, Point{Line: line, Height: next.Height})
		line = next.Other(line)
		path = append(path, Point{Line: line, Height: next.Height})
		height = next.Height
	}
	return append(path, Point{Line: line, Height: BottomHeight}), nil
}

// nextRung finds the rung with the smallest height strictly above height that
// touches line. Ties keep the earliest inserted rung.
func nextRung(rungs []Rung, line int, height float64) (Rung, bool) {
	var best Rung
	found := false
	for _, r := range rungs {
		if !r.Touches(line) || r.Height <= height {
			continue
		}
		if !found || r.Height < best.Height {
			best = r
			found = true
		}
	}
	return best, found
}

// TraceAll traces every line and returns the final line reached from each start.
func TraceAll(b Board) ([]int, error) {
	finals := make([]int, b.lines)
	for i := 0; i < b.lines; i++ {
		p, err := TracePath(b, i)
		if err != nil {
			return nil, err
		}
		finals[i] = p.FinalLine()
	}
	return finals, nil
}

// IsPermutation reports whether finals maps start lines onto distinct end lines.
func IsPermutation(finals []int) bool {
	seen := make([]bool, len(finals))
	for _, f := range finals {
		if f < 0 || f >= len(finals) || seen[f] {
			return false
		}
		seen[f] = true
	}
	return true
}
