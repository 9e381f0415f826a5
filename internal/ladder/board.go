package ladder

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// ErrInvalidInput is returned for participant counts below 2, out-of-range lines
// and malformed options or rungs.
var ErrInvalidInput = errors.New("ladder: invalid input")

const (
	// TopHeight and BottomHeight bound the normalized vertical axis.
	TopHeight    = 0.0
	BottomHeight = 100.0

	DefaultRungsPerLine = 4
	DefaultMinHeight    = 10.0
	DefaultMaxHeight    = 90.0
	DefaultMinGap       = 5.0
)

// Rung connects two adjacent vertical lines at a given height.
type Rung struct {
	FromLine int     `json:"fromLine"`
	ToLine   int     `json:"toLine"`
	Height   float64 `json:"height"`
}

// Touches reports whether the rung is incident on line.
func (r Rung) Touches(line int) bool {
	return r.FromLine == line || r.ToLine == line
}

// Other returns the endpoint opposite to line.
func (r Rung) Other(line int) int {
	if r.FromLine == line {
		return r.ToLine
	}
	return r.FromLine
}

// Board is the set of rungs for one game. It is never mutated after creation.
type Board struct {
	lines int
	rungs []Rung
}

// NewBoard builds a board from explicit rungs. Every rung must join line i to i+1
// with both endpoints in range and a height strictly inside (0, 100).
func NewBoard(lines int, rungs []Rung) (Board, error) {
	if lines < 2 {
		return Board{}, fmt.Errorf("%w: board needs at least 2 lines, got %d", ErrInvalidInput, lines)
	}
	for i, r := range rungs {
		if r.ToLine != r.FromLine+1 {
			return Board{}, fmt.Errorf("%w: rung %d joins non-adjacent lines %d and %d", ErrInvalidInput, i, r.FromLine, r.ToLine)
		}
		if r.FromLine < 0 || r.ToLine >= lines {
			return Board{}, fmt.Errorf("%w: rung %d out of range for %d lines", ErrInvalidInput, i, lines)
		}
		if r.Height <= TopHeight || r.Height >= BottomHeight {
			return Board{}, fmt.Errorf("%w: rung %d height %.2f outside (0, 100)", ErrInvalidInput, i, r.Height)
		}
	}
	cp := make([]Rung, len(rungs))
	copy(cp, rungs)
	return Board{lines: lines, rungs: cp}, nil
}

// Lines returns the number of vertical lines.
func (b Board) Lines() int { return b.lines }

// RungCount returns the number of accepted rungs.
func (b Board) RungCount() int { return len(b.rungs) }

// Rungs returns a copy of the rungs in insertion order.
func (b Board) Rungs() []Rung {
	cp := make([]Rung, len(b.rungs))
	copy(cp, b.rungs)
	return cp
}

type options struct {
	rungsPerLine int
	minHeight    float64
	maxHeight    float64
	minGap       float64
}

// Option tunes GenerateBoard.
type Option func(*options)

// WithRungsPerLine sets how many candidate rungs are attempted per participant.
func WithRungsPerLine(n int) Option {
	return func(o *options) { o.rungsPerLine = n }
}

// WithHeightRange sets the half-open interval [min, max) candidate heights are drawn from.
func WithHeightRange(min, max float64) Option {
	return func(o *options) {
		o.minHeight = min
		o.maxHeight = max
	}
}

// WithMinGap sets the separation required between rungs sharing a line.
func WithMinGap(gap float64) Option {
	return func(o *options) { o.minGap = gap }
}

func (o options) validate() error {
	if o.rungsPerLine < 0 {
		return fmt.Errorf("%w: rungs per line must not be negative", ErrInvalidInput)
	}
	if o.minHeight <= TopHeight || o.maxHeight >= BottomHeight || o.minHeight >= o.maxHeight {
		return fmt.Errorf("%w: height range [%.2f, %.2f) must lie inside (0, 100)", ErrInvalidInput, o.minHeight, o.maxHeight)
	}
	if o.minGap <= 0 {
		return fmt.Errorf("%w: minimum gap must be positive", ErrInvalidInput)
	}
	return nil
}

// ValidateOptions reports whether opts describe a usable generator
// configuration, wrapping ErrInvalidInput when they do not.
func ValidateOptions(opts ...Option) error {
	return buildOptions(opts).validate()
}

func buildOptions(opts []Option) options {
	o := options{
		rungsPerLine: DefaultRungsPerLine,
		minHeight:    DefaultMinHeight,
		maxHeight:    DefaultMaxHeight,
		minGap:       DefaultMinGap,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// GenerateBoard draws participantCount*rungsPerLine candidate rungs and keeps those
// that are not within the minimum gap of a rung already on either of their lines.
// Rejected candidates are dropped, not retried, so the final count varies.
// A nil rng falls back to a time-seeded source.
func GenerateBoard(rng *rand.Rand, participantCount int, opts ...Option) (Board, error) {
	if participantCount < 2 {
		return Board{}, fmt.Errorf("%w: need at least 2 participants, got %d", ErrInvalidInput, participantCount)
	}
	o := buildOptions(opts)
	if err := o.validate(); err != nil {
		return Board{}, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	attempts := participantCount * o.rungsPerLine
	rungs := make([]Rung, 0, attempts)
	for i := 0; i < attempts; i++ {
		from := rng.Intn(participantCount - 1)
		candidate := Rung{
			FromLine: from,
			ToLine:   from + 1,
			Height:   o.minHeight + rng.Float64()*(o.maxHeight-o.minHeight),
		}
		if crowded(rungs, candidate, o.minGap) {
			continue
		}
		rungs = append(rungs, candidate)
	}
	return Board{lines: participantCount, rungs: rungs}, nil
}

// crowded reports whether an existing rung on either of candidate's lines sits
// closer than gap to its height.
func crowded(existing []Rung, candidate Rung, gap float64) bool {
	for _, r := range existing {
		if !r.Touches(candidate.FromLine) && !r.Touches(candidate.ToLine) {
			continue
		}
		if math.Abs(r.Height-candidate.Height) < gap {
			return true
		}
	}
	return false
}
