package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand"
	"time"
)

// NewSeededRand returns a math/rand source seeded from crypto/rand. It falls back to
// the clock if the system source cannot be read.
func NewSeededRand() *rand.Rand {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
}

// CountSummary aggregates integer samples such as rung counts per board
type CountSummary struct {
	Samples int
	Min     int
	Max     int
	Sum     int
}

// Add records one sample
func (s *CountSummary) Add(v int) {
	if s.Samples == 0 || v < s.Min {
		s.Min = v
	}
	if s.Samples == 0 || v > s.Max {
		s.Max = v
	}
	s.Samples++
	s.Sum += v
}

// Merge folds another summary into s
func (s *CountSummary) Merge(o CountSummary) {
	if o.Samples == 0 {
		return
	}
	if s.Samples == 0 || o.Min < s.Min {
		s.Min = o.Min
	}
	if s.Samples == 0 || o.Max > s.Max {
		s.Max = o.Max
	}
	s.Samples += o.Samples
	s.Sum += o.Sum
}

// Mean returns the arithmetic mean, or NaN when no samples were added
func (s CountSummary) Mean() float64 {
	if s.Samples == 0 {
		return math.NaN()
	}
	return float64(s.Sum) / float64(s.Samples)
}

// Rate returns hits/total as a fraction, 0 when total is 0
func Rate(hits, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}
