// File: utils.go
package main

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

// lockedRand is a math/rand source safe for concurrent requests.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

// intRange returns a uniform integer in [lo, hi]. hi < lo yields lo.
func (l *lockedRand) intRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	// unsigned difference is exact for any pair of ints
	span := uint64(hi) - uint64(lo)
	l.mu.Lock()
	defer l.mu.Unlock()
	if span < math.MaxInt64 {
		return lo + int(l.r.Int63n(int64(span)+1))
	}
	// ranges wider than int63: rejection keeps at least half the draws
	for {
		if v := l.r.Uint64(); v <= span {
			return int(uint64(lo) + v)
		}
	}
}

// floatRange returns a uniform float in [lo, hi).
func (l *lockedRand) floatRange(lo, hi float64) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return lo + l.r.Float64()*(hi-lo)
}

func (l *lockedRand) shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}

// greyColor picks a dark grey that stays readable on a light background.
func (l *lockedRand) greyColor() string {
	v := l.intRange(0x22, 0x77)
	return fmt.Sprintf("#%02x%02x%02x", v, v, v)
}

// color picks a saturated colour; channels are capped so glyphs never fade
// into a white background.
func (l *lockedRand) color() string {
	return fmt.Sprintf("#%02x%02x%02x", l.intRange(0, 0xaa), l.intRange(0, 0xaa), l.intRange(0, 0xaa))
}

// glyphColor returns the fill used for one glyph or noise stroke.
func (l *lockedRand) glyphColor(colored bool) string {
	if colored {
		return l.color()
	}
	return l.greyColor()
}
