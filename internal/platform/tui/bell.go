package tui

import (
	"fmt"
	"io"
	"sync"

	"github.com/vovakirdan/unrocketry/internal/core"
)

// BellMode selects which cues ring the terminal bell.
type BellMode string

const (
	BellOff      BellMode = "off"
	BellGameOver BellMode = "gameover"
	BellAll      BellMode = "all"
)

// ParseBellMode validates a --sound flag value.
func ParseBellMode(s string) (BellMode, error) {
	switch BellMode(s) {
	case BellOff, BellGameOver, BellAll:
		return BellMode(s), nil
	default:
		return BellOff, fmt.Errorf("unknown sound mode %q (want off, gameover or all)", s)
	}
}

// Bell plays game cues as terminal bells on w. A nil Bell is silent.
type Bell struct {
	mu   sync.Mutex
	w    io.Writer
	mode BellMode
}

// NewBell creates a bell writing to w.
func NewBell(w io.Writer, mode BellMode) *Bell {
	return &Bell{w: w, mode: mode}
}

// Play rings the bell if the cue is enabled.
func (b *Bell) Play(c core.Cue) {
	if b == nil || b.w == nil {
		return
	}
	switch {
	case b.mode == BellAll:
	case b.mode == BellGameOver && c == core.CueGameOver:
	default:
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.w.Write([]byte{'\a'}) //nolint:errcheck // A missed bell is harmless
}
