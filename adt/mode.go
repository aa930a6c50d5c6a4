package adt

import "sync/atomic"

// Mode governs whether structural type mismatches are diagnosed.
type Mode int32

const (
	// Development mode reports structural mismatches and keeps annotations.
	Development Mode = iota
	// Production mode skips structural checks and drops annotations.
	Production
)

func (m Mode) String() string {
	switch m {
	case Development:
		return "development"
	case Production:
		return "production"
	}
	return "unknown"
}

var currentMode atomic.Int32

func init() {
	currentMode.Store(int32(defaultMode))
}

// SetMode sets the mode for the whole process and returns the previous one.
// It is meant to be called once at startup.
func SetMode(m Mode) Mode {
	old := Mode(currentMode.Swap(int32(m)))
	if old != m {
		tracer().Infof("adt mode switched from %s to %s", old, m)
	}
	return old
}

// CurrentMode returns the mode in effect.
func CurrentMode() Mode {
	return Mode(currentMode.Load())
}

func isProduction() bool {
	return CurrentMode() == Production
}
