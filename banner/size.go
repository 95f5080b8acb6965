package banner

import (
	"fmt"
	"math"
)

// SizingMode selects how the banner width is derived from the terminal.
type SizingMode int

const (
	// SizeUnconstrained places no width constraint on the generator.
	SizeUnconstrained SizingMode = iota
	// SizeFixed uses an explicit column count.
	SizeFixed
	// SizeResponsive tracks the full terminal width.
	SizeResponsive
	// SizeFraction tracks a fraction of the terminal width.
	SizeFraction
)

// Sizing describes how to derive the banner width from the terminal width.
// The zero value is unconstrained.
type Sizing struct {
	mode     SizingMode
	width    int
	fraction float64
}

// Fixed returns a sizing that always resolves to w columns.
// Negative widths are treated as zero.
func Fixed(w int) Sizing {
	if w < 0 {
		w = 0
	}
	return Sizing{mode: SizeFixed, width: w}
}

// Responsive returns a sizing that resolves to the full terminal width.
func Responsive() Sizing {
	return Sizing{mode: SizeResponsive}
}

// ResponsiveFraction returns a sizing that resolves to p times the terminal
// width. p is clamped into [0, 1] before use.
func ResponsiveFraction(p float64) Sizing {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return Sizing{mode: SizeFraction, fraction: p}
}

// Unconstrained returns a sizing that resolves to no width at all.
func Unconstrained() Sizing {
	return Sizing{}
}

// Mode returns the sizing mode.
func (s Sizing) Mode() SizingMode {
	return s.mode
}

// Resolve computes the effective width for the given terminal width.
// ok is false when the sizing is unconstrained, in which case the caller
// should omit the width constraint entirely.
func (s Sizing) Resolve(termWidth int) (width int, ok bool) {
	switch s.mode {
	case SizeFixed:
		return s.width, true
	case SizeResponsive:
		return termWidth, true
	case SizeFraction:
		return int(math.Floor(float64(termWidth) * s.fraction)), true
	default:
		return 0, false
	}
}

// String returns a short description suitable for a status bar.
func (s Sizing) String() string {
	switch s.mode {
	case SizeFixed:
		return fmt.Sprintf("%dcol", s.width)
	case SizeResponsive:
		return "full"
	case SizeFraction:
		return fmt.Sprintf("%d%%", int(math.Round(s.fraction*100)))
	default:
		return "auto"
	}
}
