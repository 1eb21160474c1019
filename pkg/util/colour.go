package util

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var InvalidHexColourError = errors.New("Hex colour must be 6 hexadecimal digits")

// RGB is a display colour with 0-255 components.
type RGB struct {
	R int `json:"r" yaml:"r"`
	G int `json:"g" yaml:"g"`
	B int `json:"b" yaml:"b"`
}

// Hex2RGB converts "#RRGGBB" or "RRGGBB" into its components.
func Hex2RGB(hex string) (RGB, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")

	if len(hex) != 6 {
		return RGB{}, InvalidHexColourError
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, InvalidHexColourError
	}

	return RGB{
		R: int(value >> 16 & 0xFF),
		G: int(value >> 8 & 0xFF),
		B: int(value & 0xFF),
	}, nil
}

// RGB2HSV returns hue in degrees and saturation/value in the range 0-1.
func RGB2HSV(r, g, b int) (float64, float64, float64) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	delta := max - min

	var h float64
	switch {
	case delta == 0:
		h = 0
	case max == rf:
		h = math.Mod((gf-bf)/delta, 6)
	case max == gf:
		h = (bf-rf)/delta + 2
	default:
		h = (rf-gf)/delta + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}

	var s float64
	if max != 0 {
		s = delta / max
	}

	return h, s, max
}
