package render

import (
	"image/color"
	"math"
	"sort"
)

// Scale maps a normalized value t in [0, 1] to a color.
type Scale func(t float64) color.RGBA

// scales holds the named color scales selectable by the shell.
var scales = map[string]Scale{
	"gray":    ramp(stop{0, 0, 0}, stop{255, 255, 255}),
	"viridis": ramp(stop{68, 1, 84}, stop{59, 82, 139}, stop{33, 145, 140}, stop{94, 201, 98}, stop{253, 231, 37}),
	"magma":   ramp(stop{0, 0, 4}, stop{81, 18, 124}, stop{183, 55, 121}, stop{252, 137, 97}, stop{252, 253, 191}),
	"hsv":     hsvScale,
}

// Scales lists the available scale names, sorted.
func Scales() []string {
	names := make([]string, 0, len(scales))
	for name := range scales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type stop struct{ r, g, b uint8 }

// ramp builds a piecewise-linear scale through evenly spaced anchor colors.
func ramp(anchors ...stop) Scale {
	return func(t float64) color.RGBA {
		t = clamp01(t)
		pos := t * float64(len(anchors)-1)
		lo := int(math.Floor(pos))
		if lo >= len(anchors)-1 {
			a := anchors[len(anchors)-1]
			return color.RGBA{a.r, a.g, a.b, 255}
		}
		frac := pos - float64(lo)
		a, b := anchors[lo], anchors[lo+1]
		return color.RGBA{
			R: lerp8(a.r, b.r, frac),
			G: lerp8(a.g, b.g, frac),
			B: lerp8(a.b, b.b, frac),
			A: 255,
		}
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// hsvScale sweeps the hue wheel at full saturation, skipping the last part
// of the wheel so the two ends stay distinguishable.
func hsvScale(t float64) color.RGBA {
	return hsv(clamp01(t)*0.85, 1, 1)
}

// Simple HSV → RGB
func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}
