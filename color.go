package fractal

import (
	"image/color"
	"math"
)

// Scheme indexes the palette catalogue.
type Scheme uint32

const (
	Classic Scheme = iota
	Fire
	Ocean
	Rainbow
	Monochrome
	Electric
	Sunset
	Ice
	Forest
	Psychedelic
	Gold
	Plasma
	Cosmic
	Toxic
	Pastel
	Thermal
	Neon
	Copper
	Twilight
	Aurora
	Magma
	Mint
	Royal
	Cherry
	Grayscale
	Bands

	NumSchemes Scheme = 26
)

var schemeNames = [NumSchemes]string{
	"Classic", "Fire", "Ocean", "Rainbow", "Monochrome", "Electric",
	"Sunset", "Ice", "Forest", "Psychedelic", "Gold", "Plasma", "Cosmic",
	"Toxic", "Pastel", "Thermal", "Neon", "Copper", "Twilight", "Aurora",
	"Magma", "Mint", "Royal", "Cherry", "Grayscale", "Bands",
}

func (s Scheme) String() string {
	if s < NumSchemes {
		return schemeNames[s]
	}
	return "Classic"
}

// RGB is a color triple in [0,1] per channel. Some palettes intentionally
// overshoot 1 and rely on downstream clamping.
type RGB struct {
	R, G, B float32
}

func fract(x float64) float64 { return x - math.Floor(x) }

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// cosPal is the cosine gradient a + b*cos(2π(c·t + d)).
func cosPal(t float64, a, b, c, d [3]float64) RGB {
	return RGB{
		float32(a[0] + b[0]*math.Cos(2*math.Pi*(c[0]*t+d[0]))),
		float32(a[1] + b[1]*math.Cos(2*math.Pi*(c[1]*t+d[1]))),
		float32(a[2] + b[2]*math.Cos(2*math.Pi*(c[2]*t+d[2]))),
	}
}

// ramp interpolates linearly through evenly spaced color stops.
func ramp(t float64, stops ...[3]float64) RGB {
	n := len(stops)
	if n == 1 {
		s := stops[0]
		return RGB{float32(s[0]), float32(s[1]), float32(s[2])}
	}
	x := clamp01(t) * float64(n-1)
	i := int(x)
	if i >= n-1 {
		i = n - 2
	}
	f := x - float64(i)
	a, b := stops[i], stops[i+1]
	return RGB{
		float32(a[0] + (b[0]-a[0])*f),
		float32(a[1] + (b[1]-a[1])*f),
		float32(a[2] + (b[2]-a[2])*f),
	}
}

// Color maps a normalized escape value to RGB. It is a pure function of its
// inputs; the modifier flags are applied by Shade before this call.
func Color(t float64, scheme Scheme) RGB {
	switch scheme {
	case Classic:
		return cosPal(t, [3]float64{0.5, 0.5, 0.5}, [3]float64{0.5, 0.5, 0.5},
			[3]float64{1, 1, 1}, [3]float64{0.00, 0.33, 0.67})
	case Fire:
		return ramp(t,
			[3]float64{0, 0, 0}, [3]float64{0.5, 0, 0}, [3]float64{1, 0.25, 0},
			[3]float64{1, 0.75, 0}, [3]float64{1, 1, 0.9})
	case Ocean:
		return ramp(t,
			[3]float64{0, 0.02, 0.15}, [3]float64{0, 0.25, 0.55},
			[3]float64{0.05, 0.6, 0.8}, [3]float64{0.7, 0.95, 1})
	case Rainbow:
		return cosPal(t, [3]float64{0.5, 0.5, 0.5}, [3]float64{0.5, 0.5, 0.5},
			[3]float64{1, 1, 1}, [3]float64{0.00, -0.33, -0.67})
	case Monochrome:
		return RGB{float32(t), float32(t), float32(t)}
	case Electric:
		return cosPal(t, [3]float64{0.15, 0.15, 0.5}, [3]float64{0.45, 0.45, 0.5},
			[3]float64{2, 2, 1}, [3]float64{0.6, 0.5, 0.0})
	case Sunset:
		return ramp(t,
			[3]float64{0.15, 0.05, 0.3}, [3]float64{0.6, 0.15, 0.4},
			[3]float64{0.95, 0.45, 0.25}, [3]float64{1, 0.8, 0.5},
			[3]float64{1, 0.6, 0.7})
	case Ice:
		return ramp(t,
			[3]float64{0.02, 0.05, 0.2}, [3]float64{0.2, 0.4, 0.75},
			[3]float64{0.55, 0.8, 0.95}, [3]float64{1, 1, 1})
	case Forest:
		return ramp(t,
			[3]float64{0.02, 0.08, 0.02}, [3]float64{0.05, 0.3, 0.08},
			[3]float64{0.15, 0.55, 0.15}, [3]float64{0.55, 0.75, 0.25},
			[3]float64{0.9, 0.9, 0.55})
	case Psychedelic:
		return cosPal(t, [3]float64{0.5, 0.5, 0.5}, [3]float64{0.5, 0.5, 0.5},
			[3]float64{3, 5, 7}, [3]float64{0.0, 0.2, 0.4})
	case Gold:
		return RGB{
			float32(math.Pow(t, 0.55)),
			float32(0.85 * math.Pow(t, 0.9)),
			float32(0.4 * math.Pow(t, 1.8)),
		}
	case Plasma:
		return cosPal(t, [3]float64{0.5, 0.2, 0.6}, [3]float64{0.5, 0.3, 0.4},
			[3]float64{1, 2, 1}, [3]float64{0.8, 0.4, 0.1})
	case Cosmic:
		// Overshoots on purpose near t=1; clamped downstream.
		return RGB{
			float32(1.2 * math.Pow(t, 1.5)),
			float32(0.9 * math.Pow(t, 1.2)),
			float32(1.3 * math.Pow(t, 0.8)),
		}
	case Toxic:
		return ramp(t,
			[3]float64{0.05, 0.1, 0}, [3]float64{0.2, 0.45, 0.02},
			[3]float64{0.5, 0.85, 0.05}, [3]float64{0.85, 1, 0.1},
			[3]float64{1, 1, 0.6})
	case Pastel:
		return cosPal(t, [3]float64{0.75, 0.75, 0.75}, [3]float64{0.25, 0.25, 0.25},
			[3]float64{1, 1, 1}, [3]float64{0.0, 0.33, 0.67})
	case Thermal:
		return ramp(t,
			[3]float64{0, 0, 0}, [3]float64{0.3, 0, 0.45},
			[3]float64{0.8, 0.1, 0.15}, [3]float64{1, 0.55, 0},
			[3]float64{1, 0.95, 0.3}, [3]float64{1, 1, 1})
	case Neon:
		return cosPal(t, [3]float64{0.5, 0.5, 0.5}, [3]float64{0.5, 0.5, 0.5},
			[3]float64{2, 1, 3}, [3]float64{0.5, 0.2, 0.25})
	case Copper:
		return RGB{
			float32(1.25 * t), // overshoots; clamped downstream
			float32(0.78 * t),
			float32(0.5 * t),
		}
	case Twilight:
		return cosPal(t, [3]float64{0.4, 0.35, 0.55}, [3]float64{0.35, 0.3, 0.35},
			[3]float64{1, 1, 1}, [3]float64{0.9, 0.6, 0.3})
	case Aurora:
		return ramp(t,
			[3]float64{0.01, 0.02, 0.08}, [3]float64{0, 0.35, 0.35},
			[3]float64{0.1, 0.8, 0.45}, [3]float64{0.45, 0.5, 0.85},
			[3]float64{0.8, 0.7, 1})
	case Magma:
		return RGB{
			float32(math.Pow(t, 0.7)),
			float32(0.9 * math.Pow(t, 1.8)),
			float32(0.6 * math.Pow(t, 3.0)),
		}
	case Mint:
		return ramp(t,
			[3]float64{0.02, 0.15, 0.12}, [3]float64{0.1, 0.5, 0.4},
			[3]float64{0.45, 0.85, 0.7}, [3]float64{0.92, 1, 0.96})
	case Royal:
		return cosPal(t, [3]float64{0.5, 0.4, 0.5}, [3]float64{0.5, 0.35, 0.45},
			[3]float64{1, 1, 1}, [3]float64{0.75, 0.9, 0.4})
	case Cherry:
		return ramp(t,
			[3]float64{0.1, 0, 0.02}, [3]float64{0.55, 0.02, 0.1},
			[3]float64{0.9, 0.2, 0.35}, [3]float64{1, 0.7, 0.8})
	case Grayscale:
		g := math.Pow(t, 0.8)
		return RGB{float32(g), float32(g), float32(g)}
	case Bands:
		if fract(t*10) < 0.5 {
			return RGB{}
		}
		return RGB{1, 1, 1}
	default:
		return Color(t, Classic)
	}
}

// SmoothT computes the continuous iteration estimate normalized by maxIter.
// nu follows the standard continuous-iteration-count formula; the inner log
// argument is floored to keep it finite near the escape boundary.
func SmoothT(iterations, magnitudeSq, power float32, maxIter uint32) float64 {
	m := math.Max(float64(magnitudeSq), 1.0000001)
	p := float64(power)
	if p < 2 {
		p = 2
	}
	nu := math.Log(math.Log(m)/2/math.Ln2) / math.Log(p)
	return (float64(iterations) + 1 - nu) / float64(maxIter)
}

// Shade turns a pixel result into a display color: normalization, modifier
// flags, palette lookup, clamp. Points that never escape are black.
func Shade(res PixelResult, p ViewParams) color.RGBA {
	if !res.Escaped {
		return color.RGBA{A: 255}
	}

	var t float64
	if p.MaxIter == 0 {
		t = 0
	} else if p.Flags.Smooth() {
		t = SmoothT(res.Iterations, res.MagnitudeSq, p.Power, p.MaxIter)
	} else {
		t = float64(res.Iterations) / float64(p.MaxIter)
	}

	if p.Flags.Offset() {
		t = fract(t * 5)
	}
	if p.Flags.Invert() {
		t = 1 - t
	}
	t = clamp01(t)

	rgb := Color(t, p.Scheme)
	return color.RGBA{
		R: uint8(clamp01(float64(rgb.R)) * 255),
		G: uint8(clamp01(float64(rgb.G)) * 255),
		B: uint8(clamp01(float64(rgb.B)) * 255),
		A: 255,
	}
}
