// Package fractal holds the shared data model of the renderer: the fractal
// and color-scheme catalogues, view parameters with their wire encoding, the
// native-precision iteration engine and the color mapping pipeline.
package fractal

// Type selects one of the escape-time iteration maps.
type Type uint32

const (
	Mandelbrot Type = iota
	Julia
	BurningShip
	Tricorn
	Celtic
	BuffaloJulia
	CelticJulia
	Buffalo
	PerpendicularMandelbrot
	PerpendicularBurningShip
	Heart
	TricornJulia
	BurningShipJulia

	// Newton and Phoenix are not rendered by this engine. Their ids remain
	// reserved so the UI can keep per-type settings and query iteration
	// warning thresholds for them.
	Newton
	Phoenix

	NumTypes = 13 // renderable types; Newton/Phoenix excluded
)

var typeNames = [...]string{
	Mandelbrot:               "Mandelbrot",
	Julia:                    "Julia",
	BurningShip:              "Burning Ship",
	Tricorn:                  "Tricorn",
	Celtic:                   "Celtic",
	BuffaloJulia:             "Buffalo Julia",
	CelticJulia:              "Celtic Julia",
	Buffalo:                  "Buffalo",
	PerpendicularMandelbrot:  "Perpendicular Mandelbrot",
	PerpendicularBurningShip: "Perpendicular Burning Ship",
	Heart:                    "Heart",
	TricornJulia:             "Tricorn Julia",
	BurningShipJulia:         "Burning Ship Julia",
	Newton:                   "Newton",
	Phoenix:                  "Phoenix",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Mandelbrot"
}

// Valid reports whether t is one of the renderable catalogue entries.
func (t Type) Valid() bool {
	return t < NumTypes
}

// IsJuliaMode reports whether the per-pixel coordinate seeds z rather than c.
// For these types c is fixed at the julia constant for the whole image.
func (t Type) IsJuliaMode() bool {
	switch t {
	case Julia, BuffaloJulia, CelticJulia, TricornJulia, BurningShipJulia:
		return true
	}
	return false
}

// NeedsJuliaC reports whether the type consumes the julia_c parameter.
func (t Type) NeedsJuliaC() bool { return t.IsJuliaMode() }

// DefaultScheme is the recommended color scheme when switching to t.
func (t Type) DefaultScheme() Scheme {
	switch t {
	case BurningShip, PerpendicularBurningShip:
		return Fire
	case Tricorn, TricornJulia:
		return Electric
	case Celtic:
		return Forest
	case BuffaloJulia, Buffalo:
		return Plasma
	case CelticJulia:
		return Aurora
	case Heart:
		return Cherry
	default:
		return Classic
	}
}

// DefaultCenter is the view center that frames the whole set for t.
func (t Type) DefaultCenter() complex128 {
	switch t {
	case Mandelbrot, Celtic, Buffalo:
		return complex(-0.5, 0)
	case BurningShip:
		return complex(-0.4, -0.6)
	case Tricorn:
		return complex(-0.3, 0)
	case PerpendicularMandelbrot:
		return complex(-0.5, 0)
	case PerpendicularBurningShip:
		return complex(-0.5, -0.5)
	default:
		return 0
	}
}

// Iteration counts above these thresholds are expensive enough to warrant a
// UI warning. Values reflect the relative per-iteration cost of each map.
var warnThresholds = map[Type]uint32{
	Newton:       140,
	Phoenix:      330,
	BuffaloJulia: 400,
	CelticJulia:  400,
	Celtic:       430,
	Tricorn:      450,
	BurningShip:  450,
	Mandelbrot:   500,
	Julia:        500,
}

// WarnThreshold returns the iteration warning threshold for t.
// Types without an entry never warn.
func WarnThreshold(t Type) (uint32, bool) {
	th, ok := warnThresholds[t]
	return th, ok
}
