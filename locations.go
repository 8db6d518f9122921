package fractal

// LocationPreset is a named landmark view. Power of zero keeps the current
// power setting.
type LocationPreset struct {
	Name   string
	Center complex128
	Zoom   float64
	Type   Type
	Power  float32
}

// Apply copies the preset into p.
func (l LocationPreset) Apply(p *ViewParams) {
	p.Center = l.Center
	p.Zoom = l.Zoom
	p.Type = l.Type
	if l.Power != 0 {
		p.Power = l.Power
	}
}

// Classic landmarks across the fractal catalogue.
var Locations = []LocationPreset{
	{Name: "Overview", Center: complex(-0.5, 0), Zoom: 1.0, Type: Mandelbrot},

	// Seahorse Valley: dense filaments and repeating seahorse curls
	{Name: "Seahorse Valley", Center: complex(-0.7436, 0.1318), Zoom: 300, Type: Mandelbrot},

	// Elephant Valley: large bulb with trunk-like tendrils
	{Name: "Elephant Valley", Center: complex(0.2817, 0.5771), Zoom: 500, Type: Mandelbrot},

	{Name: "Triple Spiral", Center: complex(-0.088, 0.654), Zoom: 50, Type: Mandelbrot},

	// Self-similar Mandelbrot copy on the real axis
	{Name: "Mini Mandelbrot", Center: complex(-1.7498, 0), Zoom: 2000, Type: Mandelbrot},

	{Name: "Lightning", Center: complex(-0.1703, -1.0651), Zoom: 200, Type: Mandelbrot},
	{Name: "Starfish", Center: complex(-0.374, 0.6598), Zoom: 1500, Type: Mandelbrot},
	{Name: "Sun", Center: complex(-0.7766, -0.1366), Zoom: 2000, Type: Mandelbrot},

	// Multibrot overviews with n-fold symmetry
	{Name: "Cubic Multibrot", Center: 0, Zoom: 0.8, Type: Mandelbrot, Power: 3},
	{Name: "Quartic Multibrot", Center: 0, Zoom: 0.8, Type: Mandelbrot, Power: 4},
	{Name: "Quintic Multibrot", Center: 0, Zoom: 0.8, Type: Mandelbrot, Power: 5},

	{Name: "Burning Ship", Center: complex(-0.4, -0.6), Zoom: 1.0, Type: BurningShip},
	{Name: "Tricorn", Center: complex(-0.3, 0), Zoom: 0.8, Type: Tricorn},
	{Name: "Celtic Knot", Center: complex(-0.1, 0.65), Zoom: 50, Type: Celtic},
	{Name: "Buffalo Horns", Center: complex(-1.2, 0.3), Zoom: 50, Type: Buffalo},
	{Name: "Perpendicular Spike", Center: complex(-1.75, 0), Zoom: 100, Type: PerpendicularMandelbrot},
	{Name: "Heart Chamber", Center: complex(0, 0.5), Zoom: 10, Type: Heart},
}

// JuliaPreset is a named julia constant.
type JuliaPreset struct {
	Name string
	C    complex64
}

// Well-known julia constants for the quadratic family.
var JuliaPresets = []JuliaPreset{
	{Name: "Classic", C: complex(-0.7, 0.27015)},
	{Name: "Dragon", C: complex(-0.8, 0.156)},
	{Name: "San Marco", C: complex(-0.75, 0)},
	{Name: "Siegel Disk", C: complex(-0.391, -0.587)},
	{Name: "Dendrite", C: complex(0, 1)},
	{Name: "Spiral", C: complex(-0.4, 0.6)},
	{Name: "Douady Rabbit", C: complex(-0.123, 0.745)},
	{Name: "Snowflake", C: complex(0.285, 0.01)},
	{Name: "Galaxies", C: complex(-0.7269, 0.1889)},
	{Name: "Lightning", C: complex(-0.162, 1.04)},
}

// LocationByName finds a landmark preset by its name.
func LocationByName(name string) (LocationPreset, bool) {
	for _, l := range Locations {
		if l.Name == name {
			return l, true
		}
	}
	return LocationPreset{}, false
}

// JuliaPresetByName finds a julia constant by its name.
func JuliaPresetByName(name string) (JuliaPreset, bool) {
	for _, j := range JuliaPresets {
		if j.Name == name {
			return j, true
		}
	}
	return JuliaPreset{}, false
}
