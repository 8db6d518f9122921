// renderimg renders a single frame to a PNG file. Views come from a named
// landmark preset or explicit coordinates.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"strings"

	fractal "github.com/jo56/fractal-madness"
	"github.com/jo56/fractal-madness/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	preset := flag.String("preset", "", "landmark preset name (see -list)")
	julia := flag.String("julia", "", "julia constant preset name (see -list)")
	list := flag.Bool("list", false, "list presets and exit")
	re := flag.Float64("re", -0.5, "center, real part")
	im := flag.Float64("im", 0.0, "center, imaginary part")
	zoom := flag.Float64("zoom", 1.0, "zoom factor")
	ftype := flag.Uint("type", 0, "fractal type index")
	scheme := flag.Uint("scheme", 0, "color scheme index")
	maxIter := flag.Uint("iter", 256, "maximum iterations")
	power := flag.Float64("power", 2.0, "map power (2-8)")
	width := flag.Int("width", 1920, "image width")
	height := flag.Int("height", 1080, "image height")
	out := flag.String("out", "fractal.png", "output file")
	flag.Parse()

	if *list {
		for _, l := range fractal.Locations {
			fmt.Printf("%-22s %s  zoom %g\n", l.Name, l.Type, l.Zoom)
		}
		fmt.Println()
		for _, j := range fractal.JuliaPresets {
			fmt.Printf("%-22s julia c = %v\n", j.Name, j.C)
		}
		return nil
	}

	p := fractal.DefaultParams()
	p.Center = complex(*re, *im)
	p.Zoom = *zoom
	p.Type = fractal.Type(*ftype)
	p.Scheme = fractal.Scheme(*scheme)
	p.MaxIter = uint32(*maxIter)
	p.Power = float32(*power)

	if *preset != "" {
		l, ok := fractal.LocationByName(*preset)
		if !ok {
			// Try a case-insensitive match before giving up.
			for _, cand := range fractal.Locations {
				if strings.EqualFold(cand.Name, *preset) {
					l, ok = cand, true
					break
				}
			}
		}
		if !ok {
			return fmt.Errorf("unknown preset %q", *preset)
		}
		l.Apply(&p)
	}

	if *julia != "" {
		j, ok := fractal.JuliaPresetByName(*julia)
		if !ok {
			for _, cand := range fractal.JuliaPresets {
				if strings.EqualFold(cand.Name, *julia) {
					j, ok = cand, true
					break
				}
			}
		}
		if !ok {
			return fmt.Errorf("unknown julia preset %q", *julia)
		}
		p.JuliaC = j.C
		if !p.Type.NeedsJuliaC() {
			p.Type = fractal.Julia
			p.Center = fractal.Julia.DefaultCenter()
		}
	}

	if !p.Type.Valid() {
		return fmt.Errorf("fractal type %d out of range", *ftype)
	}

	if th, warn := p.IterationWarning(); warn {
		log.Printf("note: %d iterations exceeds the %s threshold of %d", p.MaxIter, p.Type, th)
	}

	log.Printf("rendering %s at %v, zoom %g", p.Type, p.Center, p.Zoom)
	renderer := render.New(render.Options{})
	img, err := renderer.Render(context.Background(), p, *width, *height)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	log.Printf("rendered image saved to %q", *out)
	return nil
}
