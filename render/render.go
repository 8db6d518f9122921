// Package render is the frame orchestrator: it selects the standard or
// deep-zoom path, builds the per-frame reference orbit and series table, and
// dispatches per-pixel work across a tile worker pool.
package render

import (
	"context"
	"image"
	"runtime"
	"sync"

	fractal "github.com/jo56/fractal-madness"
	"github.com/jo56/fractal-madness/dd"
	"github.com/jo56/fractal-madness/deep"
)

// Mode forces a rendering path; ModeAuto switches on the zoom threshold.
type Mode int

const (
	ModeAuto Mode = iota
	ModeStandard
	ModeDeep
)

// Options configures a Renderer. Zero values pick sensible defaults.
type Options struct {
	Workers      int
	TileW, TileH int
	Mode         Mode

	// OnTile, if set, is called after each finished tile. Tiles are
	// disjoint, but calls arrive from multiple workers.
	OnTile func(tile image.Rectangle)
}

// Renderer renders frames for successive parameter states. It holds no
// per-frame state itself; every frame gets a fresh immutable snapshot.
type Renderer struct {
	opts Options
}

// New creates a renderer.
func New(opts Options) *Renderer {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.TileW <= 0 {
		opts.TileW = 64
	}
	if opts.TileH <= 0 {
		opts.TileH = 64
	}
	return &Renderer{opts: opts}
}

// frame is the immutable snapshot one dispatch works from. The orbit and
// series table are fully built before any pixel work starts and never
// mutated afterwards.
type frame struct {
	params fractal.ViewParams
	w, h   int

	// Standard-path mapping: coord = origin + pixel·step.
	originRe, originIm float64
	stepRe, stepIm     float64

	// Deep path.
	deep      bool
	perPixelC bool
	orbit     *deep.Orbit
	sa        *deep.Approximation
	corner    dd.Complex // top-left delta from the reference anchor
	step      dd.Complex
}

// supportsDeep reports whether the perturbation recurrence applies to t.
// The closed form epsilon' = 2·Z·epsilon + epsilon² (+ delta) holds for the
// analytic quadratic maps only; the absolute-value folds would need their
// own derivation, so those types stay on the standard path.
func supportsDeep(t fractal.Type) bool {
	return t == fractal.Mandelbrot || t == fractal.Julia
}

// UsesDeep reports which path Render will take for p.
func (r *Renderer) UsesDeep(p fractal.ViewParams) bool {
	switch r.opts.Mode {
	case ModeStandard:
		return false
	case ModeDeep:
		return supportsDeep(p.Type) && p.Power == 2
	default:
		return deep.UseDeep(p.Zoom) && supportsDeep(p.Type) && p.Power == 2
	}
}

// newFrame builds the snapshot, recomputing the reference orbit and SA table
// in full when the deep path is active. There is no incremental reuse
// between frames.
func (r *Renderer) newFrame(p fractal.ViewParams, w, h int) *frame {
	scale := 2.0 / p.Zoom
	aspect := float64(w) / float64(h)

	f := &frame{
		params: p,
		w:      w,
		h:      h,
		stepRe: scale * aspect * 2 / float64(w),
		stepIm: scale * 2 / float64(h),
	}
	f.originRe = real(p.Center) - 0.5*float64(w)*f.stepRe
	f.originIm = imag(p.Center) - 0.5*float64(h)*f.stepIm

	if !r.UsesDeep(p) {
		return f
	}

	f.deep = true
	f.perPixelC = !p.Type.IsJuliaMode()

	// The reference orbit is capped; iterating pixels past it would be
	// indistinguishable from an escaped reference. Normalization and escape
	// checks all use the clamped count.
	if p.MaxIter > deep.MaxRefOrbit {
		p.MaxIter = deep.MaxRefOrbit
		f.params = p
	}

	center := dd.FromComplex128(p.Center)
	juliaC := dd.FromComplex128(complex(
		float64(real(p.JuliaC)), float64(imag(p.JuliaC))))
	er2 := float64(p.EscapeRadius) * float64(p.EscapeRadius)

	f.orbit = deep.ComputeOrbit(center, juliaC, p.Type, p.MaxIter, er2)
	f.sa = deep.ComputeApproximation(f.orbit, 2.0/p.Zoom, deep.SATolerance, f.perPixelC)

	f.corner = dd.Complex{
		Re: dd.FromFloat64(-0.5 * float64(w) * f.stepRe),
		Im: dd.FromFloat64(-0.5 * float64(h) * f.stepIm),
	}
	f.step = dd.Complex{
		Re: dd.FromFloat64(f.stepRe),
		Im: dd.FromFloat64(f.stepIm),
	}
	return f
}

// DeepParams assembles the deep-zoom uniform for the frame's dispatch.
func (f *frame) DeepParams() deep.Params {
	var skip uint32
	if f.sa != nil {
		skip = f.sa.Skip
	}
	er := float64(f.params.EscapeRadius)
	return deep.Params{
		Width:          uint32(f.w),
		Height:         uint32(f.h),
		MaxIter:        f.params.MaxIter,
		SASkip:         skip,
		EscapeRadiusSq: float32(er * er),
		Scheme:         f.params.Scheme,
		Flags:          f.params.Flags,
		RefOrbitLen:    uint32(f.orbit.Len()),
		CornerDelta:    f.corner,
		PixelStep:      f.step,
	}
}

// BuildDeepParams exposes the uniform assembly for an external device
// dispatch: the caller gets the uniform block plus the orbit and SA table to
// upload alongside it.
func (r *Renderer) BuildDeepParams(p fractal.ViewParams, w, h int) (deep.Params, *deep.Orbit, *deep.Approximation, bool) {
	forced := &Renderer{opts: r.opts}
	forced.opts.Mode = ModeDeep
	f := forced.newFrame(p, w, h)
	if !f.deep {
		return deep.Params{}, nil, nil, false
	}
	return f.DeepParams(), f.orbit, f.sa, true
}

// renderTile fills one tile of the output image. Tiles are disjoint, so
// concurrent writes to img need no locking.
func (f *frame) renderTile(img *image.RGBA, tile image.Rectangle) {
	p := f.params
	er2 := float64(p.EscapeRadius) * float64(p.EscapeRadius)

	for py := tile.Min.Y; py < tile.Max.Y; py++ {
		for px := tile.Min.X; px < tile.Max.X; px++ {
			var res fractal.PixelResult
			if f.deep {
				delta := dd.Complex{
					Re: f.corner.Re.Add(f.step.Re.MulF32(float32(px))),
					Im: f.corner.Im.Add(f.step.Im.MulF32(float32(py))),
				}
				res = deep.RenderPixel(delta, f.orbit, f.sa, p.MaxIter, er2, f.perPixelC)
			} else {
				coord := complex(
					f.originRe+float64(px)*f.stepRe,
					f.originIm+float64(py)*f.stepIm,
				)
				res = fractal.Iterate(coord, p)
			}
			img.SetRGBA(px, py, fractal.Shade(res, p))
		}
	}
}

// Render produces one frame. A canceled context abandons the frame outright;
// partial results are discarded, never carried over.
func (r *Renderer) Render(ctx context.Context, p fractal.ViewParams, w, h int) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	f := r.newFrame(p, w, h)

	tiles := splitTiles(img.Bounds(), r.opts.TileW, r.opts.TileH)
	work := make(chan image.Rectangle)

	var wg sync.WaitGroup
	for i := 0; i < r.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tile := range work {
				f.renderTile(img, tile)
				if r.opts.OnTile != nil {
					r.opts.OnTile(tile)
				}
			}
		}()
	}

	var err error
feed:
	for _, tile := range tiles {
		select {
		case work <- tile:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(work)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	return img, nil
}
