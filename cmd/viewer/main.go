// The viewer is a native interactive front end for the rendering engine:
// drag to pan, wheel to zoom, keys to switch fractal type, palette and
// modifier flags. Frames are rendered asynchronously; a quarter-resolution
// preview keeps interaction fluid while the full frame computes.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	xdraw "golang.org/x/image/draw"

	fractal "github.com/jo56/fractal-madness"
	"github.com/jo56/fractal-madness/deep"
	"github.com/jo56/fractal-madness/render"
)

func main() {
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 800, "window height")
	flag.Parse()

	g := newGame(*width, *height)

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("fractal-madness")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

type game struct {
	w, h     int
	renderer *render.Renderer
	params   fractal.ViewParams
	view     *deep.View

	juliaIdx int

	dirty bool

	mu     sync.Mutex
	frame  *image.RGBA // latest finished frame (preview or full)
	cancel context.CancelFunc

	screen *ebiten.Image

	dragging     bool
	lastX, lastY int
}

func newGame(w, h int) *game {
	p := fractal.DefaultParams()
	p.Width = float32(w)
	p.Height = float32(h)
	return &game{
		w:        w,
		h:        h,
		renderer: render.New(render.Options{}),
		params:   p,
		view:     deep.NewView(real(p.Center), imag(p.Center)),
		dirty:    true,
	}
}

// deepActive reports whether input should run through the deep view state,
// which keeps the center at full float64 and tracks zoom in log10 steps.
func (g *game) deepActive() bool {
	return g.renderer.UsesDeep(g.params)
}

// syncView adopts the standard view after a native-path mutation so a
// crossing into deep mode starts from the current position.
func (g *game) syncView() {
	if g.deepActive() {
		g.view.SyncFromStandard(g.params)
	}
}

func (g *game) Update() error {
	g.handleInput()

	if g.dirty {
		g.dirty = false
		g.kickRender()
	}

	g.mu.Lock()
	frame := g.frame
	g.frame = nil
	g.mu.Unlock()

	if frame != nil {
		if g.screen == nil {
			g.screen = ebiten.NewImage(g.w, g.h)
		}
		g.screen.WritePixels(frame.Pix)
	}
	return nil
}

func (g *game) handleInput() {
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}
	if g.dragging && (x != g.lastX || y != g.lastY) {
		if g.deepActive() {
			g.view.Pan(float64(x-g.lastX), float64(y-g.lastY), float64(g.w), float64(g.h))
			g.view.ToStandard(&g.params)
		} else {
			g.params.Pan(float64(x-g.lastX), float64(y-g.lastY), float64(g.w), float64(g.h))
		}
		g.lastX, g.lastY = x, y
		g.dirty = true
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		if g.deepActive() {
			g.view.ZoomBy(wy * 0.1)
			g.view.ToStandard(&g.params)
		} else {
			g.params.ZoomBy(wy * 0.1)
			g.syncView()
		}
		g.dirty = true
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.params.Type = (g.params.Type + 1) % fractal.NumTypes
		g.params.Scheme = g.params.Type.DefaultScheme()
		g.params.Reset()
		g.view.Reset()
		g.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.params.Scheme = (g.params.Scheme + 1) % fractal.NumSchemes
		g.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.params.Flags.Set(fractal.FlagSmooth, !g.params.Flags.Smooth())
		g.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		g.params.Flags.Set(fractal.FlagInvert, !g.params.Flags.Invert())
		g.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.params.Flags.Set(fractal.FlagOffset, !g.params.Flags.Offset())
		g.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyJ):
		if g.params.Type.NeedsJuliaC() {
			g.juliaIdx = (g.juliaIdx + 1) % len(fractal.JuliaPresets)
			g.params.JuliaC = fractal.JuliaPresets[g.juliaIdx].C
			g.dirty = true
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.params.Reset()
		g.view.Reset()
		g.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		g.params.MaxIter += 64
		g.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		if g.params.MaxIter > 64 {
			g.params.MaxIter -= 64
			g.dirty = true
		}
	}
}

// kickRender abandons any in-flight frame and starts rendering the current
// parameters: a fast upscaled preview first, then the full frame.
func (g *game) kickRender() {
	g.mu.Lock()
	if g.cancel != nil {
		g.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	g.mu.Unlock()

	p := g.params
	go func() {
		if pw, ph := g.w/4, g.h/4; pw > 0 && ph > 0 {
			small, err := g.renderer.Render(ctx, p, pw, ph)
			if err == nil {
				full := image.NewRGBA(image.Rect(0, 0, g.w, g.h))
				xdraw.ApproxBiLinear.Scale(full, full.Bounds(), small, small.Bounds(), xdraw.Src, nil)
				g.deliver(full)
			}
		}

		img, err := g.renderer.Render(ctx, p, g.w, g.h)
		if err != nil {
			return // superseded
		}
		g.deliver(img)
	}()
}

func (g *game) deliver(img *image.RGBA) {
	g.mu.Lock()
	g.frame = img
	g.mu.Unlock()
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.screen != nil {
		screen.DrawImage(g.screen, nil)
	}

	status := fmt.Sprintf("%s | %s | zoom %.3g | iter %d",
		g.params.Type, g.params.Scheme, g.params.Zoom, g.params.MaxIter)
	if g.renderer.UsesDeep(g.params) {
		status += " | deep"
	}
	if th, warn := g.params.IterationWarning(); warn {
		status += fmt.Sprintf(" | slow above %d iterations", th)
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
