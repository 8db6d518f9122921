package main

import (
	"context"
	"image"
	"log"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	xdraw "golang.org/x/image/draw"

	fractal "github.com/jo56/fractal-madness"
	"github.com/jo56/fractal-madness/deep"
	"github.com/jo56/fractal-madness/render"
)

// websocketHandler upgrades the connection and runs the parameter/frame loop
// for one display client.
func websocketHandler(renderer *render.Renderer, width, height int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "session ended")

		log.Printf("client connected: %s", r.RemoteAddr)
		s := &session{
			conn:     c,
			renderer: renderer,
			w:        width,
			h:        height,
		}
		s.serve(r.Context())
		log.Printf("client gone: %s", r.RemoteAddr)
	}
}

// session renders frames for one client. A new parameter buffer invalidates
// any in-flight render; its partial result is discarded outright.
type session struct {
	conn     *websocket.Conn
	renderer *render.Renderer
	w, h     int

	writeMu sync.Mutex

	mu     sync.Mutex
	params fractal.ViewParams
	cancel context.CancelFunc
}

func (s *session) serve(ctx context.Context) {
	defer s.abort()

	for {
		typ, data, err := s.conn.Read(ctx)
		if err != nil {
			return
		}
		if typ != websocket.MessageBinary {
			continue
		}

		switch {
		case len(data) == fractal.UniformSize:
			params, err := fractal.DecodeUniform(data)
			if err != nil {
				log.Printf("bad parameter buffer from client: %v", err)
				continue
			}
			s.submit(ctx, params)

		case fractal.MessageMagic(data) == fractal.DeepViewMagic:
			// The uniform's f32 center cannot express a deep-zoom pan; the
			// view message restores the center and zoom at full precision
			// on top of the last uniform's type/scheme/flags.
			v, err := deep.DecodeViewMessage(data)
			if err != nil {
				log.Printf("bad deep view from client: %v", err)
				continue
			}
			s.mu.Lock()
			v.ToStandard(&s.params)
			params := s.params
			s.mu.Unlock()
			s.submit(ctx, params)
		}
	}
}

// submit cancels the in-flight frame and starts rendering the new one.
func (s *session) submit(parent context.Context, p fractal.ViewParams) {
	s.mu.Lock()
	s.params = p
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.mu.Unlock()

	go s.renderFrame(ctx, p)
}

func (s *session) abort() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
}

func (s *session) renderFrame(ctx context.Context, p fractal.ViewParams) {
	th, warn := p.IterationWarning()
	s.send(ctx, fractal.EncodeWarning(fractal.Warning{Threshold: th, Active: warn}))

	// Cheap quarter-resolution pass first so interaction stays fluid; the
	// upscaled preview is replaced by the full frame when it lands.
	if pw, ph := s.w/4, s.h/4; pw > 0 && ph > 0 {
		small, err := s.renderer.Render(ctx, p, pw, ph)
		if err == nil {
			full := image.NewRGBA(image.Rect(0, 0, s.w, s.h))
			xdraw.ApproxBiLinear.Scale(full, full.Bounds(), small, small.Bounds(), xdraw.Src, nil)
			s.send(ctx, fractal.EncodeFrame(fractal.FrameHeader{
				Width: uint32(s.w), Height: uint32(s.h), Preview: true,
			}, full.Pix))
		}
	}

	img, err := s.renderer.Render(ctx, p, s.w, s.h)
	if err != nil {
		// Stale frame; a newer parameter buffer superseded it.
		return
	}
	s.send(ctx, fractal.EncodeFrame(fractal.FrameHeader{
		Width: uint32(s.w), Height: uint32(s.h),
	}, img.Pix))
}

func (s *session) send(ctx context.Context, payload []byte) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.conn.Write(ctx, websocket.MessageBinary, payload); err != nil {
		log.Printf("write: %v", err)
	}
}
