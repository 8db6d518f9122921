// The render server drives the numerical engine for remote display clients.
// Clients connect over a websocket, send 64-byte parameter buffers on every
// interaction, and receive warning and RGBA frame messages back.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jo56/fractal-madness/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "http listen address")
	width := flag.Int("width", 1280, "frame width in pixels")
	height := flag.Int("height", 800, "frame height in pixels")
	static := flag.String("static", "./static", "static assets directory")
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", *width, *height)
	}

	renderer := render.New(render.Options{})

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(renderer, *width, *height))
	mux.Handle("/", http.FileServer(http.Dir(*static)))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost%s", *addr)
	return srv.ListenAndServe()
}
