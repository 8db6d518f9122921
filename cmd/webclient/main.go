//go:build js && wasm

// The web client displays frames from the render server in a browser
// canvas. Mouse drags pan, the wheel zooms, and a few keys cycle fractal
// type, color scheme and modifier flags; every interaction ships a fresh
// parameter buffer to the server.
package main

import (
	"fmt"
	"log"
	"syscall/js"

	fractal "github.com/jo56/fractal-madness"
	"github.com/jo56/fractal-madness/deep"
)

const (
	canvasWidth  = 1280
	canvasHeight = 800
)

type app struct {
	conn   *wsConn
	params fractal.ViewParams
	view   deep.View

	dragging     bool
	lastX, lastY float64
}

func main() {
	log.Println("web client starting")
	logScreen("web client starting")

	loc := js.Global().Get("window").Get("location")
	host := loc.Get("host").String()
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	wsURL := proto + "://" + host + "/ws"

	logScreen("connecting to " + wsURL)
	ws := js.Global().Get("WebSocket").New(wsURL)

	a := &app{
		conn:   newWSConn(ws),
		params: fractal.DefaultParams(),
	}
	a.params.Width = canvasWidth
	a.params.Height = canvasHeight

	initCanvas(canvasWidth, canvasHeight, "#3a3a6e")
	a.installInput()

	go a.receiveLoop()
	a.sendParams()

	// Keep the Go program alive for the JS callbacks.
	select {}
}

func (a *app) sendParams() {
	buf := a.params.EncodeUniform()
	if err := a.conn.WriteMessage(buf[:]); err != nil {
		logScreen(fmt.Sprintf("send params: %v", err))
		return
	}

	// Past the switchover the uniform's f32 center has already lost the
	// pan; follow up with the full-precision view.
	if deep.UseDeep(a.params.Zoom) {
		a.view.SyncFromStandard(a.params)
		if err := a.conn.WriteMessage(a.view.EncodeMessage()); err != nil {
			logScreen(fmt.Sprintf("send deep view: %v", err))
		}
	}
}

func (a *app) receiveLoop() {
	for {
		msg, err := a.conn.ReadMessage()
		if err != nil {
			logScreen(fmt.Sprintf("connection lost: %v", err))
			return
		}

		switch fractal.MessageMagic(msg) {
		case fractal.FrameMagic:
			h, pix, err := fractal.DecodeFrame(msg)
			if err != nil {
				logScreen(fmt.Sprintf("bad frame: %v", err))
				continue
			}
			drawFrame(pix, int(h.Width), int(h.Height))
		case fractal.WarningMagic:
			w, err := fractal.DecodeWarning(msg)
			if err != nil {
				continue
			}
			if w.Active {
				setWarning(fmt.Sprintf("High iteration count (threshold %d) may reduce performance", w.Threshold))
			} else {
				setWarning("")
			}
		}
	}
}

func (a *app) installInput() {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "screen")

	canvas.Call("addEventListener", "mousedown", js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := args[0]
		a.dragging = true
		a.lastX = ev.Get("offsetX").Float()
		a.lastY = ev.Get("offsetY").Float()
		return nil
	}))

	canvas.Call("addEventListener", "mouseup", js.FuncOf(func(js.Value, []js.Value) any {
		a.dragging = false
		return nil
	}))

	canvas.Call("addEventListener", "mousemove", js.FuncOf(func(this js.Value, args []js.Value) any {
		if !a.dragging {
			return nil
		}
		ev := args[0]
		x, y := ev.Get("offsetX").Float(), ev.Get("offsetY").Float()
		a.params.Pan(x-a.lastX, y-a.lastY, canvasWidth, canvasHeight)
		a.lastX, a.lastY = x, y
		a.sendParams()
		return nil
	}))

	canvas.Call("addEventListener", "wheel", js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := args[0]
		ev.Call("preventDefault")
		a.params.ZoomBy(-ev.Get("deltaY").Float() * 0.001)
		a.sendParams()
		return nil
	}))

	doc.Call("addEventListener", "keydown", js.FuncOf(func(this js.Value, args []js.Value) any {
		switch args[0].Get("key").String() {
		case "f":
			a.params.Type = (a.params.Type + 1) % fractal.NumTypes
			a.params.Scheme = a.params.Type.DefaultScheme()
			a.params.Reset()
		case "c":
			a.params.Scheme = (a.params.Scheme + 1) % fractal.NumSchemes
		case "s":
			a.params.Flags.Set(fractal.FlagSmooth, !a.params.Flags.Smooth())
		case "i":
			a.params.Flags.Set(fractal.FlagInvert, !a.params.Flags.Invert())
		case "o":
			a.params.Flags.Set(fractal.FlagOffset, !a.params.Flags.Offset())
		case "r":
			a.params.Reset()
		case "+", "=":
			a.params.MaxIter += 64
		case "-":
			if a.params.MaxIter > 64 {
				a.params.MaxIter -= 64
			}
		default:
			return nil
		}
		a.sendParams()
		return nil
	}))
}
