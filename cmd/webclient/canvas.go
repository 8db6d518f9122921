//go:build js && wasm

package main

import "syscall/js"

func logScreen(msg string) {
	doc := js.Global().Get("document")
	el := doc.Call("getElementById", "log")
	el.Set("textContent", el.Get("textContent").String()+msg+"\n")
}

func initCanvas(width, height int, color string) {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "screen")

	canvas.Set("width", width)
	canvas.Set("height", height)

	ctx := canvas.Call("getContext", "2d")
	ctx.Set("fillStyle", color)
	ctx.Call("fillRect", 0, 0, width, height)
}

// drawFrame blits an RGBA pixel buffer onto the canvas.
func drawFrame(pix []byte, width, height int) {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "screen")
	ctx := canvas.Call("getContext", "2d")

	jsData := js.Global().Get("Uint8ClampedArray").New(len(pix))
	js.CopyBytesToJS(jsData, pix)

	imageData := js.Global().Get("ImageData").New(jsData, width, height)
	ctx.Call("putImageData", imageData, 0, 0)
}

// setWarning shows or clears the iteration warning banner.
func setWarning(text string) {
	doc := js.Global().Get("document")
	el := doc.Call("getElementById", "warning")
	if el.IsNull() {
		return
	}
	el.Set("textContent", text)
}
