//go:build js && wasm

package main

import (
	"io"
	"sync"
	"syscall/js"
)

// wsConn wraps a browser WebSocket into a message-oriented Go API.
type wsConn struct {
	ws js.Value

	mu     sync.Mutex // js onclose can preempt WriteMessage
	closed bool

	readCh chan []byte

	openCh chan struct{} // closed once connected
	err    error
}

func newWSConn(ws js.Value) *wsConn {
	c := &wsConn{
		ws:     ws,
		readCh: make(chan []byte, 8),
		openCh: make(chan struct{}),
	}

	ws.Set("binaryType", "arraybuffer")

	ws.Set("onopen", js.FuncOf(func(js.Value, []js.Value) any {
		close(c.openCh)
		return nil
	}))

	ws.Set("onerror", js.FuncOf(func(js.Value, []js.Value) any {
		c.mu.Lock()
		c.err = io.ErrUnexpectedEOF
		c.mu.Unlock()
		close(c.openCh)
		return nil
	}))

	ws.Set("onmessage", js.FuncOf(func(this js.Value, args []js.Value) any {
		data := args[0].Get("data")
		jsDataToBytes(data, func(b []byte) {
			c.readCh <- b
		})
		return nil
	}))

	ws.Set("onclose", js.FuncOf(func(js.Value, []js.Value) any {
		logScreen("ws onClose received")
		c.mu.Lock()
		c.closed = true
		close(c.readCh)
		c.mu.Unlock()
		return nil
	}))

	return c
}

// ReadMessage blocks for the next complete binary message.
func (c *wsConn) ReadMessage() ([]byte, error) {
	msg, ok := <-c.readCh
	if !ok {
		return nil, io.EOF
	}
	return msg, nil
}

// WriteMessage sends one binary message.
func (c *wsConn) WriteMessage(p []byte) error {
	if err := c.waitOpen(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return io.ErrClosedPipe
	}

	u8 := js.Global().Get("Uint8Array").New(len(p))
	js.CopyBytesToJS(u8, p)
	c.ws.Call("send", u8)
	return nil
}

func (c *wsConn) waitOpen() error {
	<-c.openCh

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return c.err
	}
	if c.closed {
		return io.ErrClosedPipe
	}
	return nil
}

func jsDataToBytes(data js.Value, deliver func([]byte)) {
	// Uint8Array / Uint8ClampedArray
	if data.InstanceOf(js.Global().Get("Uint8Array")) ||
		data.InstanceOf(js.Global().Get("Uint8ClampedArray")) {

		b := make([]byte, data.Get("byteLength").Int())
		js.CopyBytesToGo(b, data)
		deliver(b)
		return
	}

	// ArrayBuffer
	if data.InstanceOf(js.Global().Get("ArrayBuffer")) {
		u8 := js.Global().Get("Uint8Array").New(data)
		b := make([]byte, u8.Get("byteLength").Int())
		js.CopyBytesToGo(b, u8)
		deliver(b)
		return
	}

	// Blob → async
	if data.InstanceOf(js.Global().Get("Blob")) {
		promise := data.Call("arrayBuffer")
		then := js.FuncOf(func(this js.Value, args []js.Value) any {
			u8 := js.Global().Get("Uint8Array").New(args[0])
			b := make([]byte, u8.Get("byteLength").Int())
			js.CopyBytesToGo(b, u8)
			deliver(b)
			return nil
		})
		promise.Call("then", then)
		return
	}

	panic("unsupported JS binary type")
}
