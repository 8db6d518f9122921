package deep

import (
	"encoding/binary"
	"math"
	"testing"

	fractal "github.com/jo56/fractal-madness"
	"github.com/jo56/fractal-madness/dd"
)

func TestParamsBytesLayout(t *testing.T) {
	p := Params{
		Width:          1280,
		Height:         800,
		MaxIter:        1000,
		SASkip:         42,
		EscapeRadiusSq: 16,
		Scheme:         fractal.Fire,
		Flags:          fractal.Flags(fractal.FlagSmooth),
		RefOrbitLen:    777,
		CornerDelta:    dd.Complex{Re: dd.FromFloat64(-1e-11), Im: dd.FromFloat64(2e-11)},
		PixelStep:      dd.Complex{Re: dd.FromFloat64(3e-14), Im: dd.FromFloat64(3e-14)},
	}
	b := p.Bytes()
	if len(b) != ParamsSize {
		t.Fatalf("uniform size = %d, want %d", len(b), ParamsSize)
	}

	le := binary.LittleEndian
	if le.Uint32(b[0:]) != 1280 || le.Uint32(b[4:]) != 800 {
		t.Error("resolution block wrong")
	}
	if le.Uint32(b[8:]) != 1000 || le.Uint32(b[12:]) != 42 {
		t.Error("max_iter / sa_skip block wrong")
	}
	if math.Float32frombits(le.Uint32(b[16:])) != 16 {
		t.Error("escape_radius_sq wrong")
	}
	if le.Uint32(b[20:]) != uint32(fractal.Fire) || le.Uint32(b[24:]) != fractal.FlagSmooth {
		t.Error("scheme / flags block wrong")
	}
	if le.Uint32(b[28:]) != 777 {
		t.Error("ref_orbit_len wrong")
	}
	if math.Float32frombits(le.Uint32(b[32:])) != p.CornerDelta.Re.Hi ||
		math.Float32frombits(le.Uint32(b[36:])) != p.CornerDelta.Re.Lo {
		t.Error("corner delta hi/lo pair wrong")
	}
	if math.Float32frombits(le.Uint32(b[48:])) != p.PixelStep.Re.Hi {
		t.Error("pixel step wrong")
	}
}

func TestViewZoom(t *testing.T) {
	v := NewView(-0.5, 0)
	if v.ZoomFactor() != 1 {
		t.Errorf("initial zoom = %v", v.ZoomFactor())
	}
	v.Dirty = false
	v.ZoomBy(0.1) // half a decade per full wheel unit
	if math.Abs(v.Log10Zoom-0.05) > 1e-12 {
		t.Errorf("log10 zoom = %v", v.Log10Zoom)
	}
	if !v.Dirty {
		t.Error("zoom must mark the reference dirty")
	}
	// Zooming out below the overview clamps at 1x.
	v.ZoomBy(-10)
	if v.Log10Zoom != 0 {
		t.Errorf("log10 zoom after clamp = %v", v.Log10Zoom)
	}
}

func TestViewPanScalesWithZoom(t *testing.T) {
	v := NewView(0, 0)
	v.Log10Zoom = 1 // 10x
	v.Dirty = false
	v.Pan(10, 0, 100, 100)
	if math.Abs(v.CenterRe+0.04) > 1e-12 {
		t.Errorf("center = %v, want -0.04", v.CenterRe)
	}
	if !v.Dirty {
		t.Error("pan must mark the reference dirty")
	}
}

func TestViewSyncRoundTrip(t *testing.T) {
	p := fractal.DefaultParams()
	p.Center = complex(-0.7436, 0.1318)
	p.Zoom = 1e8
	p.MaxIter = 2000

	v := NewView(0, 0)
	v.SyncFromStandard(p)
	if v.CenterRe != -0.7436 || v.CenterIm != 0.1318 {
		t.Errorf("center = (%v, %v)", v.CenterRe, v.CenterIm)
	}
	if math.Abs(v.Log10Zoom-8) > 1e-12 {
		t.Errorf("log10 zoom = %v", v.Log10Zoom)
	}
	if v.MaxIter != 2000 || v.EscapeRadiusSq != 16 {
		t.Errorf("iter/radius: %d %v", v.MaxIter, v.EscapeRadiusSq)
	}

	var out fractal.ViewParams
	v.ToStandard(&out)
	if out.Center != p.Center || out.MaxIter != 2000 {
		t.Errorf("exported view: %+v", out)
	}
	if math.Abs(out.Zoom-1e8) > 1 {
		t.Errorf("exported zoom = %v", out.Zoom)
	}
}

func TestViewMessageCarriesDeepPan(t *testing.T) {
	v := NewView(-0.7436, 0.1318)
	v.Log10Zoom = 12
	v.Pan(256, 0, 512, 512) // half a screen, a shift of 2e-12

	shift := v.CenterRe - (-0.7436)
	if shift == 0 {
		t.Fatal("fixture pan had no effect")
	}

	msg := v.EncodeMessage()
	if len(msg) != ViewMessageSize {
		t.Fatalf("message size = %d, want %d", len(msg), ViewMessageSize)
	}
	if fractal.MessageMagic(msg) != fractal.DeepViewMagic {
		t.Fatalf("magic = %#x", fractal.MessageMagic(msg))
	}

	got, err := DecodeViewMessage(msg)
	if err != nil {
		t.Fatal(err)
	}
	if got.CenterRe != v.CenterRe || got.CenterIm != v.CenterIm {
		t.Errorf("center = (%v, %v), want (%v, %v)", got.CenterRe, got.CenterIm, v.CenterRe, v.CenterIm)
	}
	if got.Log10Zoom != 12 {
		t.Errorf("log10 zoom = %v", got.Log10Zoom)
	}
	if !got.Dirty {
		t.Error("a received view must mark the reference dirty")
	}

	// The same pan vanishes in the f32 uniform; that is why the message
	// exists.
	panned := fractal.DefaultParams()
	v.ToStandard(&panned)
	unpanned := panned
	unpanned.Center = complex(-0.7436, 0.1318)
	pb := panned.EncodeUniform()
	ub := unpanned.EncodeUniform()
	pdec, err := fractal.DecodeUniform(pb[:])
	if err != nil {
		t.Fatal(err)
	}
	udec, err := fractal.DecodeUniform(ub[:])
	if err != nil {
		t.Fatal(err)
	}
	if pdec.Center != udec.Center {
		t.Errorf("uniform resolved the deep pan (%v vs %v); fixture too coarse", pdec.Center, udec.Center)
	}
}

func TestDecodeViewMessageErrors(t *testing.T) {
	if _, err := DecodeViewMessage(make([]byte, 16)); err == nil {
		t.Error("short buffer should fail")
	}
	warn := fractal.EncodeWarning(fractal.Warning{Threshold: 500})
	if _, err := DecodeViewMessage(warn); err == nil {
		t.Error("warning message should not decode as a view")
	}
}

func TestViewReset(t *testing.T) {
	v := NewView(1, 2)
	v.Log10Zoom = 12
	v.Reset()
	if v.CenterRe != -0.5 || v.CenterIm != 0 || v.Log10Zoom != 0 {
		t.Errorf("after reset: %+v", v)
	}
	if !v.Dirty {
		t.Error("reset must mark the reference dirty")
	}
}
