package render

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRenderer_Unicode(t *testing.T) {
	r := NewRenderer(ProtocolUnicode, color.Black)
	out, err := r.Render(solid(40, 20, color.NRGBA{R: 0x66, G: 0x7e, B: 0xea, A: 0xff}), 10, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if n := strings.Count(line, "▀"); n != 10 {
			t.Errorf("line %d: expected 10 half-blocks, got %d", i, n)
		}
		if !strings.HasSuffix(line, "\033[0m") {
			t.Errorf("line %d should end with a reset", i)
		}
	}
	if !strings.Contains(out, "38;2;102;126;234") {
		t.Error("expected series color in foreground escape")
	}
}

func TestRenderer_UnicodeTransparentUsesBackground(t *testing.T) {
	bg := color.NRGBA{R: 0x1e, G: 0x1b, B: 0x2e, A: 0xff}
	r := NewRenderer(ProtocolUnicode, bg)
	out, err := r.Render(image.NewRGBA(image.Rect(0, 0, 8, 8)), 4, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "38;2;30;27;46m") {
		t.Error("transparent pixels should render as the background color")
	}
}

func TestRenderer_Kitty(t *testing.T) {
	r := NewRenderer(ProtocolKitty, nil)
	out, err := r.Render(solid(16, 8, color.White), 20, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "\033_Gf=100,a=T,t=d,c=20,r=4,m=0;") {
		t.Errorf("unexpected kitty prefix: %q", out[:min(len(out), 40)])
	}
	if !strings.HasSuffix(out, "\033\\") {
		t.Error("kitty output should end with ST")
	}
}

func TestRenderKitty_Chunks(t *testing.T) {
	data := make([]byte, kittyChunkSize*2)
	out := renderKitty(data, 10, 5)

	if !strings.Contains(out, "m=1;") {
		t.Error("first chunk should announce more data")
	}
	if !strings.Contains(out, "\033_Gm=0;") {
		t.Error("last chunk should close the transfer")
	}
	if got := strings.Count(out, "\033_G"); got < 2 {
		t.Errorf("expected multiple chunks, got %d", got)
	}
}

func TestRenderer_ITerm2(t *testing.T) {
	r := NewRenderer(ProtocolITerm2, nil)
	out, err := r.Render(solid(16, 8, color.White), 30, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "\033]1337;File=name=chart.png;") {
		t.Errorf("unexpected iTerm2 prefix: %q", out[:min(len(out), 40)])
	}
	if !strings.Contains(out, "width=30;height=4") {
		t.Error("expected cell dimensions in iTerm2 args")
	}
	if !strings.HasSuffix(out, "\007") {
		t.Error("iTerm2 output should end with BEL")
	}
}

func TestRenderer_Errors(t *testing.T) {
	img := solid(4, 4, color.White)

	if _, err := NewRenderer(ProtocolNone, nil).Render(img, 4, 2); !errors.Is(err, ErrUnsupportedProtocol) {
		t.Errorf("expected ErrUnsupportedProtocol, got %v", err)
	}
	r := NewRenderer(ProtocolUnicode, nil)
	if _, err := r.Render(nil, 4, 2); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("expected ErrEmptyImage for nil image, got %v", err)
	}
	if _, err := r.Render(img, 0, 2); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("expected ErrEmptyImage for zero area, got %v", err)
	}
	if r.Protocol() != ProtocolUnicode {
		t.Errorf("expected unicode protocol, got %v", r.Protocol())
	}
}
