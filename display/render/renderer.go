package render

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
)

// kittyChunkSize is the maximum number of base64 bytes per Kitty protocol chunk.
const kittyChunkSize = 4096

// ErrUnsupportedProtocol is returned when asked to render with ProtocolNone.
var ErrUnsupportedProtocol = errors.New("no image protocol available")

// ErrEmptyImage is returned for nil or zero-area images.
var ErrEmptyImage = errors.New("empty image")

// Renderer converts images to terminal output for one protocol.
type Renderer struct {
	protocol   Protocol
	background color.Color
}

// NewRenderer returns a Renderer. Transparent pixels are composited over
// background before half-block rendering.
func NewRenderer(p Protocol, background color.Color) *Renderer {
	if background == nil {
		background = color.Black
	}
	return &Renderer{protocol: p, background: background}
}

// Protocol returns the renderer's protocol.
func (r *Renderer) Protocol() Protocol { return r.protocol }

// Render draws img into a cols×rows cell area.
func (r *Renderer) Render(img image.Image, cols, rows int) (string, error) {
	if img == nil || img.Bounds().Empty() {
		return "", ErrEmptyImage
	}
	if cols <= 0 || rows <= 0 {
		return "", fmt.Errorf("render area %dx%d: %w", cols, rows, ErrEmptyImage)
	}

	switch r.protocol {
	case ProtocolUnicode:
		return r.renderUnicode(img, cols, rows), nil
	case ProtocolKitty:
		data, err := encodePNG(img)
		if err != nil {
			return "", err
		}
		return renderKitty(data, cols, rows), nil
	case ProtocolITerm2:
		data, err := encodePNG(img)
		if err != nil {
			return "", err
		}
		return renderITerm2(data, cols, rows), nil
	default:
		return "", ErrUnsupportedProtocol
	}
}

// renderUnicode flattens img over the background, stretches it to cols
// pixels by rows*2 pixels and emits one upper half-block per cell.
func (r *Renderer) renderUnicode(img image.Image, cols, rows int) string {
	b := img.Bounds()
	flat := imaging.Overlay(imaging.New(b.Dx(), b.Dy(), r.background), img, image.Pt(0, 0), 1.0)
	resized := imaging.Resize(flat, cols, rows*2, imaging.Box)

	var sb strings.Builder
	for y := 0; y < rows*2; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < cols; x++ {
			top := resized.NRGBAAt(x, y)
			bot := resized.NRGBAAt(x, y+1)
			fmt.Fprintf(&sb, "\033[38;2;%d;%d;%dm\033[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bot.R, bot.G, bot.B)
		}
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

// renderKitty encodes PNG data using the Kitty graphics protocol.
func renderKitty(data []byte, cols, rows int) string {
	encoded := base64.StdEncoding.EncodeToString(data)

	var b strings.Builder

	if len(encoded) <= kittyChunkSize {
		// m=0 marks the only (and last) chunk.
		fmt.Fprintf(&b, "\033_Gf=100,a=T,t=d,c=%d,r=%d,m=0;%s\033\\", cols, rows, encoded)
		return b.String()
	}

	for i := 0; i < len(encoded); i += kittyChunkSize {
		end := min(i+kittyChunkSize, len(encoded))
		chunk := encoded[i:end]
		isLast := end >= len(encoded)

		switch {
		case i == 0:
			fmt.Fprintf(&b, "\033_Gf=100,a=T,t=d,c=%d,r=%d,m=1;%s\033\\", cols, rows, chunk)
		case isLast:
			fmt.Fprintf(&b, "\033_Gm=0;%s\033\\", chunk)
		default:
			fmt.Fprintf(&b, "\033_Gm=1;%s\033\\", chunk)
		}
	}
	return b.String()
}

// renderITerm2 encodes PNG data as an iTerm2 OSC 1337 inline image.
func renderITerm2(data []byte, cols, rows int) string {
	encoded := base64.StdEncoding.EncodeToString(data)
	args := fmt.Sprintf("name=chart.png;size=%d;width=%d;height=%d;preserveAspectRatio=0;inline=1",
		len(data), cols, rows)
	return fmt.Sprintf("\033]1337;File=%s:%s\007", args, encoded)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode chart: %w", err)
	}
	return buf.Bytes(), nil
}
