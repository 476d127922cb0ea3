package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// fontPaths are CJK capable fonts tried in order.
var fontPaths = []string{
	// macOS
	"/System/Library/Fonts/ヒラギノ角ゴシック W3.ttc",
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/System/Library/Fonts/PingFang.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	// Linux
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
}

var (
	faceOnce    sync.Once
	defaultFace font.Face
)

// DefaultFace returns the first CJK font found on the system, or the
// built-in 7x13 bitmap face (ASCII only) when none is installed.
func DefaultFace() font.Face {
	faceOnce.Do(func() {
		defaultFace = loadSystemFace(24)
		if defaultFace == nil {
			defaultFace = basicfont.Face7x13
		}
	})
	return defaultFace
}

func loadSystemFace(size float64) font.Face {
	opts := &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull}
	for _, path := range fontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		// Try parsing as font collection first
		if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
			if fnt, err := coll.Font(0); err == nil {
				if face, err := opentype.NewFace(fnt, opts); err == nil {
					return face
				}
			}
		}

		if fnt, err := opentype.Parse(data); err == nil {
			if face, err := opentype.NewFace(fnt, opts); err == nil {
				return face
			}
		}
	}
	return nil
}

// PNGOptions controls image rendering.
type PNGOptions struct {
	Face    font.Face // nil selects DefaultFace
	Padding int       // pixels around each cell's text, default 6
}

var (
	background = color.White
	foreground = color.Black
	gridLine   = color.Gray{Y: 0xb0}
)

// RenderPNG draws the grid as a table image, one box per cell, with the
// title on the first line.
func RenderPNG(w io.Writer, g Grid, opts PNGOptions) error {
	face := opts.Face
	if face == nil {
		face = DefaultFace()
	}
	pad := opts.Padding
	if pad <= 0 {
		pad = 6
	}

	metrics := face.Metrics()
	lineHeight := (metrics.Ascent + metrics.Descent).Ceil()

	cellWidth, cols := 0, 0
	for _, row := range g.Rows {
		if len(row) > cols {
			cols = len(row)
		}
		for _, cell := range row {
			if adv := font.MeasureString(face, cellText(cell)).Ceil(); adv > cellWidth {
				cellWidth = adv
			}
		}
	}
	if cols == 0 {
		return fmt.Errorf("grid %q has no cells", g.Title)
	}

	boxW := cellWidth + 2*pad
	boxH := lineHeight + 2*pad
	width := cols*boxW + 1
	if titleW := font.MeasureString(face, g.Title).Ceil() + 2*pad; titleW > width {
		width = titleW
	}
	height := (len(g.Rows)+1)*boxH + 1

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	d := &font.Drawer{Dst: img, Src: image.NewUniform(foreground), Face: face}
	d.Dot = fixed.P(pad, pad+metrics.Ascent.Ceil())
	d.DrawString(g.Title)

	for r, row := range g.Rows {
		top := (r + 1) * boxH
		for c, cell := range row {
			left := c * boxW
			drawBox(img, image.Rect(left, top, left+boxW, top+boxH))

			text := cellText(cell)
			textW := font.MeasureString(face, text).Ceil()
			d.Dot = fixed.P(left+(boxW-textW)/2, top+pad+metrics.Ascent.Ceil())
			d.DrawString(text)
		}
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

func cellText(cell string) string {
	if cell == "" {
		return Blank
	}
	return cell
}

// drawBox outlines r with one pixel lines.
func drawBox(img *image.RGBA, r image.Rectangle) {
	for x := r.Min.X; x <= r.Max.X && x < img.Bounds().Max.X; x++ {
		img.Set(x, r.Min.Y, gridLine)
		if r.Max.Y < img.Bounds().Max.Y {
			img.Set(x, r.Max.Y, gridLine)
		}
	}
	for y := r.Min.Y; y <= r.Max.Y && y < img.Bounds().Max.Y; y++ {
		img.Set(r.Min.X, y, gridLine)
		if r.Max.X < img.Bounds().Max.X {
			img.Set(r.Max.X, y, gridLine)
		}
	}
}
