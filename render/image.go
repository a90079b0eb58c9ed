package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/trailseek/search"
	"github.com/katalvlaran/trailseek/terrain"
)

// DefaultTileSize is the default edge length of one cell in pixels.
const DefaultTileSize = 32

// minTileSize keeps a two-digit step label inside its marker.
const minTileSize = 16

// DefaultPalette colors each terrain kind.
var DefaultPalette = map[terrain.Kind]color.RGBA{
	terrain.Stone: {R: 0x70, G: 0x70, B: 0x70, A: 0xff},
	terrain.Water: {R: 0x2a, G: 0x6f, B: 0xd6, A: 0xff},
	terrain.Dune:  {R: 0xe8, G: 0xc9, B: 0x7a, A: 0xff},
	terrain.Mud:   {R: 0x6b, G: 0x4a, B: 0x2b, A: 0xff},
	terrain.Grass: {R: 0x4c, G: 0xa8, B: 0x3a, A: 0xff},
	terrain.Road:  {R: 0xc8, G: 0xc0, B: 0xb0, A: 0xff},
}

var (
	trailColor = color.RGBA{R: 0x10, G: 0x40, B: 0x10, A: 0xff}
	labelColor = color.White
	goalColor  = color.RGBA{R: 0xd0, G: 0x20, B: 0x20, A: 0xff}
)

// Options configures Image.
type Options struct {
	TileSize int
	Palette  map[terrain.Kind]color.RGBA
	err      error
}

// Option is a functional argument to Image.
type Option func(*Options)

// WithTileSize sets the cell edge in pixels.
// Sizes below 16 are rejected when Image runs.
func WithTileSize(px int) Option {
	return func(o *Options) {
		if px < minTileSize {
			o.err = fmt.Errorf("render: tile size %d below %d", px, minTileSize)
			return
		}
		o.TileSize = px
	}
}

// WithPalette overrides the colors of the given kinds.
func WithPalette(p map[terrain.Kind]color.RGBA) Option {
	return func(o *Options) {
		for k, c := range p {
			o.Palette[k] = c
		}
	}
}

// Image draws g with one square tile per cell, then a numbered marker on
// every cell of p and a frame around the last cell of p.
func Image(g *terrain.Grid, p search.Path, opts ...Option) (*image.RGBA, error) {
	o := Options{TileSize: DefaultTileSize, Palette: make(map[terrain.Kind]color.RGBA, len(DefaultPalette))}
	for k, c := range DefaultPalette {
		o.Palette[k] = c
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	size := o.TileSize
	img := image.NewRGBA(image.Rect(0, 0, g.Cols()*size, g.Rows()*size))

	// 1) tiles
	g.Each(func(cell terrain.Cell) {
		fill(img, tileRect(cell.Coord, size), o.Palette[cell.Kind])
	})

	// 2) trail markers with step numbers
	d := &font.Drawer{Dst: img, Src: image.NewUniform(labelColor), Face: basicfont.Face7x13}
	ascent := basicfont.Face7x13.Metrics().Ascent.Round()
	inset := size / 5
	for i, cell := range p {
		r := tileRect(cell.Coord, size)
		fill(img, r.Inset(inset), trailColor)

		label := strconv.Itoa(i)
		adv := d.MeasureString(label).Round()
		d.Dot = fixed.P(r.Min.X+(size-adv)/2, r.Min.Y+(size+ascent)/2-1)
		d.DrawString(label)
	}

	// 3) goal frame
	if len(p) > 0 {
		frame(img, tileRect(p[len(p)-1].Coord, size), 2, goalColor)
	}
	return img, nil
}

// WritePNG encodes img as PNG to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

func tileRect(c terrain.Coord, size int) image.Rectangle {
	return image.Rect(c.Col*size, c.Row*size, (c.Col+1)*size, (c.Row+1)*size)
}

func fill(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// frame outlines r with a border of the given thickness.
func frame(img draw.Image, r image.Rectangle, thick int, c color.Color) {
	fill(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thick), c)
	fill(img, image.Rect(r.Min.X, r.Max.Y-thick, r.Max.X, r.Max.Y), c)
	fill(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+thick, r.Max.Y), c)
	fill(img, image.Rect(r.Max.X-thick, r.Min.Y, r.Max.X, r.Max.Y), c)
}
