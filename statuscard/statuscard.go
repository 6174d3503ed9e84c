// Package statuscard renders a Stats snapshot as a PNG image, for bots that
// answer the status command with a picture instead of a wall of text.
package statuscard

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	tg "github.com/ravinduk/escapify-go"
	"github.com/ravinduk/escapify-go/sysinfo"
)

// Card renders status images. The zero value is not usable; call New.
type Card struct {
	width   int
	rowH    int
	padding int
	bg      color.RGBA
	fg      color.RGBA
	barBG   color.RGBA
	barFG   color.RGBA
	face    font.Face
	title   string
}

// Option configures a Card.
type Option func(*Card)

// WithWidth sets the image width in pixels.
func WithWidth(w int) Option {
	return func(c *Card) {
		if w > 0 {
			c.width = w
		}
	}
}

// WithTitle sets the heading line.
func WithTitle(title string) Option {
	return func(c *Card) {
		c.title = title
	}
}

// WithColors overrides the background and text colors.
func WithColors(bg, fg color.RGBA) Option {
	return func(c *Card) {
		c.bg = bg
		c.fg = fg
	}
}

// New builds a Card with a dark theme and the built-in bitmap face.
func New(opts ...Option) *Card {
	c := &Card{
		width:   420,
		rowH:    22,
		padding: 16,
		bg:      color.RGBA{0x1e, 0x1e, 0x2e, 0xff},
		fg:      color.RGBA{0xcd, 0xd6, 0xf4, 0xff},
		barBG:   color.RGBA{0x31, 0x32, 0x44, 0xff},
		barFG:   color.RGBA{0x89, 0xb4, 0xfa, 0xff},
		face:    basicfont.Face7x13,
		title:   "System Status",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type row struct {
	label   string
	value   string
	percent float64 // negative means no bar
}

// Render draws stats onto a card and returns the encoded PNG.
func (c *Card) Render(stats *sysinfo.Stats) ([]byte, error) {
	if stats == nil {
		return nil, fmt.Errorf("statuscard: nil stats")
	}

	rows := []row{
		{"CPU", fmt.Sprintf("%.1f%% of %d cores", stats.CPUPercent, stats.CPUCount), stats.CPUPercent},
		{"Memory", fmt.Sprintf("%s / %s", tg.ReadableBytes(stats.MemUsed), tg.ReadableBytes(stats.MemTotal)), stats.MemPercent},
		{"Disk", fmt.Sprintf("%s / %s", tg.ReadableBytes(stats.DiskUsed), tg.ReadableBytes(stats.DiskTotal)), stats.DiskPercent},
		// Face7x13 covers ASCII only, so tx/rx instead of arrows.
		{"Network", fmt.Sprintf("tx %s  rx %s", tg.ReadableBytes(stats.NetSent), tg.ReadableBytes(stats.NetRecv)), -1},
		{"Host up", tg.ReadableTime(int(stats.HostUptime / time.Second)), -1},
		{"Bot up", tg.ReadableTime(int(stats.ProcessUptime / time.Second)), -1},
		{"RSS", tg.ReadableBytes(stats.ProcessRSS), -1},
	}

	height := c.padding*2 + c.rowH*(len(rows)+1)
	img := image.NewRGBA(image.Rect(0, 0, c.width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{c.bg}, image.Point{}, draw.Src)

	c.drawText(img, c.padding, c.padding+13, c.title)

	labelW := 70
	for i, r := range rows {
		y := c.padding + c.rowH*(i+1) + 13
		c.drawText(img, c.padding, y, r.label)
		c.drawText(img, c.padding+labelW, y, r.value)
		if r.percent >= 0 {
			c.drawBar(img, c.padding+labelW, y+3, r.percent)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("statuscard: encode: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *Card) drawText(img draw.Image, x, y int, s string) {
	d := font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{c.fg},
		Face: c.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func (c *Card) drawBar(img draw.Image, x, y int, percent float64) {
	if percent > 100 {
		percent = 100
	}
	barW := c.width - x - c.padding
	if barW <= 0 {
		return
	}
	track := image.Rect(x, y, x+barW, y+4)
	draw.Draw(img, track, &image.Uniform{c.barBG}, image.Point{}, draw.Src)
	fill := image.Rect(x, y, x+int(float64(barW)*percent/100), y+4)
	draw.Draw(img, fill, &image.Uniform{c.barFG}, image.Point{}, draw.Src)
}
