package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// pixelMap holds the dot bit for each sub-pixel of a 2x4 Braille cell,
// indexed [row][column]. Cells are offsets from U+2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a Braille canvas of Width×Height cells, i.e. (2·Width)×(4·Height)
// sub-pixels. Each cell keeps the tone of the nearest primitive drawn into
// it, for colormap lookup at render time.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Tone          [][]float64
	depth         [][]float64
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Tone:   make([][]float64, h),
		depth:  make([][]float64, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Tone[i] = make([]float64, w)
		c.depth[i] = make([]float64, w)
	}
	c.Clear()
	return c
}

// PixelSize returns the canvas size in sub-pixels.
func (c *Canvas) PixelSize() (int, int) {
	return c.Width * 2, c.Height * 4
}

// Set lights sub-pixel (x, y) without a tone.
func (c *Canvas) Set(x, y int) {
	c.Plot(x, y, math.NaN(), math.Inf(-1))
}

// Plot lights sub-pixel (x, y). The cell takes tone when depth is nearer
// than anything drawn into it before.
func (c *Canvas) Plot(x, y int, tone, depth float64) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if depth >= c.depth[row][col] {
		c.depth[row][col] = depth
		c.Tone[row][col] = tone
	}
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.Tone[i][j] = math.NaN()
			c.depth[i][j] = math.Inf(-1)
		}
	}
}

// DrawLine plots the sub-pixels between (x0, y0) and (x1, y1), one per
// step along the longer axis, both endpoints included.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, tone, depth float64) {
	steps := max(absInt(x1-x0), absInt(y1-y0))
	if steps == 0 {
		c.Plot(x0, y0, tone, depth)
		return
	}
	dx := float64(x1-x0) / float64(steps)
	dy := float64(y1-y0) / float64(steps)
	for k := 0; k <= steps; k++ {
		x := int(math.Round(float64(x0) + dx*float64(k)))
		y := int(math.Round(float64(y0) + dy*float64(k)))
		c.Plot(x, y, tone, depth)
	}
}

// String renders the canvas without colour.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render colours every toned cell through cmap.
func (c *Canvas) Render(cmap Colormap) string {
	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			tone := c.Tone[i][j]
			if r == brailleBlank || math.IsNaN(tone) {
				b.WriteRune(r)
				continue
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(cmap.At(tone).Hex()))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
