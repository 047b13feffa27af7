package draw

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/invaders/internal/physics"
)

// rgb is an 8-bit pixel value. Comparable, so frames can be diffed cheaply.
type rgb struct {
	r, g, b uint8
}

func toRGB(c colorful.Color) rgb {
	r, g, b := c.Clamped().RGB255()
	return rgb{r, g, b}
}

func (p rgb) color() colorful.Color {
	return colorful.Color{R: float64(p.r) / 255, G: float64(p.g) / 255, B: float64(p.b) / 255}
}

// cell is what a terminal cell last showed: upper and lower half-pixel.
type cell struct {
	top, bottom rgb
	valid       bool
}

// Canvas is a color drawing buffer with 2x vertical resolution using
// half-block characters. Supports scaling from logical coordinates to actual
// terminal pixels.
type Canvas struct {
	termWidth      int   // Actual terminal columns
	termHeight     int   // Actual terminal rows
	subPixelHeight int   // termHeight * 2
	pixels         []rgb // Flat slice: [y * termWidth + x]
	background     rgb

	// What the terminal currently shows, for emitting only changed cells.
	shown []cell

	// Scaling from logical to pixel coordinates
	logicalWidth  float64 // Target/logical width
	logicalHeight float64 // Target/logical height
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf strings.Builder // Buffer for batching render output
	numBuf    [20]byte        // Scratch buffer for allocation-free integer formatting
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	subPixelHeight := termHeight * 2

	// Reallocate if size changed
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]rgb, subPixelHeight*termWidth)
		c.shown = make([]cell, termHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	// Update scale factors
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.ForceRedraw()
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render emit every cell, e.g. after the
// terminal was cleared.
func (c *Canvas) ForceRedraw() {
	clear(c.shown)
}

// Invalidate marks width cells starting at (col, row) as unknown, so the next
// Render repaints them. Used after text was written over the canvas.
func (c *Canvas) Invalidate(col, row, width int) {
	if row < 0 || row >= c.termHeight {
		return
	}
	for x := max(col, 0); x < col+width && x < c.termWidth; x++ {
		c.shown[row*c.termWidth+x].valid = false
	}
}

// Clear fills every pixel with the background color.
func (c *Canvas) Clear(bg colorful.Color) {
	c.background = toRGB(bg)
	for i := range c.pixels {
		c.pixels[i] = c.background
	}
}

// blend composites col over the pixel at actual terminal coordinates (no scaling).
func (c *Canvas) blend(x, y int, col Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		i := y*c.termWidth + x
		if col.A >= 1 {
			c.pixels[i] = toRGB(col.Color)
			return
		}
		c.pixels[i] = toRGB(col.Over(c.pixels[i].color()))
	}
}

// FillRect fills a rectangle given in logical coordinates. Every rectangle
// covers at least one pixel, so small objects never disappear when scaled down.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	x0 := int(math.Floor(x * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	x1 := max(int(math.Ceil((x+w)*c.scaleX)), x0+1)
	y1 := max(int(math.Ceil((y+h)*c.scaleY)), y0+1)

	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.blend(px, py, col)
		}
	}
}

// FillCircle fills a circle given in logical coordinates. A pixel is inside
// when its center is within the radius.
func (c *Canvas) FillCircle(cx, cy, r float64, col Color) {
	x0 := int(math.Floor((cx - r) * c.scaleX))
	x1 := int(math.Ceil((cx + r) * c.scaleX))
	y0 := int(math.Floor((cy - r) * c.scaleY))
	y1 := int(math.Ceil((cy + r) * c.scaleY))

	filled := false
	for py := y0; py <= y1; py++ {
		ly := (float64(py) + 0.5) / c.scaleY
		for px := x0; px <= x1; px++ {
			lx := (float64(px) + 0.5) / c.scaleX
			if physics.PointInCircle(lx, ly, cx, cy, r) {
				c.blend(px, py, col)
				filled = true
			}
		}
	}

	// Too small to cover any pixel center: still mark the center pixel.
	if !filled {
		c.blend(int(math.Floor(cx*c.scaleX)), int(math.Floor(cy*c.scaleY)), col)
	}
}

// Cell returns the upper and lower half-pixel colors of a terminal cell.
func (c *Canvas) Cell(col, row int) (top, bottom colorful.Color) {
	topPx := c.pixels[row*2*c.termWidth+col]
	bottomPx := c.pixels[(row*2+1)*c.termWidth+col]
	return topPx.color(), bottomPx.color()
}

// Render outputs the canvas to the writer using upper half-block characters
// with true-color foreground (upper pixel) and background (lower pixel).
// Only cells that changed since the previous Render are written.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	var lastFg, lastBg rgb
	colorsSet := false
	nextCol, nextRow := -1, -1 // Where the cursor sits after the last written cell

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			shown := &c.shown[row*c.termWidth+col]
			if shown.valid && shown.top == top && shown.bottom == bottom {
				continue
			}
			*shown = cell{top: top, bottom: bottom, valid: true}

			if col != nextCol || row != nextRow {
				c.writeMove(col+1+c.offsetCol, row+1+c.offsetRow)
			}
			if !colorsSet || top != lastFg {
				c.writeColor(38, top)
				lastFg = top
			}
			if !colorsSet || bottom != lastBg {
				c.writeColor(48, bottom)
				lastBg = bottom
			}
			colorsSet = true

			c.renderBuf.WriteRune(BlockUpperHalf)
			nextCol, nextRow = col+1, row
		}
	}

	if colorsSet {
		c.renderBuf.WriteString(resetAttributes)
	}
	io.WriteString(w, c.renderBuf.String())
}

func (c *Canvas) writeMove(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// writeColor emits a true-color SGR sequence; layer is 38 (fg) or 48 (bg).
func (c *Canvas) writeColor(layer int, p rgb) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(layer), 10))
	c.renderBuf.WriteString(";2;")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(p.r), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(p.g), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(p.b), 10))
	c.renderBuf.WriteByte('m')
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
// Draws horizontal borders when there is vertical offset, vertical borders
// when there is horizontal offset, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return
	}

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	line := strings.Repeat("─", c.termWidth)

	if hasV {
		if hasH {
			buf.WriteString(moveTo(left, top) + "┌" + line + "┐")
			buf.WriteString(moveTo(left, bottom) + "└" + line + "┘")
		} else {
			buf.WriteString(moveTo(c.offsetCol+1, top) + line)
			buf.WriteString(moveTo(c.offsetCol+1, bottom) + line)
		}
	}

	if hasH {
		startRow, endRow := top+1, bottom
		if !hasV {
			// No horizontal borders, side bars span full canvas height
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			buf.WriteString(moveTo(left, row) + "│" + moveTo(right, row) + "│")
		}
	}

	io.WriteString(w, buf.String())
}

// LogicalWidth returns the logical width (target resolution).
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height (target resolution).
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}
