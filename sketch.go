package mathie

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/alphaqu/mathie/num"
	"github.com/alphaqu/mathie/unit"
)

// SketchConfig controls the character grid produced by Sketch.
type SketchConfig struct {
	// Width and Height are the grid dimensions in character cells.
	Width, Height int
	// Palette assigns a color per rectangle, cycling when exhausted. A nil
	// palette renders plain characters (deterministic output for tests and
	// non-interactive writers).
	Palette []*color.Color
}

// SketchConfigFromTerminal sizes a sketch grid from the current terminal's
// width, with a colored default palette. Falls back to 65 columns when
// stdout is not interactive.
func SketchConfigFromTerminal() *SketchConfig {
	cols := 65
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil && w > 10 {
			cols = w - 5
		}
	}
	config := &SketchConfig{
		Width:   cols,
		Height:  cols / 3,
		Palette: makeDefaultPalette(),
	}
	tracer().P("format", "sketch").Infof("setting sketch grid to %dx%d cells", config.Width, config.Height)
	return config
}

func makeDefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgBlue),
		color.New(color.FgRed),
		color.New(color.FgGreen),
		color.New(color.FgYellow),
		color.New(color.FgMagenta),
		color.New(color.FgCyan),
	}
}

// Sketch renders rects as a character grid on w, for terminal inspection of
// layout code (a debugging aid, not a drawing API).
//
// The union of the rectangles is fitted to the grid; each rectangle fills
// its cells with a letter ('A' for the first, cycling after 'Z'), later
// rectangles drawing over earlier ones. Empty input or degenerate bounds
// render nothing. If config is nil, a grid is sized from the current
// terminal's properties.
func Sketch[N num.Number, U unit.Unit](w io.Writer, rects []Rect[N, U], config *SketchConfig) error {
	if config == nil {
		config = SketchConfigFromTerminal()
	}
	if config.Width <= 0 || config.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrSketchSize, config.Width, config.Height)
	}
	if len(rects) == 0 {
		tracer().P("format", "sketch").Infof("no rectangles, nothing to render")
		return nil
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, r := range rects {
		lo, hi := r.Min(), r.Max()
		minX = math.Min(minX, math.Min(float64(lo.x), float64(hi.x)))
		minY = math.Min(minY, math.Min(float64(lo.y), float64(hi.y)))
		maxX = math.Max(maxX, math.Max(float64(lo.x), float64(hi.x)))
		maxY = math.Max(maxY, math.Max(float64(lo.y), float64(hi.y)))
	}
	if !(maxX > minX) || !(maxY > minY) {
		tracer().P("format", "sketch").Infof("degenerate bounds, nothing to render")
		return nil
	}
	owner := make([]int, config.Width*config.Height)
	for i := range owner {
		owner[i] = -1
	}
	scaleX := float64(config.Width) / (maxX - minX)
	scaleY := float64(config.Height) / (maxY - minY)
	for i, r := range rects {
		lo, hi := r.Min(), r.Max()
		x0 := clampCell(math.Floor((math.Min(float64(lo.x), float64(hi.x))-minX)*scaleX), config.Width)
		x1 := clampCell(math.Ceil((math.Max(float64(lo.x), float64(hi.x))-minX)*scaleX), config.Width)
		y0 := clampCell(math.Floor((math.Min(float64(lo.y), float64(hi.y))-minY)*scaleY), config.Height)
		y1 := clampCell(math.Ceil((math.Max(float64(lo.y), float64(hi.y))-minY)*scaleY), config.Height)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				owner[y*config.Width+x] = i
			}
		}
	}
	var row strings.Builder
	for y := 0; y < config.Height; y++ {
		row.Reset()
		for x := 0; x < config.Width; x++ {
			idx := owner[y*config.Width+x]
			if idx < 0 {
				row.WriteByte('.')
				continue
			}
			cell := string(rune('A' + idx%26))
			if len(config.Palette) > 0 {
				cell = config.Palette[idx%len(config.Palette)].Sprint(cell)
			}
			row.WriteString(cell)
		}
		row.WriteByte('\n')
		if _, err := io.WriteString(w, row.String()); err != nil {
			return err
		}
	}
	return nil
}

func clampCell(c float64, limit int) int {
	if c < 0 {
		return 0
	}
	if c > float64(limit) {
		return limit
	}
	return int(c)
}
