package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/galaxy-raiders/core"
	"github.com/lixenwraith/galaxy-raiders/status"
)

// Frame is everything needed to draw one screen
type Frame struct {
	Objects     []core.Object
	FieldWidth  int
	FieldHeight int
	Metrics     []status.Metric
	Paused      bool
}

var kindStyles = [core.KindCount]tcell.Style{
	core.KindSpaceShip: tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	core.KindMissile:   tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.KindAsteroid:  tcell.StyleDefault.Foreground(tcell.ColorSilver),
	core.KindExplosion: tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
}

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal)

// TerminalRenderer draws the field with y growing upward, the last row is the status bar
type TerminalRenderer struct {
	screen tcell.Screen
}

func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// RenderFrame clears the screen, draws objects in order, then the status bar
// Later objects overwrite earlier ones sharing a cell
func (r *TerminalRenderer) RenderFrame(f Frame) {
	r.screen.Clear()
	width, height := r.screen.Size()
	fieldRows := height - 1
	if width < 1 || fieldRows < 1 {
		r.screen.Show()
		return
	}

	for _, obj := range f.Objects {
		o := obj.Base()
		col, row, ok := project(o.Center.X(), o.Center.Y(), f.FieldWidth, f.FieldHeight, width, fieldRows)
		if !ok {
			continue
		}
		r.screen.SetContent(col, row, o.Symbol(), nil, kindStyles[o.Kind()])
	}

	r.drawStatusBar(width, height-1, statusLine(f))
	r.screen.Show()
}

// project maps field coordinates onto a cols x rows grid, ok is false off-grid
func project(x, y float64, fieldWidth, fieldHeight, cols, rows int) (col, row int, ok bool) {
	if fieldWidth <= 0 || fieldHeight <= 0 {
		return 0, 0, false
	}
	col = int(math.Round(x / float64(fieldWidth) * float64(cols-1)))
	row = (rows - 1) - int(math.Round(y/float64(fieldHeight)*float64(rows-1)))
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return 0, 0, false
	}
	return col, row, true
}

func (r *TerminalRenderer) drawStatusBar(width, row int, text string) {
	runes := []rune(text)
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(runes) {
			ch = runes[x]
		}
		r.screen.SetContent(x, row, ch, nil, statusStyle)
	}
}

func statusLine(f Frame) string {
	var b strings.Builder
	for i, m := range f.Metrics {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%d", m.Name, m.Value)
	}
	if f.Paused {
		if b.Len() > 0 {
			b.WriteString(" | ")
		}
		b.WriteString("PAUSED")
	}
	return b.String()
}
