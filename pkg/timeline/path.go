package timeline

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/ganttline/pkg/task"
)

// Point is a position in timeline coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Path is a quadratic Bézier curve from Start to End through Control.
type Path struct {
	Start   Point  `json:"start"`
	Control Point  `json:"control"`
	End     Point  `json:"end"`
	D       string `json:"d"`
}

// DependencyPath returns the curve connecting a source bar to a target bar.
// Both endpoints sit at the vertical center of their bar; the horizontal
// anchors follow typ:
//
//	FS  source end    -> target start
//	SS  source start  -> target start
//	FF  source end    -> target end
//	SF  source start  -> target end
//
// The control point has the start's y and lies half the horizontal
// distance to the right of the start. An unknown typ is treated as FS.
func DependencyPath(typ task.DependencyType, sourceX, sourceY, sourceWidth, targetX, targetY, targetWidth, barHeight float64) Path {
	if !typ.IsValid() {
		typ = task.FinishToStart
	}

	start := Point{X: sourceX, Y: sourceY + barHeight/2}
	if typ.SourceAnchor() {
		start.X += sourceWidth
	}
	end := Point{X: targetX, Y: targetY + barHeight/2}
	if typ.TargetAnchor() {
		end.X += targetWidth
	}
	control := Point{X: start.X + math.Abs(end.X-start.X)/2, Y: start.Y}

	return Path{
		Start:   start,
		Control: control,
		End:     end,
		D:       pathData(start, control, end),
	}
}

func pathData(start, control, end Point) string {
	var b strings.Builder
	b.WriteString("M ")
	b.WriteString(num(start.X) + " " + num(start.Y))
	b.WriteString(" Q ")
	b.WriteString(num(control.X) + " " + num(control.Y))
	b.WriteString(" ")
	b.WriteString(num(end.X) + " " + num(end.Y))
	return b.String()
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
