// Package timeline renders a computed timeline.Layout as SVG.
//
// The output has two parts: a header band with the major and minor scale
// rows, and a body translated below it that holds weekend shading, grid
// lines, dependency curves, task bars and the today marker, drawn in that
// order so bars sit above the grid and curves.
//
//	l, _ := timeline.Compute(schedule, timeline.Options{Mode: timeline.Week})
//	svg := rtimeline.RenderSVG(l, rtimeline.WithTitle("Roadmap"))
//
// The package shares its name with the layout package; import it under an
// alias such as rtimeline.
//
// Milestones are drawn as diamonds centered on their date. Read-only tasks
// get a dashed outline. Colors come from the task when set.
package timeline
