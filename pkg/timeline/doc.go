// Package timeline computes the geometry of a Gantt timeline: grid lines,
// scale headers, weekend shading, task bars, dependency curves and the
// position of today. Everything here is a pure function of its arguments;
// the caller draws the result.
//
// # View Modes
//
// A [ViewMode] is the zoom level, from [Hour] (finest) to [Year]
// (coarsest). One column of the timeline is one unit of the mode. Columns
// advance in calendar terms: [Month] and [Year] steps respect month lengths
// and leap years and are always computed from the range start, so a range
// starting on January 31 gets columns at February 29 (or 28), March 31,
// April 30 and so on without drifting. [Quarter] is the exception: it
// advances by a fixed 90 days.
//
// # Grid and Headers
//
// [GridLines] returns one line per column boundary, including a line at the
// range end when it falls on a boundary. [MinorHeaders] returns one header
// per column and [MajorHeaders] groups consecutive columns into the next
// larger period:
//
//	Hour     day ("Mon, Jan 2")   over "15:04"
//	Day      month ("January 2024") over day of month
//	Week     quarter ("Q1 2024")  over ISO week ("W05")
//	Month    year                 over month ("Jan")
//	Quarter  year                 over quarter ("Q1")
//	Year     decade ("2020s")     over year
//
// # Weekend Shading
//
// [WeekendShading] steps day by day whatever the view mode and emits a
// column-wide shade for each Saturday and Sunday, positioned as in the
// [Day] view. At coarser modes a shade is therefore wider than the day it
// marks.
//
// # Dependency Curves
//
// [DependencyPath] connects two bars at their vertical centers with a
// quadratic Bézier curve. The anchors depend on the dependency type (FS
// leaves the end of the source and enters the start of the target, and so
// on); the control point sits at the start height, halfway across.
package timeline
