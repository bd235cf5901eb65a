// Package transform provides schedule-level transformations built on the
// dependency graph in package dag.
//
// # Overview
//
// Schedules edited through ganttline are acyclic by construction, because
// every new edge goes through validation first. Imported schedules are a
// different story: a file written by another tool may contain cycles, and a
// renderer that wants to draw the graph needs a depth for each task.
//
// # Cycle Repair
//
// [BreakCycles] removes every dependency that forms a depth-first-search
// back-edge. Removing all back-edges of one DFS always yields an acyclic
// graph, so a single pass is enough. Dependencies are never reordered and
// the input slices are never modified.
//
// # Levels
//
// [AssignLevels] computes a longest-path depth for every task: tasks with no
// dependencies are at level 0 and every task sits one level below its
// deepest dependency. The DOT sink uses levels to rank tasks.
package transform
