// Package io reads and writes schedules as JSON, TOML or BSON.
//
// # Formats
//
// All three formats carry the same document, a [task.Schedule]:
//
//	{
//	  "tasks": [
//	    {"id": "design", "name": "Design", "start": "2024-01-08T00:00:00Z",
//	     "end": "2024-01-19T00:00:00Z", "progress": 0.4},
//	    {"id": "launch", "name": "Launch", "start": "2024-02-01T00:00:00Z",
//	     "end": "2024-02-01T00:00:00Z", "kind": "milestone"}
//	  ],
//	  "dependencies": [
//	    {"from": "design", "to": "launch", "type": "FS", "lag_days": 2}
//	  ]
//	}
//
// TOML files use [[tasks]] and [[dependencies]] tables with the same keys.
// BSON is the document as stored by MongoDB-compatible tools.
//
// # Import
//
// [Read] and [Import] decode a schedule and normalize it: times become UTC,
// progress is clamped to [0, 1], a missing kind means "task" and a missing
// dependency type means FS. Unknown kinds or dependency types are rejected
// with an INVALID_FORMAT error naming the offending task or edge. Structural
// problems such as cycles or dangling edges are not checked here; see
// validate.Check.
//
// # Export
//
// [Write] and [Export] emit the schedule in canonical order (tasks by id,
// dependencies by source, target and type), so the same schedule always
// produces the same bytes regardless of the order it was built in.
package io
