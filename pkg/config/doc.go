// Package config loads ganttline settings from a TOML file.
//
// Settings are read from the first file found among:
//
//  1. the path given explicitly (the --config flag)
//  2. .ganttline.toml or ganttline.toml in the current directory
//  3. ganttline/config.toml in the user config directory
//
// A missing file is not an error; [Default] values are used instead. Unknown
// keys are rejected so typos do not silently fall back to defaults.
//
// # File Format
//
//	[timeline]
//	view = "week"
//	column_width = 40
//	viewport_width = 1200
//
//	[policy]
//	mode = "editable"        # editable, full, timeline-only, grid-only
//	require_role = "planner"
//	deny = ["delete_task"]
//
//	[cache]
//	backend = "file"         # file, redis, none
//	dir = "~/.cache/ganttline"
//	redis_addr = "localhost:6379"
//	ttl = "168h"
//	prefix = "roadmap:"
//
// Command-line flags override values from the file.
package config
