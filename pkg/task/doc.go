// Package task defines the value types of a schedule: tasks, dependency
// edges between them, and the schedule envelope used for import and export.
//
// # Ownership
//
// Values in this package are plain data owned by the caller. Nothing in
// ganttline mutates a task or dependency it is handed; operations that
// "create" something (for example [validate.Create]) return a new value and
// leave insertion into the caller's collections to the caller.
//
// # Identity
//
// A task is identified by its ID, which must be unique within a schedule.
// [New] assigns a random UUID; imported schedules may carry any stable,
// non-empty string. A dependency is identified by its (From, To, Type)
// triple, see [Dependency.Key].
//
// # Serialization
//
// Every type carries json, toml and bson tags. Enumerations are string types
// so that all three encodings produce the same human-readable values
// ("milestone", "FS", ...). [Schedule.Sorted] returns a canonical ordering so
// that exports are independent of the order tasks were created in.
//
// [validate.Create]: github.com/matzehuels/ganttline/pkg/validate.Create
package task
