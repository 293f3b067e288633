// Package recognize defines the boundary to the external text recognition
// collaborator and schedules recognition off the caller's goroutine.
//
// Recognition is CPU-bound, so captures run on a bounded worker pool and
// results are delivered to a single consumer. The package never performs
// recognition itself; implementations of Recognizer live outside this
// module. A failed recognition degrades to an empty-text result for the
// matcher rather than propagating as a matching error.
package recognize
