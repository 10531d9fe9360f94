package engine

import "fmt"

// NotFoundError reports a reference to an unknown area, project, todo, or
// milestone. The operation it came from did not mutate anything.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// AlreadyDoneError reports an attempt to complete something that is already
// terminal (or to re-log a once-per-day habit on the same day).
type AlreadyDoneError struct {
	Kind string
	Key  string
}

func (e AlreadyDoneError) Error() string {
	return fmt.Sprintf("%s %q is already done", e.Kind, e.Key)
}
