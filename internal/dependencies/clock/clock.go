package clock

import "time"

// Clock supplies the current time. Player records are stamped with it.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock
type System struct{}

// New returns the wall clock
func New() System {
	return System{}
}

func (System) Now() time.Time {
	return time.Now()
}
