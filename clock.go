package cron

import "time"

// Clock supplies the current time to the dispatcher.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// WallClock returns the host's clock.
func WallClock() Clock { return wallClock{} }
