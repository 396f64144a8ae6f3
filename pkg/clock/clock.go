package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock provides the current time. Production code uses NewRealClock,
// tests inject a FakeClock to get deterministic timestamps.
type Clock interface {
	clockwork.Clock
}

type FakeClock interface {
	clockwork.FakeClock
}

func NewRealClock() Clock {
	return clockwork.NewRealClock()
}

func NewFakeClock() FakeClock {
	return clockwork.NewFakeClock()
}

func NewFakeClockAt(t time.Time) FakeClock {
	return clockwork.NewFakeClockAt(t)
}
