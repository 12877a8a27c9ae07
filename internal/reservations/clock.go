package reservations

import "time"

// Clock supplies the current time in the arena platform's configured
// timezone. Injected so admission tests can pin "now".
type Clock interface {
	Now() time.Time
}

type locationClock struct {
	loc *time.Location
}

func NewClock(loc *time.Location) Clock {
	return locationClock{loc: loc}
}

func (c locationClock) Now() time.Time {
	return time.Now().In(c.loc)
}
