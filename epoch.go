package orbits

import (
	"fmt"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// Epoch pins a point in time as a Julian date, the scale ephemerides are
// published in. Orbits propagate in seconds relative to an epoch, J2000
// unless the caller picks another one.
type Epoch struct {
	jd float64
}

// J2000 is the standard reference epoch, 2000-01-01 12:00:00 TT.
var J2000 = Epoch{jd: J2000JD}

// NewEpoch converts a wall clock time to an epoch.
func NewEpoch(t time.Time) Epoch {
	return Epoch{jd: julian.TimeToJD(t)}
}

// NewEpochJD builds an epoch straight from a Julian date.
func NewEpochJD(jd float64) Epoch {
	return Epoch{jd: jd}
}

// JD returns the Julian date.
func (e Epoch) JD() float64 { return e.jd }

// Time returns the epoch as a wall clock time in UTC.
func (e Epoch) Time() time.Time {
	return julian.JDToTime(e.jd)
}

// Add returns the epoch shifted by the given number of seconds.
func (e Epoch) Add(seconds float64) Epoch {
	return Epoch{jd: e.jd + seconds/secondsPerDay}
}

// SecondsSince returns the seconds elapsed from o to e.
func (e Epoch) SecondsSince(o Epoch) float64 {
	return (e.jd - o.jd) * secondsPerDay
}

// SecondsUntil returns the propagation time in seconds from e to the given
// wall clock time.
func (e Epoch) SecondsUntil(t time.Time) float64 {
	return (julian.TimeToJD(t) - e.jd) * secondsPerDay
}

func (e Epoch) String() string {
	return fmt.Sprintf("JD %.6f (%s)", e.jd, e.Time().Format(time.RFC3339))
}
