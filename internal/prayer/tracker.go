package prayer

// TrackingState is the derived current/next view of a schedule at one
// instant. It is recomputed wholesale on every tick and never persisted.
type TrackingState struct {
	Current   Name
	Next      Name
	Remaining int // minutes until Next begins, >= 0
}

// Evaluate computes the tracking state for the given schedule at nowMinutes.
// It is a pure function of its inputs.
//
// A prayer is current from its own start minute (inclusive) until the next
// prayer's start minute (exclusive). The Isha period wraps midnight: any
// instant at or after Isha, or before Fajr, belongs to Isha, and the
// countdown target is the following day's Fajr.
func Evaluate(s Schedule, nowMinutes MinuteOfDay) TrackingState {
	ord := s.Obligatory()

	for i := 0; i < len(ord)-1; i++ {
		if nowMinutes >= ord[i].At && nowMinutes < ord[i+1].At {
			return TrackingState{
				Current:   ord[i].Name,
				Next:      ord[i+1].Name,
				Remaining: int(ord[i+1].At - nowMinutes),
			}
		}
	}

	// Isha span. Before Fajr the target is today's Fajr; from Isha onward it
	// is tomorrow's, so the target shifts by a full day.
	target := int(s.Fajr)
	if nowMinutes >= s.Isha {
		target += MinutesPerDay
	}

	return TrackingState{
		Current:   Isha,
		Next:      Fajr,
		Remaining: target - int(nowMinutes),
	}
}
