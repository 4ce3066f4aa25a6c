package prayer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEvaluate_Coverage sweeps every minute of the day: exactly one current
// and next prayer, remaining never negative.
func TestEvaluate_Coverage(t *testing.T) {
	s := testSchedule()

	for now := MinuteOfDay(0); now < MinutesPerDay; now++ {
		st := Evaluate(s, now)

		assert.NotEmpty(t, st.Current, "minute %d", now)
		assert.NotEmpty(t, st.Next, "minute %d", now)
		assert.NotEqual(t, st.Current, st.Next, "minute %d", now)
		assert.GreaterOrEqual(t, st.Remaining, 0, "minute %d", now)
		assert.NotEqual(t, Sunrise, st.Current, "minute %d", now)
		assert.NotEqual(t, Sunrise, st.Next, "minute %d", now)
	}
}

// TestEvaluate_Wraparound checks the Isha span after Isha and before
// midnight: current=Isha, next=Fajr, countdown against tomorrow's Fajr.
func TestEvaluate_Wraparound(t *testing.T) {
	s := testSchedule() // Isha=1170, Fajr=315

	st := Evaluate(s, 1200)
	assert.Equal(t, Isha, st.Current)
	assert.Equal(t, Fajr, st.Next)
	assert.Equal(t, 315+1440-1200, st.Remaining) // 555
}

// TestEvaluate_AfterMidnight checks the Isha span between midnight and Fajr.
func TestEvaluate_AfterMidnight(t *testing.T) {
	s := testSchedule()

	st := Evaluate(s, 100)
	assert.Equal(t, Isha, st.Current)
	assert.Equal(t, Fajr, st.Next)
	assert.Equal(t, 215, st.Remaining)
}

// TestEvaluate_BoundaryInclusion: an instant exactly on a prayer's start
// minute belongs to that prayer, not the previous one.
func TestEvaluate_BoundaryInclusion(t *testing.T) {
	s := testSchedule()

	st := Evaluate(s, s.Dhuhr)
	assert.Equal(t, Dhuhr, st.Current)
	assert.Equal(t, Asr, st.Next)
	assert.Equal(t, int(s.Asr-s.Dhuhr), st.Remaining)

	st = Evaluate(s, s.Fajr)
	assert.Equal(t, Fajr, st.Current)
	assert.Equal(t, Dhuhr, st.Next)

	st = Evaluate(s, s.Isha)
	assert.Equal(t, Isha, st.Current)
	assert.Equal(t, Fajr, st.Next)
	assert.Equal(t, 315+1440-1170, st.Remaining)
}

// TestEvaluate_MidnightTransition exercises the 23:59 -> 00:00 rollover: the
// countdown stays against tomorrow's Fajr on both sides of midnight and
// never collapses to a spuriously small value.
func TestEvaluate_MidnightTransition(t *testing.T) {
	s := testSchedule()

	before := Evaluate(s, 1439) // 23:59
	assert.Equal(t, Isha, before.Current)
	assert.Equal(t, Fajr, before.Next)
	assert.Equal(t, 316, before.Remaining)

	after := Evaluate(s, 0) // 00:00 next day
	assert.Equal(t, Isha, after.Current)
	assert.Equal(t, Fajr, after.Next)
	assert.Equal(t, 315, after.Remaining)
}

// TestEvaluate_MidDay spot-checks an ordinary afternoon instant.
func TestEvaluate_MidDay(t *testing.T) {
	s := testSchedule()

	st := Evaluate(s, 800) // 13:20
	assert.Equal(t, Dhuhr, st.Current)
	assert.Equal(t, Asr, st.Next)
	assert.Equal(t, 130, st.Remaining)
}
