package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/hmousaa/athan-agent/internal/prayer"
	"github.com/hmousaa/athan-agent/pkg/aladhan"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockTimingsClient struct {
	mock.Mock
}

func (m *mockTimingsClient) Timings(date time.Time, lat, lng float64, method, school int) (*aladhan.Response, error) {
	args := m.Called(date, lat, lng, method, school)
	if resp := args.Get(0); resp != nil {
		return resp.(*aladhan.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTimingsClient) TimingsByCity(date time.Time, city, country string, method, school int) (*aladhan.Response, error) {
	args := m.Called(date, city, country, method, school)
	if resp := args.Get(0); resp != nil {
		return resp.(*aladhan.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func validResponse() *aladhan.Response {
	return &aladhan.Response{
		Code: 200,
		Data: aladhan.Data{
			Timings: aladhan.Timings{
				Fajr:    "04:45",
				Sunrise: "06:05",
				Dhuhr:   "11:55",
				Asr:     "15:20",
				Maghrib: "17:45",
				Isha:    "19:15",
			},
		},
	}
}

func TestFetcher_PrimarySuccess(t *testing.T) {
	client := new(mockTimingsClient)
	client.On("Timings", mock.Anything, 24.7136, 46.6753, 4, 0).Return(validResponse(), nil)

	f := NewFetcher(client, 4, 0, "Riyadh", "Saudi Arabia", zerolog.Nop())
	sched, src := f.Fetch(time.Now(), 24.7136, 46.6753)

	assert.Equal(t, SourceAPI, src)
	assert.False(t, src.Approximate())
	assert.Equal(t, "04:45", sched.Fajr.Clock24())
	client.AssertNotCalled(t, "TimingsByCity", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFetcher_CityFallback(t *testing.T) {
	client := new(mockTimingsClient)
	client.On("Timings", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout"))
	client.On("TimingsByCity", mock.Anything, "Riyadh", "Saudi Arabia", 4, 0).
		Return(validResponse(), nil)

	f := NewFetcher(client, 4, 0, "Riyadh", "Saudi Arabia", zerolog.Nop())
	sched, src := f.Fetch(time.Now(), 1.0, 2.0)

	assert.Equal(t, SourceCityFallback, src)
	assert.True(t, src.Approximate())
	assert.Equal(t, "19:15", sched.Isha.Clock24())
	client.AssertExpectations(t)
}

// TestFetcher_StaticFallback: when both network stages fail the fetcher must
// return the exact built-in emergency schedule.
func TestFetcher_StaticFallback(t *testing.T) {
	client := new(mockTimingsClient)
	client.On("Timings", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("network down"))
	client.On("TimingsByCity", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("network down"))

	f := NewFetcher(client, 4, 0, "Riyadh", "Saudi Arabia", zerolog.Nop())
	sched, src := f.Fetch(time.Now(), 1.0, 2.0)

	assert.Equal(t, SourceStatic, src)
	assert.True(t, src.Approximate())
	assert.Equal(t, prayer.Emergency(), sched)
	assert.Equal(t, "05:15", sched.Fajr.Clock24())
	assert.Equal(t, "06:30", sched.Sunrise.Clock24())
	assert.Equal(t, "12:00", sched.Dhuhr.Clock24())
	assert.Equal(t, "15:30", sched.Asr.Clock24())
	assert.Equal(t, "18:00", sched.Maghrib.Clock24())
	assert.Equal(t, "19:30", sched.Isha.Clock24())
}

// TestFetcher_MalformedPayload: a parseable response with garbage timings
// cascades the same way a transport failure does.
func TestFetcher_MalformedPayload(t *testing.T) {
	bad := validResponse()
	bad.Data.Timings.Dhuhr = "not-a-time"

	client := new(mockTimingsClient)
	client.On("Timings", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(bad, nil)
	client.On("TimingsByCity", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(validResponse(), nil)

	f := NewFetcher(client, 4, 0, "Riyadh", "Saudi Arabia", zerolog.Nop())
	_, src := f.Fetch(time.Now(), 1.0, 2.0)

	assert.Equal(t, SourceCityFallback, src)
}

func TestFromTimings_ZoneSuffix(t *testing.T) {
	timings := validResponse().Data.Timings
	timings.Fajr = "04:45 (+03)"

	sched, err := FromTimings(timings)
	assert.NoError(t, err)
	assert.Equal(t, "04:45", sched.Fajr.Clock24())
}

func TestFromTimings_RejectsNonMonotonic(t *testing.T) {
	timings := validResponse().Data.Timings
	timings.Isha = "03:00"

	_, err := FromTimings(timings)
	assert.Error(t, err)
}
