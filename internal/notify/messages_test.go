package notify

import (
	"testing"

	"github.com/hmousaa/athan-agent/internal/prayer"
	"github.com/stretchr/testify/assert"
)

func TestBody_Localized(t *testing.T) {
	assert.Equal(t, "It is time for Maghrib prayer", Body(prayer.Maghrib, "en"))
	assert.Equal(t, "حان الآن وقت صلاة المغرب", Body(prayer.Maghrib, "ar"))
	assert.Equal(t, "Telah masuk waktu salat Maghrib", Body(prayer.Maghrib, "id"))
}

func TestBody_UnknownLocaleFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "It is time for Fajr prayer", Body(prayer.Fajr, "xx"))
}

func TestPrayerName_LocalizedWhenAvailable(t *testing.T) {
	assert.Equal(t, "العشاء", PrayerName(prayer.Isha, "ar"))
	assert.Equal(t, "Isha", PrayerName(prayer.Isha, "fr"))
}
