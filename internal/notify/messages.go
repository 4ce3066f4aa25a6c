package notify

import (
	"fmt"

	"github.com/hmousaa/athan-agent/internal/prayer"
)

// Title is the fixed platform-notification title.
const Title = "Prayer Time"

// prayerNames holds display names of the prayers for locales whose script
// differs from the wire names. Locales absent here use the wire name as-is.
var prayerNames = map[string]map[prayer.Name]string{
	"ar": {
		prayer.Fajr:    "الفجر",
		prayer.Dhuhr:   "الظهر",
		prayer.Asr:     "العصر",
		prayer.Maghrib: "المغرب",
		prayer.Isha:    "العشاء",
	},
	"ur": {
		prayer.Fajr:    "فجر",
		prayer.Dhuhr:   "ظہر",
		prayer.Asr:     "عصر",
		prayer.Maghrib: "مغرب",
		prayer.Isha:    "عشاء",
	},
}

// bodyTemplates maps a locale to its notification body format, taking the
// localized prayer name.
var bodyTemplates = map[string]string{
	"en": "It is time for %s prayer",
	"ar": "حان الآن وقت صلاة %s",
	"fr": "C'est l'heure de la prière de %s",
	"ur": "%s کی نماز کا وقت ہو گیا ہے",
	"id": "Telah masuk waktu salat %s",
}

// PrayerName returns the display name of a prayer for the given locale.
func PrayerName(p prayer.Name, locale string) string {
	if names, ok := prayerNames[locale]; ok {
		if n, ok := names[p]; ok {
			return n
		}
	}
	return string(p)
}

// Body returns the localized notification body naming the prayer, falling
// back to English for unknown locales.
func Body(p prayer.Name, locale string) string {
	tmpl, ok := bodyTemplates[locale]
	if !ok {
		tmpl = bodyTemplates["en"]
	}
	return fmt.Sprintf(tmpl, PrayerName(p, locale))
}
