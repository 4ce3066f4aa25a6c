package hijri

// monthNames maps each supported locale to the 12 Hijri month names, indexed
// by month number minus one. English is the ultimate fallback for unknown
// locales.
var monthNames = map[string][12]string{
	"en": {
		"Muharram", "Safar", "Rabi' al-Awwal", "Rabi' al-Thani",
		"Jumada al-Awwal", "Jumada al-Thani", "Rajab", "Sha'ban",
		"Ramadan", "Shawwal", "Dhu al-Qi'dah", "Dhu al-Hijjah",
	},
	"ar": {
		"محرم", "صفر", "ربيع الأول", "ربيع الآخر",
		"جمادى الأولى", "جمادى الآخرة", "رجب", "شعبان",
		"رمضان", "شوال", "ذو القعدة", "ذو الحجة",
	},
	"fr": {
		"Mouharram", "Safar", "Rabia al-Awal", "Rabia ath-Thani",
		"Joumada al-Oula", "Joumada ath-Thania", "Rajab", "Chaabane",
		"Ramadan", "Chawwal", "Dhou al-Qida", "Dhou al-Hijja",
	},
	"ur": {
		"محرم", "صفر", "ربیع الاول", "ربیع الثانی",
		"جمادی الاول", "جمادی الثانی", "رجب", "شعبان",
		"رمضان", "شوال", "ذیقعدہ", "ذی الحجہ",
	},
	"id": {
		"Muharam", "Safar", "Rabiul Awal", "Rabiul Akhir",
		"Jumadil Awal", "Jumadil Akhir", "Rajab", "Syaban",
		"Ramadan", "Syawal", "Zulkaidah", "Zulhijah",
	},
}

// designations maps each supported locale to the era suffix appended to a
// formatted Hijri date.
var designations = map[string]string{
	"en": "AH",
	"ar": "هـ",
	"fr": "AH",
	"ur": "ھ",
	"id": "H",
}

// MonthName returns the localized name of the given Hijri month (1-12),
// falling back to English for unknown locales.
func MonthName(month int, locale string) string {
	if month < 1 || month > 12 {
		return ""
	}

	names, ok := monthNames[locale]
	if !ok {
		names = monthNames["en"]
	}
	return names[month-1]
}

// Designation returns the localized era suffix, falling back to English.
func Designation(locale string) string {
	if d, ok := designations[locale]; ok {
		return d
	}
	return designations["en"]
}
