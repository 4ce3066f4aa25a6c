package aladhan

// Response is the top-level envelope of the timings endpoints.
type Response struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   Data   `json:"data"`
}

// Data holds the prayer timings and date info for one day.
type Data struct {
	Timings Timings  `json:"timings"`
	Date    DateInfo `json:"date"`
	Meta    Meta     `json:"meta"`
}

// Timings contains the daily timings as "HH:MM" strings. The service may
// append a zone suffix like " (+03)" which callers strip during parsing.
type Timings struct {
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

// DateInfo contains the date representations attached to a timings response.
type DateInfo struct {
	Readable string    `json:"readable"`
	Hijri    HijriDate `json:"hijri"`
}

// HijriDate represents a Hijri calendar date as returned by the service.
type HijriDate struct {
	Date        string           `json:"date"` // e.g. "10-08-1447"
	Day         string           `json:"day"`
	Month       HijriMonth       `json:"month"`
	Year        string           `json:"year"`
	Designation HijriDesignation `json:"designation"`
}

// HijriMonth holds the month number and its localized names.
type HijriMonth struct {
	Number int    `json:"number"`
	En     string `json:"en"`
	Ar     string `json:"ar"`
}

// HijriDesignation contains the calendar designation labels.
type HijriDesignation struct {
	Abbreviated string `json:"abbreviated"` // "AH"
	Expanded    string `json:"expanded"`    // "Anno Hegirae"
}

// ConversionResponse is the envelope of the Gregorian-to-Hijri endpoint.
type ConversionResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   struct {
		Hijri HijriDate `json:"hijri"`
	} `json:"data"`
}

// Meta contains request metadata returned by the service.
type Meta struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}
