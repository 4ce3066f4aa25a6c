package utils

import (
	"time"

	"github.com/hmousaa/athan-agent/pkg/file"
)

// Config represents the structure of the configuration file.
type Config struct {
	MQTT struct {
		Broker        string `yaml:"broker"`         // MQTT broker address
		ClientID      string `yaml:"client_id"`      // MQTT client ID
		CACertificate string `yaml:"ca_certificate"` // Path to the CA certificate, optional
	} `yaml:"mqtt"`

	Location struct {
		Topic         string        `yaml:"topic"`          // Topic for resolved location updates
		OverrideTopic string        `yaml:"override_topic"` // Topic for manual search-and-select commands
		QOS           int           `yaml:"qos"`            // QoS level for location messages
		SensorBased   bool          `yaml:"sensor_based"`   // Enable the serial GPS step
		GPSDevicePort string        `yaml:"gps_device_port"` // UNIX port where the GPS receiver is mounted
		GPSBaudRate   int           `yaml:"gps_baud_rate"`   // Baud rate for the GPS receiver
		DeviceWait    time.Duration `yaml:"device_wait"`     // Bounded wait for a fresh GPS fix
		MapsAPIKey    string        `yaml:"maps_api_key"`    // Google Maps API key (geolocation + search)
		IPAPITimeout  time.Duration `yaml:"ip_api_timeout"`  // Timeout for the IP geolocation step
		SearchTimeout time.Duration `yaml:"search_timeout"`  // Timeout for a manual geocode search

		Fallback struct {
			Latitude  float64 `yaml:"latitude"`
			Longitude float64 `yaml:"longitude"`
			City      string  `yaml:"city"`
			Country   string  `yaml:"country"`
		} `yaml:"fallback"` // Static location when the whole chain fails
	} `yaml:"location"`

	Schedule struct {
		Method          int           `yaml:"method"`           // Calculation method constant
		School          int           `yaml:"school"`           // Jurisprudence school constant
		Timeout         time.Duration `yaml:"timeout"`          // Per-request timeout for the timing service
		FallbackCity    string        `yaml:"fallback_city"`    // Fixed city for the secondary query
		FallbackCountry string        `yaml:"fallback_country"` // Fixed country for the secondary query
	} `yaml:"schedule"`

	Tracker struct {
		StateTopic  string        `yaml:"state_topic"`  // Topic for per-tick tracking state
		BannerTopic string        `yaml:"banner_topic"` // Topic for banner events
		QOS         int           `yaml:"qos"`          // QoS level for tracker messages
		Interval    time.Duration `yaml:"interval"`     // Tick cadence
		Locale      string        `yaml:"locale"`       // Locale for notification bodies
	} `yaml:"tracker"`

	Hijri struct {
		Topic  string `yaml:"topic"`  // Topic for Hijri date updates
		QOS    int    `yaml:"qos"`    // QoS level for Hijri messages
		Locale string `yaml:"locale"` // Locale for the Hijri date string
	} `yaml:"hijri"`

	Notify struct {
		Icon        string   `yaml:"icon"`         // Platform notification icon path, optional
		AthanPlayer string   `yaml:"athan_player"` // Audio player binary, e.g. mpv
		AthanArgs   []string `yaml:"athan_args"`   // Extra player arguments
		AthanSource string   `yaml:"athan_source"` // Recitation file path or stream URL
	} `yaml:"notify"`

	Preferences struct {
		File string `yaml:"file"` // Path of the remembered manual location
	} `yaml:"preferences"`
}

// LoadConfig loads the YAML configuration from the specified file.
// It returns a pointer to the Config struct and an error if loading fails.
func LoadConfig(filename string, fileClient file.FileOperations) (*Config, error) {
	var config Config
	if err := fileClient.ReadYamlFile(filename, &config); err != nil {
		return nil, err
	}

	return &config, nil
}
