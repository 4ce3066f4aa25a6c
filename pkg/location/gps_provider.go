package location

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/adrianmo/go-nmea"
	"github.com/tarm/serial"
)

// GPSProvider reads a fresh fix from a GPS receiver on a serial port. It is
// the high-accuracy device step of the resolution chain.
type GPSProvider struct {
	port     string
	baudRate int
}

// NewGPSProvider creates a GPSProvider for the given serial port and baud rate.
func NewGPSProvider(port string, baudRate int) *GPSProvider {
	return &GPSProvider{
		port:     port,
		baudRate: baudRate,
	}
}

// Name implements Provider.
func (g *GPSProvider) Name() string { return SourceGPS }

// GetLocation reads NMEA sentences until it sees a GGA sentence carrying a
// valid fix, or the context deadline expires. Sentences without a fix are
// skipped so a cold receiver never yields a stale position.
func (g *GPSProvider) GetLocation(ctx context.Context) (Location, error) {
	readTimeout := time.Second
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < readTimeout {
			readTimeout = remaining
		}
	}

	s, err := serial.OpenPort(&serial.Config{
		Name:        g.port,
		Baud:        g.baudRate,
		ReadTimeout: readTimeout,
	})
	if err != nil {
		return Location{}, err
	}
	defer s.Close()

	scanner := bufio.NewScanner(s)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return Location{}, err
		}

		line := scanner.Text()
		if !strings.HasPrefix(line, "$GPGGA") {
			continue
		}

		sentence, err := nmea.Parse(line)
		if err != nil {
			continue
		}

		gga, ok := sentence.(nmea.GGA)
		if !ok || gga.FixQuality == "0" {
			continue
		}

		return Location{
			Latitude:  gga.Latitude,
			Longitude: gga.Longitude,
			Accuracy:  float64(gga.HDOP),
			Source:    SourceGPS,
		}, nil
	}

	if err := scanner.Err(); err != nil {
		return Location{}, err
	}
	if err := ctx.Err(); err != nil {
		return Location{}, err
	}

	return Location{}, errors.New("no valid GPS fix found")
}
