package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var locations map[string]*time.Location = map[string]*time.Location{}

func init() {
	for i := time.Duration(-12); i < 15; i++ {
		name := fmt.Sprintf("GMT%+d", i)
		locations[name] = time.FixedZone(name, int((i * time.Hour).Seconds()))
	}
}

// GetLocation returns a location of a GMT-X format timezone from a pre-defined locations map.
func GetLocation(timezone string) *time.Location {
	if tz, ok := locations[strings.ToUpper(timezone)]; ok {
		return tz
	}
	return nil
}

// DefaultLocation returns the municipality timezone the daily check-in
// counters roll over in when a visitor never set a preference.
func DefaultLocation() *time.Location {
	if tz := GetLocation(viper.GetString("checkin.timezone")); tz != nil {
		return tz
	}
	return time.UTC
}
