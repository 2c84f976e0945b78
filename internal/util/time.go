package util

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// RegistryTimeZone is the zone in which effective dates are interpreted.
const RegistryTimeZone = "America/Vancouver"

// RegistryLocation returns the registry time zone, or UTC if it cannot be loaded.
func RegistryLocation() *time.Location {
	loc, err := time.LoadLocation(RegistryTimeZone)
	if err != nil {
		log.Errorf("Failed to load location '%s': %v. Falling back to UTC.", RegistryTimeZone, err)
		return time.UTC
	}
	return loc
}

// RegistryDate truncates t to midnight of its calendar day in the registry time zone.
func RegistryDate(t time.Time) time.Time {
	local := t.In(RegistryLocation())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}

// IsFutureEffective reports whether effective falls on a registry calendar day
// after the day of asOf. A filing effective later on the same day is not future.
func IsFutureEffective(effective, asOf time.Time) bool {
	if effective.IsZero() {
		return false
	}
	return RegistryDate(effective).After(RegistryDate(asOf))
}
