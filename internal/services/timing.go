package services

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// TrackTime logs how long funcName has been running. Use with defer.
func TrackTime(funcName string, start time.Time) {
	log.WithField("elapsed_us", time.Since(start).Microseconds()).Debugf("%s finished", funcName)
}
