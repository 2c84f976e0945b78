package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/epeers/registry-warnings/internal/util"
)

// FlexibleDate accepts RFC3339 timestamps as well as plain "YYYY-MM-DD" dates.
// Values without an offset are read in the registry time zone, so a plain
// date is midnight of that registry day. A JSON null or empty string leaves
// the zero time.
type FlexibleDate struct {
	time.Time
}

var flexibleDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexibleDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		f.Time = time.Time{}
		return nil
	}

	loc := util.RegistryLocation()
	var firstErr error
	for _, layout := range flexibleDateLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			f.Time = t
			return nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexibleDate) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(f.Time)
}
