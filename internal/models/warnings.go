package models

import "fmt"

// WarningType categorizes a compliance condition affecting a business.
// Values are stored and sent over the wire; never rename or reuse them.
type WarningType string

const (
	WarningCompliance                  WarningType = "COMPLIANCE"                     // outstanding compliance filing
	WarningFutureEffectiveAmalgamation WarningType = "FUTURE_EFFECTIVE_AMALGAMATION"  // amalgamation pending with a future effective date
	WarningInvoluntaryDissolution      WarningType = "INVOLUNTARY_DISSOLUTION"        // dissolution started by the registry
	WarningMissingRequiredBusinessInfo WarningType = "MISSING_REQUIRED_BUSINESS_INFO" // record lacks mandatory fields
	WarningNotInGoodStanding           WarningType = "NOT_IN_GOOD_STANDING"           // standing is negative
)

// warningsBySeverity is the precedence policy used to pick a primary warning.
// Most severe first.
var warningsBySeverity = []WarningType{
	WarningInvoluntaryDissolution,
	WarningNotInGoodStanding,
	WarningMissingRequiredBusinessInfo,
	WarningFutureEffectiveAmalgamation,
	WarningCompliance,
}

var warningSeverity = map[WarningType]int{}

func init() {
	for rank, w := range warningsBySeverity {
		warningSeverity[w] = rank
	}
}

// WarningTypesBySeverity returns every warning type, most severe first.
// The returned slice is a copy.
func WarningTypesBySeverity() []WarningType {
	out := make([]WarningType, len(warningsBySeverity))
	copy(out, warningsBySeverity)
	return out
}

// Severity returns the precedence rank of w (0 is most severe).
// Unknown types rank after every known type.
func (w WarningType) Severity() int {
	if rank, ok := warningSeverity[w]; ok {
		return rank
	}
	return len(warningsBySeverity)
}

// Valid reports whether w is one of the known warning types.
func (w WarningType) Valid() bool {
	_, ok := warningSeverity[w]
	return ok
}

func (w WarningType) String() string { return string(w) }

func (WarningType) dialogCode() {}

// ParseWarningType converts a stored or wire value into a WarningType.
func ParseWarningType(s string) (WarningType, error) {
	w := WarningType(s)
	if !w.Valid() {
		return "", fmt.Errorf("unknown warning type %q", s)
	}
	return w, nil
}

// WarningSummary is a single classified warning as returned by the API.
type WarningSummary struct {
	Type     WarningType `json:"type"`
	Severity int         `json:"severity"`
}
