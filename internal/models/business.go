package models

import "time"

// TransactionType identifies a filing that is pending against a business.
type TransactionType string

const (
	TransactionAmalgamation TransactionType = "amalgamationApplication"
	TransactionAlteration   TransactionType = "alteration"
	TransactionDissolution  TransactionType = "dissolution"
)

// PendingTransaction is a filing that has been submitted but is not yet in effect.
type PendingTransaction struct {
	Type          TransactionType `json:"type"`
	EffectiveDate time.Time       `json:"effective_date"`
}

// BusinessEntityStatus is a read-only snapshot of the status fields used to
// classify warnings. AsOf is the moment the snapshot was taken; date-based
// checks are made relative to it rather than the wall clock.
type BusinessEntityStatus struct {
	Identifier                     string               `json:"identifier"`
	LegalName                      string               `json:"legal_name,omitempty"`
	LegalType                      string               `json:"legal_type,omitempty"`
	GoodStanding                   bool                 `json:"good_standing"`
	DissolutionInitiatedByRegistry bool                 `json:"dissolution_initiated_by_registry"`
	PendingTransactions            []PendingTransaction `json:"pending_transactions,omitempty"`
	MissingRequiredFields          []string             `json:"missing_required_fields,omitempty"`
	ComplianceFilingsDue           []string             `json:"compliance_filings_due,omitempty"`
	AsOf                           time.Time            `json:"as_of"`
}
