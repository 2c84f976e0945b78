package models

import "time"

// ClassifyRequest represents the request body for classifying an ad hoc status snapshot
type ClassifyRequest struct {
	Identifier                     string                      `json:"identifier"`
	GoodStanding                   *bool                       `json:"good_standing"`
	DissolutionInitiatedByRegistry bool                        `json:"dissolution_initiated_by_registry"`
	PendingTransactions            []PendingTransactionRequest `json:"pending_transactions"`
	MissingRequiredFields          []string                    `json:"missing_required_fields"`
	ComplianceFilingsDue           []string                    `json:"compliance_filings_due"`
	AsOf                           FlexibleDate                `json:"as_of"`
}

// PendingTransactionRequest represents a pending filing in a classify request
type PendingTransactionRequest struct {
	Type          TransactionType `json:"type" binding:"required"`
	EffectiveDate FlexibleDate    `json:"effective_date" binding:"required"`
}

// ToStatus converts the request into a status snapshot.
// A missing good_standing is treated as in good standing and a missing as_of as now.
func (r *ClassifyRequest) ToStatus(now time.Time) BusinessEntityStatus {
	status := BusinessEntityStatus{
		Identifier:                     r.Identifier,
		GoodStanding:                   true,
		DissolutionInitiatedByRegistry: r.DissolutionInitiatedByRegistry,
		MissingRequiredFields:          r.MissingRequiredFields,
		ComplianceFilingsDue:           r.ComplianceFilingsDue,
		AsOf:                           r.AsOf.Time,
	}
	if r.GoodStanding != nil {
		status.GoodStanding = *r.GoodStanding
	}
	if status.AsOf.IsZero() {
		status.AsOf = now
	}
	for _, tx := range r.PendingTransactions {
		status.PendingTransactions = append(status.PendingTransactions, PendingTransaction{
			Type:          tx.Type,
			EffectiveDate: tx.EffectiveDate.Time,
		})
	}
	return status
}

// WarningsResponse represents the classified warnings for one business
type WarningsResponse struct {
	Identifier string           `json:"identifier,omitempty"`
	Locale     string           `json:"locale"`
	Warnings   []WarningSummary `json:"warnings"`
	Primary    *WarningType     `json:"primary,omitempty"`
	Dialog     *DialogOptions   `json:"dialog,omitempty"`
}

// BatchWarningsRequest represents the request body for evaluating several businesses
type BatchWarningsRequest struct {
	Identifiers []string `json:"identifiers" binding:"required,min=1,max=50,dive,required"`
}

// BatchWarningsResponse represents the warnings for several businesses, in request order
type BatchWarningsResponse struct {
	Results []WarningsResponse `json:"results"`
	Notices []Notice           `json:"notices,omitempty"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
