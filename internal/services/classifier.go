package services

import (
	"github.com/epeers/registry-warnings/internal/models"
	"github.com/epeers/registry-warnings/internal/util"
)

// warningPredicate reports whether a warning applies to a status snapshot.
type warningPredicate func(s *models.BusinessEntityStatus) bool

// warningPredicates holds one independent predicate per warning type.
// Several may match the same business.
var warningPredicates = map[models.WarningType]warningPredicate{
	models.WarningInvoluntaryDissolution: func(s *models.BusinessEntityStatus) bool {
		return s.DissolutionInitiatedByRegistry
	},
	models.WarningNotInGoodStanding: func(s *models.BusinessEntityStatus) bool {
		return !s.GoodStanding
	},
	models.WarningMissingRequiredBusinessInfo: func(s *models.BusinessEntityStatus) bool {
		return len(s.MissingRequiredFields) > 0
	},
	models.WarningFutureEffectiveAmalgamation: hasFutureEffectiveAmalgamation,
	models.WarningCompliance: func(s *models.BusinessEntityStatus) bool {
		return len(s.ComplianceFilingsDue) > 0
	},
}

func hasFutureEffectiveAmalgamation(s *models.BusinessEntityStatus) bool {
	for _, tx := range s.PendingTransactions {
		if tx.Type == models.TransactionAmalgamation && util.IsFutureEffective(tx.EffectiveDate, s.AsOf) {
			return true
		}
	}
	return false
}

// WarningClassifier determines which compliance warnings apply to a business.
type WarningClassifier struct {
	order      []models.WarningType
	predicates map[models.WarningType]warningPredicate
}

// NewWarningClassifier creates a WarningClassifier, failing if any warning type
// lacks a predicate.
func NewWarningClassifier() (*WarningClassifier, error) {
	return newWarningClassifier(warningPredicates)
}

func newWarningClassifier(predicates map[models.WarningType]warningPredicate) (*WarningClassifier, error) {
	order := models.WarningTypesBySeverity()
	for _, w := range order {
		if predicates[w] == nil {
			return nil, &ConfigurationError{Code: w.String(), Reason: "no classifier predicate"}
		}
	}
	for w := range predicates {
		if !w.Valid() {
			return nil, &ConfigurationError{Code: w.String(), Reason: "predicate for unknown warning type"}
		}
	}
	return &WarningClassifier{order: order, predicates: predicates}, nil
}

// Classify returns every warning that applies to status, most severe first.
// The first element, if any, is the primary warning. A business with no
// warnings yields an empty, non-nil slice.
func (c *WarningClassifier) Classify(status models.BusinessEntityStatus) []models.WarningType {
	out := []models.WarningType{}
	for _, w := range c.order {
		if c.predicates[w](&status) {
			out = append(out, w)
		}
	}
	return out
}

// Primary returns the most severe applicable warning, or false if none apply.
func (c *WarningClassifier) Primary(status models.BusinessEntityStatus) (models.WarningType, bool) {
	warnings := c.Classify(status)
	if len(warnings) == 0 {
		return "", false
	}
	return warnings[0], true
}
