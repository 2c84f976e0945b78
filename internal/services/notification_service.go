package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/epeers/registry-warnings/internal/cache"
	"github.com/epeers/registry-warnings/internal/i18n"
	"github.com/epeers/registry-warnings/internal/models"
	"github.com/epeers/registry-warnings/internal/repository"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

// batchConcurrency bounds concurrent status lookups in a batch request.
const batchConcurrency = 8

// StatusSource loads business status snapshots. It returns
// repository.ErrBusinessNotFound for unknown identifiers.
type StatusSource interface {
	GetStatus(ctx context.Context, identifier string) (*models.BusinessEntityStatus, error)
}

// NotificationService classifies business warnings and resolves them into
// localized dialogs.
type NotificationService struct {
	classifier *WarningClassifier
	bundle     *i18n.Bundle
	resolvers  map[language.Tag]*DialogResolver
	statuses   StatusSource
	cache      *cache.StatusCache
}

// NewNotificationService creates a NotificationService with one dialog
// resolver per supported locale. Every resolver is validated here, so a
// missing template or translation fails at startup.
func NewNotificationService(
	classifier *WarningClassifier,
	bundle *i18n.Bundle,
	statuses StatusSource,
	statusCache *cache.StatusCache,
) (*NotificationService, error) {
	resolvers := make(map[language.Tag]*DialogResolver)
	for _, tag := range bundle.Locales() {
		r, err := NewDialogResolver(bundle.Localizer(tag))
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", tag, err)
		}
		resolvers[tag] = r
	}

	return &NotificationService{
		classifier: classifier,
		bundle:     bundle,
		resolvers:  resolvers,
		statuses:   statuses,
		cache:      statusCache,
	}, nil
}

// supportedLocale maps locale onto the closest supported locale.
func (s *NotificationService) supportedLocale(locale language.Tag) language.Tag {
	if _, ok := s.resolvers[locale]; ok {
		return locale
	}
	return s.bundle.Localizer(locale).Locale()
}

func (s *NotificationService) resolver(locale language.Tag) *DialogResolver {
	return s.resolvers[s.supportedLocale(locale)]
}

// ResolveDialog returns the localized dialog for a warning type or failure code.
func (s *NotificationService) ResolveDialog(code models.DialogCode, locale language.Tag) (models.DialogOptions, error) {
	return s.resolver(locale).Resolve(code)
}

// Evaluate classifies a status snapshot and resolves the dialog for its
// primary warning, if any.
func (s *NotificationService) Evaluate(status models.BusinessEntityStatus, locale language.Tag) (*models.WarningsResponse, error) {
	locale = s.supportedLocale(locale)
	warnings := s.classifier.Classify(status)

	resp := &models.WarningsResponse{
		Identifier: status.Identifier,
		Locale:     locale.String(),
		Warnings:   make([]models.WarningSummary, 0, len(warnings)),
	}
	for _, w := range warnings {
		resp.Warnings = append(resp.Warnings, models.WarningSummary{Type: w, Severity: w.Severity()})
	}
	if len(warnings) == 0 {
		return resp, nil
	}

	primary := warnings[0]
	dialog, err := s.resolver(locale).Resolve(primary)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dialog for %s: %w", primary, err)
	}
	resp.Primary = &primary
	resp.Dialog = &dialog

	log.WithFields(log.Fields{
		"identifier": status.Identifier,
		"primary":    primary,
		"count":      len(warnings),
	}).Debug("Classified business warnings")
	return resp, nil
}

// GetBusinessWarnings loads the status for identifier and evaluates it.
func (s *NotificationService) GetBusinessWarnings(ctx context.Context, identifier string, locale language.Tag) (*models.WarningsResponse, error) {
	defer TrackTime("GetBusinessWarnings", time.Now())

	status, err := s.loadStatus(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return s.Evaluate(*status, locale)
}

func (s *NotificationService) loadStatus(ctx context.Context, identifier string) (*models.BusinessEntityStatus, error) {
	if s.cache != nil {
		if status, ok := s.cache.Get(identifier); ok {
			return &status, nil
		}
	}

	status, err := s.statuses.GetStatus(ctx, identifier)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrBusinessNotFound, identifier)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load status for %s: %w", identifier, err)
	}

	if s.cache != nil {
		s.cache.Set(*status)
	}
	return status, nil
}

// GetWarningsForBusinesses evaluates several businesses concurrently.
// Results keep request order. Unknown identifiers are skipped and reported
// as notices in ctx; any other failure aborts the batch.
func (s *NotificationService) GetWarningsForBusinesses(ctx context.Context, identifiers []string, locale language.Tag) ([]models.WarningsResponse, error) {
	defer TrackTime("GetWarningsForBusinesses", time.Now())

	results := make([]*models.WarningsResponse, len(identifiers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, identifier := range identifiers {
		g.Go(func() error {
			resp, err := s.GetBusinessWarnings(gctx, identifier, locale)
			if errors.Is(err, ErrBusinessNotFound) {
				AddNotice(ctx, models.Notice{
					Code:    models.NoticeBusinessNotFound,
					Message: fmt.Sprintf("business %s was not found", identifier),
				})
				return nil
			}
			if err != nil {
				return err
			}
			results[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]models.WarningsResponse, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}
