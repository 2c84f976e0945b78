package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/epeers/registry-warnings/internal/cache"
	"github.com/epeers/registry-warnings/internal/i18n"
	"github.com/epeers/registry-warnings/internal/models"
	"github.com/epeers/registry-warnings/internal/repository"
	"golang.org/x/text/language"
)

// fakeStatusSource serves statuses from a map and counts lookups.
type fakeStatusSource struct {
	mu       sync.Mutex
	statuses map[string]models.BusinessEntityStatus
	calls    map[string]int
	err      error
}

func newFakeStatusSource(statuses ...models.BusinessEntityStatus) *fakeStatusSource {
	f := &fakeStatusSource{
		statuses: make(map[string]models.BusinessEntityStatus),
		calls:    make(map[string]int),
	}
	for _, s := range statuses {
		f.statuses[s.Identifier] = s
	}
	return f
}

func (f *fakeStatusSource) GetStatus(ctx context.Context, identifier string) (*models.BusinessEntityStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[identifier]++
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.statuses[identifier]
	if !ok {
		return nil, repository.ErrBusinessNotFound
	}
	return &s, nil
}

func newTestNotificationService(t *testing.T, source StatusSource, statusCache *cache.StatusCache) *NotificationService {
	t.Helper()
	bundle, err := i18n.LoadEmbedded("en")
	if err != nil {
		t.Fatalf("failed to load catalogs: %v", err)
	}
	svc, err := NewNotificationService(newTestClassifier(t), bundle, source, statusCache)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return svc
}

func TestEvaluate_NoWarnings(t *testing.T) {
	svc := newTestNotificationService(t, newFakeStatusSource(), nil)

	resp, err := svc.Evaluate(healthyStatus(), language.English)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(resp.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", resp.Warnings)
	}
	if resp.Primary != nil || resp.Dialog != nil {
		t.Errorf("expected no primary warning or dialog, got %+v", resp)
	}
}

func TestEvaluate_LocalizedPrimaryDialog(t *testing.T) {
	svc := newTestNotificationService(t, newFakeStatusSource(), nil)

	s := healthyStatus()
	s.GoodStanding = false
	s.ComplianceFilingsDue = []string{"annualReport"}

	en, err := svc.Evaluate(s, language.English)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if en.Primary == nil || *en.Primary != models.WarningNotInGoodStanding {
		t.Fatalf("expected primary %s, got %v", models.WarningNotInGoodStanding, en.Primary)
	}
	if len(en.Warnings) != 2 || en.Warnings[1].Type != models.WarningCompliance {
		t.Errorf("expected compliance as secondary warning, got %v", en.Warnings)
	}
	if en.Warnings[0].Severity >= en.Warnings[1].Severity {
		t.Errorf("expected ascending severity ranks, got %v", en.Warnings)
	}
	if en.Dialog.Title != "Business is Not in Good Standing" {
		t.Errorf("unexpected English title %q", en.Dialog.Title)
	}

	fr, err := svc.Evaluate(s, language.French)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if fr.Locale != "fr" {
		t.Errorf("expected locale fr, got %s", fr.Locale)
	}
	if fr.Dialog.Title == en.Dialog.Title {
		t.Errorf("expected French title to differ from English, got %q", fr.Dialog.Title)
	}
}

func TestEvaluate_UnsupportedLocaleUsesDefault(t *testing.T) {
	svc := newTestNotificationService(t, newFakeStatusSource(), nil)

	s := healthyStatus()
	s.DissolutionInitiatedByRegistry = true

	resp, err := svc.Evaluate(s, language.Japanese)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Locale != "en" {
		t.Errorf("expected default locale en, got %s", resp.Locale)
	}
	if resp.Dialog.Title != "Business is in Dissolution" {
		t.Errorf("unexpected title %q", resp.Dialog.Title)
	}
}

func TestResolveDialog(t *testing.T) {
	svc := newTestNotificationService(t, newFakeStatusSource(), nil)

	d, err := svc.ResolveDialog(models.FailureDownloadFile, language.French)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if d.Title != "Impossible de télécharger le document" {
		t.Errorf("unexpected title %q", d.Title)
	}

	if _, err := svc.ResolveDialog(models.WarningType("BANKRUPT"), language.English); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestGetBusinessWarnings_UsesCache(t *testing.T) {
	s := healthyStatus()
	s.MissingRequiredFields = []string{"email"}
	source := newFakeStatusSource(s)
	svc := newTestNotificationService(t, source, cache.NewStatusCache(time.Minute))

	for i := 0; i < 3; i++ {
		resp, err := svc.GetBusinessWarnings(context.Background(), s.Identifier, language.English)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if resp.Primary == nil || *resp.Primary != models.WarningMissingRequiredBusinessInfo {
			t.Fatalf("expected primary %s, got %v", models.WarningMissingRequiredBusinessInfo, resp.Primary)
		}
	}

	if source.calls[s.Identifier] != 1 {
		t.Errorf("expected 1 source lookup, got %d", source.calls[s.Identifier])
	}
}

func TestGetBusinessWarnings_Errors(t *testing.T) {
	source := newFakeStatusSource()
	svc := newTestNotificationService(t, source, nil)

	_, err := svc.GetBusinessWarnings(context.Background(), "BC404", language.English)
	if !errors.Is(err, ErrBusinessNotFound) {
		t.Errorf("expected ErrBusinessNotFound, got %v", err)
	}

	source.err = errors.New("connection refused")
	_, err = svc.GetBusinessWarnings(context.Background(), "BC500", language.English)
	if err == nil || errors.Is(err, ErrBusinessNotFound) {
		t.Errorf("expected wrapped source error, got %v", err)
	}
}

func TestGetWarningsForBusinesses(t *testing.T) {
	a := healthyStatus()
	a.Identifier = "BC0000001"
	b := healthyStatus()
	b.Identifier = "BC0000002"
	b.GoodStanding = false
	svc := newTestNotificationService(t, newFakeStatusSource(a, b), nil)

	ctx, nc := NewNoticeContext(context.Background())
	results, err := svc.GetWarningsForBusinesses(ctx, []string{"BC0000002", "BC9999999", "BC0000001"}, language.English)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Identifier != "BC0000002" || results[1].Identifier != "BC0000001" {
		t.Errorf("expected request order, got %s, %s", results[0].Identifier, results[1].Identifier)
	}
	if results[0].Primary == nil || *results[0].Primary != models.WarningNotInGoodStanding {
		t.Errorf("expected primary %s for BC0000002, got %v", models.WarningNotInGoodStanding, results[0].Primary)
	}

	notices := nc.Notices()
	if len(notices) != 1 || notices[0].Code != models.NoticeBusinessNotFound {
		t.Errorf("expected one not-found notice, got %v", notices)
	}
}

func TestGetWarningsForBusinesses_SourceFailureAbortsBatch(t *testing.T) {
	source := newFakeStatusSource(healthyStatus())
	source.err = errors.New("connection refused")
	svc := newTestNotificationService(t, source, nil)

	if _, err := svc.GetWarningsForBusinesses(context.Background(), []string{"BC0871227"}, language.English); err == nil {
		t.Error("expected error, got nil")
	}
}
