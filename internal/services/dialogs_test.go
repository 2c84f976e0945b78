package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/epeers/registry-warnings/internal/i18n"
	"github.com/epeers/registry-warnings/internal/models"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

// fakeTranslator echoes keys in brackets and counts lookups.
type fakeTranslator struct {
	missing map[string]bool
	calls   int
}

func (f *fakeTranslator) Translate(key string) (string, error) {
	f.calls++
	if f.missing[key] {
		return "", fmt.Errorf("%w: %q", i18n.ErrMissingTranslation, key)
	}
	return "[" + key + "]", nil
}

func newTestResolver(t *testing.T) *DialogResolver {
	t.Helper()
	r, err := NewDialogResolver(&fakeTranslator{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return r
}

func TestResolve_DownloadFailure(t *testing.T) {
	r := newTestResolver(t)

	got, err := r.Resolve(models.FailureDownloadFile)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := models.DialogOptions{
		Title: "[title.dialog.error.download]",
		Text:  "[text.dialog.error.download]",
		Buttons: []models.DialogButton{
			{Text: "[label.general.ok]", OnClickClose: true},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_DownloadFailureEnglish(t *testing.T) {
	bundle, err := i18n.LoadEmbedded("en")
	if err != nil {
		t.Fatalf("failed to load catalogs: %v", err)
	}
	r, err := NewDialogResolver(bundle.Localizer(language.English))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := r.Resolve(models.FailureDownloadFile)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got.Buttons) != 1 {
		t.Fatalf("expected exactly 1 button, got %d", len(got.Buttons))
	}
	if !got.Buttons[0].OnClickClose {
		t.Error("expected button to close the dialog")
	}
	if got.Title == "" || got.Text == "" || got.Buttons[0].Text == "" {
		t.Errorf("expected fully populated dialog, got %+v", got)
	}
	if got.Buttons[0].Text != "OK" {
		t.Errorf("expected button text 'OK', got %q", got.Buttons[0].Text)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	r := newTestResolver(t)

	for _, code := range models.AllDialogCodes() {
		first, err := r.Resolve(code)
		if err != nil {
			t.Fatalf("%s: expected no error, got %v", code, err)
		}
		second, err := r.Resolve(code)
		if err != nil {
			t.Fatalf("%s: expected no error, got %v", code, err)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%s: repeated Resolve() differs (-first +second):\n%s", code, diff)
		}

		// Mutating a result must not leak into later results.
		first.Buttons[0].Text = "changed"
		third, _ := r.Resolve(code)
		if third.Buttons[0].Text == "changed" {
			t.Errorf("%s: resolved dialogs share button storage", code)
		}
	}
}

func TestResolve_EveryCodeFullyPopulated(t *testing.T) {
	bundle, err := i18n.LoadEmbedded("en")
	if err != nil {
		t.Fatalf("failed to load catalogs: %v", err)
	}

	for _, tag := range bundle.Locales() {
		r, err := NewDialogResolver(bundle.Localizer(tag))
		if err != nil {
			t.Fatalf("locale %s: expected no error, got %v", tag, err)
		}
		for _, code := range models.AllDialogCodes() {
			d, err := r.Resolve(code)
			if err != nil {
				t.Errorf("locale %s, code %s: %v", tag, code, err)
				continue
			}
			if d.Title == "" || d.Text == "" || len(d.Buttons) == 0 {
				t.Errorf("locale %s, code %s: incomplete dialog %+v", tag, code, d)
			}
			for i, b := range d.Buttons {
				if b.Text == "" {
					t.Errorf("locale %s, code %s: button %d has no text", tag, code, i)
				}
				if !b.OnClickClose && b.Action == "" {
					t.Errorf("locale %s, code %s: button %d neither closes nor acts", tag, code, i)
				}
			}
		}
	}
}

func TestDialogTemplates_Completeness(t *testing.T) {
	codes := models.AllDialogCodes()
	for _, code := range codes {
		if _, ok := dialogTemplates[code]; !ok {
			t.Errorf("code %s has no dialog template", code)
		}
	}
	if len(dialogTemplates) != len(codes) {
		t.Errorf("expected %d templates, got %d", len(codes), len(dialogTemplates))
	}
}

func TestResolve_UnknownCode(t *testing.T) {
	r := newTestResolver(t)

	for _, code := range []models.DialogCode{models.WarningType("BANKRUPT"), models.FailureCode("UPLOAD_FILE"), nil} {
		got, err := r.Resolve(code)
		if !errors.Is(err, ErrConfiguration) {
			t.Errorf("%v: expected configuration error, got %v", code, err)
		}
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%v: expected *ConfigurationError, got %T", code, err)
		}
		if diff := cmp.Diff(models.DialogOptions{}, got); diff != "" {
			t.Errorf("%v: expected zero dialog (-want +got):\n%s", code, diff)
		}
	}
}

func TestResolve_MissingTranslationPropagates(t *testing.T) {
	tr := &fakeTranslator{}
	r, err := NewDialogResolver(tr)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	tr.missing = map[string]bool{"text.dialog.error.download": true}
	got, err := r.Resolve(models.FailureDownloadFile)
	if !errors.Is(err, i18n.ErrMissingTranslation) {
		t.Fatalf("expected ErrMissingTranslation, got %v", err)
	}
	if !strings.Contains(err.Error(), string(models.FailureDownloadFile)) {
		t.Errorf("expected error to name the dialog code, got %v", err)
	}
	if got.Title != "" || got.Buttons != nil {
		t.Errorf("expected zero dialog on error, got %+v", got)
	}
}

func TestNewDialogResolver_ValidatesTranslations(t *testing.T) {
	tr := &fakeTranslator{missing: map[string]bool{"label.general.contactRegistry": true}}
	_, err := NewDialogResolver(tr)
	if !errors.Is(err, i18n.ErrMissingTranslation) {
		t.Errorf("expected ErrMissingTranslation at construction, got %v", err)
	}
}

func TestNewDialogResolver_MissingTemplate(t *testing.T) {
	templates := make(map[models.DialogCode]dialogTemplate)
	for code, tmpl := range dialogTemplates {
		templates[code] = tmpl
	}
	delete(templates, models.WarningFutureEffectiveAmalgamation)

	_, err := newDialogResolver(&fakeTranslator{}, templates)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigurationError, got %v", err)
	}
	if cfgErr.Code != string(models.WarningFutureEffectiveAmalgamation) {
		t.Errorf("expected error for %s, got %s", models.WarningFutureEffectiveAmalgamation, cfgErr.Code)
	}
}

func TestNewDialogResolver_ExtraAndEmptyTemplates(t *testing.T) {
	clone := func() map[models.DialogCode]dialogTemplate {
		templates := make(map[models.DialogCode]dialogTemplate)
		for code, tmpl := range dialogTemplates {
			templates[code] = tmpl
		}
		return templates
	}

	extra := clone()
	extra[models.FailureCode("UPLOAD_FILE")] = dialogTemplates[models.FailureDownloadFile]
	if _, err := newDialogResolver(&fakeTranslator{}, extra); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected configuration error for unknown code, got %v", err)
	}

	empty := clone()
	empty[models.FailureDownloadFile] = dialogTemplate{titleKey: "title.dialog.error.download", textKey: "text.dialog.error.download"}
	if _, err := newDialogResolver(&fakeTranslator{}, empty); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected configuration error for template without buttons, got %v", err)
	}
}

func TestClassifyThenResolve_InvoluntaryDissolution(t *testing.T) {
	c := newTestClassifier(t)
	r := newTestResolver(t)

	s := healthyStatus()
	s.DissolutionInitiatedByRegistry = true
	s.GoodStanding = false

	warnings := c.Classify(s)
	want := []models.WarningType{models.WarningInvoluntaryDissolution, models.WarningNotInGoodStanding}
	if diff := cmp.Diff(want, warnings); diff != "" {
		t.Fatalf("Classify() mismatch (-want +got):\n%s", diff)
	}

	d, err := r.Resolve(warnings[0])
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if d.Title != "[title.dialog.warning.involuntaryDissolution]" {
		t.Errorf("expected dissolution title, got %q", d.Title)
	}
	if d.Buttons[0].Action != ActionContactRegistry {
		t.Errorf("expected first button action %q, got %q", ActionContactRegistry, d.Buttons[0].Action)
	}
}
