package services

import (
	"fmt"
	"time"

	"github.com/epeers/registry-warnings/internal/models"
)

// Translator looks up localized text for a key.
type Translator interface {
	Translate(key string) (string, error)
}

// Button actions understood by the UI.
const (
	ActionContactRegistry    = "contact-registry"
	ActionFileAnnualReport   = "file-annual-report"
	ActionUpdateBusinessInfo = "update-business-info"
)

type buttonTemplate struct {
	textKey      string
	onClickClose bool
	action       string
}

type dialogTemplate struct {
	titleKey string
	textKey  string
	buttons  []buttonTemplate
}

var (
	okButton    = buttonTemplate{textKey: "label.general.ok", onClickClose: true}
	closeButton = buttonTemplate{textKey: "label.general.close", onClickClose: true}
)

// dialogTemplates has exactly one entry per dialog code.
var dialogTemplates = map[models.DialogCode]dialogTemplate{
	models.FailureDownloadFile: {
		titleKey: "title.dialog.error.download",
		textKey:  "text.dialog.error.download",
		buttons:  []buttonTemplate{okButton},
	},
	models.WarningInvoluntaryDissolution: {
		titleKey: "title.dialog.warning.involuntaryDissolution",
		textKey:  "text.dialog.warning.involuntaryDissolution",
		buttons: []buttonTemplate{
			{textKey: "label.general.contactRegistry", onClickClose: true, action: ActionContactRegistry},
			okButton,
		},
	},
	models.WarningNotInGoodStanding: {
		titleKey: "title.dialog.warning.notInGoodStanding",
		textKey:  "text.dialog.warning.notInGoodStanding",
		buttons: []buttonTemplate{
			{textKey: "label.general.fileNow", action: ActionFileAnnualReport},
			closeButton,
		},
	},
	models.WarningMissingRequiredBusinessInfo: {
		titleKey: "title.dialog.warning.missingRequiredBusinessInfo",
		textKey:  "text.dialog.warning.missingRequiredBusinessInfo",
		buttons: []buttonTemplate{
			{textKey: "label.general.updateInfo", action: ActionUpdateBusinessInfo},
			closeButton,
		},
	},
	models.WarningFutureEffectiveAmalgamation: {
		titleKey: "title.dialog.warning.futureEffectiveAmalgamation",
		textKey:  "text.dialog.warning.futureEffectiveAmalgamation",
		buttons:  []buttonTemplate{okButton},
	},
	models.WarningCompliance: {
		titleKey: "title.dialog.warning.compliance",
		textKey:  "text.dialog.warning.compliance",
		buttons: []buttonTemplate{
			{textKey: "label.general.fileNow", action: ActionFileAnnualReport},
			closeButton,
		},
	},
}

// DialogResolver turns a warning type or failure code into a localized dialog.
// It is bound to a single locale through its Translator.
type DialogResolver struct {
	translator Translator
	templates  map[models.DialogCode]dialogTemplate
}

// NewDialogResolver creates a DialogResolver and verifies up front that every
// known code has a template and that every referenced key translates.
func NewDialogResolver(translator Translator) (*DialogResolver, error) {
	return newDialogResolver(translator, dialogTemplates)
}

func newDialogResolver(translator Translator, templates map[models.DialogCode]dialogTemplate) (*DialogResolver, error) {
	r := &DialogResolver{translator: translator, templates: templates}

	known := make(map[models.DialogCode]struct{})
	for _, code := range models.AllDialogCodes() {
		known[code] = struct{}{}
		tmpl, ok := templates[code]
		if !ok {
			return nil, &ConfigurationError{Code: code.String(), Reason: "no dialog template"}
		}
		if len(tmpl.buttons) == 0 {
			return nil, &ConfigurationError{Code: code.String(), Reason: "dialog template has no buttons"}
		}
		if _, err := r.Resolve(code); err != nil {
			return nil, err
		}
	}
	for code := range templates {
		if _, ok := known[code]; !ok {
			return nil, &ConfigurationError{Code: code.String(), Reason: "template for unknown code"}
		}
	}
	return r, nil
}

// Resolve builds the dialog for code. An unknown code returns a
// *ConfigurationError and a missing translation is returned as-is; in both
// cases the returned DialogOptions is the zero value.
func (r *DialogResolver) Resolve(code models.DialogCode) (models.DialogOptions, error) {
	defer TrackTime("DialogResolver.Resolve", time.Now())

	if code == nil {
		return models.DialogOptions{}, &ConfigurationError{Code: "<nil>", Reason: "no dialog template"}
	}
	tmpl, ok := r.templates[code]
	if !ok {
		return models.DialogOptions{}, &ConfigurationError{Code: code.String(), Reason: "no dialog template"}
	}

	title, err := r.translate(code, tmpl.titleKey)
	if err != nil {
		return models.DialogOptions{}, err
	}
	text, err := r.translate(code, tmpl.textKey)
	if err != nil {
		return models.DialogOptions{}, err
	}

	buttons := make([]models.DialogButton, 0, len(tmpl.buttons))
	for _, b := range tmpl.buttons {
		label, err := r.translate(code, b.textKey)
		if err != nil {
			return models.DialogOptions{}, err
		}
		buttons = append(buttons, models.DialogButton{
			Text:         label,
			OnClickClose: b.onClickClose,
			Action:       b.action,
		})
	}

	return models.DialogOptions{
		Title:   title,
		Text:    text,
		Buttons: buttons,
	}, nil
}

func (r *DialogResolver) translate(code models.DialogCode, key string) (string, error) {
	text, err := r.translator.Translate(key)
	if err != nil {
		return "", fmt.Errorf("dialog %s: %w", code, err)
	}
	if text == "" {
		return "", fmt.Errorf("dialog %s: empty text for key %q", code, key)
	}
	return text, nil
}
