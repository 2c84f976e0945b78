package models

import "fmt"

// FailureCode identifies an operational failure that is reported to the user
// through a dialog, as opposed to a compliance warning.
type FailureCode string

const (
	FailureDownloadFile FailureCode = "DOWNLOAD_FILE" // document download failed
)

var failureCodes = []FailureCode{
	FailureDownloadFile,
}

func (f FailureCode) String() string { return string(f) }

func (FailureCode) dialogCode() {}

// DialogCode is the key used to look up a dialog template. It is implemented
// only by WarningType and FailureCode.
type DialogCode interface {
	fmt.Stringer
	dialogCode()
}

// AllDialogCodes returns every code the dialog resolver must recognize.
func AllDialogCodes() []DialogCode {
	codes := make([]DialogCode, 0, len(warningsBySeverity)+len(failureCodes))
	for _, w := range warningsBySeverity {
		codes = append(codes, w)
	}
	for _, f := range failureCodes {
		codes = append(codes, f)
	}
	return codes
}

// ParseDialogCode converts a wire value into a warning type or failure code.
func ParseDialogCode(s string) (DialogCode, error) {
	for _, code := range AllDialogCodes() {
		if code.String() == s {
			return code, nil
		}
	}
	return nil, fmt.Errorf("unknown dialog code %q", s)
}

// DialogButton is one action in a dialog. Buttons render in slice order.
type DialogButton struct {
	Text         string `json:"text"`
	OnClickClose bool   `json:"onClickClose"`
	Action       string `json:"action,omitempty"` // opaque identifier the UI maps to a callback
}

// DialogOptions describes a presentation-ready dialog.
type DialogOptions struct {
	Title   string         `json:"title"`
	Text    string         `json:"text"`
	Buttons []DialogButton `json:"buttons"`
}
