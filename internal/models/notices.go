package models

// NoticeCode categorizes non-fatal problems reported alongside a result.
// N1xxx = lookup.
type NoticeCode string

const (
	NoticeBusinessNotFound NoticeCode = "N1001" // identifier in a batch did not match a business
)

// Notice represents a non-fatal issue encountered while building a response.
type Notice struct {
	Code    NoticeCode `json:"code"`
	Message string     `json:"message"`
}
