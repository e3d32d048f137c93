// Package contact validates contact form drafts and relays them to the external form relay.
package contact

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	// ErrMissingRequired is wrapped by ValidationError.
	ErrMissingRequired = errors.New("contact: missing or invalid fields")
	// ErrSubmissionInProgress is returned while another submission for the same client is in flight.
	ErrSubmissionInProgress = errors.New("contact: submission already in progress")
	// ErrRelayRejected is returned when the relay answers with a non-2xx status or success=false.
	ErrRelayRejected = errors.New("contact: relay rejected submission")
	// ErrMalformedResponse is returned when the relay response cannot be decoded or lacks a success flag.
	ErrMalformedResponse = errors.New("contact: malformed relay response")
)

const (
	maxNameLength    = 120
	maxEmailLength   = 254
	maxPhoneLength   = 40
	maxCompanyLength = 160
	maxMessageLength = 5000
)

// Draft is the contact form as typed by the visitor.
type Draft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// Empty reports whether every field is blank.
func (d Draft) Empty() bool {
	return d == Draft{}
}

// ValidationError lists the fields that failed validation.
type ValidationError struct {
	fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: [%s]", ErrMissingRequired.Error(), strings.Join(e.fields, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrMissingRequired }

// Fields returns a copy of the failing field names.
func (e *ValidationError) Fields() []string {
	return append([]string(nil), e.fields...)
}

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.fields {
		if f == field {
			return true
		}
	}
	return false
}

// Clean trims surrounding whitespace from every field and composes Unicode to NFC so the
// relay sees one spelling of each name. The text is otherwise relayed as typed.
func (d Draft) Clean() Draft {
	return Draft{
		Name:    clean(d.Name),
		Email:   clean(d.Email),
		Phone:   clean(d.Phone),
		Company: clean(d.Company),
		Message: clean(d.Message),
	}
}

// Validate checks a cleaned draft. Name, email and message are required, the email must
// parse as a single address and no field may exceed its length limit.
func (d Draft) Validate() error {
	var fields []string
	if d.Name == "" || tooLong(d.Name, maxNameLength) {
		fields = append(fields, "name")
	}
	if d.Email == "" || tooLong(d.Email, maxEmailLength) || !validEmail(d.Email) {
		fields = append(fields, "email")
	}
	if tooLong(d.Phone, maxPhoneLength) {
		fields = append(fields, "phone")
	}
	if tooLong(d.Company, maxCompanyLength) {
		fields = append(fields, "company")
	}
	if d.Message == "" || tooLong(d.Message, maxMessageLength) {
		fields = append(fields, "message")
	}
	if len(fields) > 0 {
		return &ValidationError{fields: fields}
	}
	return nil
}

func validEmail(raw string) bool {
	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return false
	}
	// Reject display-name forms such as "Jane <jane@x.com>".
	return addr.Address == raw && strings.Contains(addr.Address, "@")
}

func clean(value string) string {
	return strings.TrimSpace(norm.NFC.String(value))
}

func tooLong(value string, limit int) bool {
	return utf8.RuneCountInString(value) > limit
}
