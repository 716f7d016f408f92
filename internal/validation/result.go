// Package validation checks the passenger and payment forms locally and
// reports the outcome per named field.
package validation

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldResult is the outcome for one named field. Messages is empty when
// Valid is true.
type FieldResult struct {
	Field    string   `json:"field"`
	Valid    bool     `json:"valid"`
	Messages []string `json:"messages,omitempty"`
}

type Result struct {
	Fields []FieldResult `json:"fields"`
}

func (r *Result) OK() bool {
	for _, f := range r.Fields {
		if !f.Valid {
			return false
		}
	}
	return true
}

func (r *Result) Field(name string) (FieldResult, bool) {
	for _, f := range r.Fields {
		if f.Field == name {
			return f, true
		}
	}
	return FieldResult{}, false
}

func (r *Result) Failures() []FieldResult {
	var out []FieldResult
	for _, f := range r.Fields {
		if !f.Valid {
			out = append(out, f)
		}
	}
	return out
}

// Messages collects the messages of every failed field whose name starts
// with prefix, in check order.
func (r *Result) Messages(prefix string) []string {
	var out []string
	for _, f := range r.Fields {
		if !f.Valid && strings.HasPrefix(f.Field, prefix) {
			out = append(out, f.Messages...)
		}
	}
	return out
}

func (r *Result) check(field string, value any, rules ...validation.Rule) {
	res := FieldResult{Field: field, Valid: true}
	if err := validation.Validate(value, rules...); err != nil {
		res.Valid = false
		res.Messages = []string{err.Error()}
	}
	r.Fields = append(r.Fields, res)
}

func (r *Result) fail(field string, messages ...string) {
	r.Fields = append(r.Fields, FieldResult{Field: field, Valid: false, Messages: messages})
}

// FailedError carries a failed Result through an error return.
type FailedError struct {
	Result *Result
}

func (e *FailedError) Error() string {
	failures := e.Result.Failures()
	if len(failures) == 1 {
		return fmt.Sprintf("validation failed: %s: %s", failures[0].Field, strings.Join(failures[0].Messages, "; "))
	}
	return fmt.Sprintf("validation failed on %d fields", len(failures))
}
