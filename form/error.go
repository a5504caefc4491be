package form

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xy-planning-network/enumfield"
)

// A ValidationError reports one submitted form field that failed to decode or validate.
//
// Field is the field's name in the form, taken from its "schema" struct tag.
// Got is the submitted value.
// Allowed lists the values the form accepts when the field is backed by a registered enumfield.Field.
type ValidationError struct {
	Field   string   `json:"-"`
	Got     any      `json:"got"`
	Rule    string   `json:"rule"`
	Allowed []string `json:"allowed,omitempty"`
}

func (e ValidationError) Error() string {
	var got string
	switch e.Got.(type) {
	case string, []string:
		got = fmt.Sprintf("%q", e.Got)
	default:
		got = fmt.Sprint(e.Got)
	}

	msg := fmt.Sprintf("%s: %s fails %s", e.Field, got, e.Rule)
	if len(e.Allowed) > 0 {
		msg += " (one of " + strings.Join(e.Allowed, ", ") + ")"
	}

	return msg
}

// ValidationErrors are the fields of one form submission that failed, in the order found.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, err := range v {
		msgs[i] = err.Error()
	}

	return strings.Join(msgs, "; ")
}

// For returns the failure reported for the form field named field,
// so a template can render it next to the input.
func (v ValidationErrors) For(field string) (ValidationError, bool) {
	for _, err := range v {
		if err.Field == field {
			return err, true
		}
	}

	return ValidationError{}, false
}

// MarshalJSON renders v as an object keyed by form field name.
// A field reported more than once keeps its first failure.
func (v ValidationErrors) MarshalJSON() ([]byte, error) {
	fields := make(map[string]ValidationError, len(v))
	for _, err := range v {
		if _, ok := fields[err.Field]; !ok {
			fields[err.Field] = err
		}
	}

	return json.Marshal(fields)
}

func (ValidationErrors) Unwrap() error { return enumfield.ErrNotValid }
