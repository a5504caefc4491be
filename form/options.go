package form

import "github.com/xy-planning-network/enumfield"

// An Option is one choice of a select element.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// Options renders the choices of f, marking the one matching selected.
//
// selected is anything *enumfield.Field.Coerce accepts.
// If it cannot be coerced, no Option is selected.
func Options(f *enumfield.Field, selected any) []Option {
	current, err := f.Coerce(selected)
	hasCurrent := err == nil && current.Valid

	choices := f.Choices()
	opts := make([]Option, len(choices))
	for i, c := range choices {
		opts[i] = Option{
			Value:    c.Value,
			Label:    c.Label,
			Selected: hasCurrent && current.String() == c.Value,
		}
	}

	return opts
}
