package enumfield

import (
	"database/sql/driver"
	"fmt"
	"unicode/utf8"

	"github.com/xy-planning-network/enumfield/logger"
)

// A Field stores Items of an Enum as short strings in a database column.
//
// A Field is built once, when declaring a model, and is safe for concurrent use afterwards.
type Field struct {
	enum      *Enum
	set       string
	maxLength int
	choices   []Choice

	explicit    []Choice
	hasExplicit bool
	logger      logger.Logger
}

// A FieldOptFn is a functional option configuring a Field when constructing a new one.
type FieldOptFn func(*Field)

// WithChoices sets the choices a form offers for the Field.
//
// WithChoices cannot be used with an Enum that has UI labels;
// NewField returns ErrBadConfig in that case, even if choices is empty.
func WithChoices(choices ...Choice) FieldOptFn {
	return func(f *Field) {
		f.explicit = append([]Choice(nil), choices...)
		f.hasExplicit = true
	}
}

// WithLogger sets the logger.Logger a Field reports rejected values to.
func WithLogger(l logger.Logger) FieldOptFn {
	return func(f *Field) {
		f.logger = l
	}
}

// NewField constructs a *Field storing Items of enum.
//
// The Field's max length is the number of characters in the longest value in enum.
// The Field's choices are, in order of precedence:
// the UI labels of enum,
// the choices passed with WithChoices,
// or the values and names of enum.
func NewField(enum *Enum, opts ...FieldOptFn) (*Field, error) {
	if enum == nil || enum.Len() == 0 {
		return nil, fmt.Errorf("%w: field needs an enum built with New", ErrBadConfig)
	}

	f := &Field{enum: enum, set: enum.items[0].set}
	for _, opt := range opts {
		opt(f)
	}

	if f.logger == nil {
		f.logger = logger.New()
	}

	if f.hasExplicit && enum.HasUILabels() {
		return nil, fmt.Errorf("%w: the enum has UI labels set which precludes specifying choices", ErrBadConfig)
	}

	for _, v := range enum.Values() {
		if n := utf8.RuneCountInString(v); n > f.maxLength {
			f.maxLength = n
		}
	}

	switch {
	case enum.HasUILabels():
		f.choices = enum.UILabels()

	case f.hasExplicit:
		f.choices = f.explicit

	default:
		for _, p := range enum.pairs {
			f.choices = append(f.choices, Choice{Value: p.Value, Label: p.Name})
		}
	}

	return f, nil
}

// MustField is NewField, panicking on error.
func MustField(enum *Enum, opts ...FieldOptFn) *Field {
	f, err := NewField(enum, opts...)
	if err != nil {
		panic(err)
	}

	return f
}

// Enum returns the Enum the Field stores.
func (f *Field) Enum() *Enum { return f.enum }

// MaxLength is the length, in characters, of the longest value of the Field's Enum.
func (f *Field) MaxLength() int { return f.maxLength }

// Choices returns the stored values and display labels offered for the Field.
func (f *Field) Choices() []Choice { return append([]Choice(nil), f.choices...) }

// ColumnType is the SQL type of a column storing the Field.
func (f *Field) ColumnType() string { return fmt.Sprintf("varchar(%d)", f.maxLength) }

// Coerce converts value into a NullItem of the Field's Enum.
//
// Coerce accepts:
//   - nil, a nil pointer, an absent NullItem, the zero Item or "", all of which are absent
//   - an Item, *Item or NullItem of the Field's Enum, which is returned as is
//   - a string, []byte or fmt.Stringer matching a value of the Field's Enum
//
// An Item of another Enum fails with a *ValidationError coded CodeDoesNotBelong.
// Anything else fails with a *ValidationError coded CodeCannotResolveItem.
//
// Coerce is idempotent.
func (f *Field) Coerce(value any) (NullItem, error) {
	switch v := value.(type) {
	case nil:
		return NullItem{}, nil

	case NullItem:
		if !v.Valid {
			return NullItem{}, nil
		}
		return f.coerceItem(v.Item)

	case *NullItem:
		if v == nil || !v.Valid {
			return NullItem{}, nil
		}
		return f.coerceItem(v.Item)

	case Item:
		return f.coerceItem(v)

	case *Item:
		if v == nil {
			return NullItem{}, nil
		}
		return f.coerceItem(*v)

	case string:
		return f.resolve(v, value)

	case *string:
		if v == nil {
			return NullItem{}, nil
		}
		return f.resolve(*v, value)

	case []byte:
		if v == nil {
			return NullItem{}, nil
		}
		return f.resolve(string(v), value)

	case fmt.Stringer:
		return f.resolve(v.String(), value)

	default:
		return NullItem{}, f.reject(cannotResolve(value))
	}
}

// PrepValue converts value into what is written to the database:
// the raw value of the coerced Item, or nil if absent.
func (f *Field) PrepValue(value any) (driver.Value, error) {
	ni, err := f.Coerce(value)
	if err != nil {
		return nil, err
	}

	if !ni.Valid {
		return nil, nil
	}

	return ni.Item.String(), nil
}

// FromDB converts a value read from the database into a NullItem.
func (f *Field) FromDB(value any) (NullItem, error) { return f.Coerce(value) }

// Deconstruct describes how to construct f again.
//
// The Enum is the only argument; max length and choices are derived from it.
func (f *Field) Deconstruct() Descriptor {
	return Descriptor{Path: FieldPath, Args: []any{f.enum}}
}

func (f *Field) coerceItem(item Item) (NullItem, error) {
	if item.IsZero() {
		return NullItem{}, nil
	}

	if !item.belongsTo(f.set) {
		return NullItem{}, f.reject(doesNotBelong(item))
	}

	// NewItem can pair a matching value set with a value outside it.
	if !f.enum.Contains(item) {
		return NullItem{}, f.reject(cannotResolve(item))
	}

	return Some(item), nil
}

func (f *Field) resolve(raw string, orig any) (NullItem, error) {
	if raw == "" {
		return NullItem{}, nil
	}

	item, ok := f.enum.ByValue(raw)
	if !ok {
		return NullItem{}, f.reject(cannotResolve(orig))
	}

	return Some(item), nil
}

func (f *Field) reject(err *ValidationError) error {
	f.logger.Debug("rejected enum value", &logger.LogContext{
		Data:  map[string]any{"code": err.Code},
		Error: err,
	})

	return err
}
