package enumfield

import (
	"encoding"
	"fmt"
	"strings"
)

var (
	_ Enumerable             = Item{}
	_ encoding.TextMarshaler = Item{}
	_ fmt.GoStringer         = Item{}
)

// setSep joins the parent values of an Item into a comparable key.
const setSep = "\x1f"

// An Item is a single member of an Enum,
// identified by its raw value and the raw values of its parent Enum.
//
// Items are comparable: two Items are equal when both their value
// and the values of their parent Enum match.
// The zero Item belongs to no Enum.
type Item struct {
	value string
	set   string
}

// NewItem constructs an Item for value whose parent Enum holds enumValues.
//
// Most code gets Items from an *Enum instead.
func NewItem(value string, enumValues []string) Item {
	return Item{value: value, set: strings.Join(enumValues, setSep)}
}

// String returns the raw value of the Item.
//
// String implements fmt.Stringer.
func (i Item) String() string { return i.value }

// GoString implements fmt.GoStringer.
func (i Item) GoString() string {
	return fmt.Sprintf("<EnumItem %q of %q>", i.value, i.EnumValues())
}

// EnumValues returns the raw values of the Item's parent Enum.
func (i Item) EnumValues() []string {
	if i.set == "" {
		return nil
	}

	return strings.Split(i.set, setSep)
}

// IsZero asserts whether i is the zero Item.
func (i Item) IsZero() bool { return i == Item{} }

// Valid asserts the Item's value is one of its parent's values.
//
// Valid implements Enumerable.
func (i Item) Valid() error {
	for _, v := range i.EnumValues() {
		if v == i.value {
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrNotValid, i.GoString())
}

// MarshalText renders the raw value.
//
// MarshalText implements encoding.TextMarshaler.
func (i Item) MarshalText() ([]byte, error) { return []byte(i.value), nil }

// Deconstruct describes how to construct i again.
func (i Item) Deconstruct() Descriptor {
	return Descriptor{Path: ItemPath, Args: []any{i.value, i.EnumValues()}}
}

func (i Item) belongsTo(set string) bool { return i.set == set }

// NullItem is an Item that may be absent, the way a nullable column is.
type NullItem struct {
	Item
	Valid bool
}

// Some wraps item as a present NullItem.
func Some(item Item) NullItem { return NullItem{Item: item, Valid: true} }

// String returns the raw value or "" if absent.
func (ni NullItem) String() string {
	if !ni.Valid {
		return ""
	}

	return ni.Item.String()
}
