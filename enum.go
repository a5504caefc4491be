package enumfield

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Enumerable is the interface implemented by types that can only be represented by enumerable, constant values.
//
// Implementing a new Enumerable or adding a new constant value ought to include updating the database with the same
// types and values.
type Enumerable interface {
	String() string
	Valid() error
}

// A Pair is one member of an Enum: the raw value stored in the database
// and the name code refers to it by.
type Pair struct {
	Value string `yaml:"value"`
	Name  string `yaml:"name"`
}

// A Choice is a stored value and the label displayed for it in a form.
type Choice struct {
	Value string
	Label string
}

// An Enum is a closed, ordered set of Pairs.
//
// An Enum is immutable once constructed, except for attaching UI labels with SetUILabels.
// Set those during configuration, before any Field is built from the Enum.
type Enum struct {
	pairs   []Pair
	items   []Item
	byName  map[string]Item
	byValue map[string]Item
	labels  map[Item]string
}

// New constructs an *Enum from pairs, in the order given.
//
// New rejects an empty set of pairs, empty values or names,
// values containing the ASCII unit separator (0x1F),
// and values or names used more than once.
func New(pairs ...Pair) (*Enum, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: enum needs at least one pair", ErrBadConfig)
	}

	values := make([]string, len(pairs))
	for i, p := range pairs {
		values[i] = p.Value
	}

	e := &Enum{
		pairs:   append([]Pair(nil), pairs...),
		items:   make([]Item, 0, len(pairs)),
		byName:  make(map[string]Item, len(pairs)),
		byValue: make(map[string]Item, len(pairs)),
	}

	for _, p := range pairs {
		if p.Value == "" || p.Name == "" {
			return nil, fmt.Errorf("%w: pair %+v has an empty value or name", ErrBadConfig, p)
		}

		if strings.Contains(p.Value, setSep) {
			return nil, fmt.Errorf("%w: value %q contains the unit separator", ErrBadConfig, p.Value)
		}

		if _, ok := e.byValue[p.Value]; ok {
			return nil, fmt.Errorf("%w: duplicate value %q", ErrBadConfig, p.Value)
		}

		if _, ok := e.byName[p.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrBadConfig, p.Name)
		}

		item := NewItem(p.Value, values)
		e.items = append(e.items, item)
		e.byName[p.Name] = item
		e.byValue[p.Value] = item
	}

	return e, nil
}

// MustNew is New, panicking on error.
// Use it for package-level enums.
func MustNew(pairs ...Pair) *Enum {
	e, err := New(pairs...)
	if err != nil {
		panic(err)
	}

	return e
}

// Item looks up a member by name.
func (e *Enum) Item(name string) (Item, bool) {
	item, ok := e.byName[name]
	return item, ok
}

// MustItem looks up a member by name, panicking if name is not in e.
func (e *Enum) MustItem(name string) Item {
	item, ok := e.byName[name]
	if !ok {
		panic(fmt.Sprintf("enumfield: no item named %q", name))
	}

	return item
}

// ByValue looks up a member by its raw value.
func (e *Enum) ByValue(value string) (Item, bool) {
	item, ok := e.byValue[value]
	return item, ok
}

// ItemsByValue returns a fresh map of raw value to Item.
func (e *Enum) ItemsByValue() map[string]Item {
	m := make(map[string]Item, len(e.byValue))
	for k, v := range e.byValue {
		m[k] = v
	}

	return m
}

// Items returns the members of e in declaration order.
func (e *Enum) Items() []Item { return append([]Item(nil), e.items...) }

// Pairs returns the (value, name) pairs of e in declaration order.
func (e *Enum) Pairs() []Pair { return append([]Pair(nil), e.pairs...) }

// Len is the number of members in e.
func (e *Enum) Len() int { return len(e.pairs) }

// Values returns the raw values of e in declaration order.
func (e *Enum) Values() []string {
	values := make([]string, len(e.pairs))
	for i, p := range e.pairs {
		values[i] = p.Value
	}

	return values
}

// Contains asserts whether item is a member of e.
func (e *Enum) Contains(item Item) bool {
	member, ok := e.byValue[item.value]
	return ok && member == item
}

// SetUILabels attaches human-readable labels to the members of e.
// Any labels set previously are replaced.
//
// Every key in labels must be a member of e and every label must be non-empty.
// SetUILabels reports all offending entries at once, leaving e unchanged.
// Empty labels are reported in declaration order, followed by non-members sorted by value.
func (e *Enum) SetUILabels(labels map[Item]string) error {
	var errs *multierror.Error
	for _, item := range e.items {
		if label, ok := labels[item]; ok && label == "" {
			errs = multierror.Append(errs, fmt.Errorf("%s has an empty label", item.GoString()))
		}
	}

	var strangers []Item
	for item := range labels {
		if !e.Contains(item) {
			strangers = append(strangers, item)
		}
	}
	sort.Slice(strangers, func(i, j int) bool { return strangers[i].GoString() < strangers[j].GoString() })
	for _, item := range strangers {
		errs = multierror.Append(errs, fmt.Errorf("%s is not a member", item.GoString()))
	}

	if err := errs.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %s", ErrBadConfig, err)
	}

	e.labels = make(map[Item]string, len(labels))
	for item, label := range labels {
		e.labels[item] = label
	}

	return nil
}

// HasUILabels asserts whether SetUILabels attached any labels to e.
func (e *Enum) HasUILabels() bool { return len(e.labels) > 0 }

// UILabels returns the labelled members of e as Choices, in declaration order.
func (e *Enum) UILabels() []Choice {
	if !e.HasUILabels() {
		return nil
	}

	choices := make([]Choice, 0, len(e.labels))
	for _, item := range e.items {
		if label, ok := e.labels[item]; ok {
			choices = append(choices, Choice{Value: item.value, Label: label})
		}
	}

	return choices
}

// Deconstruct describes how to construct e again.
// UI labels are not included.
func (e *Enum) Deconstruct() Descriptor {
	args := make([]any, len(e.pairs))
	for i, p := range e.pairs {
		args[i] = p
	}

	return Descriptor{Path: EnumPath, Args: args}
}
