package enumfield

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Paths identifying what a Descriptor constructs.
const (
	EnumPath  = "enumfield.Enum"
	FieldPath = "enumfield.Field"
	ItemPath  = "enumfield.Item"
)

var (
	_ yaml.Marshaler   = (*Enum)(nil)
	_ yaml.Unmarshaler = (*Descriptor)(nil)
)

// A Descriptor is the configuration needed to construct a value again:
// what to construct, its positional arguments and its keyword arguments.
//
// Schema migrations store Descriptors so a Field can be rebuilt later
// without depending on the code that first declared it.
// Derived values, like a Field's max length or choices, are never part of one.
type Descriptor struct {
	Path   string         `yaml:"path"`
	Args   []any          `yaml:"args,omitempty"`
	Kwargs map[string]any `yaml:"kwargs,omitempty"`
}

// MarshalDescriptor encodes d as YAML.
// An *Enum in Args is encoded as its own Descriptor.
func MarshalDescriptor(d Descriptor) ([]byte, error) {
	b, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnexpected, err)
	}

	return b, nil
}

// UnmarshalDescriptor decodes YAML produced by MarshalDescriptor.
//
// Args are decoded into the types the Path expects:
// Pairs for an Enum, a string and []string for an Item, and an *Enum for a Field.
func UnmarshalDescriptor(b []byte) (Descriptor, error) {
	var d Descriptor
	if err := yaml.Unmarshal(b, &d); err != nil {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrNotValid, err)
	}

	return d, nil
}

// MarshalYAML encodes e as its Descriptor.
//
// MarshalYAML implements yaml.Marshaler.
func (e *Enum) MarshalYAML() (any, error) { return e.Deconstruct(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Descriptor) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Path   string         `yaml:"path"`
		Args   []yaml.Node    `yaml:"args"`
		Kwargs map[string]any `yaml:"kwargs"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	args, err := decodeArgs(raw.Path, raw.Args)
	if err != nil {
		return err
	}

	d.Path = raw.Path
	d.Args = args
	d.Kwargs = raw.Kwargs

	return nil
}

func decodeArgs(path string, nodes []yaml.Node) ([]any, error) {
	switch path {
	case EnumPath:
		args := make([]any, len(nodes))
		for i := range nodes {
			var p Pair
			if err := nodes[i].Decode(&p); err != nil {
				return nil, err
			}
			args[i] = p
		}

		return args, nil

	case ItemPath:
		if len(nodes) != 2 {
			return nil, fmt.Errorf("%s takes 2 args, got %d", path, len(nodes))
		}

		var value string
		var values []string
		if err := nodes[0].Decode(&value); err != nil {
			return nil, err
		}
		if err := nodes[1].Decode(&values); err != nil {
			return nil, err
		}

		return []any{value, values}, nil

	case FieldPath:
		if len(nodes) != 1 {
			return nil, fmt.Errorf("%s takes 1 arg, got %d", path, len(nodes))
		}

		var inner Descriptor
		if err := nodes[0].Decode(&inner); err != nil {
			return nil, err
		}

		enum, err := ReconstructEnum(inner)
		if err != nil {
			return nil, err
		}

		return []any{enum}, nil

	default:
		return nil, fmt.Errorf("unknown path %q", path)
	}
}

// ReconstructEnum builds an *Enum from the Descriptor returned by *Enum.Deconstruct.
func ReconstructEnum(d Descriptor) (*Enum, error) {
	if d.Path != EnumPath {
		return nil, fmt.Errorf("%w: path %q is not %s", ErrBadConfig, d.Path, EnumPath)
	}

	if len(d.Kwargs) > 0 {
		return nil, fmt.Errorf("%w: %s takes no kwargs", ErrBadConfig, EnumPath)
	}

	pairs := make([]Pair, len(d.Args))
	for i, arg := range d.Args {
		p, ok := arg.(Pair)
		if !ok {
			return nil, fmt.Errorf("%w: arg %d is %T, not a Pair", ErrBadConfig, i, arg)
		}
		pairs[i] = p
	}

	return New(pairs...)
}

// ReconstructItem builds an Item from the Descriptor returned by Item.Deconstruct.
func ReconstructItem(d Descriptor) (Item, error) {
	if d.Path != ItemPath || len(d.Args) != 2 {
		return Item{}, fmt.Errorf("%w: not an %s descriptor", ErrBadConfig, ItemPath)
	}

	value, ok := d.Args[0].(string)
	values, ok2 := d.Args[1].([]string)
	if !ok || !ok2 {
		return Item{}, fmt.Errorf("%w: %s args must be a string and a []string", ErrBadConfig, ItemPath)
	}

	return NewItem(value, values), nil
}

// Reconstruct builds a *Field from the Descriptor returned by *Field.Deconstruct.
func Reconstruct(d Descriptor, opts ...FieldOptFn) (*Field, error) {
	if d.Path != FieldPath {
		return nil, fmt.Errorf("%w: path %q is not %s", ErrBadConfig, d.Path, FieldPath)
	}

	if len(d.Args) != 1 {
		return nil, fmt.Errorf("%w: %s takes exactly one arg, got %d", ErrBadConfig, FieldPath, len(d.Args))
	}

	if len(d.Kwargs) > 0 {
		return nil, fmt.Errorf("%w: unsupported kwargs for %s", ErrBadConfig, FieldPath)
	}

	enum, ok := d.Args[0].(*Enum)
	if !ok {
		return nil, fmt.Errorf("%w: arg is %T, not an *Enum", ErrBadConfig, d.Args[0])
	}

	return NewField(enum, opts...)
}
