/*
Package enumfield stores a closed set of named values, an [Enum], in a database column as short strings.

# Overview

An [Enum] is an ordered set of [Pair]s: the raw value written to the database
and the name code uses to refer to it.
Members are [Item]s, looked up by name or by raw value:

	var ClothingSizes = enumfield.MustNew(
		enumfield.Pair{Value: "xs", Name: "EXTRA_SMALL"},
		enumfield.Pair{Value: "s", Name: "SMALL"},
		enumfield.Pair{Value: "m", Name: "MEDIUM"},
	)

	small := ClothingSizes.MustItem("SMALL")

A [Field] adapts an Enum to a database column.
Its max length is the longest raw value, and its choices are offered to forms.
[*Field.Coerce] converts raw strings and Items into a [NullItem],
rejecting anything else with a [*ValidationError].

# gorm

A Field is a gorm serializer. Register it and tag model fields with its name:

	sizeField := enumfield.MustField(ClothingSizes)
	sizeField.Register("clothing_size")

	type Garment struct {
		ID   uint
		Size enumfield.NullItem `gorm:"serializer:clothing_size;size:2"`
	}

# Migrations

[*Field.Deconstruct] returns a [Descriptor], the configuration needed to build the Field again.
[MarshalDescriptor] and [UnmarshalDescriptor] store a Descriptor as YAML
and [Reconstruct] rebuilds the Field from it.
*/
package enumfield
