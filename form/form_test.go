package form_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/enumfield"
	"github.com/xy-planning-network/enumfield/form"
)

func newSizeField(t *testing.T, labelled bool) (*enumfield.Enum, *enumfield.Field) {
	t.Helper()
	e := enumfield.MustNew(
		enumfield.Pair{Value: "s", Name: "SMALL"},
		enumfield.Pair{Value: "m", Name: "MEDIUM"},
		enumfield.Pair{Value: "l", Name: "LARGE"},
	)

	if labelled {
		err := e.SetUILabels(map[enumfield.Item]string{
			e.MustItem("SMALL"):  "Small",
			e.MustItem("MEDIUM"): "Medium",
			e.MustItem("LARGE"):  "Large",
		})
		require.Nil(t, err)
	}

	return e, enumfield.MustField(e)
}

func TestOptions(t *testing.T) {
	// Arrange
	e, f := newSizeField(t, true)

	// Act
	opts := form.Options(f, e.MustItem("MEDIUM"))

	// Assert
	require.Equal(t, []form.Option{
		{Value: "s", Label: "Small"},
		{Value: "m", Label: "Medium", Selected: true},
		{Value: "l", Label: "Large"},
	}, opts)

	// Act
	opts = form.Options(f, "l")

	// Assert
	require.True(t, opts[2].Selected)

	for _, selected := range []any{nil, "xxl"} {
		// Act
		opts = form.Options(f, selected)

		// Assert
		require.Len(t, opts, 3)
		for _, opt := range opts {
			require.False(t, opt.Selected)
		}
	}
}

func TestOptionsUnlabelled(t *testing.T) {
	// Arrange
	_, f := newSizeField(t, false)

	// Act
	opts := form.Options(f, "s")

	// Assert
	require.Equal(t, form.Option{Value: "s", Label: "SMALL", Selected: true}, opts[0])
}

type garmentForm struct {
	Name  string   `schema:"name" validate:"required"`
	Size  string   `schema:"size" validate:"required,size"`
	Alts  []string `schema:"alts" validate:"size"`
	Count int      `schema:"count"`
}

func TestParserParse(t *testing.T) {
	// Arrange
	_, f := newSizeField(t, true)
	p := form.NewParser()
	require.Nil(t, p.Register("size", f))

	var out garmentForm
	values := url.Values{
		"name":   {"Shirt"},
		"size":   {"m"},
		"alts":   {"s", "l"},
		"count":  {"2"},
		"ignore": {"me"},
	}

	// Act
	err := p.Parse(values, &out)

	// Assert
	require.Nil(t, err)
	require.Equal(t, garmentForm{Name: "Shirt", Size: "m", Alts: []string{"s", "l"}, Count: 2}, out)

	// Arrange
	out = garmentForm{}
	values = url.Values{
		"name": {"Shirt"},
		"size": {"xxl"},
		"alts": {"s", "huge"},
	}

	// Act
	err = p.Parse(values, &out)

	// Assert
	require.ErrorIs(t, err, enumfield.ErrNotValid)
	var verrs form.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	allowed := []string{"s", "m", "l"}
	require.Equal(t, form.ValidationErrors{
		{Field: "size", Got: "xxl", Rule: "size", Allowed: allowed},
		{Field: "alts", Got: []string{"s", "huge"}, Rule: "size", Allowed: allowed},
	}, verrs)
	require.Equal(t, `size: "xxl" fails size (one of s, m, l); alts: ["s" "huge"] fails size (one of s, m, l)`, verrs.Error())

	// Act
	sizeErr, ok := verrs.For("size")

	// Assert
	require.True(t, ok)
	require.Equal(t, "xxl", sizeErr.Got)
	_, ok = verrs.For("name")
	require.False(t, ok)

	// Arrange
	out = garmentForm{}
	values = url.Values{"name": {"Shirt"}}

	// Act
	err = p.Parse(values, &out)

	// Assert
	require.ErrorAs(t, err, &verrs)
	require.Equal(t, form.ValidationErrors{{Field: "size", Got: "", Rule: "required"}}, verrs)
}

func TestParserParseConversion(t *testing.T) {
	// Arrange
	_, f := newSizeField(t, false)
	p := form.NewParser()
	require.Nil(t, p.Register("size", f))

	var out garmentForm
	values := url.Values{"name": {"Shirt"}, "size": {"s"}, "count": {"two"}}

	// Act
	err := p.Parse(values, &out)

	// Assert
	var verrs form.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Equal(t, form.ValidationErrors{
		{Field: "count", Got: "two", Rule: "type=int"},
	}, verrs)

	// Act
	err = p.Parse(values, out)

	// Assert
	require.ErrorIs(t, err, enumfield.ErrUnexpected)
}

func TestParserRegister(t *testing.T) {
	// Arrange
	_, f := newSizeField(t, false)
	p := form.NewParser()

	// Act
	err := p.Register("", f)

	// Assert
	require.ErrorIs(t, err, enumfield.ErrBadConfig)
}

func TestValidationErrorsMarshalJSON(t *testing.T) {
	// Arrange
	verrs := form.ValidationErrors{
		{Field: "size", Got: "xxl", Rule: "size", Allowed: []string{"s", "m"}},
		{Field: "count", Got: "two", Rule: "type=int"},
		{Field: "size", Got: "", Rule: "required"},
	}

	// Act
	b, err := json.Marshal(verrs)

	// Assert
	require.Nil(t, err)
	require.JSONEq(t, `{
		"size": {"got": "xxl", "rule": "size", "allowed": ["s", "m"]},
		"count": {"got": "two", "rule": "type=int"}
	}`, string(b))
	require.Equal(t, `count: "two" fails type=int`, verrs[1].Error())
}
