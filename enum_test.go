package enumfield_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/enumfield"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		name  string
		pairs []enumfield.Pair
	}{
		{"Empty", nil},
		{"Empty-Value", []enumfield.Pair{{Value: "", Name: "NONE"}}},
		{"Empty-Name", []enumfield.Pair{{Value: "a", Name: ""}}},
		{"Dup-Value", []enumfield.Pair{{Value: "a", Name: "A"}, {Value: "a", Name: "B"}}},
		{"Dup-Name", []enumfield.Pair{{Value: "a", Name: "A"}, {Value: "b", Name: "A"}}},
		{"Unit-Separator", []enumfield.Pair{{Value: "a\x1fb", Name: "AB"}, {Value: "a", Name: "A"}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			e, err := enumfield.New(tc.pairs...)

			// Assert
			require.Nil(t, e)
			require.ErrorIs(t, err, enumfield.ErrBadConfig)
		})
	}

	require.Panics(t, func() { enumfield.MustNew() })
}

func TestEnumLookups(t *testing.T) {
	// Arrange
	e := newClothingSizes()

	// Act
	small, ok := e.Item("SMALL")

	// Assert
	require.True(t, ok)
	require.Equal(t, "s", small.String())
	require.Equal(t, small, e.MustItem("SMALL"))
	require.Nil(t, small.Valid())

	// Act
	byValue, ok := e.ByValue("s")

	// Assert
	require.True(t, ok)
	require.Equal(t, small, byValue)

	// Act
	_, ok = e.Item("HUGE")

	// Assert
	require.False(t, ok)
	require.Panics(t, func() { e.MustItem("HUGE") })

	// Act
	_, ok = e.ByValue("SMALL")

	// Assert
	require.False(t, ok)

	// Assert
	require.Equal(t, 6, e.Len())
	require.Equal(t, []string{"xs", "s", "m", "l", "xl", "xxl"}, e.Values())
	require.Len(t, e.Items(), 6)
	require.Equal(t, small, e.Items()[1])
	require.Equal(t, enumfield.Pair{Value: "xxl", Name: "EXTRA_EXTRA_LARGE"}, e.Pairs()[5])
	require.Len(t, e.ItemsByValue(), 6)
	require.Equal(t, small, e.ItemsByValue()["s"])
}

func TestItemEquality(t *testing.T) {
	// Arrange
	e := newClothingSizes()
	other := newClothingSizes()
	smaller := enumfield.MustNew(enumfield.Pair{Value: "s", Name: "SMALL"})

	// Assert
	require.Equal(t, e.MustItem("SMALL"), other.MustItem("SMALL"))
	require.True(t, e.Contains(other.MustItem("SMALL")))
	require.NotEqual(t, e.MustItem("SMALL"), smaller.MustItem("SMALL"))
	require.False(t, e.Contains(smaller.MustItem("SMALL")))
	require.Equal(t, e.MustItem("SMALL"), enumfield.NewItem("s", e.Values()))
	require.Equal(t, e.Values(), e.MustItem("SMALL").EnumValues())
}

func TestItemValid(t *testing.T) {
	// Arrange
	orphan := enumfield.NewItem("baby", []string{"teen", "adult"})

	// Act
	err := orphan.Valid()

	// Assert
	require.ErrorIs(t, err, enumfield.ErrNotValid)
	require.ErrorIs(t, enumfield.Item{}.Valid(), enumfield.ErrNotValid)
	require.True(t, enumfield.Item{}.IsZero())
	require.Nil(t, enumfield.Item{}.EnumValues())
}

func TestEnumSetUILabels(t *testing.T) {
	// Arrange
	e := newClothingSizes()

	// Assert
	require.False(t, e.HasUILabels())
	require.Nil(t, e.UILabels())

	// Act
	err := e.SetUILabels(clothingSizeLabels(e))

	// Assert
	require.Nil(t, err)
	require.True(t, e.HasUILabels())
	require.Equal(t, []enumfield.Choice{
		{Value: "xs", Label: "Extra small"},
		{Value: "s", Label: "Small"},
		{Value: "m", Label: "Medium"},
		{Value: "l", Label: "Large"},
		{Value: "xl", Label: "Extra large"},
		{Value: "xxl", Label: "Extra extra large"},
	}, e.UILabels())

	// Arrange
	orphan := enumfield.NewItem("baby", []string{"baby", "adult"})
	bad := map[enumfield.Item]string{
		orphan:                    "Baby",
		e.MustItem("EXTRA_SMALL"): "",
	}

	// Act
	err = e.SetUILabels(bad)

	// Assert
	require.ErrorIs(t, err, enumfield.ErrBadConfig)
	require.Contains(t, err.Error(), "2 errors occurred")
	require.Len(t, e.UILabels(), 6)
}

func TestEnumSetUILabelsErrorOrder(t *testing.T) {
	// Arrange
	e := newClothingSizes()
	zed := enumfield.NewItem("zed", []string{"zed"})
	baby := enumfield.NewItem("baby", []string{"baby"})
	bad := map[enumfield.Item]string{
		zed:                       "Zed",
		e.MustItem("LARGE"):       "",
		baby:                      "Baby",
		e.MustItem("EXTRA_SMALL"): "",
	}

	for i := 0; i < 10; i++ {
		// Act
		err := e.SetUILabels(bad)

		// Assert
		require.ErrorIs(t, err, enumfield.ErrBadConfig)
		msg := err.Error()
		xs := strings.Index(msg, `<EnumItem "xs"`)
		l := strings.Index(msg, `<EnumItem "l"`)
		b := strings.Index(msg, `<EnumItem "baby"`)
		z := strings.Index(msg, `<EnumItem "zed"`)
		require.True(t, xs >= 0 && xs < l && l < b && b < z, msg)
	}
}

func TestEnumPartialUILabels(t *testing.T) {
	// Arrange
	e := newClothingSizes()

	// Act
	err := e.SetUILabels(map[enumfield.Item]string{
		e.MustItem("LARGE"): "Large",
		e.MustItem("SMALL"): "Small",
	})

	// Assert
	require.Nil(t, err)
	require.Equal(t, []enumfield.Choice{
		{Value: "s", Label: "Small"},
		{Value: "l", Label: "Large"},
	}, e.UILabels())
}
