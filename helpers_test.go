package enumfield_test

import "github.com/xy-planning-network/enumfield"

func newClothingSizes() *enumfield.Enum {
	return enumfield.MustNew(
		enumfield.Pair{Value: "xs", Name: "EXTRA_SMALL"},
		enumfield.Pair{Value: "s", Name: "SMALL"},
		enumfield.Pair{Value: "m", Name: "MEDIUM"},
		enumfield.Pair{Value: "l", Name: "LARGE"},
		enumfield.Pair{Value: "xl", Name: "EXTRA_LARGE"},
		enumfield.Pair{Value: "xxl", Name: "EXTRA_EXTRA_LARGE"},
	)
}

func clothingSizeLabels(e *enumfield.Enum) map[enumfield.Item]string {
	return map[enumfield.Item]string{
		e.MustItem("EXTRA_SMALL"):       "Extra small",
		e.MustItem("SMALL"):             "Small",
		e.MustItem("MEDIUM"):            "Medium",
		e.MustItem("LARGE"):             "Large",
		e.MustItem("EXTRA_LARGE"):       "Extra large",
		e.MustItem("EXTRA_EXTRA_LARGE"): "Extra extra large",
	}
}
