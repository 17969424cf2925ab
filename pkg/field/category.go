package field

// Category is the closed set of renderer categories a type id resolves to.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryAddress
	CategoryRank
	CategoryLayout
	CategoryText
	CategoryNumber
	CategorySelect
	CategoryDate
	CategoryCheckbox
	CategoryFile
	CategoryLink
	CategoryLookup
	CategoryRollup
	CategoryFormula
	CategoryRepeater
	CategoryGroup
	CategoryRecommendation
)

// Categories lists every known category in dispatch priority order.
var Categories = []Category{
	CategoryAddress,
	CategoryRank,
	CategoryLayout,
	CategoryText,
	CategoryNumber,
	CategorySelect,
	CategoryDate,
	CategoryCheckbox,
	CategoryFile,
	CategoryLink,
	CategoryLookup,
	CategoryRollup,
	CategoryFormula,
	CategoryRepeater,
	CategoryGroup,
	CategoryRecommendation,
}

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryAddress:
		return "address"
	case CategoryRank:
		return "rank"
	case CategoryLayout:
		return "layout"
	case CategoryText:
		return "text"
	case CategoryNumber:
		return "number"
	case CategorySelect:
		return "select"
	case CategoryDate:
		return "date"
	case CategoryCheckbox:
		return "checkbox"
	case CategoryFile:
		return "file"
	case CategoryLink:
		return "link"
	case CategoryLookup:
		return "lookup"
	case CategoryRollup:
		return "rollup"
	case CategoryFormula:
		return "formula"
	case CategoryRepeater:
		return "repeater"
	case CategoryGroup:
		return "group"
	case CategoryRecommendation:
		return "recommendation"
	default:
		return "unknown"
	}
}

// Derived reports whether values of this category are computed elsewhere
// and must never be written by a renderer.
func (c Category) Derived() bool {
	switch c {
	case CategoryFormula, CategoryRollup, CategoryLookup:
		return true
	default:
		return false
	}
}

// Container reports whether the category holds nested child values.
func (c Category) Container() bool {
	return c == CategoryRepeater || c == CategoryGroup
}
