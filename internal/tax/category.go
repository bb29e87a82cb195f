package tax

// Category maps an expense to its CRA T2125 line and deductible portion.
type Category struct {
	Code           string  `json:"code"`
	Label          string  `json:"label"`
	DeductibleRate float64 `json:"deductible_rate"`
}

// OtherCategory is the fallback bucket for categories we don't recognize.
var OtherCategory = Category{Code: "9270", Label: "Other expenses", DeductibleRate: 1.0}

// craCategories keys are the category names the dashboard writes on
// transactions. Matching is case-sensitive and exact; anything else lands
// in OtherCategory. Meals carry the 50% limitation from ITA s. 67.1.
var craCategories = map[string]Category{
	"Advertising":       {Code: "8521", Label: "Advertising", DeductibleRate: 1.0},
	"Meals":             {Code: "8523", Label: "Meals and entertainment", DeductibleRate: 0.5},
	"Insurance":         {Code: "8690", Label: "Insurance", DeductibleRate: 1.0},
	"Interest":          {Code: "8710", Label: "Interest and bank charges", DeductibleRate: 1.0},
	"Office":            {Code: "8810", Label: "Office expenses", DeductibleRate: 1.0},
	"Supplies":          {Code: "8811", Label: "Supplies", DeductibleRate: 1.0},
	"Professional Fees": {Code: "8860", Label: "Legal and professional fees", DeductibleRate: 1.0},
	"Rent":              {Code: "8910", Label: "Rent", DeductibleRate: 1.0},
	"Repairs":           {Code: "8960", Label: "Repairs and maintenance", DeductibleRate: 1.0},
	"Salaries":          {Code: "9060", Label: "Salaries, wages, and benefits", DeductibleRate: 1.0},
	"Travel":            {Code: "9200", Label: "Travel expenses", DeductibleRate: 1.0},
	"Utilities":         {Code: "9220", Label: "Utilities", DeductibleRate: 1.0},
	"Vehicle":           {Code: "9281", Label: "Motor vehicle expenses", DeductibleRate: 1.0},
}

// Categorize resolves a free-text expense category to its CRA line.
// Unrecognized strings fall back to OtherCategory; no trimming or
// case-folding is applied.
func Categorize(category string) Category {
	if c, ok := craCategories[category]; ok {
		return c
	}
	return OtherCategory
}

// Categories returns a copy of the category table keyed by dashboard name.
func Categories() map[string]Category {
	out := make(map[string]Category, len(craCategories))
	for name, c := range craCategories {
		out[name] = c
	}
	return out
}
