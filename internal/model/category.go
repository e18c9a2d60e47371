package model

// Category is one of the four CAPS type accumulators
type Category string

const (
	CategoryController Category = "a"
	CategoryAnalyzer   Category = "b"
	CategoryPromoter   Category = "c"
	CategorySupporter  Category = "d"
)

// Categories lists every category in display order
var Categories = []Category{
	CategoryController,
	CategoryAnalyzer,
	CategoryPromoter,
	CategorySupporter,
}

// Valid reports whether c is one of the four known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryController, CategoryAnalyzer, CategoryPromoter, CategorySupporter:
		return true
	}
	return false
}

// Profile is the descriptive text shown for a category on the result page
type Profile struct {
	Category  Category `json:"category" yaml:"category"`
	Name      string   `json:"name" yaml:"name"`
	Label     string   `json:"label" yaml:"label"`
	Traits    []string `json:"traits" yaml:"traits"`
	Strengths []string `json:"strengths" yaml:"strengths"`
	Cautions  []string `json:"cautions" yaml:"cautions"`
	Roles     []string `json:"roles" yaml:"roles"`
}
