package model

// ScoreVector holds one integer total per category
type ScoreVector struct {
	A int `json:"a" bson:"a"`
	B int `json:"b" bson:"b"`
	C int `json:"c" bson:"c"`
	D int `json:"d" bson:"d"`
}

// Get returns the total for a category; unknown categories read as zero
func (v ScoreVector) Get(c Category) int {
	switch c {
	case CategoryController:
		return v.A
	case CategoryAnalyzer:
		return v.B
	case CategoryPromoter:
		return v.C
	case CategorySupporter:
		return v.D
	}
	return 0
}

// Add returns the elementwise sum of v and o
func (v ScoreVector) Add(o ScoreVector) ScoreVector {
	return ScoreVector{
		A: v.A + o.A,
		B: v.B + o.B,
		C: v.C + o.C,
		D: v.D + o.D,
	}
}

// IsZero reports whether every category is zero
func (v ScoreVector) IsZero() bool {
	return v == ScoreVector{}
}

// Dominant returns every category whose total equals the maximum, in category order.
// Ties are kept.
func (v ScoreVector) Dominant() []Category {
	max := v.Get(Categories[0])
	for _, c := range Categories[1:] {
		if t := v.Get(c); t > max {
			max = t
		}
	}

	dominant := make([]Category, 0, len(Categories))
	for _, c := range Categories {
		if v.Get(c) == max {
			dominant = append(dominant, c)
		}
	}
	return dominant
}
