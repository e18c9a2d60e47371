package model

// RuleKind identifies which scoring formula a question's rule text selects
type RuleKind int

const (
	RuleUnknown RuleKind = iota
	RuleInverseAToDirectD
	RuleInverseCToDirectB
	RuleInverseBToDirectC
	RuleInverseD
	RuleDoubleA
	RuleDoubleB
	RuleDoubleC
	RuleDoubleD
	RuleDirectA
	RuleDirectB
	RuleDirectC
	RuleDirectD
)

// MaxAnswer is the highest answer value; answers range over 0..MaxAnswer
const MaxAnswer = 3

var ruleKindNames = map[RuleKind]string{
	RuleUnknown:           "unknown",
	RuleInverseAToDirectD: "inverse-to-A-and-direct-to-D",
	RuleInverseCToDirectB: "inverse-to-C-and-direct-to-B",
	RuleInverseBToDirectC: "inverse-to-B-and-direct-to-C",
	RuleInverseD:          "inverse-to-D",
	RuleDoubleA:           "double-to-A",
	RuleDoubleB:           "double-to-B",
	RuleDoubleC:           "double-to-C",
	RuleDoubleD:           "double-to-D",
	RuleDirectA:           "direct-to-A",
	RuleDirectB:           "direct-to-B",
	RuleDirectC:           "direct-to-C",
	RuleDirectD:           "direct-to-D",
}

func (k RuleKind) String() string {
	if name, ok := ruleKindNames[k]; ok {
		return name
	}
	return ruleKindNames[RuleUnknown]
}

// Apply returns the per-category delta this rule yields for an answer.
// RuleUnknown yields the zero vector.
func (k RuleKind) Apply(answer int) ScoreVector {
	inverse := MaxAnswer - answer

	switch k {
	case RuleInverseAToDirectD:
		return ScoreVector{A: inverse, D: answer}
	case RuleInverseCToDirectB:
		return ScoreVector{C: inverse, B: answer}
	case RuleInverseBToDirectC:
		return ScoreVector{B: inverse, C: answer}
	case RuleInverseD:
		return ScoreVector{D: inverse}
	case RuleDoubleA:
		return ScoreVector{A: answer * 2}
	case RuleDoubleB:
		return ScoreVector{B: answer * 2}
	case RuleDoubleC:
		return ScoreVector{C: answer * 2}
	case RuleDoubleD:
		return ScoreVector{D: answer * 2}
	case RuleDirectA:
		return ScoreVector{A: answer}
	case RuleDirectB:
		return ScoreVector{B: answer}
	case RuleDirectC:
		return ScoreVector{C: answer}
	case RuleDirectD:
		return ScoreVector{D: answer}
	}
	return ScoreVector{}
}

// Question is one loaded question with its scoring rule
type Question struct {
	Index int      `json:"index"` // 1-based, load order
	Text  string   `json:"text"`
	Rule  string   `json:"rule,omitempty"`
	Kind  RuleKind `json:"-"`
}

// ValidAnswer reports whether v is an allowed answer value
func ValidAnswer(v int) bool {
	return v >= 0 && v <= MaxAnswer
}
