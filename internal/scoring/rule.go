package scoring

import (
	"strings"

	"capsdiag/internal/model"
)

// rulePattern pairs a rule kind with the phrases that select it
type rulePattern struct {
	kind    model.RuleKind
	phrases []string
}

// patterns is checked in order and the first match wins, so compound and
// doubled rules must come before the plain rules they contain.
var patterns = []rulePattern{
	{model.RuleInverseAToDirectD, []string{"３から出た数を引いた数をaに足し、かつ出た数をdに足す", "inverse-to-A-and-direct-to-D"}},
	{model.RuleInverseCToDirectB, []string{"３から出た数を引いた数をcに足し、かつ出た数をbに足す", "inverse-to-C-and-direct-to-B"}},
	{model.RuleInverseBToDirectC, []string{"３から出た数を引いた数をbに足し、かつ出た数をcに足す", "inverse-to-B-and-direct-to-C"}},
	{model.RuleInverseD, []string{"３から出た数を引いた数をdに足す", "inverse-to-D"}},
	{model.RuleDoubleA, []string{"出た数を2倍してaに足す", "double-to-A"}},
	{model.RuleDoubleB, []string{"出た数を2倍してbに足す", "double-to-B"}},
	{model.RuleDoubleC, []string{"出た数を2倍してcに足す", "double-to-C"}},
	{model.RuleDoubleD, []string{"出た数を2倍してdに足す", "double-to-D"}},
	{model.RuleDirectA, []string{"出た数をaに足す", "direct-to-A"}},
	{model.RuleDirectB, []string{"出た数をbに足す", "direct-to-B"}},
	{model.RuleDirectC, []string{"出た数をcに足す", "direct-to-C"}},
	{model.RuleDirectD, []string{"出た数をdに足す", "direct-to-D"}},
}

// Classify maps rule text to the first pattern it contains.
// Text matching nothing is RuleUnknown.
func Classify(rule string) model.RuleKind {
	for _, p := range patterns {
		for _, phrase := range p.phrases {
			if strings.Contains(rule, phrase) {
				return p.kind
			}
		}
	}
	return model.RuleUnknown
}
