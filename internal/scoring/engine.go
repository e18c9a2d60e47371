package scoring

import "capsdiag/internal/model"

// Pair is one answer together with the rule text of its question
type Pair struct {
	Answer int
	Rule   string
}

// Score returns the category delta for one answer under the given rule text.
// Unrecognized rules score zero everywhere.
func Score(answer int, rule string) model.ScoreVector {
	return Classify(rule).Apply(answer)
}

// Aggregate sums Score over all pairs and returns the totals together with
// every category sharing the maximum total.
func Aggregate(pairs []Pair) (model.ScoreVector, []model.Category) {
	var totals model.ScoreVector
	for _, p := range pairs {
		totals = totals.Add(Score(p.Answer, p.Rule))
	}
	return totals, totals.Dominant()
}

// Tally scores pre-classified questions against answers keyed by question
// index. Questions without an answer are skipped.
func Tally(questions []model.Question, answers map[int]int) model.ScoreVector {
	var totals model.ScoreVector
	for _, q := range questions {
		a, ok := answers[q.Index]
		if !ok {
			continue
		}
		totals = totals.Add(q.Kind.Apply(a))
	}
	return totals
}

// Breakdown lists the delta each answered question contributed
func Breakdown(questions []model.Question, answers map[int]int) []model.BreakdownRow {
	rows := make([]model.BreakdownRow, 0, len(questions))
	for _, q := range questions {
		a, ok := answers[q.Index]
		if !ok {
			continue
		}
		rows = append(rows, model.BreakdownRow{
			Index:  q.Index,
			Answer: a,
			Rule:   q.Rule,
			Kind:   q.Kind.String(),
			Delta:  q.Kind.Apply(a),
		})
	}
	return rows
}
