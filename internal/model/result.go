package model

import "time"

// Result is a completed diagnosis
type Result struct {
	ID        string         `json:"id" bson:"_id,omitempty"`
	SessionID string         `json:"sessionId" bson:"sessionId"`
	Totals    ScoreVector    `json:"totals" bson:"totals"`
	Dominant  []Category     `json:"dominant" bson:"dominant"`
	Answers   map[string]int `json:"answers" bson:"answers"` // question index -> answer
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

// BreakdownRow is the per-question scoring detail
type BreakdownRow struct {
	Index  int         `json:"index"`
	Answer int         `json:"answer"`
	Rule   string      `json:"rule"`
	Kind   string      `json:"kind"`
	Delta  ScoreVector `json:"delta"`
}

// ResultView is what the presentation layer renders
type ResultView struct {
	Totals    ScoreVector    `json:"totals"`
	Dominant  []Category     `json:"dominant"`
	Profiles  []Profile      `json:"profiles"` // dominant profiles, same order as Dominant
	Breakdown []BreakdownRow `json:"breakdown,omitempty"`
}

// TypeCount is one entry of the dominant-type distribution
type TypeCount struct {
	Category Category `json:"category"`
	Count    int64    `json:"count"`
}
