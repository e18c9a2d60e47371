package model

import "time"

// Session is a respondent's answer state, keyed by question index
type Session struct {
	ID        string      `json:"id"`
	Answers   map[int]int `json:"answers"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Progress summarizes how far a respondent has got
type Progress struct {
	Answered  int  `json:"answered"`
	Total     int  `json:"total"`
	Remaining int  `json:"remaining"`
	Complete  bool `json:"complete"`
}

// NewProgress builds a Progress from answered/total counts
func NewProgress(answered, total int) Progress {
	remaining := total - answered
	if remaining < 0 {
		remaining = 0
	}
	return Progress{
		Answered:  answered,
		Total:     total,
		Remaining: remaining,
		Complete:  total > 0 && remaining == 0,
	}
}

// SessionStartResponse is returned when a respondent starts a diagnosis
type SessionStartResponse struct {
	SessionID      string `json:"sessionId"`
	Token          string `json:"token"`
	TotalQuestions int    `json:"totalQuestions"`
}
