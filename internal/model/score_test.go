package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDominantKeepsTies(t *testing.T) {
	v := ScoreVector{A: 5, B: 5, C: 2, D: 1}
	assert.Equal(t, []Category{CategoryController, CategoryAnalyzer}, v.Dominant())
}

func TestDominantSingle(t *testing.T) {
	v := ScoreVector{A: 1, B: 0, C: 9, D: 4}
	assert.Equal(t, []Category{CategoryPromoter}, v.Dominant())
}

func TestGetAndAdd(t *testing.T) {
	v := ScoreVector{A: 1, B: 2}.Add(ScoreVector{B: 1, D: 4})
	assert.Equal(t, 1, v.Get(CategoryController))
	assert.Equal(t, 3, v.Get(CategoryAnalyzer))
	assert.Equal(t, 0, v.Get(CategoryPromoter))
	assert.Equal(t, 4, v.Get(CategorySupporter))
	assert.Equal(t, 0, v.Get(Category("x")))
}

func TestNewProgress(t *testing.T) {
	assert.Equal(t, Progress{Answered: 2, Total: 5, Remaining: 3}, NewProgress(2, 5))
	assert.True(t, NewProgress(5, 5).Complete)
	assert.False(t, NewProgress(0, 0).Complete)
}

func TestRuleKindApplyUnknown(t *testing.T) {
	assert.True(t, RuleUnknown.Apply(3).IsZero())
	assert.Equal(t, ScoreVector{D: 3}, RuleInverseD.Apply(0))
}
