package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"capsdiag/internal/model"
)

func TestClassifyFirstMatchWins(t *testing.T) {
	// The compound rule also contains the plain "direct to d" phrase.
	assert.Equal(t, model.RuleInverseAToDirectD, Classify("３から出た数を引いた数をaに足し、かつ出た数をdに足す"))
	assert.Equal(t, model.RuleDoubleA, Classify("出た数を2倍してaに足す"))
	assert.Equal(t, model.RuleDirectA, Classify("出た数をaに足す"))
}

func TestClassifyEmbeddedInSentence(t *testing.T) {
	assert.Equal(t, model.RuleInverseD, Classify("この質問では３から出た数を引いた数をdに足すこと。"))
	assert.Equal(t, model.RuleDirectC, Classify("score: direct-to-C"))
}

func TestClassifyUnknown(t *testing.T) {
	assert.Equal(t, model.RuleUnknown, Classify("do nothing"))
	assert.Equal(t, model.RuleUnknown, Classify(""))
	assert.Equal(t, "unknown", Classify("do nothing").String())
}

func TestEveryPatternHasAName(t *testing.T) {
	for _, p := range patterns {
		assert.NotEqual(t, "unknown", p.kind.String())
		for _, phrase := range p.phrases {
			assert.Equal(t, p.kind, Classify(phrase), phrase)
		}
	}
}
