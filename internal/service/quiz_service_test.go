package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capsdiag/internal/model"
)

func stringsReader(s string) io.Reader {
	return strings.NewReader(s)
}

func answerAll(t *testing.T, f *fixture, sessionID string, answers ...int) {
	t.Helper()
	for i, a := range answers {
		_, err := f.quiz.SetAnswer(context.Background(), sessionID, i+1, a)
		require.NoError(t, err)
	}
}

func TestStartSession(t *testing.T) {
	f := newFixture(t)

	resp, err := f.quiz.StartSession(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, 3, resp.TotalQuestions)

	claims, err := f.auth.ValidateSessionToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.SessionID, claims.SessionID)
}

func TestSetAnswerValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.quiz.SetAnswer(ctx, "s1", 0, 1)
	assert.ErrorIs(t, err, ErrUnknownQuestion)
	_, err = f.quiz.SetAnswer(ctx, "s1", 4, 1)
	assert.ErrorIs(t, err, ErrUnknownQuestion)
	_, err = f.quiz.SetAnswer(ctx, "s1", 1, 4)
	assert.ErrorIs(t, err, ErrInvalidAnswer)
	_, err = f.quiz.SetAnswer(ctx, "s1", 1, -1)
	assert.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestProgressAndOverwrite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.quiz.SetAnswer(ctx, "s1", 2, 1)
	require.NoError(t, err)
	assert.Equal(t, model.NewProgress(1, 3), p)

	p, err = f.quiz.SetAnswer(ctx, "s1", 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Answered)

	session, err := f.quiz.Session(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, map[int]int{2: 3}, session.Answers)
}

func TestResultIncomplete(t *testing.T) {
	f := newFixture(t)
	answerAll(t, f, "s1", 3, 1)

	_, err := f.quiz.Result(context.Background(), "s1", false)
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestResultScoresAndRecordsOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	answerAll(t, f, "s1", 3, 1, 0)

	view, err := f.quiz.Result(ctx, "s1", false)
	require.NoError(t, err)
	assert.Equal(t, model.ScoreVector{A: 3, B: 2, C: 0, D: 3}, view.Totals)
	assert.Equal(t, []model.Category{model.CategoryController, model.CategorySupporter}, view.Dominant)
	require.Len(t, view.Profiles, 2)
	assert.Equal(t, "コントローラー", view.Profiles[0].Name)
	assert.Empty(t, view.Breakdown)

	detailed, err := f.quiz.Result(ctx, "s1", true)
	require.NoError(t, err)
	assert.Len(t, detailed.Breakdown, 3)

	assert.Len(t, f.results.results, 1)
	assert.Equal(t, []string{MsgResultRecorded}, f.broadcaster.messages)
	assert.Equal(t, map[string]int{"1": 3, "2": 1, "3": 0}, f.results.results[0].Answers)

	counts, err := f.report.Distribution(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), countFor(counts, model.CategoryController))
	assert.Equal(t, int64(1), countFor(counts, model.CategorySupporter))
	assert.Equal(t, int64(0), countFor(counts, model.CategoryAnalyzer))
}

func TestResetAllowsRetake(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	answerAll(t, f, "s1", 3, 1, 0)
	_, err := f.quiz.Result(ctx, "s1", false)
	require.NoError(t, err)

	require.NoError(t, f.quiz.Reset(ctx, "s1"))
	p, err := f.quiz.Progress(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Answered)
	assert.False(t, p.Complete)

	answerAll(t, f, "s1", 0, 3, 3)
	view, err := f.quiz.Result(ctx, "s1", false)
	require.NoError(t, err)
	assert.Equal(t, []model.Category{model.CategoryAnalyzer}, view.Dominant)
	assert.Len(t, f.results.results, 2)
}

func TestResultStillReturnedWhenStoreFails(t *testing.T) {
	f := newFixture(t)
	f.results.failing = true
	answerAll(t, f, "s1", 1, 1, 1)

	view, err := f.quiz.Result(context.Background(), "s1", false)
	require.NoError(t, err)
	assert.Equal(t, model.ScoreVector{A: 1, B: 2, D: 2}, view.Totals)
	assert.Empty(t, f.broadcaster.messages)
}

func TestResultStoredAfterStoreRecovers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.results.failing = true
	answerAll(t, f, "s1", 3, 1, 0)

	_, err := f.quiz.Result(ctx, "s1", false)
	require.NoError(t, err)
	assert.Empty(t, f.results.results)

	f.results.failing = false
	_, err = f.quiz.Result(ctx, "s1", false)
	require.NoError(t, err)
	require.Len(t, f.results.results, 1)
	assert.Equal(t, []string{MsgResultRecorded}, f.broadcaster.messages)

	counts, err := f.report.Distribution(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), countFor(counts, model.CategoryController))

	_, err = f.quiz.Result(ctx, "s1", false)
	require.NoError(t, err)
	assert.Len(t, f.results.results, 1)
}

func countFor(counts []model.TypeCount, c model.Category) int64 {
	for _, tc := range counts {
		if tc.Category == c {
			return tc.Count
		}
	}
	return -1
}
