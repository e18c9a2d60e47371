package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capsdiag/internal/model"
)

func TestRecentResultsLimit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 3; i++ {
		_, err := f.results.Create(ctx, &model.Result{
			SessionID: "s",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	results, err := f.report.RecentResults(ctx, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].CreatedAt.After(results[1].CreatedAt))

	all, err := f.report.RecentResults(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestResultByID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.results.Create(ctx, &model.Result{SessionID: "s1"})
	require.NoError(t, err)

	got, err := f.report.Result(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "s1", got.SessionID)

	missing, err := f.report.Result(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
