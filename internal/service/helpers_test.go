package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"capsdiag/internal/cache"
	"capsdiag/internal/config"
	"capsdiag/internal/model"
	"capsdiag/internal/scoring"
)

type memResultRepo struct {
	mu      sync.Mutex
	results []*model.Result
	failing bool
}

func (r *memResultRepo) Create(ctx context.Context, result *model.Result) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return "", errors.New("mongo down")
	}
	result.ID = "r" + time.Now().Format("150405.000000000")
	r.results = append(r.results, result)
	return result.ID, nil
}

func (r *memResultRepo) GetByID(ctx context.Context, id string) (*model.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, res := range r.results {
		if res.ID == id {
			return res, nil
		}
	}
	return nil, nil
}

func (r *memResultRepo) ListRecent(ctx context.Context, limit int64) ([]*model.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]*model.Result(nil), r.results...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

type recordingBroadcaster struct {
	mu       sync.Mutex
	messages []string
}

func (b *recordingBroadcaster) BroadcastToAdmins(msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = append(b.messages, msgType)
}

type fixture struct {
	quiz        *QuizService
	report      *ReportService
	auth        *AuthService
	results     *memResultRepo
	stats       cache.StatsCache
	broadcaster *recordingBroadcaster
}

const testQuestions = "q1\tdirect-to-A\nq2\tdouble-to-B\nq3\tinverse-to-D\n"

func newFixture(t *testing.T) *fixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	questions, err := scoring.Parse(stringsReader(testQuestions))
	require.NoError(t, err)
	catalog, err := config.DefaultCatalog()
	require.NoError(t, err)

	auth := NewAuthService("admin", "secret", "test-secret", time.Hour)
	results := &memResultRepo{}
	stats := cache.NewStatsCache(client)
	quiz := NewQuizService(questions, catalog, cache.NewSessionCache(client, time.Hour), results, stats, auth)
	b := &recordingBroadcaster{}
	quiz.SetBroadcaster(b)

	return &fixture{
		quiz:        quiz,
		report:      NewReportService(results, stats),
		auth:        auth,
		results:     results,
		stats:       stats,
		broadcaster: b,
	}
}
