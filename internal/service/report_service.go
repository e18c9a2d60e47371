package service

import (
	"context"
	"fmt"

	"capsdiag/internal/cache"
	"capsdiag/internal/model"
	"capsdiag/internal/repository"
)

const (
	defaultResultLimit = 50
	maxResultLimit     = 500
)

// ReportService serves admin views over stored diagnoses
type ReportService struct {
	results repository.ResultRepo
	stats   cache.StatsCache
}

// NewReportService creates a new report service
func NewReportService(results repository.ResultRepo, stats cache.StatsCache) *ReportService {
	return &ReportService{
		results: results,
		stats:   stats,
	}
}

// RecentResults lists the newest stored diagnoses. Non-positive limits use
// the default and large ones are capped.
func (s *ReportService) RecentResults(ctx context.Context, limit int) ([]*model.Result, error) {
	if limit <= 0 {
		limit = defaultResultLimit
	}
	if limit > maxResultLimit {
		limit = maxResultLimit
	}

	results, err := s.results.ListRecent(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return results, nil
}

// Result returns one stored diagnosis, or nil if there is none with that ID
func (s *ReportService) Result(ctx context.Context, id string) (*model.Result, error) {
	result, err := s.results.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get result: %w", err)
	}
	return result, nil
}

// Distribution returns how often each type was dominant
func (s *ReportService) Distribution(ctx context.Context) ([]model.TypeCount, error) {
	counts, err := s.stats.Distribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get distribution: %w", err)
	}
	return counts, nil
}
