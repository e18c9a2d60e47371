package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"

	"capsdiag/internal/cache"
	"capsdiag/internal/config"
	"capsdiag/internal/model"
	"capsdiag/internal/repository"
	"capsdiag/internal/scoring"
)

var (
	ErrUnknownQuestion = errors.New("unknown question")
	ErrInvalidAnswer   = fmt.Errorf("answer must be between 0 and %d", model.MaxAnswer)
	ErrIncomplete      = errors.New("not all questions have been answered")
)

// QuizService runs a respondent through the question set and scores the result
type QuizService struct {
	questions   []model.Question
	catalog     *config.Catalog
	sessions    cache.SessionCache
	results     repository.ResultRepo
	stats       cache.StatsCache
	authSvc     *AuthService
	broadcaster Broadcaster
}

// NewQuizService creates a new quiz service over a loaded question set
func NewQuizService(
	questions []model.Question,
	catalog *config.Catalog,
	sessions cache.SessionCache,
	results repository.ResultRepo,
	stats cache.StatsCache,
	authSvc *AuthService,
) *QuizService {
	return &QuizService{
		questions: questions,
		catalog:   catalog,
		sessions:  sessions,
		results:   results,
		stats:     stats,
		authSvc:   authSvc,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *QuizService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Questions returns the loaded questions in index order
func (s *QuizService) Questions() []model.Question {
	return s.questions
}

// Profiles returns the description of every category
func (s *QuizService) Profiles() []model.Profile {
	return s.catalog.Profiles
}

// StartSession issues a new respondent session and its token
func (s *QuizService) StartSession(ctx context.Context) (*model.SessionStartResponse, error) {
	sessionID := "s_" + uuid.New().String()
	token, err := s.authSvc.GenerateSessionToken(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &model.SessionStartResponse{
		SessionID:      sessionID,
		Token:          token,
		TotalQuestions: len(s.questions),
	}, nil
}

// Session returns the respondent's saved answers
func (s *QuizService) Session(ctx context.Context, sessionID string) (*model.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// SetAnswer records or overwrites the answer to one question
func (s *QuizService) SetAnswer(ctx context.Context, sessionID string, index, answer int) (model.Progress, error) {
	if index < 1 || index > len(s.questions) {
		return model.Progress{}, ErrUnknownQuestion
	}
	if !model.ValidAnswer(answer) {
		return model.Progress{}, ErrInvalidAnswer
	}

	if err := s.sessions.SetAnswer(ctx, sessionID, index, answer); err != nil {
		return model.Progress{}, fmt.Errorf("failed to save answer: %w", err)
	}
	return s.Progress(ctx, sessionID)
}

// Progress reports how many questions the respondent has answered
func (s *QuizService) Progress(ctx context.Context, sessionID string) (model.Progress, error) {
	session, err := s.Session(ctx, sessionID)
	if err != nil {
		return model.Progress{}, err
	}
	return model.NewProgress(s.answered(session), len(s.questions)), nil
}

// Result scores a complete session. The first result after each reset is
// stored and counted in the type distribution.
func (s *QuizService) Result(ctx context.Context, sessionID string, detail bool) (*model.ResultView, error) {
	session, err := s.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !model.NewProgress(s.answered(session), len(s.questions)).Complete {
		return nil, ErrIncomplete
	}

	totals := scoring.Tally(s.questions, session.Answers)
	dominant := totals.Dominant()

	view := &model.ResultView{
		Totals:   totals,
		Dominant: dominant,
		Profiles: s.catalog.ProfilesFor(dominant),
	}
	if detail {
		view.Breakdown = scoring.Breakdown(s.questions, session.Answers)
	}

	s.record(ctx, session, totals, dominant)
	return view, nil
}

// Reset clears every answer of the session
func (s *QuizService) Reset(ctx context.Context, sessionID string) error {
	if err := s.sessions.Reset(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to reset session: %w", err)
	}
	return nil
}

func (s *QuizService) answered(session *model.Session) int {
	n := 0
	for _, q := range s.questions {
		if _, ok := session.Answers[q.Index]; ok {
			n++
		}
	}
	return n
}

// record stores a finished diagnosis once. Failures are logged; the
// respondent still gets their result and a later request retries the store.
func (s *QuizService) record(ctx context.Context, session *model.Session, totals model.ScoreVector, dominant []model.Category) {
	first, err := s.sessions.MarkRecorded(ctx, session.ID)
	if err != nil {
		log.Printf("Failed to mark session %s recorded: %v", session.ID, err)
		return
	}
	if !first {
		return
	}

	answers := make(map[string]int, len(session.Answers))
	for index, a := range session.Answers {
		answers[strconv.Itoa(index)] = a
	}
	result := &model.Result{
		SessionID: session.ID,
		Totals:    totals,
		Dominant:  dominant,
		Answers:   answers,
		CreatedAt: time.Now(),
	}

	if _, err := s.results.Create(ctx, result); err != nil {
		log.Printf("Failed to store result for session %s: %v", session.ID, err)
		// Clear the flag so the next result request stores it
		if err := s.sessions.UnmarkRecorded(ctx, session.ID); err != nil {
			log.Printf("Failed to unmark session %s: %v", session.ID, err)
		}
		return
	}
	if err := s.stats.IncrDominant(ctx, dominant); err != nil {
		log.Printf("Failed to update type distribution: %v", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToAdmins(MsgResultRecorded, result)
	}
}
