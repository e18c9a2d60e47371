package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"capsdiag/internal/model"
)

// SessionCache stores each respondent's answers in Redis
type SessionCache interface {
	SetAnswer(ctx context.Context, sessionID string, index, answer int) error
	Get(ctx context.Context, sessionID string) (*model.Session, error)
	Reset(ctx context.Context, sessionID string) error
	// MarkRecorded returns true only the first time it is called for a
	// session since its last reset.
	MarkRecorded(ctx context.Context, sessionID string) (bool, error)
	UnmarkRecorded(ctx context.Context, sessionID string) error
}

type sessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionCache creates a new session cache
func NewSessionCache(client *redis.Client, ttl time.Duration) SessionCache {
	return &sessionCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *sessionCache) answersKey(sessionID string) string {
	return fmt.Sprintf("session:%s:answers", sessionID)
}

func (c *sessionCache) updatedKey(sessionID string) string {
	return fmt.Sprintf("session:%s:updated", sessionID)
}

func (c *sessionCache) recordedKey(sessionID string) string {
	return fmt.Sprintf("session:%s:recorded", sessionID)
}

func (c *sessionCache) SetAnswer(ctx context.Context, sessionID string, index, answer int) error {
	key := c.answersKey(sessionID)

	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, strconv.Itoa(index), answer)
	pipe.Expire(ctx, key, c.ttl)
	pipe.Set(ctx, c.updatedKey(sessionID), time.Now().UTC().Format(time.RFC3339Nano), c.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *sessionCache) Get(ctx context.Context, sessionID string) (*model.Session, error) {
	data, err := c.client.HGetAll(ctx, c.answersKey(sessionID)).Result()
	if err != nil {
		return nil, err
	}

	session := &model.Session{
		ID:      sessionID,
		Answers: make(map[int]int, len(data)),
	}
	for field, val := range data {
		index, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		answer, err := strconv.Atoi(val)
		if err != nil {
			continue
		}
		session.Answers[index] = answer
	}

	updated, err := c.client.Get(ctx, c.updatedKey(sessionID)).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	if updated != "" {
		session.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
	}
	return session, nil
}

func (c *sessionCache) Reset(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx,
		c.answersKey(sessionID),
		c.updatedKey(sessionID),
		c.recordedKey(sessionID),
	).Err()
}

func (c *sessionCache) MarkRecorded(ctx context.Context, sessionID string) (bool, error) {
	return c.client.SetNX(ctx, c.recordedKey(sessionID), 1, c.ttl).Result()
}

func (c *sessionCache) UnmarkRecorded(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, c.recordedKey(sessionID)).Err()
}
