package editor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/2beens/coachboard/internal/coaching/program"
)

const draftKeyPrefix = "editor-draft::"

// RedisDraftStore keeps the unsaved edit buffer of a program, so that an
// editor session survives a service restart.
type RedisDraftStore struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewRedisDraftStore(ttl time.Duration, redisClient *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// Load returns nil without an error when there is no draft.
func (s *RedisDraftStore) Load(ctx context.Context, programID string) (*program.Program, error) {
	cmd := s.redisClient.Get(ctx, draftKeyPrefix+programID)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	p := &program.Program{}
	if err := json.Unmarshal([]byte(cmd.Val()), p); err != nil {
		return nil, fmt.Errorf("unmarshal draft of program [%s]: %w", programID, err)
	}
	return p, nil
}

func (s *RedisDraftStore) Store(ctx context.Context, p *program.Program) error {
	draftBytes, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal draft of program [%s]: %w", p.ID, err)
	}
	return s.redisClient.Set(ctx, draftKeyPrefix+p.ID, string(draftBytes), s.ttl).Err()
}

func (s *RedisDraftStore) Delete(ctx context.Context, programID string) error {
	return s.redisClient.Del(ctx, draftKeyPrefix+programID).Err()
}
