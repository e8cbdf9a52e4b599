package hook

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
)

// GenerationFunc is one metered workflow run for a single user
type GenerationFunc func(ctx context.Context) (*entity.GenerationResult, error)

// UserSerializer runs workflows for the same user one at a time so that two concurrent
// requests cannot both pass the balance check on the same snapshot. Different users never
// wait on each other.
type UserSerializer struct {
	logger coreport.Logger

	mu    sync.Mutex
	slots map[string]*userSlot
}

type userSlot struct {
	turn chan struct{}
	refs int
}

// NewUserSerializer creates a new per-user serializer
func NewUserSerializer(logger coreport.Logger) *UserSerializer {
	return &UserSerializer{
		logger: logger,
		slots:  make(map[string]*userSlot),
	}
}

// Run waits for the user's turn, then runs fn. It gives up when ctx is done first.
func (s *UserSerializer) Run(ctx context.Context, userID string, fn GenerationFunc) (*entity.GenerationResult, error) {
	slot := s.acquire(userID)
	defer s.release(userID, slot)

	select {
	case slot.turn <- struct{}{}:
	case <-ctx.Done():
		s.logger.Warn("Context canceled while waiting for user turn", map[string]any{
			"userId": userID,
			"error":  ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}
	defer func() { <-slot.turn }()

	return fn(ctx)
}

// Active returns the number of users with a running or waiting workflow
func (s *UserSerializer) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slots)
}

func (s *UserSerializer) acquire(userID string) *userSlot {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[userID]
	if !ok {
		slot = &userSlot{turn: make(chan struct{}, 1)}
		s.slots[userID] = slot
	}
	slot.refs++
	return slot
}

func (s *UserSerializer) release(userID string, slot *userSlot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot.refs--
	if slot.refs == 0 {
		delete(s.slots, userID)
	}
}
