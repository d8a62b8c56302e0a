package chatquota

import (
	"context"
	"time"
)

const anonymousClient = "anonymous"

type counter interface {
	Incr(ctx context.Context, clientID, month string) (int64, error)
	Used(ctx context.Context, clientID, month string) (int64, error)
}

// Service enforces the monthly remote chat allowance per client.
type Service struct {
	store counter
	limit int64
	now   func() time.Time
}

// NewService creates a Service backed by the given Store. A non-positive
// limit uses DefaultLimit.
func NewService(store *Store, limit int) *Service {
	return newService(store, limit)
}

func newService(store counter, limit int) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{store: store, limit: int64(limit), now: time.Now}
}

func (s *Service) month() string {
	return s.now().UTC().Format("2006-01")
}

// UseToken consumes one remote call for clientID.
// Returns ErrQuotaExceeded once the month's allowance is spent.
func (s *Service) UseToken(ctx context.Context, clientID string) error {
	n, err := s.store.Incr(ctx, clientID, s.month())
	if err != nil {
		return err
	}
	if n > s.limit {
		return ErrQuotaExceeded
	}
	return nil
}

// Limit is the monthly allowance per client.
func (s *Service) Limit() int {
	return int(s.limit)
}

// Remaining reports how many remote calls clientID has left this month.
func (s *Service) Remaining(ctx context.Context, clientID string) (int, error) {
	if clientID == "" {
		clientID = anonymousClient
	}
	used, err := s.store.Used(ctx, clientID, s.month())
	if err != nil {
		return 0, err
	}
	if used >= s.limit {
		return 0, nil
	}
	return int(s.limit - used), nil
}

// Allow adapts UseToken to the chat chain's gate. Anonymous callers share
// the "anonymous" bucket.
func (s *Service) Allow(ctx context.Context, clientID string) (bool, error) {
	if clientID == "" {
		clientID = anonymousClient
	}
	err := s.UseToken(ctx, clientID)
	switch {
	case err == nil:
		return true, nil
	case err == ErrQuotaExceeded:
		return false, nil
	default:
		return false, err
	}
}
