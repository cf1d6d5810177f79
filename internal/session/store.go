package session

import (
	"context"
	"sync"

	"github.com/mohiniBalmiki/taxwise-web/internal/model"
	appErr "github.com/mohiniBalmiki/taxwise-web/internal/pkg/errors"
	"github.com/mohiniBalmiki/taxwise-web/internal/pkg/timeutil"
)

// Store is the persistence slot for backend-issued session payloads. The
// verification flow only writes; reads happen when the browser comes back
// with a handoff cookie. An expired entry behaves as absent.
type Store interface {
	Set(ctx context.Context, sess *model.Session) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now int64) (int64, error)
}

type memoryStore struct {
	mu    sync.Mutex
	items map[string]model.Session
}

func NewMemoryStore() Store {
	return &memoryStore{items: make(map[string]model.Session)}
}

func (s *memoryStore) Set(ctx context.Context, sess *model.Session) error {
	if sess == nil || sess.ID == "" {
		return appErr.ErrInvalid
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[sess.ID] = *sess
	return nil
}

func (s *memoryStore) Get(ctx context.Context, id string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, appErr.ErrNotFound
	}
	if item.ExpiresAt > 0 && item.ExpiresAt <= timeutil.NowUnix() {
		delete(s.items, id)
		return nil, appErr.ErrNotFound
	}
	copied := item
	return &copied, nil
}

func (s *memoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return appErr.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *memoryStore) DeleteExpired(ctx context.Context, now int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for id, item := range s.items {
		if item.ExpiresAt > 0 && item.ExpiresAt <= now {
			delete(s.items, id)
			removed++
		}
	}
	return removed, nil
}
