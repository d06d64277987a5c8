package memstore

import (
	"context"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/shelfkv/shelf/lib/store"
)

type storeImpl struct {
	strings *xsync.MapOf[string, []byte]
	sets    *xsync.MapOf[string, *xsync.MapOf[string, struct{}]]
}

// New creates a new in-memory store instance. Data lives entirely in
// process memory and is lost when the process exits.
func New() store.IStore {
	return &storeImpl{
		strings: xsync.NewMapOf[string, []byte](),
		sets:    xsync.NewMapOf[string, *xsync.MapOf[string, struct{}]](),
	}
}

// clone copies a value so callers can never alias the stored slice.
func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Ping(_ context.Context) error {
	return nil
}

func (s *storeImpl) Get(_ context.Context, key string) ([]byte, bool, error) {
	val, ok := s.strings.Load(key)
	if !ok {
		return nil, false, nil
	}
	return clone(val), true, nil
}

func (s *storeImpl) Set(_ context.Context, key string, value []byte) error {
	s.strings.Store(key, clone(value))
	return nil
}

func (s *storeImpl) MGet(_ context.Context, keys ...string) ([][]byte, error) {
	values := make([][]byte, len(keys))
	for i, key := range keys {
		if val, ok := s.strings.Load(key); ok {
			values[i] = clone(val)
		}
	}
	return values, nil
}

func (s *storeImpl) Delete(_ context.Context, keys ...string) (int64, error) {
	var removed int64
	for _, key := range keys {
		if _, ok := s.strings.LoadAndDelete(key); ok {
			removed++
		}
	}
	return removed, nil
}

func (s *storeImpl) SAdd(_ context.Context, key string, members ...string) error {
	set, _ := s.sets.LoadOrCompute(key, func() *xsync.MapOf[string, struct{}] {
		return xsync.NewMapOf[string, struct{}]()
	})
	for _, member := range members {
		set.Store(member, struct{}{})
	}
	return nil
}

func (s *storeImpl) SRem(_ context.Context, key string, members ...string) error {
	set, ok := s.sets.Load(key)
	if !ok {
		return nil
	}
	for _, member := range members {
		set.Delete(member)
	}
	return nil
}

func (s *storeImpl) SMembers(_ context.Context, key string) ([]string, error) {
	members := make([]string, 0)
	set, ok := s.sets.Load(key)
	if !ok {
		return members, nil
	}
	set.Range(func(member string, _ struct{}) bool {
		members = append(members, member)
		return true
	})
	return members, nil
}

func (s *storeImpl) Close() error {
	s.strings.Clear()
	s.sets.Clear()
	return nil
}
