package ttlcache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	isync "github.com/imtaco/showroom-live/internal/sync"
)

type entry[V any] struct {
	value     V
	createdAt time.Time
	ttl       time.Duration
}

func (e *entry[V]) expired(now time.Time) bool {
	return !now.Before(e.createdAt.Add(e.ttl))
}

type store[V any] interface {
	get(key string) (*entry[V], bool)
	put(key string, e *entry[V])
	remove(key string)
	purge(now time.Time) int
	len() int
}

type mapStore[V any] struct {
	m *isync.Map[string, *entry[V]]
}

func newMapStore[V any]() *mapStore[V] {
	return &mapStore[V]{m: isync.NewMap[string, *entry[V]]()}
}

func (s *mapStore[V]) get(key string) (*entry[V], bool) { return s.m.Load(key) }
func (s *mapStore[V]) put(key string, e *entry[V])      { s.m.Store(key, e) }
func (s *mapStore[V]) remove(key string)                { s.m.Delete(key) }
func (s *mapStore[V]) len() int                         { return s.m.Len() }

func (s *mapStore[V]) purge(now time.Time) int {
	return s.m.DeleteFunc(func(_ string, e *entry[V]) bool {
		return e.expired(now)
	})
}

type lruStore[V any] struct {
	c *lru.Cache[string, *entry[V]]
}

func newLRUStore[V any](size int) (*lruStore[V], error) {
	c, err := lru.New[string, *entry[V]](size)
	if err != nil {
		return nil, err
	}
	return &lruStore[V]{c: c}, nil
}

func (s *lruStore[V]) get(key string) (*entry[V], bool) { return s.c.Get(key) }
func (s *lruStore[V]) put(key string, e *entry[V])      { s.c.Add(key, e) }
func (s *lruStore[V]) remove(key string)                { s.c.Remove(key) }
func (s *lruStore[V]) len() int                         { return s.c.Len() }

func (s *lruStore[V]) purge(now time.Time) int {
	n := 0
	for _, key := range s.c.Keys() {
		if e, ok := s.c.Peek(key); ok && e.expired(now) {
			s.c.Remove(key)
			n++
		}
	}
	return n
}
