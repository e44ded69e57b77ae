package repository

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// DefaultMaxEntries applies when NewMemoryCache is given no positive bound.
const DefaultMaxEntries = 10_000

const minSweepInterval = time.Second

type memoryEntry struct {
	key       string
	value     string
	expiresAt time.Time
}

// MemoryCache is an in-process CacheRepository used when no Redis address is
// configured, and in tests. A zero ttl keeps entries until they are evicted.
// Entries are kept in write order, which with a fixed ttl is also expiry
// order: sweeps stop at the first live entry and eviction drops the oldest.
type MemoryCache struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	order      *list.List
	data       map[string]*list.Element
	now        func() time.Time
	stopSweep  chan struct{}
	stopOnce   sync.Once
}

func NewMemoryCache(ttl time.Duration, maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	m := &MemoryCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		order:      list.New(),
		data:       make(map[string]*list.Element),
		now:        time.Now,
		stopSweep:  make(chan struct{}),
	}
	if ttl > 0 {
		go m.sweepLoop(max(ttl/2, minSweepInterval))
	}
	return m
}

func (m *MemoryCache) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep()
		case <-m.stopSweep:
			return
		}
	}
}

// sweep drops every expired entry.
func (m *MemoryCache) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked(m.now())
}

func (m *MemoryCache) sweepLocked(now time.Time) {
	for el := m.order.Front(); el != nil; el = m.order.Front() {
		if !m.expired(el.Value.(*memoryEntry), now) {
			return
		}
		m.removeLocked(el)
	}
}

// Stop ends the background sweep. It is safe to call more than once.
func (m *MemoryCache) Stop() {
	m.stopOnce.Do(func() { close(m.stopSweep) })
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.data[key]
	if !ok {
		return "", false
	}
	entry := el.Value.(*memoryEntry)
	if m.expired(entry, m.now()) {
		m.removeLocked(el)
		return "", false
	}
	return entry.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	entry := &memoryEntry{key: key, value: value}
	if m.ttl > 0 {
		entry.expiresAt = now.Add(m.ttl)
	}

	if el, ok := m.data[key]; ok {
		el.Value = entry
		m.order.MoveToBack(el)
		return nil
	}

	if len(m.data) >= m.maxEntries {
		m.sweepLocked(now)
	}
	for len(m.data) >= m.maxEntries {
		m.removeLocked(m.order.Front())
	}

	m.data[key] = m.order.PushBack(entry)
	return nil
}

func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

func (m *MemoryCache) expired(entry *memoryEntry, now time.Time) bool {
	return !entry.expiresAt.IsZero() && now.After(entry.expiresAt)
}

func (m *MemoryCache) removeLocked(el *list.Element) {
	delete(m.data, el.Value.(*memoryEntry).key)
	m.order.Remove(el)
}
