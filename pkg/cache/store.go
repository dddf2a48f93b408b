// Package cache keeps rendered chart bytes in memory with LRU eviction.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// StoreConfig holds configuration for a cache Store.
type StoreConfig struct {
	// MaxEntries bounds the number of entries. Default: 256.
	MaxEntries int

	// MaxBytes bounds the total size of all values. 0 means unbounded.
	MaxBytes int64

	// TTL is how long an entry stays valid. 0 means entries never expire.
	TTL time.Duration

	// now is replaced in tests.
	now func() time.Time
}

// CacheStats holds runtime statistics for a cache Store.
type CacheStats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int64
	Entries   int
}

// lruEntry is the value stored in each list.Element.
type lruEntry struct {
	hash    string
	value   []byte
	created time.Time
}

// Store is an in-memory key-value cache with LRU eviction and optional
// expiry. It is safe for concurrent use.
type Store struct {
	cfg StoreConfig

	mu        sync.Mutex
	lru       *list.List               // front = most recently used
	items     map[string]*list.Element // hash -> *list.Element (value is *lruEntry)
	curSize   int64
	hits      int64
	misses    int64
	evictions int64
}

// NewStore creates an empty Store.
func NewStore(cfg StoreConfig) *Store {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = 256
	}
	if cfg.MaxBytes < 0 {
		cfg.MaxBytes = 0
	}
	if cfg.now == nil {
		cfg.now = time.Now
	}
	return &Store{
		cfg:   cfg,
		lru:   list.New(),
		items: make(map[string]*list.Element),
	}
}

// Get retrieves the bytes stored for key. On a hit, the entry is promoted
// to the front of the LRU. Callers must not modify the returned slice.
func (s *Store) Get(key string) ([]byte, bool) {
	h := hashKey(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.items[h]
	if !ok {
		s.misses++
		return nil, false
	}
	entry := elem.Value.(*lruEntry)
	if s.expired(entry) {
		s.removeLocked(elem)
		s.misses++
		return nil, false
	}

	s.lru.MoveToFront(elem)
	s.hits++
	return entry.value, true
}

// Put stores value under key, evicting least recently used entries until
// the store is back within its limits. A value larger than MaxBytes is
// not stored.
func (s *Store) Put(key string, value []byte) {
	h := hashKey(key)
	size := int64(len(value))

	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[h]; ok {
		s.removeLocked(elem)
	}
	if s.cfg.MaxBytes > 0 && size > s.cfg.MaxBytes {
		return
	}

	entry := &lruEntry{hash: h, value: value, created: s.cfg.now()}
	s.items[h] = s.lru.PushFront(entry)
	s.curSize += size

	for s.lru.Len() > s.cfg.MaxEntries || (s.cfg.MaxBytes > 0 && s.curSize > s.cfg.MaxBytes) {
		oldest := s.lru.Back()
		if oldest == nil {
			break
		}
		s.removeLocked(oldest)
		s.evictions++
	}
}

// Fetch returns the cached bytes for key, or calls fill, stores its result
// and returns it. The second result reports whether the value was cached.
// Errors from fill are returned and nothing is stored.
func (s *Store) Fetch(key string, fill func() ([]byte, error)) ([]byte, bool, error) {
	if data, ok := s.Get(key); ok {
		return data, true, nil
	}
	data, err := fill()
	if err != nil {
		return nil, false, err
	}
	s.Put(key, data)
	return data, false, nil
}

// Delete removes key. Deleting a missing key is a no-op.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if elem, ok := s.items[hashKey(key)]; ok {
		s.removeLocked(elem)
	}
}

// Clear removes every entry. Statistics are kept.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lru.Init()
	s.items = make(map[string]*list.Element)
	s.curSize = 0
}

// Len returns the number of entries, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lru.Len()
}

// Stats returns a snapshot of the cache statistics.
func (s *Store) Stats() CacheStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CacheStats{
		Hits:      s.hits,
		Misses:    s.misses,
		Evictions: s.evictions,
		Size:      s.curSize,
		Entries:   s.lru.Len(),
	}
}

func (s *Store) expired(e *lruEntry) bool {
	return s.cfg.TTL > 0 && s.cfg.now().Sub(e.created) >= s.cfg.TTL
}

// removeLocked drops elem. s.mu must be held.
func (s *Store) removeLocked(elem *list.Element) {
	entry := elem.Value.(*lruEntry)
	s.lru.Remove(elem)
	delete(s.items, entry.hash)
	s.curSize -= int64(len(entry.value))
}
