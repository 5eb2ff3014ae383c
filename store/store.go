package store

import (
	"container/heap"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	farmhash "github.com/leemcloughlin/gofarmhash"
	"github.com/patrickmn/go-cache"

	"github.com/hupe1980/hdcgo"
	"github.com/hupe1980/hdcgo/quantization"
	"github.com/hupe1980/hdcgo/queue"
	"github.com/hupe1980/hdcgo/similarity"
)

var (
	// ErrInvalidDimension is returned when the configured dimension is not positive.
	ErrInvalidDimension = errors.New("dimension must be positive")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")
)

// Config holds parameters for a Store.
type Config struct {
	// Dimension is the ternary vector width. Required.
	Dimension int
	// Metric selects the comparator used by Search.
	// Defaults to similarity.MetricCosine.
	Metric similarity.Metric
	// CacheTTL bounds how long Search results may be served from cache.
	// Zero disables the query cache.
	CacheTTL time.Duration
	// Metrics receives per-operation observations. nil disables collection.
	Metrics hdcgo.MetricsCollector
}

// Store is an in-memory similarity store over ternary vectors.
// All methods are safe for concurrent use.
type Store struct {
	cfg     Config
	simFn   similarity.TernaryFunc
	metrics hdcgo.MetricsCollector

	mu   sync.RWMutex
	vecs map[uint32][]int8
	live *roaring.Bitmap
	tags map[string]*roaring.Bitmap

	// queries caches Search results until the next write. nil when
	// Config.CacheTTL is zero.
	queries *cache.Cache
}

// New creates a Store with the given Config.
func New(cfg Config) (*Store, error) {
	if cfg.Dimension <= 0 {
		return nil, ErrInvalidDimension
	}

	simFn, err := similarity.Provider(cfg.Metric)
	if err != nil {
		return nil, err
	}

	if cfg.Metrics == nil {
		cfg.Metrics = hdcgo.NoopMetricsCollector{}
	}

	s := &Store{
		cfg:     cfg,
		simFn:   simFn,
		metrics: cfg.Metrics,
		vecs:    make(map[uint32][]int8),
		live:    roaring.New(),
		tags:    make(map[string]*roaring.Bitmap),
	}
	if cfg.CacheTTL > 0 {
		s.queries = cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	}
	return s, nil
}

// Dimension returns the configured vector width.
func (s *Store) Dimension() int { return s.cfg.Dimension }

// Put inserts or replaces the vector stored under id. Replacing an id
// clears its previous tag memberships. The vector is copied.
func (s *Store) Put(id uint32, v []int8, tags ...string) error {
	if len(v) != s.cfg.Dimension {
		return &hdcgo.ErrDimensionMismatch{Expected: s.cfg.Dimension, Actual: len(v)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.live.Contains(id) {
		s.removeFromTagsLocked(id)
	}
	s.vecs[id] = append([]int8(nil), v...)
	s.live.Add(id)
	for _, tag := range tags {
		bm, ok := s.tags[tag]
		if !ok {
			bm = roaring.New()
			s.tags[tag] = bm
		}
		bm.Add(id)
	}
	s.invalidateLocked()
	return nil
}

// PutPacked decodes a packed ternary buffer and stores the result under id.
func (s *Store) PutPacked(id uint32, data []byte, tags ...string) error {
	start := time.Now()
	v, err := quantization.Unpack(data, s.cfg.Dimension)
	s.metrics.RecordUnpack(time.Since(start), err)
	if err != nil {
		return err
	}
	return s.Put(id, v, tags...)
}

// Get returns a copy of the vector stored under id.
func (s *Store) Get(id uint32) ([]int8, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vecs[id]
	if !ok {
		return nil, false
	}
	return append([]int8(nil), v...), true
}

// Delete removes id and its tag memberships. It reports whether the id
// was present.
func (s *Store) Delete(id uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.live.Contains(id) {
		return false
	}
	delete(s.vecs, id)
	s.live.Remove(id)
	s.removeFromTagsLocked(id)
	s.invalidateLocked()
	return true
}

// Len returns the number of stored vectors.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int(s.live.GetCardinality())
}

// Result is one search hit.
type Result struct {
	ID    uint32
	Score float64
}

// Search returns the k highest-scoring stored vectors for q, best first.
// Optional tags restrict candidates to vectors carrying every listed tag.
// Fewer than k results are returned when the candidate set is smaller.
func (s *Store) Search(q []int8, k int, tags ...string) ([]Result, error) {
	start := time.Now()
	results, err := s.search(q, k, tags)
	s.metrics.RecordSearch(k, time.Since(start), err)
	return results, err
}

func (s *Store) search(q []int8, k int, tags []string) ([]Result, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	if len(q) != s.cfg.Dimension {
		return nil, &hdcgo.ErrDimensionMismatch{Expected: s.cfg.Dimension, Actual: len(q)}
	}

	var key string
	if s.queries != nil {
		key = cacheKey(q, k, tags)
		if hit, ok := s.queries.Get(key); ok {
			return append([]Result(nil), hit.([]Result)...), nil
		}
	}

	s.mu.RLock()
	pq := &queue.ResultQueue{}
	it := s.candidatesLocked(tags).Iterator()
	for it.HasNext() {
		id := it.Next()
		score := s.simFn(q, s.vecs[id])
		switch {
		case pq.Len() < k:
			heap.Push(pq, &queue.ResultItem{ID: id, Score: score})
		case score > pq.Top().Score:
			heap.Pop(pq)
			heap.Push(pq, &queue.ResultItem{ID: id, Score: score})
		}
	}
	s.mu.RUnlock()

	results := make([]Result, pq.Len())
	for i := len(results) - 1; i >= 0; i-- {
		item := heap.Pop(pq).(*queue.ResultItem)
		results[i] = Result{ID: item.ID, Score: item.Score}
	}
	// Equal scores come out of the heap in arbitrary order; pin them to
	// ascending id so results are reproducible.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score == results[j].Score {
			return results[i].ID < results[j].ID
		}
		return results[i].Score > results[j].Score
	})

	if s.queries != nil {
		s.queries.Set(key, append([]Result(nil), results...), cache.DefaultExpiration)
	}
	return results, nil
}

// candidatesLocked intersects the live set with every requested tag.
// A tag nobody carries empties the result.
func (s *Store) candidatesLocked(tags []string) *roaring.Bitmap {
	candidates := s.live.Clone()
	for _, tag := range tags {
		bm, ok := s.tags[tag]
		if !ok {
			candidates.Clear()
			return candidates
		}
		candidates.And(bm)
	}
	return candidates
}

// Stats is a point-in-time snapshot of store contents.
type Stats struct {
	// Count is the number of stored vectors.
	Count uint64
	// Tags is the number of distinct tags in use.
	Tags int
	// VectorBytes counts the unpacked in-memory vectors, one byte per element.
	VectorBytes int64
	// IndexBytes counts the serialized size of the membership bitmaps.
	IndexBytes uint64
}

// Stats returns a snapshot of store contents.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	indexBytes := s.live.GetSizeInBytes()
	for _, bm := range s.tags {
		indexBytes += bm.GetSizeInBytes()
	}
	count := s.live.GetCardinality()
	return Stats{
		Count:       count,
		Tags:        len(s.tags),
		VectorBytes: int64(count) * int64(s.cfg.Dimension),
		IndexBytes:  indexBytes,
	}
}

func (s *Store) removeFromTagsLocked(id uint32) {
	for tag, bm := range s.tags {
		bm.Remove(id)
		if bm.IsEmpty() {
			delete(s.tags, tag)
		}
	}
}

func (s *Store) invalidateLocked() {
	if s.queries != nil {
		s.queries.Flush()
	}
}

// cacheKey folds the query bytes, k, and the sorted tag set into one
// FarmHash64 chain.
func cacheKey(q []int8, k int, tags []string) string {
	buf := make([]byte, len(q))
	for i, v := range q {
		buf[i] = byte(v)
	}
	h := farmhash.Hash64WithSeed(buf, uint64(k))
	if len(tags) > 0 {
		sorted := append([]string(nil), tags...)
		sort.Strings(sorted)
		for _, tag := range sorted {
			h = farmhash.Hash64WithSeed([]byte(tag), h)
		}
	}
	return strconv.FormatUint(h, 16)
}
