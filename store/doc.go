// Package store provides an in-memory similarity store for ternary vectors.
//
// Vectors live under uint32 IDs with optional string tags. Search is exact
// brute-force top-k over the candidate set; tags restrict candidates via
// roaring-bitmap intersection. Repeated queries are served from a TTL cache
// that is invalidated by every write.
//
// Usage:
//
//	s, err := store.New(store.Config{Dimension: 10000, CacheTTL: time.Minute})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_ = s.Put(1, vec1, "news")
//	_ = s.Put(2, vec2, "news", "sports")
//
//	results, err := s.Search(query, 10, "news")
//
// All methods are safe for concurrent use.
package store
