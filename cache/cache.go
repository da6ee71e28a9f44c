// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

import (
	"encoding/binary"
	"hash/fnv"
	"sync"
	"sync/atomic"

	"github.com/gogpu/wgtypes"
)

// Default configuration constants.
const (
	// DefaultShards is the default number of shards.
	DefaultShards = 8

	// DefaultCapacity is the default maximum entries per shard. With the
	// default shard count every known format fits without eviction.
	DefaultCapacity = 64
)

// Stats is a snapshot of cache statistics.
type Stats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	HitRate   float64
}

type config struct {
	shards   int
	capacity int
}

// Option configures a FormatFeatures cache.
type Option func(*config)

// WithShards sets the shard count, rounded up to a power of two.
// Values below 1 are ignored.
func WithShards(n int) Option {
	return func(c *config) {
		if n < 1 {
			return
		}
		s := 1
		for s < n {
			s <<= 1
		}
		c.shards = s
	}
}

// WithCapacity sets the maximum number of formats kept per shard.
// Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.capacity = n
		}
	}
}

// FormatFeatures memoizes TextureFormat.GuaranteedFormatFeatures for a
// single enabled feature set, typically the features of one device.
//
// FormatFeatures is safe for concurrent use and must not be copied.
type FormatFeatures struct {
	features wgtypes.Features
	shards   []*shard
	mask     uint64
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard struct {
	mu      sync.Mutex
	entries map[wgtypes.TextureFormat]*entry
	lru     lruList
}

type entry struct {
	value wgtypes.TextureFormatFeatures
	node  *lruNode
}

// New returns an empty cache for the given enabled features.
func New(features wgtypes.Features, opts ...Option) *FormatFeatures {
	cfg := config{shards: DefaultShards, capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &FormatFeatures{
		features: features,
		shards:   make([]*shard, cfg.shards),
		mask:     uint64(cfg.shards - 1),
		capacity: cfg.capacity,
	}
	for i := range c.shards {
		c.shards[i] = &shard{entries: make(map[wgtypes.TextureFormat]*entry)}
	}
	return c
}

// Features returns the feature set the cache was built for.
func (c *FormatFeatures) Features() wgtypes.Features { return c.features }

func (c *FormatFeatures) shardFor(f wgtypes.TextureFormat) *shard {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(f))
	h := fnv.New64a()
	_, _ = h.Write(buf[:]) // fnv.Write never returns an error
	// The low bits of FNV-1a only see the low bits of each input byte.
	return c.shards[(h.Sum64()>>32)&c.mask]
}

// Get returns the guaranteed format features of f under the cache's
// feature set, computing them on first use.
func (c *FormatFeatures) Get(f wgtypes.TextureFormat) wgtypes.TextureFormatFeatures {
	s := c.shardFor(f)

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[f]; ok {
		s.lru.moveToFront(e.node)
		c.hits.Add(1)
		return e.value
	}

	c.misses.Add(1)
	value := f.GuaranteedFormatFeatures(c.features)
	wgtypes.Logger().Debug("format features computed",
		"format", f.String(),
		"features", c.features.String(),
		"usages", value.AllowedUsages.String(),
		"flags", value.Flags.String())

	for s.lru.len >= c.capacity {
		oldest, ok := s.lru.removeOldest()
		if !ok {
			break
		}
		delete(s.entries, oldest)
		c.evictions.Add(1)
	}
	s.entries[f] = &entry{value: value, node: s.lru.pushFront(f)}
	return value
}

// Supports reports whether f may be created with all of the given usages.
func (c *FormatFeatures) Supports(f wgtypes.TextureFormat, usages wgtypes.TextureUsages) bool {
	if !f.IsValid() || f.CheckFeatures(c.features) != nil {
		return false
	}
	return c.Get(f).AllowedUsages.Contains(usages)
}

// Len returns the number of cached formats.
func (c *FormatFeatures) Len() int {
	n := 0
	for _, s := range c.shards {
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}

// Clear drops every cached entry. Statistics are kept.
func (c *FormatFeatures) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[wgtypes.TextureFormat]*entry)
		s.lru = lruList{}
		s.mu.Unlock()
	}
}

// Stats returns current cache statistics.
func (c *FormatFeatures) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}
	return Stats{
		Len:       c.Len(),
		Hits:      hits,
		Misses:    misses,
		Evictions: c.evictions.Load(),
		HitRate:   rate,
	}
}
