// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/wgtypes"
)

func TestNewDefaults(t *testing.T) {
	c := New(wgtypes.FeatureFloat32Filterable)
	if len(c.shards) != DefaultShards {
		t.Errorf("shards = %d, want %d", len(c.shards), DefaultShards)
	}
	if c.capacity != DefaultCapacity {
		t.Errorf("capacity = %d, want %d", c.capacity, DefaultCapacity)
	}
	if c.Features() != wgtypes.FeatureFloat32Filterable {
		t.Errorf("Features() = %v", c.Features())
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		shards   int
		capacity int
	}{
		{"round up shards", []Option{WithShards(5)}, 8, DefaultCapacity},
		{"one shard", []Option{WithShards(1)}, 1, DefaultCapacity},
		{"ignore zero", []Option{WithShards(0), WithCapacity(0)}, DefaultShards, DefaultCapacity},
		{"capacity", []Option{WithCapacity(3)}, DefaultShards, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(0, tt.opts...)
			if len(c.shards) != tt.shards || c.capacity != tt.capacity {
				t.Errorf("New() shards=%d capacity=%d, want %d %d",
					len(c.shards), c.capacity, tt.shards, tt.capacity)
			}
		})
	}
}

func TestGetMatchesDirectComputation(t *testing.T) {
	for _, features := range []wgtypes.Features{0, wgtypes.FeaturesAll()} {
		c := New(features)
		for _, f := range wgtypes.AllTextureFormats() {
			want := f.GuaranteedFormatFeatures(features)
			if got := c.Get(f); got != want {
				t.Errorf("Get(%v) = %+v, want %+v", f, got, want)
			}
			if got := c.Get(f); got != want {
				t.Errorf("second Get(%v) = %+v, want %+v", f, got, want)
			}
		}
		n := len(wgtypes.AllTextureFormats())
		s := c.Stats()
		if s.Len != n || s.Misses != uint64(n) || s.Hits != uint64(n) || s.Evictions != 0 {
			t.Errorf("Stats() = %+v, want %d entries, misses and hits", s, n)
		}
		if s.HitRate != 0.5 {
			t.Errorf("HitRate = %v, want 0.5", s.HitRate)
		}
	}
}

func TestFeatureSetsAreSeparate(t *testing.T) {
	plain := New(0)
	storage := New(wgtypes.FeatureBGRA8UnormStorage)

	if plain.Get(wgtypes.TextureFormatBGRA8Unorm).AllowedUsages.Contains(wgtypes.TextureUsageStorageBinding) {
		t.Error("bgra8unorm storage without feature")
	}
	if !storage.Get(wgtypes.TextureFormatBGRA8Unorm).AllowedUsages.Contains(wgtypes.TextureUsageStorageBinding) {
		t.Error("bgra8unorm not storage with bgra8unorm-storage")
	}
}

func TestSupports(t *testing.T) {
	c := New(0)
	tests := []struct {
		format wgtypes.TextureFormat
		usages wgtypes.TextureUsages
		want   bool
	}{
		{wgtypes.TextureFormatRGBA8Unorm, wgtypes.TextureUsageStorageBinding | wgtypes.TextureUsageRenderAttachment, true},
		{wgtypes.TextureFormatRGBA8UnormSrgb, wgtypes.TextureUsageStorageBinding, false},
		{wgtypes.TextureFormatBC1RGBAUnorm, wgtypes.TextureUsageTextureBinding, false},
		{wgtypes.TextureFormatDepth32FloatStencil8, wgtypes.TextureUsageRenderAttachment, false},
		{0, wgtypes.TextureUsageCopySrc, false},
	}
	for _, tt := range tests {
		if got := c.Supports(tt.format, tt.usages); got != tt.want {
			t.Errorf("Supports(%v, %v) = %v, want %v", tt.format, tt.usages, got, tt.want)
		}
	}

	bc := New(wgtypes.FeatureTextureCompressionBC)
	if !bc.Supports(wgtypes.TextureFormatBC1RGBAUnorm, wgtypes.TextureUsageTextureBinding) {
		t.Error("BC1 not sampleable with texture-compression-bc")
	}
}

func TestEviction(t *testing.T) {
	c := New(0, WithShards(1), WithCapacity(2))
	c.Get(wgtypes.TextureFormatR8Unorm)
	c.Get(wgtypes.TextureFormatRGBA8Unorm)
	c.Get(wgtypes.TextureFormatR8Unorm) // R8Unorm is now most recent
	c.Get(wgtypes.TextureFormatDepth32Float)

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	s := c.shards[0]
	if _, ok := s.entries[wgtypes.TextureFormatRGBA8Unorm]; ok {
		t.Error("least recently used format not evicted")
	}
	if _, ok := s.entries[wgtypes.TextureFormatR8Unorm]; !ok {
		t.Error("recently used format evicted")
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestClear(t *testing.T) {
	c := New(0)
	c.Get(wgtypes.TextureFormatRGBA8Unorm)
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
	c.Get(wgtypes.TextureFormatRGBA8Unorm)
	if got := c.Stats().Misses; got != 2 {
		t.Errorf("Misses = %d, want 2", got)
	}
}

func TestMissLogged(t *testing.T) {
	var buf bytes.Buffer
	wgtypes.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { wgtypes.SetLogger(nil) })

	c := New(0)
	c.Get(wgtypes.TextureFormatRGBA16Float)
	c.Get(wgtypes.TextureFormatRGBA16Float)

	out := buf.String()
	if strings.Count(out, "format features computed") != 1 {
		t.Errorf("log output = %q, want one miss record", out)
	}
	if !strings.Contains(out, "rgba16float") {
		t.Errorf("log output = %q, want format name", out)
	}
}

func TestConcurrentGet(t *testing.T) {
	c := New(wgtypes.FeaturesAll(), WithCapacity(4))
	formats := wgtypes.AllTextureFormats()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := range 200 {
				f := formats[(g*31+i)%len(formats)]
				if got, want := c.Get(f), f.GuaranteedFormatFeatures(c.Features()); got != want {
					t.Errorf("Get(%v) = %+v, want %+v", f, got, want)
					return
				}
			}
		}(g)
	}
	wg.Wait()

	if s := c.Stats(); s.Len > len(c.shards)*4 {
		t.Errorf("Len = %d exceeds total capacity %d", s.Len, len(c.shards)*4)
	}
}
