// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache shares one feature-bound view of format capabilities
// across goroutines.
//
// TextureFormat.GuaranteedFormatFeatures is a cheap table lookup; the cache
// does not exist to save that work. A FormatFeatures value pins the enabled
// feature set of one device, so code handed the cache cannot ask about
// formats under a different set, and it counts which formats were queried:
//
//	formats := cache.New(deviceFeatures)
//	if formats.Supports(wgtypes.TextureFormatBGRA8Unorm, wgtypes.TextureUsageStorageBinding) {
//		// ...
//	}
//
// Entries are spread over a small number of mutex-guarded shards, each with
// its own LRU order. The first query of each format is logged at Debug
// through wgtypes.Logger, and Stats reports hits and misses.
package cache
