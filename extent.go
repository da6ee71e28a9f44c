// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgtypes

import "math/bits"

// TextureDimension is the dimensionality of a texture.
type TextureDimension uint8

// Texture dimensions.
const (
	TextureDimension1D TextureDimension = iota
	TextureDimension2D
	TextureDimension3D
)

// String returns "1d", "2d" or "3d".
func (d TextureDimension) String() string {
	switch d {
	case TextureDimension1D:
		return "1d"
	case TextureDimension2D:
		return "2d"
	case TextureDimension3D:
		return "3d"
	default:
		return "unknown"
	}
}

// Extent3D is the size of a texture or copy region. For 2D textures
// DepthOrArrayLayers counts array layers; for 3D textures it is the depth.
type Extent3D struct {
	Width              uint32 `json:"width"`
	Height             uint32 `json:"height"`
	DepthOrArrayLayers uint32 `json:"depthOrArrayLayers"`
}

// PhysicalSize returns the extent rounded up to whole blocks of format.
// A 7x7 extent of an 8x5 ASTC format occupies 8x10 texels.
func (e Extent3D) PhysicalSize(format TextureFormat) Extent3D {
	bw, bh := format.BlockDimensions()
	return Extent3D{
		Width:              roundUp(e.Width, bw),
		Height:             roundUp(e.Height, bh),
		DepthOrArrayLayers: e.DepthOrArrayLayers,
	}
}

func roundUp(v, multiple uint32) uint32 {
	if multiple <= 1 {
		return v
	}
	return (v + multiple - 1) / multiple * multiple
}

// MaxMips returns the length of a full mip chain for the extent.
// 1D textures never have more than one level. Array layers of a 2D texture
// do not shrink, so only 3D textures take the depth into account.
func (e Extent3D) MaxMips(dim TextureDimension) uint32 {
	switch dim {
	case TextureDimension1D:
		return 1
	case TextureDimension2D:
		return uint32(32 - bits.LeadingZeros32(max(e.Width, e.Height)))
	case TextureDimension3D:
		return uint32(32 - bits.LeadingZeros32(max(e.Width, e.Height, e.DepthOrArrayLayers)))
	default:
		return 0
	}
}

// MipLevelSize returns the extent of the given mip level, or false if the
// level is past the end of the chain.
func (e Extent3D) MipLevelSize(level uint32, dim TextureDimension) (Extent3D, bool) {
	if level >= e.MaxMips(dim) {
		return Extent3D{}, false
	}
	out := Extent3D{
		Width:              max(1, e.Width>>level),
		Height:             1,
		DepthOrArrayLayers: 1,
	}
	switch dim {
	case TextureDimension2D:
		out.Height = max(1, e.Height>>level)
		out.DepthOrArrayLayers = e.DepthOrArrayLayers
	case TextureDimension3D:
		out.Height = max(1, e.Height>>level)
		out.DepthOrArrayLayers = max(1, e.DepthOrArrayLayers>>level)
	}
	return out, true
}

// PaddedBytesPerRow returns the BytesPerRow of a buffer-texture copy of a
// row of texels width wide, rounded up to CopyBytesPerRowAlignment. It
// reports false when the aspect has no copy size.
func (f TextureFormat) PaddedBytesPerRow(width uint32, aspect *TextureAspect) (uint32, bool) {
	size, ok := f.BlockCopySize(aspect)
	if !ok {
		return 0, false
	}
	bw, _ := f.BlockDimensions()
	blocks := (width + bw - 1) / bw
	return roundUp(blocks*size, CopyBytesPerRowAlignment), true
}

// RowsPerImage returns the number of block rows covering height texels.
func (f TextureFormat) RowsPerImage(height uint32) uint32 {
	_, bh := f.BlockDimensions()
	return (height + bh - 1) / bh
}
