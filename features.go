// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgtypes

import (
	"encoding/json"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Features is a set of optional device capabilities.
//
// The low 32 bits hold features defined by WebGPU; the high 32 bits hold
// native-only extensions. A format's availability and some of its
// guaranteed usages depend on membership tests against this set.
type Features uint64

// WebGPU features.
const (
	// FeatureDepthClipControl allows unclipped depth.
	FeatureDepthClipControl Features = 1 << iota
	// FeatureDepth32FloatStencil8 enables TextureFormatDepth32FloatStencil8.
	FeatureDepth32FloatStencil8
	// FeatureTextureCompressionBC enables the BC formats for 2D textures.
	FeatureTextureCompressionBC
	// FeatureTextureCompressionBCSliced3D enables BC formats for 3D textures.
	FeatureTextureCompressionBCSliced3D
	// FeatureTextureCompressionETC2 enables the ETC2 and EAC formats.
	FeatureTextureCompressionETC2
	// FeatureTextureCompressionASTC enables the unorm and unorm-srgb ASTC formats.
	FeatureTextureCompressionASTC
	// FeatureTimestampQuery enables timestamp query sets.
	FeatureTimestampQuery
	// FeatureIndirectFirstInstance allows a non-zero first instance in indirect draws.
	FeatureIndirectFirstInstance
	// FeatureShaderF16 enables f16 in shaders.
	FeatureShaderF16
	// FeatureRG11B10UfloatRenderable allows TextureFormatRG11B10Ufloat as a render attachment.
	FeatureRG11B10UfloatRenderable
	// FeatureBGRA8UnormStorage allows TextureFormatBGRA8Unorm as a storage texture.
	FeatureBGRA8UnormStorage
	// FeatureFloat32Filterable makes the 32-bit float color formats filterable.
	FeatureFloat32Filterable
	// FeatureDualSourceBlending enables dual-source blend factors.
	FeatureDualSourceBlending
)

// Native-only features.
const (
	// FeatureTextureFormat16BitNorm enables the 16-bit unorm and snorm formats.
	FeatureTextureFormat16BitNorm Features = 1 << (32 + iota)
	// FeatureTextureCompressionASTCHDR enables the hdr ASTC formats.
	FeatureTextureCompressionASTCHDR
	// FeatureTextureAdapterSpecificFormatFeatures lets the adapter report
	// format features beyond the guaranteed set.
	FeatureTextureAdapterSpecificFormatFeatures
	FeaturePipelineStatisticsQuery
	FeatureTimestampQueryInsideEncoders
	FeatureTimestampQueryInsidePasses
	FeatureMappablePrimaryBuffers
	FeatureTextureBindingArray
	FeatureBufferBindingArray
	FeatureStorageResourceBindingArray
	FeaturePartiallyBoundBindingArray
	FeatureMultiDrawIndirect
	FeatureMultiDrawIndirectCount
	FeaturePushConstants
	FeatureAddressModeClampToZero
	FeatureAddressModeClampToBorder
	FeaturePolygonModeLine
	FeaturePolygonModePoint
	FeatureConservativeRasterization
	FeatureVertexWritableStorage
	FeatureClearTexture
	FeatureMultiview
	FeatureVertexAttribute64Bit
	// FeatureTextureFormatNV12 enables TextureFormatNV12.
	FeatureTextureFormatNV12
	FeatureShaderF64
	FeatureShaderI16
	FeatureShaderInt64
	FeatureShaderPrimitiveIndex
	FeatureShaderEarlyDepthTest
	FeatureSubgroup
	FeatureSubgroupVertex
	FeatureSubgroupBarrier
)

// FeaturesWebGPU is the mask of all features defined by WebGPU.
const FeaturesWebGPU = FeatureDepthClipControl | FeatureDepth32FloatStencil8 |
	FeatureTextureCompressionBC | FeatureTextureCompressionBCSliced3D |
	FeatureTextureCompressionETC2 | FeatureTextureCompressionASTC |
	FeatureTimestampQuery | FeatureIndirectFirstInstance | FeatureShaderF16 |
	FeatureRG11B10UfloatRenderable | FeatureBGRA8UnormStorage |
	FeatureFloat32Filterable | FeatureDualSourceBlending

// featureNames lists every known feature in bit order.
var featureNames = []struct {
	bit  Features
	name string
}{
	{FeatureDepthClipControl, "depth-clip-control"},
	{FeatureDepth32FloatStencil8, "depth32float-stencil8"},
	{FeatureTextureCompressionBC, "texture-compression-bc"},
	{FeatureTextureCompressionBCSliced3D, "texture-compression-bc-sliced-3d"},
	{FeatureTextureCompressionETC2, "texture-compression-etc2"},
	{FeatureTextureCompressionASTC, "texture-compression-astc"},
	{FeatureTimestampQuery, "timestamp-query"},
	{FeatureIndirectFirstInstance, "indirect-first-instance"},
	{FeatureShaderF16, "shader-f16"},
	{FeatureRG11B10UfloatRenderable, "rg11b10ufloat-renderable"},
	{FeatureBGRA8UnormStorage, "bgra8unorm-storage"},
	{FeatureFloat32Filterable, "float32-filterable"},
	{FeatureDualSourceBlending, "dual-source-blending"},
	{FeatureTextureFormat16BitNorm, "texture-format-16bit-norm"},
	{FeatureTextureCompressionASTCHDR, "texture-compression-astc-hdr"},
	{FeatureTextureAdapterSpecificFormatFeatures, "texture-adapter-specific-format-features"},
	{FeaturePipelineStatisticsQuery, "pipeline-statistics-query"},
	{FeatureTimestampQueryInsideEncoders, "timestamp-query-inside-encoders"},
	{FeatureTimestampQueryInsidePasses, "timestamp-query-inside-passes"},
	{FeatureMappablePrimaryBuffers, "mappable-primary-buffers"},
	{FeatureTextureBindingArray, "texture-binding-array"},
	{FeatureBufferBindingArray, "buffer-binding-array"},
	{FeatureStorageResourceBindingArray, "storage-resource-binding-array"},
	{FeaturePartiallyBoundBindingArray, "partially-bound-binding-array"},
	{FeatureMultiDrawIndirect, "multi-draw-indirect"},
	{FeatureMultiDrawIndirectCount, "multi-draw-indirect-count"},
	{FeaturePushConstants, "push-constants"},
	{FeatureAddressModeClampToZero, "address-mode-clamp-to-zero"},
	{FeatureAddressModeClampToBorder, "address-mode-clamp-to-border"},
	{FeaturePolygonModeLine, "polygon-mode-line"},
	{FeaturePolygonModePoint, "polygon-mode-point"},
	{FeatureConservativeRasterization, "conservative-rasterization"},
	{FeatureVertexWritableStorage, "vertex-writable-storage"},
	{FeatureClearTexture, "clear-texture"},
	{FeatureMultiview, "multiview"},
	{FeatureVertexAttribute64Bit, "vertex-attribute-64bit"},
	{FeatureTextureFormatNV12, "texture-format-nv12"},
	{FeatureShaderF64, "shader-f64"},
	{FeatureShaderI16, "shader-i16"},
	{FeatureShaderInt64, "shader-int64"},
	{FeatureShaderPrimitiveIndex, "shader-primitive-index"},
	{FeatureShaderEarlyDepthTest, "shader-early-depth-test"},
	{FeatureSubgroup, "subgroup"},
	{FeatureSubgroupVertex, "subgroup-vertex"},
	{FeatureSubgroupBarrier, "subgroup-barrier"},
}

// featuresAll is the mask of every known feature bit.
var featuresAll = func() Features {
	var all Features
	for _, n := range featureNames {
		all |= n.bit
	}
	return all
}()

// FeaturesAll returns the set of every known feature.
func FeaturesAll() Features { return featuresAll }

// Contains reports whether every feature in other is in f.
// An empty other is always contained.
func (f Features) Contains(other Features) bool {
	return f&other == other
}

// Intersects reports whether f and other share at least one feature.
func (f Features) Intersects(other Features) bool {
	return f&other != 0
}

// Insert adds the features in other to f.
func (f *Features) Insert(other Features) {
	*f |= other
}

// Remove clears the features in other from f.
func (f *Features) Remove(other Features) {
	*f &^= other
}

// Union returns the features in either set.
func (f Features) Union(other Features) Features { return f | other }

// Intersect returns the features in both sets.
func (f Features) Intersect(other Features) Features { return f & other }

// Difference returns the features in f that are not in other.
func (f Features) Difference(other Features) Features { return f &^ other }

// IsEmpty reports whether no features are set.
func (f Features) IsEmpty() bool { return f == 0 }

// Count returns the number of set bits, unknown bits included.
func (f Features) Count() int { return bits.OnesCount64(uint64(f)) }

// ContainsUnknownBits reports whether f has bits that name no known feature,
// as happens when decoding a value written by a newer version.
func (f Features) ContainsUnknownBits() bool {
	return f&^featuresAll != 0
}

// Names returns the names of the known features in f, in bit order.
func (f Features) Names() []string {
	var names []string
	for _, n := range featureNames {
		if f&n.bit != 0 {
			names = append(names, n.name)
		}
	}
	return names
}

// String returns the feature names joined with "|". Unknown bits are
// appended as a hex literal.
func (f Features) String() string {
	if f == 0 {
		return "(none)"
	}
	parts := f.Names()
	if unknown := f &^ featuresAll; unknown != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint64(unknown)))
	}
	return strings.Join(parts, "|")
}

// ParseFeature returns the feature with the given name.
func ParseFeature(name string) (Features, bool) {
	for _, n := range featureNames {
		if n.name == name {
			return n.bit, true
		}
	}
	return 0, false
}

// ParseFeatures parses a comma- or pipe-separated list of feature names.
// Blank entries are ignored.
func ParseFeatures(list string) (Features, error) {
	var out Features
	fields := strings.FieldsFunc(list, func(r rune) bool { return r == ',' || r == '|' })
	for _, field := range fields {
		name := strings.TrimSpace(field)
		if name == "" {
			continue
		}
		bit, ok := ParseFeature(name)
		if !ok {
			return 0, fmt.Errorf("wgtypes: unknown feature %q", name)
		}
		out |= bit
	}
	return out, nil
}

// MarshalJSON encodes the set as its raw unsigned integer.
func (f Features) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(f), 10), nil
}

// UnmarshalJSON decodes a raw unsigned integer. Unknown bits are kept.
func (f *Features) UnmarshalJSON(data []byte) error {
	var v uint64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("wgtypes: decode features: %w", err)
	}
	*f = Features(v)
	return nil
}
