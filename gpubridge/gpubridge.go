// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpubridge converts between wgtypes and github.com/gogpu/gputypes,
// the type vocabulary shared by gogpu/wgpu and its backends.
//
// gputypes covers a subset of wgtypes: it has no NV12, no HDR ASTC, no plane
// aspects and no subgroup limits. Conversions of values outside that subset
// report false instead of guessing.
package gpubridge

import (
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/wgtypes"
)

// formatPairs lists every non-ASTC format both packages define.
var formatPairs = [...]struct {
	wg  wgtypes.TextureFormat
	gpu gputypes.TextureFormat
}{
	{wgtypes.TextureFormatR8Unorm, gputypes.TextureFormatR8Unorm},
	{wgtypes.TextureFormatR8Snorm, gputypes.TextureFormatR8Snorm},
	{wgtypes.TextureFormatR8Uint, gputypes.TextureFormatR8Uint},
	{wgtypes.TextureFormatR8Sint, gputypes.TextureFormatR8Sint},
	{wgtypes.TextureFormatR16Uint, gputypes.TextureFormatR16Uint},
	{wgtypes.TextureFormatR16Sint, gputypes.TextureFormatR16Sint},
	{wgtypes.TextureFormatR16Unorm, gputypes.TextureFormatR16Unorm},
	{wgtypes.TextureFormatR16Snorm, gputypes.TextureFormatR16Snorm},
	{wgtypes.TextureFormatR16Float, gputypes.TextureFormatR16Float},
	{wgtypes.TextureFormatRG8Unorm, gputypes.TextureFormatRG8Unorm},
	{wgtypes.TextureFormatRG8Snorm, gputypes.TextureFormatRG8Snorm},
	{wgtypes.TextureFormatRG8Uint, gputypes.TextureFormatRG8Uint},
	{wgtypes.TextureFormatRG8Sint, gputypes.TextureFormatRG8Sint},
	{wgtypes.TextureFormatR32Uint, gputypes.TextureFormatR32Uint},
	{wgtypes.TextureFormatR32Sint, gputypes.TextureFormatR32Sint},
	{wgtypes.TextureFormatR32Float, gputypes.TextureFormatR32Float},
	{wgtypes.TextureFormatRG16Uint, gputypes.TextureFormatRG16Uint},
	{wgtypes.TextureFormatRG16Sint, gputypes.TextureFormatRG16Sint},
	{wgtypes.TextureFormatRG16Unorm, gputypes.TextureFormatRG16Unorm},
	{wgtypes.TextureFormatRG16Snorm, gputypes.TextureFormatRG16Snorm},
	{wgtypes.TextureFormatRG16Float, gputypes.TextureFormatRG16Float},
	{wgtypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8Unorm},
	{wgtypes.TextureFormatRGBA8UnormSrgb, gputypes.TextureFormatRGBA8UnormSrgb},
	{wgtypes.TextureFormatRGBA8Snorm, gputypes.TextureFormatRGBA8Snorm},
	{wgtypes.TextureFormatRGBA8Uint, gputypes.TextureFormatRGBA8Uint},
	{wgtypes.TextureFormatRGBA8Sint, gputypes.TextureFormatRGBA8Sint},
	{wgtypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatBGRA8Unorm},
	{wgtypes.TextureFormatBGRA8UnormSrgb, gputypes.TextureFormatBGRA8UnormSrgb},
	{wgtypes.TextureFormatRGB9E5Ufloat, gputypes.TextureFormatRGB9E5Ufloat},
	{wgtypes.TextureFormatRGB10A2Uint, gputypes.TextureFormatRGB10A2Uint},
	{wgtypes.TextureFormatRGB10A2Unorm, gputypes.TextureFormatRGB10A2Unorm},
	{wgtypes.TextureFormatRG11B10Ufloat, gputypes.TextureFormatRG11B10Ufloat},
	{wgtypes.TextureFormatRG32Uint, gputypes.TextureFormatRG32Uint},
	{wgtypes.TextureFormatRG32Sint, gputypes.TextureFormatRG32Sint},
	{wgtypes.TextureFormatRG32Float, gputypes.TextureFormatRG32Float},
	{wgtypes.TextureFormatRGBA16Uint, gputypes.TextureFormatRGBA16Uint},
	{wgtypes.TextureFormatRGBA16Sint, gputypes.TextureFormatRGBA16Sint},
	{wgtypes.TextureFormatRGBA16Unorm, gputypes.TextureFormatRGBA16Unorm},
	{wgtypes.TextureFormatRGBA16Snorm, gputypes.TextureFormatRGBA16Snorm},
	{wgtypes.TextureFormatRGBA16Float, gputypes.TextureFormatRGBA16Float},
	{wgtypes.TextureFormatRGBA32Uint, gputypes.TextureFormatRGBA32Uint},
	{wgtypes.TextureFormatRGBA32Sint, gputypes.TextureFormatRGBA32Sint},
	{wgtypes.TextureFormatRGBA32Float, gputypes.TextureFormatRGBA32Float},
	{wgtypes.TextureFormatStencil8, gputypes.TextureFormatStencil8},
	{wgtypes.TextureFormatDepth16Unorm, gputypes.TextureFormatDepth16Unorm},
	{wgtypes.TextureFormatDepth24Plus, gputypes.TextureFormatDepth24Plus},
	{wgtypes.TextureFormatDepth24PlusStencil8, gputypes.TextureFormatDepth24PlusStencil8},
	{wgtypes.TextureFormatDepth32Float, gputypes.TextureFormatDepth32Float},
	{wgtypes.TextureFormatDepth32FloatStencil8, gputypes.TextureFormatDepth32FloatStencil8},
	{wgtypes.TextureFormatBC1RGBAUnorm, gputypes.TextureFormatBC1RGBAUnorm},
	{wgtypes.TextureFormatBC1RGBAUnormSrgb, gputypes.TextureFormatBC1RGBAUnormSrgb},
	{wgtypes.TextureFormatBC2RGBAUnorm, gputypes.TextureFormatBC2RGBAUnorm},
	{wgtypes.TextureFormatBC2RGBAUnormSrgb, gputypes.TextureFormatBC2RGBAUnormSrgb},
	{wgtypes.TextureFormatBC3RGBAUnorm, gputypes.TextureFormatBC3RGBAUnorm},
	{wgtypes.TextureFormatBC3RGBAUnormSrgb, gputypes.TextureFormatBC3RGBAUnormSrgb},
	{wgtypes.TextureFormatBC4RUnorm, gputypes.TextureFormatBC4RUnorm},
	{wgtypes.TextureFormatBC4RSnorm, gputypes.TextureFormatBC4RSnorm},
	{wgtypes.TextureFormatBC5RGUnorm, gputypes.TextureFormatBC5RGUnorm},
	{wgtypes.TextureFormatBC5RGSnorm, gputypes.TextureFormatBC5RGSnorm},
	{wgtypes.TextureFormatBC6HRGBUfloat, gputypes.TextureFormatBC6HRGBUfloat},
	{wgtypes.TextureFormatBC6HRGBFloat, gputypes.TextureFormatBC6HRGBFloat},
	{wgtypes.TextureFormatBC7RGBAUnorm, gputypes.TextureFormatBC7RGBAUnorm},
	{wgtypes.TextureFormatBC7RGBAUnormSrgb, gputypes.TextureFormatBC7RGBAUnormSrgb},
	{wgtypes.TextureFormatETC2RGB8Unorm, gputypes.TextureFormatETC2RGB8Unorm},
	{wgtypes.TextureFormatETC2RGB8UnormSrgb, gputypes.TextureFormatETC2RGB8UnormSrgb},
	{wgtypes.TextureFormatETC2RGB8A1Unorm, gputypes.TextureFormatETC2RGB8A1Unorm},
	{wgtypes.TextureFormatETC2RGB8A1UnormSrgb, gputypes.TextureFormatETC2RGB8A1UnormSrgb},
	{wgtypes.TextureFormatETC2RGBA8Unorm, gputypes.TextureFormatETC2RGBA8Unorm},
	{wgtypes.TextureFormatETC2RGBA8UnormSrgb, gputypes.TextureFormatETC2RGBA8UnormSrgb},
	{wgtypes.TextureFormatEACR11Unorm, gputypes.TextureFormatEACR11Unorm},
	{wgtypes.TextureFormatEACR11Snorm, gputypes.TextureFormatEACR11Snorm},
	{wgtypes.TextureFormatEACRG11Unorm, gputypes.TextureFormatEACRG11Unorm},
	{wgtypes.TextureFormatEACRG11Snorm, gputypes.TextureFormatEACRG11Snorm},
}

var (
	formatsToGPU   = make(map[wgtypes.TextureFormat]gputypes.TextureFormat, len(formatPairs))
	formatsFromGPU = make(map[gputypes.TextureFormat]wgtypes.TextureFormat, len(formatPairs))
)

func init() {
	for _, p := range formatPairs {
		formatsToGPU[p.wg] = p.gpu
		formatsFromGPU[p.gpu] = p.wg
	}
}

// gputypes lays out ASTC as consecutive (unorm, unorm-srgb) pairs in block order.
const (
	gpuASTCFirst = gputypes.TextureFormatASTC4x4Unorm
	gpuASTCLast  = gputypes.TextureFormatASTC12x12UnormSrgb
)

// FormatToGPU returns the gputypes format for f.
// It reports false for NV12, HDR ASTC and invalid formats.
func FormatToGPU(f wgtypes.TextureFormat) (gputypes.TextureFormat, bool) {
	if block, channel, ok := f.ASTC(); ok {
		if channel == wgtypes.AstcChannelHdr {
			return gputypes.TextureFormatUndefined, false
		}
		return gpuASTCFirst + gputypes.TextureFormat(block)*2 + gputypes.TextureFormat(channel), true
	}
	g, ok := formatsToGPU[f]
	return g, ok
}

// FormatFromGPU returns the wgtypes format for g.
// It reports false for TextureFormatUndefined and unknown values.
func FormatFromGPU(g gputypes.TextureFormat) (wgtypes.TextureFormat, bool) {
	if g >= gpuASTCFirst && g <= gpuASTCLast {
		i := g - gpuASTCFirst
		return wgtypes.ASTC(wgtypes.AstcBlock(i/2), wgtypes.AstcChannel(i%2)), true
	}
	f, ok := formatsFromGPU[g]
	return f, ok
}

// AspectToGPU returns the gputypes aspect for a. Plane aspects have no
// gputypes counterpart.
func AspectToGPU(a wgtypes.TextureAspect) (gputypes.TextureAspect, bool) {
	switch a {
	case wgtypes.TextureAspectAll:
		return gputypes.TextureAspectAll, true
	case wgtypes.TextureAspectStencilOnly:
		return gputypes.TextureAspectStencilOnly, true
	case wgtypes.TextureAspectDepthOnly:
		return gputypes.TextureAspectDepthOnly, true
	default:
		return gputypes.TextureAspectUndefined, false
	}
}

// AspectFromGPU returns the wgtypes aspect for a. TextureAspectUndefined
// maps to nil, meaning no aspect was given.
func AspectFromGPU(a gputypes.TextureAspect) (*wgtypes.TextureAspect, bool) {
	switch a {
	case gputypes.TextureAspectUndefined:
		return nil, true
	case gputypes.TextureAspectAll:
		return wgtypes.TextureAspectAll.Ptr(), true
	case gputypes.TextureAspectStencilOnly:
		return wgtypes.TextureAspectStencilOnly.Ptr(), true
	case gputypes.TextureAspectDepthOnly:
		return wgtypes.TextureAspectDepthOnly.Ptr(), true
	default:
		return nil, false
	}
}

// SampleTypeToGPU returns the gputypes sample type for st.
func SampleTypeToGPU(st wgtypes.TextureSampleType) gputypes.TextureSampleType {
	switch st.Kind {
	case wgtypes.SampleKindFloat:
		if st.Filterable {
			return gputypes.TextureSampleTypeFloat
		}
		return gputypes.TextureSampleTypeUnfilterableFloat
	case wgtypes.SampleKindDepth:
		return gputypes.TextureSampleTypeDepth
	case wgtypes.SampleKindSint:
		return gputypes.TextureSampleTypeSint
	case wgtypes.SampleKindUint:
		return gputypes.TextureSampleTypeUint
	default:
		return gputypes.TextureSampleTypeUndefined
	}
}

// SampleTypeFromGPU returns the wgtypes sample type for st.
func SampleTypeFromGPU(st gputypes.TextureSampleType) (wgtypes.TextureSampleType, bool) {
	switch st {
	case gputypes.TextureSampleTypeFloat:
		return wgtypes.SampleTypeFilterableFloat, true
	case gputypes.TextureSampleTypeUnfilterableFloat:
		return wgtypes.SampleTypeUnfilterableFloat, true
	case gputypes.TextureSampleTypeDepth:
		return wgtypes.SampleTypeDepth, true
	case gputypes.TextureSampleTypeSint:
		return wgtypes.SampleTypeSint, true
	case gputypes.TextureSampleTypeUint:
		return wgtypes.SampleTypeUint, true
	default:
		return wgtypes.TextureSampleType{}, false
	}
}

// UsagesToGPU converts a usage set. Unknown bits are dropped.
func UsagesToGPU(u wgtypes.TextureUsages) gputypes.TextureUsage {
	var result gputypes.TextureUsage

	if u&wgtypes.TextureUsageCopySrc != 0 {
		result |= gputypes.TextureUsageCopySrc
	}
	if u&wgtypes.TextureUsageCopyDst != 0 {
		result |= gputypes.TextureUsageCopyDst
	}
	if u&wgtypes.TextureUsageTextureBinding != 0 {
		result |= gputypes.TextureUsageTextureBinding
	}
	if u&wgtypes.TextureUsageStorageBinding != 0 {
		result |= gputypes.TextureUsageStorageBinding
	}
	if u&wgtypes.TextureUsageRenderAttachment != 0 {
		result |= gputypes.TextureUsageRenderAttachment
	}

	return result
}

// UsagesFromGPU converts a usage set. Unknown bits are dropped.
func UsagesFromGPU(u gputypes.TextureUsage) wgtypes.TextureUsages {
	var result wgtypes.TextureUsages

	if u.Contains(gputypes.TextureUsageCopySrc) {
		result |= wgtypes.TextureUsageCopySrc
	}
	if u.Contains(gputypes.TextureUsageCopyDst) {
		result |= wgtypes.TextureUsageCopyDst
	}
	if u.Contains(gputypes.TextureUsageTextureBinding) {
		result |= wgtypes.TextureUsageTextureBinding
	}
	if u.Contains(gputypes.TextureUsageStorageBinding) {
		result |= wgtypes.TextureUsageStorageBinding
	}
	if u.Contains(gputypes.TextureUsageRenderAttachment) {
		result |= wgtypes.TextureUsageRenderAttachment
	}

	return result
}

// featurePairs lists every feature both packages define.
var featurePairs = [...]struct {
	wg  wgtypes.Features
	gpu gputypes.Feature
}{
	{wgtypes.FeatureDepthClipControl, gputypes.FeatureDepthClipControl},
	{wgtypes.FeatureDepth32FloatStencil8, gputypes.FeatureDepth32FloatStencil8},
	{wgtypes.FeatureTextureCompressionBC, gputypes.FeatureTextureCompressionBC},
	{wgtypes.FeatureTextureCompressionETC2, gputypes.FeatureTextureCompressionETC2},
	{wgtypes.FeatureTextureCompressionASTC, gputypes.FeatureTextureCompressionASTC},
	{wgtypes.FeatureIndirectFirstInstance, gputypes.FeatureIndirectFirstInstance},
	{wgtypes.FeatureShaderF16, gputypes.FeatureShaderF16},
	{wgtypes.FeatureRG11B10UfloatRenderable, gputypes.FeatureRG11B10UfloatRenderable},
	{wgtypes.FeatureBGRA8UnormStorage, gputypes.FeatureBGRA8UnormStorage},
	{wgtypes.FeatureFloat32Filterable, gputypes.FeatureFloat32Filterable},
	{wgtypes.FeatureTimestampQuery, gputypes.FeatureTimestampQuery},
	{wgtypes.FeaturePipelineStatisticsQuery, gputypes.FeaturePipelineStatisticsQuery},
	{wgtypes.FeatureMultiDrawIndirect, gputypes.FeatureMultiDrawIndirect},
	{wgtypes.FeatureMultiDrawIndirectCount, gputypes.FeatureMultiDrawIndirectCount},
	{wgtypes.FeaturePushConstants, gputypes.FeaturePushConstants},
	{wgtypes.FeatureTextureAdapterSpecificFormatFeatures, gputypes.FeatureTextureAdapterSpecificFormatFeatures},
	{wgtypes.FeatureShaderF64, gputypes.FeatureShaderFloat64},
	{wgtypes.FeatureVertexAttribute64Bit, gputypes.FeatureVertexAttribute64bit},
	{wgtypes.FeatureSubgroup, gputypes.FeatureSubgroupOperations},
	{wgtypes.FeatureSubgroupBarrier, gputypes.FeatureSubgroupBarrier},
}

// FeaturesFromGPU converts the features an adapter reports. gputypes
// features with no wgtypes counterpart are dropped.
func FeaturesFromGPU(f gputypes.Features) wgtypes.Features {
	var result wgtypes.Features
	for _, p := range featurePairs {
		if f.Contains(p.gpu) {
			result.Insert(p.wg)
		}
	}
	return result
}

// FeaturesToGPU converts a feature set and returns the features that have
// no gputypes counterpart as unmapped.
func FeaturesToGPU(f wgtypes.Features) (result gputypes.Features, unmapped wgtypes.Features) {
	unmapped = f
	for _, p := range featurePairs {
		if f.Contains(p.wg) {
			result.Insert(p.gpu)
			unmapped.Remove(p.wg)
		}
	}
	return result, unmapped
}

// LimitsFromGPU converts adapter limits. Binding sizes larger than
// math.MaxUint32 saturate. gputypes has no subgroup limits, so both stay
// zero, which disables the subgroup comparison.
func LimitsFromGPU(g gputypes.Limits) wgtypes.Limits {
	return wgtypes.Limits{
		MaxTextureDimension1D:                     g.MaxTextureDimension1D,
		MaxTextureDimension2D:                     g.MaxTextureDimension2D,
		MaxTextureDimension3D:                     g.MaxTextureDimension3D,
		MaxTextureArrayLayers:                     g.MaxTextureArrayLayers,
		MaxBindGroups:                             g.MaxBindGroups,
		MaxBindGroupsPlusVertexBuffers:            g.MaxBindGroupsPlusVertexBuffers,
		MaxBindingsPerBindGroup:                   g.MaxBindingsPerBindGroup,
		MaxDynamicUniformBuffersPerPipelineLayout: g.MaxDynamicUniformBuffersPerPipelineLayout,
		MaxDynamicStorageBuffersPerPipelineLayout: g.MaxDynamicStorageBuffersPerPipelineLayout,
		MaxSampledTexturesPerShaderStage:          g.MaxSampledTexturesPerShaderStage,
		MaxSamplersPerShaderStage:                 g.MaxSamplersPerShaderStage,
		MaxStorageBuffersPerShaderStage:           g.MaxStorageBuffersPerShaderStage,
		MaxStorageTexturesPerShaderStage:          g.MaxStorageTexturesPerShaderStage,
		MaxUniformBuffersPerShaderStage:           g.MaxUniformBuffersPerShaderStage,
		MaxUniformBufferBindingSize:               saturate32(g.MaxUniformBufferBindingSize),
		MaxStorageBufferBindingSize:               saturate32(g.MaxStorageBufferBindingSize),
		MaxVertexBuffers:                          g.MaxVertexBuffers,
		MaxBufferSize:                             g.MaxBufferSize,
		MaxVertexAttributes:                       g.MaxVertexAttributes,
		MaxVertexBufferArrayStride:                g.MaxVertexBufferArrayStride,
		MinUniformBufferOffsetAlignment:           g.MinUniformBufferOffsetAlignment,
		MinStorageBufferOffsetAlignment:           g.MinStorageBufferOffsetAlignment,
		MaxInterStageShaderVariables:              g.MaxInterStageShaderVariables,
		MaxColorAttachments:                       g.MaxColorAttachments,
		MaxColorAttachmentBytesPerSample:          g.MaxColorAttachmentBytesPerSample,
		MaxComputeWorkgroupStorageSize:            g.MaxComputeWorkgroupStorageSize,
		MaxComputeInvocationsPerWorkgroup:         g.MaxComputeInvocationsPerWorkgroup,
		MaxComputeWorkgroupSizeX:                  g.MaxComputeWorkgroupSizeX,
		MaxComputeWorkgroupSizeY:                  g.MaxComputeWorkgroupSizeY,
		MaxComputeWorkgroupSizeZ:                  g.MaxComputeWorkgroupSizeZ,
		MaxComputeWorkgroupsPerDimension:          g.MaxComputeWorkgroupsPerDimension,
		MaxPushConstantSize:                       g.MaxPushConstantSize,
		MaxNonSamplerBindings:                     g.MaxNonSamplerBindings,
	}
}

// LimitsToGPU converts limits for a device request. The subgroup limits
// are dropped.
func LimitsToGPU(l wgtypes.Limits) gputypes.Limits {
	return gputypes.Limits{
		MaxTextureDimension1D:                     l.MaxTextureDimension1D,
		MaxTextureDimension2D:                     l.MaxTextureDimension2D,
		MaxTextureDimension3D:                     l.MaxTextureDimension3D,
		MaxTextureArrayLayers:                     l.MaxTextureArrayLayers,
		MaxBindGroups:                             l.MaxBindGroups,
		MaxBindGroupsPlusVertexBuffers:            l.MaxBindGroupsPlusVertexBuffers,
		MaxBindingsPerBindGroup:                   l.MaxBindingsPerBindGroup,
		MaxDynamicUniformBuffersPerPipelineLayout: l.MaxDynamicUniformBuffersPerPipelineLayout,
		MaxDynamicStorageBuffersPerPipelineLayout: l.MaxDynamicStorageBuffersPerPipelineLayout,
		MaxSampledTexturesPerShaderStage:          l.MaxSampledTexturesPerShaderStage,
		MaxSamplersPerShaderStage:                 l.MaxSamplersPerShaderStage,
		MaxStorageBuffersPerShaderStage:           l.MaxStorageBuffersPerShaderStage,
		MaxStorageTexturesPerShaderStage:          l.MaxStorageTexturesPerShaderStage,
		MaxUniformBuffersPerShaderStage:           l.MaxUniformBuffersPerShaderStage,
		MaxUniformBufferBindingSize:               uint64(l.MaxUniformBufferBindingSize),
		MaxStorageBufferBindingSize:               uint64(l.MaxStorageBufferBindingSize),
		MinUniformBufferOffsetAlignment:           l.MinUniformBufferOffsetAlignment,
		MinStorageBufferOffsetAlignment:           l.MinStorageBufferOffsetAlignment,
		MaxVertexBuffers:                          l.MaxVertexBuffers,
		MaxBufferSize:                             l.MaxBufferSize,
		MaxVertexAttributes:                       l.MaxVertexAttributes,
		MaxVertexBufferArrayStride:                l.MaxVertexBufferArrayStride,
		MaxInterStageShaderVariables:              l.MaxInterStageShaderVariables,
		MaxColorAttachments:                       l.MaxColorAttachments,
		MaxColorAttachmentBytesPerSample:          l.MaxColorAttachmentBytesPerSample,
		MaxComputeWorkgroupStorageSize:            l.MaxComputeWorkgroupStorageSize,
		MaxComputeInvocationsPerWorkgroup:         l.MaxComputeInvocationsPerWorkgroup,
		MaxComputeWorkgroupSizeX:                  l.MaxComputeWorkgroupSizeX,
		MaxComputeWorkgroupSizeY:                  l.MaxComputeWorkgroupSizeY,
		MaxComputeWorkgroupSizeZ:                  l.MaxComputeWorkgroupSizeZ,
		MaxComputeWorkgroupsPerDimension:          l.MaxComputeWorkgroupsPerDimension,
		MaxPushConstantSize:                       l.MaxPushConstantSize,
		MaxNonSamplerBindings:                     l.MaxNonSamplerBindings,
	}
}

func saturate32(v uint64) uint32 {
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
