// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgtypes

import "errors"

// Limits is a set of numeric bounds on resources a device may create.
//
// Most fields are maxima: a request is satisfied when it is at most the
// allowed value. The two buffer offset alignments and MinSubgroupSize are
// minima: a request is satisfied when it is at least the allowed value.
type Limits struct {
	MaxTextureDimension1D                     uint32 `json:"maxTextureDimension1D"`
	MaxTextureDimension2D                     uint32 `json:"maxTextureDimension2D"`
	MaxTextureDimension3D                     uint32 `json:"maxTextureDimension3D"`
	MaxTextureArrayLayers                     uint32 `json:"maxTextureArrayLayers"`
	MaxBindGroups                             uint32 `json:"maxBindGroups"`
	MaxBindGroupsPlusVertexBuffers            uint32 `json:"maxBindGroupsPlusVertexBuffers"`
	MaxBindingsPerBindGroup                   uint32 `json:"maxBindingsPerBindGroup"`
	MaxDynamicUniformBuffersPerPipelineLayout uint32 `json:"maxDynamicUniformBuffersPerPipelineLayout"`
	MaxDynamicStorageBuffersPerPipelineLayout uint32 `json:"maxDynamicStorageBuffersPerPipelineLayout"`
	MaxSampledTexturesPerShaderStage          uint32 `json:"maxSampledTexturesPerShaderStage"`
	MaxSamplersPerShaderStage                 uint32 `json:"maxSamplersPerShaderStage"`
	MaxStorageBuffersPerShaderStage           uint32 `json:"maxStorageBuffersPerShaderStage"`
	MaxStorageTexturesPerShaderStage          uint32 `json:"maxStorageTexturesPerShaderStage"`
	MaxUniformBuffersPerShaderStage           uint32 `json:"maxUniformBuffersPerShaderStage"`
	MaxUniformBufferBindingSize               uint32 `json:"maxUniformBufferBindingSize"`
	MaxStorageBufferBindingSize               uint32 `json:"maxStorageBufferBindingSize"`
	MaxVertexBuffers                          uint32 `json:"maxVertexBuffers"`
	MaxBufferSize                             uint64 `json:"maxBufferSize"`
	MaxVertexAttributes                       uint32 `json:"maxVertexAttributes"`
	MaxVertexBufferArrayStride                uint32 `json:"maxVertexBufferArrayStride"`
	// MinUniformBufferOffsetAlignment is a minimum; larger requests pass.
	MinUniformBufferOffsetAlignment uint32 `json:"minUniformBufferOffsetAlignment"`
	// MinStorageBufferOffsetAlignment is a minimum; larger requests pass.
	MinStorageBufferOffsetAlignment   uint32 `json:"minStorageBufferOffsetAlignment"`
	MaxInterStageShaderVariables      uint32 `json:"maxInterStageShaderVariables"`
	MaxColorAttachments               uint32 `json:"maxColorAttachments"`
	MaxColorAttachmentBytesPerSample  uint32 `json:"maxColorAttachmentBytesPerSample"`
	MaxComputeWorkgroupStorageSize    uint32 `json:"maxComputeWorkgroupStorageSize"`
	MaxComputeInvocationsPerWorkgroup uint32 `json:"maxComputeInvocationsPerWorkgroup"`
	MaxComputeWorkgroupSizeX          uint32 `json:"maxComputeWorkgroupSizeX"`
	MaxComputeWorkgroupSizeY          uint32 `json:"maxComputeWorkgroupSizeY"`
	MaxComputeWorkgroupSizeZ          uint32 `json:"maxComputeWorkgroupSizeZ"`
	MaxComputeWorkgroupsPerDimension  uint32 `json:"maxComputeWorkgroupsPerDimension"`
	// MinSubgroupSize and MaxSubgroupSize are only compared when both
	// requested values are non-zero. Zero means no preference.
	MinSubgroupSize       uint32 `json:"minSubgroupSize"`
	MaxSubgroupSize       uint32 `json:"maxSubgroupSize"`
	MaxPushConstantSize   uint32 `json:"maxPushConstantSize"`
	MaxNonSamplerBindings uint32 `json:"maxNonSamplerBindings"`
}

// DefaultLimits returns the limits every WebGPU implementation supports.
func DefaultLimits() Limits {
	return Limits{
		MaxTextureDimension1D:                     8192,
		MaxTextureDimension2D:                     8192,
		MaxTextureDimension3D:                     2048,
		MaxTextureArrayLayers:                     256,
		MaxBindGroups:                             4,
		MaxBindGroupsPlusVertexBuffers:            24,
		MaxBindingsPerBindGroup:                   1000,
		MaxDynamicUniformBuffersPerPipelineLayout: 8,
		MaxDynamicStorageBuffersPerPipelineLayout: 4,
		MaxSampledTexturesPerShaderStage:          16,
		MaxSamplersPerShaderStage:                 16,
		MaxStorageBuffersPerShaderStage:           8,
		MaxStorageTexturesPerShaderStage:          4,
		MaxUniformBuffersPerShaderStage:           12,
		MaxUniformBufferBindingSize:               64 << 10,
		MaxStorageBufferBindingSize:               128 << 20,
		MaxVertexBuffers:                          8,
		MaxBufferSize:                             256 << 20,
		MaxVertexAttributes:                       16,
		MaxVertexBufferArrayStride:                2048,
		MinUniformBufferOffsetAlignment:           256,
		MinStorageBufferOffsetAlignment:           256,
		MaxInterStageShaderVariables:              16,
		MaxColorAttachments:                       8,
		MaxColorAttachmentBytesPerSample:          32,
		MaxComputeWorkgroupStorageSize:            16384,
		MaxComputeInvocationsPerWorkgroup:         256,
		MaxComputeWorkgroupSizeX:                  256,
		MaxComputeWorkgroupSizeY:                  256,
		MaxComputeWorkgroupSizeZ:                  64,
		MaxComputeWorkgroupsPerDimension:          65535,
		MinSubgroupSize:                           0,
		MaxSubgroupSize:                           0,
		MaxPushConstantSize:                       0,
		MaxNonSamplerBindings:                     1_000_000,
	}
}

// DownlevelLimits returns limits that older hardware such as
// DirectX 11 class devices can support.
func DownlevelLimits() Limits {
	l := DefaultLimits()
	l.MaxTextureDimension1D = 2048
	l.MaxTextureDimension2D = 2048
	l.MaxTextureDimension3D = 256
	l.MaxStorageBuffersPerShaderStage = 4
	l.MaxUniformBufferBindingSize = 16 << 10
	l.MaxComputeWorkgroupStorageSize = 16352
	return l
}

// DownlevelWebGL2Limits returns limits a WebGL2 context can support.
// Compute and storage resources are unavailable.
func DownlevelWebGL2Limits() Limits {
	l := DownlevelLimits()
	l.MaxUniformBuffersPerShaderStage = 11
	l.MaxStorageBuffersPerShaderStage = 0
	l.MaxStorageTexturesPerShaderStage = 0
	l.MaxDynamicStorageBuffersPerPipelineLayout = 0
	l.MaxStorageBufferBindingSize = 0
	l.MaxVertexBufferArrayStride = 255
	l.MaxComputeWorkgroupStorageSize = 0
	l.MaxComputeInvocationsPerWorkgroup = 0
	l.MaxComputeWorkgroupSizeX = 0
	l.MaxComputeWorkgroupSizeY = 0
	l.MaxComputeWorkgroupSizeZ = 0
	l.MaxComputeWorkgroupsPerDimension = 0
	l.MaxInterStageShaderVariables = 7
	return l
}

// UsingResolution returns l with the 1D and 2D texture size limits taken
// from other, typically the adapter's limits.
func (l Limits) UsingResolution(other Limits) Limits {
	l.MaxTextureDimension1D = other.MaxTextureDimension1D
	l.MaxTextureDimension2D = other.MaxTextureDimension2D
	return l
}

// UsingAlignment returns l with the buffer offset alignments taken from
// other, typically the adapter's limits.
func (l Limits) UsingAlignment(other Limits) Limits {
	l.MinUniformBufferOffsetAlignment = other.MinUniformBufferOffsetAlignment
	l.MinStorageBufferOffsetAlignment = other.MinStorageBufferOffsetAlignment
	return l
}

type limitDirection uint8

const (
	// limitMax passes when requested <= allowed.
	limitMax limitDirection = iota
	// limitMin passes when requested >= allowed.
	limitMin
)

type limitCheck struct {
	name     string
	dir      limitDirection
	subgroup bool
	get      func(*Limits) uint64
}

// limitChecks is the comparison table in check order. Each entry names
// its direction explicitly.
var limitChecks = [...]limitCheck{
	{name: "MaxTextureDimension1D", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxTextureDimension1D) }},
	{name: "MaxTextureDimension2D", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxTextureDimension2D) }},
	{name: "MaxTextureDimension3D", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxTextureDimension3D) }},
	{name: "MaxTextureArrayLayers", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxTextureArrayLayers) }},
	{name: "MaxBindGroups", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxBindGroups) }},
	{name: "MaxBindGroupsPlusVertexBuffers", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxBindGroupsPlusVertexBuffers) }},
	{name: "MaxBindingsPerBindGroup", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxBindingsPerBindGroup) }},
	{name: "MaxDynamicUniformBuffersPerPipelineLayout", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxDynamicUniformBuffersPerPipelineLayout) }},
	{name: "MaxDynamicStorageBuffersPerPipelineLayout", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxDynamicStorageBuffersPerPipelineLayout) }},
	{name: "MaxSampledTexturesPerShaderStage", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxSampledTexturesPerShaderStage) }},
	{name: "MaxSamplersPerShaderStage", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxSamplersPerShaderStage) }},
	{name: "MaxStorageBuffersPerShaderStage", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxStorageBuffersPerShaderStage) }},
	{name: "MaxStorageTexturesPerShaderStage", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxStorageTexturesPerShaderStage) }},
	{name: "MaxUniformBuffersPerShaderStage", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxUniformBuffersPerShaderStage) }},
	{name: "MaxUniformBufferBindingSize", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxUniformBufferBindingSize) }},
	{name: "MaxStorageBufferBindingSize", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxStorageBufferBindingSize) }},
	{name: "MaxVertexBuffers", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxVertexBuffers) }},
	{name: "MaxBufferSize", dir: limitMax, get: func(l *Limits) uint64 { return l.MaxBufferSize }},
	{name: "MaxVertexAttributes", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxVertexAttributes) }},
	{name: "MaxVertexBufferArrayStride", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxVertexBufferArrayStride) }},
	{name: "MinUniformBufferOffsetAlignment", dir: limitMin, get: func(l *Limits) uint64 { return uint64(l.MinUniformBufferOffsetAlignment) }},
	{name: "MinStorageBufferOffsetAlignment", dir: limitMin, get: func(l *Limits) uint64 { return uint64(l.MinStorageBufferOffsetAlignment) }},
	{name: "MaxInterStageShaderVariables", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxInterStageShaderVariables) }},
	{name: "MaxColorAttachments", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxColorAttachments) }},
	{name: "MaxColorAttachmentBytesPerSample", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxColorAttachmentBytesPerSample) }},
	{name: "MaxComputeWorkgroupStorageSize", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxComputeWorkgroupStorageSize) }},
	{name: "MaxComputeInvocationsPerWorkgroup", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxComputeInvocationsPerWorkgroup) }},
	{name: "MaxComputeWorkgroupSizeX", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxComputeWorkgroupSizeX) }},
	{name: "MaxComputeWorkgroupSizeY", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxComputeWorkgroupSizeY) }},
	{name: "MaxComputeWorkgroupSizeZ", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxComputeWorkgroupSizeZ) }},
	{name: "MaxComputeWorkgroupsPerDimension", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxComputeWorkgroupsPerDimension) }},
	{name: "MinSubgroupSize", dir: limitMin, subgroup: true, get: func(l *Limits) uint64 { return uint64(l.MinSubgroupSize) }},
	{name: "MaxSubgroupSize", dir: limitMax, subgroup: true, get: func(l *Limits) uint64 { return uint64(l.MaxSubgroupSize) }},
	{name: "MaxPushConstantSize", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxPushConstantSize) }},
	{name: "MaxNonSamplerBindings", dir: limitMax, get: func(l *Limits) uint64 { return uint64(l.MaxNonSamplerBindings) }},
}

// LimitNames returns the names of all limits in check order.
func LimitNames() []string {
	names := make([]string, len(limitChecks))
	for i := range limitChecks {
		names[i] = limitChecks[i].name
	}
	return names
}

// IsMinimum reports whether the named limit is a minimum, so that larger
// requested values pass.
func IsMinimum(name string) bool {
	for i := range limitChecks {
		if limitChecks[i].name == name {
			return limitChecks[i].dir == limitMin
		}
	}
	return false
}

// Value returns the named limit widened to uint64.
func (l Limits) Value(name string) (uint64, bool) {
	for i := range limitChecks {
		if limitChecks[i].name == name {
			return limitChecks[i].get(&l), true
		}
	}
	return 0, false
}

// CheckLimitsWithFailFn compares l, the requested limits, against allowed
// in a fixed order and calls fail for every incompatible field with the
// field name and both values. When fatal is true it stops after the first
// failure.
//
// The subgroup size pair is skipped unless both requested values are
// non-zero. A nil fail still walks the table and reports nothing.
func (l Limits) CheckLimitsWithFailFn(allowed Limits, fatal bool, fail func(name string, requested, allowed uint64)) {
	checkSubgroup := l.MinSubgroupSize > 0 && l.MaxSubgroupSize > 0
	for i := range limitChecks {
		c := &limitChecks[i]
		if c.subgroup && !checkSubgroup {
			continue
		}
		req, allow := c.get(&l), c.get(&allowed)
		var ok bool
		switch c.dir {
		case limitMax:
			ok = req <= allow
		case limitMin:
			ok = req >= allow
		}
		if ok {
			continue
		}
		if fail != nil {
			fail(c.name, req, allow)
		}
		if fatal {
			return
		}
	}
}

// CheckLimits reports whether every requested limit in l is compatible
// with allowed.
func (l Limits) CheckLimits(allowed Limits) bool {
	ok := true
	l.CheckLimitsWithFailFn(allowed, true, func(string, uint64, uint64) {
		ok = false
	})
	return ok
}

// Check compares l against allowed and returns every incompatible field
// as a *LimitError, joined with errors.Join. It returns nil when all
// fields are compatible.
func (l Limits) Check(allowed Limits) error {
	var errs []error
	log := Logger()
	l.CheckLimitsWithFailFn(allowed, false, func(name string, requested, allowed uint64) {
		log.Debug("limit check failed", "limit", name, "requested", requested, "allowed", allowed)
		errs = append(errs, &LimitError{Limit: name, Requested: requested, Allowed: allowed})
	})
	return errors.Join(errs...)
}
