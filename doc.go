// Package wgtypes provides the backend-agnostic texture format, capability
// and limit vocabulary of a WebGPU-style API, together with the rules that
// relate them.
//
// # Overview
//
// wgtypes answers the questions a device-validation layer asks before it
// creates a resource:
//
//   - What byte layout does a format have for a given aspect?
//     See [TextureFormat.BlockDimensions] and [TextureFormat.BlockCopySize].
//   - Which concrete format does one aspect of a combined depth-stencil or
//     multi-planar format address? See [TextureFormat.AspectSpecificFormat].
//   - What does a shader see when sampling it? See [TextureFormat.SampleType].
//   - Which usages and flags are guaranteed once some features are enabled?
//     See [TextureFormat.GuaranteedFormatFeatures].
//   - Are the requested limits within what an adapter allows?
//     See [Limits.CheckLimits] and [Limits.Check].
//
// # Quick Start
//
//	import "github.com/gogpu/wgtypes"
//
//	f := wgtypes.TextureFormatDepth32FloatStencil8
//	st, ok := f.SampleType(wgtypes.TextureAspectDepthOnly.Ptr(), nil)
//	// st == wgtypes.SampleTypeDepth, ok == true
//
//	caps := f.GuaranteedFormatFeatures(wgtypes.FeatureDepth32FloatStencil8)
//	fmt.Println(caps.AllowedUsages, caps.Flags.SupportedSampleCounts())
//
//	if err := requested.Check(adapterLimits); err != nil {
//	    // err joins one *LimitError per incompatible field
//	}
//
// # Absence
//
// Classification functions never fail. A (format, aspect) pair that has no
// meaning, such as a combined depth-stencil format queried without an
// aspect, reports false in its second result. Optional arguments are
// pointers; nil means "not supplied".
//
// # Encoding
//
// [TextureFormat] and [TextureAspect] encode as fixed lowercase tokens
// ("depth24plus-stencil8", "astc-8x5-unorm-srgb", "stencil-only").
// Bit sets encode to JSON as their raw integer and keep unknown bits;
// ContainsUnknownBits reports them.
//
// # Subpackages
//
//   - gpubridge converts to and from github.com/gogpu/gputypes
//   - shaderbridge relates formats to naga IR storage formats and image types
//   - cache memoizes guaranteed format features per feature set
//   - cmd/wgpuinfo probes an adapter and prints its formats and limits
//
// # Concurrency
//
// Every function is pure and safe for concurrent use. The limit preset
// registry and the logger are synchronized.
package wgtypes

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
