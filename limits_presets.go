// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgtypes

import (
	"slices"

	"github.com/gogpu/gpucontext"
)

// Built-in limit preset names, most capable first.
const (
	PresetWebGPU          = "webgpu"
	PresetDownlevel       = "downlevel"
	PresetDownlevelWebGL2 = "downlevel-webgl2"
)

var limitPresetPriority = []string{PresetWebGPU, PresetDownlevel, PresetDownlevelWebGL2}

var limitPresets = gpucontext.NewRegistry[Limits](
	gpucontext.WithPriority(limitPresetPriority...),
)

func init() {
	limitPresets.Register(PresetWebGPU, DefaultLimits)
	limitPresets.Register(PresetDownlevel, DownlevelLimits)
	limitPresets.Register(PresetDownlevelWebGL2, DownlevelWebGL2Limits)
}

// RegisterLimitPreset adds or replaces a named limit preset. The factory is
// called on every lookup, so it must return a fresh value.
func RegisterLimitPreset(name string, factory func() Limits) {
	Logger().Debug("limit preset registered", "name", name, "replaced", limitPresets.Has(name))
	limitPresets.Register(name, factory)
}

// LookupLimits returns the limits of the named preset.
func LookupLimits(name string) (Limits, bool) {
	if !limitPresets.Has(name) {
		return Limits{}, false
	}
	return limitPresets.Get(name), true
}

// LimitPresetNames returns every registered preset name: the built-in
// presets first, most capable first, then the others in lexical order.
func LimitPresetNames() []string {
	available := limitPresets.Available()
	names := make([]string, 0, len(available))
	for _, name := range limitPresetPriority {
		if slices.Contains(available, name) {
			names = append(names, name)
		}
	}
	var extra []string
	for _, name := range available {
		if !slices.Contains(limitPresetPriority, name) {
			extra = append(extra, name)
		}
	}
	slices.Sort(extra)
	return append(names, extra...)
}

// BestLimitPreset returns the first preset, in LimitPresetNames order,
// whose limits are all within supported. It reports false if none fits.
func BestLimitPreset(supported Limits) (string, Limits, bool) {
	for _, name := range LimitPresetNames() {
		l, ok := LookupLimits(name)
		if !ok {
			continue
		}
		if l.CheckLimits(supported) {
			return name, l, true
		}
	}
	return "", Limits{}, false
}

// DefaultLimitPreset returns the most capable registered preset.
func DefaultLimitPreset() (string, Limits) {
	name := limitPresets.BestName()
	l, _ := LookupLimits(name)
	return name, l
}
