// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"
	_ "github.com/gogpu/wgpu/hal/allbackends" // register Vulkan, Metal, DX12, GLES

	"github.com/gogpu/wgtypes"
	"github.com/gogpu/wgtypes/gpubridge"
)

// adapterProbe is what wgpuinfo reads from an adapter.
type adapterProbe struct {
	Info     gputypes.AdapterInfo
	Features wgtypes.Features
	Limits   wgtypes.Limits
}

// probeAdapter requests an adapter and reads its properties. With mock set
// no backend is touched and wgpu's mock adapter is used instead.
func probeAdapter(mock bool, power gputypes.PowerPreference) (adapterProbe, error) {
	desc := gputypes.DefaultInstanceDescriptor()
	var instance *core.Instance
	if mock {
		instance = core.NewInstanceWithMock(&desc)
	} else {
		instance = core.NewInstance(&desc)
	}
	defer instance.Destroy()

	log := wgtypes.Logger()
	log.Info("requesting adapter", "mock", instance.IsMock(), "power", power.String())

	adapterID, err := instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: power,
	})
	if err != nil {
		return adapterProbe{}, fmt.Errorf("request adapter: %w", err)
	}
	defer func() {
		if err := core.AdapterDrop(adapterID); err != nil {
			log.Warn("release adapter", "err", err)
		}
	}()

	info, err := core.GetAdapterInfo(adapterID)
	if err != nil {
		return adapterProbe{}, err
	}
	features, err := core.GetAdapterFeatures(adapterID)
	if err != nil {
		return adapterProbe{}, err
	}
	limits, err := core.GetAdapterLimits(adapterID)
	if err != nil {
		return adapterProbe{}, err
	}

	log.Info("adapter selected",
		"name", info.Name,
		"backend", info.Backend.String(),
		"type", info.DeviceType.String())

	return adapterProbe{
		Info:     info,
		Features: gpubridge.FeaturesFromGPU(features),
		Limits:   gpubridge.LimitsFromGPU(limits),
	}, nil
}
