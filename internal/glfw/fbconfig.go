// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import "math"

// FBConfig describes one usable framebuffer configuration. PlatformID is the
// 1-based pixel format index it was enumerated from.
type FBConfig struct {
	RedBits        int
	GreenBits      int
	BlueBits       int
	AlphaBits      int
	DepthBits      int
	StencilBits    int
	AccumRedBits   int
	AccumGreenBits int
	AccumBlueBits  int
	AccumAlphaBits int
	AuxBuffers     int
	Stereo         bool
	Samples        int
	PlatformID     int
}

// FBConfigChooser returns the candidate closest to desired, or nil when none
// is acceptable.
type FBConfigChooser func(desired *FBConfig, candidates []FBConfig) *FBConfig

func squaredDiff(desired, current int) int {
	if desired <= 0 {
		return 0
	}
	return (desired - current) * (desired - current)
}

// ChooseFBConfig treats stereo as a hard constraint and then prefers, in
// order, the fewest missing buffers, the closest colour channel depths and
// the closest depths of every other buffer.
func ChooseFBConfig(desired *FBConfig, candidates []FBConfig) *FBConfig {
	leastMissing := math.MaxInt
	leastColorDiff := math.MaxInt
	leastExtraDiff := math.MaxInt
	var closest *FBConfig

	for i := range candidates {
		current := &candidates[i]

		if desired.Stereo && !current.Stereo {
			continue
		}

		missing := 0
		if desired.AlphaBits > 0 && current.AlphaBits == 0 {
			missing++
		}
		if desired.DepthBits > 0 && current.DepthBits == 0 {
			missing++
		}
		if desired.StencilBits > 0 && current.StencilBits == 0 {
			missing++
		}
		if desired.AuxBuffers > 0 && current.AuxBuffers < desired.AuxBuffers {
			missing += desired.AuxBuffers - current.AuxBuffers
		}
		if desired.Samples > 0 && current.Samples == 0 {
			// Technically, several multisampling buffers could be
			// involved, but that's a lower level implementation detail and
			// not important to us here, so we count them as one
			missing++
		}

		colorDiff := squaredDiff(desired.RedBits, current.RedBits) +
			squaredDiff(desired.GreenBits, current.GreenBits) +
			squaredDiff(desired.BlueBits, current.BlueBits)

		extraDiff := squaredDiff(desired.AlphaBits, current.AlphaBits) +
			squaredDiff(desired.DepthBits, current.DepthBits) +
			squaredDiff(desired.StencilBits, current.StencilBits) +
			squaredDiff(desired.AccumRedBits, current.AccumRedBits) +
			squaredDiff(desired.AccumGreenBits, current.AccumGreenBits) +
			squaredDiff(desired.AccumBlueBits, current.AccumBlueBits) +
			squaredDiff(desired.AccumAlphaBits, current.AccumAlphaBits) +
			squaredDiff(desired.Samples, current.Samples)

		switch {
		case missing < leastMissing:
			closest = current
		case missing == leastMissing:
			if colorDiff < leastColorDiff || (colorDiff == leastColorDiff && extraDiff < leastExtraDiff) {
				closest = current
			}
		}

		if current == closest {
			leastMissing = missing
			leastColorDiff = colorDiff
			leastExtraDiff = extraDiff
		}
	}

	return closest
}
