// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import (
	"fmt"
	"math"
)

// VideoMode is a display mode of the primary monitor.
type VideoMode struct {
	Width        int
	Height       int
	BitsPerPixel int
	RefreshRate  int
}

// RGBBits splits the mode's colour depth into red, green and blue bits.
func (m VideoMode) RGBBits() (red, green, blue int) {
	return bppToRGB(m.BitsPerPixel)
}

func bppToRGB(bpp int) (red, green, blue int) {
	// We assume that by 32 they really meant 24
	if bpp == 32 {
		bpp = 24
	}

	red, green, blue = bpp/3, bpp/3, bpp/3
	delta := bpp - red*3
	if delta >= 1 {
		green++
	}
	if delta == 2 {
		red++
	}
	return red, green, blue
}

// fullscreenBitsPerPixel derives the video mode depth from the requested
// colour channels.
func fullscreenBitsPerPixel(h *Hints) int {
	bpp := h.RedBits + h.GreenBits + h.BlueBits
	if bpp < 15 || bpp >= 24 {
		bpp = 32
	}
	return bpp
}

// closestVideoMode prefers the closest size, then the closest depth, then
// the closest refresh rate. A zero refresh rate matches any.
func closestVideoMode(modes []VideoMode, desired VideoMode) (VideoMode, bool) {
	leastSize := math.MaxInt
	leastDepth := math.MaxInt
	leastRate := math.MaxInt
	var closest VideoMode
	found := false

	for _, m := range modes {
		dw := m.Width - desired.Width
		dh := m.Height - desired.Height
		size := dw*dw + dh*dh

		depth := m.BitsPerPixel - desired.BitsPerPixel
		if depth < 0 {
			depth = -depth
		}

		rate := 0
		if desired.RefreshRate > 0 {
			rate = m.RefreshRate - desired.RefreshRate
			if rate < 0 {
				rate = -rate
			}
		}

		if size < leastSize ||
			(size == leastSize && depth < leastDepth) ||
			(size == leastSize && depth == leastDepth && rate < leastRate) {
			closest = m
			leastSize, leastDepth, leastRate = size, depth, rate
			found = true
		}
	}

	return closest, found
}

// setVideoMode applies the available mode closest to desired and returns it.
func (lib *Library) setVideoMode(desired VideoMode) (VideoMode, error) {
	modes, err := lib.platform.VideoModes()
	if err != nil {
		return VideoMode{}, fmt.Errorf("glfw: failed to enumerate video modes: %w: %w", PlatformError, err)
	}
	mode, ok := closestVideoMode(modes, desired)
	if !ok {
		return VideoMode{}, fmt.Errorf("glfw: no video mode available: %w", PlatformError)
	}
	if err := lib.platform.SetVideoMode(mode); err != nil {
		return VideoMode{}, fmt.Errorf("glfw: failed to set video mode %dx%d: %w: %w", mode.Width, mode.Height, PlatformError, err)
	}
	lib.logger.Debug("glfw: set video mode", "width", mode.Width, "height", mode.Height, "bpp", mode.BitsPerPixel, "refresh", mode.RefreshRate)
	return mode, nil
}

func (lib *Library) restoreVideoMode() error {
	if err := lib.platform.RestoreVideoMode(); err != nil {
		return fmt.Errorf("glfw: failed to restore the desktop video mode: %w: %w", PlatformError, err)
	}
	lib.monitor.modeChanged = false
	return nil
}

// VideoModes returns the display modes of the primary monitor.
func (lib *Library) VideoModes() ([]VideoMode, error) {
	if err := lib.checkAlive(); err != nil {
		return nil, err
	}
	modes, err := lib.platform.VideoModes()
	if err != nil {
		return nil, fmt.Errorf("glfw: failed to enumerate video modes: %w: %w", PlatformError, err)
	}
	return modes, nil
}

// DesktopMode returns the current display mode of the primary monitor.
func (lib *Library) DesktopMode() (VideoMode, error) {
	if err := lib.checkAlive(); err != nil {
		return VideoMode{}, err
	}
	mode, err := lib.platform.CurrentVideoMode()
	if err != nil {
		return VideoMode{}, fmt.Errorf("glfw: failed to read the video mode: %w: %w", PlatformError, err)
	}
	return mode, nil
}
