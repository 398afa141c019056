// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import "fmt"

// Profile selects the OpenGL context profile.
type Profile int

const (
	NoProfile Profile = iota
	CoreProfile
	CompatProfile
	ES2Profile
)

func (p Profile) String() string {
	switch p {
	case NoProfile:
		return "none"
	case CoreProfile:
		return "core"
	case CompatProfile:
		return "compat"
	case ES2Profile:
		return "es2"
	default:
		return fmt.Sprintf("Profile(%d)", int(p))
	}
}

// Hints describes the window, framebuffer and context to open.
type Hints struct {
	Title       string
	Width       int
	Height      int
	Fullscreen  bool
	Resizable   bool
	RefreshRate int
	KeyRepeat   bool

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

	GLMajor       int
	GLMinor       int
	Profile       Profile
	ForwardCompat bool
	Debug         bool

	// Share is the window whose context shares objects with the new one.
	Share *Window
}

// DefaultHints returns a resizable 640x480 window with a 1.0 context and an
// 8 bit RGBA, 24 bit depth, 8 bit stencil framebuffer.
func DefaultHints() Hints {
	return Hints{
		Title:       "GLFW",
		Width:       640,
		Height:      480,
		Resizable:   true,
		RedBits:     8,
		GreenBits:   8,
		BlueBits:    8,
		AlphaBits:   8,
		DepthBits:   24,
		StencilBits: 8,
		GLMajor:     1,
		GLMinor:     0,
	}
}

func (h *Hints) versioned() bool {
	return h.GLMajor != 1 || h.GLMinor != 0
}

func (h *Hints) validate() error {
	if h.Width < 0 || h.Height < 0 {
		return fmt.Errorf("glfw: invalid window size %dx%d: %w", h.Width, h.Height, InvalidValue)
	}
	if h.GLMajor < 1 || h.GLMinor < 0 {
		return fmt.Errorf("glfw: invalid OpenGL version %d.%d: %w", h.GLMajor, h.GLMinor, InvalidValue)
	}
	if h.Samples < 0 || h.AuxBuffers < 0 {
		return fmt.Errorf("glfw: invalid framebuffer hints: %w", InvalidValue)
	}
	switch h.Profile {
	case NoProfile:
	case ES2Profile:
		if h.GLMajor != 2 {
			return fmt.Errorf("glfw: the OpenGL ES 2 profile requires version 2.x, got %d.%d: %w", h.GLMajor, h.GLMinor, InvalidValue)
		}
	case CoreProfile, CompatProfile:
		if h.GLMajor < 3 || (h.GLMajor == 3 && h.GLMinor < 2) {
			return fmt.Errorf("glfw: context profiles require OpenGL 3.2 or later, got %d.%d: %w", h.GLMajor, h.GLMinor, InvalidValue)
		}
	default:
		return fmt.Errorf("glfw: invalid profile %s: %w", h.Profile, InvalidValue)
	}
	if h.ForwardCompat && h.GLMajor < 3 {
		return fmt.Errorf("glfw: forward compatibility requires OpenGL 3.0 or later: %w", InvalidValue)
	}
	return nil
}

func (h *Hints) fbconfig() FBConfig {
	return FBConfig{
		RedBits:        h.RedBits,
		GreenBits:      h.GreenBits,
		BlueBits:       h.BlueBits,
		AlphaBits:      h.AlphaBits,
		DepthBits:      h.DepthBits,
		StencilBits:    h.StencilBits,
		AccumRedBits:   h.AccumRedBits,
		AccumGreenBits: h.AccumGreenBits,
		AccumBlueBits:  h.AccumBlueBits,
		AccumAlphaBits: h.AccumAlphaBits,
		AuxBuffers:     h.AuxBuffers,
		Stereo:         h.Stereo,
		Samples:        h.Samples,
	}
}
