// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import (
	"fmt"
	"unsafe"
)

// buildContextAttribs returns the zero-terminated attribute list for
// wglCreateContextAttribsARB.
func buildContextAttribs(h *Hints, caps *wglCaps) ([]int32, error) {
	attribs := make([]int32, 0, 7)

	if h.versioned() {
		// Request an explicitly versioned context
		attribs = append(attribs,
			_WGL_CONTEXT_MAJOR_VERSION_ARB, int32(h.GLMajor),
			_WGL_CONTEXT_MINOR_VERSION_ARB, int32(h.GLMinor))
	}

	if h.ForwardCompat || h.Debug {
		var flags int32
		if h.ForwardCompat {
			flags |= _WGL_CONTEXT_FORWARD_COMPATIBLE_BIT_ARB
		}
		if h.Debug {
			flags |= _WGL_CONTEXT_DEBUG_BIT_ARB
		}
		attribs = append(attribs, _WGL_CONTEXT_FLAGS_ARB, flags)
	}

	if h.Profile != NoProfile {
		if !caps.hasCreateContextProfile {
			return nil, fmt.Errorf("glfw: WGL_ARB_create_context_profile is unavailable: %w", VersionUnavailable)
		}
		if h.Profile == ES2Profile && !caps.hasCreateContextES2Profile {
			return nil, fmt.Errorf("glfw: WGL_EXT_create_context_es2_profile is unavailable: %w", VersionUnavailable)
		}

		var mask int32
		switch h.Profile {
		case CoreProfile:
			mask = _WGL_CONTEXT_CORE_PROFILE_BIT_ARB
		case CompatProfile:
			mask = _WGL_CONTEXT_COMPATIBILITY_PROFILE_BIT_ARB
		case ES2Profile:
			mask = _WGL_CONTEXT_ES2_PROFILE_BIT_EXT
		}
		attribs = append(attribs, _WGL_CONTEXT_PROFILE_MASK_ARB, mask)
	}

	return append(attribs, 0), nil
}

// createContext sets the pixel format of the window's device context and
// creates a rendering context on it. The pixel format of a native window can
// only be set once.
func (lib *Library) createContext(w *Window, h *Hints, format int) error {
	p := lib.platform
	dc := w.platform.dc

	var share _HGLRC
	if h.Share != nil {
		share = h.Share.platform.context
	}

	var pfd _PIXELFORMATDESCRIPTOR
	pfd.nSize = uint16(unsafe.Sizeof(pfd))
	pfd.nVersion = 1
	if p.DescribePixelFormat(dc, format, &pfd) == 0 {
		return fmt.Errorf("glfw: failed to describe pixel format %d: %w", format, OpenGLUnavailable)
	}
	if !p.SetPixelFormat(dc, format, &pfd) {
		return fmt.Errorf("glfw: failed to set pixel format %d: %w", format, OpenGLUnavailable)
	}

	if w.caps.hasCreateContext {
		// Use the newer wglCreateContextAttribsARB creation method
		attribs, err := buildContextAttribs(h, &w.caps)
		if err != nil {
			return err
		}
		w.platform.context = w.caps.createContextAttribsARB(dc, share, attribs)
		if w.platform.context == 0 {
			return fmt.Errorf("glfw: failed to create OpenGL %d.%d %s context: %w", h.GLMajor, h.GLMinor, h.Profile, VersionUnavailable)
		}
		lib.logger.Debug("glfw: created context with attributes", "major", h.GLMajor, "minor", h.GLMinor, "profile", h.Profile.String())
		return nil
	}

	w.platform.context = p.CreateContext(dc)
	if w.platform.context == 0 {
		return fmt.Errorf("glfw: wglCreateContext failed: %w", PlatformError)
	}
	if share != 0 {
		if !p.ShareLists(share, w.platform.context) {
			return fmt.Errorf("glfw: wglShareLists failed: %w", PlatformError)
		}
	}
	lib.logger.Debug("glfw: created baseline context")
	return nil
}

// MakeContextCurrent makes the context of w current on the calling thread.
// A nil window detaches the current context.
func (lib *Library) MakeContextCurrent(w *Window) error {
	if err := lib.checkAlive(); err != nil {
		return err
	}
	var ok bool
	if w != nil {
		ok = lib.platform.MakeCurrent(w.platform.dc, w.platform.context)
	} else {
		ok = lib.platform.MakeCurrent(0, 0)
	}
	if !ok {
		return fmt.Errorf("glfw: wglMakeCurrent failed: %w", PlatformError)
	}
	lib.currentWindow = w
	return nil
}

// SwapBuffers swaps the front and back buffers of the current window.
func (lib *Library) SwapBuffers() error {
	if err := lib.checkAlive(); err != nil {
		return err
	}
	w := lib.currentWindow
	if w == nil {
		return fmt.Errorf("glfw: no current context: %w", InvalidValue)
	}
	if !lib.platform.SwapBuffers(w.platform.dc) {
		return fmt.Errorf("glfw: SwapBuffers failed: %w", PlatformError)
	}
	return nil
}

// SwapInterval sets the number of vertical retraces to wait for before a
// swap. It does nothing when WGL_EXT_swap_control is missing.
func (lib *Library) SwapInterval(interval int) error {
	if err := lib.checkAlive(); err != nil {
		return err
	}
	w := lib.currentWindow
	if w == nil {
		return fmt.Errorf("glfw: no current context: %w", InvalidValue)
	}
	if w.caps.hasSwapControl {
		w.caps.swapIntervalEXT(interval)
	}
	return nil
}

// RefreshWindowParams reads the live framebuffer parameters, acceleration
// and display refresh rate of the current window.
func (lib *Library) RefreshWindowParams() error {
	if err := lib.checkAlive(); err != nil {
		return err
	}
	w := lib.currentWindow
	if w == nil {
		return fmt.Errorf("glfw: no current context: %w", InvalidValue)
	}

	format := lib.platform.GetPixelFormat(w.platform.dc)
	q := newAttribQuery(lib, w.platform.dc, &w.caps)

	w.accelerated = q.attrib(format, _WGL_ACCELERATION_ARB) != _WGL_NO_ACCELERATION_ARB
	w.params = FBConfig{
		RedBits:        q.attrib(format, _WGL_RED_BITS_ARB),
		GreenBits:      q.attrib(format, _WGL_GREEN_BITS_ARB),
		BlueBits:       q.attrib(format, _WGL_BLUE_BITS_ARB),
		AlphaBits:      q.attrib(format, _WGL_ALPHA_BITS_ARB),
		DepthBits:      q.attrib(format, _WGL_DEPTH_BITS_ARB),
		StencilBits:    q.attrib(format, _WGL_STENCIL_BITS_ARB),
		AccumRedBits:   q.attrib(format, _WGL_ACCUM_RED_BITS_ARB),
		AccumGreenBits: q.attrib(format, _WGL_ACCUM_GREEN_BITS_ARB),
		AccumBlueBits:  q.attrib(format, _WGL_ACCUM_BLUE_BITS_ARB),
		AccumAlphaBits: q.attrib(format, _WGL_ACCUM_ALPHA_BITS_ARB),
		AuxBuffers:     q.attrib(format, _WGL_AUX_BUFFERS_ARB),
		Stereo:         q.attrib(format, _WGL_STEREO_ARB) != 0,
		PlatformID:     format,
	}

	if w.caps.hasPixelFormat && w.caps.hasMultisample {
		w.params.Samples = q.attrib(format, _WGL_SAMPLES_ARB)

		// We force 1 to zero here because all the other APIs say zero when
		// they really mean 1
		if w.params.Samples == 1 {
			w.params.Samples = 0
		}
	}

	w.refreshRate = 0
	if mode, err := lib.platform.CurrentVideoMode(); err == nil && mode.RefreshRate > 1 {
		w.refreshRate = mode.RefreshRate
	}
	return nil
}
