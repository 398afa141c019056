// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// wglCaps records which optional WGL extensions a window's context exposes,
// together with the entry points resolved for them. A window owns its caps;
// they are rebuilt whenever the native window is recreated.
type wglCaps struct {
	populated bool

	getExtensionsStringEXT func() string
	getExtensionsStringARB func(dc _HDC) string

	hasMultisample             bool
	hasCreateContext           bool
	hasCreateContextProfile    bool
	hasCreateContextES2Profile bool
	hasSwapControl             bool
	hasPixelFormat             bool

	createContextAttribsARB   func(dc _HDC, share _HGLRC, attribs []int32) _HGLRC
	swapIntervalEXT           func(interval int) bool
	getPixelFormatAttribivARB func(dc _HDC, format int, attribs []int32, values []int32) bool
}

// baselineWGLCaps is the capability set used before any context exists: only
// DescribePixelFormat and wglCreateContext are available.
func baselineWGLCaps() wglCaps {
	return wglCaps{populated: true}
}

func (c *wglCaps) mustBePopulated() {
	if !c.populated {
		panic("glfw: WGL capabilities consulted before they were probed")
	}
}

// extensionsString returns the WGL extension string of dc, or "" when
// neither query entry point is available.
func (c *wglCaps) extensionsString(dc _HDC) string {
	if c.getExtensionsStringEXT != nil {
		return c.getExtensionsStringEXT()
	}
	if c.getExtensionsStringARB != nil {
		return c.getExtensionsStringARB(dc)
	}
	return ""
}

// probeWGLExtensions must be called with the window's context current.
func (lib *Library) probeWGLExtensions(dc _HDC) wglCaps {
	var caps wglCaps
	caps.populated = true

	caps.getExtensionsStringEXT = lib.platform.GetExtensionsStringEXTProc()
	if caps.getExtensionsStringEXT == nil {
		caps.getExtensionsStringARB = lib.platform.GetExtensionsStringARBProc()
		if caps.getExtensionsStringARB == nil {
			lib.logger.Debug("glfw: no WGL extension string entry point")
			return caps
		}
	}

	extensions := caps.extensionsString(dc)
	supported := func(name string) bool {
		return lib.extensionSupported(extensions, name)
	}

	if supported("WGL_ARB_multisample") {
		caps.hasMultisample = true
	}

	if supported("WGL_ARB_create_context") {
		caps.createContextAttribsARB = lib.platform.CreateContextAttribsARBProc()
		if caps.createContextAttribsARB != nil {
			caps.hasCreateContext = true
		}
	}

	if caps.hasCreateContext {
		if supported("WGL_ARB_create_context_profile") {
			caps.hasCreateContextProfile = true
		}
	}

	if caps.hasCreateContext && caps.hasCreateContextProfile {
		if supported("WGL_EXT_create_context_es2_profile") {
			caps.hasCreateContextES2Profile = true
		}
	}

	if supported("WGL_EXT_swap_control") {
		caps.swapIntervalEXT = lib.platform.SwapIntervalEXTProc()
		if caps.swapIntervalEXT != nil {
			caps.hasSwapControl = true
		}
	}

	if supported("WGL_ARB_pixel_format") {
		caps.getPixelFormatAttribivARB = lib.platform.GetPixelFormatAttribivARBProc()
		if caps.getPixelFormatAttribivARB != nil {
			caps.hasPixelFormat = true
		}
	}

	lib.logger.Debug("glfw: probed WGL extensions",
		"multisample", caps.hasMultisample,
		"createContext", caps.hasCreateContext,
		"profile", caps.hasCreateContextProfile,
		"es2Profile", caps.hasCreateContextES2Profile,
		"swapControl", caps.hasSwapControl,
		"pixelFormat", caps.hasPixelFormat)

	return caps
}

// extensionSupported reports whether name appears as a whole word in
// extensions. The word set of each distinct extension string is parsed once.
func (lib *Library) extensionSupported(extensions, name string) bool {
	if name == "" || strings.ContainsRune(name, ' ') {
		return false
	}
	key := xxhash.Sum64String(extensions)
	words, ok := lib.extensionWords[key]
	if !ok {
		fields := strings.Fields(extensions)
		words = make(map[string]struct{}, len(fields))
		for _, f := range fields {
			words[f] = struct{}{}
		}
		lib.extensionWords[key] = words
	}
	_, ok = words[name]
	return ok
}

// ExtensionSupported reports whether the current context exposes the named
// WGL extension.
func (lib *Library) ExtensionSupported(name string) (bool, error) {
	if err := lib.checkAlive(); err != nil {
		return false, err
	}
	w := lib.currentWindow
	if w == nil {
		return false, nil
	}
	return lib.extensionSupported(w.caps.extensionsString(w.platform.dc), name), nil
}
