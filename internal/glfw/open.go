// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/unicode/norm"
)

// OpenWindow creates a window and an OpenGL context as described by hints and
// makes the context current.
//
// WGL extensions can only be queried through a current context, and the pixel
// format of a native window can only be set once. The window is therefore
// first created with the baseline capabilities; if the hints ask for anything
// only the probed extensions can provide, that window is destroyed and created
// exactly once more.
func (lib *Library) OpenWindow(hints Hints) (*Window, error) {
	if err := lib.checkAlive(); err != nil {
		return nil, err
	}
	if err := hints.validate(); err != nil {
		return nil, err
	}
	if hints.Width == 0 && hints.Height == 0 {
		hints.Width, hints.Height = 640, 480
	} else if hints.Width == 0 {
		hints.Width = hints.Height * 4 / 3
	} else if hints.Height == 0 {
		hints.Height = hints.Width * 3 / 4
	}
	if err := lib.registerWindowClass(); err != nil {
		return nil, err
	}

	w := &Window{
		lib:        lib,
		title:      norm.NFC.String(hints.Title),
		width:      hints.Width,
		height:     hints.Height,
		fullscreen: hints.Fullscreen,
		resizable:  hints.Resizable,
		keyRepeat:  hints.KeyRepeat,
		hints:      hints,
	}
	w.platform.desiredRefreshRate = hints.RefreshRate

	if w.fullscreen {
		mode, err := lib.setVideoMode(VideoMode{
			Width:        w.width,
			Height:       w.height,
			BitsPerPixel: fullscreenBitsPerPixel(&hints),
			RefreshRate:  hints.RefreshRate,
		})
		if err != nil {
			return nil, err
		}
		lib.monitor.mode = mode
		lib.monitor.modeChanged = true
		w.width, w.height = mode.Width, mode.Height
	}

	w.caps = baselineWGLCaps()
	if err := lib.createWindow(w, &hints); err != nil {
		return nil, lib.abortOpen(w, err)
	}

	recreate, err := needsRecreation(&hints, &w.caps)
	if err != nil {
		return nil, lib.abortOpen(w, err)
	}

	if recreate {
		// Some window hints require us to re-create the context using WGL
		// extensions retrieved through the current context, as we cannot check
		// for WGL extensions or retrieve WGL entry points before we have a
		// current context (actually until we have implicitly loaded the ICD)
		lib.logger.Debug("glfw: recreating window with probed WGL extensions")
		caps := w.caps
		if err := lib.destroyWindow(w); err != nil {
			return nil, lib.abortOpen(w, err)
		}
		w.caps = caps
		if err := lib.createWindow(w, &hints); err != nil {
			return nil, lib.abortOpen(w, err)
		}
	}

	lib.windows = append(lib.windows, w)

	p := lib.platform
	if w.fullscreen {
		// Place the window above all topmost windows
		if err := p.SetWindowPos(w.platform.handle, _HWND_TOPMOST, 0, 0, 0, 0, _SWP_NOMOVE|_SWP_NOSIZE); err != nil {
			lib.logger.Debug("glfw: failed to make the window topmost", "error", err)
		}
	} else if err := p.SetDarkTitleBar(w.platform.handle, !p.AppsUseLightTheme()); err != nil {
		lib.logger.Debug("glfw: failed to apply the title bar theme", "error", err)
	}

	lib.setForegroundWindow(w.platform.handle)
	if err := p.SetFocus(w.platform.handle); err != nil {
		lib.logger.Debug("glfw: SetFocus failed", "error", err)
	}

	return w, nil
}

// needsRecreation decides, from the capabilities probed on the first window,
// whether the hints need a second window.
func needsRecreation(h *Hints, caps *wglCaps) (bool, error) {
	caps.mustBePopulated()
	recreate := false

	if h.versioned() {
		if caps.hasCreateContext {
			recreate = true
		}
	}

	if h.ForwardCompat || h.Debug {
		if !caps.hasCreateContext {
			return false, fmt.Errorf("glfw: forward-compatible and debug contexts need WGL_ARB_create_context: %w", VersionUnavailable)
		}
		recreate = true
	}

	if h.Profile != NoProfile {
		if !caps.hasCreateContextProfile {
			return false, fmt.Errorf("glfw: the %s profile needs WGL_ARB_create_context_profile: %w", h.Profile, VersionUnavailable)
		}
		recreate = true
	}

	if h.Samples > 0 {
		// Multisampling is not a hard constraint, so only recreate when we
		// have both the extension and the means to ask for it
		if caps.hasMultisample && caps.hasPixelFormat {
			recreate = true
		}
	}

	return recreate, nil
}

func (lib *Library) abortOpen(w *Window, cause error) error {
	errs := []error{cause, lib.destroyWindow(w)}
	if w.fullscreen && lib.monitor.modeChanged {
		errs = append(errs, lib.restoreVideoMode())
	}
	return errors.Join(errs...)
}

func (w *Window) windowStyles() (style, exStyle uint32) {
	style = _WS_CLIPSIBLINGS | _WS_CLIPCHILDREN | _WS_VISIBLE
	exStyle = _WS_EX_APPWINDOW

	if w.fullscreen {
		style |= _WS_POPUP
		return style, exStyle
	}

	style |= _WS_OVERLAPPED | _WS_CAPTION | _WS_SYSMENU | _WS_MINIMIZEBOX
	if w.resizable {
		style |= _WS_MAXIMIZEBOX | _WS_SIZEBOX
		exStyle |= _WS_EX_WINDOWEDGE
	}
	return style, exStyle
}

// createWindow creates the native window, its device context and its
// rendering context using w.caps, makes the context current and replaces
// w.caps with the capabilities probed from it. On failure every resource
// created so far is left in w for destroyWindow.
func (lib *Library) createWindow(w *Window, h *Hints) error {
	p := lib.platform

	// Remember window styles (used by getFullWindowSize)
	w.platform.style, w.platform.exStyle = w.windowStyles()

	fullWidth, fullHeight, err := w.getFullWindowSize(w.width, w.height)
	if err != nil {
		return err
	}

	// Fullscreen windows are always opened in the upper left corner
	// regardless of the desktop working area
	var wa _RECT
	if !w.fullscreen {
		if wa, err = p.WorkArea(); err != nil {
			return fmt.Errorf("glfw: failed to read the work area: %w: %w", PlatformError, err)
		}
	}

	lib.creating = w
	handle, err := p.CreateWindow(w.platform.exStyle, w.platform.style, lib.className, w.title,
		int(wa.left), int(wa.top), fullWidth, fullHeight)
	lib.creating = nil
	if err != nil {
		return fmt.Errorf("glfw: failed to create the window: %w: %w", PlatformError, err)
	}
	if w.platform.handle == 0 {
		w.platform.handle = handle
		lib.handleToWindow[handle] = w
	}
	w.xpos, w.ypos = int(wa.left), int(wa.top)

	if w.platform.dc, err = p.GetDC(w.platform.handle); err != nil {
		return fmt.Errorf("glfw: failed to get the device context: %w: %w", PlatformError, err)
	}

	desired := h.fbconfig()
	format, err := lib.choosePixelFormat(w.platform.dc, &w.caps, &desired)
	if err != nil {
		return err
	}

	if err := lib.createContext(w, h, format); err != nil {
		return err
	}

	if err := lib.MakeContextCurrent(w); err != nil {
		return err
	}

	w.caps = lib.probeWGLExtensions(w.platform.dc)

	// Initialize mouse position data
	if pos, err := p.GetCursorPos(); err == nil {
		if err := p.ScreenToClient(w.platform.handle, &pos); err == nil {
			w.platform.oldMouseX, w.mouseX = int(pos.x), int(pos.x)
			w.platform.oldMouseY, w.mouseY = int(pos.y), int(pos.y)
		}
	}

	return nil
}

// destroyWindow releases the native resources of w and keeps the Window
// value reusable for another createWindow.
func (lib *Library) destroyWindow(w *Window) error {
	var errs []error
	p := lib.platform

	if w == lib.currentWindow {
		errs = append(errs, lib.MakeContextCurrent(nil))
	}
	if w == lib.activeWindow {
		lib.activeWindow = nil
	}

	if w.platform.context != 0 {
		if !p.DeleteContext(w.platform.context) {
			errs = append(errs, fmt.Errorf("glfw: wglDeleteContext failed: %w", PlatformError))
		}
		w.platform.context = 0
	}

	if w.platform.dc != 0 {
		p.ReleaseDC(w.platform.handle, w.platform.dc)
		w.platform.dc = 0
	}

	if w.platform.handle != 0 {
		errs = append(errs, p.DestroyWindow(w.platform.handle))
		delete(lib.handleToWindow, w.platform.handle)
		w.platform.handle = 0
	}

	w.caps = baselineWGLCaps()
	return errors.Join(errs...)
}

// CloseWindow destroys w and, for a fullscreen window, restores the desktop
// video mode.
func (lib *Library) CloseWindow(w *Window) error {
	if err := lib.checkAlive(); err != nil {
		return err
	}
	if w == nil {
		return nil
	}
	i := slices.Index(lib.windows, w)
	if i < 0 {
		return nil
	}

	if w == lib.cursorLockWindow {
		if w == lib.activeWindow {
			lib.showMouseCursor(w)
		}
		lib.cursorLockWindow = nil
	}
	if w.cursorMode == CursorHidden {
		lib.platform.ShowCursor(true)
	}

	errs := []error{lib.destroyWindow(w)}
	lib.windows = slices.Delete(lib.windows, i, i+1)

	if w.fullscreen && lib.monitor.modeChanged {
		errs = append(errs, lib.restoreVideoMode())
	}
	return errors.Join(errs...)
}

// setForegroundWindow focuses the window and brings it to the top of the
// stack, working around the foreground lock of SetForegroundWindow.
func (lib *Library) setForegroundWindow(hwnd _HWND) {
	p := lib.platform

	// Try the standard approach first...
	_ = p.BringWindowToTop(hwnd)
	p.SetForegroundWindow(hwnd)

	if p.GetForegroundWindow() != hwnd {
		// Iconify and restore, a few times, with the zoom animations off
		oldAnimate := p.MinMaxAnimation()
		if oldAnimate {
			_ = p.SetMinMaxAnimation(false)
		}

		for try := 0; try <= 3; try++ {
			p.ShowWindow(hwnd, _SW_HIDE)
			p.ShowWindow(hwnd, _SW_SHOWMINIMIZED)
			p.ShowWindow(hwnd, _SW_SHOWNORMAL)

			_ = p.BringWindowToTop(hwnd)
			p.SetForegroundWindow(hwnd)
			if p.GetForegroundWindow() == hwnd {
				break
			}
		}

		if oldAnimate {
			_ = p.SetMinMaxAnimation(true)
		}
	}

	// Since this is now hopefully the foreground process, we are probably
	// allowed to modify the lock timeout
	if err := p.ResetForegroundLockTimeout(); err != nil {
		lib.logger.Debug("glfw: failed to reset the foreground lock timeout", "error", err)
	}
}
