// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

type (
	KeyCallback            func(w *Window, key Key, action Action)
	CharCallback           func(w *Window, char rune)
	MouseButtonCallback    func(w *Window, button MouseButton, action Action)
	CursorPosCallback      func(w *Window, x, y int)
	ScrollCallback         func(w *Window, xoff, yoff float64)
	FocusCallback          func(w *Window, focused bool)
	SizeCallback           func(w *Window, width, height int)
	PosCallback            func(w *Window, x, y int)
	IconifyCallback        func(w *Window, iconified bool)
	RefreshCallback        func(w *Window)
	CloseCallback          func(w *Window) bool
	windowCallbacksStorage struct {
		key         KeyCallback
		char        CharCallback
		mouseButton MouseButtonCallback
		cursorPos   CursorPosCallback
		scroll      ScrollCallback
		focus       FocusCallback
		size        SizeCallback
		pos         PosCallback
		iconify     IconifyCallback
		refresh     RefreshCallback
		close       CloseCallback
	}
)

// Window is an open native window and its OpenGL context.
type Window struct {
	lib *Library

	title       string
	width       int
	height      int
	xpos        int
	ypos        int
	fullscreen  bool
	resizable   bool
	keyRepeat   bool
	iconified   bool
	shouldClose bool
	refreshRate int

	closeRequested bool
	cursorMode     CursorMode
	mouseX         int
	mouseY         int
	keys           [KeyLast + 1]Action
	mouseButtons   [MouseButtonLast + 1]Action

	accelerated bool
	params      FBConfig

	hints    Hints
	caps     wglCaps
	platform platformWindow

	callbacks windowCallbacksStorage
}

type platformWindow struct {
	handle  _HWND
	dc      _HDC
	context _HGLRC
	style   uint32
	exStyle uint32

	oldMouseX          int
	oldMouseY          int
	mouseMoved         bool
	desiredRefreshRate int
}

func (w *Window) inputKey(key Key, action Action) {
	if key < 0 || key > KeyLast {
		return
	}

	// Are we trying to release an already released key?
	if action == Release && w.keys[key] != Press {
		return
	}

	repeat := action == Press && w.keys[key] == Press
	w.keys[key] = action

	if w.callbacks.key != nil && (w.keyRepeat || !repeat) {
		w.callbacks.key(w, key, action)
	}
}

// releaseShift reports a release of both shift keys, since the system
// collapses them into one generic shift-up message.
func (w *Window) releaseShift() {
	for _, key := range [...]Key{KeyLeftShift, KeyRightShift} {
		w.keys[key] = Release
		if w.callbacks.key != nil {
			w.callbacks.key(w, key, Release)
		}
	}
}

func (w *Window) inputChar(c rune) {
	if !((c >= 32 && c <= 126) || c >= 160) {
		return
	}
	if w.callbacks.char != nil {
		w.callbacks.char(w, c)
	}
}

func (w *Window) inputMouseClick(button MouseButton, action Action) {
	if button < 0 || button > MouseButtonLast {
		return
	}
	w.mouseButtons[button] = action
	if w.callbacks.mouseButton != nil {
		w.callbacks.mouseButton(w, button, action)
	}
}

func (w *Window) inputCursorPos() {
	if w.callbacks.cursorPos != nil {
		w.callbacks.cursorPos(w, w.mouseX, w.mouseY)
	}
}

func (w *Window) inputScroll(xoff, yoff float64) {
	if w.callbacks.scroll != nil {
		w.callbacks.scroll(w, xoff, yoff)
	}
}

func (w *Window) inputWindowFocus(activated bool) {
	lib := w.lib
	if activated {
		if lib.activeWindow != w {
			lib.activeWindow = w
			if w.callbacks.focus != nil {
				w.callbacks.focus(w, true)
			}
		}
		return
	}

	if lib.activeWindow != w {
		return
	}

	// Release all pressed keyboard keys
	for key := Key(0); key <= KeyLast; key++ {
		if w.keys[key] == Press {
			w.inputKey(key, Release)
		}
	}

	// Release all pressed mouse buttons
	for button := MouseButton(0); button <= MouseButtonLast; button++ {
		if w.mouseButtons[button] == Press {
			w.inputMouseClick(button, Release)
		}
	}

	lib.activeWindow = nil
	if w.callbacks.focus != nil {
		w.callbacks.focus(w, false)
	}
}

func (w *Window) inputWindowSize(width, height int) {
	w.width, w.height = width, height
	if w.callbacks.size != nil {
		w.callbacks.size(w, width, height)
	}
}

func (w *Window) inputWindowPos(x, y int) {
	w.xpos, w.ypos = x, y
	if w.callbacks.pos != nil {
		w.callbacks.pos(w, x, y)
	}
}

func (w *Window) inputWindowIconify(iconified bool) {
	if w.iconified == iconified {
		return
	}
	w.iconified = iconified
	if w.callbacks.iconify != nil {
		w.callbacks.iconify(w, iconified)
	}
}

func (w *Window) inputWindowDamage() {
	if w.callbacks.refresh != nil {
		w.callbacks.refresh(w)
	}
}

func (w *Window) SetKeyCallback(cb KeyCallback) (previous KeyCallback) {
	w.callbacks.key, previous = cb, w.callbacks.key
	return previous
}

func (w *Window) SetCharCallback(cb CharCallback) (previous CharCallback) {
	w.callbacks.char, previous = cb, w.callbacks.char
	return previous
}

func (w *Window) SetMouseButtonCallback(cb MouseButtonCallback) (previous MouseButtonCallback) {
	w.callbacks.mouseButton, previous = cb, w.callbacks.mouseButton
	return previous
}

func (w *Window) SetCursorPosCallback(cb CursorPosCallback) (previous CursorPosCallback) {
	w.callbacks.cursorPos, previous = cb, w.callbacks.cursorPos
	return previous
}

func (w *Window) SetScrollCallback(cb ScrollCallback) (previous ScrollCallback) {
	w.callbacks.scroll, previous = cb, w.callbacks.scroll
	return previous
}

func (w *Window) SetFocusCallback(cb FocusCallback) (previous FocusCallback) {
	w.callbacks.focus, previous = cb, w.callbacks.focus
	return previous
}

func (w *Window) SetSizeCallback(cb SizeCallback) (previous SizeCallback) {
	w.callbacks.size, previous = cb, w.callbacks.size
	return previous
}

func (w *Window) SetPosCallback(cb PosCallback) (previous PosCallback) {
	w.callbacks.pos, previous = cb, w.callbacks.pos
	return previous
}

func (w *Window) SetIconifyCallback(cb IconifyCallback) (previous IconifyCallback) {
	w.callbacks.iconify, previous = cb, w.callbacks.iconify
	return previous
}

func (w *Window) SetRefreshCallback(cb RefreshCallback) (previous RefreshCallback) {
	w.callbacks.refresh, previous = cb, w.callbacks.refresh
	return previous
}

// SetCloseCallback sets the callback consulted when the user asks to close
// the window. Returning false keeps the window open.
func (w *Window) SetCloseCallback(cb CloseCallback) (previous CloseCallback) {
	w.callbacks.close, previous = cb, w.callbacks.close
	return previous
}

// ShouldClose reports whether a close request was accepted.
func (w *Window) ShouldClose() bool {
	return w.shouldClose
}

// SetShouldClose sets or clears the accepted close request.
func (w *Window) SetShouldClose(value bool) {
	w.shouldClose = value
}

func (w *Window) GetSize() (width, height int) {
	return w.width, w.height
}

func (w *Window) GetPos() (x, y int) {
	return w.xpos, w.ypos
}

func (w *Window) GetCursorPos() (x, y int) {
	return w.mouseX, w.mouseY
}

func (w *Window) GetKey(key Key) Action {
	if key < 0 || key > KeyLast {
		return Release
	}
	return w.keys[key]
}

func (w *Window) GetMouseButton(button MouseButton) Action {
	if button < 0 || button > MouseButtonLast {
		return Release
	}
	return w.mouseButtons[button]
}

func (w *Window) GetTitle() string {
	return w.title
}

func (w *Window) Iconified() bool {
	return w.iconified
}

func (w *Window) Fullscreen() bool {
	return w.fullscreen
}

// Focused reports whether the window is the active window.
func (w *Window) Focused() bool {
	return w.lib.activeWindow == w
}

// Accelerated reports whether the context is hardware accelerated, as of the
// last RefreshWindowParams.
func (w *Window) Accelerated() bool {
	return w.accelerated
}

// Framebuffer returns the framebuffer parameters read by the last
// RefreshWindowParams.
func (w *Window) Framebuffer() FBConfig {
	return w.params
}

// RefreshRate returns the display refresh rate read by the last
// RefreshWindowParams, or 0 when unknown.
func (w *Window) RefreshRate() int {
	return w.refreshRate
}

func (w *Window) SetTitle(title string) error {
	if err := w.lib.checkAlive(); err != nil {
		return err
	}
	title = norm.NFC.String(title)
	if err := w.lib.platform.SetWindowText(w.platform.handle, title); err != nil {
		return fmt.Errorf("glfw: failed to set the window title: %w: %w", PlatformError, err)
	}
	w.title = title
	return nil
}

// SetSize resizes the client area. In fullscreen the video mode closest to
// the new size is applied, keeping the current depth and desired refresh rate.
func (w *Window) SetSize(width, height int) error {
	if err := w.lib.checkAlive(); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("glfw: invalid window size %dx%d: %w", width, height, InvalidValue)
	}
	p := w.lib.platform
	const flags = _SWP_NOOWNERZORDER | _SWP_NOMOVE | _SWP_NOZORDER

	if w.fullscreen {
		sizeChanged := false
		if width > w.width || height > w.height {
			// The new video mode is larger than the current one, so we resize
			// the window before switch modes to avoid exposing whatever is
			// underneath
			if err := p.SetWindowPos(w.platform.handle, _HWND_TOP, 0, 0, width, height, flags); err != nil {
				return fmt.Errorf("glfw: failed to resize the window: %w: %w", PlatformError, err)
			}
			sizeChanged = true
		}

		mode := w.lib.monitor.mode
		mode.Width, mode.Height = width, height
		mode.RefreshRate = w.platform.desiredRefreshRate
		applied, err := w.lib.setVideoMode(mode)
		if err != nil {
			return err
		}
		w.lib.monitor.mode = applied
		w.lib.monitor.modeChanged = true

		if sizeChanged {
			return nil
		}
		if err := p.SetWindowPos(w.platform.handle, _HWND_TOP, 0, 0, applied.Width, applied.Height, flags); err != nil {
			return fmt.Errorf("glfw: failed to resize the window: %w: %w", PlatformError, err)
		}
		return nil
	}

	// If we are in windowed mode, adjust the window size to
	// compensate for window decorations
	fullWidth, fullHeight, err := w.getFullWindowSize(width, height)
	if err != nil {
		return err
	}
	if err := p.SetWindowPos(w.platform.handle, _HWND_TOP, 0, 0, fullWidth, fullHeight, flags); err != nil {
		return fmt.Errorf("glfw: failed to resize the window: %w: %w", PlatformError, err)
	}
	return nil
}

func (w *Window) SetPos(x, y int) error {
	if err := w.lib.checkAlive(); err != nil {
		return err
	}
	if err := w.lib.platform.SetWindowPos(w.platform.handle, _HWND_TOP, x, y, 0, 0, _SWP_NOOWNERZORDER|_SWP_NOSIZE|_SWP_NOZORDER); err != nil {
		return fmt.Errorf("glfw: failed to move the window: %w: %w", PlatformError, err)
	}
	return nil
}

func (w *Window) Iconify() {
	w.lib.platform.ShowWindow(w.platform.handle, _SW_MINIMIZE)
}

func (w *Window) Restore() {
	w.lib.platform.ShowWindow(w.platform.handle, _SW_RESTORE)
}

// Close destroys the window. It is the same as Library.CloseWindow.
func (w *Window) Close() error {
	return w.lib.CloseWindow(w)
}
