// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import "fmt"

func (lib *Library) clipCursorToWindow(w *Window) {
	rect, err := lib.platform.GetWindowRect(w.platform.handle)
	if err != nil {
		lib.logger.Debug("glfw: GetWindowRect failed", "error", err)
		return
	}
	if err := lib.platform.ClipCursor(&rect); err != nil {
		lib.logger.Debug("glfw: ClipCursor failed", "error", err)
	}
}

// hideMouseCursor hides the cursor, confines it to w and captures it.
func (lib *Library) hideMouseCursor(w *Window) {
	lib.platform.ShowCursor(false)
	lib.clipCursorToWindow(w)
	lib.platform.SetCapture(w.platform.handle)
}

// showMouseCursor undoes hideMouseCursor.
func (lib *Library) showMouseCursor(w *Window) {
	if err := lib.platform.ReleaseCapture(); err != nil {
		lib.logger.Debug("glfw: ReleaseCapture failed", "error", err)
	}
	if err := lib.platform.ClipCursor(nil); err != nil {
		lib.logger.Debug("glfw: ClipCursor failed", "error", err)
	}
	lib.platform.ShowCursor(true)
}

// setMouseCursorPos moves the system cursor to a client position of w.
func (lib *Library) setMouseCursorPos(w *Window, x, y int) error {
	pos := _POINT{x: int32(x), y: int32(y)}
	if err := lib.platform.ClientToScreen(w.platform.handle, &pos); err != nil {
		return fmt.Errorf("glfw: ClientToScreen failed: %w: %w", PlatformError, err)
	}
	if err := lib.platform.SetCursorPos(pos.x, pos.y); err != nil {
		return fmt.Errorf("glfw: SetCursorPos failed: %w: %w", PlatformError, err)
	}
	return nil
}

// SetCursorPos moves the cursor to a client position. While the cursor is
// captured only the reported position changes.
func (w *Window) SetCursorPos(x, y int) error {
	lib := w.lib
	if err := lib.checkAlive(); err != nil {
		return err
	}
	if lib.activeWindow != w {
		return nil
	}

	w.mouseX, w.mouseY = x, y
	if lib.cursorLockWindow == w {
		return nil
	}

	w.platform.oldMouseX, w.platform.oldMouseY = x, y
	return lib.setMouseCursorPos(w, x, y)
}

// CursorMode returns the current cursor mode of the window.
func (w *Window) CursorMode() CursorMode {
	return w.cursorMode
}

// SetCursorMode changes how the cursor behaves over the window.
func (w *Window) SetCursorMode(mode CursorMode) error {
	lib := w.lib
	if err := lib.checkAlive(); err != nil {
		return err
	}
	if mode < CursorNormal || mode > CursorCaptured {
		return fmt.Errorf("glfw: invalid cursor mode %d: %w", mode, InvalidValue)
	}
	if w.cursorMode == mode {
		return nil
	}
	old := w.cursorMode
	w.cursorMode = mode

	switch old {
	case CursorCaptured:
		if lib.cursorLockWindow == w {
			if lib.activeWindow == w {
				lib.showMouseCursor(w)
			}
			lib.cursorLockWindow = nil
		}
		w.platform.oldMouseX, w.platform.oldMouseY = w.mouseX, w.mouseY
		if lib.activeWindow == w {
			if err := lib.setMouseCursorPos(w, w.mouseX, w.mouseY); err != nil {
				return err
			}
		}
	case CursorHidden:
		lib.platform.ShowCursor(true)
	}

	switch mode {
	case CursorCaptured:
		if lib.cursorLockWindow != nil && lib.cursorLockWindow != w {
			if err := lib.cursorLockWindow.SetCursorMode(CursorNormal); err != nil {
				return err
			}
		}
		lib.cursorLockWindow = w
		if lib.activeWindow == w {
			lib.hideMouseCursor(w)
			w.platform.oldMouseX, w.platform.oldMouseY = w.width/2, w.height/2
			if err := lib.setMouseCursorPos(w, w.width/2, w.height/2); err != nil {
				return err
			}
		}
	case CursorHidden:
		lib.platform.ShowCursor(false)
	}
	return nil
}
