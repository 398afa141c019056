// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

func (lib *Library) windowProc(hWnd _HWND, uMsg uint32, wParam _WPARAM, lParam _LPARAM) uintptr {
	p := lib.platform

	window := lib.handleToWindow[hWnd]
	if window == nil {
		// Bind the window being created to its handle as soon as the
		// system announces it
		if uMsg == _WM_NCCREATE && lib.creating != nil {
			window = lib.creating
			window.platform.handle = hWnd
			lib.handleToWindow[hWnd] = window
		}
		return p.DefWindowProc(hWnd, uMsg, wParam, lParam)
	}

	switch uMsg {
	case _WM_ACTIVATE:
		active := _LOWORD(uint32(wParam)) != _WA_INACTIVE
		iconified := _HIWORD(uint32(wParam)) != 0

		if active && iconified {
			// This is a workaround for window iconification using the
			// taskbar leading to windows being told they're active and
			// iconified and then never told they're deactivated
			active = false
		}

		if !active && lib.activeWindow == window {
			// The window was deactivated (or iconified, see above)
			if window == lib.cursorLockWindow {
				lib.showMouseCursor(window)
			}

			if window.fullscreen {
				if !iconified {
					// Iconify the (on top, borderless, oddly positioned)
					// window or the user will be annoyed
					window.Iconify()
				}

				if lib.monitor.modeChanged {
					if err := lib.restoreVideoMode(); err != nil {
						lib.logger.Error("glfw: restoring the video mode on deactivation", "error", err)
					}
				}
			}
		} else if active && lib.activeWindow != window {
			// The window was activated
			if window == lib.cursorLockWindow {
				lib.hideMouseCursor(window)
			}

			if window.fullscreen && !lib.monitor.modeChanged {
				mode, err := lib.setVideoMode(lib.monitor.mode)
				if err != nil {
					lib.logger.Error("glfw: applying the video mode on activation", "error", err)
				} else {
					lib.monitor.mode = mode
					lib.monitor.modeChanged = true
				}
			}
		}

		window.inputWindowFocus(active)
		window.inputWindowIconify(iconified)
		return 0

	case _WM_SYSCOMMAND:
		switch wParam & 0xfff0 {
		case _SC_SCREENSAVE, _SC_MONITORPOWER:
			if window.fullscreen {
				// We are running in full screen mode, so disallow
				// screen saver and screen blanking
				return 0
			}
		// User trying to access application menu using ALT?
		case _SC_KEYMENU:
			return 0
		}

	case _WM_CLOSE:
		// Flag this window for closing (handled in PollEvents)
		window.closeRequested = true
		return 0

	case _WM_KEYDOWN, _WM_SYSKEYDOWN:
		window.inputKey(lib.translateQueuedKey(wParam, lParam), Press)

		if window.callbacks.char != nil {
			window.translateChar(wParam, lParam)
		}
		return 0

	case _WM_KEYUP, _WM_SYSKEYUP:
		// HACK: Release both Shift keys on Shift up event, as when both
		//       are pressed the first release does not emit any event
		// NOTE: The other half of this is in PollEvents
		if wParam == _VK_SHIFT {
			window.releaseShift()
		} else {
			window.inputKey(lib.translateQueuedKey(wParam, lParam), Release)
		}
		return 0

	case _WM_LBUTTONDOWN, _WM_RBUTTONDOWN, _WM_MBUTTONDOWN, _WM_XBUTTONDOWN, _WM_LBUTTONUP, _WM_RBUTTONUP, _WM_MBUTTONUP, _WM_XBUTTONUP:
		var button MouseButton
		if uMsg == _WM_LBUTTONDOWN || uMsg == _WM_LBUTTONUP {
			button = MouseButtonLeft
		} else if uMsg == _WM_RBUTTONDOWN || uMsg == _WM_RBUTTONUP {
			button = MouseButtonRight
		} else if uMsg == _WM_MBUTTONDOWN || uMsg == _WM_MBUTTONUP {
			button = MouseButtonMiddle
		} else if _GET_XBUTTON_WPARAM(wParam) == _XBUTTON1 {
			button = MouseButton4
		} else if _GET_XBUTTON_WPARAM(wParam) == _XBUTTON2 {
			button = MouseButton5
		} else {
			return 1
		}

		if uMsg == _WM_LBUTTONDOWN || uMsg == _WM_RBUTTONDOWN || uMsg == _WM_MBUTTONDOWN || uMsg == _WM_XBUTTONDOWN {
			p.SetCapture(hWnd)
			window.inputMouseClick(button, Press)
		} else {
			if err := p.ReleaseCapture(); err != nil {
				lib.logger.Debug("glfw: ReleaseCapture failed", "error", err)
			}
			window.inputMouseClick(button, Release)
		}

		if uMsg == _WM_XBUTTONDOWN || uMsg == _WM_XBUTTONUP {
			return 1
		}
		return 0

	case _WM_MOUSEMOVE:
		x := _GET_X_LPARAM(lParam)
		y := _GET_Y_LPARAM(lParam)

		if x != window.platform.oldMouseX || y != window.platform.oldMouseY {
			if window == lib.cursorLockWindow {
				window.mouseX += x - window.platform.oldMouseX
				window.mouseY += y - window.platform.oldMouseY
			} else {
				window.mouseX = x
				window.mouseY = y
			}

			window.platform.oldMouseX = x
			window.platform.oldMouseY = y
			window.platform.mouseMoved = true

			window.inputCursorPos()
		}
		return 0

	case _WM_MOUSEWHEEL:
		window.inputScroll(0, float64(_GET_WHEEL_DELTA_WPARAM(wParam))/_WHEEL_DELTA)
		return 0

	case _WM_MOUSEHWHEEL:
		// This message is only sent on Windows Vista and later
		window.inputScroll(float64(_GET_WHEEL_DELTA_WPARAM(wParam))/_WHEEL_DELTA, 0)
		return 0

	case _WM_SIZE:
		if window == lib.cursorLockWindow {
			lib.clipCursorToWindow(window)
		}
		window.inputWindowSize(int(_LOWORD(uint32(lParam))), int(_HIWORD(uint32(lParam))))
		return 0

	case _WM_MOVE:
		if window == lib.cursorLockWindow {
			lib.clipCursorToWindow(window)
		}
		window.inputWindowPos(_GET_X_LPARAM(lParam), _GET_Y_LPARAM(lParam))
		return 0

	case _WM_PAINT:
		// Validation of the update region is left to DefWindowProc
		window.inputWindowDamage()
	}

	return p.DefWindowProc(hWnd, uMsg, wParam, lParam)
}

// translateQueuedKey translates the key message being dispatched, peeking at
// the next queued message when a left Ctrl press may be half of Alt Gr.
func (lib *Library) translateQueuedKey(wParam _WPARAM, lParam _LPARAM) Key {
	var next *_MSG
	if wParam == _VK_CONTROL && lParam&_LPARAM_EXTENDED == 0 {
		var msg _MSG
		if lib.platform.PeekMessage(&msg, false) {
			next = &msg
		}
	}
	return translateKey(lib.platform, wParam, lParam, lib.platform.MessageTime(), next)
}
