// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import (
	"fmt"
	"slices"
)

// PollEvents processes every queued native message and returns immediately.
func (lib *Library) PollEvents() error {
	if err := lib.checkAlive(); err != nil {
		return err
	}
	p := lib.platform

	if window := lib.cursorLockWindow; window != nil {
		window.platform.mouseMoved = false
		window.platform.oldMouseX = window.width / 2
		window.platform.oldMouseY = window.height / 2
	}

	var msg _MSG
	for p.PeekMessage(&msg, true) {
		if msg.message == _WM_QUIT {
			// NOTE: While we do not ourselves post WM_QUIT, other processes
			//       may post it to this one, for example Task Manager
			// HACK: Treat WM_QUIT as a close on all windows
			for _, window := range lib.windows {
				window.closeRequested = true
			}
			continue
		}
		p.DispatchMessage(&msg)
	}

	// HACK: Release shift keys that the system did not emit KEYUP for
	// NOTE: Shift keys on Windows tend to "stick" when both are pressed as
	//       no key up message is generated by the first key release
	// NOTE: The other half of this is in the WM_*KEY* handler in windowProc
	if window := lib.activeWindow; window != nil {
		if !p.AsyncKeyDown(_VK_LSHIFT) && window.keys[KeyLeftShift] == Press {
			window.inputKey(KeyLeftShift, Release)
		}
		if !p.AsyncKeyDown(_VK_RSHIFT) && window.keys[KeyRightShift] == Press {
			window.inputKey(KeyRightShift, Release)
		}
	}

	// Did we have mouse movement in locked cursor mode?
	if window := lib.cursorLockWindow; window != nil && window.platform.mouseMoved {
		if err := lib.setMouseCursorPos(window, window.width/2, window.height/2); err != nil {
			return err
		}
	}

	lib.acceptCloseRequests()
	return nil
}

// WaitEvents blocks until at least one message is queued, then processes
// every queued message.
func (lib *Library) WaitEvents() error {
	if err := lib.checkAlive(); err != nil {
		return err
	}
	if err := lib.platform.WaitMessage(); err != nil {
		return fmt.Errorf("glfw: WaitMessage failed: %w: %w", PlatformError, err)
	}
	return lib.PollEvents()
}

// acceptCloseRequests asks the close callback of every window the user tried
// to close, once all messages have been processed.
func (lib *Library) acceptCloseRequests() {
	// A close callback may close windows, so walk a copy of the list.
	for _, window := range slices.Clone(lib.windows) {
		if !window.closeRequested || !slices.Contains(lib.windows, window) {
			continue
		}
		window.closeRequested = false
		if window.callbacks.close == nil || window.callbacks.close(window) {
			window.shouldClose = true
		}
	}
}
