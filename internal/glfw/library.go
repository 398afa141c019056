// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Library is the application context of the backend. It owns every window,
// tracks which window is current, active and cursor-locked, and holds the
// process-wide fullscreen video mode state. All methods must be called from
// the thread that called Init.
type Library struct {
	platform  platform
	logger    *slog.Logger
	chooser   FBConfigChooser
	className string

	classRegistered bool
	terminated      bool

	windows        []*Window
	handleToWindow map[_HWND]*Window
	creating       *Window

	currentWindow    *Window
	activeWindow     *Window
	cursorLockWindow *Window

	monitor monitorState

	extensionWords map[uint64]map[string]struct{}
}

type monitorState struct {
	mode        VideoMode
	modeChanged bool
}

func newLibrary(p platform) *Library {
	return &Library{
		platform:       p,
		logger:         slog.Default(),
		chooser:        ChooseFBConfig,
		className:      "GLFW30-" + uuid.NewString(),
		handleToWindow: map[_HWND]*Window{},
		extensionWords: map[uint64]map[string]struct{}{},
	}
}

// SetLogger replaces the logger negotiation decisions are reported to.
func (lib *Library) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	lib.logger = logger
}

// SetFBConfigChooser replaces the policy used to pick a pixel format out of
// the usable candidates. A nil chooser restores ChooseFBConfig.
func (lib *Library) SetFBConfigChooser(chooser FBConfigChooser) {
	if chooser == nil {
		chooser = ChooseFBConfig
	}
	lib.chooser = chooser
}

func (lib *Library) checkAlive() error {
	if lib == nil || lib.terminated {
		return NotInitialized
	}
	return nil
}

func (lib *Library) registerWindowClass() error {
	if lib.classRegistered {
		return nil
	}
	if err := lib.platform.RegisterWindowClass(lib.className, lib.windowProc); err != nil {
		return fmt.Errorf("glfw: failed to register window class: %w: %w", PlatformError, err)
	}
	lib.classRegistered = true
	return nil
}

// Windows returns the open windows in creation order.
func (lib *Library) Windows() []*Window {
	return append([]*Window(nil), lib.windows...)
}

// CurrentWindow returns the window whose context is current, or nil.
func (lib *Library) CurrentWindow() *Window {
	return lib.currentWindow
}

// ActiveWindow returns the window that has input focus, or nil.
func (lib *Library) ActiveWindow() *Window {
	return lib.activeWindow
}

// ClipboardString returns the text on the system clipboard.
func (lib *Library) ClipboardString() (string, error) {
	if err := lib.checkAlive(); err != nil {
		return "", err
	}
	s, err := lib.platform.ClipboardString()
	if err != nil {
		return "", fmt.Errorf("glfw: failed to read the clipboard: %w: %w", PlatformError, err)
	}
	return s, nil
}

// SetClipboardString places s on the system clipboard.
func (lib *Library) SetClipboardString(s string) error {
	if err := lib.checkAlive(); err != nil {
		return err
	}
	if err := lib.platform.SetClipboardString(s); err != nil {
		return fmt.Errorf("glfw: failed to write the clipboard: %w: %w", PlatformError, err)
	}
	return nil
}

// Terminate closes every window, restores the desktop video mode and
// unregisters the window class. The library cannot be used afterwards.
func (lib *Library) Terminate() error {
	if lib.terminated {
		return nil
	}
	var errs []error
	for len(lib.windows) > 0 {
		errs = append(errs, lib.CloseWindow(lib.windows[len(lib.windows)-1]))
	}
	if lib.monitor.modeChanged {
		errs = append(errs, lib.restoreVideoMode())
	}
	if lib.classRegistered {
		errs = append(errs, lib.platform.UnregisterWindowClass(lib.className))
		lib.classRegistered = false
	}
	lib.terminated = true
	return errors.Join(errs...)
}
