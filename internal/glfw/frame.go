// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import "fmt"

// getFullWindowSize translates a client area size to the outer window size
// for the window's cached styles.
func (w *Window) getFullWindowSize(clientWidth, clientHeight int) (fullWidth, fullHeight int, err error) {
	rect := _RECT{
		left:   0,
		top:    0,
		right:  int32(clientWidth) - 1,
		bottom: int32(clientHeight) - 1,
	}
	if err := w.lib.platform.AdjustWindowRectEx(&rect, w.platform.style, w.platform.exStyle); err != nil {
		return 0, 0, fmt.Errorf("glfw: failed to adjust the window rectangle: %w: %w", PlatformError, err)
	}
	return int(rect.right-rect.left) + 1, int(rect.bottom-rect.top) + 1, nil
}

// frameExtents returns the width of each border the styles add around the
// client area.
func (w *Window) frameExtents() (_RECT, error) {
	var rect _RECT
	if err := w.lib.platform.AdjustWindowRectEx(&rect, w.platform.style, w.platform.exStyle); err != nil {
		return _RECT{}, fmt.Errorf("glfw: failed to adjust the window rectangle: %w: %w", PlatformError, err)
	}
	return _RECT{left: -rect.left, top: -rect.top, right: rect.right, bottom: rect.bottom}, nil
}

// getClientWindowSize reverses getFullWindowSize.
func (w *Window) getClientWindowSize(fullWidth, fullHeight int) (clientWidth, clientHeight int, err error) {
	frame, err := w.frameExtents()
	if err != nil {
		return 0, 0, err
	}
	return fullWidth - int(frame.left+frame.right), fullHeight - int(frame.top+frame.bottom), nil
}

// GetFrameSize returns the size of each edge of the window frame.
func (w *Window) GetFrameSize() (left, top, right, bottom int, err error) {
	frame, err := w.frameExtents()
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return int(frame.left), int(frame.top), int(frame.right), int(frame.bottom), nil
}

// ClientSizeForOuter returns the client area a window with this window's
// styles has when its outer size is fullWidth by fullHeight.
func (w *Window) ClientSizeForOuter(fullWidth, fullHeight int) (width, height int, err error) {
	return w.getClientWindowSize(fullWidth, fullHeight)
}
