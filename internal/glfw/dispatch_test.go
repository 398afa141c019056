// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestWindow(t *testing.T, f *fakePlatform, mutate func(*Hints)) (*Library, *Window) {
	t.Helper()
	lib := newTestLibrary(t, f)
	hints := DefaultHints()
	if mutate != nil {
		mutate(&hints)
	}
	w, err := lib.OpenWindow(hints)
	require.NoError(t, err)
	return lib, w
}

func pointLParam(x, y int) _LPARAM {
	return _LPARAM(uint32(uint16(int16(x))) | uint32(uint16(int16(y)))<<16)
}

func wheelWParam(delta int) _WPARAM {
	return _WPARAM(uint32(uint16(int16(delta))) << 16)
}

const (
	waActive    = 1
	minimizedHi = 1 << 16
)

type keyEvent struct {
	key    Key
	action Action
}

func recordKeys(w *Window) *[]keyEvent {
	var events []keyEvent
	w.SetKeyCallback(func(_ *Window, key Key, action Action) {
		events = append(events, keyEvent{key, action})
	})
	return &events
}

func TestDispatchUnknownWindow(t *testing.T) {
	f := newFakePlatform()
	lib := newTestLibrary(t, f)

	assert.Equal(t, uintptr(0xDEF), lib.windowProc(0x999, _WM_NCCREATE, 0, 0))
	assert.Empty(t, lib.handleToWindow, "only a window being created is bound")
	assert.Equal(t, uintptr(0xDEF), lib.windowProc(0x999, _WM_CLOSE, 0, 0))
}

func TestDispatchActivation(t *testing.T) {
	f := newFakePlatform()
	lib, w := openTestWindow(t, f, nil)
	h := w.platform.handle

	var focus []bool
	w.SetFocusCallback(func(_ *Window, focused bool) { focus = append(focus, focused) })
	var iconify []bool
	w.SetIconifyCallback(func(_ *Window, iconified bool) { iconify = append(iconify, iconified) })
	keys := recordKeys(w)

	assert.Zero(t, lib.windowProc(h, _WM_ACTIVATE, waActive, 0))
	assert.Same(t, w, lib.ActiveWindow())
	assert.True(t, w.Focused())

	lib.windowProc(h, _WM_KEYDOWN, 'A', keyLParam(0x1E, false))
	lib.windowProc(h, _WM_LBUTTONDOWN, 0, 0)

	// Iconifying through the taskbar reports an active and minimized window
	assert.Zero(t, lib.windowProc(h, _WM_ACTIVATE, waActive|minimizedHi, 0))
	assert.Nil(t, lib.ActiveWindow())
	assert.True(t, w.Iconified())
	assert.Equal(t, []bool{true, false}, focus)
	assert.Equal(t, []bool{true}, iconify)
	assert.Equal(t, Release, w.GetKey('A'))
	assert.Equal(t, Release, w.GetMouseButton(MouseButtonLeft))
	assert.Equal(t, []keyEvent{{'A', Press}, {'A', Release}}, *keys)

	lib.windowProc(h, _WM_ACTIVATE, waActive, 0)
	assert.False(t, w.Iconified())
	assert.Equal(t, []bool{true, false}, iconify)
}

func TestDispatchFullscreenActivation(t *testing.T) {
	f := newFakePlatform()
	lib, w := openTestWindow(t, f, func(h *Hints) {
		h.Fullscreen = true
		h.Width, h.Height = 1024, 768
	})
	h := w.platform.handle
	require.Len(t, f.setModes, 1)

	lib.windowProc(h, _WM_ACTIVATE, waActive, 0)
	assert.Len(t, f.setModes, 1, "the mode is already applied")

	f.showCalls = nil
	lib.windowProc(h, _WM_ACTIVATE, _WA_INACTIVE, 0)
	assert.Equal(t, []int32{_SW_MINIMIZE}, f.showCalls)
	assert.Equal(t, 1, f.restores)
	assert.False(t, lib.monitor.modeChanged)

	lib.windowProc(h, _WM_ACTIVATE, waActive, 0)
	require.Len(t, f.setModes, 2)
	assert.Equal(t, f.setModes[0], f.setModes[1])
	assert.True(t, lib.monitor.modeChanged)
}

func TestDispatchCursorLockFollowsActivation(t *testing.T) {
	f := newFakePlatform()
	lib, w := openTestWindow(t, f, nil)
	h := w.platform.handle

	lib.windowProc(h, _WM_ACTIVATE, waActive, 0)
	require.NoError(t, w.SetCursorMode(CursorCaptured))
	assert.Equal(t, -1, f.cursorShown)
	assert.Equal(t, h, f.captured)

	lib.windowProc(h, _WM_ACTIVATE, _WA_INACTIVE, 0)
	assert.Zero(t, f.cursorShown)
	assert.Nil(t, f.clip)
	assert.Zero(t, f.captured)

	lib.windowProc(h, _WM_ACTIVATE, waActive, 0)
	assert.Equal(t, -1, f.cursorShown)
	assert.NotNil(t, f.clip)
}

func TestDispatchSysCommand(t *testing.T) {
	f := newFakePlatform()
	lib, w := openTestWindow(t, f, nil)
	h := w.platform.handle

	assert.Equal(t, uintptr(0xDEF), lib.windowProc(h, _WM_SYSCOMMAND, _SC_SCREENSAVE, 0))
	assert.Equal(t, uintptr(0xDEF), lib.windowProc(h, _WM_SYSCOMMAND, _SC_MONITORPOWER|0x2, 0))
	assert.Zero(t, lib.windowProc(h, _WM_SYSCOMMAND, _SC_KEYMENU|0x5, 0))

	w.fullscreen = true
	assert.Zero(t, lib.windowProc(h, _WM_SYSCOMMAND, _SC_SCREENSAVE, 0))
	assert.Zero(t, lib.windowProc(h, _WM_SYSCOMMAND, _SC_MONITORPOWER, 0))
}

func TestDispatchClose(t *testing.T) {
	f := newFakePlatform()
	lib, w := openTestWindow(t, f, nil)

	assert.Zero(t, lib.windowProc(w.platform.handle, _WM_CLOSE, 0, 0))
	assert.True(t, w.closeRequested)
	assert.False(t, w.ShouldClose(), "close requests are honoured by the poll step")
}

func TestDispatchShiftUpReleasesBothShiftKeys(t *testing.T) {
	f := newFakePlatform()
	lib, w := openTestWindow(t, f, nil)
	h := w.platform.handle
	keys := recordKeys(w)

	lib.windowProc(h, _WM_KEYDOWN, _VK_SHIFT, keyLParam(0x2A, false))
	lib.windowProc(h, _WM_KEYDOWN, _VK_SHIFT, keyLParam(0x36, false))
	assert.Equal(t, Press, w.GetKey(KeyLeftShift))
	assert.Equal(t, Press, w.GetKey(KeyRightShift))

	assert.Zero(t, lib.windowProc(h, _WM_KEYUP, _VK_SHIFT, keyLParam(0x36, false)))
	assert.Equal(t, Release, w.GetKey(KeyLeftShift))
	assert.Equal(t, Release, w.GetKey(KeyRightShift))
	assert.Equal(t, []keyEvent{
		{KeyLeftShift, Press},
		{KeyRightShift, Press},
		{KeyLeftShift, Release},
		{KeyRightShift, Release},
	}, *keys)
}

func TestDispatchKeyRepeat(t *testing.T) {
	f := newFakePlatform()
	lib, w := openTestWindow(t, f, nil)
	keys := recordKeys(w)

	for range 3 {
		lib.windowProc(w.platform.handle, _WM_KEYDOWN, 'A', keyLParam(0x1E, false))
	}
	lib.windowProc(w.platform.handle, _WM_SYSKEYUP, 'A', keyLParam(0x1E, false))
	lib.windowProc(w.platform.handle, _WM_KEYUP, 'A', keyLParam(0x1E, false))
	assert.Equal(t, []keyEvent{{'A', Press}, {'A', Release}}, *keys)

	lib, w = openTestWindow(t, newFakePlatform(), func(h *Hints) { h.KeyRepeat = true })
	keys = recordKeys(w)
	for range 3 {
		lib.windowProc(w.platform.handle, _WM_SYSKEYDOWN, 'A', keyLParam(0x1E, false))
	}
	assert.Len(t, *keys, 3)
}

func TestDispatchMouseButtons(t *testing.T) {
	f := newFakePlatform()
	lib, w := openTestWindow(t, f, nil)
	h := w.platform.handle

	type click struct {
		button MouseButton
		action Action
	}
	var clicks []click
	w.SetMouseButtonCallback(func(_ *Window, button MouseButton, action Action) {
		clicks = append(clicks, click{button, action})
	})

	assert.Zero(t, lib.windowProc(h, _WM_RBUTTONDOWN, 0, 0))
	assert.Equal(t, h, f.captured)
	assert.Equal(t, Press, w.GetMouseButton(MouseButtonRight))
	assert.Zero(t, lib.windowProc(h, _WM_RBUTTONUP, 0, 0))
	assert.Zero(t, f.captured)

	assert.Equal(t, uintptr(1), lib.windowProc(h, _WM_XBUTTONDOWN, _XBUTTON2<<16, 0))
	assert.Equal(t, uintptr(1), lib.windowProc(h, _WM_XBUTTONUP, _XBUTTON1<<16, 0))
	assert.Equal(t, uintptr(1), lib.windowProc(h, _WM_XBUTTONDOWN, 0x4<<16, 0))
	assert.Zero(t, lib.windowProc(h, _WM_MBUTTONDOWN, 0, 0))

	assert.Equal(t, []click{
		{MouseButtonRight, Press},
		{MouseButtonRight, Release},
		{MouseButton5, Press},
		{MouseButton4, Release},
		{MouseButtonMiddle, Press},
	}, clicks)
}

func TestDispatchMouseMove(t *testing.T) {
	f := newFakePlatform()
	lib, w := openTestWindow(t, f, nil)
	h := w.platform.handle

	var moves [][2]int
	w.SetCursorPosCallback(func(_ *Window, x, y int) { moves = append(moves, [2]int{x, y}) })

	lib.windowProc(h, _WM_MOUSEMOVE, 0, pointLParam(30, 40))
	lib.windowProc(h, _WM_MOUSEMOVE, 0, pointLParam(30, 40))
	lib.windowProc(h, _WM_MOUSEMOVE, 0, pointLParam(-5, 12))
	assert.Equal(t, [][2]int{{30, 40}, {-5, 12}}, moves)
	assert.True(t, w.platform.mouseMoved)

	// Captured: positions accumulate relative to the window centre
	lib.windowProc(h, _WM_ACTIVATE, waActive, 0)
	require.NoError(t, w.SetCursorMode(CursorCaptured))
	moves = nil
	lib.windowProc(h, _WM_MOUSEMOVE, 0, pointLParam(330, 235))
	lib.windowProc(h, _WM_MOUSEMOVE, 0, pointLParam(331, 235))
	assert.Equal(t, [][2]int{{5, 7}, {6, 7}}, moves)
}

func TestDispatchWheel(t *testing.T) {
	f := newFakePlatform()
	lib, w := openTestWindow(t, f, nil)
	h := w.platform.handle

	var scrolls [][2]float64
	w.SetScrollCallback(func(_ *Window, xoff, yoff float64) { scrolls = append(scrolls, [2]float64{xoff, yoff}) })

	assert.Zero(t, lib.windowProc(h, _WM_MOUSEWHEEL, wheelWParam(-240), 0))
	assert.Zero(t, lib.windowProc(h, _WM_MOUSEWHEEL, wheelWParam(30), 0))
	assert.Zero(t, lib.windowProc(h, _WM_MOUSEHWHEEL, wheelWParam(120), 0))
	assert.Equal(t, [][2]float64{{0, -2}, {0, 0.25}, {1, 0}}, scrolls)
}

func TestDispatchSizeAndMove(t *testing.T) {
	f := newFakePlatform()
	lib, w := openTestWindow(t, f, nil)
	h := w.platform.handle

	var sizes, positions [][2]int
	w.SetSizeCallback(func(_ *Window, width, height int) { sizes = append(sizes, [2]int{width, height}) })
	w.SetPosCallback(func(_ *Window, x, y int) { positions = append(positions, [2]int{x, y}) })

	assert.Zero(t, lib.windowProc(h, _WM_SIZE, 0, pointLParam(800, 600)))
	assert.Zero(t, lib.windowProc(h, _WM_MOVE, 0, pointLParam(-20, -10)))
	assert.Nil(t, f.clip)

	width, height := w.GetSize()
	assert.Equal(t, [2]int{800, 600}, [2]int{width, height})
	x, y := w.GetPos()
	assert.Equal(t, [2]int{-20, -10}, [2]int{x, y})
	assert.Equal(t, [][2]int{{800, 600}}, sizes)
	assert.Equal(t, [][2]int{{-20, -10}}, positions)

	// A captured cursor follows the window frame
	lib.windowProc(h, _WM_ACTIVATE, waActive, 0)
	require.NoError(t, w.SetCursorMode(CursorCaptured))
	f.clip = nil
	lib.windowProc(h, _WM_MOVE, 0, pointLParam(5, 5))
	require.NotNil(t, f.clip)
	assert.Equal(t, _RECT{left: 10, top: 20, right: 650, bottom: 500}, *f.clip)

	f.clip = nil
	lib.windowProc(h, _WM_SIZE, 0, pointLParam(640, 480))
	assert.NotNil(t, f.clip)
}

func TestDispatchPaintIsNotConsumed(t *testing.T) {
	f := newFakePlatform()
	lib, w := openTestWindow(t, f, nil)

	refreshed := 0
	w.SetRefreshCallback(func(*Window) { refreshed++ })
	assert.Equal(t, uintptr(0xDEF), lib.windowProc(w.platform.handle, _WM_PAINT, 0, 0))
	assert.Equal(t, 1, refreshed)

	assert.Equal(t, uintptr(0xDEF), lib.windowProc(w.platform.handle, _WM_DISPLAYCHANGE, 0, 0))
}
