// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import "image"

type windowProcFunc func(hwnd _HWND, msg uint32, wParam _WPARAM, lParam _LPARAM) uintptr

// wglAPI is the part of opengl32 and gdi32 used for pixel format and context
// negotiation. The *Proc methods resolve an extension entry point through
// wglGetProcAddress and return nil when it is not exported by the driver.
type wglAPI interface {
	DescribePixelFormat(dc _HDC, format int, pfd *_PIXELFORMATDESCRIPTOR) int
	SetPixelFormat(dc _HDC, format int, pfd *_PIXELFORMATDESCRIPTOR) bool
	GetPixelFormat(dc _HDC) int
	CreateContext(dc _HDC) _HGLRC
	DeleteContext(rc _HGLRC) bool
	MakeCurrent(dc _HDC, rc _HGLRC) bool
	ShareLists(share, rc _HGLRC) bool
	SwapBuffers(dc _HDC) bool

	GetExtensionsStringEXTProc() func() string
	GetExtensionsStringARBProc() func(dc _HDC) string
	CreateContextAttribsARBProc() func(dc _HDC, share _HGLRC, attribs []int32) _HGLRC
	SwapIntervalEXTProc() func(interval int) bool
	GetPixelFormatAttribivARBProc() func(dc _HDC, format int, attribs []int32, values []int32) bool
}

// windowSystem is the part of user32 that creates, positions and decorates
// native windows and owns the pointer.
type windowSystem interface {
	RegisterWindowClass(name string, proc windowProcFunc) error
	UnregisterWindowClass(name string) error
	CreateWindow(exStyle, style uint32, class, title string, x, y, width, height int) (_HWND, error)
	DestroyWindow(hwnd _HWND) error
	GetDC(hwnd _HWND) (_HDC, error)
	ReleaseDC(hwnd _HWND, dc _HDC)
	DefWindowProc(hwnd _HWND, msg uint32, wParam _WPARAM, lParam _LPARAM) uintptr

	AdjustWindowRectEx(rect *_RECT, style, exStyle uint32) error
	WorkArea() (_RECT, error)
	GetWindowRect(hwnd _HWND) (_RECT, error)
	SetWindowPos(hwnd, after _HWND, x, y, width, height int, flags uint32) error
	SetWindowText(hwnd _HWND, title string) error
	SetWindowIcon(hwnd _HWND, big, small *image.NRGBA) error
	IconSizes() (big, small image.Point)
	SetDarkTitleBar(hwnd _HWND, dark bool) error
	AppsUseLightTheme() bool

	ShowWindow(hwnd _HWND, cmd int32) bool
	BringWindowToTop(hwnd _HWND) error
	SetForegroundWindow(hwnd _HWND) bool
	GetForegroundWindow() _HWND
	SetFocus(hwnd _HWND) error
	MinMaxAnimation() bool
	SetMinMaxAnimation(enable bool) error
	ResetForegroundLockTimeout() error

	SetCapture(hwnd _HWND)
	ReleaseCapture() error
	ClipCursor(rect *_RECT) error
	ShowCursor(show bool)
	GetCursorPos() (_POINT, error)
	SetCursorPos(x, y int32) error
	ClientToScreen(hwnd _HWND, p *_POINT) error
	ScreenToClient(hwnd _HWND, p *_POINT) error

	ClipboardString() (string, error)
	SetClipboardString(s string) error
}

type messageQueue interface {
	PeekMessage(msg *_MSG, remove bool) bool
	DispatchMessage(msg *_MSG)
	WaitMessage() error
	MessageTime() uint32
}

type keyboardLayout interface {
	MapVirtualKey(code, mapType uint32) uint32
	CharUpper(c uint16) uint16
	KeyboardState(state *[256]byte) error
	ToUnicode(vk, scanCode uint32, state *[256]byte, buf []uint16) int
	AsyncKeyDown(vk int) bool
}

type displayModes interface {
	VideoModes() ([]VideoMode, error)
	CurrentVideoMode() (VideoMode, error)
	SetVideoMode(mode VideoMode) error
	RestoreVideoMode() error
}

type platform interface {
	wglAPI
	windowSystem
	messageQueue
	keyboardLayout
	displayModes
}
