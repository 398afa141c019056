// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import (
	"errors"
	"image"
	"strings"
	"unicode"
	"unicode/utf16"

	"golang.org/x/text/unicode/norm"
)

// fakeFormat is one pixel format of the fake driver. arb holds the values
// reported through WGL_ARB_pixel_format.
type fakeFormat struct {
	pfd _PIXELFORMATDESCRIPTOR
	arb map[int]int
}

func pfdFormat(flags uint32, pixelType byte, r, g, b, a, depth, stencil byte) fakeFormat {
	return fakeFormat{pfd: _PIXELFORMATDESCRIPTOR{
		dwFlags:      flags,
		iPixelType:   pixelType,
		cRedBits:     r,
		cGreenBits:   g,
		cBlueBits:    b,
		cAlphaBits:   a,
		cDepthBits:   depth,
		cStencilBits: stencil,
	}}
}

func arbFormat(window, opengl, double bool, pixelType, r, g, b, a, depth, stencil, samples int) fakeFormat {
	return fakeFormat{arb: map[int]int{
		_WGL_DRAW_TO_WINDOW_ARB: boolAttrib(window),
		_WGL_SUPPORT_OPENGL_ARB: boolAttrib(opengl),
		_WGL_DOUBLE_BUFFER_ARB:  boolAttrib(double),
		_WGL_PIXEL_TYPE_ARB:     pixelType,
		_WGL_ACCELERATION_ARB:   _WGL_FULL_ACCELERATION_ARB,
		_WGL_RED_BITS_ARB:       r,
		_WGL_GREEN_BITS_ARB:     g,
		_WGL_BLUE_BITS_ARB:      b,
		_WGL_ALPHA_BITS_ARB:     a,
		_WGL_DEPTH_BITS_ARB:     depth,
		_WGL_STENCIL_BITS_ARB:   stencil,
		_WGL_SAMPLES_ARB:        samples,
	}}
}

const usablePFD = _PFD_DRAW_TO_WINDOW | _PFD_SUPPORT_OPENGL | _PFD_DOUBLEBUFFER

type fakePlatform struct {
	// driver
	formats       []fakeFormat
	extensions    string
	exportEXT     bool
	exportARB     bool
	exportProcs   bool
	failSetFormat bool
	failAttribs   bool

	pixelFormats  map[_HDC]int
	contexts      map[_HGLRC]_HDC
	nextContext   _HGLRC
	current       _HGLRC
	attribLists   [][]int32
	baseContexts  int
	sharedLists   int
	swapIntervals []int
	swaps         int
	describeCalls int
	attribivCalls int

	// windows
	proc          windowProcFunc
	className     string
	nextHandle    _HWND
	created       []_HWND
	destroyed     []_HWND
	titles        map[_HWND]string
	positions     []_RECT
	topmost       []_HWND
	foreground    _HWND
	stubborn      int
	showCalls     []int32
	animation     bool
	lockResets    int
	focus         _HWND
	captured      _HWND
	clip          *_RECT
	cursorShown   int
	cursor        _POINT
	icons         map[_HWND][2]*image.NRGBA
	darkTitleBars map[_HWND]bool
	lightTheme    bool
	clipboard     string

	// queue and keyboard
	queue     []_MSG
	msgTime   uint32
	waits     int
	asyncDown map[int]bool
	scanCodes map[uint32]uint32
	keyState  [256]byte
	deadKey   rune

	// display
	modes       []VideoMode
	currentMode VideoMode
	setModes    []VideoMode
	restores    int
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		formats: []fakeFormat{
			pfdFormat(usablePFD, _PFD_TYPE_RGBA, 8, 8, 8, 8, 24, 8),
		},
		pixelFormats:  map[_HDC]int{},
		contexts:      map[_HGLRC]_HDC{},
		titles:        map[_HWND]string{},
		icons:         map[_HWND][2]*image.NRGBA{},
		darkTitleBars: map[_HWND]bool{},
		lightTheme:    true,
		animation:     true,
		nextHandle:    0x100,
		nextContext:   0x1000,
		cursor:        _POINT{x: 150, y: 120},
		asyncDown:     map[int]bool{},
		scanCodes: map[uint32]uint32{
			_VK_LSHIFT:  0x2A,
			_VK_RSHIFT:  0x36,
			_VK_CONTROL: 0x1D,
			_VK_MENU:    0x38,
			_VK_RETURN:  0x1C,
			_VK_INSERT:  0x52,
			_VK_END:     0x4F,
			_VK_DOWN:    0x50,
			_VK_NEXT:    0x51,
			_VK_LEFT:    0x4B,
			_VK_CLEAR:   0x4C,
			_VK_RIGHT:   0x4D,
			_VK_HOME:    0x47,
			_VK_UP:      0x48,
			_VK_PRIOR:   0x49,
			_VK_DELETE:  0x53,
			'A':         0x1E,
			'E':         0x12,
			'1':         0x02,
			_VK_F1:      0x3B,
			_VK_ESCAPE:  0x01,
			0xDE:        0x28,
		},
		modes: []VideoMode{
			{Width: 640, Height: 480, BitsPerPixel: 16, RefreshRate: 60},
			{Width: 640, Height: 480, BitsPerPixel: 32, RefreshRate: 60},
			{Width: 800, Height: 600, BitsPerPixel: 32, RefreshRate: 60},
			{Width: 800, Height: 600, BitsPerPixel: 32, RefreshRate: 75},
			{Width: 1024, Height: 768, BitsPerPixel: 32, RefreshRate: 60},
			{Width: 1920, Height: 1080, BitsPerPixel: 32, RefreshRate: 144},
		},
		currentMode: VideoMode{Width: 1920, Height: 1080, BitsPerPixel: 32, RefreshRate: 144},
	}
}

// withModernDriver advertises every extension and exports every entry point.
func (f *fakePlatform) withModernDriver() *fakePlatform {
	f.exportEXT = true
	f.exportProcs = true
	f.extensions = "WGL_ARB_extensions_string WGL_ARB_multisample WGL_ARB_create_context " +
		"WGL_ARB_create_context_profile WGL_EXT_create_context_es2_profile " +
		"WGL_EXT_swap_control WGL_ARB_pixel_format"
	f.formats = []fakeFormat{
		arbFormat(true, true, true, _WGL_TYPE_RGBA_ARB, 8, 8, 8, 8, 24, 8, 0),
		arbFormat(true, true, true, _WGL_TYPE_RGBA_ARB, 8, 8, 8, 8, 24, 8, 4),
	}
	for i := range f.formats {
		f.formats[i].pfd = _PIXELFORMATDESCRIPTOR{dwFlags: usablePFD, iPixelType: _PFD_TYPE_RGBA, cRedBits: 8, cGreenBits: 8, cBlueBits: 8}
	}
	return f
}

func (f *fakePlatform) liveWindows() int {
	return len(f.created) - len(f.destroyed)
}

func (f *fakePlatform) post(msgs ..._MSG) {
	f.queue = append(f.queue, msgs...)
}

// wglAPI

func (f *fakePlatform) DescribePixelFormat(dc _HDC, format int, pfd *_PIXELFORMATDESCRIPTOR) int {
	f.describeCalls++
	if format < 1 || format > len(f.formats) {
		return 0
	}
	if pfd != nil {
		*pfd = f.formats[format-1].pfd
	}
	return len(f.formats)
}

func (f *fakePlatform) SetPixelFormat(dc _HDC, format int, pfd *_PIXELFORMATDESCRIPTOR) bool {
	if f.failSetFormat {
		return false
	}
	if _, ok := f.pixelFormats[dc]; ok {
		return false
	}
	f.pixelFormats[dc] = format
	return true
}

func (f *fakePlatform) GetPixelFormat(dc _HDC) int {
	return f.pixelFormats[dc]
}

func (f *fakePlatform) newContext(dc _HDC) _HGLRC {
	f.nextContext++
	f.contexts[f.nextContext] = dc
	return f.nextContext
}

func (f *fakePlatform) CreateContext(dc _HDC) _HGLRC {
	f.baseContexts++
	return f.newContext(dc)
}

func (f *fakePlatform) DeleteContext(rc _HGLRC) bool {
	if _, ok := f.contexts[rc]; !ok {
		return false
	}
	delete(f.contexts, rc)
	if f.current == rc {
		f.current = 0
	}
	return true
}

func (f *fakePlatform) MakeCurrent(dc _HDC, rc _HGLRC) bool {
	f.current = rc
	return true
}

func (f *fakePlatform) ShareLists(share, rc _HGLRC) bool {
	f.sharedLists++
	return true
}

func (f *fakePlatform) SwapBuffers(dc _HDC) bool {
	f.swaps++
	return true
}

func (f *fakePlatform) GetExtensionsStringEXTProc() func() string {
	if !f.exportEXT || f.current == 0 {
		return nil
	}
	return func() string { return f.extensions }
}

func (f *fakePlatform) GetExtensionsStringARBProc() func(dc _HDC) string {
	if !f.exportARB || f.current == 0 {
		return nil
	}
	return func(_HDC) string { return f.extensions }
}

func (f *fakePlatform) CreateContextAttribsARBProc() func(dc _HDC, share _HGLRC, attribs []int32) _HGLRC {
	if !f.exportProcs {
		return nil
	}
	return func(dc _HDC, share _HGLRC, attribs []int32) _HGLRC {
		f.attribLists = append(f.attribLists, append([]int32(nil), attribs...))
		if f.failAttribs {
			return 0
		}
		return f.newContext(dc)
	}
}

func (f *fakePlatform) SwapIntervalEXTProc() func(interval int) bool {
	if !f.exportProcs {
		return nil
	}
	return func(interval int) bool {
		f.swapIntervals = append(f.swapIntervals, interval)
		return true
	}
}

func (f *fakePlatform) GetPixelFormatAttribivARBProc() func(dc _HDC, format int, attribs []int32, values []int32) bool {
	if !f.exportProcs {
		return nil
	}
	return func(dc _HDC, format int, attribs []int32, values []int32) bool {
		f.attribivCalls++
		for i, a := range attribs {
			if a == _WGL_NUMBER_PIXEL_FORMATS_ARB {
				values[i] = int32(len(f.formats))
				continue
			}
			if format < 1 || format > len(f.formats) {
				return false
			}
			values[i] = int32(f.formats[format-1].arb[int(a)])
		}
		return true
	}
}

// windowSystem

func (f *fakePlatform) RegisterWindowClass(name string, proc windowProcFunc) error {
	f.className = name
	f.proc = proc
	return nil
}

func (f *fakePlatform) UnregisterWindowClass(name string) error {
	if name != f.className {
		return errors.New("class not registered")
	}
	f.className = ""
	return nil
}

func (f *fakePlatform) CreateWindow(exStyle, style uint32, class, title string, x, y, width, height int) (_HWND, error) {
	if class != f.className {
		return 0, errors.New("unknown window class")
	}
	f.nextHandle++
	h := f.nextHandle
	f.created = append(f.created, h)
	f.titles[h] = title
	f.proc(h, _WM_NCCREATE, 0, 0)
	return h, nil
}

func (f *fakePlatform) DestroyWindow(hwnd _HWND) error {
	f.destroyed = append(f.destroyed, hwnd)
	return nil
}

func (f *fakePlatform) GetDC(hwnd _HWND) (_HDC, error) {
	return _HDC(hwnd) << 4, nil
}

func (f *fakePlatform) ReleaseDC(hwnd _HWND, dc _HDC) {}

func (f *fakePlatform) DefWindowProc(hwnd _HWND, msg uint32, wParam _WPARAM, lParam _LPARAM) uintptr {
	return 0xDEF
}

// AdjustWindowRectEx uses an 8 pixel border and a 23 pixel caption.
func (f *fakePlatform) AdjustWindowRectEx(rect *_RECT, style, exStyle uint32) error {
	if style&_WS_CAPTION != 0 {
		rect.left -= 8
		rect.top -= 31
		rect.right += 8
		rect.bottom += 8
	}
	return nil
}

func (f *fakePlatform) WorkArea() (_RECT, error) {
	return _RECT{left: 0, top: 40, right: 1920, bottom: 1040}, nil
}

func (f *fakePlatform) GetWindowRect(hwnd _HWND) (_RECT, error) {
	return _RECT{left: 10, top: 20, right: 650, bottom: 500}, nil
}

func (f *fakePlatform) SetWindowPos(hwnd, after _HWND, x, y, width, height int, flags uint32) error {
	if after == _HWND_TOPMOST {
		f.topmost = append(f.topmost, hwnd)
	}
	f.positions = append(f.positions, _RECT{left: int32(x), top: int32(y), right: int32(width), bottom: int32(height)})
	return nil
}

func (f *fakePlatform) SetWindowText(hwnd _HWND, title string) error {
	f.titles[hwnd] = title
	return nil
}

func (f *fakePlatform) SetWindowIcon(hwnd _HWND, big, small *image.NRGBA) error {
	f.icons[hwnd] = [2]*image.NRGBA{big, small}
	return nil
}

func (f *fakePlatform) IconSizes() (big, small image.Point) {
	return image.Pt(32, 32), image.Pt(16, 16)
}

func (f *fakePlatform) SetDarkTitleBar(hwnd _HWND, dark bool) error {
	f.darkTitleBars[hwnd] = dark
	return nil
}

func (f *fakePlatform) AppsUseLightTheme() bool {
	return f.lightTheme
}

func (f *fakePlatform) ShowWindow(hwnd _HWND, cmd int32) bool {
	f.showCalls = append(f.showCalls, cmd)
	return true
}

func (f *fakePlatform) BringWindowToTop(hwnd _HWND) error {
	return nil
}

// SetForegroundWindow refuses the first stubborn calls.
func (f *fakePlatform) SetForegroundWindow(hwnd _HWND) bool {
	if f.stubborn > 0 {
		f.stubborn--
		return false
	}
	f.foreground = hwnd
	return true
}

func (f *fakePlatform) GetForegroundWindow() _HWND {
	return f.foreground
}

func (f *fakePlatform) SetFocus(hwnd _HWND) error {
	f.focus = hwnd
	return nil
}

func (f *fakePlatform) MinMaxAnimation() bool {
	return f.animation
}

func (f *fakePlatform) SetMinMaxAnimation(enable bool) error {
	f.animation = enable
	return nil
}

func (f *fakePlatform) ResetForegroundLockTimeout() error {
	f.lockResets++
	return nil
}

func (f *fakePlatform) SetCapture(hwnd _HWND) {
	f.captured = hwnd
}

func (f *fakePlatform) ReleaseCapture() error {
	f.captured = 0
	return nil
}

func (f *fakePlatform) ClipCursor(rect *_RECT) error {
	if rect == nil {
		f.clip = nil
		return nil
	}
	r := *rect
	f.clip = &r
	return nil
}

func (f *fakePlatform) ShowCursor(show bool) {
	if show {
		f.cursorShown++
	} else {
		f.cursorShown--
	}
}

func (f *fakePlatform) GetCursorPos() (_POINT, error) {
	return f.cursor, nil
}

func (f *fakePlatform) SetCursorPos(x, y int32) error {
	f.cursor = _POINT{x: x, y: y}
	return nil
}

// The client area of every fake window starts at screen (100, 100).
func (f *fakePlatform) ClientToScreen(hwnd _HWND, p *_POINT) error {
	p.x += 100
	p.y += 100
	return nil
}

func (f *fakePlatform) ScreenToClient(hwnd _HWND, p *_POINT) error {
	p.x -= 100
	p.y -= 100
	return nil
}

func (f *fakePlatform) ClipboardString() (string, error) {
	return f.clipboard, nil
}

func (f *fakePlatform) SetClipboardString(s string) error {
	f.clipboard = s
	return nil
}

// messageQueue

func (f *fakePlatform) PeekMessage(msg *_MSG, remove bool) bool {
	if len(f.queue) == 0 {
		return false
	}
	*msg = f.queue[0]
	if remove {
		f.queue = f.queue[1:]
	}
	return true
}

func (f *fakePlatform) DispatchMessage(msg *_MSG) {
	f.msgTime = msg.time
	f.proc(msg.hwnd, msg.message, msg.wParam, msg.lParam)
}

func (f *fakePlatform) WaitMessage() error {
	f.waits++
	return nil
}

func (f *fakePlatform) MessageTime() uint32 {
	return f.msgTime
}

// keyboardLayout

func (f *fakePlatform) MapVirtualKey(code, mapType uint32) uint32 {
	switch mapType {
	case _MAPVK_VK_TO_VSC:
		return f.scanCodes[code]
	case _MAPVK_VSC_TO_VK:
		for vk, scan := range f.scanCodes {
			if scan == code {
				return vk
			}
		}
	case _MAPVK_VK_TO_CHAR:
		switch {
		case code >= 'A' && code <= 'Z':
			return code + 'a' - 'A'
		case code >= '0' && code <= '9':
			return code
		case code == 0xDE:
			// Dead keys have the top bit set
			return 0x80000000 | '\''
		}
	}
	return 0
}

func (f *fakePlatform) CharUpper(c uint16) uint16 {
	return uint16(unicode.ToUpper(rune(c)))
}

func (f *fakePlatform) KeyboardState(state *[256]byte) error {
	*state = f.keyState
	return nil
}

// ToUnicode implements a small layout with an acute dead key on 0xDE.
func (f *fakePlatform) ToUnicode(vk, scanCode uint32, state *[256]byte, buf []uint16) int {
	if vk == 0xDE {
		f.deadKey = '\u0301'
		return -1
	}
	var base string
	switch {
	case vk >= 'A' && vk <= 'Z':
		base = strings.ToLower(string(rune(vk)))
		if state[_VK_SHIFT]&0x80 != 0 {
			base = string(rune(vk))
		}
	case vk == 0xF0:
		base = "\U0001F600"
	default:
		return 0
	}
	if f.deadKey != 0 {
		base = norm.NFC.String(base + string(f.deadKey))
		f.deadKey = 0
	}
	return copy(buf, utf16.Encode([]rune(base)))
}

func (f *fakePlatform) AsyncKeyDown(vk int) bool {
	return f.asyncDown[vk]
}

// displayModes

func (f *fakePlatform) VideoModes() ([]VideoMode, error) {
	return f.modes, nil
}

func (f *fakePlatform) CurrentVideoMode() (VideoMode, error) {
	return f.currentMode, nil
}

func (f *fakePlatform) SetVideoMode(mode VideoMode) error {
	f.setModes = append(f.setModes, mode)
	f.currentMode = mode
	return nil
}

func (f *fakePlatform) RestoreVideoMode() error {
	f.restores++
	return nil
}
