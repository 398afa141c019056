// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import (
	"cmp"
	"errors"
	"fmt"
	"image"
	"runtime"
	"slices"
	"syscall"
	"unsafe"

	"github.com/ddkwork/golibrary/mylog"
	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/ddkwork/wglfw/internal/glfw/win32"
)

// The callback table of the runtime is small, so the window procedure
// trampoline is created once and forwards to the installed procedure.
var windowProcPtr = windows.NewCallback(dispatchWindowProc)

var installedWindowProc windowProcFunc

func dispatchWindowProc(hWnd, uMsg, wParam, lParam uintptr) uintptr {
	if installedWindowProc == nil {
		return _DefWindowProcW(_HWND(hWnd), uint32(uMsg), _WPARAM(wParam), _LPARAM(lParam))
	}
	return installedWindowProc(_HWND(hWnd), uint32(uMsg), _WPARAM(wParam), _LPARAM(lParam))
}

var _ platform = (*win32Platform)(nil)

type win32Platform struct {
	instance _HINSTANCE
	icons    map[_HWND][2]_HICON
}

func newWin32Platform() (*win32Platform, error) {
	for _, p := range []*windows.LazyProc{
		procRegisterClassExW,
		procCreateWindowExW,
		procGetDC,
		procDescribePixelFormat,
		procSetPixelFormat,
		procWglCreateContext,
		procWglMakeCurrent,
		procWglDeleteContext,
		procWglGetProcAddress,
	} {
		if err := p.Find(); err != nil {
			return nil, fmt.Errorf("missing procedure %q: %w", p.Name, err)
		}
	}
	instance, err := _GetModuleHandleW()
	if err != nil {
		return nil, err
	}
	return &win32Platform{
		instance: instance,
		icons:    map[_HWND][2]_HICON{},
	}, nil
}

func cString(p uintptr) string {
	if p == 0 {
		return ""
	}
	return windows.BytePtrToString((*byte)(unsafe.Pointer(p)))
}

// wglAPI

func (p *win32Platform) DescribePixelFormat(dc _HDC, format int, pfd *_PIXELFORMATDESCRIPTOR) int {
	var size uint32
	if pfd != nil {
		size = uint32(unsafe.Sizeof(*pfd))
	}
	return int(_DescribePixelFormat(dc, int32(format), size, pfd))
}

func (p *win32Platform) SetPixelFormat(dc _HDC, format int, pfd *_PIXELFORMATDESCRIPTOR) bool {
	return _SetPixelFormat(dc, int32(format), pfd)
}

func (p *win32Platform) GetPixelFormat(dc _HDC) int {
	return int(_GetPixelFormat(dc))
}

func (p *win32Platform) CreateContext(dc _HDC) _HGLRC {
	return wglCreateContext(dc)
}

func (p *win32Platform) DeleteContext(rc _HGLRC) bool {
	return wglDeleteContext(rc)
}

func (p *win32Platform) MakeCurrent(dc _HDC, rc _HGLRC) bool {
	return wglMakeCurrent(dc, rc)
}

func (p *win32Platform) ShareLists(share, rc _HGLRC) bool {
	return wglShareLists(share, rc)
}

func (p *win32Platform) SwapBuffers(dc _HDC) bool {
	return _SwapBuffers(dc)
}

// Extension entry points are called through purego.SyscallN; they are plain
// function pointers owned by the driver, not exports of a loaded DLL.

func (p *win32Platform) GetExtensionsStringEXTProc() func() string {
	addr := wglGetProcAddress("wglGetExtensionsStringEXT")
	if addr == 0 {
		return nil
	}
	return func() string {
		r, _, _ := purego.SyscallN(addr)
		return cString(r)
	}
}

func (p *win32Platform) GetExtensionsStringARBProc() func(dc _HDC) string {
	addr := wglGetProcAddress("wglGetExtensionsStringARB")
	if addr == 0 {
		return nil
	}
	return func(dc _HDC) string {
		r, _, _ := purego.SyscallN(addr, uintptr(dc))
		return cString(r)
	}
}

func (p *win32Platform) CreateContextAttribsARBProc() func(dc _HDC, share _HGLRC, attribs []int32) _HGLRC {
	addr := wglGetProcAddress("wglCreateContextAttribsARB")
	if addr == 0 {
		return nil
	}
	return func(dc _HDC, share _HGLRC, attribs []int32) _HGLRC {
		r, _, _ := purego.SyscallN(addr, uintptr(dc), uintptr(share), uintptr(unsafe.Pointer(&attribs[0])))
		runtime.KeepAlive(attribs)
		return _HGLRC(r)
	}
}

func (p *win32Platform) SwapIntervalEXTProc() func(interval int) bool {
	addr := wglGetProcAddress("wglSwapIntervalEXT")
	if addr == 0 {
		return nil
	}
	return func(interval int) bool {
		r, _, _ := purego.SyscallN(addr, uintptr(interval))
		return r != 0
	}
}

func (p *win32Platform) GetPixelFormatAttribivARBProc() func(dc _HDC, format int, attribs []int32, values []int32) bool {
	addr := wglGetProcAddress("wglGetPixelFormatAttribivARB")
	if addr == 0 {
		return nil
	}
	return func(dc _HDC, format int, attribs []int32, values []int32) bool {
		if len(attribs) == 0 || len(values) < len(attribs) {
			return false
		}
		r, _, _ := purego.SyscallN(addr, uintptr(dc), uintptr(format), 0, uintptr(len(attribs)),
			uintptr(unsafe.Pointer(&attribs[0])), uintptr(unsafe.Pointer(&values[0])))
		runtime.KeepAlive(attribs)
		runtime.KeepAlive(values)
		return r != 0
	}
}

// windowSystem

func (p *win32Platform) RegisterWindowClass(name string, proc windowProcFunc) error {
	if installedWindowProc != nil {
		return errors.New("a window class is already registered by this process")
	}

	var wc _WNDCLASSEXW
	wc.cbSize = uint32(unsafe.Sizeof(wc))
	wc.style = _CS_HREDRAW | _CS_VREDRAW | _CS_OWNDC
	wc.lpfnWndProc = windowProcPtr
	wc.hInstance = p.instance
	cursor, err := _LoadCursorW(0, _IDC_ARROW)
	if err != nil {
		return err
	}
	wc.hCursor = cursor

	className, err := windows.UTF16FromString(name)
	if err != nil {
		return err
	}
	wc.lpszClassName = &className[0]
	defer runtime.KeepAlive(className)

	if _, err := _RegisterClassExW(&wc); err != nil {
		return err
	}
	installedWindowProc = proc
	return nil
}

func (p *win32Platform) UnregisterWindowClass(name string) error {
	installedWindowProc = nil
	return _UnregisterClassW(name, p.instance)
}

func (p *win32Platform) CreateWindow(exStyle, style uint32, class, title string, x, y, width, height int) (_HWND, error) {
	return _CreateWindowExW(exStyle, class, title, style, int32(x), int32(y), int32(width), int32(height), p.instance)
}

func (p *win32Platform) DestroyWindow(hwnd _HWND) error {
	err := _DestroyWindow(hwnd)
	p.destroyIcons(hwnd)
	return err
}

func (p *win32Platform) GetDC(hwnd _HWND) (_HDC, error) {
	return _GetDC(hwnd)
}

func (p *win32Platform) ReleaseDC(hwnd _HWND, dc _HDC) {
	_ReleaseDC(hwnd, dc)
}

func (p *win32Platform) DefWindowProc(hwnd _HWND, msg uint32, wParam _WPARAM, lParam _LPARAM) uintptr {
	return _DefWindowProcW(hwnd, msg, wParam, lParam)
}

func (p *win32Platform) AdjustWindowRectEx(rect *_RECT, style, exStyle uint32) error {
	return _AdjustWindowRectEx(rect, style, false, exStyle)
}

func (p *win32Platform) WorkArea() (_RECT, error) {
	var wa _RECT
	if err := _SystemParametersInfoW(_SPI_GETWORKAREA, 0, uintptr(unsafe.Pointer(&wa)), 0); err != nil {
		return _RECT{}, err
	}
	return wa, nil
}

func (p *win32Platform) GetWindowRect(hwnd _HWND) (_RECT, error) {
	return _GetWindowRect(hwnd)
}

func (p *win32Platform) SetWindowPos(hwnd, after _HWND, x, y, width, height int, flags uint32) error {
	return _SetWindowPos(hwnd, after, int32(x), int32(y), int32(width), int32(height), flags)
}

func (p *win32Platform) SetWindowText(hwnd _HWND, title string) error {
	return _SetWindowTextW(hwnd, title)
}

func createIcon(img *image.NRGBA, icon bool) (_HICON, error) {
	size := img.Bounds().Size()

	var bi _BITMAPV5HEADER
	bi.bV5Size = uint32(unsafe.Sizeof(bi))
	bi.bV5Width = int32(size.X)
	bi.bV5Height = int32(-size.Y)
	bi.bV5Planes = 1
	bi.bV5BitCount = 32
	bi.bV5Compression = _BI_BITFIELDS
	bi.bV5RedMask = 0x00ff0000
	bi.bV5GreenMask = 0x0000ff00
	bi.bV5BlueMask = 0x000000ff
	bi.bV5AlphaMask = 0xff000000

	dc, err := _GetDC(0)
	if err != nil {
		return 0, err
	}
	defer _ReleaseDC(0, dc)

	color, targetPtr, err := _CreateDIBSection(dc, &bi, _DIB_RGB_COLORS, 0, 0)
	if err != nil {
		return 0, err
	}
	defer func() {
		mylog.Check(_DeleteObject(_HGDIOBJ(color)))
	}()

	mask, err := _CreateBitmap(int32(size.X), int32(size.Y), 1, 1, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		mylog.Check(_DeleteObject(_HGDIOBJ(mask)))
	}()

	source := img.Pix
	target := unsafe.Slice(targetPtr, len(source))
	for i := 0; i < len(source)/4; i++ {
		target[4*i] = source[4*i+2]
		target[4*i+1] = source[4*i+1]
		target[4*i+2] = source[4*i+0]
		target[4*i+3] = source[4*i+3]
	}

	var iconInt32 int32
	if icon {
		iconInt32 = 1
	}
	ii := _ICONINFO{
		fIcon:    iconInt32,
		hbmMask:  mask,
		hbmColor: color,
	}
	return _CreateIconIndirect(&ii)
}

func (p *win32Platform) SetWindowIcon(hwnd _HWND, big, small *image.NRGBA) error {
	var icons [2]_HICON
	for i, img := range [...]*image.NRGBA{big, small} {
		if img == nil {
			continue
		}
		icon, err := createIcon(img, true)
		if err != nil {
			for _, created := range icons[:i] {
				mylog.Check(_DestroyIcon(created))
			}
			return err
		}
		icons[i] = icon
	}

	_SendMessageW(hwnd, _WM_SETICON, _ICON_BIG, _LPARAM(icons[0]))
	_SendMessageW(hwnd, _WM_SETICON, _ICON_SMALL, _LPARAM(icons[1]))

	p.destroyIcons(hwnd)
	if icons != [2]_HICON{} {
		p.icons[hwnd] = icons
	}
	return nil
}

func (p *win32Platform) destroyIcons(hwnd _HWND) {
	for _, icon := range p.icons[hwnd] {
		if icon != 0 {
			mylog.Check(_DestroyIcon(icon))
		}
	}
	delete(p.icons, hwnd)
}

func (p *win32Platform) IconSizes() (big, small image.Point) {
	big = image.Pt(int(_GetSystemMetrics(_SM_CXICON)), int(_GetSystemMetrics(_SM_CYICON)))
	small = image.Pt(int(_GetSystemMetrics(_SM_CXSMICON)), int(_GetSystemMetrics(_SM_CYSMICON)))
	return big, small
}

func (p *win32Platform) SetDarkTitleBar(hwnd _HWND, dark bool) error {
	var isDark int32
	if dark {
		isDark = 1
	}
	return _DwmSetWindowAttribute(hwnd, _DWMWA_USE_IMMERSIVE_DARK_MODE, unsafe.Pointer(&isDark), uint32(unsafe.Sizeof(isDark)))
}

func (p *win32Platform) AppsUseLightTheme() bool {
	keyPath := `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`
	k, err := registry.OpenKey(registry.CURRENT_USER, keyPath, syscall.KEY_NOTIFY|registry.QUERY_VALUE)
	if err != nil {
		return true
	}
	defer func() {
		mylog.Check(k.Close())
	}()
	val, _, err := k.GetIntegerValue("AppsUseLightTheme")
	if err != nil {
		return true
	}
	return val != 0
}

func (p *win32Platform) ShowWindow(hwnd _HWND, cmd int32) bool {
	return _ShowWindow(hwnd, cmd)
}

func (p *win32Platform) BringWindowToTop(hwnd _HWND) error {
	return _BringWindowToTop(hwnd)
}

func (p *win32Platform) SetForegroundWindow(hwnd _HWND) bool {
	return _SetForegroundWindow(hwnd)
}

func (p *win32Platform) GetForegroundWindow() _HWND {
	return _GetForegroundWindow()
}

func (p *win32Platform) SetFocus(hwnd _HWND) error {
	_, err := _SetFocus(hwnd)
	return err
}

func (p *win32Platform) MinMaxAnimation() bool {
	ai := _ANIMATIONINFO{cbSize: uint32(unsafe.Sizeof(_ANIMATIONINFO{}))}
	if err := _SystemParametersInfoW(_SPI_GETANIMATION, ai.cbSize, uintptr(unsafe.Pointer(&ai)), 0); err != nil {
		return false
	}
	return ai.iMinAnimate != 0
}

func (p *win32Platform) SetMinMaxAnimation(enable bool) error {
	ai := _ANIMATIONINFO{cbSize: uint32(unsafe.Sizeof(_ANIMATIONINFO{}))}
	if enable {
		ai.iMinAnimate = 1
	}
	return _SystemParametersInfoW(_SPI_SETANIMATION, ai.cbSize, uintptr(unsafe.Pointer(&ai)), _SPIF_SENDCHANGE)
}

func (p *win32Platform) ResetForegroundLockTimeout() error {
	return _SystemParametersInfoW(_SPI_SETFOREGROUNDLOCKTIMEOUT, 0, 0, _SPIF_SENDCHANGE)
}

func (p *win32Platform) SetCapture(hwnd _HWND) {
	_SetCapture(hwnd)
}

func (p *win32Platform) ReleaseCapture() error {
	return _ReleaseCapture()
}

func (p *win32Platform) ClipCursor(rect *_RECT) error {
	return _ClipCursor(rect)
}

func (p *win32Platform) ShowCursor(show bool) {
	_ShowCursor(show)
}

func (p *win32Platform) GetCursorPos() (_POINT, error) {
	return _GetCursorPos()
}

func (p *win32Platform) SetCursorPos(x, y int32) error {
	return _SetCursorPos(x, y)
}

func (p *win32Platform) ClientToScreen(hwnd _HWND, pt *_POINT) error {
	return _ClientToScreen(hwnd, pt)
}

func (p *win32Platform) ScreenToClient(hwnd _HWND, pt *_POINT) error {
	return _ScreenToClient(hwnd, pt)
}

func (p *win32Platform) ClipboardString() (string, error) {
	return win32.ClipboardText()
}

func (p *win32Platform) SetClipboardString(s string) error {
	return win32.SetClipboardText(s)
}

// messageQueue

func (p *win32Platform) PeekMessage(msg *_MSG, remove bool) bool {
	var flags uint32 = _PM_NOREMOVE
	if remove {
		flags = _PM_REMOVE
	}
	return _PeekMessageW(msg, 0, 0, 0, flags)
}

func (p *win32Platform) DispatchMessage(msg *_MSG) {
	_DispatchMessageW(msg)
}

func (p *win32Platform) WaitMessage() error {
	return _WaitMessage()
}

func (p *win32Platform) MessageTime() uint32 {
	return _GetMessageTime()
}

// keyboardLayout

func (p *win32Platform) MapVirtualKey(code, mapType uint32) uint32 {
	return _MapVirtualKeyW(code, mapType)
}

func (p *win32Platform) CharUpper(c uint16) uint16 {
	return _CharUpperW(c)
}

func (p *win32Platform) KeyboardState(state *[256]byte) error {
	return _GetKeyboardState(state)
}

func (p *win32Platform) ToUnicode(vk, scanCode uint32, state *[256]byte, buf []uint16) int {
	return int(_ToUnicode(vk, scanCode, state, buf))
}

func (p *win32Platform) AsyncKeyDown(vk int) bool {
	return _GetAsyncKeyState(int32(vk)) < 0
}

// displayModes

func devModeToVideoMode(dm *_DEVMODEW) VideoMode {
	return VideoMode{
		Width:        int(dm.dmPelsWidth),
		Height:       int(dm.dmPelsHeight),
		BitsPerPixel: int(dm.dmBitsPerPel),
		RefreshRate:  int(dm.dmDisplayFrequency),
	}
}

func (p *win32Platform) VideoModes() ([]VideoMode, error) {
	var modes []VideoMode
	for i := uint32(0); ; i++ {
		dm := _DEVMODEW{dmSize: uint16(unsafe.Sizeof(_DEVMODEW{}))}
		if !_EnumDisplaySettingsW(i, &dm) {
			break
		}
		// Skip modes with less than 15 BPP
		if dm.dmBitsPerPel < 15 {
			continue
		}
		mode := devModeToVideoMode(&dm)
		if !slices.Contains(modes, mode) {
			modes = append(modes, mode)
		}
	}
	if len(modes) == 0 {
		return nil, errors.New("EnumDisplaySettingsW reported no usable modes")
	}
	slices.SortFunc(modes, func(a, b VideoMode) int {
		return cmp.Or(
			cmp.Compare(a.BitsPerPixel, b.BitsPerPixel),
			cmp.Compare(a.Width*a.Height, b.Width*b.Height),
			cmp.Compare(a.Width, b.Width),
			cmp.Compare(a.RefreshRate, b.RefreshRate),
		)
	})
	return modes, nil
}

func (p *win32Platform) CurrentVideoMode() (VideoMode, error) {
	dm := _DEVMODEW{dmSize: uint16(unsafe.Sizeof(_DEVMODEW{}))}
	if !_EnumDisplaySettingsW(_ENUM_CURRENT_SETTINGS, &dm) {
		return VideoMode{}, errors.New("EnumDisplaySettingsW failed for the current mode")
	}
	return devModeToVideoMode(&dm), nil
}

func (p *win32Platform) SetVideoMode(mode VideoMode) error {
	dm := _DEVMODEW{dmSize: uint16(unsafe.Sizeof(_DEVMODEW{}))}
	dm.dmFields = _DM_PELSWIDTH | _DM_PELSHEIGHT | _DM_BITSPERPEL
	dm.dmPelsWidth = uint32(mode.Width)
	dm.dmPelsHeight = uint32(mode.Height)
	dm.dmBitsPerPel = uint32(mode.BitsPerPixel)
	if mode.RefreshRate > 0 {
		dm.dmFields |= _DM_DISPLAYFREQUENCY
		dm.dmDisplayFrequency = uint32(mode.RefreshRate)
	}

	result := _ChangeDisplaySettingsW(&dm, _CDS_FULLSCREEN)
	if result != _DISP_CHANGE_SUCCESSFUL && dm.dmFields&_DM_DISPLAYFREQUENCY != 0 {
		// Try again without the refresh rate
		dm.dmFields &^= _DM_DISPLAYFREQUENCY
		result = _ChangeDisplaySettingsW(&dm, _CDS_FULLSCREEN)
	}
	if result != _DISP_CHANGE_SUCCESSFUL {
		return fmt.Errorf("ChangeDisplaySettingsW returned %d", result)
	}
	return nil
}

func (p *win32Platform) RestoreVideoMode() error {
	if result := _ChangeDisplaySettingsW(nil, _CDS_FULLSCREEN); result != _DISP_CHANGE_SUCCESSFUL {
		return fmt.Errorf("ChangeDisplaySettingsW returned %d", result)
	}
	return nil
}
