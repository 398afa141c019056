// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

type (
	_HICON     windows.Handle
	_HBITMAP   windows.Handle
	_HGDIOBJ   windows.Handle
	_HCURSOR   windows.Handle
	_HINSTANCE windows.Handle
)

const (
	_CS_HREDRAW = 0x0002
	_CS_VREDRAW = 0x0001
	_CS_OWNDC   = 0x0020

	_IDC_ARROW = 32512

	_WM_SETICON = 0x0080
	_ICON_SMALL = 0
	_ICON_BIG   = 1

	_SM_CXICON   = 11
	_SM_CYICON   = 12
	_SM_CXSMICON = 49
	_SM_CYSMICON = 50

	_SPI_GETWORKAREA              = 0x0030
	_SPI_GETANIMATION             = 0x0048
	_SPI_SETANIMATION             = 0x0049
	_SPI_SETFOREGROUNDLOCKTIMEOUT = 0x2001
	_SPIF_SENDCHANGE              = 0x0002

	_BI_BITFIELDS   = 3
	_DIB_RGB_COLORS = 0

	_DWMWA_USE_IMMERSIVE_DARK_MODE = 20

	_ENUM_CURRENT_SETTINGS  = 0xFFFFFFFF
	_CDS_FULLSCREEN         = 0x00000004
	_DISP_CHANGE_SUCCESSFUL = 0

	_DM_BITSPERPEL       = 0x00040000
	_DM_PELSWIDTH        = 0x00080000
	_DM_PELSHEIGHT       = 0x00100000
	_DM_DISPLAYFREQUENCY = 0x00400000

	_ERROR_CLASS_ALREADY_EXISTS = 1410
)

type _WNDCLASSEXW struct {
	cbSize        uint32
	style         uint32
	lpfnWndProc   uintptr
	cbClsExtra    int32
	cbWndExtra    int32
	hInstance     _HINSTANCE
	hIcon         _HICON
	hCursor       _HCURSOR
	hbrBackground windows.Handle
	lpszMenuName  *uint16
	lpszClassName *uint16
	hIconSm       _HICON
}

type _ANIMATIONINFO struct {
	cbSize      uint32
	iMinAnimate int32
}

type _BITMAPV5HEADER struct {
	bV5Size          uint32
	bV5Width         int32
	bV5Height        int32
	bV5Planes        uint16
	bV5BitCount      uint16
	bV5Compression   uint32
	bV5SizeImage     uint32
	bV5XPelsPerMeter int32
	bV5YPelsPerMeter int32
	bV5ClrUsed       uint32
	bV5ClrImportant  uint32
	bV5RedMask       uint32
	bV5GreenMask     uint32
	bV5BlueMask      uint32
	bV5AlphaMask     uint32
	bV5CSType        uint32
	bV5Endpoints     [36]byte
	bV5GammaRed      uint32
	bV5GammaGreen    uint32
	bV5GammaBlue     uint32
	bV5Intent        uint32
	bV5ProfileData   uint32
	bV5ProfileSize   uint32
	bV5Reserved      uint32
}

type _ICONINFO struct {
	fIcon    int32
	xHotspot uint32
	yHotspot uint32
	hbmMask  _HBITMAP
	hbmColor _HBITMAP
}

// Mirrors DEVMODEW with the display fields of its unions (220 bytes).
type _DEVMODEW struct {
	dmDeviceName         [32]uint16
	dmSpecVersion        uint16
	dmDriverVersion      uint16
	dmSize               uint16
	dmDriverExtra        uint16
	dmFields             uint32
	dmPosition           _POINT
	dmDisplayOrientation uint32
	dmDisplayFixedOutput uint32
	dmColor              int16
	dmDuplex             int16
	dmYResolution        int16
	dmTTOption           int16
	dmCollate            int16
	dmFormName           [32]uint16
	dmLogPixels          uint16
	dmBitsPerPel         uint32
	dmPelsWidth          uint32
	dmPelsHeight         uint32
	dmDisplayFlags       uint32
	dmDisplayFrequency   uint32
	dmICMMethod          uint32
	dmICMIntent          uint32
	dmMediaType          uint32
	dmDitherType         uint32
	dmReserved1          uint32
	dmReserved2          uint32
	dmPanningWidth       uint32
	dmPanningHeight      uint32
}

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	gdi32    = windows.NewLazySystemDLL("gdi32.dll")
	opengl32 = windows.NewLazySystemDLL("opengl32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")
	dwmapi   = windows.NewLazySystemDLL("dwmapi.dll")

	procAdjustWindowRectEx     = user32.NewProc("AdjustWindowRectEx")
	procBringWindowToTop       = user32.NewProc("BringWindowToTop")
	procChangeDisplaySettingsW = user32.NewProc("ChangeDisplaySettingsW")
	procCharUpperW             = user32.NewProc("CharUpperW")
	procClientToScreen         = user32.NewProc("ClientToScreen")
	procClipCursor             = user32.NewProc("ClipCursor")
	procCreateIconIndirect     = user32.NewProc("CreateIconIndirect")
	procCreateWindowExW        = user32.NewProc("CreateWindowExW")
	procDefWindowProcW         = user32.NewProc("DefWindowProcW")
	procDestroyIcon            = user32.NewProc("DestroyIcon")
	procDestroyWindow          = user32.NewProc("DestroyWindow")
	procDispatchMessageW       = user32.NewProc("DispatchMessageW")
	procEnumDisplaySettingsW   = user32.NewProc("EnumDisplaySettingsW")
	procGetAsyncKeyState       = user32.NewProc("GetAsyncKeyState")
	procGetCursorPos           = user32.NewProc("GetCursorPos")
	procGetDC                  = user32.NewProc("GetDC")
	procGetForegroundWindow    = user32.NewProc("GetForegroundWindow")
	procGetKeyboardState       = user32.NewProc("GetKeyboardState")
	procGetMessageTime         = user32.NewProc("GetMessageTime")
	procGetSystemMetrics       = user32.NewProc("GetSystemMetrics")
	procGetWindowRect          = user32.NewProc("GetWindowRect")
	procLoadCursorW            = user32.NewProc("LoadCursorW")
	procMapVirtualKeyW         = user32.NewProc("MapVirtualKeyW")
	procPeekMessageW           = user32.NewProc("PeekMessageW")
	procRegisterClassExW       = user32.NewProc("RegisterClassExW")
	procReleaseCapture         = user32.NewProc("ReleaseCapture")
	procReleaseDC              = user32.NewProc("ReleaseDC")
	procScreenToClient         = user32.NewProc("ScreenToClient")
	procSendMessageW           = user32.NewProc("SendMessageW")
	procSetCapture             = user32.NewProc("SetCapture")
	procSetCursorPos           = user32.NewProc("SetCursorPos")
	procSetFocus               = user32.NewProc("SetFocus")
	procSetForegroundWindow    = user32.NewProc("SetForegroundWindow")
	procSetWindowPos           = user32.NewProc("SetWindowPos")
	procSetWindowTextW         = user32.NewProc("SetWindowTextW")
	procShowCursor             = user32.NewProc("ShowCursor")
	procShowWindow             = user32.NewProc("ShowWindow")
	procSystemParametersInfoW  = user32.NewProc("SystemParametersInfoW")
	procToUnicode              = user32.NewProc("ToUnicode")
	procUnregisterClassW       = user32.NewProc("UnregisterClassW")
	procWaitMessage            = user32.NewProc("WaitMessage")

	procCreateBitmap        = gdi32.NewProc("CreateBitmap")
	procCreateDIBSection    = gdi32.NewProc("CreateDIBSection")
	procDeleteObject        = gdi32.NewProc("DeleteObject")
	procDescribePixelFormat = gdi32.NewProc("DescribePixelFormat")
	procGetPixelFormat      = gdi32.NewProc("GetPixelFormat")
	procSetPixelFormat      = gdi32.NewProc("SetPixelFormat")
	procSwapBuffers         = gdi32.NewProc("SwapBuffers")

	procWglCreateContext  = opengl32.NewProc("wglCreateContext")
	procWglDeleteContext  = opengl32.NewProc("wglDeleteContext")
	procWglGetProcAddress = opengl32.NewProc("wglGetProcAddress")
	procWglMakeCurrent    = opengl32.NewProc("wglMakeCurrent")
	procWglShareLists     = opengl32.NewProc("wglShareLists")

	procGetModuleHandleW = kernel32.NewProc("GetModuleHandleW")

	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
)

func boolToUintptr(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}

func _AdjustWindowRectEx(rect *_RECT, style uint32, menu bool, exStyle uint32) error {
	r, _, e := procAdjustWindowRectEx.Call(uintptr(unsafe.Pointer(rect)), uintptr(style), boolToUintptr(menu), uintptr(exStyle))
	if r == 0 {
		return fmt.Errorf("glfw: AdjustWindowRectEx failed: %w", e)
	}
	return nil
}

func _BringWindowToTop(hWnd _HWND) error {
	r, _, e := procBringWindowToTop.Call(uintptr(hWnd))
	if r == 0 {
		return fmt.Errorf("glfw: BringWindowToTop failed: %w", e)
	}
	return nil
}

func _ChangeDisplaySettingsW(dm *_DEVMODEW, flags uint32) int32 {
	r, _, _ := procChangeDisplaySettingsW.Call(uintptr(unsafe.Pointer(dm)), uintptr(flags))
	return int32(r)
}

func _CharUpperW(c uint16) uint16 {
	// A pointer argument with a zero high word is a single character
	r, _, _ := procCharUpperW.Call(uintptr(c))
	return uint16(r)
}

func _ClientToScreen(hWnd _HWND, point *_POINT) error {
	r, _, e := procClientToScreen.Call(uintptr(hWnd), uintptr(unsafe.Pointer(point)))
	if r == 0 {
		return fmt.Errorf("glfw: ClientToScreen failed: %w", e)
	}
	return nil
}

func _ClipCursor(lpRect *_RECT) error {
	r, _, e := procClipCursor.Call(uintptr(unsafe.Pointer(lpRect)))
	if r == 0 {
		return fmt.Errorf("glfw: ClipCursor failed: %w", e)
	}
	return nil
}

func _CreateBitmap(nWidth, nHeight int32, nPlanes, nBitCount uint32, lpBits unsafe.Pointer) (_HBITMAP, error) {
	r, _, e := procCreateBitmap.Call(uintptr(nWidth), uintptr(nHeight), uintptr(nPlanes), uintptr(nBitCount), uintptr(lpBits))
	if r == 0 {
		return 0, fmt.Errorf("glfw: CreateBitmap failed: %w", e)
	}
	return _HBITMAP(r), nil
}

func _CreateDIBSection(hdc _HDC, pbmi *_BITMAPV5HEADER, usage uint32, hSection windows.Handle, offset uint32) (_HBITMAP, *byte, error) {
	var bits *byte
	r, _, e := procCreateDIBSection.Call(uintptr(hdc), uintptr(unsafe.Pointer(pbmi)), uintptr(usage), uintptr(unsafe.Pointer(&bits)), uintptr(hSection), uintptr(offset))
	if r == 0 {
		return 0, nil, fmt.Errorf("glfw: CreateDIBSection failed: %w", e)
	}
	return _HBITMAP(r), bits, nil
}

func _CreateIconIndirect(piconinfo *_ICONINFO) (_HICON, error) {
	r, _, e := procCreateIconIndirect.Call(uintptr(unsafe.Pointer(piconinfo)))
	if r == 0 {
		return 0, fmt.Errorf("glfw: CreateIconIndirect failed: %w", e)
	}
	return _HICON(r), nil
}

func _CreateWindowExW(dwExStyle uint32, className, windowName string, dwStyle uint32, x, y, nWidth, nHeight int32, hInstance _HINSTANCE) (_HWND, error) {
	class, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return 0, err
	}
	name, err := windows.UTF16PtrFromString(windowName)
	if err != nil {
		return 0, err
	}
	r, _, e := procCreateWindowExW.Call(uintptr(dwExStyle), uintptr(unsafe.Pointer(class)), uintptr(unsafe.Pointer(name)), uintptr(dwStyle),
		uintptr(x), uintptr(y), uintptr(nWidth), uintptr(nHeight),
		0, // No parent window
		0, // No window menu
		uintptr(hInstance), 0)
	if r == 0 {
		return 0, fmt.Errorf("glfw: CreateWindowExW failed: %w", e)
	}
	return _HWND(r), nil
}

func _DefWindowProcW(hWnd _HWND, uMsg uint32, wParam _WPARAM, lParam _LPARAM) uintptr {
	r, _, _ := procDefWindowProcW.Call(uintptr(hWnd), uintptr(uMsg), uintptr(wParam), uintptr(lParam))
	return r
}

func _DeleteObject(ho _HGDIOBJ) error {
	r, _, e := procDeleteObject.Call(uintptr(ho))
	if r == 0 {
		return fmt.Errorf("glfw: DeleteObject failed: %w", e)
	}
	return nil
}

func _DescribePixelFormat(hdc _HDC, iPixelFormat int32, nBytes uint32, ppfd *_PIXELFORMATDESCRIPTOR) int32 {
	r, _, _ := procDescribePixelFormat.Call(uintptr(hdc), uintptr(iPixelFormat), uintptr(nBytes), uintptr(unsafe.Pointer(ppfd)))
	return int32(r)
}

func _DestroyIcon(hIcon _HICON) error {
	r, _, e := procDestroyIcon.Call(uintptr(hIcon))
	if r == 0 {
		return fmt.Errorf("glfw: DestroyIcon failed: %w", e)
	}
	return nil
}

func _DestroyWindow(hWnd _HWND) error {
	r, _, e := procDestroyWindow.Call(uintptr(hWnd))
	if r == 0 {
		return fmt.Errorf("glfw: DestroyWindow failed: %w", e)
	}
	return nil
}

func _DispatchMessageW(lpMsg *_MSG) uintptr {
	r, _, _ := procDispatchMessageW.Call(uintptr(unsafe.Pointer(lpMsg)))
	return r
}

func _DwmSetWindowAttribute(hWnd _HWND, attribute uint32, value unsafe.Pointer, size uint32) error {
	if err := procDwmSetWindowAttribute.Find(); err != nil {
		return err
	}
	r, _, _ := procDwmSetWindowAttribute.Call(uintptr(hWnd), uintptr(attribute), uintptr(value), uintptr(size))
	if r != 0 {
		return fmt.Errorf("glfw: DwmSetWindowAttribute failed: HRESULT %#x", uint32(r))
	}
	return nil
}

func _EnumDisplaySettingsW(iModeNum uint32, dm *_DEVMODEW) bool {
	r, _, _ := procEnumDisplaySettingsW.Call(0, uintptr(iModeNum), uintptr(unsafe.Pointer(dm)))
	return r != 0
}

func _GetAsyncKeyState(vKey int32) int16 {
	r, _, _ := procGetAsyncKeyState.Call(uintptr(vKey))
	return int16(r)
}

func _GetCursorPos() (_POINT, error) {
	var point _POINT
	r, _, e := procGetCursorPos.Call(uintptr(unsafe.Pointer(&point)))
	if r == 0 {
		return _POINT{}, fmt.Errorf("glfw: GetCursorPos failed: %w", e)
	}
	return point, nil
}

func _GetDC(hWnd _HWND) (_HDC, error) {
	r, _, e := procGetDC.Call(uintptr(hWnd))
	if r == 0 {
		return 0, fmt.Errorf("glfw: GetDC failed: %w", e)
	}
	return _HDC(r), nil
}

func _GetForegroundWindow() _HWND {
	r, _, _ := procGetForegroundWindow.Call()
	return _HWND(r)
}

func _GetKeyboardState(lpKeyState *[256]byte) error {
	r, _, e := procGetKeyboardState.Call(uintptr(unsafe.Pointer(&lpKeyState[0])))
	if r == 0 {
		return fmt.Errorf("glfw: GetKeyboardState failed: %w", e)
	}
	return nil
}

func _GetMessageTime() uint32 {
	r, _, _ := procGetMessageTime.Call()
	return uint32(r)
}

func _GetModuleHandleW() (_HINSTANCE, error) {
	r, _, e := procGetModuleHandleW.Call(0)
	if r == 0 {
		return 0, fmt.Errorf("glfw: GetModuleHandleW failed: %w", e)
	}
	return _HINSTANCE(r), nil
}

func _GetPixelFormat(hdc _HDC) int32 {
	r, _, _ := procGetPixelFormat.Call(uintptr(hdc))
	return int32(r)
}

func _GetSystemMetrics(nIndex int32) int32 {
	r, _, _ := procGetSystemMetrics.Call(uintptr(nIndex))
	return int32(r)
}

func _GetWindowRect(hWnd _HWND) (_RECT, error) {
	var rect _RECT
	r, _, e := procGetWindowRect.Call(uintptr(hWnd), uintptr(unsafe.Pointer(&rect)))
	if r == 0 {
		return _RECT{}, fmt.Errorf("glfw: GetWindowRect failed: %w", e)
	}
	return rect, nil
}

func _LoadCursorW(hInstance _HINSTANCE, lpCursorName uintptr) (_HCURSOR, error) {
	r, _, e := procLoadCursorW.Call(uintptr(hInstance), lpCursorName)
	if r == 0 {
		return 0, fmt.Errorf("glfw: LoadCursorW failed: %w", e)
	}
	return _HCURSOR(r), nil
}

func _MapVirtualKeyW(uCode uint32, uMapType uint32) uint32 {
	r, _, _ := procMapVirtualKeyW.Call(uintptr(uCode), uintptr(uMapType))
	return uint32(r)
}

func _PeekMessageW(lpMsg *_MSG, hWnd _HWND, wMsgFilterMin, wMsgFilterMax, wRemoveMsg uint32) bool {
	r, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(lpMsg)), uintptr(hWnd), uintptr(wMsgFilterMin), uintptr(wMsgFilterMax), uintptr(wRemoveMsg))
	return r != 0
}

func _RegisterClassExW(class *_WNDCLASSEXW) (uint16, error) {
	r, _, e := procRegisterClassExW.Call(uintptr(unsafe.Pointer(class)))
	if r == 0 {
		if errno, ok := e.(windows.Errno); ok && errno == _ERROR_CLASS_ALREADY_EXISTS {
			return 0, fmt.Errorf("glfw: window class already exists: %w", e)
		}
		return 0, fmt.Errorf("glfw: RegisterClassExW failed: %w", e)
	}
	return uint16(r), nil
}

func _ReleaseCapture() error {
	r, _, e := procReleaseCapture.Call()
	if r == 0 {
		return fmt.Errorf("glfw: ReleaseCapture failed: %w", e)
	}
	return nil
}

func _ReleaseDC(hWnd _HWND, hDC _HDC) int32 {
	r, _, _ := procReleaseDC.Call(uintptr(hWnd), uintptr(hDC))
	return int32(r)
}

func _ScreenToClient(hWnd _HWND, lpPoint *_POINT) error {
	r, _, e := procScreenToClient.Call(uintptr(hWnd), uintptr(unsafe.Pointer(lpPoint)))
	if r == 0 {
		return fmt.Errorf("glfw: ScreenToClient failed: %w", e)
	}
	return nil
}

func _SendMessageW(hWnd _HWND, msg uint32, wParam _WPARAM, lParam _LPARAM) uintptr {
	r, _, _ := procSendMessageW.Call(uintptr(hWnd), uintptr(msg), uintptr(wParam), uintptr(lParam))
	return r
}

func _SetCapture(hWnd _HWND) _HWND {
	r, _, _ := procSetCapture.Call(uintptr(hWnd))
	return _HWND(r)
}

func _SetCursorPos(x, y int32) error {
	r, _, e := procSetCursorPos.Call(uintptr(x), uintptr(y))
	if r == 0 {
		return fmt.Errorf("glfw: SetCursorPos failed: %w", e)
	}
	return nil
}

func _SetFocus(hWnd _HWND) (_HWND, error) {
	r, _, e := procSetFocus.Call(uintptr(hWnd))
	if r == 0 && e.(windows.Errno) != 0 {
		return 0, fmt.Errorf("glfw: SetFocus failed: %w", e)
	}
	return _HWND(r), nil
}

func _SetForegroundWindow(hWnd _HWND) bool {
	r, _, _ := procSetForegroundWindow.Call(uintptr(hWnd))
	return r != 0
}

func _SetPixelFormat(hdc _HDC, iPixelFormat int32, ppfd *_PIXELFORMATDESCRIPTOR) bool {
	r, _, _ := procSetPixelFormat.Call(uintptr(hdc), uintptr(iPixelFormat), uintptr(unsafe.Pointer(ppfd)))
	return r != 0
}

func _SetWindowPos(hWnd _HWND, hWndInsertAfter _HWND, x, y, cx, cy int32, uFlags uint32) error {
	r, _, e := procSetWindowPos.Call(uintptr(hWnd), uintptr(hWndInsertAfter), uintptr(x), uintptr(y), uintptr(cx), uintptr(cy), uintptr(uFlags))
	if r == 0 {
		return fmt.Errorf("glfw: SetWindowPos failed: %w", e)
	}
	return nil
}

func _SetWindowTextW(hWnd _HWND, str string) error {
	// An empty string is ok.
	lpString, err := windows.UTF16PtrFromString(str)
	if err != nil {
		return err
	}
	r, _, e := procSetWindowTextW.Call(uintptr(hWnd), uintptr(unsafe.Pointer(lpString)))
	if r == 0 {
		return fmt.Errorf("glfw: SetWindowTextW failed: %w", e)
	}
	return nil
}

func _ShowCursor(show bool) int32 {
	r, _, _ := procShowCursor.Call(boolToUintptr(show))
	return int32(r)
}

func _ShowWindow(hWnd _HWND, nCmdShow int32) bool {
	r, _, _ := procShowWindow.Call(uintptr(hWnd), uintptr(nCmdShow))
	return r != 0
}

func _SwapBuffers(hdc _HDC) bool {
	r, _, _ := procSwapBuffers.Call(uintptr(hdc))
	return r != 0
}

func _SystemParametersInfoW(uiAction uint32, uiParam uint32, pvParam uintptr, fWinIni uint32) error {
	r, _, e := procSystemParametersInfoW.Call(uintptr(uiAction), uintptr(uiParam), pvParam, uintptr(fWinIni))
	if r == 0 {
		return fmt.Errorf("glfw: SystemParametersInfoW failed: %w", e)
	}
	return nil
}

func _ToUnicode(wVirtKey, wScanCode uint32, lpKeyState *[256]byte, pwszBuff []uint16) int32 {
	r, _, _ := procToUnicode.Call(uintptr(wVirtKey), uintptr(wScanCode), uintptr(unsafe.Pointer(&lpKeyState[0])),
		uintptr(unsafe.Pointer(&pwszBuff[0])), uintptr(len(pwszBuff)), 0)
	return int32(r)
}

func _UnregisterClassW(className string, hInstance _HINSTANCE) error {
	class, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return err
	}
	r, _, e := procUnregisterClassW.Call(uintptr(unsafe.Pointer(class)), uintptr(hInstance))
	if r == 0 {
		return fmt.Errorf("glfw: UnregisterClassW failed: %w", e)
	}
	return nil
}

func _WaitMessage() error {
	r, _, e := procWaitMessage.Call()
	if r == 0 {
		return fmt.Errorf("glfw: WaitMessage failed: %w", e)
	}
	return nil
}

func wglCreateContext(hdc _HDC) _HGLRC {
	r, _, _ := procWglCreateContext.Call(uintptr(hdc))
	return _HGLRC(r)
}

func wglDeleteContext(hglrc _HGLRC) bool {
	r, _, _ := procWglDeleteContext.Call(uintptr(hglrc))
	return r != 0
}

func wglGetProcAddress(name string) uintptr {
	cname, err := windows.BytePtrFromString(name)
	if err != nil {
		return 0
	}
	r, _, _ := procWglGetProcAddress.Call(uintptr(unsafe.Pointer(cname)))
	// Some drivers return small sentinel values instead of NULL
	switch int(r) {
	case 0, 1, 2, 3, -1:
		return 0
	}
	return r
}

func wglMakeCurrent(hdc _HDC, hglrc _HGLRC) bool {
	r, _, _ := procWglMakeCurrent.Call(uintptr(hdc), uintptr(hglrc))
	return r != 0
}

func wglShareLists(hglrc1, hglrc2 _HGLRC) bool {
	r, _, _ := procWglShareLists.Call(uintptr(hglrc1), uintptr(hglrc2))
	return r != 0
}
