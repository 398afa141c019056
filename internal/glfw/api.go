// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

type (
	_HWND   uintptr
	_HDC    uintptr
	_HGLRC  uintptr
	_WPARAM uintptr
	_LPARAM uintptr
)

const (
	_WM_NULL          = 0x0000
	_WM_CREATE        = 0x0001
	_WM_MOVE          = 0x0003
	_WM_SIZE          = 0x0005
	_WM_ACTIVATE      = 0x0006
	_WM_PAINT         = 0x000F
	_WM_CLOSE         = 0x0010
	_WM_QUIT          = 0x0012
	_WM_DISPLAYCHANGE = 0x007E
	_WM_NCCREATE      = 0x0081
	_WM_KEYDOWN       = 0x0100
	_WM_KEYUP         = 0x0101
	_WM_CHAR          = 0x0102
	_WM_SYSKEYDOWN    = 0x0104
	_WM_SYSKEYUP      = 0x0105
	_WM_SYSCOMMAND    = 0x0112
	_WM_MOUSEMOVE     = 0x0200
	_WM_LBUTTONDOWN   = 0x0201
	_WM_LBUTTONUP     = 0x0202
	_WM_RBUTTONDOWN   = 0x0204
	_WM_RBUTTONUP     = 0x0205
	_WM_MBUTTONDOWN   = 0x0207
	_WM_MBUTTONUP     = 0x0208
	_WM_MOUSEWHEEL    = 0x020A
	_WM_XBUTTONDOWN   = 0x020B
	_WM_XBUTTONUP     = 0x020C
	_WM_MOUSEHWHEEL   = 0x020E
)

const (
	_WA_INACTIVE = 0

	_SC_KEYMENU      = 0xF100
	_SC_SCREENSAVE   = 0xF140
	_SC_MONITORPOWER = 0xF170

	_XBUTTON1 = 0x0001
	_XBUTTON2 = 0x0002

	_WHEEL_DELTA = 120

	_PM_NOREMOVE = 0x0000
	_PM_REMOVE   = 0x0001
)

// Bits of the key message lParam.
const (
	_KF_EXTENDED     = 0x0100
	_KF_UP           = 0x8000
	_LPARAM_EXTENDED = 0x01000000
	_LPARAM_SCANCODE = 0x01ff0000
)

const (
	_VK_BACK       = 0x08
	_VK_TAB        = 0x09
	_VK_CLEAR      = 0x0C
	_VK_RETURN     = 0x0D
	_VK_SHIFT      = 0x10
	_VK_CONTROL    = 0x11
	_VK_MENU       = 0x12
	_VK_PAUSE      = 0x13
	_VK_CAPITAL    = 0x14
	_VK_ESCAPE     = 0x1B
	_VK_SPACE      = 0x20
	_VK_PRIOR      = 0x21
	_VK_NEXT       = 0x22
	_VK_END        = 0x23
	_VK_HOME       = 0x24
	_VK_LEFT       = 0x25
	_VK_UP         = 0x26
	_VK_RIGHT      = 0x27
	_VK_DOWN       = 0x28
	_VK_INSERT     = 0x2D
	_VK_DELETE     = 0x2E
	_VK_LWIN       = 0x5B
	_VK_RWIN       = 0x5C
	_VK_APPS       = 0x5D
	_VK_NUMPAD0    = 0x60
	_VK_NUMPAD1    = 0x61
	_VK_NUMPAD2    = 0x62
	_VK_NUMPAD3    = 0x63
	_VK_NUMPAD4    = 0x64
	_VK_NUMPAD5    = 0x65
	_VK_NUMPAD6    = 0x66
	_VK_NUMPAD7    = 0x67
	_VK_NUMPAD8    = 0x68
	_VK_NUMPAD9    = 0x69
	_VK_MULTIPLY   = 0x6A
	_VK_ADD        = 0x6B
	_VK_SUBTRACT   = 0x6D
	_VK_DECIMAL    = 0x6E
	_VK_DIVIDE     = 0x6F
	_VK_F1         = 0x70
	_VK_F24        = 0x87
	_VK_NUMLOCK    = 0x90
	_VK_SCROLL     = 0x91
	_VK_LSHIFT     = 0xA0
	_VK_RSHIFT     = 0xA1
	_VK_LCONTROL   = 0xA2
	_VK_RCONTROL   = 0xA3
	_VK_LMENU      = 0xA4
	_VK_RMENU      = 0xA5
	_VK_PROCESSKEY = 0xE5
)

const (
	_MAPVK_VK_TO_VSC  = 0
	_MAPVK_VSC_TO_VK  = 1
	_MAPVK_VK_TO_CHAR = 2
)

const (
	_WS_OVERLAPPED   = 0x00000000
	_WS_POPUP        = 0x80000000
	_WS_VISIBLE      = 0x10000000
	_WS_CLIPSIBLINGS = 0x04000000
	_WS_CLIPCHILDREN = 0x02000000
	_WS_CAPTION      = 0x00C00000
	_WS_SYSMENU      = 0x00080000
	_WS_SIZEBOX      = 0x00040000
	_WS_MINIMIZEBOX  = 0x00020000
	_WS_MAXIMIZEBOX  = 0x00010000

	_WS_EX_WINDOWEDGE = 0x00000100
	_WS_EX_APPWINDOW  = 0x00040000
)

const (
	_SW_HIDE          = 0
	_SW_SHOWNORMAL    = 1
	_SW_SHOWMINIMIZED = 2
	_SW_MINIMIZE      = 6
	_SW_RESTORE       = 9

	_SWP_NOSIZE        = 0x0001
	_SWP_NOMOVE        = 0x0002
	_SWP_NOZORDER      = 0x0004
	_SWP_NOOWNERZORDER = 0x0200

	_HWND_TOP     _HWND = 0
	_HWND_TOPMOST _HWND = ^_HWND(0)
)

const (
	_PFD_DOUBLEBUFFER        = 0x00000001
	_PFD_STEREO              = 0x00000002
	_PFD_DRAW_TO_WINDOW      = 0x00000004
	_PFD_SUPPORT_OPENGL      = 0x00000020
	_PFD_GENERIC_FORMAT      = 0x00000040
	_PFD_GENERIC_ACCELERATED = 0x00001000

	_PFD_TYPE_RGBA       = 0
	_PFD_TYPE_COLORINDEX = 1
)

// WGL_ARB_pixel_format, WGL_ARB_multisample
const (
	_WGL_NUMBER_PIXEL_FORMATS_ARB = 0x2000
	_WGL_DRAW_TO_WINDOW_ARB       = 0x2001
	_WGL_ACCELERATION_ARB         = 0x2003
	_WGL_SUPPORT_OPENGL_ARB       = 0x2010
	_WGL_DOUBLE_BUFFER_ARB        = 0x2011
	_WGL_STEREO_ARB               = 0x2012
	_WGL_PIXEL_TYPE_ARB           = 0x2013
	_WGL_RED_BITS_ARB             = 0x2015
	_WGL_GREEN_BITS_ARB           = 0x2017
	_WGL_BLUE_BITS_ARB            = 0x2019
	_WGL_ALPHA_BITS_ARB           = 0x201B
	_WGL_ACCUM_RED_BITS_ARB       = 0x201E
	_WGL_ACCUM_GREEN_BITS_ARB     = 0x201F
	_WGL_ACCUM_BLUE_BITS_ARB      = 0x2020
	_WGL_ACCUM_ALPHA_BITS_ARB     = 0x2021
	_WGL_DEPTH_BITS_ARB           = 0x2022
	_WGL_STENCIL_BITS_ARB         = 0x2023
	_WGL_AUX_BUFFERS_ARB          = 0x2024
	_WGL_NO_ACCELERATION_ARB      = 0x2025
	_WGL_GENERIC_ACCELERATION_ARB = 0x2026
	_WGL_FULL_ACCELERATION_ARB    = 0x2027
	_WGL_TYPE_RGBA_ARB            = 0x202B
	_WGL_TYPE_COLORINDEX_ARB      = 0x202C
	_WGL_SAMPLES_ARB              = 0x2042
)

// WGL_ARB_create_context, WGL_ARB_create_context_profile, WGL_EXT_create_context_es2_profile
const (
	_WGL_CONTEXT_MAJOR_VERSION_ARB             = 0x2091
	_WGL_CONTEXT_MINOR_VERSION_ARB             = 0x2092
	_WGL_CONTEXT_FLAGS_ARB                     = 0x2094
	_WGL_CONTEXT_PROFILE_MASK_ARB              = 0x9126
	_WGL_CONTEXT_DEBUG_BIT_ARB                 = 0x0001
	_WGL_CONTEXT_FORWARD_COMPATIBLE_BIT_ARB    = 0x0002
	_WGL_CONTEXT_CORE_PROFILE_BIT_ARB          = 0x0001
	_WGL_CONTEXT_COMPATIBILITY_PROFILE_BIT_ARB = 0x0002
	_WGL_CONTEXT_ES2_PROFILE_BIT_EXT           = 0x0004
)

type _POINT struct {
	x int32
	y int32
}

type _RECT struct {
	left   int32
	top    int32
	right  int32
	bottom int32
}

type _MSG struct {
	hwnd     _HWND
	message  uint32
	wParam   _WPARAM
	lParam   _LPARAM
	time     uint32
	pt       _POINT
	lPrivate uint32
}

// Mirrors PIXELFORMATDESCRIPTOR (40 bytes).
type _PIXELFORMATDESCRIPTOR struct {
	nSize           uint16
	nVersion        uint16
	dwFlags         uint32
	iPixelType      byte
	cColorBits      byte
	cRedBits        byte
	cRedShift       byte
	cGreenBits      byte
	cGreenShift     byte
	cBlueBits       byte
	cBlueShift      byte
	cAlphaBits      byte
	cAlphaShift     byte
	cAccumBits      byte
	cAccumRedBits   byte
	cAccumGreenBits byte
	cAccumBlueBits  byte
	cAccumAlphaBits byte
	cDepthBits      byte
	cStencilBits    byte
	cAuxBuffers     byte
	iLayerType      byte
	bReserved       byte
	dwLayerMask     uint32
	dwVisibleMask   uint32
	dwDamageMask    uint32
}

func _LOWORD(dw uint32) uint16 {
	return uint16(dw)
}

func _HIWORD(dw uint32) uint16 {
	return uint16(dw >> 16)
}

func _GET_X_LPARAM(lp _LPARAM) int {
	return int(int16(_LOWORD(uint32(lp))))
}

func _GET_Y_LPARAM(lp _LPARAM) int {
	return int(int16(_HIWORD(uint32(lp))))
}

func _GET_XBUTTON_WPARAM(wParam _WPARAM) uint16 {
	return _HIWORD(uint32(wParam))
}

func _GET_WHEEL_DELTA_WPARAM(wParam _WPARAM) int16 {
	return int16(_HIWORD(uint32(wParam)))
}
