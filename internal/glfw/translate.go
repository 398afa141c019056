// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import "unicode/utf16"

var numpadKeys = map[uint32]Key{
	_VK_INSERT:   KeyKP0,
	_VK_END:      KeyKP1,
	_VK_DOWN:     KeyKP2,
	_VK_NEXT:     KeyKP3,
	_VK_LEFT:     KeyKP4,
	_VK_CLEAR:    KeyKP5,
	_VK_RIGHT:    KeyKP6,
	_VK_HOME:     KeyKP7,
	_VK_UP:       KeyKP8,
	_VK_PRIOR:    KeyKP9,
	_VK_DIVIDE:   KeyKPDivide,
	_VK_MULTIPLY: KeyKPMultiply,
	_VK_SUBTRACT: KeyKPSubtract,
	_VK_ADD:      KeyKPAdd,
	_VK_DELETE:   KeyKPDecimal,
}

var specialKeys = map[_WPARAM]Key{
	_VK_ESCAPE:   KeyEscape,
	_VK_TAB:      KeyTab,
	_VK_BACK:     KeyBackspace,
	_VK_HOME:     KeyHome,
	_VK_END:      KeyEnd,
	_VK_PRIOR:    KeyPageUp,
	_VK_NEXT:     KeyPageDown,
	_VK_INSERT:   KeyInsert,
	_VK_DELETE:   KeyDelete,
	_VK_LEFT:     KeyLeft,
	_VK_UP:       KeyUp,
	_VK_RIGHT:    KeyRight,
	_VK_DOWN:     KeyDown,
	_VK_SPACE:    KeySpace,
	_VK_NUMPAD0:  KeyKP0,
	_VK_NUMPAD1:  KeyKP1,
	_VK_NUMPAD2:  KeyKP2,
	_VK_NUMPAD3:  KeyKP3,
	_VK_NUMPAD4:  KeyKP4,
	_VK_NUMPAD5:  KeyKP5,
	_VK_NUMPAD6:  KeyKP6,
	_VK_NUMPAD7:  KeyKP7,
	_VK_NUMPAD8:  KeyKP8,
	_VK_NUMPAD9:  KeyKP9,
	_VK_DIVIDE:   KeyKPDivide,
	_VK_MULTIPLY: KeyKPMultiply,
	_VK_SUBTRACT: KeyKPSubtract,
	_VK_ADD:      KeyKPAdd,
	_VK_DECIMAL:  KeyKPDecimal,
	_VK_NUMLOCK:  KeyNumLock,
	_VK_CAPITAL:  KeyCapsLock,
	_VK_SCROLL:   KeyScrollLock,
	_VK_PAUSE:    KeyPause,
	_VK_LWIN:     KeyLeftSuper,
	_VK_RWIN:     KeyRightSuper,
	_VK_APPS:     KeyMenu,
}

// isAltGrDown reports whether next is the right Alt press that Alt Gr sends
// together with a left Ctrl press at the same time.
func isAltGrDown(next *_MSG, msgTime uint32) bool {
	if next == nil {
		return false
	}
	if next.message != _WM_KEYDOWN && next.message != _WM_SYSKEYDOWN {
		return false
	}
	return next.wParam == _VK_MENU && next.lParam&_LPARAM_EXTENDED != 0 && next.time == msgTime
}

// translateKey maps a virtual key and its lParam to a Key. It depends on
// nothing but its arguments: next is the message queued after this one, if
// any, and is only consulted for a left Ctrl press.
func translateKey(layout keyboardLayout, wParam _WPARAM, lParam _LPARAM, msgTime uint32, next *_MSG) Key {
	hiFlags := uint32(_HIWORD(uint32(lParam)))

	// Check for numeric keypad keys
	// NOTE: This way we always force "NumLock = ON", which at least
	//       enables users to detect numeric keypad keys
	if hiFlags&_KF_EXTENDED == 0 {
		if key, ok := numpadKeys[layout.MapVirtualKey(hiFlags&0xFF, _MAPVK_VSC_TO_VK)]; ok {
			return key
		}
	}

	extended := lParam&_LPARAM_EXTENDED != 0

	switch wParam {
	case _VK_SHIFT:
		// Compare scan code for this key with that of VK_RSHIFT in order to
		// determine which shift key was pressed
		if uint32(lParam&_LPARAM_SCANCODE)>>16 == layout.MapVirtualKey(_VK_RSHIFT, _MAPVK_VK_TO_VSC) {
			return KeyRightShift
		}
		return KeyLeftShift

	case _VK_CONTROL:
		if extended {
			return KeyRightControl
		}
		// NOTE: Alt Gr sends Left Ctrl followed by Right Alt
		// HACK: We only want one event for Alt Gr, so if we detect
		//       this sequence we discard this Left Ctrl message now
		//       and later report Right Alt normally
		if isAltGrDown(next, msgTime) {
			return KeyUnknown
		}
		return KeyLeftControl

	case _VK_MENU:
		if extended {
			return KeyRightAlt
		}
		return KeyLeftAlt

	case _VK_RETURN:
		if extended {
			return KeyKPEnter
		}
		return KeyEnter
	}

	if wParam >= _VK_F1 && wParam <= _VK_F24 {
		return KeyF1 + Key(wParam-_VK_F1)
	}
	if key, ok := specialKeys[wParam]; ok {
		return key
	}

	// The rest should be printable keys
	c := layout.MapVirtualKey(uint32(wParam), _MAPVK_VK_TO_CHAR) & 0xFFFF
	c = uint32(layout.CharUpper(uint16(c)))
	if (c >= 32 && c <= 126) || (c >= 160 && c <= 255) {
		return Key(c)
	}
	return KeyUnknown
}

// translateChar reports the characters the key event produces under the
// current keyboard state. Dead keys produce none.
func (w *Window) translateChar(vk _WPARAM, lParam _LPARAM) {
	layout := w.lib.platform

	var state [256]byte
	if err := layout.KeyboardState(&state); err != nil {
		w.lib.logger.Debug("glfw: GetKeyboardState failed", "error", err)
		return
	}

	scanCode := uint32(lParam&_LPARAM_SCANCODE) >> 16

	var buf [10]uint16
	n := layout.ToUnicode(uint32(vk), scanCode, &state, buf[:])
	if n <= 0 {
		return
	}

	units := buf[:min(n, len(buf))]
	for i := 0; i < len(units); i++ {
		c := rune(units[i])
		if utf16.IsSurrogate(c) && i+1 < len(units) {
			if r := utf16.DecodeRune(c, rune(units[i+1])); r != 0xFFFD {
				c = r
				i++
			}
		}
		w.inputChar(c)
	}
}
