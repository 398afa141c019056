// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import "fmt"

// Key identifies a keyboard key. Printable keys use their uppercase Latin-1 code;
// everything else lives above KeySpecial.
type Key int

const (
	KeyUnknown Key = -1
	KeySpace   Key = ' '
	KeySpecial Key = 256
)

const (
	KeyEscape Key = KeySpecial + 1 + iota
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyF25
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyTab
	KeyEnter
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPDivide
	KeyKPMultiply
	KeyKPSubtract
	KeyKPAdd
	KeyKPDecimal
	KeyKPEqual
	KeyKPEnter
	KeyNumLock
	KeyCapsLock
	KeyScrollLock
	KeyPause
	KeyLeftSuper
	KeyRightSuper
	KeyMenu

	KeyLast = KeyMenu
)

var specialKeyNames = [...]string{
	"ESCAPE", "F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
	"F13", "F14", "F15", "F16", "F17", "F18", "F19", "F20", "F21", "F22", "F23", "F24", "F25",
	"UP", "DOWN", "LEFT", "RIGHT",
	"LEFT SHIFT", "RIGHT SHIFT", "LEFT CONTROL", "RIGHT CONTROL", "LEFT ALT", "RIGHT ALT",
	"TAB", "ENTER", "BACKSPACE", "INSERT", "DELETE", "PAGE UP", "PAGE DOWN", "HOME", "END",
	"KEYPAD 0", "KEYPAD 1", "KEYPAD 2", "KEYPAD 3", "KEYPAD 4",
	"KEYPAD 5", "KEYPAD 6", "KEYPAD 7", "KEYPAD 8", "KEYPAD 9",
	"KEYPAD DIVIDE", "KEYPAD MULTIPLY", "KEYPAD SUBTRACT", "KEYPAD ADD", "KEYPAD DECIMAL",
	"KEYPAD EQUAL", "KEYPAD ENTER",
	"NUM LOCK", "CAPS LOCK", "SCROLL LOCK", "PAUSE", "LEFT SUPER", "RIGHT SUPER", "MENU",
}

func (k Key) String() string {
	switch {
	case k == KeyUnknown:
		return "UNKNOWN"
	case k == KeySpace:
		return "SPACE"
	case k > KeySpace && k < KeySpecial:
		return string(rune(k))
	case k > KeySpecial && k <= KeyLast:
		return specialKeyNames[k-KeyEscape]
	default:
		return fmt.Sprintf("Key(%d)", int(k))
	}
}

// Action is the state transition reported for keys and mouse buttons.
type Action int

const (
	Release Action = iota
	Press
)

func (a Action) String() string {
	if a == Press {
		return "press"
	}
	return "release"
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButton1 MouseButton = iota
	MouseButton2
	MouseButton3
	MouseButton4
	MouseButton5
	MouseButton6
	MouseButton7
	MouseButton8

	MouseButtonLast   = MouseButton8
	MouseButtonLeft   = MouseButton1
	MouseButtonRight  = MouseButton2
	MouseButtonMiddle = MouseButton3
)

// CursorMode controls cursor visibility and locking for a window.
type CursorMode int

const (
	// CursorNormal shows the cursor and lets it leave the window.
	CursorNormal CursorMode = iota
	// CursorHidden hides the cursor over the window without confining it.
	CursorHidden
	// CursorCaptured hides the cursor, confines it to the window and re-centres it
	// every poll so relative motion is unbounded.
	CursorCaptured
)
