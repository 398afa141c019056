//go:build windows

/*
 * Based on code originally from https://github.com/atotto/clipboard. Copyright (c) 2013 Ato Araki. All rights reserved.
 */

package win32

import (
	"errors"
	"fmt"
	"runtime"
	"time"
	"unsafe"

	"github.com/ddkwork/golibrary/mylog"
	"golang.org/x/sys/windows"
)

const (
	cfUnicodetext = 13
	gmemMoveable  = 0x0002
)

var ErrClipboardBusy = errors.New("clipboard is held by another window")

func waitOpenClipboard() error {
	limit := time.Now().Add(time.Second)
	for time.Now().Before(limit) {
		if r, _, _ := procOpenClipboard.Call(0); r != 0 {
			return nil
		}
		time.Sleep(time.Millisecond)
	}
	return ErrClipboardBusy
}

func closeClipboard() {
	procCloseClipboard.Call()
}

// ClipboardText returns the CF_UNICODETEXT content of the clipboard, or an
// empty string when the clipboard holds no text.
func ClipboardText() (string, error) {
	// OpenClipboard and CloseClipboard must run on the same thread or the
	// clipboard stays locked.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if formatAvailable, _, _ := procIsClipboardFormatAvailable.Call(cfUnicodetext); formatAvailable == 0 {
		return "", nil
	}
	if err := waitOpenClipboard(); err != nil {
		return "", err
	}
	defer closeClipboard()

	h, _, err := procGetClipboardData.Call(cfUnicodetext)
	if h == 0 {
		return "", fmt.Errorf("GetClipboardData: %w", err)
	}
	l, _, err := kernelGlobalLock.Call(h)
	if l == 0 {
		return "", fmt.Errorf("GlobalLock: %w", err)
	}
	text := windows.UTF16PtrToString((*uint16)(unsafe.Pointer(l)))
	kernelGlobalUnlock.Call(h)
	return text, nil
}

// SetClipboardText replaces the clipboard content with text.
func SetClipboardText(text string) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if err := waitOpenClipboard(); err != nil {
		return err
	}
	defer closeClipboard()

	if r, _, err := procEmptyClipboard.Call(0); r == 0 {
		return fmt.Errorf("EmptyClipboard: %w", err)
	}

	data, err := windows.UTF16FromString(text)
	if err != nil {
		return err
	}

	// "If the hMem parameter identifies a memory object, the object must have
	// been allocated using the function with the GMEM_MOVEABLE flag."
	h, _, err := kernelGlobalAlloc.Call(gmemMoveable, uintptr(len(data)*int(unsafe.Sizeof(data[0]))))
	if h == 0 {
		return fmt.Errorf("GlobalAlloc: %w", err)
	}
	defer func() {
		if h != 0 {
			if r, _, err := kernelGlobalFree.Call(h); r != 0 {
				mylog.Check(err)
			}
		}
	}()

	l, _, err := kernelGlobalLock.Call(h)
	if l == 0 {
		return fmt.Errorf("GlobalLock: %w", err)
	}
	if r, _, err := kernelLstrcpy.Call(l, uintptr(unsafe.Pointer(&data[0]))); r == 0 {
		kernelGlobalUnlock.Call(h)
		return fmt.Errorf("lstrcpyW: %w", err)
	}
	if r, _, err := kernelGlobalUnlock.Call(h); r == 0 && err.(windows.Errno) != 0 {
		return fmt.Errorf("GlobalUnlock: %w", err)
	}

	if r, _, err := procSetClipboardData.Call(cfUnicodetext, h); r == 0 {
		return fmt.Errorf("SetClipboardData: %w", err)
	}
	h = 0 // owned by the clipboard now
	return nil
}
