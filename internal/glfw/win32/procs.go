//go:build windows

package win32

import "golang.org/x/sys/windows"

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procCloseClipboard             = user32.NewProc("CloseClipboard")
	procEmptyClipboard             = user32.NewProc("EmptyClipboard")
	procGetClipboardData           = user32.NewProc("GetClipboardData")
	procIsClipboardFormatAvailable = user32.NewProc("IsClipboardFormatAvailable")
	procOpenClipboard              = user32.NewProc("OpenClipboard")
	procSetClipboardData           = user32.NewProc("SetClipboardData")

	kernelGlobalAlloc  = kernel32.NewProc("GlobalAlloc")
	kernelGlobalFree   = kernel32.NewProc("GlobalFree")
	kernelGlobalLock   = kernel32.NewProc("GlobalLock")
	kernelGlobalUnlock = kernel32.NewProc("GlobalUnlock")
	kernelLstrcpy      = kernel32.NewProc("lstrcpyW")
)
