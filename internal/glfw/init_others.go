// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2018 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

//go:build !windows

package glfw

import (
	"fmt"
	"runtime"
)

// Init always fails: this backend drives Win32 and WGL only.
func Init() (*Library, error) {
	return nil, fmt.Errorf("glfw: the WGL backend is not available on %s: %w", runtime.GOOS, PlatformError)
}
