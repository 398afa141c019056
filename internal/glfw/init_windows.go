// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2018 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import "fmt"

// Init loads user32, gdi32 and opengl32 and returns a Library bound to them.
// The calling thread owns the message queue of every window the Library
// opens, so it must stay locked to its goroutine until Terminate.
func Init() (*Library, error) {
	p, err := newWin32Platform()
	if err != nil {
		return nil, fmt.Errorf("glfw: failed to load the native libraries: %w: %w", PlatformError, err)
	}
	return newLibrary(p), nil
}
