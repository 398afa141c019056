// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import "errors"

var (
	// NotInitialized is returned when the library is used before Init or after Terminate.
	NotInitialized = errors.New("glfw: the library is not initialized")

	// InvalidValue is returned for arguments that are out of range or inconsistent.
	InvalidValue = errors.New("glfw: invalid value")

	// PlatformError is returned when a native call fails unexpectedly.
	PlatformError = errors.New("glfw: a platform-specific error occurred")

	// OutOfMemory is returned when a result buffer cannot be allocated.
	OutOfMemory = errors.New("glfw: out of memory")

	// OpenGLUnavailable is returned when no usable pixel format exists.
	OpenGLUnavailable = errors.New("glfw: OpenGL is unavailable")

	// VersionUnavailable is returned when the requested context version, profile or
	// flags cannot be satisfied by the available WGL extensions.
	VersionUnavailable = errors.New("glfw: the requested OpenGL version is unavailable")
)
