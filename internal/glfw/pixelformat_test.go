// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLibrary(t *testing.T, f *fakePlatform) *Library {
	t.Helper()
	lib := newLibrary(f)
	lib.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return lib
}

func TestGetFBConfigsLegacyFiltersUnusableFormats(t *testing.T) {
	f := newFakePlatform()
	f.formats = []fakeFormat{
		pfdFormat(usablePFD, _PFD_TYPE_RGBA, 8, 8, 8, 8, 24, 8),
		pfdFormat(_PFD_DRAW_TO_WINDOW|_PFD_SUPPORT_OPENGL, _PFD_TYPE_RGBA, 8, 8, 8, 8, 24, 8),
		pfdFormat(usablePFD, _PFD_TYPE_COLORINDEX, 8, 8, 8, 0, 24, 8),
		pfdFormat(usablePFD|_PFD_GENERIC_FORMAT, _PFD_TYPE_RGBA, 8, 8, 8, 0, 32, 0),
		pfdFormat(usablePFD|_PFD_GENERIC_FORMAT|_PFD_GENERIC_ACCELERATED, _PFD_TYPE_RGBA, 5, 6, 5, 0, 16, 0),
		pfdFormat(_PFD_SUPPORT_OPENGL|_PFD_DOUBLEBUFFER, _PFD_TYPE_RGBA, 8, 8, 8, 8, 24, 8),
		pfdFormat(usablePFD|_PFD_STEREO, _PFD_TYPE_RGBA, 10, 10, 10, 2, 24, 8),
	}
	lib := newTestLibrary(t, f)
	caps := baselineWGLCaps()

	configs, err := lib.getFBConfigs(0x10, &caps)
	require.NoError(t, err)

	ids := make([]int, len(configs))
	for i, c := range configs {
		ids[i] = c.PlatformID
		assert.Zero(t, c.Samples)
	}
	assert.Equal(t, []int{1, 5, 7}, ids)

	assert.Equal(t, FBConfig{RedBits: 8, GreenBits: 8, BlueBits: 8, AlphaBits: 8, DepthBits: 24, StencilBits: 8, PlatformID: 1}, configs[0])
	assert.Equal(t, 5, configs[1].RedBits)
	assert.Equal(t, 6, configs[1].GreenBits)
	assert.True(t, configs[2].Stereo)
	assert.Equal(t, 10, configs[2].BlueBits)
}

func TestGetFBConfigsModernPath(t *testing.T) {
	f := newFakePlatform().withModernDriver()
	f.formats = []fakeFormat{
		arbFormat(true, true, false, _WGL_TYPE_RGBA_ARB, 8, 8, 8, 8, 24, 8, 0),
		arbFormat(true, true, true, _WGL_TYPE_RGBA_ARB, 8, 8, 8, 8, 24, 8, 0),
		arbFormat(true, true, true, _WGL_TYPE_COLORINDEX_ARB, 8, 8, 8, 0, 24, 8, 0),
		arbFormat(false, true, true, _WGL_TYPE_RGBA_ARB, 8, 8, 8, 8, 24, 8, 0),
		arbFormat(true, true, true, _WGL_TYPE_RGBA_ARB, 8, 8, 8, 8, 24, 8, 8),
	}
	lib := newTestLibrary(t, f)
	f.current = 1
	caps := lib.probeWGLExtensions(0x10)
	require.True(t, caps.hasPixelFormat)
	require.True(t, caps.hasMultisample)

	configs, err := lib.getFBConfigs(0x10, &caps)
	require.NoError(t, err)
	require.Len(t, configs, 2)
	assert.Equal(t, 2, configs[0].PlatformID)
	assert.Equal(t, 5, configs[1].PlatformID)
	assert.Equal(t, 8, configs[1].Samples)
	assert.Zero(t, f.describeCalls, "the descriptor path must not be mixed in")

	caps.hasMultisample = false
	configs, err = lib.getFBConfigs(0x10, &caps)
	require.NoError(t, err)
	assert.Zero(t, configs[1].Samples)
}

func TestGetFBConfigsErrors(t *testing.T) {
	f := newFakePlatform()
	lib := newTestLibrary(t, f)
	caps := baselineWGLCaps()

	f.formats = nil
	_, err := lib.getFBConfigs(0x10, &caps)
	assert.ErrorIs(t, err, OpenGLUnavailable)

	f.withModernDriver()
	f.current = 1
	caps = lib.probeWGLExtensions(0x10)
	f.formats = make([]fakeFormat, maxPixelFormats+1)
	_, err = lib.getFBConfigs(0x10, &caps)
	assert.ErrorIs(t, err, OutOfMemory)
}

func TestGetFBConfigsRequiresProbedCaps(t *testing.T) {
	lib := newTestLibrary(t, newFakePlatform())
	var caps wglCaps
	assert.Panics(t, func() {
		_, _ = lib.getFBConfigs(0x10, &caps)
	})
}

func TestDescriptorAttribQuery(t *testing.T) {
	f := newFakePlatform()
	f.formats = []fakeFormat{
		pfdFormat(usablePFD|_PFD_GENERIC_FORMAT, _PFD_TYPE_RGBA, 8, 8, 8, 0, 16, 0),
		pfdFormat(usablePFD|_PFD_GENERIC_FORMAT|_PFD_GENERIC_ACCELERATED, _PFD_TYPE_COLORINDEX, 8, 8, 8, 0, 16, 0),
		pfdFormat(usablePFD|_PFD_STEREO, _PFD_TYPE_RGBA, 8, 8, 8, 0, 16, 0),
	}
	q := &pfdAttribQuery{wgl: f, dc: 0x10}

	assert.Equal(t, 3, q.count())
	assert.Equal(t, _WGL_NO_ACCELERATION_ARB, q.attrib(1, _WGL_ACCELERATION_ARB))
	assert.Equal(t, _WGL_GENERIC_ACCELERATION_ARB, q.attrib(2, _WGL_ACCELERATION_ARB))
	assert.Equal(t, _WGL_TYPE_COLORINDEX_ARB, q.attrib(2, _WGL_PIXEL_TYPE_ARB))
	assert.Equal(t, _WGL_FULL_ACCELERATION_ARB, q.attrib(3, _WGL_ACCELERATION_ARB))
	assert.Equal(t, 1, q.attrib(3, _WGL_STEREO_ARB))
	assert.Equal(t, 16, q.attrib(3, _WGL_DEPTH_BITS_ARB))
	assert.Zero(t, q.attrib(3, _WGL_SAMPLES_ARB))
	assert.Zero(t, q.attrib(9, _WGL_RED_BITS_ARB), "a failed describe reads as zero")

	calls := f.describeCalls
	q.attrib(1, _WGL_RED_BITS_ARB)
	q.attrib(1, _WGL_GREEN_BITS_ARB)
	assert.Equal(t, calls+1, f.describeCalls, "the last described format is cached")
}

func TestModernAttribQueryFailureReadsAsZero(t *testing.T) {
	lib := newTestLibrary(t, newFakePlatform())
	q := &arbAttribQuery{
		dc:     0x10,
		logger: lib.logger,
		get: func(_HDC, int, []int32, []int32) bool {
			return false
		},
	}
	assert.Zero(t, q.attrib(1, _WGL_RED_BITS_ARB))
	assert.Zero(t, q.count())
}

func TestChoosePixelFormat(t *testing.T) {
	f := newFakePlatform()
	f.formats = []fakeFormat{
		pfdFormat(usablePFD, _PFD_TYPE_RGBA, 5, 6, 5, 0, 16, 0),
		pfdFormat(usablePFD, _PFD_TYPE_RGBA, 8, 8, 8, 8, 24, 8),
	}
	lib := newTestLibrary(t, f)
	caps := baselineWGLCaps()

	desired := FBConfig{RedBits: 8, GreenBits: 8, BlueBits: 8, AlphaBits: 8, DepthBits: 24, StencilBits: 8}
	format, err := lib.choosePixelFormat(0x10, &caps, &desired)
	require.NoError(t, err)
	assert.Equal(t, 2, format)

	lib.SetFBConfigChooser(func(*FBConfig, []FBConfig) *FBConfig { return nil })
	_, err = lib.choosePixelFormat(0x10, &caps, &desired)
	assert.ErrorIs(t, err, OpenGLUnavailable)

	var seen []FBConfig
	lib.SetFBConfigChooser(func(_ *FBConfig, candidates []FBConfig) *FBConfig {
		seen = candidates
		return &candidates[0]
	})
	format, err = lib.choosePixelFormat(0x10, &caps, &desired)
	require.NoError(t, err)
	assert.Equal(t, 1, format)
	assert.Len(t, seen, 2)
}
