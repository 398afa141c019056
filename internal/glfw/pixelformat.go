// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import (
	"fmt"
	"log/slog"
	"unsafe"
)

// maxPixelFormats bounds the candidate list; drivers report a few hundred.
const maxPixelFormats = 1 << 16

// attribQuery answers "what can pixel format N do" for one device context.
// A failed query yields 0, which callers read as "absent".
type attribQuery interface {
	count() int
	attrib(format, attrib int) int
}

func newAttribQuery(lib *Library, dc _HDC, caps *wglCaps) attribQuery {
	caps.mustBePopulated()
	if caps.hasPixelFormat {
		return &arbAttribQuery{dc: dc, get: caps.getPixelFormatAttribivARB, logger: lib.logger}
	}
	return &pfdAttribQuery{wgl: lib.platform, dc: dc}
}

// arbAttribQuery uses WGL_ARB_pixel_format, one attribute per call.
type arbAttribQuery struct {
	dc     _HDC
	get    func(dc _HDC, format int, attribs []int32, values []int32) bool
	logger *slog.Logger
}

func (q *arbAttribQuery) count() int {
	return q.attrib(1, _WGL_NUMBER_PIXEL_FORMATS_ARB)
}

func (q *arbAttribQuery) attrib(format, attrib int) int {
	attribs := []int32{int32(attrib)}
	values := []int32{0}
	if !q.get(q.dc, format, attribs, values) {
		q.logger.Debug("glfw: wglGetPixelFormatAttribivARB failed", "format", format, "attrib", fmt.Sprintf("0x%04X", attrib))
		return 0
	}
	return int(values[0])
}

// pfdAttribQuery reads the fixed PIXELFORMATDESCRIPTOR and maps the ARB
// attribute names onto its fields. The last described format is cached.
type pfdAttribQuery struct {
	wgl    wglAPI
	dc     _HDC
	format int
	valid  bool
	pfd    _PIXELFORMATDESCRIPTOR
}

func (q *pfdAttribQuery) count() int {
	return q.wgl.DescribePixelFormat(q.dc, 1, nil)
}

func (q *pfdAttribQuery) describe(format int) bool {
	if q.format != format {
		q.format = format
		q.pfd = _PIXELFORMATDESCRIPTOR{}
		q.pfd.nSize = uint16(unsafe.Sizeof(q.pfd))
		q.pfd.nVersion = 1
		q.valid = q.wgl.DescribePixelFormat(q.dc, format, &q.pfd) != 0
	}
	return q.valid
}

func boolAttrib(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (q *pfdAttribQuery) attrib(format, attrib int) int {
	if attrib == _WGL_NUMBER_PIXEL_FORMATS_ARB {
		return q.count()
	}
	if !q.describe(format) {
		return 0
	}

	pfd := &q.pfd
	switch attrib {
	case _WGL_DRAW_TO_WINDOW_ARB:
		return boolAttrib(pfd.dwFlags&_PFD_DRAW_TO_WINDOW != 0)
	case _WGL_SUPPORT_OPENGL_ARB:
		return boolAttrib(pfd.dwFlags&_PFD_SUPPORT_OPENGL != 0)
	case _WGL_DOUBLE_BUFFER_ARB:
		return boolAttrib(pfd.dwFlags&_PFD_DOUBLEBUFFER != 0)
	case _WGL_STEREO_ARB:
		return boolAttrib(pfd.dwFlags&_PFD_STEREO != 0)
	case _WGL_ACCELERATION_ARB:
		switch {
		case pfd.dwFlags&_PFD_GENERIC_FORMAT == 0:
			return _WGL_FULL_ACCELERATION_ARB
		case pfd.dwFlags&_PFD_GENERIC_ACCELERATED != 0:
			return _WGL_GENERIC_ACCELERATION_ARB
		default:
			return _WGL_NO_ACCELERATION_ARB
		}
	case _WGL_PIXEL_TYPE_ARB:
		if pfd.iPixelType == _PFD_TYPE_RGBA {
			return _WGL_TYPE_RGBA_ARB
		}
		return _WGL_TYPE_COLORINDEX_ARB
	case _WGL_RED_BITS_ARB:
		return int(pfd.cRedBits)
	case _WGL_GREEN_BITS_ARB:
		return int(pfd.cGreenBits)
	case _WGL_BLUE_BITS_ARB:
		return int(pfd.cBlueBits)
	case _WGL_ALPHA_BITS_ARB:
		return int(pfd.cAlphaBits)
	case _WGL_DEPTH_BITS_ARB:
		return int(pfd.cDepthBits)
	case _WGL_STENCIL_BITS_ARB:
		return int(pfd.cStencilBits)
	case _WGL_ACCUM_RED_BITS_ARB:
		return int(pfd.cAccumRedBits)
	case _WGL_ACCUM_GREEN_BITS_ARB:
		return int(pfd.cAccumGreenBits)
	case _WGL_ACCUM_BLUE_BITS_ARB:
		return int(pfd.cAccumBlueBits)
	case _WGL_ACCUM_ALPHA_BITS_ARB:
		return int(pfd.cAccumAlphaBits)
	case _WGL_AUX_BUFFERS_ARB:
		return int(pfd.cAuxBuffers)
	default:
		// Descriptors cannot express multisampling.
		return 0
	}
}

// getFBConfigs returns the usable framebuffer configurations of dc in
// ascending pixel format order.
func (lib *Library) getFBConfigs(dc _HDC, caps *wglCaps) ([]FBConfig, error) {
	q := newAttribQuery(lib, dc, caps)
	_, legacy := q.(*pfdAttribQuery)

	count := q.count()
	if count == 0 {
		return nil, fmt.Errorf("glfw: no pixel formats available: %w", OpenGLUnavailable)
	}
	if count < 0 || count > maxPixelFormats {
		return nil, fmt.Errorf("glfw: cannot hold %d pixel formats: %w", count, OutOfMemory)
	}

	result := make([]FBConfig, 0, count)
	for i := 1; i <= count; i++ {
		// Only consider doublebuffered OpenGL pixel formats for windows
		if q.attrib(i, _WGL_SUPPORT_OPENGL_ARB) == 0 ||
			q.attrib(i, _WGL_DRAW_TO_WINDOW_ARB) == 0 ||
			q.attrib(i, _WGL_DOUBLE_BUFFER_ARB) == 0 {
			continue
		}

		// Only consider RGBA pixel formats
		if q.attrib(i, _WGL_PIXEL_TYPE_ARB) != _WGL_TYPE_RGBA_ARB {
			continue
		}

		// Descriptor formats must be hardware accelerated
		if legacy && q.attrib(i, _WGL_ACCELERATION_ARB) == _WGL_NO_ACCELERATION_ARB {
			continue
		}

		c := FBConfig{
			RedBits:        q.attrib(i, _WGL_RED_BITS_ARB),
			GreenBits:      q.attrib(i, _WGL_GREEN_BITS_ARB),
			BlueBits:       q.attrib(i, _WGL_BLUE_BITS_ARB),
			AlphaBits:      q.attrib(i, _WGL_ALPHA_BITS_ARB),
			DepthBits:      q.attrib(i, _WGL_DEPTH_BITS_ARB),
			StencilBits:    q.attrib(i, _WGL_STENCIL_BITS_ARB),
			AccumRedBits:   q.attrib(i, _WGL_ACCUM_RED_BITS_ARB),
			AccumGreenBits: q.attrib(i, _WGL_ACCUM_GREEN_BITS_ARB),
			AccumBlueBits:  q.attrib(i, _WGL_ACCUM_BLUE_BITS_ARB),
			AccumAlphaBits: q.attrib(i, _WGL_ACCUM_ALPHA_BITS_ARB),
			AuxBuffers:     q.attrib(i, _WGL_AUX_BUFFERS_ARB),
			Stereo:         q.attrib(i, _WGL_STEREO_ARB) != 0,
			PlatformID:     i,
		}
		if caps.hasMultisample && !legacy {
			c.Samples = q.attrib(i, _WGL_SAMPLES_ARB)
		}
		result = append(result, c)
	}

	return result, nil
}

// choosePixelFormat returns the pixel format index closest to desired.
func (lib *Library) choosePixelFormat(dc _HDC, caps *wglCaps, desired *FBConfig) (int, error) {
	configs, err := lib.getFBConfigs(dc, caps)
	if err != nil {
		return 0, err
	}
	closest := lib.chooser(desired, configs)
	if closest == nil {
		return 0, fmt.Errorf("glfw: no pixel format matches the requested framebuffer: %w", OpenGLUnavailable)
	}
	lib.logger.Debug("glfw: chose pixel format", "format", closest.PlatformID, "candidates", len(configs))
	return closest.PlatformID, nil
}
