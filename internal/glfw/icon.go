// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2002-2006 Marcus Geelnard
// SPDX-FileCopyrightText: 2006-2019 Camilla Löwy <elmindreda@glfw.org>
// SPDX-FileCopyrightText: 2022 The Ebitengine Authors

package glfw

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

func abs(x int) uint {
	if x < 0 {
		return uint(-x)
	}
	return uint(x)
}

// chooseImage returns the image whose area is closest to width*height.
func chooseImage(images []image.Image, width, height int) image.Image {
	var leastDiff uint = math.MaxUint32
	var closest image.Image
	for _, img := range images {
		size := img.Bounds().Size()
		currDiff := abs(size.X*size.Y - width*height)
		if currDiff < leastDiff {
			closest = img
			leastDiff = currDiff
		}
	}
	return closest
}

func scaleIcon(src image.Image, size image.Point) *image.NRGBA {
	dst := image.NewNRGBA(image.Rectangle{Max: size})
	if src.Bounds().Size() == size {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// SetIcon sets the window icon from the candidate images, scaling the best
// fit for each system icon size. No images restores the default icon.
func (w *Window) SetIcon(images ...image.Image) error {
	lib := w.lib
	if err := lib.checkAlive(); err != nil {
		return err
	}
	for _, img := range images {
		if img == nil || img.Bounds().Empty() {
			return fmt.Errorf("glfw: invalid icon image: %w", InvalidValue)
		}
	}

	var big, small *image.NRGBA
	if len(images) > 0 {
		bigSize, smallSize := lib.platform.IconSizes()
		big = scaleIcon(chooseImage(images, bigSize.X, bigSize.Y), bigSize)
		small = scaleIcon(chooseImage(images, smallSize.X, smallSize.Y), smallSize)
	}

	if err := lib.platform.SetWindowIcon(w.platform.handle, big, small); err != nil {
		return fmt.Errorf("glfw: failed to set the window icon: %w: %w", PlatformError, err)
	}
	return nil
}
