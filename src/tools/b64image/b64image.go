// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

/*
Package b64image provides helper functions for manipulating
base64 encoded PNG or JPEG images, such as the avatars attached
to partner records.
*/
package b64image

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/draw"
	// Load JPEG driver
	_ "image/jpeg"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/hexya-erp/hexya-starter/src/tools/logging"
)

var log logging.Logger

func init() {
	log = logging.GetLogger("b64image")
}

// Resize a base64 encoded image. The image will be resized to the given
// size, while keeping the aspect ratios, and holes in the image will be
// filled with transparent background. The image will not be stretched if
// smaller than the expected size.
//
// A zero value for any of width or height means an automatically computed
// value based respectively on height or width of the source image.
func Resize(original string, width, height int, avoidIfSmall bool) string {
	reader := base64.NewDecoder(base64.StdEncoding, strings.NewReader(original))
	img, _, err := image.Decode(reader)
	if err != nil {
		log.Warn("Unable to read image for resizing", "err", err)
		return original
	}
	if width == 0 {
		width = int(float64(img.Bounds().Dx()*height) / float64(img.Bounds().Dy()))
	}
	if height == 0 {
		height = int(float64(img.Bounds().Dy()*width) / float64(img.Bounds().Dx()))
	}
	if avoidIfSmall && img.Bounds().Dx() <= width && img.Bounds().Dy() <= height {
		return original
	}
	if img.Bounds().Dx() != width && img.Bounds().Dy() != height {
		img = imaging.Fit(img, width, height, imaging.Linear)
		img = imaging.Sharpen(img, 2.0)
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	minPoint := image.Pt((img.Bounds().Dx()-width)/2, (img.Bounds().Dy()-height)/2)
	draw.Draw(dst, dst.Bounds(), img, minPoint, draw.Over)

	var buf bytes.Buffer
	png.Encode(&buf, dst)
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}
