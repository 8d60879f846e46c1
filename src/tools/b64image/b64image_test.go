// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package b64image

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// newB64PNG returns a base64 encoded PNG image of the given size
func newB64PNG(width, height int) string {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func decodeB64PNG(data string) image.Image {
	reader := base64.NewDecoder(base64.StdEncoding, strings.NewReader(data))
	img, _, err := image.Decode(reader)
	if err != nil {
		panic(err)
	}
	return img
}

func TestResize(t *testing.T) {
	Convey("Testing Resize", t, func() {
		Convey("A large image should be scaled down", func() {
			res := Resize(newB64PNG(256, 256), 64, 64, false)
			img := decodeB64PNG(res)
			So(img.Bounds().Dx(), ShouldEqual, 64)
			So(img.Bounds().Dy(), ShouldEqual, 64)
		})
		Convey("A small image should be kept when avoidIfSmall is set", func() {
			original := newB64PNG(32, 32)
			So(Resize(original, 64, 64, true), ShouldEqual, original)
		})
		Convey("Invalid image data should be returned as is", func() {
			So(Resize("bm90IGFuIGltYWdl", 64, 64, false), ShouldEqual, "bm90IGFuIGltYWdl")
		})
	})
}
