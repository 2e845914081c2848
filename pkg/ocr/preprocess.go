package ocr

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Bill photos arrive as uneven phone shots. A grayscale + contrast + sharpen
// pass, an upscale for small frames and a global binarization give Tesseract
// a fighting chance without a full adaptive pipeline.
func prepareForOCR(img image.Image) image.Image {
	out := imaging.Grayscale(img)
	out = imaging.AdjustContrast(out, 15)
	out = imaging.Sharpen(out, 0.7)
	if out.Bounds().Dy() < 900 {
		out = imaging.Resize(out, 0, 1300, imaging.Lanczos)
	}
	return binarize(out, 210)
}

// binarize applies a global threshold on a grayscale image.
func binarize(img image.Image, threshold uint8) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			gray := uint8((r + g + bl) / 3 >> 8)
			var v uint8 = 255
			if gray <= threshold {
				v = 0
			}
			out.Set(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return out
}
