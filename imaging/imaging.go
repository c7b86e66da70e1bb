// Package imaging implements the preprocessing side of line segmentation:
// grayscale loading, binarization and mask output.
package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	_ "image/jpeg" // register JPEG decoding for scanned pages
)

// Sentinel errors for image preparation.
var (
	// ErrEmptyImage indicates a decoded image with zero pixels.
	ErrEmptyImage = errors.New("imaging: image has no pixels")
	// ErrNoLines indicates that no whitespace valley separates two text
	// bands in the mask.
	ErrNoLines = errors.New("imaging: no line gaps found")
)

// Background is the mask value for non-ink pixels; ink is gridmap.Ink (0).
const Background byte = 1

// DefaultThreshold is the grayscale cutoff for Binarize: intensities at or
// below it become ink. Scanned pages in the supported collections are
// already near-binary, so a mid-range cutoff is sufficient.
const DefaultThreshold byte = 127

// Load reads and decodes the image file at path into grayscale
// intensities, row-major.
func Load(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imaging: opening %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a PNG or JPEG stream into grayscale intensities.
func Decode(r io.Reader) ([][]byte, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imaging: decoding image: %w", err)
	}

	bounds := img.Bounds()
	h, w := bounds.Dy(), bounds.Dx()
	if h == 0 || w == 0 {
		return nil, ErrEmptyImage
	}

	gray := make([][]byte, h)
	for y := 0; y < h; y++ {
		gray[y] = make([]byte, w)
		for x := 0; x < w; x++ {
			c := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			gray[y][x] = c.Y
		}
	}

	return gray, nil
}

// Binarize thresholds grayscale intensities into the search mask
// convention: intensity ≤ threshold → ink (0), otherwise Background.
func Binarize(gray [][]byte, threshold byte) [][]byte {
	mask := make([][]byte, len(gray))
	for y, row := range gray {
		mask[y] = make([]byte, len(row))
		for x, v := range row {
			if v <= threshold {
				mask[y][x] = 0 // ink
			} else {
				mask[y][x] = Background
			}
		}
	}

	return mask
}

// Save writes a mask as a PNG file: ink renders black, everything else
// white.
func Save(path string, mask [][]byte) error {
	if len(mask) == 0 || len(mask[0]) == 0 {
		return ErrEmptyImage
	}
	h, w := len(mask), len(mask[0])
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask[y][x] == 0 {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imaging: creating %s: %w", path, err)
	}
	defer f.Close()
	if err = png.Encode(f, img); err != nil {
		return fmt.Errorf("imaging: encoding %s: %w", path, err)
	}

	return nil
}
