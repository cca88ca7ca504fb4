package attractor

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// DefaultBackground is the canvas color behind the orbit.
var DefaultBackground = color.RGBA{R: 5, G: 7, B: 12, A: 255}

// newCanvas returns the image a request draws into.
func newCanvas(req Request) (*image.RGBA, error) {
	if req.Target != nil {
		if req.Target.Rect.Dx() <= 0 || req.Target.Rect.Dy() <= 0 {
			return nil, fmt.Errorf("%w: target bounds %v", ErrInvalidCanvas, req.Target.Rect)
		}
		return req.Target, nil
	}
	if req.Width <= 0 || req.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, req.Width, req.Height)
	}
	return image.NewRGBA(image.Rect(0, 0, req.Width, req.Height)), nil
}

// fill sets every pixel of img to c.
func fill(img *image.RGBA, c color.RGBA) {
	r := img.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := img.Pix[img.PixOffset(r.Min.X, y):img.PixOffset(r.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
	}
}

// SavePNG writes img to a PNG file at path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// EncodePNG writes img as PNG to w.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
