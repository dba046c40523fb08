package images

import (
	"image"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Resize scales an image to exactly width by height pixels using Lanczos3
// resampling. The requested dimensions are honored literally; callers that
// want square output pass square dimensions. The input image is not
// modified.
//
// Arguments:
// - img: The image to resize.
// - width: The target width in pixels.
// - height: The target height in pixels.
//
// Returns:
// - image.Image: The resized copy.
// - error: An error if the dimensions are not positive.
func Resize(img image.Image, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid dimensions: width=%d, height=%d", width, height)
	}
	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3), nil
}
