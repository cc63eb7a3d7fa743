package printplate

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ImageLoader abstracts sample image access so geometry and rendering can
// be tested without real files.
type ImageLoader interface {
	// Meta returns the pixel dimensions of the image at path.
	Meta(path string) (width, height int, err error)
	// Load decodes the image at path.
	Load(path string) (image.Image, error)
}

// imagingLoader loads images from disk via disintegration/imaging, which
// handles JPEG/PNG decoding and EXIF orientation.
type imagingLoader struct{}

func newImagingLoader() *imagingLoader { return &imagingLoader{} }

func (imagingLoader) Meta(path string) (int, int, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %v", ErrSampleNotFound, path, err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), nil
}

func (imagingLoader) Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSampleNotFound, path, err)
	}
	return img, nil
}

// fitImage scales an image to fit within the given pixel box, preserving
// aspect ratio. Lanczos resampling keeps dimension-line annotations and
// photographic content crisp at blueprint DPI.
func fitImage(img image.Image, wpx, hpx int) image.Image {
	return imaging.Fit(img, wpx, hpx, imaging.Lanczos)
}
