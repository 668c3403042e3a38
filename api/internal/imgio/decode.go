package imgio

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// Image is the canonical decoded representation every input modality
// converges to before inference. It is request-local: created by Resolve,
// consumed once by the engine boundary, then discarded.
type Image struct {
	img image.Image
}

// Decode parses raw bytes into a canonical image. EXIF orientation is applied
// so the pixel array the engine sees matches what the camera saw.
func Decode(b []byte) (*Image, error) {
	img, err := imaging.Decode(bytes.NewReader(b), imaging.AutoOrientation(true))
	if err != nil {
		return nil, &DecodeError{Cause: err}
	}
	return &Image{img: img}, nil
}

func (i *Image) Bounds() image.Rectangle { return i.img.Bounds() }

// PNG re-encodes the canonical image for engine input.
func (i *Image) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, i.img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
