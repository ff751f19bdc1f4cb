package analysis

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
)

// ErrDecode indicates that the input bytes could not be parsed as any
// supported image format, or decoded to zero-area dimensions. The message is
// the wire-facing Spanish error string.
var ErrDecode = errors.New("no se pudo decodificar el archivo de imagen")

// Decode parses raw encoded image bytes into an in-memory image.
//
// Supported formats are PNG, JPEG, and GIF (whatever the blank-imported
// decoders register). The returned image is in the decoder's native color
// model; later stages read it through the image.Image interface, so the
// concrete type does not matter.
//
// Returns ErrDecode when the buffer is not a decodable image or decodes to an
// empty area. Decode has no side effects and does not retain the input slice.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrDecode
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, ErrDecode
	}
	return img, nil
}
