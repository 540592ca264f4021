// Package images tests for cover upload validation and encoding.
package images

import (
	"bytes"
	"image"
	"image/color/palette"
	"image/gif"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	apperrors "github.com/shelfmark/backend/internal/errors"
)

// encodePNG returns a small valid PNG payload.
func encodePNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// encodeJPEG returns a small valid JPEG payload.
func encodeJPEG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

// encodeGIF returns a valid GIF payload, which is a real image but not
// an accepted upload type.
func encodeGIF(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewPaletted(image.Rect(0, 0, 2, 2), palette.Plan9)
	if err := gif.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode gif: %v", err)
	}
	return buf.Bytes()
}

// TestValidate_acceptsJPEGAndPNG verifies the accepted types pass.
func TestValidate_acceptsJPEGAndPNG(t *testing.T) {
	if err := Validate(encodePNG(t)); err != nil {
		t.Errorf("Validate(png) error = %v", err)
	}
	if err := Validate(encodeJPEG(t)); err != nil {
		t.Errorf("Validate(jpeg) error = %v", err)
	}
}

// TestValidate_rejectsWrongType verifies non-image and disallowed image
// payloads fail with the invalid-image code.
func TestValidate_rejectsWrongType(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"plain text", []byte("not an image at all")},
		{"gif", encodeGIF(t)},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.data)
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !apperrors.Is(err, apperrors.ErrImageInvalid) {
				t.Errorf("Validate() code = %v, want IMAGE_INVALID", err)
			}
		})
	}
}

// TestValidate_rejectsOversized verifies the 5 MB cap.
func TestValidate_rejectsOversized(t *testing.T) {
	// Pad a valid PNG past the cap; sniffing only reads the header.
	data := append(encodePNG(t), make([]byte, MaxUploadBytes)...)

	err := Validate(data)
	if err == nil {
		t.Fatal("Validate() = nil for oversized payload")
	}
	if !apperrors.Is(err, apperrors.ErrImageTooLarge) {
		t.Errorf("Validate() code = %v, want IMAGE_TOO_LARGE", err)
	}
}

// TestDataURI_roundTrip verifies the output shape and that the payload
// is recoverable.
func TestDataURI_roundTrip(t *testing.T) {
	data := encodePNG(t)

	uri, err := DataURI(data)
	if err != nil {
		t.Fatalf("DataURI() error = %v", err)
	}

	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("DataURI() = %.40q..., want data:image/png;base64 prefix", uri)
	}
}

// TestDataURI_rejectsTruncatedImage verifies a payload with a valid
// magic number but a broken body is refused.
func TestDataURI_rejectsTruncatedImage(t *testing.T) {
	data := encodePNG(t)[:12] // header survives, body does not

	if _, err := DataURI(data); err == nil {
		t.Error("DataURI() = nil for truncated payload")
	}
}
