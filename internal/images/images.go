// Package images validates uploaded cover images and encodes them as
// self-contained data URIs. The store is agnostic to whether imageUrl is
// a remote URL or an embedded data URI; this package produces the latter.
package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp"

	apperrors "github.com/shelfmark/backend/internal/errors"
)

// MaxUploadBytes is the size cap for uploaded cover images.
const MaxUploadBytes = 5 * 1024 * 1024

// allowedTypes are the accepted upload MIME types. The type is sniffed
// from the payload, never taken from the caller.
var allowedTypes = []string{"image/jpeg", "image/png", "image/webp"}

// Validate checks the payload's sniffed MIME type and size. The returned
// AppError messages are surfaced verbatim next to the upload control.
func Validate(data []byte) error {
	detected := mimetype.Detect(data)

	ok := false
	for _, t := range allowedTypes {
		if detected.Is(t) {
			ok = true
			break
		}
	}
	if !ok {
		return apperrors.New(apperrors.ErrImageInvalid,
			"Please upload a valid image file (JPEG, PNG, or WebP)")
	}

	if len(data) > MaxUploadBytes {
		return apperrors.New(apperrors.ErrImageTooLarge,
			"Image size must be less than 5MB")
	}
	return nil
}

// DataURI validates the payload, confirms it decodes as an image and
// returns it encoded as a data URI ready to store as imageUrl.
func DataURI(data []byte) (string, error) {
	if err := Validate(data); err != nil {
		return "", err
	}

	// A matching magic number is not enough; make sure the payload
	// actually decodes before embedding it.
	if _, _, err := image.Decode(bytes.NewReader(data)); err != nil {
		return "", apperrors.Wrap(apperrors.ErrImageInvalid,
			"Please upload a valid image file (JPEG, PNG, or WebP)", err)
	}

	mime := mimetype.Detect(data).String()
	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf("data:%s;base64,%s", mime, encoded), nil
}
