package services

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func TestValidateMediaTypeAllowLists(t *testing.T) {
	data := pngBytes(t, 10, 10)

	err := ValidateMedia(bytes.NewReader(data), "image/png", int64(len(data)), UploadTypeImage, MediaConstraints{})
	assert.NoError(t, err)

	err = ValidateMedia(bytes.NewReader(nil), "application/pdf", 100, UploadTypeImage, MediaConstraints{})
	require.Error(t, err)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, err.Error(), "not allowed")

	// Icons accept formats plain images reject.
	err = ValidateMedia(bytes.NewReader(nil), "image/svg+xml", 100, UploadTypeIcon, MediaConstraints{})
	assert.NoError(t, err)
	err = ValidateMedia(bytes.NewReader(nil), "image/svg+xml", 100, UploadTypeImage, MediaConstraints{})
	assert.Error(t, err)

	// MIME comparison ignores case and surrounding whitespace.
	err = ValidateMedia(bytes.NewReader(data), " IMAGE/PNG ", int64(len(data)), UploadTypeImage, MediaConstraints{})
	assert.NoError(t, err)

	err = ValidateMedia(bytes.NewReader(nil), "video/mp4", 100, UploadTypeVideo, MediaConstraints{})
	assert.NoError(t, err)
	err = ValidateMedia(bytes.NewReader(nil), "image/png", 100, UploadTypeVideo, MediaConstraints{})
	assert.Error(t, err)
}

func TestValidateMediaSizeBoundary(t *testing.T) {
	data := pngBytes(t, 10, 10)
	limit := MediaConstraints{MaxSizeMB: 2}
	maxBytes := int64(2 * 1024 * 1024)

	// Exactly at the limit passes; one byte over fails.
	err := ValidateMedia(bytes.NewReader(data), "image/png", maxBytes, UploadTypeImage, limit)
	assert.NoError(t, err)

	err = ValidateMedia(bytes.NewReader(data), "image/png", maxBytes+1, UploadTypeImage, limit)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestValidateMediaDimensions(t *testing.T) {
	data := pngBytes(t, 800, 600)

	err := ValidateMedia(bytes.NewReader(data), "image/png", int64(len(data)), UploadTypeImage, MediaConstraints{MaxWidth: 1024, MaxHeight: 768})
	assert.NoError(t, err)

	err = ValidateMedia(bytes.NewReader(data), "image/png", int64(len(data)), UploadTypeImage, MediaConstraints{MaxWidth: 640})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width")

	err = ValidateMedia(bytes.NewReader(data), "image/png", int64(len(data)), UploadTypeImage, MediaConstraints{MaxHeight: 480})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "height")
}

func TestValidateMediaAspectRatio(t *testing.T) {
	// 800x600 is ratio 1.33.
	data := pngBytes(t, 800, 600)

	err := ValidateMedia(bytes.NewReader(data), "image/png", int64(len(data)), UploadTypeImage, MediaConstraints{AspectRatio: 1.33})
	assert.NoError(t, err)

	// Within the 0.1 tolerance window.
	err = ValidateMedia(bytes.NewReader(data), "image/png", int64(len(data)), UploadTypeImage, MediaConstraints{AspectRatio: 1.4})
	assert.NoError(t, err)

	err = ValidateMedia(bytes.NewReader(data), "image/png", int64(len(data)), UploadTypeImage, MediaConstraints{AspectRatio: 1.0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aspect ratio")
}

func TestValidateMediaChecksTypeBeforeSize(t *testing.T) {
	// Both type and size are wrong; the type failure wins.
	err := ValidateMedia(strings.NewReader(""), "application/zip", 50*1024*1024, UploadTypeImage, MediaConstraints{MaxSizeMB: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
}

func TestValidateMediaSkipsDecodeForNonRaster(t *testing.T) {
	// A webp allow-listed type has no registered decoder; dimension
	// constraints are skipped rather than failing the upload.
	err := ValidateMedia(strings.NewReader("not-an-image"), "image/webp", 12, UploadTypeImage, MediaConstraints{MaxWidth: 10})
	assert.NoError(t, err)

	// A corrupt raster image does fail once dimensions are requested.
	err = ValidateMedia(strings.NewReader("not-an-image"), "image/png", 12, UploadTypeImage, MediaConstraints{MaxWidth: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimensions")
}
