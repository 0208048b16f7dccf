package services

import (
	"fmt"
	"image"
	"io"
	"math"
	"strings"

	// Register decoders for the formats the allow-lists accept.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Upload types the /api/upload endpoint accepts.
const (
	UploadTypeImage = "image"
	UploadTypeIcon  = "icon"
	UploadTypeVideo = "video"
)

// aspectRatioTolerance is the maximum absolute deviation between the
// decoded width/height ratio and the requested one.
const aspectRatioTolerance = 0.1

var (
	imageMimeTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}
	// Icons additionally allow .ico payloads.
	iconMimeTypes  = []string{"image/jpeg", "image/png", "image/webp", "image/gif", "image/svg+xml", "image/x-icon", "image/vnd.microsoft.icon"}
	videoMimeTypes = []string{"video/mp4", "video/webm", "video/quicktime"}
)

// MediaConstraints are supplied by the caller per upload; they are
// configuration, not constants. Zero values disable the corresponding
// check.
type MediaConstraints struct {
	MaxSizeMB   float64
	MaxWidth    int
	MaxHeight   int
	AspectRatio float64
}

// ValidationError marks a rejection of the uploaded file itself, as
// opposed to a transport failure. Handlers map it to a 400-class
// response.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func rejectf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func allowedMimeTypes(uploadType string) []string {
	switch uploadType {
	case UploadTypeIcon:
		return iconMimeTypes
	case UploadTypeVideo:
		return videoMimeTypes
	default:
		return imageMimeTypes
	}
}

// ValidateMedia runs the server-side mirror of the admin form's upload
// checks: declared MIME type against the per-upload-type allow-list, then
// byte size, then (for raster images) decoded pixel dimensions and aspect
// ratio. Type and size run before the decode so an oversized or
// mistyped file fails fast. The reader is consumed; callers must seek
// back before uploading.
func ValidateMedia(r io.Reader, contentType string, sizeBytes int64, uploadType string, c MediaConstraints) error {
	contentType = strings.ToLower(strings.TrimSpace(contentType))

	allowed := false
	for _, mt := range allowedMimeTypes(uploadType) {
		if contentType == mt {
			allowed = true
			break
		}
	}
	if !allowed {
		return rejectf("file type %s is not allowed for %s uploads", contentType, uploadType)
	}

	if c.MaxSizeMB > 0 {
		maxBytes := int64(c.MaxSizeMB * 1024 * 1024)
		if sizeBytes > maxBytes {
			return rejectf("file size %.2fMB exceeds the %.2fMB limit", float64(sizeBytes)/(1024*1024), c.MaxSizeMB)
		}
	}

	// Dimension checks only make sense for decodable raster images.
	if uploadType == UploadTypeVideo || !isRasterImage(contentType) {
		return nil
	}
	if c.MaxWidth == 0 && c.MaxHeight == 0 && c.AspectRatio == 0 {
		return nil
	}

	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return rejectf("could not read image dimensions: %v", err)
	}

	if c.MaxWidth > 0 && cfg.Width > c.MaxWidth {
		return rejectf("image width %dpx exceeds the %dpx limit", cfg.Width, c.MaxWidth)
	}
	if c.MaxHeight > 0 && cfg.Height > c.MaxHeight {
		return rejectf("image height %dpx exceeds the %dpx limit", cfg.Height, c.MaxHeight)
	}
	if c.AspectRatio > 0 && cfg.Height > 0 {
		ratio := float64(cfg.Width) / float64(cfg.Height)
		if math.Abs(ratio-c.AspectRatio) > aspectRatioTolerance {
			return rejectf("image aspect ratio %.2f differs from the required %.2f", ratio, c.AspectRatio)
		}
	}
	return nil
}

func isRasterImage(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/gif":
		return true
	}
	return false
}
