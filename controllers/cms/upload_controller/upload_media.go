package upload_controller

import (
	"errors"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/services"
)

// UploadMedia godoc
// @Summary Upload a media file
// @Description Validates the file (MIME type, size, dimensions, aspect ratio) and stores it on Cloudinary. Constraints arrive as form fields because the admin form decides them per slot.
// @Tags Admin - Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param type formData string false "Upload type (image, icon, video); defaults to image"
// @Param category formData string false "Storage folder under the site root"
// @Param max_size_mb formData number false "Maximum file size in MB"
// @Param max_width formData int false "Maximum pixel width"
// @Param max_height formData int false "Maximum pixel height"
// @Param aspect_ratio formData number false "Required width/height ratio"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /api/upload [post]
func UploadMedia(c *gin.Context) {
	cld := services.GetCloudinary()
	if cld == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Media uploads are not configured"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No file provided"))
		return
	}

	uploadType := c.DefaultPostForm("type", services.UploadTypeImage)
	switch uploadType {
	case services.UploadTypeImage, services.UploadTypeIcon, services.UploadTypeVideo:
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown upload type: "+uploadType))
		return
	}

	constraints := services.MediaConstraints{
		MaxSizeMB:   parseFloatField(c, "max_size_mb"),
		MaxWidth:    parseIntField(c, "max_width"),
		MaxHeight:   parseIntField(c, "max_height"),
		AspectRatio: parseFloatField(c, "aspect_ratio"),
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read uploaded file"))
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if err := services.ValidateMedia(file, contentType, fileHeader.Size, uploadType, constraints); err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, vErr.Reason))
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "File validation failed"))
		return
	}

	// Validation consumed the reader; rewind before handing it to the
	// uploader.
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not rewind uploaded file"))
		return
	}

	folder := "kkengineering"
	if category := strings.TrimSpace(c.PostForm("category")); category != "" {
		folder = folder + "/" + category
	}

	resourceType := "image"
	if uploadType == services.UploadTypeVideo {
		resourceType = "video"
	}

	base := strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	publicID := base + "_" + strconv.FormatInt(time.Now().Unix(), 10)

	ctx, cancel := config.WithCustomTimeout(60 * time.Second)
	defer cancel()

	url, err := cld.UploadMedia(ctx, file, publicID, folder, resourceType)
	if err != nil {
		log.Printf("[ERROR] Media upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload media"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "File uploaded successfully", gin.H{
		"url":  url,
		"type": uploadType,
	}))
}

func parseFloatField(c *gin.Context, name string) float64 {
	v, err := strconv.ParseFloat(c.PostForm(name), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseIntField(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.PostForm(name))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
