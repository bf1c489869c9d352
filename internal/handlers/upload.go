package handlers

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// saveImage stores an uploaded image under the configured upload directory
// with a random filename and returns its public /uploads path. Returns ""
// and no error when the request carries no image.
func saveImage(c *gin.Context, cfg *config.Config) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		// No file attached
		return "", nil
	}
	return storeImageFile(c, file, cfg)
}

func storeImageFile(c *gin.Context, file *multipart.FileHeader, cfg *config.Config) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", apperrors.NewValidation("only jpg, jpeg, png, gif and webp images are allowed")
	}
	if file.Size > cfg.Uploads.MaxSizeBytes {
		return "", apperrors.NewValidation("image exceeds the maximum upload size")
	}

	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		return "", err
	}
	filename := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(cfg.Uploads.Dir, filename)); err != nil {
		return "", err
	}
	return "/uploads/" + filename, nil
}

// removeImage deletes a previously stored image given its public path.
// Paths outside /uploads are ignored; a missing file is not an error.
func removeImage(imagePath string, cfg *config.Config) {
	if !strings.HasPrefix(imagePath, "/uploads/") {
		return
	}
	filename := filepath.Base(imagePath)
	_ = os.Remove(filepath.Join(cfg.Uploads.Dir, filename))
}
