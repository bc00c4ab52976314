package httpapi

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/furnishfusion/storefront/internal/domain/constants"
)

// saveUpload stores an image upload under the uploads dir with a random
// name and returns the public URL path. The original filename only
// contributes its extension.
func saveUpload(c *gin.Context, file *multipart.FileHeader, uploadDir string) (string, error) {
	if file.Size > constants.MaxFileUploadSize {
		return "", fmt.Errorf("file too large, maximum size is %dMB", constants.MaxFileUploadSize/(1024*1024))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !constants.AllowedImageExtensions[ext] {
		return "", fmt.Errorf("file type %q is not allowed", ext)
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, name)); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return "/uploads/" + name, nil
}
