package uploads

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaxImageSize bounds a single uploaded image.
const MaxImageSize = 16 << 20 // 16MB

// Dir is the upload directory; images are referenced by filename from
// user, service, menu and message rows.
func Dir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// SaveImage stores an uploaded image under the upload directory with a
// unique sanitized filename and returns that filename.
func SaveImage(c *gin.Context, file *multipart.FileHeader, prefix string) (string, error) {
	if file.Size > MaxImageSize {
		return "", errors.New("image exceeds 16MB limit")
	}
	if err := os.MkdirAll(Dir(), os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	name := strings.ReplaceAll(filepath.Base(file.Filename), " ", "_")
	filename := fmt.Sprintf("%s_%s_%s_%s",
		prefix, time.Now().Format("20060102_150405"), uuid.NewString()[:8], name)

	if err := c.SaveUploadedFile(file, filepath.Join(Dir(), filename)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return filename, nil
}

// Remove deletes a stored image; a missing file is not an error.
func Remove(filename string) error {
	if filename == "" {
		return nil
	}
	if err := os.Remove(filepath.Join(Dir(), filename)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
