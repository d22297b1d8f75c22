package http

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"video-hive/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// saveUpload stores the single file sent under field into dir and returns its
// path, or "" when the field is absent. The caller removes the file.
func saveUpload(c *gin.Context, field, dir string) (string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", apperror.Validation("Uploaded files are too large").WithCause(err)
		}
		return "", apperror.Validation("Invalid multipart form").WithCause(err)
	}

	files := form.File[field]
	switch len(files) {
	case 0:
		return "", nil
	case 1:
	default:
		return "", apperror.Validation(fmt.Sprintf("Only one %s file is allowed", field))
	}

	path := filepath.Join(dir, uuid.New().String()+filepath.Ext(files[0].Filename))
	if err := c.SaveUploadedFile(files[0], path); err != nil {
		return "", apperror.Internal("Unable to store uploaded file").WithCause(err)
	}
	return path, nil
}

// uploads collects saved temp files so a handler can release them in one defer.
type uploads []string

func (u *uploads) save(c *gin.Context, field, dir string) (string, error) {
	path, err := saveUpload(c, field, dir)
	if path != "" {
		*u = append(*u, path)
	}
	return path, err
}

// cleanup removes whatever the asset store did not already consume.
func (u *uploads) cleanup() {
	for _, path := range *u {
		_ = os.Remove(path)
	}
}
