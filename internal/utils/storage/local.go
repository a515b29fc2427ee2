package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

type localStorage struct {
	baseDir string
}

// NewLocalStorage stores uploads on disk under baseDir, which should sit
// outside the served code tree. Stored files are named with a millisecond
// timestamp prefix followed by the original filename, so the fileName
// argument of UploadFile is ignored by this driver.
func NewLocalStorage(baseDir string) Storage {
	return &localStorage{baseDir: baseDir}
}

func (s *localStorage) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !extensionAllowed(ext, allowedExt) {
		return "", ErrFileTypeNotAllowed
	}

	objectKey := path.Join(folder, fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename)))

	dst := filepath.Join(s.baseDir, filepath.FromSlash(objectKey))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", err
	}
	return objectKey, nil
}

// GetPublicLinkKey returns the relative path the router serves the file
// under. Anyone holding the link can fetch it; there is no access control.
func (s *localStorage) GetPublicLinkKey(objectKey string) string {
	return "/uploads/" + objectKey
}
