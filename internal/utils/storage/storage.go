package storage

import (
	"errors"
	"mime/multipart"
)

// AllowImage lists the upload extensions accepted for donation photos.
var AllowImage = []string{".jpg", ".jpeg", ".png", ".webp"}

var ErrFileTypeNotAllowed = errors.New("file type not allowed")

// Storage stores uploaded files and hands back a key that can later be turned
// into a public link. Two drivers exist: local disk (default) and AWS S3.
type Storage interface {
	UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error)
	GetPublicLinkKey(objectKey string) string
}

func extensionAllowed(ext string, allowedExt []string) bool {
	if len(allowedExt) == 0 {
		return true
	}
	for _, allowed := range allowedExt {
		if ext == allowed {
			return true
		}
	}
	return false
}
