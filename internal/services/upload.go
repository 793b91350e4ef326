package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

type UploadService interface {
	ReadFile(file *multipart.FileHeader) ([]byte, string, error)
}

type uploadService struct {
	maxFileSize int64
}

func NewUploadService(maxFileSize int64) UploadService {
	return &uploadService{
		maxFileSize: maxFileSize,
	}
}

// ReadFile loads an uploaded file into memory and reports its media type.
func (s *uploadService) ReadFile(file *multipart.FileHeader) ([]byte, string, error) {
	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		return nil, "", fmt.Errorf("file too large. Max size: %d bytes", s.maxFileSize)
	}

	src, err := file.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return data, detectMIMEType(file.Header.Get("Content-Type"), data), nil
}

func detectMIMEType(declared string, data []byte) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}

	// Fall back to sniffing
	sniffed := http.DetectContentType(data)
	sniffed, _, _ = strings.Cut(sniffed, ";")
	return sniffed
}
