package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StorageService owns the two flat-file areas: uploaded resume PDFs and the
// per-interview notification artifacts that form the human-readable audit
// trail independent of the database.
type StorageService interface {
	SaveFile(file *multipart.FileHeader, fileType string) (string, string, error)
	GetFilePath(filename string) string
	DeleteFile(filename string) error
	WriteNotification(candidateRef string, jobID uint, content string) (string, error)
	EnsureDirs() error
}

type storageService struct {
	uploadPath       string
	notificationPath string
}

func NewStorageService(uploadPath, notificationPath string) StorageService {
	return &storageService{
		uploadPath:       uploadPath,
		notificationPath: notificationPath,
	}
}

func (s *storageService) EnsureDirs() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	if err := os.MkdirAll(s.notificationPath, 0755); err != nil {
		return fmt.Errorf("failed to create notification directory: %w", err)
	}

	return nil
}

func (s *storageService) SaveFile(file *multipart.FileHeader, fileType string) (string, string, error) {
	// Validate file extensions
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return "", "", fmt.Errorf("invalid file extension: %s", ext)
	}

	// Generate the unique filename
	uniqueFilename := fmt.Sprintf("%s_%s%s", fileType, uuid.New().String(), ext)
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	// Open source file
	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Create destination file
	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	// Copy file
	if _, err := io.Copy(dst, src); err != nil {
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	return uniqueFilename, filePath, nil
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filename)
}

func (s *storageService) DeleteFile(filename string) error {
	filePath := s.GetFilePath(filename)
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// WriteNotification writes one text blob per scheduled interview.
func (s *storageService) WriteNotification(candidateRef string, jobID uint, content string) (string, error) {
	filename := fmt.Sprintf("email_cv%s_jd%d.txt", candidateRef, jobID)
	filePath := filepath.Join(s.notificationPath, filename)

	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write notification artifact: %w", err)
	}

	return filePath, nil
}
