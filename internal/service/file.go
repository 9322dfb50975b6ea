package service

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spendview/spendview/internal/model"
	"github.com/spendview/spendview/internal/repository"
	"github.com/spendview/spendview/internal/storage"
)

var ErrStorageNotConfigured = errors.New("file storage is not configured")

// FileService stores uploaded avatars and receipts in object storage and
// tracks them in the files table. The storage backend is optional: without
// one the server still runs, uploads fail with ErrStorageNotConfigured and
// URLs come back empty.
type FileService struct {
	fileRepo repository.FileRepository
	storage  storage.Storage
}

func NewFileService(fileRepo repository.FileRepository, storage storage.Storage) *FileService {
	return &FileService{
		fileRepo: fileRepo,
		storage:  storage,
	}
}

// Upload stores a file and creates its database record. Callers validate
// type, size and content before handing the file over.
func (s *FileService) Upload(userID, ownerType, ownerID, fileType string, file multipart.File, header *multipart.FileHeader) (*model.File, error) {
	if s.storage == nil {
		return nil, ErrStorageNotConfigured
	}

	ext := filepath.Ext(header.Filename)
	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	folderName := fileType + "s" // avatar -> avatars, receipt -> receipts
	storagePath := filepath.Join(folderName, filename)

	err := s.storage.Save(storagePath, file)
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	fileModel := &model.File{
		ID:           uuid.New().String(),
		UserID:       userID,
		OwnerType:    ownerType,
		OwnerID:      ownerID,
		Type:         fileType,
		Filename:     filename,
		OriginalName: header.Filename,
		MimeType:     header.Header.Get("Content-Type"),
		Size:         header.Size,
		StoragePath:  storagePath,
		CreatedAt:    time.Now(),
	}

	err = s.fileRepo.Create(fileModel)
	if err != nil {
		// Clean up the orphaned object before surfacing the failure
		delErr := s.storage.Delete(storagePath)
		if delErr != nil {
			slog.Error("failed to delete file from storage during cleanup", "error", delErr, "path", storagePath)
		}
		return nil, fmt.Errorf("failed to create file record: %w", err)
	}

	return fileModel, nil
}

// URL resolves a storage path to a presigned URL. Nil paths and a missing
// backend both yield "", which JSON marshals as an absent avatar/receipt.
func (s *FileService) URL(storagePath string) string {
	if s.storage == nil || storagePath == "" {
		return ""
	}
	return s.storage.URL(storagePath)
}

// AvatarURL is URL for nullable avatar columns.
func (s *FileService) AvatarURL(avatarPath *string) string {
	if avatarPath == nil {
		return ""
	}
	return s.URL(*avatarPath)
}

// Delete removes a file from storage and the database.
func (s *FileService) Delete(fileID string) error {
	file, err := s.fileRepo.ByID(fileID)
	if err != nil {
		return fmt.Errorf("failed to get file: %w", err)
	}

	if s.storage != nil {
		delErr := s.storage.Delete(file.StoragePath)
		if delErr != nil {
			slog.Error("failed to delete file from storage", "error", delErr, "path", file.StoragePath)
		}
	}

	err = s.fileRepo.Delete(fileID)
	if err != nil {
		return fmt.Errorf("failed to delete file record: %w", err)
	}

	return nil
}
