package service

import (
	"fmt"
	"mime/multipart"

	"github.com/spendview/spendview/internal/model"
	"github.com/spendview/spendview/internal/repository"
	"github.com/spendview/spendview/internal/validation"
)

type UserService struct {
	userRepo    repository.UserRepository
	fileService *FileService
}

func NewUserService(userRepo repository.UserRepository, fileService *FileService) *UserService {
	return &UserService{
		userRepo:    userRepo,
		fileService: fileService,
	}
}

func (s *UserService) ByID(id string) (*model.User, error) {
	user, err := s.userRepo.ByID(id)
	if err != nil {
		return nil, err
	}

	user.AvatarURL = s.fileService.AvatarURL(user.AvatarPath)
	return user, nil
}

// SetAvatar uploads a new profile picture and points the user row at it.
func (s *UserService) SetAvatar(userID string, file multipart.File, header *multipart.FileHeader) (*model.User, error) {
	err := validation.ValidateFile(header, validation.ImageConstraints)
	if err != nil {
		return nil, Validation(err)
	}

	uploaded, err := s.fileService.Upload(userID, "user", userID, model.FileTypeAvatar, file, header)
	if err != nil {
		return nil, err
	}

	err = s.userRepo.UpdateAvatar(userID, &uploaded.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to update avatar: %w", err)
	}

	return s.ByID(userID)
}
