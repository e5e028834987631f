package services

import (
	"context"
	"fmt"
	"time"

	"booststudio/internal/domain"
	"booststudio/internal/domain/models"
	"booststudio/internal/repositories"
	"booststudio/internal/utils"
)

type MediaService struct {
	Repo      repositories.MediaRepository
	Uploader  Uploader
	RequestID string
}

// SaveUploadInput carries the admin media form metadata.
type SaveUploadInput struct {
	Type        string
	Title       string
	Description string
	Category    string
}

// SaveUpload pushes the file to the media host first; the catalog row is only
// written once a public URL exists.
func (s MediaService) SaveUpload(ctx context.Context, data []byte, in SaveUploadInput) (models.Media, error) {
	mediaType, err := domain.ParseMediaType(in.Type)
	if err != nil {
		return models.Media{}, err
	}

	url, err := s.Uploader.Upload(ctx, data, mediaType)
	if err != nil {
		return models.Media{}, err
	}

	now := time.Now()
	m := models.Media{
		ID:          fmt.Sprintf("MEDIA-%d", now.UnixMilli()),
		Type:        mediaType,
		URL:         url,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		IsVisible:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repo.Insert(m); err != nil {
		return models.Media{}, err
	}

	utils.LogEvent(s.RequestID, "media", "save_upload", "id="+m.ID+" type="+string(mediaType))
	return m, nil
}

func (s MediaService) List(visibleOnly bool) ([]models.Media, error) {
	return s.Repo.List(visibleOnly)
}

// Update applies a partial patch and returns the merged record.
func (s MediaService) Update(id string, patch repositories.MediaPatch) (models.Media, error) {
	m, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Media{}, err
	}

	if err := s.Repo.Update(id, patch); err != nil {
		return models.Media{}, err
	}

	if patch.Title != nil {
		m.Title = *patch.Title
	}
	if patch.Description != nil {
		m.Description = *patch.Description
	}
	if patch.Category != nil {
		m.Category = *patch.Category
	}
	if patch.IsVisible != nil {
		m.IsVisible = *patch.IsVisible
	}
	m.UpdatedAt = time.Now()

	utils.LogEvent(s.RequestID, "media", "update", "id="+id)
	return m, nil
}

func (s MediaService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "media", "delete", "id="+id)
	return nil
}
