package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/alerta-golpe/api-go/apperrors"
	"github.com/alerta-golpe/api-go/repositories"
	"github.com/alerta-golpe/api-go/types"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	EvidenceURLExpiry   = time.Hour
	MaxEvidenceFileSize = 10 * 1024 * 1024
)

var evidenceContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}

type UploadService struct {
	storage repositories.ObjectStorage
	now     func() time.Time
	newID   func() string
}

// NewUploadService returns a service that rejects every call when storage is nil.
func NewUploadService(storage repositories.ObjectStorage) *UploadService {
	return &UploadService{
		storage: storage,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

func evidencePrefix(userID uint) string {
	return fmt.Sprintf("evidence/%d/", userID)
}

func (s *UploadService) PresignEvidence(ctx context.Context, userID uint, fileName, contentType string, size int64) (*types.PresignedURLResponse, error) {
	if s.storage == nil {
		return nil, apperrors.ServiceUnavailable("Armazenamento de arquivos não configurado", nil)
	}
	if !evidenceContentTypes[strings.ToLower(contentType)] {
		return nil, apperrors.Validation("Tipo de arquivo não permitido")
	}
	if size <= 0 || size > MaxEvidenceFileSize {
		return nil, apperrors.Validation("Arquivo excede o limite de 10MB")
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	key := fmt.Sprintf("%s%d_%s%s", evidencePrefix(userID), s.now().Unix(), s.newID(), ext)

	uploadURL, err := s.storage.PresignPut(ctx, key, contentType, EvidenceURLExpiry)
	if err != nil {
		return nil, apperrors.Internal("presign evidence upload", err)
	}

	return &types.PresignedURLResponse{
		UploadURL: uploadURL,
		FileURL:   s.storage.PublicURL(key),
		Key:       key,
		ExpiresIn: int(EvidenceURLExpiry.Seconds()),
	}, nil
}

// DeleteEvidence removes a file the caller uploaded. Keys outside the caller's prefix are refused.
func (s *UploadService) DeleteEvidence(ctx context.Context, userID uint, key string) error {
	if s.storage == nil {
		return apperrors.ServiceUnavailable("Armazenamento de arquivos não configurado", nil)
	}
	key = strings.TrimPrefix(key, "/")
	if key == "" {
		return apperrors.Validation("Chave do arquivo é obrigatória")
	}
	if !strings.HasPrefix(key, evidencePrefix(userID)) || strings.Contains(key, "..") {
		return apperrors.Forbidden("Acesso negado")
	}
	return errors.Wrap(s.storage.Delete(ctx, key), "delete evidence")
}
