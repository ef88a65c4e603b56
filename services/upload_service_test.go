package services

import (
	"context"
	"testing"
	"time"

	"github.com/alerta-golpe/api-go/apperrors"
	"github.com/alerta-golpe/api-go/repositories/memory"
	"github.com/stretchr/testify/require"
)

func TestUploadService_PresignEvidence(t *testing.T) {
	storage := memory.NewObjectStorage("https://cdn.example.com")
	svc := NewUploadService(storage)
	svc.now = func() time.Time { return time.Unix(1700000000, 0) }
	svc.newID = func() string { return "abc" }

	resp, err := svc.PresignEvidence(context.Background(), 7, "Comprovante.PDF", "application/pdf", 2048)
	require.NoError(t, err)
	require.Equal(t, "evidence/7/1700000000_abc.pdf", resp.Key)
	require.Equal(t, "https://cdn.example.com/evidence/7/1700000000_abc.pdf", resp.FileURL)
	require.Equal(t, 3600, resp.ExpiresIn)
	require.Equal(t, time.Hour, storage.Signed[resp.Key])
}

func TestUploadService_PresignValidation(t *testing.T) {
	svc := NewUploadService(memory.NewObjectStorage("https://cdn.example.com"))

	_, err := svc.PresignEvidence(context.Background(), 7, "video.mp4", "video/mp4", 2048)
	require.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.PresignEvidence(context.Background(), 7, "print.png", "image/png", MaxEvidenceFileSize+1)
	require.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.PresignEvidence(context.Background(), 7, "print.png", "image/png", MaxEvidenceFileSize)
	require.NoError(t, err)
}

func TestUploadService_DeleteOnlyOwnEvidence(t *testing.T) {
	storage := memory.NewObjectStorage("https://cdn.example.com")
	svc := NewUploadService(storage)
	ctx := context.Background()

	require.NoError(t, svc.DeleteEvidence(ctx, 7, "/evidence/7/1_a.png"))
	require.Equal(t, []string{"evidence/7/1_a.png"}, storage.Deleted)

	require.ErrorIs(t, svc.DeleteEvidence(ctx, 7, "evidence/70/1_a.png"), apperrors.ErrForbidden)
	require.ErrorIs(t, svc.DeleteEvidence(ctx, 7, "evidence/8/1_a.png"), apperrors.ErrForbidden)
	require.ErrorIs(t, svc.DeleteEvidence(ctx, 7, "evidence/7/../8/x.png"), apperrors.ErrForbidden)
	require.Len(t, storage.Deleted, 1)
}

func TestUploadService_WithoutStorage(t *testing.T) {
	svc := NewUploadService(nil)
	_, err := svc.PresignEvidence(context.Background(), 1, "a.png", "image/png", 10)
	require.ErrorIs(t, err, apperrors.ErrServiceUnavailable)
}
