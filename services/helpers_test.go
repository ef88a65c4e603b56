package services

import (
	"context"
	"io"
	"testing"

	"github.com/alerta-golpe/api-go/models"
	"github.com/alerta-golpe/api-go/repositories/memory"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	return log
}

func seedUser(t *testing.T, store *memory.Store, name, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:     name,
		Email:    name + "@example.com",
		Password: string(hash),
		IsActive: true,
	}
	require.NoError(t, store.Users().Create(context.Background(), user))
	return user
}

func seedScam(t *testing.T, store *memory.Store, ownerID uint, title string) *models.Scam {
	t.Helper()
	scam := &models.Scam{
		Title:       title,
		Description: "Descrição detalhada do golpe aplicado",
		Category:    models.CategoryPhishing,
		UserID:      ownerID,
	}
	require.NoError(t, store.Scams().Create(context.Background(), scam))
	return scam
}

func seedComment(t *testing.T, store *memory.Store, scamID, userID uint) *models.Comment {
	t.Helper()
	comment := &models.Comment{Content: "Também caí nessa", ScamID: scamID, UserID: userID}
	require.NoError(t, store.Comments().Create(context.Background(), comment))
	return comment
}
