package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestCanMutate(t *testing.T) {
	require.True(t, CanMutate(7, &Session{UserID: 7}))
	require.True(t, CanMutate(7, &Session{UserID: 3, IsAdmin: true}))
	require.False(t, CanMutate(7, &Session{UserID: 3}))
	require.False(t, CanMutate(7, nil))
}

func TestSessionRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	require.Nil(t, GetSession(c))

	SetSession(c, &Session{UserID: 42, IsAdmin: true})
	session := GetSession(c)
	require.NotNil(t, session)
	require.Equal(t, uint(42), session.UserID)
	require.True(t, session.IsAdmin)
}
