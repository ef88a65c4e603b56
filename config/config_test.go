package config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "DATABASE_URL", "JWT_EXPIRE_HOURS", "LOG_LEVEL", "REDIS_ADDR", "DB_HOST", "DB_NAME"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.RedisAddr)
	assert.False(t, cfg.IsProduction())
	assert.Contains(t, cfg.DSN(), "host=localhost")
	assert.Contains(t, cfg.DSN(), "dbname=alerta_golpe")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_EXPIRE_HOURS", "2")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/app")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "postgres://u:p@db:5432/app", cfg.DSN())
}

func TestInvalidExpiryFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRE_HOURS", "abc")
	assert.Equal(t, 7*24*time.Hour, Load().JWTExpiry)
}

func TestNewLogger(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, NewLogger("debug").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger("nonsense").GetLevel())
}

func TestR2Disabled(t *testing.T) {
	assert.Nil(t, NewR2Client(&R2Config{AccountID: "acc"}))
	assert.Nil(t, NewR2Client(nil))

	full := &R2Config{AccountID: "a", AccessKeyID: "k", SecretAccessKey: "s", BucketName: "b", Region: "auto"}
	assert.True(t, full.Enabled())
	assert.NotNil(t, NewR2Client(full))
}

func TestNewGoogleConfigRequiresCredentials(t *testing.T) {
	assert.Nil(t, NewGoogleConfig(GoogleCredentials{ClientID: "id"}))
	assert.NotNil(t, NewGoogleConfig(GoogleCredentials{ClientID: "id", ClientSecret: "secret"}))
}

func TestFetchProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"Bearer","expires_in":3600}`))
		case "/userinfo":
			if r.Header.Get("Authorization") != "Bearer tok" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = w.Write([]byte(`{"id":"g-1","email":"ana@example.com","verified_email":true,"name":"Ana","picture":"https://img/ana.png"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	g := NewGoogleConfig(GoogleCredentials{ClientID: "id", ClientSecret: "secret"})
	require.NotNil(t, g)
	g.Config.Endpoint = oauth2.Endpoint{TokenURL: server.URL + "/token", AuthStyle: oauth2.AuthStyleInParams}
	g.UserInfoURL = server.URL + "/userinfo"

	profile, err := g.FetchProfile(context.Background(), "code")
	require.NoError(t, err)
	assert.Equal(t, "g-1", profile.ID)
	assert.Equal(t, "ana@example.com", profile.Email)
	assert.True(t, profile.VerifiedEmail)

	g.UserInfoURL = server.URL + "/missing"
	_, err = g.FetchProfile(context.Background(), "code")
	assert.Error(t, err)
}

func TestInitTracingDisabledWithoutEndpoint(t *testing.T) {
	tp, err := InitTracing(context.Background(), &Config{})
	require.NoError(t, err)
	assert.Nil(t, tp)
}

func TestNewRedisClientDisabledWithoutAddr(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	assert.Nil(t, NewRedisClient(context.Background(), "", log))
}
