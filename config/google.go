package config

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/alerta-golpe/api-go/types"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type GoogleConfig struct {
	Config      *oauth2.Config
	UserInfoURL string
}

// NewGoogleConfig returns nil when the client credentials are not set.
func NewGoogleConfig(creds GoogleCredentials) *GoogleConfig {
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return nil
	}

	return &GoogleConfig{
		Config: &oauth2.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			RedirectURL:  creds.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		UserInfoURL: googleUserInfoURL,
	}
}

// FetchProfile exchanges the authorization code and loads the signed-in user's profile.
func (g *GoogleConfig) FetchProfile(ctx context.Context, code string) (*types.GoogleProfile, error) {
	token, err := g.Config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "exchange google code")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.UserInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build userinfo request")
	}

	resp, err := g.Config.Client(ctx, token).Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch google profile")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("google userinfo returned %d", resp.StatusCode)
	}

	var profile types.GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, errors.Wrap(err, "decode google profile")
	}
	return &profile, nil
}
