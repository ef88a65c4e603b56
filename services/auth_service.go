package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alerta-golpe/api-go/apperrors"
	"github.com/alerta-golpe/api-go/models"
	"github.com/alerta-golpe/api-go/repositories"
	"github.com/alerta-golpe/api-go/types"
	"github.com/alerta-golpe/api-go/utils"
	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// GoogleIdentityProvider turns an OAuth authorization code into a Google profile.
type GoogleIdentityProvider interface {
	FetchProfile(ctx context.Context, code string) (*types.GoogleProfile, error)
}

type AuthService struct {
	users      repositories.UserRepository
	google     GoogleIdentityProvider
	secret     []byte
	expiry     time.Duration
	bcryptCost int
	now        func() time.Time
}

// NewAuthService builds the session issuer. google may be nil, which disables Google sign-in.
func NewAuthService(users repositories.UserRepository, google GoogleIdentityProvider, secret string, expiry time.Duration, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		google:     google,
		secret:     []byte(secret),
		expiry:     expiry,
		bcryptCost: bcryptCost,
		now:        time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*types.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.Conflict("E-mail já cadastrado")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, errors.Wrap(err, "lookup email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.Internal("hash password", err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Conflict("E-mail já cadastrado")
		}
		return nil, errors.Wrap(err, "create user")
	}

	return s.session(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*types.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.InvalidCredentials("E-mail ou senha inválidos")
		}
		return nil, errors.Wrap(err, "lookup email")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.InvalidCredentials("E-mail ou senha inválidos")
	}
	if !user.IsActive {
		return nil, apperrors.Forbidden("Conta desativada")
	}

	return s.session(user)
}

// GoogleLogin signs in with a Google authorization code, linking or creating the account.
func (s *AuthService) GoogleLogin(ctx context.Context, code string) (*types.AuthResponse, error) {
	if s.google == nil {
		return nil, apperrors.ServiceUnavailable("Login com Google não configurado", nil)
	}

	profile, err := s.google.FetchProfile(ctx, code)
	if err != nil {
		return nil, apperrors.Unauthorized("Falha na autenticação com Google")
	}
	if profile.Email == "" || !profile.VerifiedEmail {
		return nil, apperrors.Unauthorized("E-mail do Google não verificado")
	}

	user, err := s.users.FindByGoogleID(ctx, profile.ID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, errors.Wrap(err, "lookup google id")
	}

	if user == nil {
		user, err = s.linkOrCreateGoogleUser(ctx, profile)
		if err != nil {
			return nil, err
		}
	}

	if !user.IsActive {
		return nil, apperrors.Forbidden("Conta desativada")
	}
	return s.session(user)
}

func (s *AuthService) linkOrCreateGoogleUser(ctx context.Context, profile *types.GoogleProfile) (*models.User, error) {
	email := strings.ToLower(profile.Email)
	var avatar *string
	if profile.Picture != "" {
		avatar = &profile.Picture
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		if err := s.users.LinkGoogle(ctx, existing.ID, profile.ID, avatar); err != nil {
			return nil, errors.Wrap(err, "link google account")
		}
		return s.users.FindByID(ctx, existing.ID)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, errors.Wrap(err, "lookup email")
	}

	googleID := profile.ID
	name := profile.Name
	if name == "" {
		name = strings.Split(email, "@")[0]
	}
	user := &models.User{
		Name:     name,
		Email:    email,
		GoogleID: &googleID,
		Avatar:   avatar,
		IsActive: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "create google user")
	}
	return user, nil
}

func (s *AuthService) session(user *models.User) (*types.AuthResponse, error) {
	token, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}
	return &types.AuthResponse{
		Token: token,
		User: types.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			Bio:       user.Bio,
			Avatar:    user.Avatar,
			IsAdmin:   user.IsAdmin,
			IsActive:  user.IsActive,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

func (s *AuthService) IssueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"is_admin": user.IsAdmin,
		"exp":      s.now().Add(s.expiry).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", apperrors.Internal("sign token", err)
	}
	return token, nil
}

func (s *AuthService) ParseToken(tokenString string) (*utils.Session, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, apperrors.Unauthorized("Token inválido")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return nil, apperrors.Unauthorized("Token inválido")
	}
	isAdmin, _ := claims["is_admin"].(bool)

	return &utils.Session{UserID: uint(userID), IsAdmin: isAdmin}, nil
}

// Authenticate parses the token and reloads the account, so deactivated users
// lose access and admin rights follow the current row.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*utils.Session, error) {
	session, err := s.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthorized("Usuário não encontrado")
		}
		return nil, errors.Wrap(err, "load session user")
	}
	if !user.IsActive {
		return nil, apperrors.Unauthorized("Conta desativada")
	}

	session.IsAdmin = user.IsAdmin
	return session, nil
}
