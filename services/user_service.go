package services

import (
	"context"

	"github.com/alerta-golpe/api-go/apperrors"
	"github.com/alerta-golpe/api-go/repositories"
	"github.com/alerta-golpe/api-go/types"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	users      repositories.UserRepository
	scams      repositories.ScamRepository
	comments   repositories.CommentRepository
	likes      repositories.LikeRepository
	bcryptCost int
}

func NewUserService(
	users repositories.UserRepository,
	scams repositories.ScamRepository,
	comments repositories.CommentRepository,
	likes repositories.LikeRepository,
	bcryptCost int,
) *UserService {
	return &UserService{
		users:      users,
		scams:      scams,
		comments:   comments,
		likes:      likes,
		bcryptCost: bcryptCost,
	}
}

func (s *UserService) List(ctx context.Context, page, limit int) ([]types.UserResponse, types.Pagination, error) {
	rows, total, err := s.users.List(ctx, types.Offset(page, limit), limit)
	if err != nil {
		return nil, types.Pagination{}, errors.Wrap(err, "list users")
	}

	users := make([]types.UserResponse, 0, len(rows))
	for _, row := range rows {
		users = append(users, toUserResponse(row))
	}
	return users, types.NewPagination(total, page, limit), nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*types.UserResponse, error) {
	row, err := s.users.GetWithCounts(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get user %d", id)
	}
	response := toUserResponse(*row)
	return &response, nil
}

func (s *UserService) ListScams(ctx context.Context, userID uint, page, limit int) ([]types.ScamResponse, types.Pagination, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, types.Pagination{}, errors.Wrapf(err, "get user %d", userID)
	}

	filter := types.ScamFilter{UserID: &userID}
	rows, total, err := s.scams.List(ctx, filter, types.Offset(page, limit), limit)
	if err != nil {
		return nil, types.Pagination{}, errors.Wrap(err, "list user scams")
	}
	return toScamResponses(rows), types.NewPagination(total, page, limit), nil
}

func (s *UserService) Update(ctx context.Context, id uint, patch types.UserPatch) (*types.UserResponse, error) {
	if err := s.users.UpdateProfile(ctx, id, patch); err != nil {
		return nil, errors.Wrapf(err, "update user %d", id)
	}
	return s.Get(ctx, id)
}

// ChangePassword replaces the stored hash only when current matches it.
func (s *UserService) ChangePassword(ctx context.Context, id uint, current, next string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "get user %d", id)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return apperrors.InvalidCredentials("Senha atual incorreta")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.bcryptCost)
	if err != nil {
		return apperrors.Internal("hash password", err)
	}

	return errors.Wrap(s.users.UpdatePassword(ctx, id, string(hash)), "store password")
}

// Deactivate soft-deletes the account. Scams and comments stay in place.
func (s *UserService) Deactivate(ctx context.Context, id uint) error {
	return errors.Wrapf(s.users.SetActive(ctx, id, false), "deactivate user %d", id)
}

func (s *UserService) Stats(ctx context.Context, userID uint) (*types.UserStats, error) {
	var stats types.UserStats
	var err error
	resolved := true

	if stats.TotalScams, err = s.scams.Count(ctx, types.ScamFilter{UserID: &userID}); err != nil {
		return nil, errors.Wrap(err, "count scams")
	}
	if stats.ResolvedScams, err = s.scams.Count(ctx, types.ScamFilter{UserID: &userID, Resolved: &resolved}); err != nil {
		return nil, errors.Wrap(err, "count resolved scams")
	}
	if stats.TotalComments, err = s.comments.CountByUser(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "count comments")
	}
	if stats.TotalLikes, err = s.likes.CountForOwner(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "count likes")
	}

	return &stats, nil
}
