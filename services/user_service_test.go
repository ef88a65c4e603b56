package services

import (
	"context"
	"testing"
	"time"

	"github.com/alerta-golpe/api-go/apperrors"
	"github.com/alerta-golpe/api-go/repositories/memory"
	"github.com/alerta-golpe/api-go/types"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(store *memory.Store) *UserService {
	return NewUserService(store.Users(), store.Scams(), store.Comments(), store.Likes(), bcrypt.MinCost)
}

func TestUserService_ListNewestFirstWithCounts(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	first := seedUser(t, store, "ana", "secret123")
	second := seedUser(t, store, "bruno", "secret123")
	scam := seedScam(t, store, first.ID, "Golpe do Pix")
	seedComment(t, store, scam.ID, first.ID)
	seedComment(t, store, scam.ID, second.ID)
	_, err := store.Likes().Toggle(ctx, scam.ID, second.ID)
	require.NoError(t, err)

	users, pagination, err := newUserService(store).List(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, types.Pagination{Total: 2, Page: 1, Limit: 10, TotalPages: 1}, pagination)

	require.Equal(t, "bruno", users[0].Name)
	require.Equal(t, types.UserCounts{Scams: 0, Comments: 1, Likes: 1}, users[0].Count)
	require.Equal(t, "ana", users[1].Name)
	require.Equal(t, types.UserCounts{Scams: 1, Comments: 1, Likes: 0}, users[1].Count)
}

func TestUserService_ListPageNeverExceedsLimit(t *testing.T) {
	store := memory.NewStore()
	for _, name := range []string{"a1", "a2", "a3", "a4", "a5"} {
		seedUser(t, store, name, "secret123")
	}

	users, pagination, err := newUserService(store).List(context.Background(), 2, 2)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, 3, pagination.TotalPages)

	users, _, err = newUserService(store).List(context.Background(), 3, 2)
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestUserService_GetMissing(t *testing.T) {
	_, err := newUserService(memory.NewStore()).Get(context.Background(), 42)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	user := seedUser(t, store, "ana", "secret123")

	bio := "Vítima de golpe em 2023"
	name := "Ana Paula"
	updated, err := newUserService(store).Update(ctx, user.ID, types.UserPatch{Name: &name, Bio: &bio})
	require.NoError(t, err)
	require.Equal(t, "Ana Paula", updated.Name)
	require.Equal(t, bio, *updated.Bio)
	require.Nil(t, updated.Avatar)
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	user := seedUser(t, store, "ana", "old-password")
	users := newUserService(store)
	auth := NewAuthService(store.Users(), nil, "test-secret", time.Hour, bcrypt.MinCost)

	require.NoError(t, users.ChangePassword(ctx, user.ID, "old-password", "new-password"))

	_, err := auth.Login(ctx, user.Email, "new-password")
	require.NoError(t, err)

	_, err = auth.Login(ctx, user.Email, "old-password")
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestUserService_ChangePasswordWrongCurrent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	user := seedUser(t, store, "ana", "old-password")

	before, err := store.Users().FindByID(ctx, user.ID)
	require.NoError(t, err)

	err = newUserService(store).ChangePassword(ctx, user.ID, "wrong", "new-password")
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	require.Equal(t, "Senha atual incorreta", apperrors.Message(err))

	after, err := store.Users().FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, before.Password, after.Password)
}

func TestUserService_DeactivateKeepsContent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	user := seedUser(t, store, "ana", "secret123")
	seedScam(t, store, user.ID, "Golpe do Pix")

	svc := newUserService(store)
	require.NoError(t, svc.Deactivate(ctx, user.ID))

	got, err := svc.Get(ctx, user.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)
	require.Equal(t, int64(1), got.Count.Scams)
}

func TestUserService_Stats(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	owner := seedUser(t, store, "ana", "secret123")
	fan1 := seedUser(t, store, "bruno", "secret123")
	fan2 := seedUser(t, store, "carla", "secret123")

	first := seedScam(t, store, owner.ID, "Golpe um")
	second := seedScam(t, store, owner.ID, "Golpe dois")
	foreign := seedScam(t, store, fan1.ID, "Golpe alheio")

	for _, like := range []struct{ scam, user uint }{
		{first.ID, fan1.ID}, {first.ID, fan2.ID}, {second.ID, fan1.ID}, {foreign.ID, owner.ID},
	} {
		_, err := store.Likes().Toggle(ctx, like.scam, like.user)
		require.NoError(t, err)
	}
	require.NoError(t, store.Scams().Update(ctx, second.ID, map[string]interface{}{"is_resolved": true}))
	seedComment(t, store, foreign.ID, owner.ID)

	svc := newUserService(store)
	stats, err := svc.Stats(ctx, owner.ID)
	require.NoError(t, err)
	require.Equal(t, types.UserStats{TotalScams: 2, ResolvedScams: 1, TotalComments: 1, TotalLikes: 3}, *stats)

	empty := seedUser(t, store, "diego", "secret123")
	stats, err = svc.Stats(ctx, empty.ID)
	require.NoError(t, err)
	require.Equal(t, types.UserStats{}, *stats)
}

func TestUserService_ListScams(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	owner := seedUser(t, store, "ana", "secret123")
	other := seedUser(t, store, "bruno", "secret123")
	seedScam(t, store, owner.ID, "Primeiro")
	latest := seedScam(t, store, owner.ID, "Segundo")
	seedScam(t, store, other.ID, "De outro")
	seedComment(t, store, latest.ID, other.ID)

	scams, pagination, err := newUserService(store).ListScams(ctx, owner.ID, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(2), pagination.Total)
	require.Equal(t, "Segundo", scams[0].Title)
	require.Equal(t, int64(1), scams[0].Count.Comments)

	_, _, err = newUserService(store).ListScams(ctx, 999, 1, 10)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}
