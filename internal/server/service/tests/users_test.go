package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-car-market/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-car-market/internal/server/models"
	"github.com/IvanChernomyrdin/go-car-market/internal/server/service"
	"github.com/IvanChernomyrdin/go-car-market/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-car-market/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-car-market/internal/shared/utils"
)

func newUsersService(t *testing.T) (*service.UsersService, *mocks.MockUsersRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersRepo(ctrl)

	return service.NewUsersService(users, testConfig()), users
}

// Успех: в репозиторий уходит хэш, а не plaintext
func TestUsersService_Create_OK(t *testing.T) {
	ctx := context.Background()
	svc, users := newUsersService(t)

	users.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, u service.NewUser) (models.User, error) {
			require.Equal(t, "ivan", u.Username)
			require.Equal(t, "ivan@mail.com", u.Email)
			require.NotEmpty(t, u.PasswordHash)
			require.NotEqual(t, "strongpassword", u.PasswordHash)

			ok, err := crypto.VerifyPassword("strongpassword", u.PasswordHash)
			require.NoError(t, err)
			require.True(t, ok)

			return models.User{ID: 1, Username: u.Username, Email: u.Email}, nil
		})

	got, err := svc.Create(ctx, "ivan", "ivan@mail.com", "strongpassword")

	require.NoError(t, err)
	require.Equal(t, int64(1), got.ID)
}

// Все три поля мусорные — три полевые ошибки, хранилище не трогаем
func TestUsersService_Create_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUsersService(t)

	_, err := svc.Create(ctx, "ab", "not-an-email", "12345")

	ve, ok := serr.AsValidation(err)
	require.True(t, ok, "expected validation error, got %v", err)
	require.Len(t, ve.Fields, 3)

	fields := map[string]bool{}
	for _, f := range ve.Fields {
		fields[f.Field] = true
	}
	require.True(t, fields["username"] && fields["email"] && fields["password"])
}

// Конфликт username пробрасывается как есть
func TestUsersService_Create_UsernameTaken(t *testing.T) {
	ctx := context.Background()
	svc, users := newUsersService(t)

	users.EXPECT().
		Create(ctx, gomock.Any()).
		Return(models.User{}, serr.ErrUsernameTaken)

	_, err := svc.Create(ctx, "ivan", "ivan@mail.com", "strongpassword")

	require.ErrorIs(t, err, serr.ErrUsernameTaken)
}

// Пароль в патче перехэшируется
func TestUsersService_Update_RehashesPassword(t *testing.T) {
	ctx := context.Background()
	svc, users := newUsersService(t)

	users.EXPECT().
		Update(ctx, int64(5), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id int64, p service.UserPatch) (models.User, error) {
			require.Nil(t, p.Username)
			require.Nil(t, p.Email)
			require.NotNil(t, p.PasswordHash)

			ok, err := crypto.VerifyPassword("newpassword", *p.PasswordHash)
			require.NoError(t, err)
			require.True(t, ok)

			return models.User{ID: 5}, nil
		})

	_, err := svc.Update(ctx, 5, service.UserUpdate{Password: utils.StrPtr("newpassword")})
	require.NoError(t, err)
}

// Непереданные поля не валидируются, переданные — валидируются
func TestUsersService_Update_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUsersService(t)

	_, err := svc.Update(ctx, 5, service.UserUpdate{Email: utils.StrPtr("broken")})

	ve, ok := serr.AsValidation(err)
	require.True(t, ok)
	require.Len(t, ve.Fields, 1)
	require.Equal(t, "email", ve.Fields[0].Field)
}

// Границы пагинации
func TestUsersService_List_Bounds(t *testing.T) {
	ctx := context.Background()
	svc, users := newUsersService(t)

	_, err := svc.List(ctx, service.UserFilter{Offset: -1, Limit: 0})
	ve, ok := serr.AsValidation(err)
	require.True(t, ok)
	require.Len(t, ve.Fields, 2)

	_, err = svc.List(ctx, service.UserFilter{Offset: 0, Limit: 101})
	_, ok = serr.AsValidation(err)
	require.True(t, ok)

	users.EXPECT().
		List(ctx, service.UserFilter{Offset: 0, Limit: 100}).
		Return([]models.User{}, nil)

	_, err = svc.List(ctx, service.UserFilter{Offset: 0, Limit: 100})
	require.NoError(t, err)
}
