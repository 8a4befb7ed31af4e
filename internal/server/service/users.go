package service

import (
	"context"
	"unicode/utf8"

	"github.com/IvanChernomyrdin/go-car-market/internal/server/config"
	"github.com/IvanChernomyrdin/go-car-market/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-car-market/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-car-market/internal/shared/errors"
)

// UsersService реализует бизнес-логику работы с пользователями.
//
// Проверки уникальности username/email выполняет репозиторий в одной
// транзакции со вставкой/обновлением; сервис отвечает за валидацию
// и хэширование пароля.
type UsersService struct {
	users UsersRepo
	pass  crypto.Argon2Params
}

// NewUsersService создаёт UsersService с параметрами хэширования из конфига.
func NewUsersService(users UsersRepo, cfg *config.Config) *UsersService {
	return &UsersService{
		users: users,
		pass: crypto.Argon2Params{
			Time:      cfg.Password.Argon2.Time,
			MemoryKiB: cfg.Password.Argon2.MemoryKiB,
			Threads:   cfg.Password.Argon2.Threads,
			KeyLen:    cfg.Password.Argon2.KeyLen,
			SaltLen:   cfg.Password.Argon2.SaltLen,
		},
	}
}

// UserUpdate — частичное обновление пользователя с plaintext-паролем.
// nil-поле означает "не передано".
type UserUpdate struct {
	Username *string
	Email    *string
	Password *string
}

// Create регистрирует нового пользователя.
//
// Валидация:
//   - username >= 3 символов
//   - email синтаксически валиден
//   - пароль >= 6 символов
//
// Ошибки:
//   - *ValidationError до обращения к хранилищу
//   - ErrUsernameTaken / ErrEmailTaken (username проверяется первым)
func (s *UsersService) Create(ctx context.Context, username, email, password string) (models.User, error) {
	ve := serr.NewValidationError()
	if utf8.RuneCountInString(username) < 3 {
		ve.Add("username", "must be at least 3 characters")
	}
	if !validEmail(email) {
		ve.Add("email", "invalid email address")
	}
	if utf8.RuneCountInString(password) < 6 {
		ve.Add("password", "must be at least 6 characters")
	}
	if err := ve.ErrOrNil(); err != nil {
		return models.User{}, err
	}

	hash, err := crypto.HashPassword(password, s.pass)
	if err != nil {
		return models.User{}, serr.ErrInternal
	}

	return s.users.Create(ctx, NewUser{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
}

// Get возвращает пользователя по id или ErrUserNotFound.
func (s *UsersService) Get(ctx context.Context, id int64) (models.User, error) {
	return s.users.GetByID(ctx, id)
}

// List возвращает страницу пользователей.
// search ищет подстроку в username ИЛИ email без учёта регистра.
func (s *UsersService) List(ctx context.Context, f UserFilter) ([]models.User, error) {
	ve := serr.NewValidationError()
	validateListBounds(ve, f.Offset, f.Limit)
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}
	return s.users.List(ctx, f)
}

// Update частично обновляет пользователя.
//
// Переданные поля валидируются по тем же правилам, что при создании;
// пароль, если передан, перехэшируется. Уникальность изменившихся
// username/email перепроверяет репозиторий, исключая саму запись.
//
// Намеренно НЕ проверяется, что вызывающий обновляет самого себя:
// достаточно любого валидного токена. Так ведёт себя исходный API;
// похоже на дыру, но поведение сохранено сознательно.
func (s *UsersService) Update(ctx context.Context, id int64, upd UserUpdate) (models.User, error) {
	ve := serr.NewValidationError()
	if upd.Username != nil && utf8.RuneCountInString(*upd.Username) < 3 {
		ve.Add("username", "must be at least 3 characters")
	}
	if upd.Email != nil && !validEmail(*upd.Email) {
		ve.Add("email", "invalid email address")
	}
	if upd.Password != nil && utf8.RuneCountInString(*upd.Password) < 6 {
		ve.Add("password", "must be at least 6 characters")
	}
	if err := ve.ErrOrNil(); err != nil {
		return models.User{}, err
	}

	patch := UserPatch{
		Username: upd.Username,
		Email:    upd.Email,
	}
	if upd.Password != nil {
		hash, err := crypto.HashPassword(*upd.Password, s.pass)
		if err != nil {
			return models.User{}, serr.ErrInternal
		}
		patch.PasswordHash = &hash
	}

	return s.users.Update(ctx, id, patch)
}

// Delete удаляет пользователя. Требование к вызывающему то же, что у Update:
// любой валидный токен.
func (s *UsersService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}
