package service

import (
	"context"
	"errors"

	"github.com/IvanChernomyrdin/go-car-market/internal/server/config"
	"github.com/IvanChernomyrdin/go-car-market/internal/server/crypto"
	serr "github.com/IvanChernomyrdin/go-car-market/internal/shared/errors"
)

// AuthService реализует выдачу access-токенов.
//
// Ответственность:
//   - аутентификация по email/паролю;
//   - выпуск подписанного JWT с subject = id пользователя;
//   - перевыпуск токена для уже аутентифицированного пользователя.
type AuthService struct {
	users UsersRepo
	jwt   crypto.JWTConfig
}

// Token представляет выданный bearer-токен.
type Token struct {
	AccessToken string
	TokenType   string
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,
		jwt: crypto.JWTConfig{
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},
	}
}

// IssueByCredentials аутентифицирует пользователя и выдаёт access-токен.
//
// Поведение:
//   - неправильный email и неправильный пароль дают ОДНУ И ТУ ЖЕ ошибку,
//     факт существования email не раскрывается;
//   - subject токена — десятичная строка id пользователя.
//
// Ошибки:
//   - *ValidationError при синтаксически неверных входных данных
//   - ErrInvalidCredentials
func (s *AuthService) IssueByCredentials(ctx context.Context, email, password string) (Token, error) {
	ve := serr.NewValidationError()
	if !validEmail(email) {
		ve.Add("email", "invalid email address")
	}
	if len(password) < 6 {
		ve.Add("password", "must be at least 6 characters")
	}
	if err := ve.ErrOrNil(); err != nil {
		return Token{}, err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrUserNotFound) {
			return Token{}, serr.ErrInvalidCredentials
		}
		return Token{}, err
	}

	ok, err := crypto.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return Token{}, serr.ErrInternal
	}
	if !ok {
		return Token{}, serr.ErrInvalidCredentials
	}

	return s.IssueForUser(user.ID)
}

// IssueForUser выпускает свежий access-токен для уже разрешённого пользователя.
// Используется эндпоинтом refresh_token: там личность подтверждена
// действующим bearer-токеном, пароль повторно не спрашиваем.
func (s *AuthService) IssueForUser(userID int64) (Token, error) {
	access, err := crypto.NewAccessToken(userID, s.jwt)
	if err != nil {
		return Token{}, serr.ErrInternal
	}
	return Token{AccessToken: access, TokenType: "bearer"}, nil
}
