// Методы клиента для работы с эндпоинтами аутентификации:
// регистрация, получение и обновление access токена.
package api

import "time"

// RegisterRequest описывает тело запроса регистрации пользователя.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse описывает публичное представление пользователя.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TokenRequest описывает тело запроса выдачи access токена.
type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse описывает ответ сервера с access токеном.
//
// AccessToken используется для авторизации запросов к защищённым эндпоинтам,
// TokenType всегда "bearer".
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register выполняет регистрацию пользователя на сервере.
//
// Метод отправляет POST запрос на /users и возвращает созданного пользователя.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Register(username, email, password string) (UserResponse, error) {
	var resp UserResponse
	err := c.PostJSON("/users", RegisterRequest{Username: username, Email: email, Password: password}, &resp, "")
	return resp, err
}

// Token выполняет вход пользователя и получает access токен.
//
// Метод отправляет POST запрос на /auth/token. В случае ошибки возвращает
// непустую ошибку и пустой ответ.
func (c *Client) Token(email, password string) (TokenResponse, error) {
	var resp TokenResponse
	err := c.PostJSON("/auth/token", TokenRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}

// Refresh перевыпускает access токен по действующему access токену.
//
// Метод отправляет POST запрос на /auth/refresh_token с bearer-авторизацией.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Refresh(accessToken string) (TokenResponse, error) {
	var resp TokenResponse
	err := c.PostJSON("/auth/refresh_token", nil, &resp, accessToken)
	return resp, err
}
