package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/IvanChernomyrdin/go-car-market/internal/server/models"
	"github.com/IvanChernomyrdin/go-car-market/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-car-market/internal/shared/errors"
)

const userColumns = `id, username, email, password_hash, created_at, updated_at`

// UsersRepository реализует доступ к таблице users.
type UsersRepository struct {
	db *sql.DB
}

// NewUsersRepository создаёт новый экземпляр UsersRepository.
func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// userConflict маппит нарушение уникального индекса в полевой конфликт.
// Срабатывает только при гонке: обычный путь ловится pre-check-ом в транзакции.
func userConflict(err error) error {
	if pgErrCode(err) != pgUniqueViolation {
		return nil
	}
	switch pgConstraint(err) {
	case "users_username_key":
		return serr.ErrUsernameTaken
	case "users_email_key":
		return serr.ErrEmailTaken
	}
	return serr.ErrInternal
}

// Create вставляет пользователя, предварительно проверив уникальность
// username и email в той же транзакции. Username проверяется первым.
//
// Ошибки:
//   - ErrUsernameTaken / ErrEmailTaken
//   - ErrInternal — ошибка базы данных
func (r *UsersRepository) Create(ctx context.Context, u service.NewUser) (models.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.User{}, serr.ErrInternal
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`,
		u.Username,
	).Scan(&exists)
	if err != nil {
		return models.User{}, serr.ErrInternal
	}
	if exists {
		return models.User{}, serr.ErrUsernameTaken
	}

	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`,
		u.Email,
	).Scan(&exists)
	if err != nil {
		return models.User{}, serr.ErrInternal
	}
	if exists {
		return models.User{}, serr.ErrEmailTaken
	}

	created, err := scanUser(tx.QueryRowContext(ctx,
		`INSERT INTO users (username, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING `+userColumns,
		u.Username, u.Email, u.PasswordHash,
	))
	if err != nil {
		if conflict := userConflict(err); conflict != nil {
			return models.User{}, conflict
		}
		return models.User{}, serr.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		return models.User{}, serr.ErrInternal
	}
	return created, nil
}

// GetByID возвращает пользователя по id.
func (r *UsersRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, serr.ErrUserNotFound
		}
		return models.User{}, serr.ErrInternal
	}
	return u, nil
}

// GetByEmail возвращает пользователя по email (для логина).
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, serr.ErrUserNotFound
		}
		return models.User{}, serr.ErrInternal
	}
	return u, nil
}

// List возвращает страницу пользователей, отсортированную по id.
// Поиск регистронезависимый, по подстроке username ИЛИ email.
func (r *UsersRepository) List(ctx context.Context, f service.UserFilter) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	args := []any{}

	if f.Search != "" {
		query += ` WHERE username ILIKE $1 OR email ILIKE $1`
		args = append(args, "%"+f.Search+"%")
	}

	query += fmt.Sprintf(` ORDER BY id OFFSET $%d LIMIT $%d`, len(args)+1, len(args)+2)
	args = append(args, f.Offset, f.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, serr.ErrInternal
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}
	return users, nil
}

// Update частично обновляет пользователя.
//
// Внутри одной транзакции:
//   - текущая запись читается с блокировкой;
//   - уникальность перепроверяется ТОЛЬКО для переданных полей, чьё значение
//     реально изменилось, и всегда с исключением самой записи (id <> $1) —
//     обновление username/email на то же значение конфликтом не считается;
//   - затем пишутся все колонки разом и обновляется updated_at.
//
// Ошибки:
//   - ErrUserNotFound
//   - ErrUsernameTaken / ErrEmailTaken
func (r *UsersRepository) Update(ctx context.Context, id int64, p service.UserPatch) (models.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.User{}, serr.ErrInternal
	}
	defer tx.Rollback()

	cur, err := scanUser(tx.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, serr.ErrUserNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	if p.Username != nil && *p.Username != cur.Username {
		var exists bool
		err = tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 AND id <> $2)`,
			*p.Username, id,
		).Scan(&exists)
		if err != nil {
			return models.User{}, serr.ErrInternal
		}
		if exists {
			return models.User{}, serr.ErrUsernameTaken
		}
		cur.Username = *p.Username
	}

	if p.Email != nil && *p.Email != cur.Email {
		var exists bool
		err = tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`,
			*p.Email, id,
		).Scan(&exists)
		if err != nil {
			return models.User{}, serr.ErrInternal
		}
		if exists {
			return models.User{}, serr.ErrEmailTaken
		}
		cur.Email = *p.Email
	}

	if p.PasswordHash != nil {
		cur.PasswordHash = *p.PasswordHash
	}

	updated, err := scanUser(tx.QueryRowContext(ctx,
		`UPDATE users
		 SET username = $1, email = $2, password_hash = $3, updated_at = now()
		 WHERE id = $4
		 RETURNING `+userColumns,
		cur.Username, cur.Email, cur.PasswordHash, id,
	))
	if err != nil {
		if conflict := userConflict(err); conflict != nil {
			return models.User{}, conflict
		}
		return models.User{}, serr.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		return models.User{}, serr.ErrInternal
	}
	return updated, nil
}

// Delete удаляет пользователя по id.
func (r *UsersRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return serr.ErrInternal
	}
	n, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if n == 0 {
		return serr.ErrUserNotFound
	}
	return nil
}
