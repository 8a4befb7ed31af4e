package tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-car-market/internal/server/repository"
	"github.com/IvanChernomyrdin/go-car-market/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-car-market/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-car-market/internal/shared/utils"
)

var userCols = []string{"id", "username", "email", "password_hash", "created_at", "updated_at"}

func userRow(id int64, username, email string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userCols).AddRow(id, username, email, "hash", now, now)
}

func existsRow(v bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"exists"}).AddRow(v)
}

// Успех: pre-check-и и вставка в одной транзакции
func TestUsersRepository_Create_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("ivan").
		WillReturnRows(existsRow(false))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("ivan@mail.com").
		WillReturnRows(existsRow(false))
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("ivan", "ivan@mail.com", "hash").
		WillReturnRows(userRow(1, "ivan", "ivan@mail.com"))
	mock.ExpectCommit()

	got, err := repo.Create(context.Background(), service.NewUser{
		Username:     "ivan",
		Email:        "ivan@mail.com",
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 1 || got.Username != "ivan" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

// Username проверяется ПЕРВЫМ: при обоих конфликтах отдаётся username
func TestUsersRepository_Create_UsernameCheckedFirst(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("ivan").
		WillReturnRows(existsRow(true))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), service.NewUser{
		Username: "ivan", Email: "ivan@mail.com", PasswordHash: "hash",
	})

	if err != serr.ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

// Конфликт email после чистого username
func TestUsersRepository_Create_EmailTaken(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("ivan").WillReturnRows(existsRow(false))
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("ivan@mail.com").WillReturnRows(existsRow(true))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), service.NewUser{
		Username: "ivan", Email: "ivan@mail.com", PasswordHash: "hash",
	})

	if err != serr.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

// Гонка: pre-check прошёл, но уникальный индекс сработал.
// 23505 маппится в тот же конфликт по имени constraint-а.
func TestUsersRepository_Create_UniqueIndexBackstop(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("ivan").WillReturnRows(existsRow(false))
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("ivan@mail.com").WillReturnRows(existsRow(false))
	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), service.NewUser{
		Username: "ivan", Email: "ivan@mail.com", PasswordHash: "hash",
	})

	if err != serr.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

// не найден по email
func TestUsersRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
		WithArgs("ghost@mail.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@mail.com")

	if err != serr.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// ошибка сервера
func TestUsersRepository_GetByID_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id`).
		WithArgs(int64(1)).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.GetByID(context.Background(), 1)

	if err != serr.ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

// Смена username на то же самое значение: EXISTS не выполняется вовсе
func TestUsersRepository_Update_SameUsername_NoExistsCheck(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id (.+) FOR UPDATE`).
		WithArgs(int64(1)).
		WillReturnRows(userRow(1, "ivan", "ivan@mail.com"))
	// сразу UPDATE, без SELECT EXISTS
	mock.ExpectQuery(`UPDATE users`).
		WithArgs("ivan", "ivan@mail.com", "hash", int64(1)).
		WillReturnRows(userRow(1, "ivan", "ivan@mail.com"))
	mock.ExpectCommit()

	_, err := repo.Update(context.Background(), 1, service.UserPatch{
		Username: utils.StrPtr("ivan"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// Смена username на занятое значение
func TestUsersRepository_Update_UsernameTaken(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id (.+) FOR UPDATE`).
		WithArgs(int64(1)).
		WillReturnRows(userRow(1, "ivan", "ivan@mail.com"))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("petr", int64(1)).
		WillReturnRows(existsRow(true))
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), 1, service.UserPatch{
		Username: utils.StrPtr("petr"),
	})

	if err != serr.ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

// Обновление несуществующего пользователя
func TestUsersRepository_Update_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id (.+) FOR UPDATE`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), 99, service.UserPatch{})

	if err != serr.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// Удаление: 0 затронутых строк — not found
func TestUsersRepository_Delete_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectExec(`DELETE FROM users`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)

	if err != serr.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// Удаление: успех
func TestUsersRepository_Delete_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectExec(`DELETE FROM users`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Список с поиском: один аргумент на две колонки
func TestUsersRepository_List_Search(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	rows := userRow(1, "ivan", "ivan@mail.com").AddRow(
		int64(2), "ivanna", "ivanna@mail.com", "hash", time.Now(), time.Now(),
	)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE username ILIKE (.+) ORDER BY id`).
		WithArgs("%iva%", 0, 100).
		WillReturnRows(rows)

	users, err := repo.List(context.Background(), service.UserFilter{
		Search: "iva", Offset: 0, Limit: 100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}
