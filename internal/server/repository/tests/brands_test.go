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

var brandCols = []string{"id", "name", "description", "is_active", "created_at", "updated_at"}

func brandRow(id int64, name string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(brandCols).AddRow(id, name, nil, true, now, now)
}

// Успех
func TestBrandsRepository_Create_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewBrandsRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("Honda").
		WillReturnRows(existsRow(false))
	mock.ExpectQuery(`INSERT INTO brands`).
		WithArgs("Honda", nil, true).
		WillReturnRows(brandRow(1, "Honda"))
	mock.ExpectCommit()

	got, err := repo.Create(context.Background(), service.NewBrand{Name: "Honda", IsActive: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Honda" {
		t.Fatalf("unexpected brand: %+v", got)
	}
}

// Имя занято: ловится pre-check-ом
func TestBrandsRepository_Create_NameTaken(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewBrandsRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("Honda").
		WillReturnRows(existsRow(true))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), service.NewBrand{Name: "Honda", IsActive: true})

	if err != serr.ErrBrandNameTaken {
		t.Fatalf("expected ErrBrandNameTaken, got %v", err)
	}
}

// Гонка: уникальный индекс добивает
func TestBrandsRepository_Create_UniqueIndexBackstop(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewBrandsRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("Honda").WillReturnRows(existsRow(false))
	mock.ExpectQuery(`INSERT INTO brands`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "brands_name_key"})
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), service.NewBrand{Name: "Honda", IsActive: true})

	if err != serr.ErrBrandNameTaken {
		t.Fatalf("expected ErrBrandNameTaken, got %v", err)
	}
}

// не найдена
func TestBrandsRepository_GetByID_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewBrandsRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM brands WHERE id`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)

	if err != serr.ErrBrandNotFound {
		t.Fatalf("expected ErrBrandNotFound, got %v", err)
	}
}

// Переименование "в себя": EXISTS не выполняется
func TestBrandsRepository_Update_SameName_NoExistsCheck(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewBrandsRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM brands WHERE id (.+) FOR UPDATE`).
		WithArgs(int64(1)).
		WillReturnRows(brandRow(1, "Honda"))
	mock.ExpectQuery(`UPDATE brands`).
		WithArgs("Honda", nil, true, int64(1)).
		WillReturnRows(brandRow(1, "Honda"))
	mock.ExpectCommit()

	_, err := repo.Update(context.Background(), 1, service.BrandPatch{
		Name: utils.StrPtr("Honda"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// Переименование на занятое имя
func TestBrandsRepository_Update_NameTaken(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewBrandsRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM brands WHERE id (.+) FOR UPDATE`).
		WithArgs(int64(1)).
		WillReturnRows(brandRow(1, "Honda"))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("Toyota", int64(1)).
		WillReturnRows(existsRow(true))
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), 1, service.BrandPatch{
		Name: utils.StrPtr("Toyota"),
	})

	if err != serr.ErrBrandNameTaken {
		t.Fatalf("expected ErrBrandNameTaken, got %v", err)
	}
}

// Удаление марки с машинами
func TestBrandsRepository_Delete_HasCars(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewBrandsRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs(int64(1)).WillReturnRows(existsRow(true))
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs(int64(1)).WillReturnRows(existsRow(true))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 1)

	if err != serr.ErrBrandHasCars {
		t.Fatalf("expected ErrBrandHasCars, got %v", err)
	}
}

// Удаление несуществующей марки
func TestBrandsRepository_Delete_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewBrandsRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs(int64(99)).WillReturnRows(existsRow(false))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 99)

	if err != serr.ErrBrandNotFound {
		t.Fatalf("expected ErrBrandNotFound, got %v", err)
	}
}

// Успешное удаление пустой марки
func TestBrandsRepository_Delete_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewBrandsRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs(int64(1)).WillReturnRows(existsRow(true))
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs(int64(1)).WillReturnRows(existsRow(false))
	mock.ExpectExec(`DELETE FROM brands`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Гонка на удалении: FK добивает конкурентную вставку машины
func TestBrandsRepository_Delete_FKBackstop(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewBrandsRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs(int64(1)).WillReturnRows(existsRow(true))
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs(int64(1)).WillReturnRows(existsRow(false))
	mock.ExpectExec(`DELETE FROM brands`).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "cars_brand_id_fkey"})
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 1)

	if err != serr.ErrBrandHasCars {
		t.Fatalf("expected ErrBrandHasCars, got %v", err)
	}
}
