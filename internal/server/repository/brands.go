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

const brandColumns = `id, name, description, is_active, created_at, updated_at`

// BrandsRepository реализует доступ к таблице brands.
type BrandsRepository struct {
	db *sql.DB
}

// NewBrandsRepository создаёт новый экземпляр BrandsRepository.
func NewBrandsRepository(db *sql.DB) *BrandsRepository {
	return &BrandsRepository{db: db}
}

func scanBrand(row *sql.Row) (models.Brand, error) {
	var b models.Brand
	err := row.Scan(&b.ID, &b.Name, &b.Description, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// Create вставляет марку, предварительно проверив уникальность имени
// в той же транзакции.
//
// Ошибки:
//   - ErrBrandNameTaken
func (r *BrandsRepository) Create(ctx context.Context, b service.NewBrand) (models.Brand, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Brand{}, serr.ErrInternal
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM brands WHERE name = $1)`,
		b.Name,
	).Scan(&exists)
	if err != nil {
		return models.Brand{}, serr.ErrInternal
	}
	if exists {
		return models.Brand{}, serr.ErrBrandNameTaken
	}

	created, err := scanBrand(tx.QueryRowContext(ctx,
		`INSERT INTO brands (name, description, is_active)
		 VALUES ($1, $2, $3)
		 RETURNING `+brandColumns,
		b.Name, b.Description, b.IsActive,
	))
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return models.Brand{}, serr.ErrBrandNameTaken
		}
		return models.Brand{}, serr.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		return models.Brand{}, serr.ErrInternal
	}
	return created, nil
}

// GetByID возвращает марку по id.
func (r *BrandsRepository) GetByID(ctx context.Context, id int64) (models.Brand, error) {
	b, err := scanBrand(r.db.QueryRowContext(ctx,
		`SELECT `+brandColumns+` FROM brands WHERE id = $1`, id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Brand{}, serr.ErrBrandNotFound
		}
		return models.Brand{}, serr.ErrInternal
	}
	return b, nil
}

// List возвращает страницу марок с поиском по подстроке имени
// и необязательным фильтром is_active.
func (r *BrandsRepository) List(ctx context.Context, f service.BrandFilter) ([]models.Brand, error) {
	query := `SELECT ` + brandColumns + ` FROM brands`
	args := []any{}
	where := ""

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		where = fmt.Sprintf(` WHERE name ILIKE $%d`, len(args))
	}
	if f.IsActive != nil {
		args = append(args, *f.IsActive)
		if where == "" {
			where = fmt.Sprintf(` WHERE is_active = $%d`, len(args))
		} else {
			where += fmt.Sprintf(` AND is_active = $%d`, len(args))
		}
	}

	query += where + fmt.Sprintf(` ORDER BY id OFFSET $%d LIMIT $%d`, len(args)+1, len(args)+2)
	args = append(args, f.Offset, f.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	brands := []models.Brand{}
	for rows.Next() {
		var b models.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, serr.ErrInternal
		}
		brands = append(brands, b)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}
	return brands, nil
}

// Update частично обновляет марку.
//
// Уникальность имени перепроверяется только если новое имя отличается
// от текущего, с исключением самой записи. Переименование "в себя"
// конфликтом не считается.
//
// Ошибки:
//   - ErrBrandNotFound
//   - ErrBrandNameTaken
func (r *BrandsRepository) Update(ctx context.Context, id int64, p service.BrandPatch) (models.Brand, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Brand{}, serr.ErrInternal
	}
	defer tx.Rollback()

	cur, err := scanBrand(tx.QueryRowContext(ctx,
		`SELECT `+brandColumns+` FROM brands WHERE id = $1 FOR UPDATE`, id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Brand{}, serr.ErrBrandNotFound
		}
		return models.Brand{}, serr.ErrInternal
	}

	if p.Name != nil && *p.Name != cur.Name {
		var exists bool
		err = tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM brands WHERE name = $1 AND id <> $2)`,
			*p.Name, id,
		).Scan(&exists)
		if err != nil {
			return models.Brand{}, serr.ErrInternal
		}
		if exists {
			return models.Brand{}, serr.ErrBrandNameTaken
		}
		cur.Name = *p.Name
	}
	if p.Description != nil {
		cur.Description = p.Description
	}
	if p.IsActive != nil {
		cur.IsActive = *p.IsActive
	}

	updated, err := scanBrand(tx.QueryRowContext(ctx,
		`UPDATE brands
		 SET name = $1, description = $2, is_active = $3, updated_at = now()
		 WHERE id = $4
		 RETURNING `+brandColumns,
		cur.Name, cur.Description, cur.IsActive, id,
	))
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return models.Brand{}, serr.ErrBrandNameTaken
		}
		return models.Brand{}, serr.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		return models.Brand{}, serr.ErrInternal
	}
	return updated, nil
}

// Delete удаляет марку, если на неё не ссылается ни одна машина.
// Проверка и удаление выполняются в одной транзакции; FK в схеме
// добивает гонку с параллельной вставкой машины.
//
// Ошибки:
//   - ErrBrandNotFound
//   - ErrBrandHasCars
func (r *BrandsRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return serr.ErrInternal
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM brands WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return serr.ErrInternal
	}
	if !exists {
		return serr.ErrBrandNotFound
	}

	var hasCars bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM cars WHERE brand_id = $1)`, id,
	).Scan(&hasCars)
	if err != nil {
		return serr.ErrInternal
	}
	if hasCars {
		return serr.ErrBrandHasCars
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM brands WHERE id = $1`, id); err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return serr.ErrBrandHasCars
		}
		return serr.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		return serr.ErrInternal
	}
	return nil
}
