package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/IvanChernomyrdin/go-car-market/internal/server/models"
	"github.com/IvanChernomyrdin/go-car-market/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-car-market/internal/shared/errors"
)

// carSelect выбирает машину вместе с маркой и владельцем одним join-ом,
// чтобы ответ API не требовал дополнительных запросов.
const carSelect = `
SELECT c.id, c.model, c.factory_year, c.model_year, c.color, c.plate,
       c.fuel_type, c.transmission, c.price, c.description, c.is_available,
       c.brand_id, c.owner_id, c.created_at, c.updated_at,
       b.id, b.name, b.description, b.is_active, b.created_at, b.updated_at,
       u.id, u.username, u.email, u.password_hash, u.created_at, u.updated_at
FROM cars c
JOIN brands b ON b.id = c.brand_id
JOIN users u ON u.id = c.owner_id`

// CarsRepository реализует доступ к таблице cars.
type CarsRepository struct {
	db *sql.DB
}

// NewCarsRepository создаёт новый экземпляр CarsRepository.
func NewCarsRepository(db *sql.DB) *CarsRepository {
	return &CarsRepository{db: db}
}

// rowScanner покрывает *sql.Row и *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCar(row rowScanner) (models.Car, error) {
	var c models.Car
	err := row.Scan(
		&c.ID, &c.Model, &c.FactoryYear, &c.ModelYear, &c.Color, &c.Plate,
		&c.FuelType, &c.Transmission, &c.Price, &c.Description, &c.IsAvailable,
		&c.BrandID, &c.OwnerID, &c.CreatedAt, &c.UpdatedAt,
		&c.Brand.ID, &c.Brand.Name, &c.Brand.Description, &c.Brand.IsActive,
		&c.Brand.CreatedAt, &c.Brand.UpdatedAt,
		&c.Owner.ID, &c.Owner.Username, &c.Owner.Email, &c.Owner.PasswordHash,
		&c.Owner.CreatedAt, &c.Owner.UpdatedAt,
	)
	return c, err
}

func carWriteConflict(err error) error {
	switch pgErrCode(err) {
	case pgUniqueViolation:
		return serr.ErrPlateTaken
	case pgForeignKeyViolation:
		return serr.ErrBrandRefNotFound
	}
	return nil
}

// checkCarRefs проверяет в транзакции tx уникальность номера (исключая
// записи с id = exceptID, 0 — не исключать) и существование марки.
// nil-аргумент пропускает соответствующую проверку.
func checkCarRefs(ctx context.Context, tx *sql.Tx, plate *string, exceptID int64, brandID *int64) error {
	if plate != nil {
		var exists bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM cars WHERE plate = $1 AND id <> $2)`,
			*plate, exceptID,
		).Scan(&exists)
		if err != nil {
			return serr.ErrInternal
		}
		if exists {
			return serr.ErrPlateTaken
		}
	}
	if brandID != nil {
		var exists bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM brands WHERE id = $1)`,
			*brandID,
		).Scan(&exists)
		if err != nil {
			return serr.ErrInternal
		}
		if !exists {
			return serr.ErrBrandRefNotFound
		}
	}
	return nil
}

// Create вставляет машину, предварительно проверив в той же транзакции
// уникальность номера и существование марки. После вставки запись
// перечитывается join-ом, чтобы вернуть её с Brand и Owner.
//
// Ошибки:
//   - ErrPlateTaken
//   - ErrBrandRefNotFound
func (r *CarsRepository) Create(ctx context.Context, c service.NewCar) (models.Car, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Car{}, serr.ErrInternal
	}
	defer tx.Rollback()

	if err := checkCarRefs(ctx, tx, &c.Plate, 0, &c.BrandID); err != nil {
		return models.Car{}, err
	}

	var id int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO cars (model, factory_year, model_year, color, plate,
		                   fuel_type, transmission, price, description,
		                   is_available, brand_id, owner_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id`,
		c.Model, c.FactoryYear, c.ModelYear, c.Color, c.Plate,
		c.FuelType, c.Transmission, c.Price, c.Description,
		c.IsAvailable, c.BrandID, c.OwnerID,
	).Scan(&id)
	if err != nil {
		if conflict := carWriteConflict(err); conflict != nil {
			return models.Car{}, conflict
		}
		return models.Car{}, serr.ErrInternal
	}

	created, err := scanCar(tx.QueryRowContext(ctx, carSelect+` WHERE c.id = $1`, id))
	if err != nil {
		return models.Car{}, serr.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		return models.Car{}, serr.ErrInternal
	}
	return created, nil
}

// GetByID возвращает машину с маркой и владельцем.
func (r *CarsRepository) GetByID(ctx context.Context, id int64) (models.Car, error) {
	c, err := scanCar(r.db.QueryRowContext(ctx, carSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Car{}, serr.ErrCarNotFound
		}
		return models.Car{}, serr.ErrInternal
	}
	return c, nil
}

// List возвращает страницу машин владельца f.OwnerID с применёнными
// фильтрами. Условие по owner_id присутствует всегда.
func (r *CarsRepository) List(ctx context.Context, f service.CarFilter) ([]models.Car, error) {
	conds := []string{"c.owner_id = $1"}
	args := []any{f.OwnerID}

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Search != "" {
		add(`(c.model ILIKE $%[1]d OR c.plate ILIKE $%[1]d)`, "%"+f.Search+"%")
	}
	if f.BrandID != nil {
		add(`c.brand_id = $%d`, *f.BrandID)
	}
	if f.FuelType != nil {
		add(`c.fuel_type = $%d`, *f.FuelType)
	}
	if f.Transmission != nil {
		add(`c.transmission = $%d`, *f.Transmission)
	}
	if f.IsAvailable != nil {
		add(`c.is_available = $%d`, *f.IsAvailable)
	}
	if f.MinPrice != nil {
		add(`c.price >= $%d`, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add(`c.price <= $%d`, *f.MaxPrice)
	}

	query := carSelect + ` WHERE ` + strings.Join(conds, " AND ") +
		fmt.Sprintf(` ORDER BY c.id OFFSET $%d LIMIT $%d`, len(args)+1, len(args)+2)
	args = append(args, f.Offset, f.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	cars := []models.Car{}
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, serr.ErrInternal
		}
		cars = append(cars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}
	return cars, nil
}

// Update частично обновляет машину.
//
// В одной транзакции: запись читается с блокировкой, уникальность номера
// перепроверяется только при реальной смене номера (с исключением самой
// записи), существование марки — только при смене brand_id. owner_id
// не трогается никогда.
//
// Ошибки:
//   - ErrCarNotFound
//   - ErrPlateTaken
//   - ErrBrandRefNotFound
func (r *CarsRepository) Update(ctx context.Context, id int64, p service.CarPatch) (models.Car, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Car{}, serr.ErrInternal
	}
	defer tx.Rollback()

	cur, err := scanCar(tx.QueryRowContext(ctx, carSelect+` WHERE c.id = $1 FOR UPDATE OF c`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Car{}, serr.ErrCarNotFound
		}
		return models.Car{}, serr.ErrInternal
	}

	var checkPlate *string
	if p.Plate != nil && *p.Plate != cur.Plate {
		checkPlate = p.Plate
		cur.Plate = *p.Plate
	}
	var checkBrand *int64
	if p.BrandID != nil && *p.BrandID != cur.BrandID {
		checkBrand = p.BrandID
		cur.BrandID = *p.BrandID
	}
	if err := checkCarRefs(ctx, tx, checkPlate, id, checkBrand); err != nil {
		return models.Car{}, err
	}

	if p.Model != nil {
		cur.Model = *p.Model
	}
	if p.FactoryYear != nil {
		cur.FactoryYear = *p.FactoryYear
	}
	if p.ModelYear != nil {
		cur.ModelYear = *p.ModelYear
	}
	if p.Color != nil {
		cur.Color = *p.Color
	}
	if p.FuelType != nil {
		cur.FuelType = *p.FuelType
	}
	if p.Transmission != nil {
		cur.Transmission = *p.Transmission
	}
	if p.Price != nil {
		cur.Price = *p.Price
	}
	if p.Description != nil {
		cur.Description = p.Description
	}
	if p.IsAvailable != nil {
		cur.IsAvailable = *p.IsAvailable
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE cars
		 SET model = $1, factory_year = $2, model_year = $3, color = $4,
		     plate = $5, fuel_type = $6, transmission = $7, price = $8,
		     description = $9, is_available = $10, brand_id = $11,
		     updated_at = now()
		 WHERE id = $12`,
		cur.Model, cur.FactoryYear, cur.ModelYear, cur.Color,
		cur.Plate, cur.FuelType, cur.Transmission, cur.Price,
		cur.Description, cur.IsAvailable, cur.BrandID, id,
	)
	if err != nil {
		if conflict := carWriteConflict(err); conflict != nil {
			return models.Car{}, conflict
		}
		return models.Car{}, serr.ErrInternal
	}

	updated, err := scanCar(tx.QueryRowContext(ctx, carSelect+` WHERE c.id = $1`, id))
	if err != nil {
		return models.Car{}, serr.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		return models.Car{}, serr.ErrInternal
	}
	return updated, nil
}

// Delete удаляет машину по id.
func (r *CarsRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return serr.ErrInternal
	}
	n, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if n == 0 {
		return serr.ErrCarNotFound
	}
	return nil
}
