// Package service содержит бизнес-логику приложения (car-market).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
//
// Здесь живут:
//   - валидация и нормализация входных данных (trim, upper-case номеров);
//   - проверка владения машиной (ownership guard);
//   - правила пагинации и фильтров списков.
//
// Проверки уникальности выполняет repository внутри одной транзакции
// с записью, сервис только маппит и пробрасывает доменные ошибки.
package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/IvanChernomyrdin/go-car-market/internal/server/config"
	"github.com/IvanChernomyrdin/go-car-market/internal/server/models"
)

// Правила пагинации списков. Выход за границы — ошибка валидации,
// значения не подрезаются молча.
const (
	DefaultOffset = 0
	DefaultLimit  = 100
	MaxLimit      = 100
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users  UsersRepo
	Brands BrandsRepo
	Cars   CarsRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth   *AuthService
	Users  *UsersService
	Brands *BrandsService
	Cars   *CarsService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (JWT) и UsersService (параметры хеширования пароля).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:   NewAuthService(repos.Users, cfg),
		Users:  NewUsersService(repos.Users, cfg),
		Brands: NewBrandsService(repos.Brands),
		Cars:   NewCarsService(repos.Cars),
	}
}

// NewUser — данные для создания пользователя (пароль уже захэширован).
type NewUser struct {
	Username     string
	Email        string
	PasswordHash string
}

// UserPatch — частичное обновление пользователя.
// nil-поле означает "не передано" и не трогается.
type UserPatch struct {
	Username     *string
	Email        *string
	PasswordHash *string
}

// UserFilter — параметры списка пользователей.
type UserFilter struct {
	// Search — подстрока для регистронезависимого поиска по username ИЛИ email.
	Search string
	Offset int
	Limit  int
}

// UsersRepo — репозиторий пользователей.
//
// Create и Update обязаны выполнять проверки уникальности username/email
// в одной транзакции с записью; Update проверяет только изменившиеся
// значения и исключает саму обновляемую запись.
type UsersRepo interface {
	Create(ctx context.Context, u NewUser) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context, f UserFilter) ([]models.User, error)
	Update(ctx context.Context, id int64, p UserPatch) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

// NewBrand — данные для создания марки.
type NewBrand struct {
	Name        string
	Description *string
	IsActive    bool
}

// BrandPatch — частичное обновление марки.
type BrandPatch struct {
	Name        *string
	Description *string
	IsActive    *bool
}

// BrandFilter — параметры списка марок.
type BrandFilter struct {
	Search   string
	IsActive *bool
	Offset   int
	Limit    int
}

// BrandsRepo — репозиторий марок.
//
// Delete обязан в одной транзакции проверить, что на марку не ссылается
// ни одна машина, и только потом удалять.
type BrandsRepo interface {
	Create(ctx context.Context, b NewBrand) (models.Brand, error)
	GetByID(ctx context.Context, id int64) (models.Brand, error)
	List(ctx context.Context, f BrandFilter) ([]models.Brand, error)
	Update(ctx context.Context, id int64, p BrandPatch) (models.Brand, error)
	Delete(ctx context.Context, id int64) error
}

// NewCar — данные для создания машины. Plate уже нормализован сервисом.
type NewCar struct {
	Model        string
	FactoryYear  int
	ModelYear    int
	Color        string
	Plate        string
	FuelType     models.FuelType
	Transmission models.TransmissionType
	Price        decimal.Decimal
	Description  *string
	IsAvailable  bool
	BrandID      int64
	OwnerID      int64
}

// CarPatch — частичное обновление машины.
// Поля владельца здесь нет намеренно: owner_id после создания не меняется.
type CarPatch struct {
	Model        *string
	FactoryYear  *int
	ModelYear    *int
	Color        *string
	Plate        *string
	FuelType     *models.FuelType
	Transmission *models.TransmissionType
	Price        *decimal.Decimal
	Description  *string
	IsAvailable  *bool
	BrandID      *int64
}

// CarFilter — параметры списка машин.
//
// OwnerID заполняется сервисом из аутентифицированного пользователя:
// чужие машины в выдачу не попадают никогда, это не опциональный фильтр.
type CarFilter struct {
	OwnerID      int64
	Search       string // подстрока по model ИЛИ plate, регистронезависимо
	BrandID      *int64
	FuelType     *models.FuelType
	Transmission *models.TransmissionType
	IsAvailable  *bool
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Offset       int
	Limit        int
}

// CarsRepo — репозиторий машин.
//
// Create/Update выполняют проверку уникальности номера и существования
// марки в одной транзакции с записью. GetByID/List возвращают машины
// с подгруженными Brand и Owner.
type CarsRepo interface {
	Create(ctx context.Context, c NewCar) (models.Car, error)
	GetByID(ctx context.Context, id int64) (models.Car, error)
	List(ctx context.Context, f CarFilter) ([]models.Car, error)
	Update(ctx context.Context, id int64, p CarPatch) (models.Car, error)
	Delete(ctx context.Context, id int64) error
}
