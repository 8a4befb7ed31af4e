// Методы клиента для работы с машинами.
package api

import (
	"fmt"
	"net/url"
	"time"
)

// CarRequest описывает тело запроса создания машины.
// Цена передаётся строкой, чтобы не терять точность на float.
type CarRequest struct {
	Model        string  `json:"model"`
	FactoryYear  int     `json:"factory_year"`
	ModelYear    int     `json:"model_year"`
	Color        string  `json:"color"`
	Plate        string  `json:"plate"`
	FuelType     string  `json:"fuel_type"`
	Transmission string  `json:"transmission"`
	Price        string  `json:"price"`
	Description  *string `json:"description,omitempty"`
	IsAvailable  *bool   `json:"is_available,omitempty"`
	BrandID      int64   `json:"brand_id"`
}

// CarResponse описывает публичное представление машины
// с вложенными маркой и владельцем.
type CarResponse struct {
	ID           int64         `json:"id"`
	Model        string        `json:"model"`
	FactoryYear  int           `json:"factory_year"`
	ModelYear    int           `json:"model_year"`
	Color        string        `json:"color"`
	Plate        string        `json:"plate"`
	FuelType     string        `json:"fuel_type"`
	Transmission string        `json:"transmission"`
	Price        string        `json:"price"`
	Description  *string       `json:"description"`
	IsAvailable  bool          `json:"is_available"`
	BrandID      int64         `json:"brand_id"`
	OwnerID      int64         `json:"owner_id"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	Brand        BrandResponse `json:"brand"`
	Owner        UserResponse  `json:"owner"`
}

// CarListResponse описывает страницу машин.
type CarListResponse struct {
	Cars   []CarResponse `json:"cars"`
	Offset int           `json:"offset"`
	Limit  int           `json:"limit"`
}

// CarListFilter — query-фильтры списка машин.
// Пустые значения в query не попадают.
type CarListFilter struct {
	Search       string
	FuelType     string
	Transmission string
	MinPrice     string
	MaxPrice     string
}

// CreateCar создаёт машину на сервере, владельцем становится
// аутентифицированный пользователь.
func (c *Client) CreateCar(req CarRequest, accessToken string) (CarResponse, error) {
	var resp CarResponse
	err := c.PostJSON("/cars", req, &resp, accessToken)
	return resp, err
}

// ListCars возвращает страницу машин аутентифицированного пользователя.
func (c *Client) ListCars(f CarListFilter, accessToken string) (CarListResponse, error) {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.FuelType != "" {
		q.Set("fuel_type", f.FuelType)
	}
	if f.Transmission != "" {
		q.Set("transmission", f.Transmission)
	}
	if f.MinPrice != "" {
		q.Set("min_price", f.MinPrice)
	}
	if f.MaxPrice != "" {
		q.Set("max_price", f.MaxPrice)
	}
	path := "/cars"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp CarListResponse
	err := c.GetJSON(path, &resp, accessToken)
	return resp, err
}

// GetCar возвращает машину по id.
func (c *Client) GetCar(id int64, accessToken string) (CarResponse, error) {
	var resp CarResponse
	err := c.GetJSON(fmt.Sprintf("/cars/%d", id), &resp, accessToken)
	return resp, err
}

// DeleteCar удаляет машину по id.
func (c *Client) DeleteCar(id int64, accessToken string) error {
	return c.DeleteJSON(fmt.Sprintf("/cars/%d", id), nil, accessToken)
}
