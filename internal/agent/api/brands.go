// Методы клиента для работы с марками.
package api

import (
	"fmt"
	"net/url"
	"time"
)

// BrandRequest описывает тело запроса создания марки.
type BrandRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// BrandResponse описывает публичное представление марки.
type BrandResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BrandListResponse описывает страницу марок.
type BrandListResponse struct {
	Brands []BrandResponse `json:"brands"`
	Offset int             `json:"offset"`
	Limit  int             `json:"limit"`
}

// CreateBrand создаёт марку на сервере.
func (c *Client) CreateBrand(req BrandRequest, accessToken string) (BrandResponse, error) {
	var resp BrandResponse
	err := c.PostJSON("/brands", req, &resp, accessToken)
	return resp, err
}

// ListBrands возвращает страницу марок.
// search и пустые значения фильтров в query не попадают.
func (c *Client) ListBrands(search string, accessToken string) (BrandListResponse, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	path := "/brands"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp BrandListResponse
	err := c.GetJSON(path, &resp, accessToken)
	return resp, err
}

// DeleteBrand удаляет марку по id.
func (c *Client) DeleteBrand(id int64, accessToken string) error {
	return c.DeleteJSON(fmt.Sprintf("/brands/%d", id), nil, accessToken)
}
