package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-car-market/internal/agent/api"
)

func TestClient_CreateBrand_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/brands", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))

		var req api.BrandRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "Honda", req.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(api.BrandResponse{ID: 1, Name: "Honda", IsActive: true})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.CreateBrand(api.BrandRequest{Name: "Honda"}, "access-1")
	require.NoError(t, err)
	require.Equal(t, int64(1), resp.ID)
	require.True(t, resp.IsActive)
}

func TestClient_ListBrands_SearchInQuery(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/brands", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "hon", r.URL.Query().Get("search"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(api.BrandListResponse{
			Brands: []api.BrandResponse{{ID: 1, Name: "Honda"}},
			Offset: 0,
			Limit:  100,
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.ListBrands("hon", "access-1")
	require.NoError(t, err)
	require.Len(t, resp.Brands, 1)
}

func TestClient_DeleteBrand_204IsSuccess(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/brands/1", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	require.NoError(t, c.DeleteBrand(1, "access-1"))
}
