// Package catalog reads the browse-side reference data: products,
// categories, skin types and homepage banners. Everything here is read-only
// from the storefront's perspective.
package catalog

import (
	"context"
	"strings"

	"github.com/SeloLim/naturia/internal/adminapi"
	"github.com/SeloLim/naturia/internal/models"
)

type Service struct {
	api *adminapi.Client
}

func NewService(api *adminapi.Client) *Service {
	return &Service{api: api}
}

// Filter narrows a product listing. Zero values mean "no constraint".
type Filter struct {
	CategoryID int64
	SkinTypeID int64
	Query      string
}

func (s *Service) Products(ctx context.Context, filter Filter) ([]models.Product, error) {
	all, err := s.api.Products(ctx)
	if err != nil {
		return nil, err
	}
	return filterProducts(all, filter), nil
}

func filterProducts(products []models.Product, f Filter) []models.Product {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		if f.CategoryID != 0 && p.CategoryID != f.CategoryID {
			continue
		}
		if f.SkinTypeID != 0 && p.SkinTypeID != f.SkinTypeID {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	return s.api.Categories(ctx)
}

func (s *Service) SkinTypes(ctx context.Context) ([]models.SkinType, error) {
	return s.api.SkinTypes(ctx)
}

// Banners returns active carousel entries only.
func (s *Service) Banners(ctx context.Context) ([]models.Banner, error) {
	all, err := s.api.Banners(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]models.Banner, 0, len(all))
	for _, b := range all {
		if b.IsActive {
			active = append(active, b)
		}
	}
	return active, nil
}
