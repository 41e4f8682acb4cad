package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SeloLim/naturia/internal/adminapi"
	"github.com/SeloLim/naturia/internal/models"
)

func TestFilterProducts(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Rose Serum", CategoryID: 1, SkinTypeID: 2, IsActive: true},
		{ID: 2, Name: "Aloe Toner", CategoryID: 2, SkinTypeID: 2, IsActive: true},
		{ID: 3, Name: "Retired Cream", CategoryID: 1, SkinTypeID: 1, IsActive: false},
		{ID: 4, Name: "Rose Cleanser", CategoryID: 1, SkinTypeID: 1, IsActive: true},
	}

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []int64
	}{
		{"no constraints drops inactive only", Filter{}, []int64{1, 2, 4}},
		{"by category", Filter{CategoryID: 1}, []int64{1, 4}},
		{"by skin type", Filter{SkinTypeID: 2}, []int64{1, 2}},
		{"by query, case-insensitive", Filter{Query: "rose"}, []int64{1, 4}},
		{"combined", Filter{CategoryID: 1, Query: "serum"}, []int64{1}},
		{"no match", Filter{Query: "sunscreen"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterProducts(products, tt.filter)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d products, want %d", len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got[i].ID != want {
					t.Fatalf("position %d: got id %d, want %d", i, got[i].ID, want)
				}
			}
		})
	}
}

func TestBannersActiveOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/banners" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode([]models.Banner{
			{ID: 1, Title: "Sale", IsActive: true},
			{ID: 2, Title: "Expired promo", IsActive: false},
		})
	}))
	defer srv.Close()

	svc := NewService(adminapi.New(srv.URL, 2*time.Second))
	banners, err := svc.Banners(context.Background())
	if err != nil {
		t.Fatalf("banners: %v", err)
	}
	if len(banners) != 1 || banners[0].ID != 1 {
		t.Fatalf("expected only the active banner, got %+v", banners)
	}
}

func TestPrimaryImage(t *testing.T) {
	p := models.Product{Images: []models.ProductImage{
		{ID: 1, ImageURL: "a.jpg", IsPrimary: false},
		{ID: 2, ImageURL: "b.jpg", IsPrimary: true},
	}}
	if got := p.PrimaryImage(); got != "b.jpg" {
		t.Fatalf("expected primary image, got %q", got)
	}

	p.Images[1].IsPrimary = false
	if got := p.PrimaryImage(); got != "a.jpg" {
		t.Fatalf("expected first image fallback, got %q", got)
	}

	p.Images = nil
	if got := p.PrimaryImage(); got != "" {
		t.Fatalf("expected empty for no images, got %q", got)
	}
}
