package service

import (
	"context"
	"time"

	"github.com/shkapi/storefront/internal/api/domain"
	"github.com/shkapi/storefront/internal/api/store"
	"github.com/shkapi/storefront/pkg/idx"
)

type ProductService struct {
	Store store.Store
}

// ListProducts returns the catalogue, newest first.
func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.Store.Products().ListProducts(ctx)
}

// CreateProduct inserts a new catalogue entry.
func (s *ProductService) CreateProduct(
	ctx context.Context,
	name, description string,
	price float64,
	image string,
) (domain.Product, error) {
	p := domain.Product{
		ID:          idx.New().String(),
		Name:        name,
		Description: description,
		Price:       price,
		Image:       image,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Store.Products().CreateProduct(ctx, p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// sampleProducts is the demo catalogue installed by SeedProducts.
var sampleProducts = []domain.Product{
	{
		Name:        "Sport sneakers",
		Description: "Ultimate comfort for your running sessions.",
		Price:       89.99,
		Image:       "https://placehold.co/600x400?text=Sport+sneakers",
	},
	{
		Name:        "Smart watch",
		Description: "Keep an eye on your performance.",
		Price:       149.99,
		Image:       "https://placehold.co/600x400?text=Smart+watch",
	},
	{
		Name:        "Urban backpack",
		Description: "Style and practicality for everyday life.",
		Price:       59.99,
		Image:       "https://placehold.co/600x400?text=Urban+backpack",
	},
	{
		Name:        "Bluetooth headset",
		Description: "Immersive wireless sound.",
		Price:       119.99,
		Image:       "https://placehold.co/600x400?text=Bluetooth+headset",
	},
}

// SeedProducts installs the demo catalogue in a single transaction and
// returns the inserted records.
func (s *ProductService) SeedProducts(ctx context.Context) ([]domain.Product, error) {
	now := time.Now().UTC()

	inserted := make([]domain.Product, 0, len(sampleProducts))
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, sample := range sampleProducts {
			p := sample
			p.ID = idx.New().String()
			p.CreatedAt = now
			if err := tx.Products().CreateProduct(ctx, p); err != nil {
				return err
			}
			inserted = append(inserted, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inserted, nil
}
