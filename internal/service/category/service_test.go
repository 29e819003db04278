package category

import (
	"context"
	"errors"
	"testing"

	"perfume-storefront/internal/domain"
)

type stubLister struct {
	products []domain.Product
	err      error
}

func (s stubLister) List(_ context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func TestList_CountsPerCategory(t *testing.T) {
	svc := New(stubLister{products: []domain.Product{
		{ID: "1", Category: domain.CategoryFloral},
		{ID: "2", Category: domain.CategoryFloral},
		{ID: "3", Category: domain.CategoryCitrus},
	}})

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(got))
	}
	want := map[domain.Category]int{
		domain.CategoryFloral:   2,
		domain.CategoryWoody:    0,
		domain.CategoryCitrus:   1,
		domain.CategoryOriental: 0,
	}
	for _, c := range got {
		if c.ProductCount != want[c.Key] {
			t.Fatalf("category %s: expected %d, got %d", c.Key, want[c.Key], c.ProductCount)
		}
	}
	if got[0].Key != domain.CategoryFloral || got[0].Description != "Delicate & romantic" {
		t.Fatalf("unexpected first category %+v", got[0])
	}
}

func TestList_ErrorPropagates(t *testing.T) {
	storeErr := errors.New("down")
	if _, err := New(stubLister{err: storeErr}).List(context.Background()); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}
