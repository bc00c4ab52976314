package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/furnishfusion/storefront/internal/domain/entity"
)

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Premium Single Bed Frame", "Beds - Single Bed"},
		{"Double Bed with Storage", "Beds - Double Bed"},
		{"King Bed Deluxe", "Beds - Master Bed"},
		{"Sofa Cum Bed Convertible", "Beds - Sofa Cum Bed"},
		{"Orthopedic Mattress", "Beds - Other"},
		{"3-Seater Fabric Sofa", "Sofas"},
		{"6-Seater Dining Table Set", "Dining"},
		{"Ergonomic Office Chair", "Office - Chairs"},
		{"Compact Study Desk", "Office - Desks"},
		{"Sliding Door Wardrobe", "Storage - Wardrobes"},
		{"5-Tier Bookshelf", "Storage - Shelves"},
		{"Walnut Coffee Table", "Tables - Coffee Tables"},
		{"Folding Table", "Tables - Other"},
		{"Accent Chair", "Chairs"},
		{"Decorative Vase", "Furniture - Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCategory(tt.name); got != tt.want {
				t.Errorf("DetectCategory(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestWishlistRoundtrip(t *testing.T) {
	products := newStubProductRepo(entity.Product{ID: 1, Name: "Sofa", Price: 100})
	wishlist := newStubWishlistRepo()
	uc := NewCatalogUseCase(products, wishlist)
	ctx := context.Background()

	if err := uc.AddToWishlist(ctx, 7, 1); err != nil {
		t.Fatal(err)
	}
	// Re-adding is not an error.
	if err := uc.AddToWishlist(ctx, 7, 1); err != nil {
		t.Fatal(err)
	}

	count, err := uc.WishlistCount(ctx, 7)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	if err := uc.AddToWishlist(ctx, 7, 404); !errors.Is(err, ErrNotFound) {
		t.Errorf("wishlist unknown product err = %v, want ErrNotFound", err)
	}

	if err := uc.RemoveFromWishlist(ctx, 7, 1); err != nil {
		t.Fatal(err)
	}
	count, _ = uc.WishlistCount(ctx, 7)
	if count != 0 {
		t.Errorf("count after remove = %d, want 0", count)
	}
}

func TestListMarksWishlist(t *testing.T) {
	products := newStubProductRepo(
		entity.Product{ID: 1, Name: "Sofa", Price: 100},
		entity.Product{ID: 2, Name: "Desk", Price: 200},
	)
	wishlist := newStubWishlistRepo()
	wishlist.Add(context.Background(), 7, 2)
	uc := NewCatalogUseCase(products, wishlist)

	listing, err := uc.List(context.Background(), entity.ProductFilter{}, 7)
	if err != nil {
		t.Fatal(err)
	}
	if len(listing.Products) != 2 {
		t.Fatalf("got %d products, want 2", len(listing.Products))
	}
	if len(listing.WishlistIDs) != 1 || listing.WishlistIDs[0] != 2 {
		t.Errorf("wishlist IDs = %v, want [2]", listing.WishlistIDs)
	}

	// Anonymous listings carry no wishlist.
	anon, err := uc.List(context.Background(), entity.ProductFilter{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(anon.WishlistIDs) != 0 {
		t.Errorf("anonymous wishlist IDs = %v, want none", anon.WishlistIDs)
	}
}
