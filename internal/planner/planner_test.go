package planner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/furnishfusion/storefront/internal/domain/entity"
)

type stubFinder struct {
	products map[string][]entity.Product // keyed by first keyword
	err      error

	calls []finderCall
}

type finderCall struct {
	keywords []string
	maxPrice float64
	limit    int
}

func (s *stubFinder) FindByKeywordsAndMaxPrice(_ context.Context, keywords []string, maxPrice float64, limit int) ([]entity.Product, error) {
	s.calls = append(s.calls, finderCall{keywords: keywords, maxPrice: maxPrice, limit: limit})
	if s.err != nil {
		return nil, s.err
	}
	var out []entity.Product
	for _, p := range s.products[keywords[0]] {
		if p.Price <= maxPrice && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestRunBedroomSplit(t *testing.T) {
	finder := &stubFinder{products: map[string][]entity.Product{
		"bed":        {{ID: 1, Name: "Queen Bed", Price: 28000}},
		"mattress":   {{ID: 2, Name: "Foam Mattress", Price: 12000}},
		"side table": {{ID: 3, Name: "Bedside Table", Price: 5000}},
	}}
	p := New(finder)

	result, err := p.Run(context.Background(), "I have 50000 to furnish my bedroom")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !result.Success {
		t.Fatalf("Run failed: %s", result.Error)
	}
	if result.TotalBudget == nil || *result.TotalBudget != 50000 {
		t.Fatalf("total budget = %v, want 50000", result.TotalBudget)
	}
	if result.RoomType != RoomBedroom {
		t.Errorf("room = %q, want %q", result.RoomType, RoomBedroom)
	}
	if result.RoomLabel != "Bedroom" {
		t.Errorf("room label = %q, want Bedroom", result.RoomLabel)
	}

	wantAlloc := map[string]float64{"Bed": 30000, "Mattress": 12500, "Side Table": 7500}
	if len(result.Categories) != len(wantAlloc) {
		t.Fatalf("got %d categories, want %d", len(result.Categories), len(wantAlloc))
	}
	for _, cat := range result.Categories {
		want, ok := wantAlloc[cat.Category]
		if !ok {
			t.Errorf("unexpected category %q", cat.Category)
			continue
		}
		if cat.AllocatedBudget != want {
			t.Errorf("%s allocated %v, want %v", cat.Category, cat.AllocatedBudget, want)
		}
		for _, prod := range cat.Products {
			if prod.Price > cat.AllocatedBudget {
				t.Errorf("%s product %q priced %v above allocation %v", cat.Category, prod.Name, prod.Price, cat.AllocatedBudget)
			}
		}
		if len(cat.Products) > 0 && cat.FallbackMessage != "" {
			t.Errorf("%s has products and a fallback message", cat.Category)
		}
	}
}

func TestRunOfficeSplit(t *testing.T) {
	finder := &stubFinder{}
	p := New(finder)

	result, err := p.Run(context.Background(), "20k for my office")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !result.Success {
		t.Fatalf("Run failed: %s", result.Error)
	}

	wantAlloc := map[string]float64{"Chair": 10000, "Desk": 8000, "Storage": 2000}
	for _, cat := range result.Categories {
		if cat.AllocatedBudget != wantAlloc[cat.Category] {
			t.Errorf("%s allocated %v, want %v", cat.Category, cat.AllocatedBudget, wantAlloc[cat.Category])
		}
	}
}

func TestRunNoBudget(t *testing.T) {
	p := New(&stubFinder{})

	result, err := p.Run(context.Background(), "please furnish my bedroom")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Success {
		t.Fatal("expected failure for input without a budget")
	}
	want := `Could not detect a valid budget from your message. Try: "I have 50000 to furnish my bedroom"`
	if result.Error != want {
		t.Errorf("error = %q, want %q", result.Error, want)
	}
	if result.RoomType != RoomBedroom {
		t.Errorf("room = %q, want %q (room detection still runs)", result.RoomType, RoomBedroom)
	}
}

func TestRunZeroBudget(t *testing.T) {
	p := New(&stubFinder{})

	result, err := p.Run(context.Background(), "0 for my bedroom")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Success {
		t.Fatal("expected failure for zero budget")
	}
	if !strings.Contains(result.Error, "Could not detect a valid budget") {
		t.Errorf("unexpected error: %q", result.Error)
	}
}

func TestRunNoRoom(t *testing.T) {
	p := New(&stubFinder{})

	result, err := p.Run(context.Background(), "I have 20000 rupees")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Success {
		t.Fatal("expected failure for input without a room")
	}
	want := "Could not detect room type. Please mention bedroom, living room, or office."
	if result.Error != want {
		t.Errorf("error = %q, want %q", result.Error, want)
	}
	if result.TotalBudget == nil || *result.TotalBudget != 20000 {
		t.Errorf("total budget = %v, want 20000 (budget is kept in the failure)", result.TotalBudget)
	}
}

func TestRunFallbackMessage(t *testing.T) {
	p := New(&stubFinder{}) // empty catalog

	result, err := p.Run(context.Background(), "50000 for the living room")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !result.Success {
		t.Fatalf("Run failed: %s", result.Error)
	}

	var sofa *entity.CategoryAllocation
	for i := range result.Categories {
		if result.Categories[i].Category == "Sofa" {
			sofa = &result.Categories[i]
		}
	}
	if sofa == nil {
		t.Fatal("no Sofa category in living room result")
	}
	if len(sofa.Products) != 0 {
		t.Fatalf("expected no products, got %d", len(sofa.Products))
	}
	want := "No product found under ₹30,000.00 for Sofa. Try increasing your budget or browse our catalog."
	if sofa.FallbackMessage != want {
		t.Errorf("fallback = %q, want %q", sofa.FallbackMessage, want)
	}
}

func TestRunCatalogError(t *testing.T) {
	finder := &stubFinder{err: errors.New("connection refused")}
	p := New(finder)

	_, err := p.Run(context.Background(), "50000 for my bedroom")
	if err == nil {
		t.Fatal("expected error when the catalog query fails")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("error %q does not wrap the catalog failure", err)
	}
}

func TestRunLimitsAndKeywords(t *testing.T) {
	finder := &stubFinder{}
	p := New(finder)

	if _, err := p.Run(context.Background(), "1.5 lakh for my bedroom"); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(finder.calls) != 3 {
		t.Fatalf("catalog queried %d times, want 3", len(finder.calls))
	}
	for _, call := range finder.calls {
		if call.limit != 3 {
			t.Errorf("limit = %d, want 3", call.limit)
		}
		if len(call.keywords) == 0 {
			t.Error("catalog queried with no keywords")
		}
	}
	// 60% of 1.5 lakh
	if finder.calls[0].maxPrice != 90000 {
		t.Errorf("Bed allocation = %v, want 90000", finder.calls[0].maxPrice)
	}
}

func TestRunIdempotent(t *testing.T) {
	finder := &stubFinder{products: map[string][]entity.Product{
		"bed": {{ID: 1, Name: "Bed", Price: 25000}},
	}}
	p := New(finder)

	first, err := p.Run(context.Background(), "50000 for my bedroom")
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Run(context.Background(), "50000 for my bedroom")
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Categories) != len(second.Categories) {
		t.Fatal("repeated runs disagree on category count")
	}
	for i := range first.Categories {
		if first.Categories[i].AllocatedBudget != second.Categories[i].AllocatedBudget {
			t.Errorf("allocation for %s changed between runs", first.Categories[i].Category)
		}
	}
}

func TestSummarizeTruncatesDescription(t *testing.T) {
	long := strings.Repeat("x", 200)
	out := summarize([]entity.Product{{ID: 1, Name: "Bed", Price: 100, Description: long}})
	if len(out) != 1 {
		t.Fatalf("got %d summaries, want 1", len(out))
	}
	if len(out[0].Description) != 150 {
		t.Errorf("description length = %d, want 150", len(out[0].Description))
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{500, "500.00"},
		{12500, "12,500.00"},
		{150000, "150,000.00"},
		{1234567.89, "1,234,567.89"},
		{-7500, "-7,500.00"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoomLabel(t *testing.T) {
	if got := RoomLabel("living_room"); got != "Living Room" {
		t.Errorf("RoomLabel(living_room) = %q, want Living Room", got)
	}
	if got := RoomLabel("bedroom"); got != "Bedroom" {
		t.Errorf("RoomLabel(bedroom) = %q, want Bedroom", got)
	}
}
