package planner

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/furnishfusion/storefront/internal/domain/constants"
	"github.com/furnishfusion/storefront/internal/domain/entity"
)

// Finder is the read-only catalog capability the planner needs. Results
// must be ordered by price descending.
type Finder interface {
	FindByKeywordsAndMaxPrice(ctx context.Context, keywords []string, maxPrice float64, limit int) ([]entity.Product, error)
}

// Planner splits a free-text budget across room categories and matches
// catalog products into each slice. Stateless; safe for concurrent use.
type Planner struct {
	catalog Finder
}

func New(catalog Finder) *Planner {
	return &Planner{catalog: catalog}
}

// Run parses the input and builds the full planner result. Malformed
// input always comes back as a well-formed result with Success=false;
// the returned error is non-nil only when a catalog query fails.
func (p *Planner) Run(ctx context.Context, userInput string) (entity.PlannerResult, error) {
	parsed := Parse(userInput)

	if parsed.Amount == nil || *parsed.Amount <= 0 {
		return entity.PlannerResult{
			Success:    false,
			Error:      `Could not detect a valid budget from your message. Try: "I have 50000 to furnish my bedroom"`,
			RoomType:   parsed.RoomType,
			Categories: []entity.CategoryAllocation{},
		}, nil
	}

	if parsed.RoomType == "" {
		return entity.PlannerResult{
			Success:     false,
			Error:       "Could not detect room type. Please mention bedroom, living room, or office.",
			TotalBudget: parsed.Amount,
			Categories:  []entity.CategoryAllocation{},
		}, nil
	}

	rules := RulesForRoom(parsed.RoomType)
	if len(rules) == 0 {
		return entity.PlannerResult{
			Success:     false,
			Error:       fmt.Sprintf("No budget rules defined for room: %s", parsed.RoomType),
			TotalBudget: parsed.Amount,
			RoomType:    parsed.RoomType,
			Categories:  []entity.CategoryAllocation{},
		}, nil
	}

	total := *parsed.Amount
	categories := make([]entity.CategoryAllocation, 0, len(rules))
	for _, rule := range rules {
		allocated := Round2(total * float64(rule.Percent) / 100)

		products, err := p.catalog.FindByKeywordsAndMaxPrice(ctx, KeywordsForCategory(rule.Category), allocated, constants.PlannerProductLimit)
		if err != nil {
			return entity.PlannerResult{}, fmt.Errorf("catalog query for %s: %w", rule.Category, err)
		}

		alloc := entity.CategoryAllocation{
			Category:        rule.Category,
			Percentage:      rule.Percent,
			AllocatedBudget: allocated,
			Products:        summarize(products),
		}
		if len(alloc.Products) == 0 {
			alloc.FallbackMessage = fmt.Sprintf(
				"No product found under ₹%s for %s. Try increasing your budget or browse our catalog.",
				FormatAmount(allocated), rule.Category)
		}
		categories = append(categories, alloc)
	}

	return entity.PlannerResult{
		Success:     true,
		TotalBudget: parsed.Amount,
		RoomType:    parsed.RoomType,
		RoomLabel:   RoomLabel(parsed.RoomType),
		Categories:  categories,
		RawInput:    userInput,
	}, nil
}

func summarize(products []entity.Product) []entity.ProductSummary {
	out := make([]entity.ProductSummary, 0, len(products))
	for _, p := range products {
		desc := p.Description
		if len(desc) > 150 {
			desc = desc[:150]
		}
		out = append(out, entity.ProductSummary{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			ImageURL:    p.ImageURL,
			Description: desc,
		})
	}
	return out
}

// Round2 rounds to two decimal places, the resolution all currency
// amounts are carried at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RoomLabel turns "living_room" into "Living Room".
func RoomLabel(room string) string {
	words := strings.Split(strings.ReplaceAll(room, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// FormatAmount renders an amount with thousands separators and two
// decimals, e.g. 12500 -> "12,500.00".
func FormatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	dot := strings.Index(s, ".")
	intPart, frac := s[:dot], s[dot:]
	neg := false
	if strings.HasPrefix(intPart, "-") {
		neg = true
		intPart = intPart[1:]
	}
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)
	out := strings.Join(groups, ",") + frac
	if neg {
		out = "-" + out
	}
	return out
}
