package planner

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/furnishfusion/storefront/internal/domain/entity"
)

var (
	separatorRe      = regexp.MustCompile(`[\s,]+`)
	amountKiloRe     = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*k(?:ilo)?`)
	amountLakhRe     = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:lac|lakh)`)
	amountThousandRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*thousand`)
	amountPlainRe    = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
)

// Room keyword sets, checked in this order. The bedroom > living_room >
// office tie-break when keywords overlap is preserved from the original
// behavior, quirky as it is.
var roomKeywords = []struct {
	room     string
	keywords []string
}{
	{RoomBedroom, []string{"bedroom", "bed room", "bed-room"}},
	{RoomLivingRoom, []string{"living room", "livingroom", "living-room", "hall", "sitting"}},
	{RoomOffice, []string{"office", "study", "work room", "workroom"}},
}

// DetectBudget extracts a budget amount from free text. Handles 50000,
// 50,000, 50k, 1.5 lakh, 50 thousand, Rs 50000, ₹50000. Returns nil when
// no number is present.
func DetectBudget(text string) *float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	normalized := separatorRe.ReplaceAllString(strings.ToLower(text), "")
	normalized = strings.ReplaceAll(normalized, "rs", "")
	normalized = strings.ReplaceAll(normalized, "₹", "")
	normalized = strings.ReplaceAll(normalized, "inr", "")

	if m := amountKiloRe.FindStringSubmatch(normalized); m != nil {
		return parseScaled(m[1], 1000)
	}
	if m := amountLakhRe.FindStringSubmatch(normalized); m != nil {
		return parseScaled(m[1], 100000)
	}
	if m := amountThousandRe.FindStringSubmatch(normalized); m != nil {
		return parseScaled(m[1], 1000)
	}
	if m := amountPlainRe.FindStringSubmatch(normalized); m != nil {
		return parseScaled(m[1], 1)
	}
	return nil
}

func parseScaled(num string, factor float64) *float64 {
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return nil
	}
	v *= factor
	return &v
}

// DetectRoom returns the first room type whose keyword set matches the
// text, or "" when none does.
func DetectRoom(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return ""
	}
	for _, set := range roomKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(t, kw) {
				return set.room
			}
		}
	}
	return ""
}

// Parse extracts both the budget amount and the room type. Empty or
// unusable input yields nil/"" fields, never an error; the planner turns
// that into a structured failure result.
func Parse(text string) entity.ParsedBudget {
	return entity.ParsedBudget{
		Amount:   DetectBudget(text),
		RoomType: DetectRoom(text),
	}
}
