package planner

import "strings"

// Rule is one slice of a room's budget split. Percentages per room sum
// to 100; order is the presentation order.
type Rule struct {
	Category string
	Percent  int
}

// Room types the planner understands.
const (
	RoomBedroom    = "bedroom"
	RoomLivingRoom = "living_room"
	RoomOffice     = "office"
)

// budgetRules maps room type to its category split. Built once, never
// mutated after init.
var budgetRules = map[string][]Rule{
	RoomBedroom: {
		{Category: "Bed", Percent: 60},
		{Category: "Mattress", Percent: 25},
		{Category: "Side Table", Percent: 15},
	},
	RoomLivingRoom: {
		{Category: "Sofa", Percent: 60},
		{Category: "Center Table", Percent: 20},
		{Category: "TV Unit", Percent: 20},
	},
	RoomOffice: {
		{Category: "Chair", Percent: 50},
		{Category: "Desk", Percent: 40},
		{Category: "Storage", Percent: 10},
	},
}

// categoryKeywords maps a budget category to its catalog search terms.
// Lists overlap on purpose ("table" shows up in four of them); a product
// may satisfy several categories and that is accepted behavior.
var categoryKeywords = map[string][]string{
	"Bed":          {"bed", "bed frame", "queen", "king", "single bed", "double bed"},
	"Mattress":     {"mattress", "bed"},
	"Side Table":   {"side table", "side-table", "bedside", "nightstand", "coffee table", "table"},
	"Sofa":         {"sofa", "couch", "settee", "set"},
	"Center Table": {"coffee table", "center table", "centre table", "table"},
	"TV Unit":      {"tv", "entertainment", "cabinet", "unit", "wardrobe"},
	"Chair":        {"chair", "ergonomic", "office"},
	"Desk":         {"desk", "study", "table"},
	"Storage":      {"storage", "shelf", "bookcase", "cabinet", "wardrobe", "bookshelf"},
}

// RulesForRoom returns the split for a room, or nil when unknown.
func RulesForRoom(room string) []Rule {
	return budgetRules[room]
}

// KeywordsForCategory returns the search terms for a category, falling
// back to the lower-cased category name itself.
func KeywordsForCategory(category string) []string {
	if kws, ok := categoryKeywords[category]; ok {
		return kws
	}
	return []string{strings.ToLower(category)}
}
