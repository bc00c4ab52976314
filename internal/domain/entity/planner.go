package entity

// ParsedBudget is what the budget planner extracts from free text.
// Amount is nil when no number was found; RoomType is "" when no room
// keyword matched. Neither case is an error.
type ParsedBudget struct {
	Amount   *float64 `json:"amount"`
	RoomType string   `json:"room_type"`
}

// CategoryAllocation is one slice of the budget split, with up to three
// affordable product matches ordered by price descending.
type CategoryAllocation struct {
	Category        string           `json:"category"`
	Percentage      int              `json:"percentage"`
	AllocatedBudget float64          `json:"allocated_budget"`
	Products        []ProductSummary `json:"products"`
	FallbackMessage string           `json:"fallback_message,omitempty"`
}

// PlannerResult is the budget planner response. Failure paths keep
// Success=false with a human-readable Error; the planner never panics or
// leaks parse failures past its boundary.
type PlannerResult struct {
	Success     bool                 `json:"success"`
	TotalBudget *float64             `json:"total_budget"`
	RoomType    string               `json:"room_type,omitempty"`
	RoomLabel   string               `json:"room_label,omitempty"`
	Categories  []CategoryAllocation `json:"categories"`
	Error       string               `json:"error,omitempty"`
	RawInput    string               `json:"raw_input,omitempty"`
}
