package planner

import "testing"

func TestDetectBudget(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		none  bool
	}{
		{name: "bare number", input: "50000", want: 50000},
		{name: "comma grouped", input: "50,000", want: 50000},
		{name: "k suffix", input: "50k", want: 50000},
		{name: "k suffix in sentence", input: "I have 50k for furniture", want: 50000},
		{name: "decimal lakh", input: "1.5 lakh", want: 150000},
		{name: "lac spelling", input: "2 lac", want: 200000},
		{name: "thousand word", input: "50 thousand", want: 50000},
		{name: "rupee prefix", input: "Rs 50,000 for my living room", want: 50000},
		{name: "rupee symbol", input: "₹75000", want: 75000},
		{name: "inr prefix", input: "INR 30000", want: 30000},
		{name: "decimal amount", input: "12500.50", want: 12500.50},
		{name: "empty", input: "", none: true},
		{name: "no digits", input: "furnish my bedroom please", none: true},
		{name: "whitespace only", input: "   ", none: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectBudget(tt.input)
			if tt.none {
				if got != nil {
					t.Fatalf("DetectBudget(%q) = %v, want nil", tt.input, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("DetectBudget(%q) = nil, want %v", tt.input, tt.want)
			}
			if *got != tt.want {
				t.Errorf("DetectBudget(%q) = %v, want %v", tt.input, *got, tt.want)
			}
		})
	}
}

func TestDetectRoom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bedroom", input: "furnish my bedroom", want: RoomBedroom},
		{name: "bed room spaced", input: "my bed room needs furniture", want: RoomBedroom},
		{name: "living room", input: "50000 for the living room", want: RoomLivingRoom},
		{name: "hall", input: "setting up the hall", want: RoomLivingRoom},
		{name: "sitting", input: "sitting area makeover", want: RoomLivingRoom},
		{name: "office", input: "home office setup", want: RoomOffice},
		{name: "study", input: "furnish the study", want: RoomOffice},
		{name: "bedroom wins over office", input: "bedroom and office combo", want: RoomBedroom},
		{name: "living wins over office", input: "living room cum office", want: RoomLivingRoom},
		{name: "case insensitive", input: "MY BEDROOM", want: RoomBedroom},
		{name: "no room", input: "I have 50000", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectRoom(tt.input); got != tt.want {
				t.Errorf("DetectRoom(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	got := Parse("Rs 50,000 for my living room")
	if got.Amount == nil || *got.Amount != 50000 {
		t.Fatalf("Parse amount = %v, want 50000", got.Amount)
	}
	if got.RoomType != RoomLivingRoom {
		t.Errorf("Parse room = %q, want %q", got.RoomType, RoomLivingRoom)
	}

	empty := Parse("")
	if empty.Amount != nil {
		t.Errorf("Parse(\"\") amount = %v, want nil", *empty.Amount)
	}
	if empty.RoomType != "" {
		t.Errorf("Parse(\"\") room = %q, want empty", empty.RoomType)
	}
}

func TestBudgetRulesSumTo100(t *testing.T) {
	for _, room := range []string{RoomBedroom, RoomLivingRoom, RoomOffice} {
		rules := RulesForRoom(room)
		if len(rules) == 0 {
			t.Fatalf("no rules for %s", room)
		}
		sum := 0
		for _, r := range rules {
			sum += r.Percent
		}
		if sum != 100 {
			t.Errorf("%s percentages sum to %d, want 100", room, sum)
		}
	}
}

func TestKeywordsForCategoryFallback(t *testing.T) {
	got := KeywordsForCategory("Beanbag")
	if len(got) != 1 || got[0] != "beanbag" {
		t.Errorf("KeywordsForCategory fallback = %v, want [beanbag]", got)
	}
	if kws := KeywordsForCategory("Bed"); len(kws) == 0 {
		t.Error("KeywordsForCategory(Bed) returned no keywords")
	}
}
