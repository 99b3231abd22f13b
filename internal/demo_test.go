package internal

import (
	"strings"
	"testing"
)

func TestDemoResponse_CodingInventory(t *testing.T) {
	got := DemoResponse("Buat sistem inventory", CategoryCoding)

	for _, want := range []string{
		"Demo Mode",
		"```lua\n-- Sistem Inventory Sederhana",
		"function Inventory:AddItem(item)",
		"playerInventory:AddItem({name = \"Sword\", damage = 10})",
		"`.env`",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("coding demo reply missing %q", want)
		}
	}
}

func TestDemoResponse_Categories(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{CategoryCoding, "# Demo Mode - AI Response"},
		{CategoryDesign, "# Demo Mode - Design Response"},
		{CategoryOptimization, "# Demo Mode - Optimization Tips"},
		{CategoryLearning, "# Demo Mode - Learning Resource"},
		{CategoryGeneral, "# Demo Mode Aktif"},
		{"unknown", "# Demo Mode Aktif"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got := DemoResponse("pertanyaan", tt.category)
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("DemoResponse(%q) starts %q, want %q", tt.category, firstLine(got), tt.want)
			}
		})
	}
}

func TestDemoResponse_GeneralQuotesQuestion(t *testing.T) {
	got := DemoResponse("Apa itu DataStore?", CategoryGeneral)
	if !strings.HasSuffix(got, `Pertanyaan Anda: "Apa itu DataStore?..."`) {
		t.Errorf("general reply should quote the question, ends %q", got[len(got)-40:])
	}

	long := strings.Repeat("é", 150)
	got = DemoResponse(long, CategoryGeneral)
	if !strings.Contains(got, `"`+strings.Repeat("é", 100)+`..."`) {
		t.Error("general reply should quote only the first 100 characters")
	}
}

func TestSystemPrompt(t *testing.T) {
	if SystemPrompt(CategoryCoding) == SystemPrompt(CategoryGeneral) {
		t.Error("coding and general should use different instructions")
	}
	if SystemPrompt("nonsense") != SystemPrompt(CategoryGeneral) {
		t.Error("unknown categories should use the general instructions")
	}
	for _, c := range Categories {
		if !strings.Contains(SystemPrompt(c.ID), "Roblox") {
			t.Errorf("SystemPrompt(%q) does not mention Roblox", c.ID)
		}
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"coding", CategoryCoding},
		{" Design ", CategoryDesign},
		{"LEARNING", CategoryLearning},
		{"", CategoryGeneral},
		{"cooking", CategoryGeneral},
	}
	for _, tt := range tests {
		if got := NormalizeCategory(tt.input); got != tt.want {
			t.Errorf("NormalizeCategory(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFilterPrompts(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		category string
		want     int
	}{
		{"all", "", "", len(QuickPrompts)},
		{"all keyword", "", "all", len(QuickPrompts)},
		{"coding", "", CategoryCoding, 2},
		{"search text", "SHOP", "", 1},
		{"search description", "networking", "", 1},
		{"search and category", "sistem", CategoryOptimization, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterPrompts(QuickPrompts, tt.search, tt.category); len(got) != tt.want {
				t.Errorf("FilterPrompts(%q, %q) returned %d, want %d", tt.search, tt.category, len(got), tt.want)
			}
		})
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
