// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package catalog

import (
	"reflect"
	"testing"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *float64
	}{
		{"plain", "4.3", floatPtr(4.3)},
		{"rating with denominator", "4.3/5", floatPtr(4.3)},
		{"spaces around slash", "3.8 /5", floatPtr(3.8)},
		{"integer", "4", floatPtr(4)},
		{"empty", "", nil},
		{"NEW marker", "NEW", nil},
		{"new lowercase", "new", nil},
		{"dash", "-", nil},
		{"nan marker", "NaN", nil},
		{"garbage", "four", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFloat(tt.raw)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("ParseFloat(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("ParseFloat(%q) = %v, want %v", tt.raw, *got, *tt.want)
			}
		})
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *int
	}{
		{"plain", "775", intPtr(775)},
		{"comma grouped", "1,234", intPtr(1234)},
		{"float formatted", "350.0", intPtr(350)},
		{"empty", "", nil},
		{"null marker", "NULL", nil},
		{"garbage", "many", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseInt(tt.raw)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("ParseInt(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("ParseInt(%q) = %v, want %v", tt.raw, *got, *tt.want)
			}
		})
	}
}

func TestSplitCuisines(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"simple", "North Indian, Chinese", []string{"North Indian", "Chinese"}},
		{"extra spaces and empties", " Cafe ,, Bakery, ", []string{"Cafe", "Bakery"}},
		{"empty", "  ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitCuisines(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitCuisines(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDerivePriceRange(t *testing.T) {
	tests := []struct {
		name       string
		priceRange string
		approxCost string
		want       *int
	}{
		{"explicit range wins", "3", "400", intPtr(3)},
		{"cheap cost", "", "400", intPtr(1)},
		{"boundary 500", "", "500", intPtr(1)},
		{"mid cost", "", "800", intPtr(2)},
		{"boundary 1000", "", "1,000", intPtr(2)},
		{"upper mid", "", "1500", intPtr(3)},
		{"expensive", "", "3500", intPtr(4)},
		{"nothing known", "", "", nil},
		{"unparseable cost", "", "cheap", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DerivePriceRange(tt.priceRange, tt.approxCost)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("DerivePriceRange(%q, %q) = %v, want %v", tt.priceRange, tt.approxCost, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("DerivePriceRange(%q, %q) = %d, want %d", tt.priceRange, tt.approxCost, *got, *tt.want)
			}
		})
	}
}

func TestNormalizeRecord(t *testing.T) {
	t.Run("zomato style row", func(t *testing.T) {
		rec := RawRecord{
			"name":                      "Truffles",
			"listed_in(city)":           "Bangalore",
			"location":                  "Koramangala",
			"cuisines":                  "American, Burger",
			"rate":                      "4.6/5",
			"votes":                     "9,054",
			"approx_cost(for two people)": "900",
		}

		r := NormalizeRecord(rec, 7)

		if r.ID != "7" {
			t.Errorf("ID = %q, want fallback index", r.ID)
		}
		if r.Name != "Truffles" || r.City != "Bangalore" || r.Area != "Koramangala" {
			t.Errorf("identity fields = %q/%q/%q", r.Name, r.City, r.Area)
		}
		if !reflect.DeepEqual(r.Cuisines, []string{"American", "Burger"}) {
			t.Errorf("Cuisines = %v", r.Cuisines)
		}
		if r.Rating == nil || *r.Rating != 4.6 {
			t.Errorf("Rating = %v", r.Rating)
		}
		if r.Votes == nil || *r.Votes != 9054 {
			t.Errorf("Votes = %v", r.Votes)
		}
		if r.PriceRange == nil || *r.PriceRange != 2 {
			t.Errorf("PriceRange = %v", r.PriceRange)
		}
	})

	t.Run("missing everything", func(t *testing.T) {
		r := NormalizeRecord(RawRecord{}, 42)
		if r.ID != "42" {
			t.Errorf("ID = %q", r.ID)
		}
		if r.Name != "Unknown Restaurant" {
			t.Errorf("Name = %q", r.Name)
		}
		if r.Rating != nil || r.Votes != nil || r.PriceRange != nil {
			t.Error("missing numeric fields must stay nil")
		}
		if r.Cuisines != nil {
			t.Errorf("Cuisines = %v, want nil", r.Cuisines)
		}
	})

	t.Run("explicit id preserved", func(t *testing.T) {
		r := NormalizeRecord(RawRecord{"restaurant_id": "z-101", "name": "Empire"}, 3)
		if r.ID != "z-101" {
			t.Errorf("ID = %q, want explicit id", r.ID)
		}
	})
}

func TestRestaurantHasCuisine(t *testing.T) {
	r := Restaurant{Cuisines: []string{"North Indian", " Biryani "}}

	set := map[string]struct{}{"biryani": {}}
	if !r.HasCuisine(set) {
		t.Error("HasCuisine must match case-insensitively with trimming")
	}

	if r.HasCuisine(map[string]struct{}{"sushi": {}}) {
		t.Error("HasCuisine matched a cuisine the restaurant does not serve")
	}
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int           { return &n }
