// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

const csvFixture = `name,city,location,cuisines,rate,votes,approx_cost(for two people)
Truffles,Bangalore,Koramangala,"American, Burger",4.6/5,"9,054",900
Empire,Bangalore,Church Street,"North Indian, Biryani",4.2/5,4000,450
Truffles,Bangalore,Koramangala,"American, Burger",4.6/5,"9,054",900
New Spot,Mumbai,Bandra,Chinese,NEW,-,500
`

func TestLoadFile_CSV(t *testing.T) {
	path := writeFixture(t, "restaurants.csv", csvFixture)

	restaurants, err := LoadFile(path, 0)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	// Duplicate Truffles row collapses on (name, city, area).
	if len(restaurants) != 3 {
		t.Fatalf("got %d restaurants, want 3 after dedupe", len(restaurants))
	}

	first := restaurants[0]
	if first.Name != "Truffles" || first.City != "Bangalore" {
		t.Errorf("first = %q/%q", first.Name, first.City)
	}
	if first.Rating == nil || *first.Rating != 4.6 {
		t.Errorf("Rating = %v", first.Rating)
	}
	if first.Votes == nil || *first.Votes != 9054 {
		t.Errorf("Votes = %v", first.Votes)
	}
	if first.PriceRange == nil || *first.PriceRange != 2 {
		t.Errorf("PriceRange = %v", first.PriceRange)
	}

	newSpot := restaurants[2]
	if newSpot.Rating != nil || newSpot.Votes != nil {
		t.Error("NEW/- markers must normalize to nil")
	}
}

func TestLoadFile_CSVLimit(t *testing.T) {
	path := writeFixture(t, "restaurants.csv", csvFixture)

	restaurants, err := LoadFile(path, 2)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(restaurants) != 2 {
		t.Errorf("got %d restaurants, want limit of 2", len(restaurants))
	}
}

func TestLoadFile_JSONLines(t *testing.T) {
	content := `{"name": "Olive Bar", "city": "Mumbai", "cuisines": "Italian, European", "rating": 4.4, "votes": 1800, "price_range": 4}
{"name": "Corner Stall", "city": "Bangalore", "cuisines": ["Street Food"], "rating": "3.9/5", "votes": "600"}
`
	path := writeFixture(t, "restaurants.jsonl", content)

	restaurants, err := LoadFile(path, 0)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(restaurants) != 2 {
		t.Fatalf("got %d restaurants, want 2", len(restaurants))
	}

	olive := restaurants[0]
	if olive.Rating == nil || *olive.Rating != 4.4 {
		t.Errorf("numeric JSON rating = %v", olive.Rating)
	}
	if olive.PriceRange == nil || *olive.PriceRange != 4 {
		t.Errorf("PriceRange = %v", olive.PriceRange)
	}

	stall := restaurants[1]
	if stall.Rating == nil || *stall.Rating != 3.9 {
		t.Errorf("string JSON rating = %v", stall.Rating)
	}
	if len(stall.Cuisines) != 1 || stall.Cuisines[0] != "Street Food" {
		t.Errorf("array cuisines = %v", stall.Cuisines)
	}
}

func TestLoadFile_UnsupportedFormat(t *testing.T) {
	path := writeFixture(t, "restaurants.xlsx", "whatever")

	_, err := LoadFile(path, 0)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("LoadFile() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.csv"), 0); err == nil {
		t.Error("LoadFile() on a missing file must fail")
	}
}
