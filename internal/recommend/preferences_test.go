// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package recommend

import (
	"errors"
	"reflect"
	"testing"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int           { return &n }

func TestNewPreferences_Normalization(t *testing.T) {
	tests := []struct {
		name         string
		cities       []string
		cuisines     []string
		wantCities   []string
		wantCuisines []string
	}{
		{
			name:       "comma joined single value",
			cities:     []string{"Bangalore, Mumbai"},
			wantCities: []string{"bangalore", "mumbai"},
		},
		{
			name:       "mixed list and comma values",
			cities:     []string{" Delhi ", "Pune,  Chennai"},
			wantCities: []string{"delhi", "pune", "chennai"},
		},
		{
			name:         "case folding",
			cuisines:     []string{"ITALIAN", "North Indian"},
			wantCuisines: []string{"italian", "north indian"},
		},
		{
			name:       "empty entries dropped",
			cities:     []string{"", " , ", "Goa"},
			wantCities: []string{"goa"},
		},
		{
			name:       "nil input",
			cities:     nil,
			wantCities: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs, err := NewPreferences(RawPreferences{Cities: tt.cities, Cuisines: tt.cuisines})
			if err != nil {
				t.Fatalf("NewPreferences() error = %v", err)
			}

			if tt.wantCities != nil && !reflect.DeepEqual(prefs.Cities, tt.wantCities) {
				t.Errorf("Cities = %v, want %v", prefs.Cities, tt.wantCities)
			}
			if tt.wantCuisines != nil && !reflect.DeepEqual(prefs.Cuisines, tt.wantCuisines) {
				t.Errorf("Cuisines = %v, want %v", prefs.Cuisines, tt.wantCuisines)
			}
		})
	}
}

func TestNewPreferences_NormalizationIdempotent(t *testing.T) {
	first, err := NewPreferences(RawPreferences{
		Cities:   []string{" Bangalore , MUMBAI "},
		Cuisines: []string{"Chinese,  Thai"},
	})
	if err != nil {
		t.Fatalf("NewPreferences() error = %v", err)
	}

	second, err := NewPreferences(RawPreferences{
		Cities:   first.Cities,
		Cuisines: first.Cuisines,
	})
	if err != nil {
		t.Fatalf("NewPreferences() second pass error = %v", err)
	}

	if !reflect.DeepEqual(first.Cities, second.Cities) {
		t.Errorf("Cities not idempotent: %v != %v", first.Cities, second.Cities)
	}
	if !reflect.DeepEqual(first.Cuisines, second.Cuisines) {
		t.Errorf("Cuisines not idempotent: %v != %v", first.Cuisines, second.Cuisines)
	}
}

func TestNewPreferences_TopNClamping(t *testing.T) {
	tests := []struct {
		name string
		topN int
		want int
	}{
		{"zero takes default", 0, DefaultTopN},
		{"below minimum clamped up", -5, MinTopN},
		{"above maximum clamped down", 500, MaxTopN},
		{"boundary min", 1, 1},
		{"boundary max", 50, 50},
		{"in range unchanged", 25, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs, err := NewPreferences(RawPreferences{TopN: tt.topN})
			if err != nil {
				t.Fatalf("NewPreferences() error = %v", err)
			}
			if prefs.TopN != tt.want {
				t.Errorf("TopN = %d, want %d", prefs.TopN, tt.want)
			}
		})
	}
}

func TestNewPreferences_Validation(t *testing.T) {
	tests := []struct {
		name      string
		raw       RawPreferences
		wantField string
	}{
		{"min rating too high", RawPreferences{MinRating: floatPtr(6.0)}, "min_rating"},
		{"min rating negative", RawPreferences{MinRating: floatPtr(-0.1)}, "min_rating"},
		{"price bucket zero", RawPreferences{MaxPriceBucket: intPtr(0)}, "max_price_bucket"},
		{"price bucket five", RawPreferences{MaxPriceBucket: intPtr(5)}, "max_price_bucket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPreferences(tt.raw)
			if err == nil {
				t.Fatal("NewPreferences() expected error, got nil")
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestNewPreferences_ValidBoundaries(t *testing.T) {
	prefs, err := NewPreferences(RawPreferences{
		MinRating:      floatPtr(0.0),
		MaxPriceBucket: intPtr(4),
	})
	if err != nil {
		t.Fatalf("NewPreferences() error = %v", err)
	}
	if *prefs.MinRating != 0.0 || *prefs.MaxPriceBucket != 4 {
		t.Errorf("boundary values altered: min_rating=%v max_price_bucket=%v",
			*prefs.MinRating, *prefs.MaxPriceBucket)
	}

	prefs, err = NewPreferences(RawPreferences{MinRating: floatPtr(5.0), MaxPriceBucket: intPtr(1)})
	if err != nil {
		t.Fatalf("NewPreferences() error = %v", err)
	}
	if *prefs.MinRating != 5.0 || *prefs.MaxPriceBucket != 1 {
		t.Errorf("boundary values altered: min_rating=%v max_price_bucket=%v",
			*prefs.MinRating, *prefs.MaxPriceBucket)
	}
}

func TestNewPreferences_ModelDefault(t *testing.T) {
	prefs, err := NewPreferences(RawPreferences{})
	if err != nil {
		t.Fatalf("NewPreferences() error = %v", err)
	}
	if prefs.ModelName != DefaultModelName {
		t.Errorf("ModelName = %q, want %q", prefs.ModelName, DefaultModelName)
	}

	prefs, err = NewPreferences(RawPreferences{ModelName: "gemini-2.5-pro"})
	if err != nil {
		t.Fatalf("NewPreferences() error = %v", err)
	}
	if prefs.ModelName != "gemini-2.5-pro" {
		t.Errorf("ModelName = %q, want explicit model preserved", prefs.ModelName)
	}
}
