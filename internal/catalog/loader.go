// AI Restaurant Recommendation Service
// Copyright 2026 Sukrutha (sukrutha13b)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sukrutha13b/AI-restaurant-recommendation

package catalog

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
)

// ErrUnsupportedFormat indicates the catalogue file extension is not one of
// the supported formats (.csv, .json, .jsonl, .ndjson).
var ErrUnsupportedFormat = errors.New("unsupported catalogue format")

// LoadFile reads a catalogue export from disk into normalized, deduplicated
// Restaurant values. limit <= 0 means no limit.
//
// CSV files must carry a header row; JSON files are read as one object per
// line (JSON-lines). Rows are deduplicated on (name, city, area) with the
// first occurrence winning, matching the upstream dataset ingestion.
func LoadFile(path string, limit int) ([]Restaurant, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("open catalogue: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(f, limit)
	case ".json", ".jsonl", ".ndjson":
		return loadJSONLines(f, limit)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func loadCSV(r io.Reader, limit int) ([]Restaurant, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var restaurants []Restaurant
	seen := make(map[string]struct{})

	for idx := 0; ; idx++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", idx+1, err)
		}

		rec := make(RawRecord, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			}
		}

		restaurants = appendUnique(restaurants, NormalizeRecord(rec, idx), seen)
		if limit > 0 && len(restaurants) >= limit {
			break
		}
	}
	return restaurants, nil
}

func loadJSONLines(r io.Reader, limit int) ([]Restaurant, error) {
	var restaurants []Restaurant
	seen := make(map[string]struct{})

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	idx := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		// Records may carry numeric columns as numbers or strings; decode
		// into any and stringify before normalization.
		var raw map[string]any
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			return nil, fmt.Errorf("parse json line %d: %w", idx+1, err)
		}

		rec := make(RawRecord, len(raw))
		for k, v := range raw {
			rec[k] = stringify(v)
		}

		restaurants = appendUnique(restaurants, NormalizeRecord(rec, idx), seen)
		if limit > 0 && len(restaurants) >= limit {
			break
		}
		idx++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan catalogue: %w", err)
	}
	return restaurants, nil
}

func appendUnique(restaurants []Restaurant, r Restaurant, seen map[string]struct{}) []Restaurant {
	key := r.dedupeKey()
	if _, dup := seen[key]; dup {
		return restaurants
	}
	seen[key] = struct{}{}
	return append(restaurants, r)
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, stringify(e))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", t)
	}
}
