// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package aggregate

import (
	"math"
	"reflect"
	"testing"
)

type row struct {
	key   string
	value float64
}

func rowKey(r row) string    { return r.key }
func rowValue(r row) float64 { return r.value }

func TestGroupCount(t *testing.T) {
	rows := []row{{"a", 1}, {"a", 2}, {"b", 5}}

	counts := GroupCount(rows, rowKey)

	if counts["a"] != 2 || counts["b"] != 1 {
		t.Errorf("Expected a=2 b=1, got %v", counts)
	}
}

func TestGroupCount_EmptyInput(t *testing.T) {
	counts := GroupCount(nil, rowKey)
	if len(counts) != 0 {
		t.Errorf("Expected empty map for empty input, got %v", counts)
	}
}

func TestGroupMean_OmitsEmptyGroups(t *testing.T) {
	rows := []row{{"a", 2}, {"a", 4}, {"b", 3}}

	means := GroupMean(rows, rowKey, rowValue)

	if means["a"] != 3.0 {
		t.Errorf("Expected mean 3.0 for a, got %f", means["a"])
	}
	if means["b"] != 3.0 {
		t.Errorf("Expected mean 3.0 for b, got %f", means["b"])
	}
	// "c" has no rows: the key must be absent, never a numeric default
	if _, ok := means["c"]; ok {
		t.Error("Expected no entry for a group with no rows")
	}
}

func TestGroupMeanStdDev(t *testing.T) {
	tests := []struct {
		name       string
		rows       []row
		key        string
		wantMean   float64
		wantStdDev float64
		wantCount  int
	}{
		{
			name:       "single element group has stddev 0",
			rows:       []row{{"solo", 4}},
			key:        "solo",
			wantMean:   4.0,
			wantStdDev: 0.0,
			wantCount:  1,
		},
		{
			name:       "sample stddev uses n-1",
			rows:       []row{{"v", 2}, {"v", 4}, {"v", 6}},
			key:        "v",
			wantMean:   4.0,
			wantStdDev: 2.0, // variance (4+0+4)/2 = 4
			wantCount:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := GroupMeanStdDev(tt.rows, rowKey, rowValue)

			got, ok := stats[tt.key]
			if !ok {
				t.Fatalf("Expected group %q in result", tt.key)
			}
			if got.Mean != tt.wantMean {
				t.Errorf("Expected mean %f, got %f", tt.wantMean, got.Mean)
			}
			if math.Abs(got.StdDev-tt.wantStdDev) > 1e-9 {
				t.Errorf("Expected stddev %f, got %f", tt.wantStdDev, got.StdDev)
			}
			if got.Count != tt.wantCount {
				t.Errorf("Expected count %d, got %d", tt.wantCount, got.Count)
			}
		})
	}
}

func TestTopK(t *testing.T) {
	values := map[string]float64{"carol": 5, "alice": 3, "bob": 3, "dan": 7}

	tests := []struct {
		name string
		k    int
		want []Ranked
	}{
		{
			name: "ties break by ascending key",
			k:    4,
			want: []Ranked{{"dan", 7}, {"carol", 5}, {"alice", 3}, {"bob", 3}},
		},
		{
			name: "k clamps the result",
			k:    2,
			want: []Ranked{{"dan", 7}, {"carol", 5}},
		},
		{
			name: "k larger than input returns everything",
			k:    10,
			want: []Ranked{{"dan", 7}, {"carol", 5}, {"alice", 3}, {"bob", 3}},
		},
		{
			name: "non-positive k returns nothing",
			k:    0,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopK(values, tt.k)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTopK_Idempotent(t *testing.T) {
	values := map[string]float64{"a": 1, "b": 1, "c": 1, "d": 2}

	first := TopK(values, len(values))

	// Re-ranking the ranking's own entries must reproduce it exactly.
	again := make(map[string]float64, len(first))
	for _, r := range first {
		again[r.Key] = r.Value
	}
	second := TopK(again, len(again))

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected stable ordering, got %v then %v", first, second)
	}
}

func TestPivot(t *testing.T) {
	type voteRow struct {
		voter, round string
		points       float64
	}
	// Voter A never voted in round r2
	rows := []voteRow{
		{"A", "r1", 4},
		{"A", "r1", 2},
		{"B", "r1", 1},
		{"B", "r2", 5},
		{"C", "r2", 3},
	}

	m := Pivot(rows,
		func(v voteRow) string { return v.voter },
		func(v voteRow) string { return v.round },
		func(v voteRow) float64 { return v.points },
		0.0,
	)

	if !reflect.DeepEqual(m.RowKeys, []string{"A", "B", "C"}) {
		t.Errorf("Expected sorted row keys, got %v", m.RowKeys)
	}
	if !reflect.DeepEqual(m.ColKeys, []string{"r1", "r2"}) {
		t.Errorf("Expected sorted col keys, got %v", m.ColKeys)
	}

	if got := m.At("A", "r1"); got != 3.0 {
		t.Errorf("Expected mean 3.0 for (A, r1), got %f", got)
	}
	// The missing pair holds fill, while its coverage count is 0
	if got := m.At("A", "r2"); got != 0.0 {
		t.Errorf("Expected fill 0.0 for (A, r2), got %f", got)
	}
	counts := GroupCount(rows, func(v voteRow) string { return v.voter + "/" + v.round })
	if counts["A/r2"] != 0 {
		t.Errorf("Expected coverage count 0 for (A, r2), got %d", counts["A/r2"])
	}
}

func TestPivot_EmptyInput(t *testing.T) {
	m := Pivot(nil,
		func(r row) string { return r.key },
		func(r row) string { return r.key },
		rowValue,
		0.0,
	)
	if len(m.RowKeys) != 0 || len(m.ColKeys) != 0 {
		t.Errorf("Expected empty matrix, got %v x %v", m.RowKeys, m.ColKeys)
	}
}

func TestPivot_NonZeroFill(t *testing.T) {
	type cell struct{ r, c string }
	m := Pivot([]cell{{"x", "c1"}, {"y", "c2"}},
		func(v cell) string { return v.r },
		func(v cell) string { return v.c },
		func(v cell) float64 { return 1 },
		-1.0,
	)

	if got := m.At("x", "c2"); got != -1.0 {
		t.Errorf("Expected fill -1.0 for missing pair, got %f", got)
	}
}

func TestSample(t *testing.T) {
	rows := []row{{"a", 1}, {"b", 2}, {"c", 3}, {"d", 4}, {"e", 5}}

	t.Run("seed makes samples reproducible", func(t *testing.T) {
		first := Sample(rows, 3, 42)
		second := Sample(rows, 3, 42)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Expected identical samples for one seed, got %v and %v", first, second)
		}
	})

	t.Run("n clamps to input size", func(t *testing.T) {
		got := Sample(rows, 10, 1)
		if len(got) != len(rows) {
			t.Errorf("Expected %d rows, got %d", len(rows), len(got))
		}
	})

	t.Run("no replacement", func(t *testing.T) {
		got := Sample(rows, 5, 7)
		seen := make(map[string]bool)
		for _, r := range got {
			if seen[r.key] {
				t.Errorf("Row %q sampled twice", r.key)
			}
			seen[r.key] = true
		}
	})

	t.Run("non-positive n returns nothing", func(t *testing.T) {
		if got := Sample(rows, 0, 1); got != nil {
			t.Errorf("Expected nil, got %v", got)
		}
	})
}
