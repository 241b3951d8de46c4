// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package aggregate

import (
	"math"
	"math/rand"
	"sort"

	"github.com/danielhkuo/league-lens/models"
)

// GroupCount counts rows per key. Empty input yields an empty map.
func GroupCount[T any](rows []T, key func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[key(r)]++
	}
	return counts
}

// GroupSum sums a value per key.
func GroupSum[T any](rows []T, key func(T) string, value func(T) float64) map[string]float64 {
	sums := make(map[string]float64)
	for _, r := range rows {
		sums[key(r)] += value(r)
	}
	return sums
}

// GroupMean computes the mean value per key. A key only appears in the
// result if at least one row carries it: the mean of an empty group is
// undefined and the entry is omitted, never reported as 0. Conflating
// "no votes" with "average of 0" is a correctness hazard.
func GroupMean[T any](rows []T, key func(T) string, value func(T) float64) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range rows {
		k := key(r)
		sums[k] += value(r)
		counts[k]++
	}

	means := make(map[string]float64, len(sums))
	for k, sum := range sums {
		means[k] = sum / float64(counts[k])
	}
	return means
}

// MeanStdDev is a per-group mean with its sample standard deviation.
type MeanStdDev struct {
	Mean   float64
	StdDev float64
	Count  int
}

// GroupMeanStdDev computes mean and sample (n-1) standard deviation per key.
// A group of size 1 yields StdDev 0 ("no variation observed yet") rather
// than an undefined value, matching the consistency-plot policy.
func GroupMeanStdDev[T any](rows []T, key func(T) string, value func(T) float64) map[string]MeanStdDev {
	values := make(map[string][]float64)
	for _, r := range rows {
		k := key(r)
		values[k] = append(values[k], value(r))
	}

	stats := make(map[string]MeanStdDev, len(values))
	for k, vs := range values {
		stats[k] = MeanStdDev{
			Mean:   mean(vs),
			StdDev: sampleStdDev(vs),
			Count:  len(vs),
		}
	}
	return stats
}

// Ranked is one (key, value) entry of a top-k ranking.
type Ranked struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// TopK ranks aggregated values strictly descending; ties break by ascending
// key so results are deterministic; entities legitimately tie on counts and
// points all the time. k <= 0 returns nil; k >= len returns everything.
func TopK(values map[string]float64, k int) []Ranked {
	if k <= 0 || len(values) == 0 {
		return nil
	}

	ranked := make([]Ranked, 0, len(values))
	for key, v := range values {
		ranked = append(ranked, Ranked{Key: key, Value: v})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Value != ranked[j].Value {
			return ranked[i].Value > ranked[j].Value
		}
		return ranked[i].Key < ranked[j].Key
	})

	if k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

// TopKCounts is TopK over integer counts.
func TopKCounts(counts map[string]int, k int) []Ranked {
	values := make(map[string]float64, len(counts))
	for key, c := range counts {
		values[key] = float64(c)
	}
	return TopK(values, k)
}

// Pivot builds a dense rowKey x colKey matrix of mean values. Every
// (row, col) pair present in the key sets gets a cell; pairs with no source
// rows hold fill. Pivot is total: empty input yields an empty matrix.
// Row and column keys are sorted ascending for deterministic output.
func Pivot[T any](rows []T, rowKey, colKey func(T) string, value func(T) float64, fill float64) models.Matrix {
	type cellKey struct{ row, col string }
	sums := make(map[cellKey]float64)
	counts := make(map[cellKey]int)
	rowSet := make(map[string]bool)
	colSet := make(map[string]bool)

	for _, r := range rows {
		ck := cellKey{rowKey(r), colKey(r)}
		sums[ck] += value(r)
		counts[ck]++
		rowSet[ck.row] = true
		colSet[ck.col] = true
	}

	m := models.Matrix{
		RowKeys: sortedKeys(rowSet),
		ColKeys: sortedKeys(colSet),
		Cells:   make(map[string]map[string]float64, len(rowSet)),
		Fill:    fill,
	}

	for _, row := range m.RowKeys {
		cells := make(map[string]float64, len(m.ColKeys))
		for _, col := range m.ColKeys {
			ck := cellKey{row, col}
			if n := counts[ck]; n > 0 {
				cells[col] = sums[ck] / float64(n)
			} else {
				cells[col] = fill
			}
		}
		m.Cells[row] = cells
	}
	return m
}

// Sample returns a uniform random sample without replacement of size
// min(n, len(rows)). The seed makes samples reproducible in tests.
func Sample[T any](rows []T, n int, seed int64) []T {
	if n <= 0 || len(rows) == 0 {
		return nil
	}
	if n > len(rows) {
		n = len(rows)
	}

	r := rand.New(rand.NewSource(seed))
	perm := r.Perm(len(rows))

	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = rows[perm[i]]
	}
	return out
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// mean calculates the arithmetic mean
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStdDev calculates the sample (n-1) standard deviation.
// A single observation has no variation yet, so it returns 0.
func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0.0
	}

	m := mean(values)
	var ss float64
	for _, v := range values {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1))
}
