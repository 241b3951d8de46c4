// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package aggregate provides the pure aggregation operations every report uses.

All functions are total: empty input produces empty (or nil) results, never
an error. None of them mutate their inputs.

# Operations

  - GroupCount / GroupSum: per-key counts and totals
  - GroupMean: per-key means; an empty group's mean is undefined and the
    key is omitted; callers that want 0 must ask for it explicitly
  - GroupMeanStdDev: per-key mean + sample (n-1) standard deviation;
    a group of size 1 has StdDev 0
  - TopK / TopKCounts: strictly descending ranking, ties broken by
    ascending key for deterministic output
  - Pivot: dense row x column matrix of means; missing pairs hold the
    fill value (a declared default, not "no data")
  - Rollup: the per-competitor summary across all tables, single-pass
  - Sample: seedable uniform sampling without replacement

The grouping functions are generic over the row type and take key/value
extractor funcs, so the same operations serve submissions, votes, and any
derived view uniformly.
*/
package aggregate
