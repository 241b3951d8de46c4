// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package filter narrows the enriched views to a round and/or competitor.

A Selection holds an optional round ID and competitor ID; the zero value
selects everything. Apply returns a consistent filtered pair:

	views := filter.Apply(snap, filter.Selection{RoundID: "r1"})

The competitor restriction is asymmetric on purpose: submissions are those
the competitor submitted, votes are those the competitor cast. Filters
compose by intersection and commute, and an empty selection yields empty
views rather than an error.
*/
package filter
