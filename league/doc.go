// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package league resolves cross-entity relationships into an immutable snapshot.

# Snapshot

Resolve performs the three foreign-key joins once and caches the results:

	snap, err := league.Resolve(dataset)

The resulting Snapshot holds the base tables, the two canonical enriched
views (EnrichedSubmissions, EnrichedVotes), and O(1) lookup indexes. Nothing
mutates a snapshot after construction, so any number of reports can read it
concurrently without locking. Reloading the source builds a new snapshot;
computations holding the old one keep a consistent view.

# Integrity

Every foreign key must resolve. A dangling reference aborts resolution with
an *IntegrityError carrying the failed join:

	OrphanSubmission  submission -> round (or submitter)
	OrphanVote        vote -> (round, track) submission
	OrphanVoter       vote -> competitor

# Name Resolution

ResolveRoundSelector and ResolveCompetitorSelector are the single place where
display names become IDs. A shared name fails with *AmbiguousNameError rather
than silently resolving to the first match; all internal joins key on IDs.
*/
package league
