// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the command-line entry point for League Lens.

League Lens computes derived analytics over a Music League export:
competitors, rounds, song submissions, and peer-assigned votes. The CLI is
presentation glue; all actual logic lives in the library packages.

# Running a Report

Against a CSV export directory:

	league-lens -data ./export -r overview

Against a SQLite or PostgreSQL copy of the export:

	league-lens -s sqlite -d league.db -r voting -round "Covers"
	DATABASE_URL=postgres://... league-lens -s postgres -r competitors -competitor Alice

Round and competitor selectors accept either a stable ID or a display name.
An ambiguous name is an error, never a silent first match.

# Importing

Seed a database from a CSV export:

	league-lens -import -s sqlite -d league.db -data ./export

# Architecture

The data flows strictly downward through the library packages:

  - store: loads the four base tables (CSV, SQLite, or PostgreSQL)
  - league: resolves foreign keys into one immutable snapshot
  - filter: narrows the enriched views to a round and/or competitor
  - aggregate: pure grouping, ranking, pivoting, and rollup operations
  - report: composes the above into named, render-ready tables
  - models: shared entity and table types
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
