// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store loads the four base relations from a data source.

# Sources

Two interchangeable backends produce the same models.Dataset:

  - LoadDir(dir): CSV files exported by Music League
    (competitors.csv, rounds.csv, submissions.csv, votes.csv)
  - Load(db): a SQL database with the base tables, either SQLite
    (modernc.org/sqlite) or PostgreSQL (lib/pq), opened via Open

CreateSchema and InsertDataset exist to seed a SQL source from CSV exports.

# Failure Model

A load is all-or-nothing. A missing file or column, an unparsable timestamp,
or a negative points value fails the load with a *LoadError; callers never
receive a dataset with some tables loaded and others missing.

The store does not validate cross-table references; that is the resolver's
job, and it reports orphans as typed integrity errors instead of dropping rows.
*/
package store
