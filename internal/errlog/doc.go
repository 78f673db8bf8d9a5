// Package errlog classifies, decorates, orders and counts the lines of a PHP
// error log.
//
// # Pipeline
//
// Analyze runs every stage over an in-memory Source:
//
//  1. Classify tags each line with one Category using an ordered rule list.
//  2. Group attaches stack trace lines to the nearest preceding entry.
//  3. Reorder yields the display order, optionally newest first.
//  4. Visible applies the category filters to that order.
//  5. Count tallies entries overall and after filtering.
//
// Decorate is line-local and may run at any point.
//
// # Primary and continuation lines
//
// Deprecated, Notice, Warning, Error and Other lines are entries. The three
// stack trace categories are continuation lines: they belong to the entry
// above them, move with it when the order is reversed, and are never counted.
// A continuation line with no entry above it is an orphan and is ordered on
// its own.
//
// # Errors
//
// Nothing in this package fails on text input. A missing log is represented
// by Source.Available being false, which Result.Err reports as
// ErrLogUnavailable.
package errlog
