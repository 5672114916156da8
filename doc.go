// Package autogaap provides a complete double-entry bookkeeping engine for a
// small business ledger. It is designed to be local-first, auditable, and
// forgiving of imperfect data: malformed entries are surfaced by the health
// checks instead of crashing reports.
//
// The core functionalities include:
//   - Journal Management: Recording journal entries (dated, described groups
//     of debit/credit line items) in an immutable, chronological ledger.
//   - Aggregation: Summarizing the ledger into totals by account type and by
//     account, with a trial-balance indicator.
//   - Health Analysis: Validating entries for missing descriptions, missing
//     accounts, future postings, duplicates and imbalances, and reporting
//     deduplicated, capped finding lists.
//   - Financial Statements: Deriving the balance sheet, income statement,
//     statement of owner's equity and cash flow statement from the journal.
//   - Recurring Entries: Templates that generate postings on a daily, weekly
//     or monthly schedule, firing at most once per day.
//   - Data Persistence: A directory-backed store with subscriber
//     notifications, JSON import/export, and fallback seeding from a remote
//     dataset or the embedded sample ledger.
//
// This package serves as the foundational logic for the `gaap` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package autogaap
