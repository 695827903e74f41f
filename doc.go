// Package ledgerbook provides the types and pure functions for keeping a
// personal ledger of income and expense records together with peer-to-peer
// loans, and for deriving every report from that single source of truth.
//
// The core functionalities include:
//   - Ledger Management: recording transactions and loans in an append-only,
//     chronological record with a closed set of banks and categories.
//   - Aggregation Engine: pure, single-pass derivations of per-bank balances,
//     running balances, and daily/monthly/yearly income, expense and saving
//     series. Every derivation recomputes from the current snapshot; nothing
//     derived is ever persisted.
//   - Schedule Generation: amortized monthly installment schedules whose
//     amounts always sum back to the loan principal exactly, to the currency's
//     minor unit.
//   - Data Persistence: encoding and decoding the ledger to a human-readable,
//     version-controllable JSONL file, or to a SQLite snapshot (see sqlstore).
//
// This package serves as the foundational logic for the `lbk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package ledgerbook
