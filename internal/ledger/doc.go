// Package ledger turns the text lines of one statement into a reconciled
// ledger.
//
// A conversion runs strictly in document order: lines are segmented into
// dated blocks, each block is classified and its amount resolved to a debit
// or credit, and the reconciliation engine threads a running balance through
// the records. The engine propagates its own calculated balance and only
// compares it against balances printed in the document, so one wrong printed
// value yields a single nonzero difference instead of corrupting every later
// row.
//
// Nothing in this package returns an error. Unparsable amounts become zero,
// unknown blocks are kept as UNCLASSIFIED, and records without any baseline
// are flagged Unreconciled.
package ledger
