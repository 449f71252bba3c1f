// Package models holds the data types shared by the ledger core, the input
// adapters and the CSV writer.
package models

import "github.com/shopspring/decimal"

// TransactionRecord is one reconstructed ledger line.
type TransactionRecord struct {
	// Date is the DD-Mon-YY token as printed; it is a label, not a parsed date.
	Date        string
	Description string
	Kind        Kind
	OrderedBy   string
	Beneficiary string

	// At most one of Debit and Credit is set.
	Debit  decimal.NullDecimal
	Credit decimal.NullDecimal

	CalculatedBalance decimal.NullDecimal
	StatedBalance     decimal.NullDecimal
	Difference        decimal.NullDecimal

	// Unreconciled is set when no baseline and no stated balance existed,
	// leaving CalculatedBalance empty.
	Unreconciled bool

	// Line is the zero-based index of the block's anchor line in the input.
	Line int
}

// HasDifference reports whether the record disagrees with its stated balance.
func (r TransactionRecord) HasDifference() bool {
	return r.Difference.Valid && !r.Difference.Decimal.IsZero()
}

// StatementHeader carries labelled header fields found in the document.
type StatementHeader struct {
	Name          string `json:"name,omitempty"`
	IBAN          string `json:"iban,omitempty"`
	BIC           string `json:"bic,omitempty"`
	StatementDate string `json:"statement_date,omitempty"`
	FromDate      string `json:"from_date,omitempty"`
	ToDate        string `json:"to_date,omitempty"`
}

// Ledger is the assembled output of one conversion.
type Ledger struct {
	Header  StatementHeader
	Opening *TransactionRecord
	Records []TransactionRecord
}

// All returns the opening record (if any) followed by the transaction records.
func (l Ledger) All() []TransactionRecord {
	out := make([]TransactionRecord, 0, len(l.Records)+1)
	if l.Opening != nil {
		out = append(out, *l.Opening)
	}
	return append(out, l.Records...)
}

// Summary counts records by reconciliation outcome.
type Summary struct {
	Records      int    `json:"records"`
	Unreconciled int    `json:"unreconciled"`
	Differences  int    `json:"differences"`
	TotalDebit   string `json:"total_debit"`
	TotalCredit  string `json:"total_credit"`
}

// Summarize computes a Summary over the transaction records (the opening
// record is not counted).
func (l Ledger) Summarize() Summary {
	debit, credit := decimal.Zero, decimal.Zero
	s := Summary{Records: len(l.Records)}
	for _, r := range l.Records {
		if r.Unreconciled {
			s.Unreconciled++
		}
		if r.HasDifference() {
			s.Differences++
		}
		if r.Debit.Valid {
			debit = debit.Add(r.Debit.Decimal)
		}
		if r.Credit.Valid {
			credit = credit.Add(r.Credit.Decimal)
		}
	}
	s.TotalDebit = FormatAmount(debit)
	s.TotalCredit = FormatAmount(credit)
	return s
}
