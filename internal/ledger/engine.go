package ledger

import (
	"github.com/shopspring/decimal"

	"fjacquet/stmt-ledger/internal/models"
)

// LedgerState is the per-document reconciliation state. It is a value:
// Open and Apply return the next state and leave the receiver untouched, so
// one conversion never shares state with another. States derived from a
// common ancestor must stay on one goroutine.
type LedgerState struct {
	OpeningBalance decimal.NullDecimal
	RunningBalance decimal.NullDecimal
	Records        []models.TransactionRecord

	// claimed is the number of slots of the Records backing array handed out
	// to some state. Only a state whose length equals it may append in place.
	claimed *int
}

// Tracking reports whether a running balance is known.
func (s LedgerState) Tracking() bool {
	return s.RunningBalance.Valid
}

// Open restarts tracking from an opening balance. Every opening balance
// resets the running balance; OpeningBalance keeps the first one, which is
// the value of the opening record.
func (s LedgerState) Open(amount decimal.Decimal) LedgerState {
	if !s.OpeningBalance.Valid {
		s.OpeningBalance = models.Some(amount)
	}
	s.RunningBalance = models.Some(amount)
	return s
}

// Apply reconciles rec against the running balance and appends it. Debit,
// Credit and StatedBalance are read from rec; CalculatedBalance, Difference
// and Unreconciled are overwritten.
//
// While tracking, the calculated balance is running - debit + credit and
// becomes the next running balance. Without a baseline, a stated balance
// seeds both with a zero difference. Without either the record is flagged
// unreconciled.
func (s LedgerState) Apply(rec models.TransactionRecord) LedgerState {
	rec.CalculatedBalance = decimal.NullDecimal{}
	rec.Difference = decimal.NullDecimal{}
	rec.Unreconciled = false

	switch {
	case s.RunningBalance.Valid:
		calc := s.RunningBalance.Decimal
		if rec.Debit.Valid {
			calc = calc.Sub(rec.Debit.Decimal)
		}
		if rec.Credit.Valid {
			calc = calc.Add(rec.Credit.Decimal)
		}
		rec.CalculatedBalance = models.Some(calc)
		if rec.StatedBalance.Valid {
			rec.Difference = models.Some(models.RoundMoney(calc.Sub(rec.StatedBalance.Decimal)))
		}
		s.RunningBalance = models.Some(calc)

	case rec.StatedBalance.Valid:
		rec.CalculatedBalance = rec.StatedBalance
		rec.Difference = models.Some(decimal.Zero)
		s.RunningBalance = rec.StatedBalance

	default:
		rec.Unreconciled = true
	}

	s.Records = s.appendRecord(rec)
	return s
}

func (s *LedgerState) appendRecord(rec models.TransactionRecord) []models.TransactionRecord {
	n := len(s.Records)
	records := s.Records
	if s.claimed == nil || *s.claimed != n || n == cap(records) {
		grown := make([]models.TransactionRecord, n, max(2*n, 16))
		copy(grown, records)
		records = grown
		s.claimed = new(int)
	}
	*s.claimed = n + 1
	return append(records, rec)
}
