package ledger

import (
	"github.com/shopspring/decimal"

	"fjacquet/stmt-ledger/internal/models"
)

var directionTolerance = decimal.New(1, -2)

// Path names the strategy that resolved a block.
type Path string

const (
	PathPOS  Path = "pos"
	PathBank Path = "bank"
)

// Resolution is the outcome of reading a block's amounts.
type Resolution struct {
	Path   Path
	Debit  decimal.NullDecimal
	Credit decimal.NullDecimal
	Stated decimal.NullDecimal
}

// Resolve reads the first two amounts of text as (transaction, stated
// balance) and decides debit versus credit. Classified kinds decide by kind.
// Unclassified blocks compare the stated balance with the running balance
// and fall back to the sign of the amount. Amounts beyond the second are
// ignored.
func Resolve(kind models.Kind, text string, running decimal.NullDecimal) Resolution {
	tokens := models.FindAmounts(text)

	res := Resolution{Path: PathBank}
	if kind.IsPOS() {
		res.Path = PathPOS
	}
	if len(tokens) == 0 {
		return res
	}

	amount := models.ParseAmount(tokens[0])
	if len(tokens) > 1 {
		res.Stated = models.Some(models.ParseAmount(tokens[1]))
	}

	if res.Path == PathPOS {
		if kind.IsCredit() {
			res.Credit = models.Some(amount.Abs())
		} else {
			res.Debit = models.Some(amount.Abs())
		}
		return res
	}

	if !running.Valid {
		res.Credit = models.Some(amount.Abs())
		return res
	}

	if res.Stated.Valid {
		delta := res.Stated.Decimal.Sub(running.Decimal)
		if delta.Abs().Sub(amount).Abs().LessThan(directionTolerance) {
			if delta.IsNegative() {
				res.Debit = models.Some(amount.Abs())
			} else {
				res.Credit = models.Some(amount.Abs())
			}
			return res
		}
	}

	if amount.IsNegative() {
		res.Debit = models.Some(amount.Abs())
	} else {
		res.Credit = models.Some(amount)
	}
	return res
}
