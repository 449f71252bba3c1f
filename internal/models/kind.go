package models

// Kind is the classified category of a transaction block.
type Kind string

const (
	KindSettlement     Kind = "SETTLEMENT"
	KindCommission     Kind = "COMMISSION"
	KindCashWithdrawal Kind = "CASH_WITHDRAWAL"
	KindCashDeposit    Kind = "CASH_DEPOSIT"
	KindUnclassified   Kind = "UNCLASSIFIED"

	// KindNone marks the opening-balance pseudo-record, which has no kind.
	KindNone Kind = ""
)

// IsPOS reports whether the kind routes through the point-of-sale resolution
// path, where the kind alone decides debit versus credit.
func (k Kind) IsPOS() bool {
	switch k {
	case KindSettlement, KindCommission, KindCashWithdrawal, KindCashDeposit:
		return true
	default:
		return false
	}
}

// IsCredit reports whether a POS kind books its amount as a credit.
func (k Kind) IsCredit() bool {
	return k == KindSettlement || k == KindCashDeposit
}

// Label is the value written to the Kind column. Unclassified blocks and the
// opening record leave the cell empty.
func (k Kind) Label() string {
	switch k {
	case KindSettlement:
		return "SETTLEMENT"
	case KindCommission:
		return "COMMISSION"
	case KindCashWithdrawal:
		return "CASH WITHDRAWAL"
	case KindCashDeposit:
		return "CASH DEPOSIT"
	default:
		return ""
	}
}
