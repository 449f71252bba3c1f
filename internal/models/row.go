package models

// LedgerRow is the serialized shape of a record; column order is fixed.
type LedgerRow struct {
	Date              string `csv:"Date" json:"date"`
	Description       string `csv:"Description" json:"description"`
	Kind              string `csv:"Kind" json:"kind"`
	OrderedBy         string `csv:"Ordered By" json:"ordered_by"`
	Beneficiary       string `csv:"Beneficiary" json:"beneficiary"`
	Debit             string `csv:"Debit" json:"debit"`
	Credit            string `csv:"Credit" json:"credit"`
	CalculatedBalance string `csv:"Calculated Balance" json:"calculated_balance"`
	StatedBalance     string `csv:"Stated Balance" json:"stated_balance"`
	Difference        string `csv:"Difference" json:"difference"`
}

// ToRow formats a record for output.
func (r TransactionRecord) ToRow() LedgerRow {
	return LedgerRow{
		Date:              r.Date,
		Description:       r.Description,
		Kind:              r.Kind.Label(),
		OrderedBy:         r.OrderedBy,
		Beneficiary:       r.Beneficiary,
		Debit:             FormatNullAmount(r.Debit),
		Credit:            FormatNullAmount(r.Credit),
		CalculatedBalance: FormatNullAmount(r.CalculatedBalance),
		StatedBalance:     FormatNullAmount(r.StatedBalance),
		Difference:        FormatNullAmount(r.Difference),
	}
}

// Rows formats the whole ledger, opening record first.
func (l Ledger) Rows() []LedgerRow {
	all := l.All()
	rows := make([]LedgerRow, len(all))
	for i, r := range all {
		rows[i] = r.ToRow()
	}
	return rows
}
