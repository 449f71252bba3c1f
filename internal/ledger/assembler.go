package ledger

import (
	"github.com/shopspring/decimal"

	"fjacquet/stmt-ledger/internal/models"
)

// OpeningDescription labels the opening balance pseudo-record.
const OpeningDescription = "Opening Balance"

// Assemble builds the final ledger: the opening pseudo-record when an opening
// balance was seen, then every record in the order it was applied. The
// opening record is dated with the statement period start when known.
func Assemble(state LedgerState, header models.StatementHeader) models.Ledger {
	ledger := models.Ledger{
		Header:  header,
		Records: append([]models.TransactionRecord(nil), state.Records...),
	}

	if state.OpeningBalance.Valid {
		ledger.Opening = &models.TransactionRecord{
			Date:              header.FromDate,
			Description:       OpeningDescription,
			Kind:              models.KindNone,
			CalculatedBalance: state.OpeningBalance,
			StatedBalance:     state.OpeningBalance,
			Difference:        models.Some(decimal.Zero),
			Line:              -1,
		}
	}

	return ledger
}
