package ledger

import (
	"strings"

	"fjacquet/stmt-ledger/internal/models"
)

// Classify assigns a kind from keyword evidence anywhere in the block.
// Keywords are checked in priority order over the whole block text, so a
// settlement block mentioning a commission is still a settlement.
func Classify(block Block) models.Kind {
	return ClassifyText(block.Text())
}

// ClassifyText applies the keyword priority to free text.
func ClassifyText(text string) models.Kind {
	t := strings.ToLower(text)

	switch {
	case strings.Contains(t, "settlement"):
		return models.KindSettlement
	case strings.Contains(t, "commission"):
		return models.KindCommission
	case strings.Contains(t, "withdrawal"):
		return models.KindCashWithdrawal
	case strings.Contains(t, "cash deposit"),
		strings.Contains(t, "cash") && strings.Contains(t, "deposit"):
		return models.KindCashDeposit
	default:
		return models.KindUnclassified
	}
}
