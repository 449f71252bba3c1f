package ledger

import (
	"fjacquet/stmt-ledger/internal/logging"
	"fjacquet/stmt-ledger/internal/models"
	"fjacquet/stmt-ledger/internal/textutils"
)

// Converter runs the segment, classify, resolve and reconcile pipeline over
// one document at a time. A Converter holds no per-document state and may be
// shared between goroutines.
type Converter struct {
	logger  logging.Logger
	parties *textutils.PartyExtractor
}

// NewConverter creates a converter. A nil logger discards output and nil
// parties selects the built-in extraction rules.
func NewConverter(logger logging.Logger, parties *textutils.PartyExtractor) *Converter {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if parties == nil {
		parties = textutils.DefaultPartyExtractor()
	}
	return &Converter{logger: logger, parties: parties}
}

// Convert converts lines using the built-in rules and no logging.
func Convert(lines []string) models.Ledger {
	return NewConverter(nil, nil).Convert(lines)
}

// Convert turns one document's lines into a ledger. The result depends only
// on lines and the extraction rules.
func (c *Converter) Convert(lines []string) models.Ledger {
	header := textutils.ExtractHeader(lines)

	var state LedgerState
	for _, ev := range Segment(lines) {
		switch ev.Type {
		case EventOpening:
			state = c.open(state, ev)
		case EventBlock:
			state = c.Process(state, ev.Block)
		}
	}

	ledger := Assemble(state, header)
	c.logSummary(ledger)
	return ledger
}

func (c *Converter) open(state LedgerState, ev Event) LedgerState {
	if state.OpeningBalance.Valid {
		c.logger.Warn("Resetting running balance to repeated opening balance",
			logging.F(logging.FieldBlock, ev.Line),
			logging.F(logging.FieldOpeningBalance, models.FormatAmount(ev.Opening)))
		return state.Open(ev.Opening)
	}
	c.logger.Debug("Opening balance found",
		logging.F(logging.FieldBlock, ev.Line),
		logging.F(logging.FieldOpeningBalance, models.FormatAmount(ev.Opening)))
	return state.Open(ev.Opening)
}

// Process builds the record for block against state and applies it.
func (c *Converter) Process(state LedgerState, block Block) LedgerState {
	rec := c.BuildRecord(block, state)
	next := state.Apply(rec)
	applied := next.Records[len(next.Records)-1]

	c.logger.Debug("Block reconciled",
		logging.F(logging.FieldBlock, block.Line),
		logging.F(logging.FieldDate, applied.Date),
		logging.F(logging.FieldKind, string(applied.Kind)))

	switch {
	case applied.Unreconciled:
		c.logger.Debug("Block has no baseline",
			logging.F(logging.FieldBlock, block.Line),
			logging.F(logging.FieldUnreconciled, true))
	case applied.HasDifference():
		c.logger.Warn("Calculated balance differs from statement",
			logging.F(logging.FieldBlock, block.Line),
			logging.F(logging.FieldDate, applied.Date),
			logging.F(logging.FieldDifference, models.FormatAmount(applied.Difference.Decimal)))
	}

	return next
}

// BuildRecord reads date, kind, parties and amounts from block. Balances are
// left for LedgerState.Apply.
func (c *Converter) BuildRecord(block Block, state LedgerState) models.TransactionRecord {
	text := block.Text()
	kind := Classify(block)
	res := Resolve(kind, text, state.RunningBalance)

	rec := models.TransactionRecord{
		Date:          block.Date(),
		Description:   text,
		Kind:          kind,
		Debit:         res.Debit,
		Credit:        res.Credit,
		StatedBalance: res.Stated,
		Line:          block.Line,
	}

	for _, line := range block.Continuation() {
		if rec.OrderedBy == "" {
			rec.OrderedBy = c.parties.ExtractOrderedBy(line)
		}
		if rec.Beneficiary == "" {
			rec.Beneficiary = c.parties.ExtractBeneficiary(line)
		}
		if rec.OrderedBy != "" && rec.Beneficiary != "" {
			break
		}
	}

	return rec
}

func (c *Converter) logSummary(ledger models.Ledger) {
	s := ledger.Summarize()
	c.logger.Info("Statement converted",
		logging.F(logging.FieldCount, s.Records),
		logging.F(logging.FieldUnreconciled, s.Unreconciled),
		logging.F(logging.FieldDifferences, s.Differences),
		logging.F(logging.FieldOpeningBalance, ledger.Opening != nil))
}
