package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/stmt-ledger/internal/logging"
	"fjacquet/stmt-ledger/internal/models"
	"fjacquet/stmt-ledger/internal/textutils"
)

func TestConvert_OpeningAndSettlement(t *testing.T) {
	ledger := Convert([]string{
		"01-Jan-24 OPENING BALANCE 1,000.00",
		"02-Jan-24 SETTLEMENT 200.00 1,200.00",
	})

	require.NotNil(t, ledger.Opening)
	assertAmount(t, "1000", ledger.Opening.CalculatedBalance, "opening balance")

	require.Len(t, ledger.Records, 1)
	rec := ledger.Records[0]
	assert.Equal(t, models.KindSettlement, rec.Kind)
	assert.Equal(t, "02-Jan-24", rec.Date)
	assertAmount(t, "200", rec.Credit, "credit")
	assert.False(t, rec.Debit.Valid)
	assertAmount(t, "1200", rec.CalculatedBalance, "calc")
	assertAmount(t, "0", rec.Difference, "difference")

	rows := ledger.Rows()
	assert.Equal(t, "1,000.00", rows[0].CalculatedBalance)
	assert.Equal(t, "1,200.00", rows[1].CalculatedBalance)
	assert.Equal(t, "0.00", rows[1].Difference)
}

func TestConvert_RepeatedOpeningBalance(t *testing.T) {
	ledger := Convert([]string{
		"Opening balance 1,000.00",
		"02-Jan-24 SETTLEMENT 200.00 1,200.00",
		"Opening balance 5,000.00",
		"03-Jan-24 SETTLEMENT 100.00 5,100.00",
	})

	require.NotNil(t, ledger.Opening)
	assertAmount(t, "1000", ledger.Opening.CalculatedBalance, "opening record")

	require.Len(t, ledger.Records, 2)
	assertAmount(t, "1200", ledger.Records[0].CalculatedBalance, "first calc")
	assertAmount(t, "0", ledger.Records[0].Difference, "first difference")
	assertAmount(t, "5100", ledger.Records[1].CalculatedBalance, "second calc")
	assertAmount(t, "0", ledger.Records[1].Difference, "second difference")

	rows := ledger.Rows()
	assert.Equal(t, "5,100.00", rows[len(rows)-1].CalculatedBalance)
	assert.Equal(t, "0.00", rows[len(rows)-1].Difference)
}

func TestProcess_Commission(t *testing.T) {
	c := NewConverter(nil, nil)
	state := LedgerState{}.Open(d("1000"))

	state = c.Process(state, Block{Lines: []string{"02-Jan-24 COMMISSION 50.00 950.00"}})

	rec := state.Records[0]
	assertAmount(t, "50", rec.Debit, "debit")
	assertAmount(t, "950", rec.CalculatedBalance, "calc")
	assertAmount(t, "0", rec.Difference, "difference")
}

func TestProcess_GenericTransfer(t *testing.T) {
	c := NewConverter(nil, nil)
	state := LedgerState{}.Open(d("1200"))

	state = c.Process(state, Block{Lines: []string{"03-Jan-24 Transfer 300.00 1500.00"}})

	rec := state.Records[0]
	assert.Equal(t, models.KindUnclassified, rec.Kind)
	assertAmount(t, "300", rec.Credit, "credit")
	assertAmount(t, "1500", rec.CalculatedBalance, "calc")
	assertAmount(t, "0", rec.Difference, "difference")
}

func TestConvert_PartiesFromContinuationLines(t *testing.T) {
	ledger := Convert([]string{
		"Opening balance 500.00",
		"04-Jan-24 Transfer 20.00 480.00",
		"Ft - Ben - MC DONALD S SHPK",
		"Ben: SOMEONE ELSE",
		"By Order Of: JOHN DOE",
		"05-Jan-24 By Order Of: ANCHOR ONLY 1.00 481.00",
	})

	require.Len(t, ledger.Records, 2)
	assert.Equal(t, "MC DONALD S SHPK", ledger.Records[0].Beneficiary)
	assert.Equal(t, "JOHN DOE", ledger.Records[0].OrderedBy)
	assertAmount(t, "20", ledger.Records[0].Debit, "debit")
	assert.Equal(t,
		"04-Jan-24 Transfer 20.00 480.00 | Ft - Ben - MC DONALD S SHPK | Ben: SOMEONE ELSE | By Order Of: JOHN DOE",
		ledger.Records[0].Description)

	assert.Empty(t, ledger.Records[1].OrderedBy, "anchor line is not scanned for parties")
}

func TestConvert_ConsistentDocumentReconciles(t *testing.T) {
	lines := []string{
		"STATEMENT",
		"01-Mar-24 OPENING BALANCE 10,000.00",
		"02-Mar-24 POS SETTLEMENT 1,250.40 11,250.40",
		"03-Mar-24 COMMISSION 12.51 11,237.89",
		"04-Mar-24 CASH WITHDRAWAL 2,000.00 9,237.89",
		"05-Mar-24 Cash Deposit 500.00 9,737.89",
		"06-Mar-24 Transfer 737.89 9,000.00",
		"Beneficiary: LANDLORD",
		"07-Mar-24 Incoming 1,000.00 10,000.00",
		"By order of ACME",
	}

	ledger := Convert(lines)
	require.Len(t, ledger.Records, 6)

	prev := ledger.Opening.CalculatedBalance.Decimal
	for i, rec := range ledger.Records {
		assert.False(t, rec.Debit.Valid && rec.Credit.Valid, "record %d has debit and credit", i)
		assertAmount(t, "0", rec.Difference, "difference")

		want := prev
		if rec.Debit.Valid {
			want = want.Sub(rec.Debit.Decimal)
		}
		if rec.Credit.Valid {
			want = want.Add(rec.Credit.Decimal)
		}
		assert.True(t, want.Equal(rec.CalculatedBalance.Decimal), "record %d balance identity", i)
		prev = rec.CalculatedBalance.Decimal
	}

	assert.Equal(t, models.KindCashDeposit, ledger.Records[3].Kind)
	assertAmount(t, "737.89", ledger.Records[4].Debit, "transfer debit")
	assert.Equal(t, "ACME", ledger.Records[5].OrderedBy)
}

func TestConvert_WrongStatedBalanceDoesNotPropagate(t *testing.T) {
	ledger := Convert([]string{
		"Opening Balance 100.00",
		"02-Jan-24 SETTLEMENT 10.00 999.00",
		"03-Jan-24 SETTLEMENT 10.00 120.00",
	})

	assertAmount(t, "-889", ledger.Records[0].Difference, "bad row difference")
	assertAmount(t, "110", ledger.Records[0].CalculatedBalance, "bad row calc")
	assertAmount(t, "0", ledger.Records[1].Difference, "next row difference")
}

func TestConvert_Idempotent(t *testing.T) {
	lines := []string{
		"01-Jan-24 OPENING BALANCE 1,000.00",
		"02-Jan-24 SETTLEMENT 200.00 1,200.00",
		"03-Jan-24 Transfer 300.00 1500.00",
		"Ft - By Order Of X",
	}

	first := Convert(lines)
	second := Convert(lines)
	assert.Equal(t, first, second)
	assert.Equal(t, first.Rows(), second.Rows())
}

func TestConvert_NoBaselineFlagsUnreconciled(t *testing.T) {
	ledger := Convert([]string{
		"02-Jan-24 Transfer 10.00",
		"03-Jan-24 Transfer 10.00 510.00",
		"04-Jan-24 Nothing here",
	})

	require.Len(t, ledger.Records, 3)
	assert.Nil(t, ledger.Opening)
	assert.True(t, ledger.Records[0].Unreconciled)
	assertAmount(t, "510", ledger.Records[1].CalculatedBalance, "seeded")
	assertAmount(t, "510", ledger.Records[2].CalculatedBalance, "carried")
	assert.False(t, ledger.Records[2].Debit.Valid)
	assert.False(t, ledger.Records[2].Credit.Valid)
}

func TestConverter_Logging(t *testing.T) {
	logger := logging.NewMockLogger()
	c := NewConverter(logger, textutils.DefaultPartyExtractor())

	c.Convert([]string{
		"Opening Balance 100.00",
		"Opening Balance 200.00",
		"02-Jan-24 SETTLEMENT 10.00 999.00",
	})

	assert.True(t, logger.HasEntry("WARN", "Resetting running balance to repeated opening balance"))
	assert.True(t, logger.HasEntry("WARN", "Calculated balance differs from statement"))
	assert.True(t, logger.HasEntry("INFO", "Statement converted"))
}
