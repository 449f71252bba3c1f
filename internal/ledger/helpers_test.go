package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/stmt-ledger/internal/models"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func nd(s string) decimal.NullDecimal {
	return models.Some(d(s))
}

func assertAmount(t *testing.T, want string, got decimal.NullDecimal, field string) {
	t.Helper()
	require.True(t, got.Valid, "%s should be set", field)
	assert.True(t, d(want).Equal(got.Decimal), "%s = %s, want %s", field, got.Decimal, want)
}
