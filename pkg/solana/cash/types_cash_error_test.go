package cash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cash-payments/cash-sdk/pkg/solana"
)

func TestFromCustomError(t *testing.T) {
	mapped, ok := FromCustomError(solana.CustomError(0))
	require.True(t, ok)
	assert.Equal(t, ErrorInvalidOwner, mapped)

	mapped, ok = FromCustomError(solana.CustomError(ErrorMaxRedemptionsReached))
	require.True(t, ok)
	assert.Equal(t, ErrorMaxRedemptionsReached, mapped)

	mapped, ok = FromCustomError(solana.CustomError(ErrorAccountNotCanceled))
	require.True(t, ok)
	assert.Equal(t, ErrorAccountNotCanceled, mapped)

	_, ok = FromCustomError(solana.CustomError(uint32(ErrorAccountNotCanceled) + 1))
	assert.False(t, ok)
}

func TestCashError_String(t *testing.T) {
	assert.NotEmpty(t, ErrorInvalidOwner.Error())
	assert.NotEqual(t, ErrorInvalidOwner.String(), ErrorMaxRedemptionsReached.String())
}
