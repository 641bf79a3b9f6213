package cashlink

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cash-payments/cash-sdk/pkg/solana"
	"github.com/cash-payments/cash-sdk/pkg/solana/cash"
	"github.com/cash-payments/cash-sdk/pkg/solana/token"
)

func TestCalculateFees(t *testing.T) {
	fees, err := CalculateFees(&FeeParameters{
		Amount:            1000,
		FeeBps:            250,
		NetworkFee:        10,
		BaseFeeToRedeem:   5,
		RentFeeToRedeem:   2,
		MaxNumRedemptions: 4,
		DistributionType:  cash.DistributionTypeEqual,
	})
	require.NoError(t, err)

	assert.EqualValues(t, 35, fees.PlatformFee)
	assert.EqualValues(t, 6, fees.PlatformFeePerRedemption)
	assert.EqualValues(t, 250, fees.PerRedemptionAmount)
	assert.EqualValues(t, 28, fees.TotalRedemptionFee)
	assert.EqualValues(t, 1063, fees.TotalRequiredFunding)
}

// Per-redemption amounts only apply to deterministic splits.
func TestCalculateFees_RandomSplit(t *testing.T) {
	fees, err := CalculateFees(&FeeParameters{
		Amount:            1000,
		FeeBps:            0,
		MaxNumRedemptions: 4,
		DistributionType:  cash.DistributionTypeRandom,
	})
	require.NoError(t, err)

	assert.EqualValues(t, 0, fees.PerRedemptionAmount)
	assert.EqualValues(t, 1000, fees.TotalRequiredFunding)
}

func TestCalculateFees_BpsFloor(t *testing.T) {
	fees, err := CalculateFees(&FeeParameters{
		Amount:            999,
		FeeBps:            1,
		MaxNumRedemptions: 1,
		DistributionType:  cash.DistributionTypeFixed,
	})
	require.NoError(t, err)

	// floor(999 * 1 / 10000) == 0
	assert.EqualValues(t, 0, fees.PlatformFee)
}

// Products near the uint64 ceiling must fail instead of wrapping.
func TestCalculateFees_Overflow(t *testing.T) {
	_, err := CalculateFees(&FeeParameters{
		Amount:            math.MaxUint64,
		FeeBps:            10_000,
		MaxNumRedemptions: 1,
		DistributionType:  cash.DistributionTypeFixed,
	})
	require.Error(t, err)
}

func TestCalculateFees_Invalid(t *testing.T) {
	_, err := CalculateFees(&FeeParameters{MaxNumRedemptions: 1})
	require.Equal(t, ErrInvalidAmount, err)

	_, err = CalculateFees(&FeeParameters{Amount: 1})
	require.Equal(t, ErrInvalidNumberOfRedemptions, err)
}

func TestWeightedClaimAmount(t *testing.T) {
	assert.EqualValues(t, 250, WeightedClaimAmount(1000, 250_000))
	assert.EqualValues(t, 1000, WeightedClaimAmount(1000, 1_000_000))
	assert.EqualValues(t, 0, WeightedClaimAmount(1000, 0))

	// floor rounding on indivisible shares
	assert.EqualValues(t, 333, WeightedClaimAmount(1000, 333_333))
}

func TestIsSufficientlyFunded(t *testing.T) {
	env := newTestEnv(t, VersionCash)
	reference := StringReference("ref-funding")
	env.seedCashAccount(t, reference, env.newCashAccount(reference))

	link, err := env.client.GetCashLink(reference)
	require.NoError(t, err)

	vault, err := token.GetAssociatedAccount(link.Address, link.Mint)
	require.NoError(t, err)

	seedVault := func(amount uint64) {
		account := token.Account{
			Mint:   link.Mint,
			Owner:  link.Address,
			Amount: amount,
			State:  token.AccountStateInitialized,
		}
		env.mock.accounts[string(vault)] = solana.AccountInfo{
			Owner: token.ProgramKey,
			Data:  account.Marshal(),
		}
	}

	seedVault(1062)
	funded, err := env.client.IsSufficientlyFunded(link)
	require.NoError(t, err)
	assert.False(t, funded)

	seedVault(1063)
	funded, err = env.client.IsSufficientlyFunded(link)
	require.NoError(t, err)
	assert.True(t, funded)
}

// Native escrow balances carry the rent-exempt minimum on top of the
// spendable amount, which does not count toward funding.
func TestIsSufficientlyFunded_Native(t *testing.T) {
	env := newTestEnv(t, VersionCash)
	reference := StringReference("ref-funding-native")

	account := env.newCashAccount(reference)
	account.Mint = token.NativeMint
	env.seedCashAccount(t, reference, account)

	link, err := env.client.GetCashLink(reference)
	require.NoError(t, err)

	vault, err := token.GetAssociatedAccount(link.Address, link.Mint)
	require.NoError(t, err)

	env.mock.balances[string(vault)] = env.mock.rent + 1062
	funded, err := env.client.IsSufficientlyFunded(link)
	require.NoError(t, err)
	assert.False(t, funded)

	env.mock.balances[string(vault)] = env.mock.rent + 1063
	funded, err = env.client.IsSufficientlyFunded(link)
	require.NoError(t, err)
	assert.True(t, funded)
}
