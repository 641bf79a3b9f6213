package cash

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKey(t *testing.T) ed25519.PublicKey {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return pub
}

func TestCashAccount_RoundTrip(t *testing.T) {
	expected := &CashAccount{
		AccountType:        AccountTypeCash,
		Authority:          generateKey(t),
		State:              CashStateRedeeming,
		Amount:             1000,
		FeeBps:             250,
		NetworkFee:         5,
		BaseFeeToRedeem:    10,
		RentFeeToRedeem:    2039280,
		RemainingAmount:    750,
		DistributionType:   DistributionTypeEqual,
		Owner:              generateKey(t),
		Mint:               generateKey(t),
		TotalRedemptions:   1,
		MaxNumRedemptions:  4,
		MinAmount:          1,
		FingerprintEnabled: true,
		PassKey:            generateKey(t),
		TotalWeightPpm:     0,
	}

	marshalled := expected.Marshal()
	require.Len(t, marshalled, CashAccountSize)

	var actual CashAccount
	require.NoError(t, actual.Unmarshal(marshalled))
	assert.Equal(t, expected, &actual)

	// Serialization is idempotent
	assert.Equal(t, marshalled, actual.Marshal())
}

func TestCashAccount_RoundTripWithoutPassKey(t *testing.T) {
	expected := &CashAccount{
		AccountType:       AccountTypeCash,
		Authority:         generateKey(t),
		State:             CashStateInitialized,
		Amount:            500,
		DistributionType:  DistributionTypeRandom,
		Owner:             generateKey(t),
		Mint:              generateKey(t),
		MaxNumRedemptions: 2,
		MinAmount:         10,
	}

	marshalled := expected.Marshal()
	require.Len(t, marshalled, CashAccountSize)

	var actual CashAccount
	require.NoError(t, actual.Unmarshal(marshalled))
	assert.Nil(t, actual.PassKey)
	assert.Equal(t, expected, &actual)
	assert.Equal(t, marshalled, actual.Marshal())
}

func TestCashAccount_InvalidData(t *testing.T) {
	var account CashAccount
	assert.Equal(t, ErrInvalidAccountData, account.Unmarshal(make([]byte, CashAccountSize-1)))

	data := make([]byte, CashAccountSize)
	data[0] = uint8(AccountTypeRedemption)
	assert.Equal(t, ErrInvalidAccountType, account.Unmarshal(data))
}

func TestCashAccount_IsFullyRedeemed(t *testing.T) {
	account := &CashAccount{
		Amount:            100,
		RemainingAmount:   100,
		MinAmount:         1,
		TotalRedemptions:  0,
		MaxNumRedemptions: 4,
	}
	assert.False(t, account.IsFullyRedeemed())

	account.TotalRedemptions = 4
	assert.True(t, account.IsFullyRedeemed())

	account.TotalRedemptions = 2
	account.RemainingAmount = 0
	assert.True(t, account.IsFullyRedeemed())

	// Too little left to cover another minimum claim
	account.RemainingAmount = 10
	account.MinAmount = 25
	assert.True(t, account.IsFullyRedeemed())
}

func TestCashLinkAccount_RoundTrip(t *testing.T) {
	lastRedeemedAt := uint64(1700000000)
	expected := &CashLinkAccount{
		AccountType:       AccountTypeCash,
		State:             CashLinkStateRedeeming,
		Amount:            1000,
		FeeBps:            100,
		FixedFee:          5,
		FeeToRedeem:       10,
		RemainingAmount:   500,
		DistributionType:  DistributionTypeFixed,
		Sender:            generateKey(t),
		LastRedeemedAt:    &lastRedeemedAt,
		Mint:              generateKey(t),
		Authority:         generateKey(t),
		TotalRedemptions:  1,
		MaxNumRedemptions: 2,
	}

	marshalled := expected.Marshal()
	require.Len(t, marshalled, CashLinkAccountSize)

	var actual CashLinkAccount
	require.NoError(t, actual.Unmarshal(marshalled))
	assert.Nil(t, actual.CanceledAt)
	assert.Equal(t, expected, &actual)
	assert.Equal(t, marshalled, actual.Marshal())
}

func TestCashLinkAccount_NativeMint(t *testing.T) {
	expected := &CashLinkAccount{
		AccountType: AccountTypeCash,
		State:       CashLinkStateInitialized,
		Amount:      250,
		Sender:      generateKey(t),
		Authority:   generateKey(t),
	}

	var actual CashLinkAccount
	require.NoError(t, actual.Unmarshal(expected.Marshal()))
	assert.Nil(t, actual.Mint)
}

func TestRedemptionAccount_RoundTrip(t *testing.T) {
	expected := &RedemptionAccount{
		AccountType: AccountTypeRedemption,
		CashLink:    generateKey(t),
		Wallet:      generateKey(t),
		Amount:      250,
		RedeemedAt:  1700000000,
		Bump:        254,
	}

	marshalled := expected.Marshal()
	require.Len(t, marshalled, RedemptionAccountSize)

	var actual RedemptionAccount
	require.NoError(t, actual.Unmarshal(marshalled))
	assert.Equal(t, expected, &actual)
	assert.Equal(t, marshalled, actual.Marshal())
}

func TestFingerprintAccount_RoundTrip(t *testing.T) {
	expected := &FingerprintAccount{
		AccountType: AccountTypeFingerprint,
		Bump:        255,
	}

	marshalled := expected.Marshal()
	require.Len(t, marshalled, FingerprintAccountSize)

	var actual FingerprintAccount
	require.NoError(t, actual.Unmarshal(marshalled))
	assert.Equal(t, expected, &actual)
	assert.Equal(t, marshalled, actual.Marshal())
}
