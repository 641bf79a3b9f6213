package cash

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCashAccountAddress(t *testing.T) {
	address, bump, err := GetCashAccountAddress(PROGRAM_ID, "ref-1234")
	require.NoError(t, err)

	// Derivation is a pure function of its seeds
	again, againBump, err := GetCashAccountAddress(PROGRAM_ID, "ref-1234")
	require.NoError(t, err)
	assert.Equal(t, address, again)
	assert.Equal(t, bump, againBump)

	// A single differing seed byte lands somewhere else entirely
	other, _, err := GetCashAccountAddress(PROGRAM_ID, "ref-1235")
	require.NoError(t, err)
	assert.NotEqual(t, address, other)
}

func TestGetCashAccountAddress_ProgramScoped(t *testing.T) {
	address, _, err := GetCashAccountAddress(PROGRAM_ID, "ref-1234")
	require.NoError(t, err)

	otherProgram, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	other, _, err := GetCashAccountAddress(otherProgram, "ref-1234")
	require.NoError(t, err)
	assert.NotEqual(t, address, other)
}

func TestGetRedemptionAccountAddress(t *testing.T) {
	cashAccount, _, err := GetCashAccountAddress(PROGRAM_ID, "ref-1234")
	require.NoError(t, err)

	walletA, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	walletB, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	addressA, _, err := GetRedemptionAccountAddress(PROGRAM_ID, cashAccount, walletA)
	require.NoError(t, err)
	addressB, _, err := GetRedemptionAccountAddress(PROGRAM_ID, cashAccount, walletB)
	require.NoError(t, err)

	assert.NotEqual(t, addressA, addressB)

	again, _, err := GetRedemptionAccountAddress(PROGRAM_ID, cashAccount, walletA)
	require.NoError(t, err)
	assert.Equal(t, addressA, again)
}

func TestGetFingerprintAccountAddress(t *testing.T) {
	cashAccount, _, err := GetCashAccountAddress(PROGRAM_ID, "ref-1234")
	require.NoError(t, err)

	fingerprint, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	address, _, err := GetFingerprintAccountAddress(PROGRAM_ID, cashAccount, fingerprint)
	require.NoError(t, err)

	again, _, err := GetFingerprintAccountAddress(PROGRAM_ID, cashAccount, fingerprint)
	require.NoError(t, err)
	assert.Equal(t, address, again)

	redemption, _, err := GetRedemptionAccountAddress(PROGRAM_ID, cashAccount, fingerprint)
	require.NoError(t, err)
	assert.NotEqual(t, address, redemption)
}

func TestGetLegacyAddresses(t *testing.T) {
	reference, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	cashLink, _, err := GetLegacyCashLinkAddress(PROGRAM_ID, reference)
	require.NoError(t, err)

	vault, _, err := GetLegacyVaultAddress(PROGRAM_ID, cashLink)
	require.NoError(t, err)
	assert.NotEqual(t, cashLink, vault)

	vaultAgain, _, err := GetLegacyVaultAddress(PROGRAM_ID, cashLink)
	require.NoError(t, err)
	assert.Equal(t, vault, vaultAgain)
}
