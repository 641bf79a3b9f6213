package cash

import (
	"crypto/ed25519"

	"github.com/cash-payments/cash-sdk/pkg/solana"
)

var (
	CashPrefix        = []byte("cash")
	VaultPrefix       = []byte("vault")
	RedemptionPrefix  = []byte("redeem")
	FingerprintPrefix = []byte("fingerprint")
)

// GetCashAccountAddress derives the cash account for a string reference. The
// reference seed is the raw UTF-8 bytes, not a length-prefixed encoding.
func GetCashAccountAddress(programID ed25519.PublicKey, reference string) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		programID,
		CashPrefix,
		[]byte(reference),
	)
}

// GetRedemptionAccountAddress derives the per-wallet redemption marker for a
// cash account.
func GetRedemptionAccountAddress(programID, cashAccount, wallet ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		programID,
		RedemptionPrefix,
		cashAccount,
		wallet,
	)
}

// GetFingerprintAccountAddress derives the anti-replay marker for a
// fingerprint key against a cash account.
func GetFingerprintAccountAddress(programID, cashAccount, fingerprint ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		programID,
		FingerprintPrefix,
		cashAccount,
		fingerprint,
	)
}

// GetLegacyCashLinkAddress derives a cash link account for the single-vault
// revision, which seeds by a reference keypair's public key instead of a
// string.
func GetLegacyCashLinkAddress(programID, reference ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		programID,
		CashPrefix,
		reference,
	)
}

// GetLegacyVaultAddress derives the escrow token account owned by a legacy
// cash link. The current revision keeps escrow in the cash account's
// associated token account instead.
func GetLegacyVaultAddress(programID, cashLink ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		programID,
		VaultPrefix,
		cashLink,
	)
}
