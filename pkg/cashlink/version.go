package cashlink

import (
	"bytes"
	"crypto/ed25519"

	"github.com/cash-payments/cash-sdk/pkg/solana/cash"
	"github.com/cash-payments/cash-sdk/pkg/solana/token"
)

// ProtocolVersion selects which revision of the on-chain program a client
// targets. The revisions differ in seed conventions, account layouts, and
// close rules, so the choice is made once at client construction instead of
// per call.
type ProtocolVersion uint8

const (
	// VersionCash is the current revision: links seed by a string reference
	// and escrow in the link's associated token account.
	VersionCash ProtocolVersion = iota

	// VersionLegacy is the single-vault revision: links seed by a reference
	// public key and escrow in a program-derived vault.
	VersionLegacy
)

func (v ProtocolVersion) String() string {
	if v == VersionLegacy {
		return "legacy"
	}
	return "cash"
}

// Reference identifies a cash link in version-appropriate form. The current
// revision seeds by a UTF-8 string; the legacy revision by a reference
// keypair's public key.
type Reference struct {
	String string
	Key    ed25519.PublicKey
}

func StringReference(value string) Reference {
	return Reference{String: value}
}

func KeyReference(key ed25519.PublicKey) Reference {
	return Reference{Key: key}
}

// CashLink is the version-neutral view of an escrow record, decoded from
// either revision's layout.
type CashLink struct {
	Version ProtocolVersion
	Address ed25519.PublicKey
	Bump    uint8

	State              cash.CashState
	Authority          ed25519.PublicKey
	Owner              ed25519.PublicKey
	Mint               ed25519.PublicKey
	Amount             uint64
	RemainingAmount    uint64
	FeeBps             uint16
	NetworkFee         uint64
	BaseFeeToRedeem    uint64
	RentFeeToRedeem    uint64
	DistributionType   cash.DistributionType
	TotalRedemptions   uint16
	MaxNumRedemptions  uint16
	MinAmount          uint64
	FingerprintEnabled bool
	PassKey            ed25519.PublicKey
	TotalWeightPpm     uint32
}

func (l *CashLink) IsLocked() bool {
	return l.PassKey != nil
}

func (l *CashLink) IsNative() bool {
	return bytes.Equal(l.Mint, token.NativeMint)
}

// closeable reports whether the close rule of the link's revision permits
// reclaiming rent from its current state. The legacy revision also allows
// closing settled links; the current one requires a cancel first.
func (l *CashLink) closeable() bool {
	if l.Version == VersionLegacy {
		return l.State == cash.CashStateCanceled || l.State == cash.CashStateRedeemed
	}
	return l.State == cash.CashStateCanceled
}

func newCashLinkFromAccount(address ed25519.PublicKey, bump uint8, account *cash.CashAccount) *CashLink {
	return &CashLink{
		Version: VersionCash,
		Address: address,
		Bump:    bump,

		State:              account.State,
		Authority:          account.Authority,
		Owner:              account.Owner,
		Mint:               account.Mint,
		Amount:             account.Amount,
		RemainingAmount:    account.RemainingAmount,
		FeeBps:             account.FeeBps,
		NetworkFee:         account.NetworkFee,
		BaseFeeToRedeem:    account.BaseFeeToRedeem,
		RentFeeToRedeem:    account.RentFeeToRedeem,
		DistributionType:   account.DistributionType,
		TotalRedemptions:   account.TotalRedemptions,
		MaxNumRedemptions:  account.MaxNumRedemptions,
		MinAmount:          account.MinAmount,
		FingerprintEnabled: account.FingerprintEnabled,
		PassKey:            account.PassKey,
		TotalWeightPpm:     account.TotalWeightPpm,
	}
}

func newCashLinkFromLegacyAccount(address ed25519.PublicKey, bump uint8, account *cash.CashLinkAccount) (*CashLink, error) {
	var state cash.CashState
	switch account.State {
	case cash.CashLinkStateUninitialized:
		return nil, ErrCashLinkNotFound
	case cash.CashLinkStateInitialized:
		state = cash.CashStateInitialized
	case cash.CashLinkStateRedeemed:
		state = cash.CashStateRedeemed
	case cash.CashLinkStateRedeeming:
		state = cash.CashStateRedeeming
	case cash.CashLinkStateCanceled:
		state = cash.CashStateCanceled
	default:
		return nil, ErrCashLinkNotFound
	}

	mint := account.Mint
	if mint == nil {
		mint = token.NativeMint
	}

	return &CashLink{
		Version: VersionLegacy,
		Address: address,
		Bump:    bump,

		State:             state,
		Authority:         account.Authority,
		Owner:             account.Sender,
		Mint:              mint,
		Amount:            account.Amount,
		RemainingAmount:   account.RemainingAmount,
		FeeBps:            account.FeeBps,
		NetworkFee:        account.FixedFee,
		BaseFeeToRedeem:   account.FeeToRedeem,
		DistributionType:  account.DistributionType,
		TotalRedemptions:  account.TotalRedemptions,
		MaxNumRedemptions: account.MaxNumRedemptions,
	}, nil
}
