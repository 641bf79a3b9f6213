package cash

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

const (
	CashLinkAccountSize = (1 + // account_type
		1 + // state
		8 + // amount
		2 + // fee_bps
		8 + // fixed_fee
		8 + // fee_to_redeem
		8 + // remaining_amount
		1 + // distribution_type
		32 + // sender
		9 + // last_redeemed_at
		9 + // canceled_at
		33 + // mint
		32 + // authority
		2 + // total_redemptions
		2) // max_num_redemptions
)

// CashLinkAccount is the escrow record of the single-vault revision. A nil
// mint denotes the native asset.
type CashLinkAccount struct {
	AccountType       AccountType
	State             CashLinkState
	Amount            uint64
	FeeBps            uint16
	FixedFee          uint64
	FeeToRedeem       uint64
	RemainingAmount   uint64
	DistributionType  DistributionType
	Sender            ed25519.PublicKey
	LastRedeemedAt    *uint64
	CanceledAt        *uint64
	Mint              ed25519.PublicKey
	Authority         ed25519.PublicKey
	TotalRedemptions  uint16
	MaxNumRedemptions uint16
}

func (obj *CashLinkAccount) Marshal() []byte {
	data := make([]byte, CashLinkAccountSize)

	var offset int

	putAccountType(data, obj.AccountType, &offset)
	putCashLinkState(data, obj.State, &offset)
	putUint64(data, obj.Amount, &offset)
	putUint16(data, obj.FeeBps, &offset)
	putUint64(data, obj.FixedFee, &offset)
	putUint64(data, obj.FeeToRedeem, &offset)
	putUint64(data, obj.RemainingAmount, &offset)
	putDistributionType(data, obj.DistributionType, &offset)
	putKey(data, obj.Sender, &offset)
	putOptionalUint64(data, obj.LastRedeemedAt, &offset)
	putOptionalUint64(data, obj.CanceledAt, &offset)
	putOptionalKey(data, obj.Mint, &offset)
	putKey(data, obj.Authority, &offset)
	putUint16(data, obj.TotalRedemptions, &offset)
	putUint16(data, obj.MaxNumRedemptions, &offset)

	return data
}

func (obj *CashLinkAccount) Unmarshal(data []byte) error {
	if len(data) != CashLinkAccountSize {
		return ErrInvalidAccountData
	}

	var offset int

	getAccountType(data, &obj.AccountType, &offset)
	getCashLinkState(data, &obj.State, &offset)
	getUint64(data, &obj.Amount, &offset)
	getUint16(data, &obj.FeeBps, &offset)
	getUint64(data, &obj.FixedFee, &offset)
	getUint64(data, &obj.FeeToRedeem, &offset)
	getUint64(data, &obj.RemainingAmount, &offset)
	getDistributionType(data, &obj.DistributionType, &offset)
	getKey(data, &obj.Sender, &offset)
	getOptionalUint64(data, &obj.LastRedeemedAt, &offset)
	getOptionalUint64(data, &obj.CanceledAt, &offset)
	getOptionalKey(data, &obj.Mint, &offset)
	getKey(data, &obj.Authority, &offset)
	getUint16(data, &obj.TotalRedemptions, &offset)
	getUint16(data, &obj.MaxNumRedemptions, &offset)

	return nil
}

func (obj *CashLinkAccount) IsInitialized() bool {
	return obj.State == CashLinkStateInitialized
}

func (obj *CashLinkAccount) IsRedeemed() bool {
	return obj.State == CashLinkStateRedeemed
}

func (obj *CashLinkAccount) IsCanceled() bool {
	return obj.State == CashLinkStateCanceled
}

func (obj *CashLinkAccount) IsFullyRedeemed() bool {
	return obj.TotalRedemptions == obj.MaxNumRedemptions || obj.RemainingAmount == 0
}

func (obj *CashLinkAccount) String() string {
	mint := "native"
	if obj.Mint != nil {
		mint = base58.Encode(obj.Mint)
	}
	return fmt.Sprintf(
		"CashLinkAccount{authority=%s,state=%s,amount=%d,remaining=%d,mint=%s,sender=%s,redemptions=%d/%d}",
		base58.Encode(obj.Authority),
		obj.State.String(),
		obj.Amount,
		obj.RemainingAmount,
		mint,
		base58.Encode(obj.Sender),
		obj.TotalRedemptions,
		obj.MaxNumRedemptions,
	)
}
