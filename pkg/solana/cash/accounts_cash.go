package cash

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

const (
	CashAccountSize = (1 + // account_type
		32 + // authority
		1 + // state
		8 + // amount
		2 + // fee_bps
		8 + // network_fee
		8 + // base_fee_to_redeem
		8 + // rent_fee_to_redeem
		8 + // remaining_amount
		1 + // distribution_type
		32 + // owner
		32 + // mint
		2 + // total_redemptions
		2 + // max_num_redemptions
		8 + // min_amount
		1 + // fingerprint_enabled
		33 + // pass_key
		4 + // total_weight_ppm
		4) // padding
)

// CashAccount is the escrow record of the current program revision. One
// account exists per claimable payment, seeded by a string reference.
type CashAccount struct {
	AccountType        AccountType
	Authority          ed25519.PublicKey
	State              CashState
	Amount             uint64
	FeeBps             uint16
	NetworkFee         uint64
	BaseFeeToRedeem    uint64
	RentFeeToRedeem    uint64
	RemainingAmount    uint64
	DistributionType   DistributionType
	Owner              ed25519.PublicKey
	Mint               ed25519.PublicKey
	TotalRedemptions   uint16
	MaxNumRedemptions  uint16
	MinAmount          uint64
	FingerprintEnabled bool
	PassKey            ed25519.PublicKey
	TotalWeightPpm     uint32
}

func (obj *CashAccount) Marshal() []byte {
	data := make([]byte, CashAccountSize)

	var offset int

	putAccountType(data, obj.AccountType, &offset)
	putKey(data, obj.Authority, &offset)
	putCashState(data, obj.State, &offset)
	putUint64(data, obj.Amount, &offset)
	putUint16(data, obj.FeeBps, &offset)
	putUint64(data, obj.NetworkFee, &offset)
	putUint64(data, obj.BaseFeeToRedeem, &offset)
	putUint64(data, obj.RentFeeToRedeem, &offset)
	putUint64(data, obj.RemainingAmount, &offset)
	putDistributionType(data, obj.DistributionType, &offset)
	putKey(data, obj.Owner, &offset)
	putKey(data, obj.Mint, &offset)
	putUint16(data, obj.TotalRedemptions, &offset)
	putUint16(data, obj.MaxNumRedemptions, &offset)
	putUint64(data, obj.MinAmount, &offset)
	putBool(data, obj.FingerprintEnabled, &offset)
	putOptionalKey(data, obj.PassKey, &offset)
	putUint32(data, obj.TotalWeightPpm, &offset)

	return data
}

func (obj *CashAccount) Unmarshal(data []byte) error {
	if len(data) != CashAccountSize {
		return ErrInvalidAccountData
	}

	var offset int

	getAccountType(data, &obj.AccountType, &offset)
	if obj.AccountType != AccountTypeCash {
		return ErrInvalidAccountType
	}

	getKey(data, &obj.Authority, &offset)
	getCashState(data, &obj.State, &offset)
	getUint64(data, &obj.Amount, &offset)
	getUint16(data, &obj.FeeBps, &offset)
	getUint64(data, &obj.NetworkFee, &offset)
	getUint64(data, &obj.BaseFeeToRedeem, &offset)
	getUint64(data, &obj.RentFeeToRedeem, &offset)
	getUint64(data, &obj.RemainingAmount, &offset)
	getDistributionType(data, &obj.DistributionType, &offset)
	getKey(data, &obj.Owner, &offset)
	getKey(data, &obj.Mint, &offset)
	getUint16(data, &obj.TotalRedemptions, &offset)
	getUint16(data, &obj.MaxNumRedemptions, &offset)
	getUint64(data, &obj.MinAmount, &offset)
	getBool(data, &obj.FingerprintEnabled, &offset)
	getOptionalKey(data, &obj.PassKey, &offset)
	getUint32(data, &obj.TotalWeightPpm, &offset)

	return nil
}

func (obj *CashAccount) IsInitialized() bool {
	return obj.State == CashStateInitialized
}

func (obj *CashAccount) IsRedeeming() bool {
	return obj.State == CashStateRedeeming
}

func (obj *CashAccount) IsRedeemed() bool {
	return obj.State == CashStateRedeemed
}

func (obj *CashAccount) IsCanceled() bool {
	return obj.State == CashStateCanceled
}

func (obj *CashAccount) IsLocked() bool {
	return obj.PassKey != nil
}

func (obj *CashAccount) MaxNumRedemptionsRemaining() uint16 {
	if obj.TotalRedemptions > obj.MaxNumRedemptions {
		return 0
	}
	return obj.MaxNumRedemptions - obj.TotalRedemptions
}

func (obj *CashAccount) MaxFeeToRedeem() uint64 {
	return obj.BaseFeeToRedeem + obj.RentFeeToRedeem
}

// IsFullyRedeemed mirrors the program's own exhaustion rule: no redemptions
// left, nothing left to pay out, or too little left to cover another minimum
// claim.
func (obj *CashAccount) IsFullyRedeemed() bool {
	if obj.TotalRedemptions == obj.MaxNumRedemptions {
		return true
	}
	if obj.RemainingAmount == 0 {
		return true
	}
	return obj.RemainingAmount < obj.MinAmount*uint64(obj.MaxNumRedemptionsRemaining())
}

func (obj *CashAccount) String() string {
	return fmt.Sprintf(
		"CashAccount{authority=%s,state=%s,amount=%d,remaining=%d,mint=%s,owner=%s,redemptions=%d/%d,distribution=%s}",
		base58.Encode(obj.Authority),
		obj.State.String(),
		obj.Amount,
		obj.RemainingAmount,
		base58.Encode(obj.Mint),
		base58.Encode(obj.Owner),
		obj.TotalRedemptions,
		obj.MaxNumRedemptions,
		obj.DistributionType.String(),
	)
}
