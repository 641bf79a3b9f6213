package cash

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

const (
	RedemptionAccountSize = (1 + // account_type
		32 + // cash_link
		32 + // wallet
		8 + // amount
		8 + // redeemed_at
		1) // bump
)

// RedemptionAccount records one successful claim. Its existence is the dedup
// guarantee for a wallet against a cash account.
type RedemptionAccount struct {
	AccountType AccountType
	CashLink    ed25519.PublicKey
	Wallet      ed25519.PublicKey
	Amount      uint64
	RedeemedAt  uint64
	Bump        uint8
}

func (obj *RedemptionAccount) Marshal() []byte {
	data := make([]byte, RedemptionAccountSize)

	var offset int

	putAccountType(data, obj.AccountType, &offset)
	putKey(data, obj.CashLink, &offset)
	putKey(data, obj.Wallet, &offset)
	putUint64(data, obj.Amount, &offset)
	putUint64(data, obj.RedeemedAt, &offset)
	putUint8(data, obj.Bump, &offset)

	return data
}

func (obj *RedemptionAccount) Unmarshal(data []byte) error {
	if len(data) != RedemptionAccountSize {
		return ErrInvalidAccountData
	}

	var offset int

	getAccountType(data, &obj.AccountType, &offset)
	if obj.AccountType != AccountTypeRedemption {
		return ErrInvalidAccountType
	}

	getKey(data, &obj.CashLink, &offset)
	getKey(data, &obj.Wallet, &offset)
	getUint64(data, &obj.Amount, &offset)
	getUint64(data, &obj.RedeemedAt, &offset)
	getUint8(data, &obj.Bump, &offset)

	return nil
}

func (obj *RedemptionAccount) String() string {
	return fmt.Sprintf(
		"RedemptionAccount{cash_link=%s,wallet=%s,amount=%d,redeemed_at=%d,bump=%d}",
		base58.Encode(obj.CashLink),
		base58.Encode(obj.Wallet),
		obj.Amount,
		obj.RedeemedAt,
		obj.Bump,
	)
}
