package cash

import (
	"crypto/ed25519"

	"github.com/cash-payments/cash-sdk/pkg/solana"
)

type InitCashLinkInstructionArgs struct {
	Amount             uint64
	FeeBps             uint16
	NetworkFee         uint64
	BaseFeeToRedeem    uint64
	RentFeeToRedeem    uint64
	CashBump           uint8
	CashReference      string
	DistributionType   DistributionType
	MaxNumRedemptions  uint16
	MinAmount          *uint64
	FingerprintEnabled bool
}

type InitCashLinkInstructionAccounts struct {
	Authority  ed25519.PublicKey
	Owner      ed25519.PublicKey
	FeePayer   ed25519.PublicKey
	CashLink   ed25519.PublicKey
	PassKey    ed25519.PublicKey // optional lock signer key
	Mint       ed25519.PublicKey
	VaultToken ed25519.PublicKey
	OwnerToken ed25519.PublicKey
}

func NewInitCashLinkInstruction(
	program ed25519.PublicKey,
	accounts *InitCashLinkInstructionAccounts,
	args *InitCashLinkInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte,
		1+ // discriminant
			8+ // amount
			2+ // fee_bps
			8+ // network_fee
			8+ // base_fee_to_redeem
			8+ // rent_fee_to_redeem
			1+ // cash_bump
			4+len(args.CashReference)+ // cash_reference
			1+ // distribution_type
			2+ // max_num_redemptions
			optionalUint64Size(args.MinAmount)+ // min_amount
			1+ // is_locked
			1, // fingerprint_enabled
	)

	putCashInstruction(data, CashInstructionInitCashLink, &offset)
	putUint64(data, args.Amount, &offset)
	putUint16(data, args.FeeBps, &offset)
	putUint64(data, args.NetworkFee, &offset)
	putUint64(data, args.BaseFeeToRedeem, &offset)
	putUint64(data, args.RentFeeToRedeem, &offset)
	putUint8(data, args.CashBump, &offset)
	putString(data, args.CashReference, &offset)
	putDistributionType(data, args.DistributionType, &offset)
	putUint16(data, args.MaxNumRedemptions, &offset)
	putOptionalUint64(data, args.MinAmount, &offset)
	putBool(data, accounts.PassKey != nil, &offset)
	putBool(data, args.FingerprintEnabled, &offset)

	metas := []solana.AccountMeta{
		{
			PublicKey:  accounts.Authority,
			IsWritable: false,
			IsSigner:   true,
		},
		{
			PublicKey:  accounts.Owner,
			IsWritable: false,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.FeePayer,
			IsWritable: true,
			IsSigner:   true,
		},
		{
			PublicKey:  accounts.CashLink,
			IsWritable: true,
			IsSigner:   false,
		},
	}
	if accounts.PassKey != nil {
		metas = append(metas, solana.AccountMeta{
			PublicKey:  accounts.PassKey,
			IsWritable: false,
			IsSigner:   false,
		})
	}
	metas = append(metas,
		solana.AccountMeta{
			PublicKey:  accounts.Mint,
			IsWritable: false,
			IsSigner:   false,
		},
		solana.AccountMeta{
			PublicKey:  accounts.VaultToken,
			IsWritable: true,
			IsSigner:   false,
		},
		solana.AccountMeta{
			PublicKey:  accounts.OwnerToken,
			IsWritable: true,
			IsSigner:   false,
		},
		solana.AccountMeta{
			PublicKey:  SYSVAR_RENT_PUBKEY,
			IsWritable: false,
			IsSigner:   false,
		},
		solana.AccountMeta{
			PublicKey:  SYSTEM_PROGRAM_ID,
			IsWritable: false,
			IsSigner:   false,
		},
		solana.AccountMeta{
			PublicKey:  SPL_TOKEN_PROGRAM_ID,
			IsWritable: false,
			IsSigner:   false,
		},
		solana.AccountMeta{
			PublicKey:  SPL_ASSOCIATED_TOKEN_ACCOUNT_PROGRAM_ID,
			IsWritable: false,
			IsSigner:   false,
		},
	)

	return solana.Instruction{
		Program:  program,
		Data:     data,
		Accounts: metas,
	}
}

func optionalUint64Size(v *uint64) int {
	if v == nil {
		return 1
	}
	return 9
}
