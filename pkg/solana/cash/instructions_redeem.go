package cash

import (
	"crypto/ed25519"

	"github.com/cash-payments/cash-sdk/pkg/solana"
)

type RedeemInstructionArgs struct {
	CashBump        uint8
	CashReference   string
	RedemptionBump  uint8
	FingerprintBump *uint8
	ReferrerFeeBps  *uint16
	RefereeFeeBps   *uint16
	WeightPpm       *uint32
}

type RedeemInstructionAccounts struct {
	Authority      ed25519.PublicKey
	Wallet         ed25519.PublicKey
	FeeToken       ed25519.PublicKey
	CashLink       ed25519.PublicKey
	Redemption     ed25519.PublicKey
	PassKey        ed25519.PublicKey // required signer when the link is locked
	OwnerToken     ed25519.PublicKey
	FeePayer       ed25519.PublicKey
	FeePayerToken  ed25519.PublicKey
	VaultToken     ed25519.PublicKey
	RecipientToken ed25519.PublicKey
	Mint           ed25519.PublicKey
	ReferralWallet ed25519.PublicKey // optional, paired with ReferralToken
	ReferralToken  ed25519.PublicKey
	Fingerprint    ed25519.PublicKey // optional anti-replay marker
}

// NewRedeemInstruction builds the redeem instruction. The account list is
// input dependent: the pass key, referral pair, and fingerprint marker are
// appended only when present, and the program decodes positionally against
// the same presence rules.
func NewRedeemInstruction(
	program ed25519.PublicKey,
	accounts *RedeemInstructionAccounts,
	args *RedeemInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte,
		1+ // discriminant
			1+ // cash_bump
			4+len(args.CashReference)+ // cash_reference
			1+ // redemption_bump
			optionalUint8Size(args.FingerprintBump)+ // fingerprint_bump
			optionalUint16Size(args.ReferrerFeeBps)+ // referrer_fee_bps
			optionalUint16Size(args.RefereeFeeBps)+ // referee_fee_bps
			optionalUint32Size(args.WeightPpm), // weight_ppm
	)

	putCashInstruction(data, CashInstructionRedeem, &offset)
	putUint8(data, args.CashBump, &offset)
	putString(data, args.CashReference, &offset)
	putUint8(data, args.RedemptionBump, &offset)
	putOptionalUint8(data, args.FingerprintBump, &offset)
	putOptionalUint16(data, args.ReferrerFeeBps, &offset)
	putOptionalUint16(data, args.RefereeFeeBps, &offset)
	putOptionalUint32(data, args.WeightPpm, &offset)

	metas := []solana.AccountMeta{
		{
			PublicKey:  accounts.Authority,
			IsWritable: false,
			IsSigner:   true,
		},
		{
			PublicKey:  accounts.Wallet,
			IsWritable: false,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.FeeToken,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.CashLink,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.Redemption,
			IsWritable: true,
			IsSigner:   false,
		},
	}
	if accounts.PassKey != nil {
		metas = append(metas, solana.AccountMeta{
			PublicKey:  accounts.PassKey,
			IsWritable: false,
			IsSigner:   true,
		})
	}
	metas = append(metas,
		solana.AccountMeta{
			PublicKey:  accounts.OwnerToken,
			IsWritable: true,
			IsSigner:   false,
		},
		solana.AccountMeta{
			PublicKey:  accounts.FeePayer,
			IsWritable: true,
			IsSigner:   true,
		},
		solana.AccountMeta{
			PublicKey:  accounts.FeePayerToken,
			IsWritable: true,
			IsSigner:   false,
		},
		solana.AccountMeta{
			PublicKey:  accounts.VaultToken,
			IsWritable: true,
			IsSigner:   false,
		},
		solana.AccountMeta{
			PublicKey:  accounts.RecipientToken,
			IsWritable: true,
			IsSigner:   false,
		},
		solana.AccountMeta{
			PublicKey:  accounts.Mint,
			IsWritable: false,
			IsSigner:   false,
		},
		solana.AccountMeta{
			PublicKey:  SYSVAR_CLOCK_PUBKEY,
			IsWritable: false,
			IsSigner:   false,
		},
		solana.AccountMeta{
			PublicKey:  SYSVAR_RENT_PUBKEY,
			IsWritable: false,
			IsSigner:   false,
		},
		solana.AccountMeta{
			PublicKey:  SYSVAR_SLOT_HASHES_PUBKEY,
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
		solana.AccountMeta{
			PublicKey:  SYSTEM_PROGRAM_ID,
			IsWritable: false,
			IsSigner:   false,
		},
	)
	if accounts.ReferralWallet != nil {
		metas = append(metas,
			solana.AccountMeta{
				PublicKey:  accounts.ReferralWallet,
				IsWritable: false,
				IsSigner:   false,
			},
			solana.AccountMeta{
				PublicKey:  accounts.ReferralToken,
				IsWritable: true,
				IsSigner:   false,
			},
		)
	}
	if accounts.Fingerprint != nil {
		metas = append(metas, solana.AccountMeta{
			PublicKey:  accounts.Fingerprint,
			IsWritable: true,
			IsSigner:   false,
		})
	}

	return solana.Instruction{
		Program:  program,
		Data:     data,
		Accounts: metas,
	}
}

func optionalUint8Size(v *uint8) int {
	if v == nil {
		return 1
	}
	return 2
}

func optionalUint16Size(v *uint16) int {
	if v == nil {
		return 1
	}
	return 3
}

func optionalUint32Size(v *uint32) int {
	if v == nil {
		return 1
	}
	return 5
}
