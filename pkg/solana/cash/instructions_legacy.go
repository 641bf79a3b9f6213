package cash

import (
	"crypto/ed25519"

	"github.com/cash-payments/cash-sdk/pkg/solana"
)

// Builders for the single-vault revision of the program. The escrow lives in
// a program-derived vault instead of the cash account's associated token
// account, and settlement pays the full remaining balance in one shot.

type LegacyInitCashLinkInstructionArgs struct {
	Amount       uint64
	Fee          uint64
	CashLinkBump uint8
	VaultBump    uint8
	Reference    string
}

type LegacyInitCashLinkInstructionAccounts struct {
	Authority  ed25519.PublicKey
	Payer      ed25519.PublicKey
	FeePayer   ed25519.PublicKey
	CashLink   ed25519.PublicKey
	VaultToken ed25519.PublicKey
	Mint       ed25519.PublicKey
}

func NewLegacyInitCashLinkInstruction(
	program ed25519.PublicKey,
	accounts *LegacyInitCashLinkInstructionAccounts,
	args *LegacyInitCashLinkInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte,
		1+ // discriminant
			8+ // amount
			8+ // fee
			1+ // cash_link_bump
			1+ // vault_bump
			4+len(args.Reference), // reference
	)

	putCashInstruction(data, LegacyInstructionInitCashLink, &offset)
	putUint64(data, args.Amount, &offset)
	putUint64(data, args.Fee, &offset)
	putUint8(data, args.CashLinkBump, &offset)
	putUint8(data, args.VaultBump, &offset)
	putString(data, args.Reference, &offset)

	return solana.Instruction{
		Program: program,

		Data: data,

		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Authority,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.Payer,
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
			{
				PublicKey:  accounts.VaultToken,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Mint,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SYSVAR_RENT_PUBKEY,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SPL_TOKEN_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}

type LegacySettleInstructionAccounts struct {
	Authority        ed25519.PublicKey
	DestinationToken ed25519.PublicKey
	FeeToken         ed25519.PublicKey
	VaultToken       ed25519.PublicKey
	CashLink         ed25519.PublicKey
	PayerToken       ed25519.PublicKey
	FeePayer         ed25519.PublicKey
	Mint             ed25519.PublicKey
}

func NewLegacySettleInstruction(
	program ed25519.PublicKey,
	accounts *LegacySettleInstructionAccounts,
) solana.Instruction {
	var offset int

	data := make([]byte, 1)

	putCashInstruction(data, LegacyInstructionSettle, &offset)

	return solana.Instruction{
		Program: program,

		Data: data,

		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Authority,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.DestinationToken,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.FeeToken,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.VaultToken,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.CashLink,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.PayerToken,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.FeePayer,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.Mint,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SYSVAR_CLOCK_PUBKEY,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SPL_TOKEN_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}

type LegacyCancelInstructionAccounts struct {
	Authority  ed25519.PublicKey
	CashLink   ed25519.PublicKey
	PayerToken ed25519.PublicKey
	VaultToken ed25519.PublicKey
	FeePayer   ed25519.PublicKey
	Mint       ed25519.PublicKey
}

func NewLegacyCancelInstruction(
	program ed25519.PublicKey,
	accounts *LegacyCancelInstructionAccounts,
) solana.Instruction {
	var offset int

	data := make([]byte, 1)

	putCashInstruction(data, LegacyInstructionCancel, &offset)

	return solana.Instruction{
		Program: program,

		Data: data,

		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Authority,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.CashLink,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.PayerToken,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.VaultToken,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.FeePayer,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.Mint,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SYSVAR_CLOCK_PUBKEY,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SPL_TOKEN_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}

type LegacyCloseInstructionAccounts struct {
	Authority ed25519.PublicKey
	CashLink  ed25519.PublicKey
	FeePayer  ed25519.PublicKey
}

func NewLegacyCloseInstruction(
	program ed25519.PublicKey,
	accounts *LegacyCloseInstructionAccounts,
) solana.Instruction {
	var offset int

	data := make([]byte, 1)

	putCashInstruction(data, LegacyInstructionClose, &offset)

	return solana.Instruction{
		Program: program,

		Data: data,

		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Authority,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.CashLink,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.FeePayer,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}
