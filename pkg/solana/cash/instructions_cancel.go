package cash

import (
	"crypto/ed25519"

	"github.com/cash-payments/cash-sdk/pkg/solana"
)

type CancelInstructionArgs struct {
	CashBump      uint8
	CashReference string
}

type CancelInstructionAccounts struct {
	Authority  ed25519.PublicKey
	CashLink   ed25519.PublicKey
	OwnerToken ed25519.PublicKey
	FeePayer   ed25519.PublicKey
	VaultToken ed25519.PublicKey
	Mint       ed25519.PublicKey
}

func NewCancelInstruction(
	program ed25519.PublicKey,
	accounts *CancelInstructionAccounts,
	args *CancelInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte,
		1+ // discriminant
			1+ // cash_bump
			4+len(args.CashReference), // cash_reference
	)

	putCashInstruction(data, CashInstructionCancel, &offset)
	putUint8(data, args.CashBump, &offset)
	putString(data, args.CashReference, &offset)

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
				PublicKey:  accounts.OwnerToken,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.FeePayer,
				IsWritable: true,
				IsSigner:   true,
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
