package cash

import (
	"crypto/ed25519"

	"github.com/cash-payments/cash-sdk/pkg/solana"
)

type CloseInstructionAccounts struct {
	Authority   ed25519.PublicKey
	CashLink    ed25519.PublicKey
	Destination ed25519.PublicKey
}

func NewCloseInstruction(
	program ed25519.PublicKey,
	accounts *CloseInstructionAccounts,
) solana.Instruction {
	var offset int

	data := make([]byte, 1)

	putCashInstruction(data, CashInstructionClose, &offset)

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
				PublicKey:  accounts.Destination,
				IsWritable: true,
				IsSigner:   false,
			},
		},
	}
}
