package cashlink

import (
	"crypto/ed25519"

	"github.com/cash-payments/cash-sdk/pkg/solana"
)

// Operation is an ordered instruction list plus the extra signers it
// requires (beyond the fee payer and authority the caller already holds).
// Builders either return a complete operation or fail before building
// anything; a partial list is never returned.
type Operation struct {
	Instructions []solana.Instruction
	Signers      []ed25519.PrivateKey
}

func (o *Operation) add(instructions ...solana.Instruction) {
	o.Instructions = append(o.Instructions, instructions...)
}

func (o *Operation) addSigner(signer ed25519.PrivateKey) {
	o.Signers = append(o.Signers, signer)
}
