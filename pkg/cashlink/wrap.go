package cashlink

import (
	"crypto/ed25519"
	"crypto/rand"

	"github.com/pkg/errors"

	"github.com/cash-payments/cash-sdk/pkg/solana"
	"github.com/cash-payments/cash-sdk/pkg/solana/system"
	"github.com/cash-payments/cash-sdk/pkg/solana/token"
)

// WrappedAccount is an ephemeral wrapped-SOL token account. Setup and
// Cleanup travel together so a builder cannot include the creation without
// the close-and-sweep: the account is created and funded by the fee payer,
// optionally loaded with extra lamports, and closed at the end of the same
// transaction with all lamports swept to the sweep destination.
type WrappedAccount struct {
	Account ed25519.PublicKey
	Signer  ed25519.PrivateKey
	Setup   []solana.Instruction
	Cleanup []solana.Instruction
}

// newWrappedAccount synthesizes an ephemeral wrapped account owned by owner.
// lamports beyond the rent-exempt minimum become wrapped token balance after
// the sync.
func (c *Client) newWrappedAccount(owner, feePayer, sweepTo ed25519.PublicKey, lamports uint64) (*WrappedAccount, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate ephemeral account")
	}

	rent, err := c.sc.GetMinimumBalanceForRentExemption(token.AccountSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get rent exemption minimum")
	}

	setup := []solana.Instruction{
		system.CreateAccount(feePayer, pub, token.ProgramKey, rent, token.AccountSize),
	}
	if lamports > 0 {
		setup = append(setup, system.Transfer(owner, pub, lamports))
	}
	setup = append(setup,
		token.InitializeAccount(pub, token.NativeMint, owner),
		token.SyncNative(pub),
	)

	return &WrappedAccount{
		Account: pub,
		Signer:  priv,
		Setup:   setup,
		Cleanup: []solana.Instruction{
			token.CloseAccount(pub, sweepTo, owner),
		},
	}, nil
}
