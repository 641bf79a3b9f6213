package cashlink

import (
	"crypto/ed25519"
	"encoding/base64"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/cash-payments/cash-sdk/pkg/solana"
	address_lookup_table "github.com/cash-payments/cash-sdk/pkg/solana/addresslookuptable"
	computebudget "github.com/cash-payments/cash-sdk/pkg/solana/computebudget"
	"github.com/cash-payments/cash-sdk/pkg/solana/memo"
)

// TransactionMode selects the wire format of an assembled transaction.
type TransactionMode uint8

const (
	// TransactionModeLegacy is the original message format.
	TransactionModeLegacy TransactionMode = iota

	// TransactionModeVersioned is the v0 format with address lookup table
	// support.
	TransactionModeVersioned
)

// AssembleParams govern how an operation becomes a signable transaction.
type AssembleParams struct {
	Mode TransactionMode

	// AddressLookupTable compresses account references in versioned mode.
	// Ignored in legacy mode.
	AddressLookupTable ed25519.PublicKey

	// ComputeUnitLimit and ComputeUnitPrice prepend compute budget
	// instructions when non-zero.
	ComputeUnitLimit uint32
	ComputeUnitPrice uint64

	// Memo attaches an on-chain memo when non-empty.
	Memo string

	FeePayer ed25519.PublicKey

	// Signers sign alongside the operation's own ephemeral signers. Keys
	// for accounts the message does not mark as signers are rejected;
	// missing signers simply leave their signature slots empty for later
	// signing.
	Signers []ed25519.PrivateKey
}

// Payload is an assembled, partially signed transaction.
type Payload struct {
	Transaction solana.Transaction

	// Base64 is the wire form, ready for an RPC send or a wallet handoff.
	Base64 string

	Blockhash solana.Blockhash

	// Slot is the context slot the blockhash was observed at.
	Slot uint64
}

// Assemble turns an operation into a transaction: compute budget
// instructions first, then the operation's own, anchored to the latest
// blockhash and signed with every available key.
func (c *Client) Assemble(op *Operation, params *AssembleParams) (*Payload, error) {
	instructions := make([]solana.Instruction, 0, len(op.Instructions)+2)
	if params.ComputeUnitLimit > 0 {
		instructions = append(instructions, computebudget.SetComputeUnitLimit(params.ComputeUnitLimit))
	}
	if params.ComputeUnitPrice > 0 {
		instructions = append(instructions, computebudget.SetComputeUnitPrice(params.ComputeUnitPrice))
	}
	if params.Memo != "" {
		instructions = append(instructions, memo.Instruction(params.Memo))
	}
	instructions = append(instructions, op.Instructions...)

	var txn solana.Transaction
	if params.Mode == TransactionModeVersioned {
		tables, err := c.loadLookupTables(params.AddressLookupTable)
		if err != nil {
			return nil, err
		}
		txn = solana.NewVersionedTransaction(params.FeePayer, tables, instructions)
	} else {
		txn = solana.NewLegacyTransaction(params.FeePayer, instructions...)
	}

	blockhash, slot, err := c.sc.GetLatestBlockhashAndContext()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get latest blockhash")
	}
	txn.SetBlockhash(blockhash)

	signers := make([]ed25519.PrivateKey, 0, len(params.Signers)+len(op.Signers))
	signers = append(signers, params.Signers...)
	signers = append(signers, op.Signers...)
	if err := txn.Sign(signers...); err != nil {
		return nil, errors.Wrap(err, "failed to sign transaction")
	}

	return &Payload{
		Transaction: txn,
		Base64:      base64.StdEncoding.EncodeToString(txn.Marshal()),
		Blockhash:   blockhash,
		Slot:        slot,
	}, nil
}

func (c *Client) loadLookupTables(table ed25519.PublicKey) ([]solana.AddressLookupTable, error) {
	if table == nil {
		return nil, nil
	}

	info, err := c.sc.GetAccountInfo(table, c.conf.Commitment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get lookup table account")
	}

	var account address_lookup_table.AddressLookupTableAccount
	if err := account.Unmarshal(info.Data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal lookup table")
	}

	return []solana.AddressLookupTable{
		{
			PublicKey: table,
			Addresses: account.Addresses,
		},
	}, nil
}

// Send verifies every signature already on the payload and submits it. A
// zero signature slot is a missing co-signer, which the network would also
// reject, but a present-and-wrong signature is caught here before the
// transaction burns its blockhash.
func (c *Client) Send(payload *Payload) (solana.Signature, error) {
	messageBytes := payload.Transaction.Message.Marshal()

	var zero solana.Signature
	for i, signature := range payload.Transaction.Signatures {
		if signature == zero {
			continue
		}
		if !ed25519.Verify(payload.Transaction.Message.Accounts[i], messageBytes, signature[:]) {
			return zero, ErrInvalidSignature
		}
	}

	signature, err := c.sc.SendRawTransaction(payload.Transaction.Marshal(), c.conf.Commitment)
	if err != nil {
		return zero, errors.Wrap(err, "failed to send transaction")
	}

	c.log.WithFields(map[string]interface{}{
		"method":    "Send",
		"signature": base58.Encode(signature[:]),
	}).Debug("submitted transaction")

	return signature, nil
}

// Confirm reports whether a submitted signature reached the client's
// configured commitment.
func (c *Client) Confirm(signature solana.Signature) (bool, error) {
	return c.sc.GetConfirmationStatus(signature, c.conf.Commitment)
}
