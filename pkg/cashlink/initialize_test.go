package cashlink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cash-payments/cash-sdk/pkg/solana/cash"
	"github.com/cash-payments/cash-sdk/pkg/solana/token"
)

func (env *testEnv) initializeParams(reference Reference) *InitializeParams {
	return &InitializeParams{
		Reference:         reference,
		Authority:         env.authority,
		Owner:             env.owner,
		FeePayer:          env.feePayer,
		Mint:              env.mint,
		Amount:            1000,
		FeeBps:            250,
		NetworkFee:        10,
		BaseFeeToRedeem:   5,
		RentFeeToRedeem:   2,
		DistributionType:  cash.DistributionTypeEqual,
		MaxNumRedemptions: 4,
	}
}

func TestInitializeCashLink(t *testing.T) {
	env := newTestEnv(t, VersionCash)
	reference := StringReference("ref-init")

	op, err := env.client.InitializeCashLink(env.initializeParams(reference))
	require.NoError(t, err)

	require.Len(t, op.Instructions, 1)
	require.Empty(t, op.Signers)

	instruction := op.Instructions[0]
	assert.Equal(t, env.program, instruction.Program)
	assert.EqualValues(t, cash.CashInstructionInitCashLink, instruction.Data[0])
	assert.Len(t, instruction.Accounts, 11)

	address, _, err := cash.GetCashAccountAddress(env.program, reference.String)
	require.NoError(t, err)
	vault, err := token.GetAssociatedAccount(address, env.mint)
	require.NoError(t, err)

	assert.EqualValues(t, env.authority, instruction.Accounts[0].PublicKey)
	assert.True(t, instruction.Accounts[0].IsSigner)
	assert.EqualValues(t, address, instruction.Accounts[3].PublicKey)
	assert.EqualValues(t, vault, instruction.Accounts[6].PublicKey)
}

func TestInitializeCashLink_Locked(t *testing.T) {
	env := newTestEnv(t, VersionCash)

	params := env.initializeParams(StringReference("ref-locked"))
	params.PassKey = generateKey(t)

	op, err := env.client.InitializeCashLink(params)
	require.NoError(t, err)

	require.Len(t, op.Instructions, 1)
	instruction := op.Instructions[0]
	assert.Len(t, instruction.Accounts, 12)
	assert.EqualValues(t, params.PassKey, instruction.Accounts[4].PublicKey)
}

func TestInitializeCashLink_Native(t *testing.T) {
	env := newTestEnv(t, VersionCash)

	params := env.initializeParams(StringReference("ref-native"))
	params.Mint = token.NativeMint

	op, err := env.client.InitializeCashLink(params)
	require.NoError(t, err)

	// create, fund, initialize, sync, program instruction, close
	require.Len(t, op.Instructions, 6)
	require.Len(t, op.Signers, 1)

	assert.EqualValues(t, cash.CashInstructionInitCashLink, op.Instructions[4].Data[0])

	closeInstruction := op.Instructions[5]
	assert.Equal(t, token.ProgramKey, closeInstruction.Program)

	ephemeral := op.Signers[0].Public()
	assert.EqualValues(t, ephemeral, op.Instructions[5].Accounts[0].PublicKey)
	assert.EqualValues(t, env.feePayer, op.Instructions[5].Accounts[1].PublicKey)
}

func TestInitializeCashLink_Exists(t *testing.T) {
	env := newTestEnv(t, VersionCash)
	reference := StringReference("ref-exists")

	env.seedCashAccount(t, reference, env.newCashAccount(reference))

	_, err := env.client.InitializeCashLink(env.initializeParams(reference))
	require.Equal(t, ErrCashLinkExists, err)
}

func TestInitializeCashLink_Validation(t *testing.T) {
	env := newTestEnv(t, VersionCash)

	for _, tc := range []struct {
		name     string
		mutate   func(*InitializeParams)
		expected error
	}{
		{
			name:     "zero amount",
			mutate:   func(p *InitializeParams) { p.Amount = 0 },
			expected: ErrInvalidAmount,
		},
		{
			name:     "zero redemptions",
			mutate:   func(p *InitializeParams) { p.MaxNumRedemptions = 0 },
			expected: ErrInvalidNumberOfRedemptions,
		},
		{
			name: "fixed indivisible",
			mutate: func(p *InitializeParams) {
				p.DistributionType = cash.DistributionTypeFixed
				p.Amount = 1001
			},
			expected: ErrInvalidAmount,
		},
		{
			name: "random without min",
			mutate: func(p *InitializeParams) {
				p.DistributionType = cash.DistributionTypeRandom
			},
			expected: ErrMinAmountRequired,
		},
		{
			name: "random min too large",
			mutate: func(p *InitializeParams) {
				p.DistributionType = cash.DistributionTypeRandom
				min := uint64(2000)
				p.MinAmount = &min
			},
			expected: ErrMinAmountTooLarge,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			before := env.mock.networkCalls()

			params := env.initializeParams(StringReference("ref-invalid"))
			tc.mutate(params)

			_, err := env.client.InitializeCashLink(params)
			require.Equal(t, tc.expected, err)

			assert.Equal(t, before, env.mock.networkCalls())
		})
	}
}

func TestInitializeCashLink_Legacy(t *testing.T) {
	env := newTestEnv(t, VersionLegacy)

	params := env.initializeParams(KeyReference(generateKey(t)))

	op, err := env.client.InitializeCashLink(params)
	require.NoError(t, err)

	require.Len(t, op.Instructions, 1)
	instruction := op.Instructions[0]
	assert.Equal(t, env.program, instruction.Program)
	assert.Len(t, instruction.Accounts, 9)

	address, _, err := cash.GetLegacyCashLinkAddress(env.program, params.Reference.Key)
	require.NoError(t, err)
	vault, _, err := cash.GetLegacyVaultAddress(env.program, address)
	require.NoError(t, err)

	assert.EqualValues(t, address, instruction.Accounts[3].PublicKey)
	assert.EqualValues(t, vault, instruction.Accounts[4].PublicKey)
}
