package cashlink

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cash-payments/cash-sdk/pkg/solana"
	"github.com/cash-payments/cash-sdk/pkg/solana/cash"
)

// mockClient serves canned account state and records how many times each
// method was hit, so tests can assert precondition checks run before
// network reads.
type mockClient struct {
	calls map[string]int

	accounts      map[string]solana.AccountInfo
	balances      map[string]uint64
	tokenBalances map[string]uint64
	rent          uint64
	blockhash     solana.Blockhash
	slot          uint64

	sent          [][]byte
	sendErr       error
	confirmations map[solana.Signature]bool
}

func newMockClient() *mockClient {
	var blockhash solana.Blockhash
	copy(blockhash[:], []byte("mock-blockhash-mock-blockhash-00"))

	return &mockClient{
		calls:         make(map[string]int),
		accounts:      make(map[string]solana.AccountInfo),
		balances:      make(map[string]uint64),
		tokenBalances: make(map[string]uint64),
		rent:          2_039_280,
		blockhash:     blockhash,
		slot:          42,
		confirmations: make(map[solana.Signature]bool),
	}
}

func (m *mockClient) networkCalls() (total int) {
	for _, count := range m.calls {
		total += count
	}
	return total
}

func (m *mockClient) GetAccountInfo(key ed25519.PublicKey, _ solana.Commitment) (solana.AccountInfo, error) {
	m.calls["GetAccountInfo"]++
	info, ok := m.accounts[string(key)]
	if !ok {
		return solana.AccountInfo{}, solana.ErrNoAccountInfo
	}
	return info, nil
}

func (m *mockClient) GetBalance(key ed25519.PublicKey) (uint64, error) {
	m.calls["GetBalance"]++
	return m.balances[string(key)], nil
}

func (m *mockClient) GetTokenAccountBalance(key ed25519.PublicKey) (uint64, uint64, error) {
	m.calls["GetTokenAccountBalance"]++
	return m.tokenBalances[string(key)], m.slot, nil
}

func (m *mockClient) GetTokenAccountsByOwner(_, _ ed25519.PublicKey) ([]ed25519.PublicKey, error) {
	m.calls["GetTokenAccountsByOwner"]++
	return nil, nil
}

func (m *mockClient) GetMinimumBalanceForRentExemption(_ uint64) (uint64, error) {
	m.calls["GetMinimumBalanceForRentExemption"]++
	return m.rent, nil
}

func (m *mockClient) GetLatestBlockhash() (solana.Blockhash, error) {
	m.calls["GetLatestBlockhash"]++
	return m.blockhash, nil
}

func (m *mockClient) GetLatestBlockhashAndContext() (solana.Blockhash, uint64, error) {
	m.calls["GetLatestBlockhashAndContext"]++
	return m.blockhash, m.slot, nil
}

func (m *mockClient) GetSlot(_ solana.Commitment) (uint64, error) {
	m.calls["GetSlot"]++
	return m.slot, nil
}

func (m *mockClient) GetSignatureStatus(_ solana.Signature, _ solana.Commitment) (*solana.SignatureStatus, error) {
	m.calls["GetSignatureStatus"]++
	return nil, nil
}

func (m *mockClient) GetSignatureStatuses(_ []solana.Signature) ([]*solana.SignatureStatus, error) {
	m.calls["GetSignatureStatuses"]++
	return nil, nil
}

func (m *mockClient) GetConfirmationStatus(sig solana.Signature, _ solana.Commitment) (bool, error) {
	m.calls["GetConfirmationStatus"]++
	return m.confirmations[sig], nil
}

func (m *mockClient) RequestAirdrop(_ ed25519.PublicKey, _ uint64, _ solana.Commitment) (solana.Signature, error) {
	m.calls["RequestAirdrop"]++
	return solana.Signature{}, nil
}

func (m *mockClient) SendRawTransaction(txnBytes []byte, _ solana.Commitment) (solana.Signature, error) {
	m.calls["SendRawTransaction"]++
	if m.sendErr != nil {
		return solana.Signature{}, m.sendErr
	}

	m.sent = append(m.sent, txnBytes)

	var txn solana.Transaction
	if err := txn.Unmarshal(txnBytes); err != nil {
		return solana.Signature{}, err
	}
	return txn.Signatures[0], nil
}

func (m *mockClient) SubmitTransaction(txn solana.Transaction, commitment solana.Commitment) (solana.Signature, error) {
	m.calls["SubmitTransaction"]++
	return m.SendRawTransaction(txn.Marshal(), commitment)
}

type testEnv struct {
	client *Client
	mock   *mockClient

	program   ed25519.PublicKey
	feeWallet ed25519.PublicKey
	authority ed25519.PublicKey
	owner     ed25519.PublicKey
	feePayer  ed25519.PublicKey
	wallet    ed25519.PublicKey
	mint      ed25519.PublicKey
}

func newTestEnv(t *testing.T, version ProtocolVersion) *testEnv {
	mock := newMockClient()

	env := &testEnv{
		mock:      mock,
		program:   generateKey(t),
		feeWallet: generateKey(t),
		authority: generateKey(t),
		owner:     generateKey(t),
		feePayer:  generateKey(t),
		wallet:    generateKey(t),
		mint:      generateKey(t),
	}
	env.client = NewClient(mock, ClientConfig{
		Program:   env.program,
		FeeWallet: env.feeWallet,
		Version:   version,
	})
	return env
}

func generateKey(t *testing.T) ed25519.PublicKey {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return pub
}

func (env *testEnv) newCashAccount(reference Reference) *cash.CashAccount {
	return &cash.CashAccount{
		AccountType:       cash.AccountTypeCash,
		Authority:         env.authority,
		State:             cash.CashStateInitialized,
		Amount:            1000,
		FeeBps:            250,
		NetworkFee:        10,
		BaseFeeToRedeem:   5,
		RentFeeToRedeem:   2,
		RemainingAmount:   1000,
		DistributionType:  cash.DistributionTypeEqual,
		Owner:             env.owner,
		Mint:              env.mint,
		TotalRedemptions:  0,
		MaxNumRedemptions: 4,
	}
}

// seedCashAccount plants a marshaled escrow record at the reference's
// derived address.
func (env *testEnv) seedCashAccount(t *testing.T, reference Reference, account *cash.CashAccount) {
	address, _, err := cash.GetCashAccountAddress(env.program, reference.String)
	require.NoError(t, err)

	env.mock.accounts[string(address)] = solana.AccountInfo{
		Data:  account.Marshal(),
		Owner: env.program,
	}
}

func TestClient_NewReference(t *testing.T) {
	env := newTestEnv(t, VersionCash)

	ref, err := env.client.NewReference()
	require.NoError(t, err)
	require.NotEmpty(t, ref.String)
	require.Nil(t, ref.Key)

	other, err := env.client.NewReference()
	require.NoError(t, err)
	require.NotEqual(t, ref.String, other.String)

	legacy := newTestEnv(t, VersionLegacy)
	legacyRef, err := legacy.client.NewReference()
	require.NoError(t, err)
	require.Empty(t, legacyRef.String)
	require.Len(t, []byte(legacyRef.Key), ed25519.PublicKeySize)
}

func TestClient_GetCashLink(t *testing.T) {
	env := newTestEnv(t, VersionCash)
	reference := StringReference("ref-lookup")

	_, err := env.client.GetCashLink(reference)
	require.Equal(t, ErrCashLinkNotFound, err)

	account := env.newCashAccount(reference)
	env.seedCashAccount(t, reference, account)

	link, err := env.client.GetCashLink(reference)
	require.NoError(t, err)
	require.Equal(t, VersionCash, link.Version)
	require.Equal(t, cash.CashStateInitialized, link.State)
	require.Equal(t, account.Amount, link.Amount)
	require.Equal(t, ed25519.PublicKey(env.owner), link.Owner)
	require.False(t, link.IsLocked())
	require.False(t, link.IsNative())
}

func TestClient_GetCashLink_InvalidOwner(t *testing.T) {
	env := newTestEnv(t, VersionCash)
	reference := StringReference("ref-owner")

	address, _, err := cash.GetCashAccountAddress(env.program, reference.String)
	require.NoError(t, err)

	env.mock.accounts[string(address)] = solana.AccountInfo{
		Data:  env.newCashAccount(reference).Marshal(),
		Owner: generateKey(t),
	}

	_, err = env.client.GetCashLink(reference)
	require.Equal(t, ErrInvalidOwner, err)
}

func TestClient_GetRedemption(t *testing.T) {
	env := newTestEnv(t, VersionCash)
	cashAccount := generateKey(t)

	_, err := env.client.GetRedemption(cashAccount, env.wallet)
	require.Equal(t, ErrRedemptionNotFound, err)

	address, bump, err := cash.GetRedemptionAccountAddress(env.program, cashAccount, env.wallet)
	require.NoError(t, err)

	record := &cash.RedemptionAccount{
		AccountType: cash.AccountTypeRedemption,
		CashLink:    cashAccount,
		Wallet:      env.wallet,
		Amount:      250,
		RedeemedAt:  1700000000,
		Bump:        bump,
	}
	env.mock.accounts[string(address)] = solana.AccountInfo{
		Data:  record.Marshal(),
		Owner: env.program,
	}

	loaded, err := env.client.GetRedemption(cashAccount, env.wallet)
	require.NoError(t, err)
	assert.EqualValues(t, 250, loaded.Amount)
	assert.EqualValues(t, env.wallet, loaded.Wallet)
}

func TestClient_GetFingerprint(t *testing.T) {
	env := newTestEnv(t, VersionCash)
	cashAccount := generateKey(t)
	fingerprint := generateKey(t)

	_, err := env.client.GetFingerprint(cashAccount, fingerprint)
	require.Equal(t, ErrFingerprintNotFound, err)

	address, bump, err := cash.GetFingerprintAccountAddress(env.program, cashAccount, fingerprint)
	require.NoError(t, err)

	record := &cash.FingerprintAccount{
		AccountType: cash.AccountTypeFingerprint,
		Bump:        bump,
	}
	env.mock.accounts[string(address)] = solana.AccountInfo{
		Data:  record.Marshal(),
		Owner: env.program,
	}

	loaded, err := env.client.GetFingerprint(cashAccount, fingerprint)
	require.NoError(t, err)
	assert.Equal(t, bump, loaded.Bump)
}

func TestClient_GetCashLink_GarbledData(t *testing.T) {
	env := newTestEnv(t, VersionCash)
	reference := StringReference("ref-garbled")

	address, _, err := cash.GetCashAccountAddress(env.program, reference.String)
	require.NoError(t, err)

	env.mock.accounts[string(address)] = solana.AccountInfo{
		Data:  []byte{1, 2, 3},
		Owner: env.program,
	}

	_, err = env.client.GetCashLink(reference)
	require.Equal(t, ErrCashLinkNotFound, err)
}
