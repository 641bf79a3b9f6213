package cashlink

import (
	"crypto/ed25519"
	"crypto/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cash-payments/cash-sdk/pkg/solana"
	"github.com/cash-payments/cash-sdk/pkg/solana/cash"
)

// ClientConfig carries the deployment-specific identifiers a client needs.
// Program identifiers are injected here rather than read from package
// globals so deployments and test doubles can swap them.
type ClientConfig struct {
	// Program is the cash program id. Defaults to the mainnet deployment.
	Program ed25519.PublicKey

	// FeeWallet collects platform fees on redemption.
	FeeWallet ed25519.PublicKey

	// Version selects the targeted program revision. Defaults to the
	// current one.
	Version ProtocolVersion

	// Commitment used for account reads. Defaults to confirmed.
	Commitment solana.Commitment
}

// Client constructs cash link operations against a Solana network client.
// It only reads external state and builds local data structures, so
// concurrent use is safe.
type Client struct {
	log  *logrus.Entry
	sc   solana.Client
	conf ClientConfig
}

func NewClient(sc solana.Client, conf ClientConfig) *Client {
	if conf.Program == nil {
		conf.Program = cash.PROGRAM_ID
	}
	if conf.Commitment == (solana.Commitment{}) {
		conf.Commitment = solana.CommitmentConfirmed
	}

	return &Client{
		log: logrus.StandardLogger().WithFields(logrus.Fields{
			"type":    "cashlink/client",
			"version": conf.Version.String(),
		}),
		sc:   sc,
		conf: conf,
	}
}

// NewReference generates a fresh link reference in version-appropriate form.
func (c *Client) NewReference() (Reference, error) {
	if c.conf.Version == VersionLegacy {
		pub, _, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return Reference{}, err
		}
		return KeyReference(pub), nil
	}
	return StringReference(uuid.New().String()), nil
}

func (c *Client) deriveCashLinkAddress(reference Reference) (ed25519.PublicKey, uint8, error) {
	if c.conf.Version == VersionLegacy {
		return cash.GetLegacyCashLinkAddress(c.conf.Program, reference.Key)
	}
	return cash.GetCashAccountAddress(c.conf.Program, reference.String)
}
