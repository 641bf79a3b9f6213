package main

import (
	"crypto/ed25519"
	"flag"
	"fmt"
	"os"

	"github.com/mr-tron/base58"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/cash-payments/cash-sdk/pkg/cashlink"
	"github.com/cash-payments/cash-sdk/pkg/solana"
	"github.com/cash-payments/cash-sdk/pkg/solana/cash"
	"github.com/cash-payments/cash-sdk/pkg/solana/token"
)

// Config is sourced from the environment. Keys are kept because a redeem or
// cancel needs the authority to co-sign the assembled transaction.
type Config struct {
	LogLevel string `mapstructure:"log_level"`

	Endpoint  string `mapstructure:"endpoint"`
	Program   string `mapstructure:"program"`
	FeeWallet string `mapstructure:"fee_wallet"`

	AuthorityKey string `mapstructure:"authority_key"`
	FeePayerKey  string `mapstructure:"fee_payer_key"`

	Legacy bool `mapstructure:"legacy"`
}

var defaultConfig = Config{
	LogLevel: "info",
	Endpoint: "https://api.mainnet-beta.solana.com",
}

func init() {
	_ = viper.BindEnv("log_level", "LOG_LEVEL")
	_ = viper.BindEnv("endpoint", "SOLANA_ENDPOINT")
	_ = viper.BindEnv("program", "CASH_PROGRAM")
	_ = viper.BindEnv("fee_wallet", "CASH_FEE_WALLET")
	_ = viper.BindEnv("authority_key", "CASH_AUTHORITY_KEY")
	_ = viper.BindEnv("fee_payer_key", "CASH_FEE_PAYER_KEY")
	_ = viper.BindEnv("legacy", "CASH_LEGACY")
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		logrus.StandardLogger().WithError(err).Fatal("command failed")
	}
}

func run(args []string) error {
	config := defaultConfig
	if err := viper.Unmarshal(&config); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return err
	}
	logrus.StandardLogger().SetLevel(level)

	if len(args) == 0 {
		return fmt.Errorf("usage: cash <create|show|redeem|cancel|close> [flags]")
	}

	env, err := newEnv(config)
	if err != nil {
		return err
	}

	switch args[0] {
	case "create":
		return env.create(args[1:])
	case "show":
		return env.show(args[1:])
	case "redeem":
		return env.redeem(args[1:])
	case "cancel":
		return env.cancel(args[1:])
	case "close":
		return env.close(args[1:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

type env struct {
	client *cashlink.Client
	legacy bool

	authorityKey ed25519.PrivateKey
	feePayerKey  ed25519.PrivateKey
	authority    ed25519.PublicKey
	feePayer     ed25519.PublicKey
}

func newEnv(config Config) (*env, error) {
	authorityKey, err := decodeKey(config.AuthorityKey)
	if err != nil {
		return nil, fmt.Errorf("invalid authority key: %w", err)
	}
	feePayerKey, err := decodeKey(config.FeePayerKey)
	if err != nil {
		return nil, fmt.Errorf("invalid fee payer key: %w", err)
	}

	clientConfig := cashlink.ClientConfig{}
	if config.Program != "" {
		program, err := base58.Decode(config.Program)
		if err != nil {
			return nil, fmt.Errorf("invalid program id: %w", err)
		}
		clientConfig.Program = program
	}
	if config.FeeWallet != "" {
		feeWallet, err := base58.Decode(config.FeeWallet)
		if err != nil {
			return nil, fmt.Errorf("invalid fee wallet: %w", err)
		}
		clientConfig.FeeWallet = feeWallet
	}
	if config.Legacy {
		clientConfig.Version = cashlink.VersionLegacy
	}

	return &env{
		client:       cashlink.NewClient(solana.New(config.Endpoint), clientConfig),
		legacy:       config.Legacy,
		authorityKey: authorityKey,
		feePayerKey:  feePayerKey,
		authority:    authorityKey.Public().(ed25519.PublicKey),
		feePayer:     feePayerKey.Public().(ed25519.PublicKey),
	}, nil
}

func decodeKey(value string) (ed25519.PrivateKey, error) {
	if value == "" {
		return nil, fmt.Errorf("key not configured")
	}
	raw, err := base58.Decode(value)
	if err != nil {
		return nil, err
	}
	if len(raw) == ed25519.SeedSize {
		return ed25519.NewKeyFromSeed(raw), nil
	}
	if len(raw) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("unexpected key length %d", len(raw))
	}
	return ed25519.PrivateKey(raw), nil
}

func (e *env) reference(value string) (cashlink.Reference, error) {
	if e.legacy {
		key, err := base58.Decode(value)
		if err != nil {
			return cashlink.Reference{}, fmt.Errorf("invalid reference: %w", err)
		}
		return cashlink.KeyReference(key), nil
	}
	return cashlink.StringReference(value), nil
}

func (e *env) create(args []string) error {
	flags := flag.NewFlagSet("create", flag.ContinueOnError)
	owner := flags.String("owner", "", "link owner wallet")
	mint := flags.String("mint", "", "token mint, defaults to wrapped SOL")
	amount := flags.Uint64("amount", 0, "total escrow amount")
	feeBps := flags.Uint("fee-bps", 0, "platform fee in basis points")
	maxRedemptions := flags.Uint("max-redemptions", 1, "number of claims")
	distribution := flags.String("distribution", "fixed", "fixed|random|weighted|equal")
	if err := flags.Parse(args); err != nil {
		return err
	}

	ownerKey, err := base58.Decode(*owner)
	if err != nil {
		return fmt.Errorf("invalid owner: %w", err)
	}

	mintKey := token.NativeMint
	if *mint != "" {
		mintKey, err = base58.Decode(*mint)
		if err != nil {
			return fmt.Errorf("invalid mint: %w", err)
		}
	}

	distributionType, err := parseDistribution(*distribution)
	if err != nil {
		return err
	}

	reference, err := e.client.NewReference()
	if err != nil {
		return err
	}
	if e.legacy {
		fmt.Printf("reference: %s\n", base58.Encode(reference.Key))
	} else {
		fmt.Printf("reference: %s\n", reference.String)
	}

	op, err := e.client.InitializeCashLink(&cashlink.InitializeParams{
		Reference:         reference,
		Authority:         e.authority,
		Owner:             ownerKey,
		FeePayer:          e.feePayer,
		Mint:              mintKey,
		Amount:            *amount,
		FeeBps:            uint16(*feeBps),
		DistributionType:  distributionType,
		MaxNumRedemptions: uint16(*maxRedemptions),
	})
	if err != nil {
		return err
	}

	return e.submit(op)
}

func (e *env) show(args []string) error {
	flags := flag.NewFlagSet("show", flag.ContinueOnError)
	reference := flags.String("reference", "", "link reference")
	if err := flags.Parse(args); err != nil {
		return err
	}

	ref, err := e.reference(*reference)
	if err != nil {
		return err
	}

	link, err := e.client.GetCashLink(ref)
	if err != nil {
		return err
	}

	fmt.Printf("address:     %s\n", base58.Encode(link.Address))
	fmt.Printf("state:       %s\n", link.State)
	fmt.Printf("mint:        %s\n", base58.Encode(link.Mint))
	fmt.Printf("amount:      %d (remaining %d)\n", link.Amount, link.RemainingAmount)
	fmt.Printf("redemptions: %d/%d\n", link.TotalRedemptions, link.MaxNumRedemptions)

	funded, err := e.client.IsSufficientlyFunded(link)
	if err != nil {
		return err
	}
	fmt.Printf("funded:      %t\n", funded)
	return nil
}

func (e *env) redeem(args []string) error {
	flags := flag.NewFlagSet("redeem", flag.ContinueOnError)
	reference := flags.String("reference", "", "link reference")
	wallet := flags.String("wallet", "", "recipient wallet")
	if err := flags.Parse(args); err != nil {
		return err
	}

	walletKey, err := base58.Decode(*wallet)
	if err != nil {
		return fmt.Errorf("invalid wallet: %w", err)
	}

	ref, err := e.reference(*reference)
	if err != nil {
		return err
	}

	op, err := e.client.RedeemCashLink(&cashlink.RedeemParams{
		Reference: ref,
		Wallet:    walletKey,
		Authority: e.authority,
		FeePayer:  e.feePayer,
	})
	if err != nil {
		return err
	}

	return e.submit(op)
}

func (e *env) cancel(args []string) error {
	flags := flag.NewFlagSet("cancel", flag.ContinueOnError)
	reference := flags.String("reference", "", "link reference")
	alsoClose := flags.Bool("close", true, "close the link when possible")
	if err := flags.Parse(args); err != nil {
		return err
	}

	ref, err := e.reference(*reference)
	if err != nil {
		return err
	}

	params := &cashlink.CancelParams{
		Reference: ref,
		Authority: e.authority,
		FeePayer:  e.feePayer,
	}

	var op *cashlink.Operation
	if *alsoClose {
		op, err = e.client.CancelAndCloseCashLink(params)
	} else {
		op, err = e.client.CancelCashLink(params)
	}
	if err != nil {
		return err
	}

	return e.submit(op)
}

func (e *env) close(args []string) error {
	flags := flag.NewFlagSet("close", flag.ContinueOnError)
	reference := flags.String("reference", "", "link reference")
	if err := flags.Parse(args); err != nil {
		return err
	}

	ref, err := e.reference(*reference)
	if err != nil {
		return err
	}

	op, err := e.client.CloseCashLink(&cashlink.CloseParams{
		Reference:   ref,
		Authority:   e.authority,
		Destination: e.feePayer,
	})
	if err != nil {
		return err
	}

	return e.submit(op)
}

func (e *env) submit(op *cashlink.Operation) error {
	payload, err := e.client.Assemble(op, &cashlink.AssembleParams{
		FeePayer: e.feePayer,
		Signers:  []ed25519.PrivateKey{e.feePayerKey, e.authorityKey},
	})
	if err != nil {
		return err
	}

	signature, err := e.client.Send(payload)
	if err != nil {
		return err
	}

	fmt.Printf("signature: %s\n", signature.ToBase58())
	return nil
}

func parseDistribution(value string) (cash.DistributionType, error) {
	switch value {
	case "fixed":
		return cash.DistributionTypeFixed, nil
	case "random":
		return cash.DistributionTypeRandom, nil
	case "weighted":
		return cash.DistributionTypeWeighted, nil
	case "equal":
		return cash.DistributionTypeEqual, nil
	default:
		return 0, fmt.Errorf("unknown distribution %q", value)
	}
}
