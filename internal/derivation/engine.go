// Package derivation maps (master seed, user, currency, generation) to a
// deterministic BIP-44 key pair. It performs no I/O.
package derivation

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/crypto"
	bip39 "github.com/tyler-smith/go-bip39"

	"github.com/GlebRadaev/custody/internal/domain"
)

const (
	purpose      = 44
	coinTypeBTC  = 0
	coinTypeETH  = 60
	indexMask    = hdkeychain.HardenedKeyStart - 1
	externalPath = 0
)

// Keypair holds derived key material. PrivateKey must be wiped by the caller
// as soon as it has been encrypted.
type Keypair struct {
	Currency   domain.Currency
	Index      uint32
	Path       string
	Address    string
	PrivateKey []byte
}

func (k *Keypair) Wipe() {
	if k == nil {
		return
	}
	for i := range k.PrivateKey {
		k.PrivateKey[i] = 0
	}
	k.PrivateKey = nil
}

type Engine struct {
	master *hdkeychain.ExtendedKey
	net    *chaincfg.Params
}

func NewEngine(seed []byte, net *chaincfg.Params) (*Engine, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("%w: master seed is not set", domain.ErrConfiguration)
	}
	if net == nil {
		net = &chaincfg.MainNetParams
	}
	master, err := hdkeychain.NewMaster(seed, net)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid master seed: %v", domain.ErrConfiguration, err)
	}
	return &Engine{master: master, net: net}, nil
}

// SeedFromSecret accepts either a BIP-39 mnemonic or a hex encoded seed.
func SeedFromSecret(secret string) ([]byte, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, fmt.Errorf("%w: master seed is not set", domain.ErrConfiguration)
	}
	if strings.Contains(secret, " ") {
		seed, err := bip39.NewSeedWithErrorChecking(secret, "")
		if err != nil {
			return nil, fmt.Errorf("%w: invalid mnemonic", domain.ErrConfiguration)
		}
		return seed, nil
	}
	seed, err := hex.DecodeString(strings.TrimPrefix(secret, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: master seed is neither a mnemonic nor hex", domain.ErrConfiguration)
	}
	if len(seed) < hdkeychain.MinSeedBytes || len(seed) > hdkeychain.MaxSeedBytes {
		return nil, fmt.Errorf("%w: master seed must be %d-%d bytes", domain.ErrConfiguration, hdkeychain.MinSeedBytes, hdkeychain.MaxSeedBytes)
	}
	return seed, nil
}

// DeriveIndex hashes userID into a stable non-hardened child index.
func DeriveIndex(userID string) uint32 {
	sum := sha256.Sum256([]byte(userID))
	return binary.BigEndian.Uint32(sum[:4]) & indexMask
}

// Derive returns the key pair for userID at the given rotation generation.
func (e *Engine) Derive(userID string, currency domain.Currency, generation uint32) (*Keypair, error) {
	index := (DeriveIndex(userID) + generation) & indexMask
	return e.DeriveKeypair(currency, index)
}

func (e *Engine) DeriveKeypair(currency domain.Currency, index uint32) (*Keypair, error) {
	coinType, account, err := accountPath(currency)
	if err != nil {
		return nil, err
	}
	path := []uint32{
		hdkeychain.HardenedKeyStart + purpose,
		hdkeychain.HardenedKeyStart + coinType,
		hdkeychain.HardenedKeyStart + account,
		externalPath,
		index & indexMask,
	}

	key := e.master
	for _, idx := range path {
		key, err = key.Derive(idx)
		if err != nil {
			return nil, fmt.Errorf("failed to derive child key: %w", err)
		}
	}

	kp := &Keypair{
		Currency: currency,
		Index:    index & indexMask,
		Path:     fmt.Sprintf("m/%d'/%d'/%d'/%d/%d", purpose, coinType, account, externalPath, index&indexMask),
	}

	switch currency {
	case domain.CurrencyBTC:
		err = e.fillBitcoin(key, kp)
	case domain.CurrencyETH, domain.CurrencyUSDT:
		err = fillEthereum(key, kp)
	}
	if err != nil {
		kp.Wipe()
		return nil, err
	}
	return kp, nil
}

// accountPath gives every currency its own BIP-44 account so no two
// currencies ever share a private key.
func accountPath(currency domain.Currency) (coinType, account uint32, err error) {
	switch currency {
	case domain.CurrencyBTC:
		return coinTypeBTC, 0, nil
	case domain.CurrencyETH:
		return coinTypeETH, 0, nil
	case domain.CurrencyUSDT:
		return coinTypeETH, 1, nil
	default:
		return 0, 0, fmt.Errorf("%w: %q", domain.ErrUnsupportedCurrency, string(currency))
	}
}

func (e *Engine) fillBitcoin(key *hdkeychain.ExtendedKey, kp *Keypair) error {
	addr, err := key.Address(e.net)
	if err != nil {
		return fmt.Errorf("failed to get address: %w", err)
	}
	priv, err := key.ECPrivKey()
	if err != nil {
		return fmt.Errorf("failed to get EC private key: %w", err)
	}
	wif, err := btcutil.NewWIF(priv, e.net, true)
	if err != nil {
		return fmt.Errorf("failed to encode WIF: %w", err)
	}
	kp.Address = addr.EncodeAddress()
	kp.PrivateKey = []byte(wif.String())
	return nil
}

func fillEthereum(key *hdkeychain.ExtendedKey, kp *Keypair) error {
	priv, err := key.ECPrivKey()
	if err != nil {
		return fmt.Errorf("failed to get EC private key: %w", err)
	}
	raw := priv.Serialize()
	defer clearBytes(raw)

	ecdsaKey, err := crypto.ToECDSA(raw)
	if err != nil {
		return fmt.Errorf("failed to convert to ecdsa: %w", err)
	}
	kp.Address = crypto.PubkeyToAddress(ecdsaKey.PublicKey).Hex()
	kp.PrivateKey = make([]byte, hex.EncodedLen(len(raw)))
	hex.Encode(kp.PrivateKey, raw)
	return nil
}

// Network returns the bitcoin network addresses are encoded for.
func (e *Engine) Network() *chaincfg.Params {
	return e.net
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
