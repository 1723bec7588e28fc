package validate

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/common"

	"github.com/GlebRadaev/custody/internal/domain"
)

// Address checks that address is a well-formed destination for currency on
// the given bitcoin network. ETH and USDT share the Ethereum address format.
func Address(currency domain.Currency, address string, net *chaincfg.Params) error {
	if address == "" {
		return fmt.Errorf("%w: destination address is required", domain.ErrInvalidAddress)
	}
	switch currency {
	case domain.CurrencyBTC:
		if net == nil {
			net = &chaincfg.MainNetParams
		}
		addr, err := btcutil.DecodeAddress(address, net)
		if err != nil || !addr.IsForNet(net) {
			return fmt.Errorf("%w: %q is not a %s address", domain.ErrInvalidAddress, address, net.Name)
		}
		return nil
	case domain.CurrencyETH, domain.CurrencyUSDT:
		if !common.IsHexAddress(address) {
			return fmt.Errorf("%w: %q is not an ethereum address", domain.ErrInvalidAddress, address)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedCurrency, string(currency))
	}
}
