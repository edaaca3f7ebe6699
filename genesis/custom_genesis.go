// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"encoding/json"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/micachain/mica/builtin"
	"github.com/micachain/mica/mica"
	"github.com/micachain/mica/state"
)

// CustomGenesis is user customized genesis.
type CustomGenesis struct {
	Accounts []Account `json:"accounts"`
	Counter  *Counter  `json:"counter"`
	Token    *Token    `json:"token"`
}

// Account is an account seeded into the genesis state.
type Account struct {
	Address mica.Address                     `json:"address"`
	Balance *math.HexOrDecimal256            `json:"balance"`
	Storage map[string]*math.HexOrDecimal256 `json:"storage"`
}

// Counter is the counter contract preset.
type Counter struct {
	Value *math.HexOrDecimal256 `json:"value"`
}

// Token is the token contract preset.
type Token struct {
	Supply *math.HexOrDecimal256 `json:"supply"`
	Holder mica.Address          `json:"holder"`
}

// LoadCustomGenesis decodes a custom genesis from JSON.
func LoadCustomGenesis(r io.Reader) (*CustomGenesis, error) {
	var gen CustomGenesis
	if err := json.NewDecoder(r).Decode(&gen); err != nil {
		return nil, errors.Wrap(err, "decode custom genesis")
	}
	return &gen, nil
}

func toUint256(v *math.HexOrDecimal256, what string) (*uint256.Int, error) {
	if v == nil {
		return new(uint256.Int), nil
	}
	u, overflow := uint256.FromBig((*big.Int)(v))
	if overflow {
		return nil, errors.Errorf("%s out of the 256-bit range", what)
	}
	return u, nil
}

// NewCustomNet create the genesis builder for a custom genesis.
func NewCustomNet(gen *CustomGenesis) (*Builder, error) {
	builder := new(Builder)

	for _, account := range gen.Accounts {
		account := account
		balance, err := toUint256(account.Balance, "account balance")
		if err != nil {
			return nil, err
		}
		storage := make(map[string]*uint256.Int, len(account.Storage))
		for key, val := range account.Storage {
			sv, err := toUint256(val, "storage value")
			if err != nil {
				return nil, err
			}
			storage[key] = sv
		}
		builder.State(func(st *state.State) error {
			if err := st.SetBalance(account.Address, balance); err != nil {
				return err
			}
			for key, val := range storage {
				st.SetStorage(account.Address, key, val)
			}
			return nil
		})
	}

	if gen.Counter != nil {
		value, err := toUint256(gen.Counter.Value, "counter value")
		if err != nil {
			return nil, err
		}
		builder.State(func(st *state.State) error {
			builtin.Counter.Native(st).Set(value)
			return nil
		})
	}

	if gen.Token != nil {
		if gen.Token.Holder.IsZero() {
			return nil, errors.New("token holder required")
		}
		supply, err := toUint256(gen.Token.Supply, "token supply")
		if err != nil {
			return nil, err
		}
		holder := gen.Token.Holder
		builder.State(func(st *state.State) error {
			return builtin.Token.Native(st).InitializeSupply(holder, supply)
		})
	}

	return builder, nil
}
