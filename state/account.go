// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"

	"github.com/micachain/mica/kv"
	"github.com/micachain/mica/mica"
)

// Account is the Mica account model.
// All fields zeroed means the account does not exist in the store.
type Account struct {
	Balance *uint256.Int
}

// IsEmpty returns if the account is empty.
// Empty accounts are not persisted.
func (a *Account) IsEmpty() bool {
	return a.Balance.IsZero()
}

func emptyAccount() *Account {
	return &Account{Balance: new(uint256.Int)}
}

// accountBody is the serialized form of an account record.
type accountBody struct {
	Balance []byte
}

// loadAccount load an account at the given address.
// It returns an empty account if the address is unknown to the store.
func loadAccount(getter kv.Getter, addr mica.Address) (*Account, error) {
	data, err := getter.Get(addr.Bytes())
	if err != nil {
		if getter.IsNotFound(err) {
			return emptyAccount(), nil
		}
		return nil, err
	}
	var body accountBody
	if err := rlp.DecodeBytes(data, &body); err != nil {
		return nil, err
	}
	return &Account{Balance: new(uint256.Int).SetBytes(body.Balance)}, nil
}

// saveAccount save the account at the given address.
// Empty accounts are deleted rather than stored.
func saveAccount(putter kv.Putter, addr mica.Address, a *Account) error {
	if a.IsEmpty() {
		return putter.Delete(addr.Bytes())
	}
	data, err := rlp.EncodeToBytes(&accountBody{Balance: a.Balance.Bytes()})
	if err != nil {
		return err
	}
	return putter.Put(addr.Bytes(), data)
}

func storageSlotKey(addr mica.Address, key string) []byte {
	return append(addr.Bytes(), key...)
}

// loadStorage load a storage slot value, zero if absent.
func loadStorage(getter kv.Getter, addr mica.Address, key string) (*uint256.Int, error) {
	data, err := getter.Get(storageSlotKey(addr, key))
	if err != nil {
		if getter.IsNotFound(err) {
			return new(uint256.Int), nil
		}
		return nil, err
	}
	var raw []byte
	if err := rlp.DecodeBytes(data, &raw); err != nil {
		return nil, err
	}
	return new(uint256.Int).SetBytes(raw), nil
}

// saveStorage save a storage slot value.
// Zero values are deleted, so that absence equals zero.
func saveStorage(putter kv.Putter, addr mica.Address, key string, value *uint256.Int) error {
	if value.IsZero() {
		return putter.Delete(storageSlotKey(addr, key))
	}
	data, err := rlp.EncodeToBytes(value.Bytes())
	if err != nil {
		return err
	}
	return putter.Put(storageSlotKey(addr, key), data)
}
