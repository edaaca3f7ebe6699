// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/micachain/mica/mica"
	"github.com/micachain/mica/stackedmap"
)

// Error is the error caused by state access failure.
// It indicates a broken backing store, not a business-rule violation.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("state: %v", e.cause)
}

func (e *Error) Unwrap() error { return e.cause }

// State manages accounts and their storage slots on top of a
// stacked map, in a snapshot-revert manner.
// Reads pass through to the last committed state and are cached per
// view, so repeated reads are stable. The base revision recorded at
// creation is used for conflict detection at commit; under the
// single-writer discipline no commit intervenes during a view's
// lifetime.
type State struct {
	stater *Stater
	base   uint64
	cache  map[mica.Address]*Account // cache of loaded accounts
	sm     *stackedmap.StackedMap    // keeps revisions of accounts state
}

func newState(stater *Stater, base uint64) *State {
	state := State{
		stater: stater,
		base:   base,
		cache:  make(map[mica.Address]*Account),
	}
	state.sm = stackedmap.New(func(key interface{}) (interface{}, bool, error) {
		return state.cacheGetter(key)
	})
	return &state
}

type storageKey struct {
	addr mica.Address
	key  string
}

// cacheGetter implements stackedmap.MapGetter.
func (s *State) cacheGetter(key interface{}) (value interface{}, exist bool, err error) {
	switch k := key.(type) {
	case mica.Address: // get account
		acc, err := s.getCachedAccount(k)
		if err != nil {
			return nil, false, err
		}
		return acc, true, nil
	case storageKey: // get storage
		v, err := loadStorage(s.stater.storageGetter(), k.addr, k.key)
		if err != nil {
			return nil, false, err
		}
		return v, true, nil
	}
	panic(fmt.Errorf("unexpected key type %+v", key))
}

func (s *State) getCachedAccount(addr mica.Address) (*Account, error) {
	if acc, ok := s.cache[addr]; ok {
		return acc, nil
	}
	acc, err := s.stater.loadAccount(addr)
	if err != nil {
		return nil, err
	}
	s.cache[addr] = acc
	return acc, nil
}

// getAccount gets account by address. The returned account should not be modified.
func (s *State) getAccount(addr mica.Address) (*Account, error) {
	v, _, err := s.sm.Get(addr)
	if err != nil {
		return nil, err
	}
	return v.(*Account), nil
}

// getAccountCopy get a copy of account by address.
func (s *State) getAccountCopy(addr mica.Address) (Account, error) {
	acc, err := s.getAccount(addr)
	if err != nil {
		return Account{}, err
	}
	return *acc, nil
}

func (s *State) updateAccount(addr mica.Address, acc *Account) {
	s.sm.Put(addr, acc)
}

// GetBalance returns balance for the given address.
func (s *State) GetBalance(addr mica.Address) (*uint256.Int, error) {
	acc, err := s.getAccount(addr)
	if err != nil {
		return nil, &Error{err}
	}
	return new(uint256.Int).Set(acc.Balance), nil
}

// SetBalance set balance for the given address.
// The account is created lazily on first write.
func (s *State) SetBalance(addr mica.Address, balance *uint256.Int) error {
	cpy, err := s.getAccountCopy(addr)
	if err != nil {
		return &Error{err}
	}
	cpy.Balance = new(uint256.Int).Set(balance)
	s.updateAccount(addr, &cpy)
	return nil
}

// GetStorage returns the storage slot value for the given address and key.
// Absent slots read as zero, never fail.
func (s *State) GetStorage(addr mica.Address, key string) (*uint256.Int, error) {
	v, _, err := s.sm.Get(storageKey{addr, key})
	if err != nil {
		return nil, &Error{err}
	}
	return new(uint256.Int).Set(v.(*uint256.Int)), nil
}

// SetStorage set the storage slot value for the given address and key.
// Setting zero clears the slot.
func (s *State) SetStorage(addr mica.Address, key string, value *uint256.Int) {
	s.sm.Put(storageKey{addr, key}, new(uint256.Int).Set(value))
}

// Exists returns whether an account exists at the given address.
// See Account.IsEmpty()
func (s *State) Exists(addr mica.Address) (bool, error) {
	acc, err := s.getAccount(addr)
	if err != nil {
		return false, &Error{err}
	}
	return !acc.IsEmpty(), nil
}

// NewCheckpoint makes a checkpoint of current state.
// It returns revision of the checkpoint.
func (s *State) NewCheckpoint() int {
	return s.sm.Push()
}

// RevertTo revert to checkpoint specified by revision.
func (s *State) RevertTo(revision int) {
	s.sm.PopTo(revision)
}

// Stage collects all cumulative changes into a stage,
// ready to be committed to the backing store in one batch.
func (s *State) Stage() (*Stage, error) {
	accounts := make(map[mica.Address]*Account)
	storages := make(map[storageKey]*uint256.Int)

	s.sm.Journal(func(k, v interface{}) bool {
		switch key := k.(type) {
		case mica.Address:
			accounts[key] = v.(*Account)
		case storageKey:
			storages[key] = v.(*uint256.Int)
		}
		return true
	})

	return &Stage{
		stater:   s.stater,
		base:     s.base,
		accounts: accounts,
		storages: storages,
	}, nil
}
