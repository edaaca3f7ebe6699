// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"encoding/binary"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/holiman/uint256"

	"github.com/micachain/mica/kv"
	"github.com/micachain/mica/mica"
)

var (
	accountsBucket = kv.Bucket("a")
	storageBucket  = kv.Bucket("s")
	propsBucket    = kv.Bucket("p")
)

var revisionKey = []byte("revision")

// ConflictError indicates that a stage was built on a store revision
// that was committed over by another state view in the meantime.
type ConflictError struct {
	Base    uint64
	Current uint64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("state: conflict, base revision %d, current %d", e.Base, e.Current)
}

// Stater tracks the committed store revision and creates state views
// based on it. Commits are serialized; a view whose base revision was
// overtaken fails to commit with ConflictError.
type Stater struct {
	db    kv.GetPutCloser
	cache *lru.ARCCache // decoded accounts keyed by address

	mu  sync.Mutex
	rev uint64
}

// NewStater create a stater object on the given store.
func NewStater(db kv.GetPutCloser) (*Stater, error) {
	cache, _ := lru.NewARC(512)
	stater := &Stater{db: db, cache: cache}

	data, err := propsBucket.ProxyGetter(db).Get(revisionKey)
	if err != nil {
		if !db.IsNotFound(err) {
			return nil, &Error{err}
		}
		return stater, nil
	}
	if len(data) != 8 {
		return nil, &Error{fmt.Errorf("malformed revision record")}
	}
	stater.rev = binary.BigEndian.Uint64(data)
	return stater, nil
}

// NewState create a state view based on the current committed revision.
func (st *Stater) NewState() *State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return newState(st, st.rev)
}

// Revision returns the current committed revision.
func (st *Stater) Revision() uint64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.rev
}

func (st *Stater) storageGetter() kv.Getter {
	return storageBucket.ProxyGetter(st.db)
}

// loadAccount loads the committed account record, consulting the
// decoded-account cache first. Serialized with commits, which refresh
// the cache for every account they write, so entries never go stale.
func (st *Stater) loadAccount(addr mica.Address) (*Account, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if cached, ok := st.cache.Get(addr); ok {
		return cached.(*Account), nil
	}
	acc, err := loadAccount(accountsBucket.ProxyGetter(st.db), addr)
	if err != nil {
		return nil, err
	}
	st.cache.Add(addr, acc)
	return acc, nil
}

// commit atomically writes the staged mutations and bumps the revision.
func (st *Stater) commit(base uint64, accounts map[mica.Address]*Account, storages map[storageKey]*uint256.Int) (uint64, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.rev != base {
		return 0, &ConflictError{Base: base, Current: st.rev}
	}

	batch := st.db.NewBatch()
	accPutter := accountsBucket.ProxyPutter(batch)
	storPutter := storageBucket.ProxyPutter(batch)

	for addr, acc := range accounts {
		if err := saveAccount(accPutter, addr, acc); err != nil {
			return 0, &Error{err}
		}
	}
	for key, value := range storages {
		if err := saveStorage(storPutter, key.addr, key.key, value); err != nil {
			return 0, &Error{err}
		}
	}

	newRev := base + 1
	var revData [8]byte
	binary.BigEndian.PutUint64(revData[:], newRev)
	if err := propsBucket.ProxyPutter(batch).Put(revisionKey, revData[:]); err != nil {
		return 0, &Error{err}
	}

	if err := batch.Write(); err != nil {
		return 0, &Error{err}
	}
	st.rev = newRev

	for addr, acc := range accounts {
		st.cache.Add(addr, acc)
	}
	return newRev, nil
}
