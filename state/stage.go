// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"github.com/holiman/uint256"

	"github.com/micachain/mica/mica"
)

// Stage abstracts the changes of a state view ready to be committed.
type Stage struct {
	stater   *Stater
	base     uint64
	accounts map[mica.Address]*Account
	storages map[storageKey]*uint256.Int
}

// Commit commits all changes into the backing store in one batch,
// and returns the new store revision.
// It fails with ConflictError if the store was committed over since
// the originating state view was created.
func (s *Stage) Commit() (uint64, error) {
	return s.stater.commit(s.base, s.accounts, s.storages)
}
