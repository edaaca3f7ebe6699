// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state_test

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/micachain/mica/lvldb"
	"github.com/micachain/mica/mica"
	"github.com/micachain/mica/state"
)

func newTestStater(t *testing.T) *state.Stater {
	db, err := lvldb.NewMem()
	assert.Nil(t, err)
	stater, err := state.NewStater(db)
	assert.Nil(t, err)
	return stater
}

func TestStateReadDefaults(t *testing.T) {
	st := newTestStater(t).NewState()
	addr := mica.BytesToAddress([]byte("account1"))

	balance, err := st.GetBalance(addr)
	assert.Nil(t, err)
	assert.True(t, balance.IsZero(), "absent account reads zero balance")

	v, err := st.GetStorage(addr, "slot")
	assert.Nil(t, err)
	assert.True(t, v.IsZero(), "absent slot reads zero")

	exists, err := st.Exists(addr)
	assert.Nil(t, err)
	assert.False(t, exists)
}

func TestStateSetGet(t *testing.T) {
	assert := assert.New(t)
	st := newTestStater(t).NewState()
	addr := mica.BytesToAddress([]byte("account1"))

	assert.Nil(st.SetBalance(addr, uint256.NewInt(10)))
	balance, err := st.GetBalance(addr)
	assert.Nil(err)
	assert.Equal(uint64(10), balance.Uint64())

	exists, err := st.Exists(addr)
	assert.Nil(err)
	assert.True(exists, "account is created lazily on first write")

	st.SetStorage(addr, "slot", uint256.NewInt(99))
	v, err := st.GetStorage(addr, "slot")
	assert.Nil(err)
	assert.Equal(uint64(99), v.Uint64())

	// slots are scoped per account
	other := mica.BytesToAddress([]byte("account2"))
	v, err = st.GetStorage(other, "slot")
	assert.Nil(err)
	assert.True(v.IsZero())
}

func TestStateCheckpointRevert(t *testing.T) {
	assert := assert.New(t)
	st := newTestStater(t).NewState()
	addr := mica.BytesToAddress([]byte("account1"))

	assert.Nil(st.SetBalance(addr, uint256.NewInt(1)))

	outer := st.NewCheckpoint()
	assert.Nil(st.SetBalance(addr, uint256.NewInt(2)))
	st.SetStorage(addr, "slot", uint256.NewInt(7))

	inner := st.NewCheckpoint()
	assert.Nil(st.SetBalance(addr, uint256.NewInt(3)))

	st.RevertTo(inner)
	balance, _ := st.GetBalance(addr)
	assert.Equal(uint64(2), balance.Uint64())

	st.RevertTo(outer)
	balance, _ = st.GetBalance(addr)
	assert.Equal(uint64(1), balance.Uint64())
	v, _ := st.GetStorage(addr, "slot")
	assert.True(v.IsZero(), "storage writes revert with the checkpoint")
}

func TestStageCommit(t *testing.T) {
	assert := assert.New(t)
	db, err := lvldb.NewMem()
	assert.Nil(err)
	stater, err := state.NewStater(db)
	assert.Nil(err)

	addr := mica.BytesToAddress([]byte("account1"))

	st := stater.NewState()
	assert.Nil(st.SetBalance(addr, uint256.NewInt(100)))
	st.SetStorage(addr, "slot", uint256.NewInt(42))

	stage, err := st.Stage()
	assert.Nil(err)
	rev, err := stage.Commit()
	assert.Nil(err)
	assert.Equal(uint64(1), rev)
	assert.Equal(uint64(1), stater.Revision())

	// a fresh view over the same stater observes the commit
	st2 := stater.NewState()
	balance, err := st2.GetBalance(addr)
	assert.Nil(err)
	assert.Equal(uint64(100), balance.Uint64())
	v, err := st2.GetStorage(addr, "slot")
	assert.Nil(err)
	assert.Equal(uint64(42), v.Uint64())

	// a stater reopened over the same store recovers the revision
	reopened, err := state.NewStater(db)
	assert.Nil(err)
	assert.Equal(uint64(1), reopened.Revision())
	balance, err = reopened.NewState().GetBalance(addr)
	assert.Nil(err)
	assert.Equal(uint64(100), balance.Uint64())
}

func TestCommitConflict(t *testing.T) {
	assert := assert.New(t)
	stater := newTestStater(t)
	addr := mica.BytesToAddress([]byte("account1"))

	st1 := stater.NewState()
	st2 := stater.NewState()

	assert.Nil(st1.SetBalance(addr, uint256.NewInt(1)))
	stage1, err := st1.Stage()
	assert.Nil(err)
	_, err = stage1.Commit()
	assert.Nil(err)

	assert.Nil(st2.SetBalance(addr, uint256.NewInt(2)))
	stage2, err := st2.Stage()
	assert.Nil(err)
	_, err = stage2.Commit()

	var conflict *state.ConflictError
	assert.ErrorAs(err, &conflict)
	assert.Equal(uint64(0), conflict.Base)
	assert.Equal(uint64(1), conflict.Current)

	// the conflicting stage left the store untouched
	balance, err := stater.NewState().GetBalance(addr)
	assert.Nil(err)
	assert.Equal(uint64(1), balance.Uint64())
}

func TestStateViewIsolation(t *testing.T) {
	assert := assert.New(t)
	stater := newTestStater(t)
	addr := mica.BytesToAddress([]byte("account1"))

	st1 := stater.NewState()
	assert.Nil(st1.SetBalance(addr, uint256.NewInt(50)))

	// uncommitted writes are invisible to other views
	st2 := stater.NewState()
	balance, err := st2.GetBalance(addr)
	assert.Nil(err)
	assert.True(balance.IsZero())
}

func TestViewReadsThroughCommits(t *testing.T) {
	assert := assert.New(t)
	stater := newTestStater(t)
	addr := mica.BytesToAddress([]byte("account1"))

	early := stater.NewState()

	st := stater.NewState()
	assert.Nil(st.SetBalance(addr, uint256.NewInt(2)))
	st.SetStorage(addr, "slot", uint256.NewInt(2))
	stage, _ := st.Stage()
	_, err := stage.Commit()
	assert.Nil(err)

	// an older view reads the committed state consistently for both
	// balance and storage
	balance, err := early.GetBalance(addr)
	assert.Nil(err)
	assert.Equal(uint64(2), balance.Uint64())
	v, err := early.GetStorage(addr, "slot")
	assert.Nil(err)
	assert.Equal(uint64(2), v.Uint64())

	// the overtaken view can only fail its own commit
	assert.Nil(early.SetBalance(addr, uint256.NewInt(9)))
	earlyStage, err := early.Stage()
	assert.Nil(err)
	_, err = earlyStage.Commit()
	var conflict *state.ConflictError
	assert.ErrorAs(err, &conflict)
}

func TestClearStorageSlot(t *testing.T) {
	assert := assert.New(t)
	stater := newTestStater(t)
	addr := mica.BytesToAddress([]byte("account1"))

	st := stater.NewState()
	assert.Nil(st.SetBalance(addr, uint256.NewInt(1)))
	st.SetStorage(addr, "slot", uint256.NewInt(5))
	stage, _ := st.Stage()
	_, err := stage.Commit()
	assert.Nil(err)

	st = stater.NewState()
	st.SetStorage(addr, "slot", new(uint256.Int))
	stage, _ = st.Stage()
	_, err = stage.Commit()
	assert.Nil(err)

	v, err := stater.NewState().GetStorage(addr, "slot")
	assert.Nil(err)
	assert.True(v.IsZero(), "zero write clears the slot")
}
