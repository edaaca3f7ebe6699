// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xenv_test

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/micachain/mica/lvldb"
	"github.com/micachain/mica/mica"
	"github.com/micachain/mica/state"
	"github.com/micachain/mica/tx"
	"github.com/micachain/mica/xenv"
)

func newTestEnv(t *testing.T, args ...tx.Value) *xenv.Environment {
	db, err := lvldb.NewMem()
	assert.Nil(t, err)
	stater, err := state.NewStater(db)
	assert.Nil(t, err)

	txCtx := &xenv.TransactionContext{
		Origin: mica.BytesToAddress([]byte("origin")),
		Steps:  1000,
	}
	return xenv.New(stater.NewState(), txCtx, mica.BytesToAddress([]byte("contract")), "method", args)
}

func TestEnvAccessors(t *testing.T) {
	env := newTestEnv(t, tx.Uint64(5), tx.Addr(mica.BytesToAddress([]byte("addr"))))

	assert.Equal(t, mica.BytesToAddress([]byte("origin")), env.Sender())
	assert.Equal(t, mica.BytesToAddress([]byte("contract")), env.To())
	assert.Equal(t, 2, env.ArgCount())

	output, _, _, err := env.Call(func(env *xenv.Environment) []tx.Value {
		assert.Equal(t, uint64(5), env.Uint(0).Uint64())
		assert.Equal(t, mica.BytesToAddress([]byte("addr")), env.Address(1))
		return []tx.Value{tx.Uint64(1)}
	})
	assert.Nil(t, err)
	assert.Equal(t, 1, len(output))
}

func TestEnvArgMismatch(t *testing.T) {
	env := newTestEnv(t, tx.Uint64(5))

	_, _, _, err := env.Call(func(env *xenv.Environment) []tx.Value {
		env.Address(0)
		return nil
	})
	revert, ok := xenv.AsRevert(err)
	assert.True(t, ok)
	assert.Equal(t, xenv.ErrInvalidArgument, revert.Kind())

	env = newTestEnv(t)
	_, _, _, err = env.Call(func(env *xenv.Environment) []tx.Value {
		env.Uint(0)
		return nil
	})
	revert, ok = xenv.AsRevert(err)
	assert.True(t, ok)
	assert.Equal(t, xenv.ErrInvalidArgument, revert.Kind())
}

func TestEnvRevert(t *testing.T) {
	env := newTestEnv(t)

	_, _, _, err := env.Call(func(env *xenv.Environment) []tx.Value {
		env.Require(false, xenv.ErrUnderflow, "went below zero")
		return nil
	})
	revert, ok := xenv.AsRevert(err)
	assert.True(t, ok)
	assert.Equal(t, xenv.ErrUnderflow, revert.Kind())
	assert.Equal(t, "went below zero", revert.Reason())
}

func TestEnvSteps(t *testing.T) {
	env := newTestEnv(t)

	_, _, _, err := env.Call(func(env *xenv.Environment) []tx.Value {
		env.UseSteps(400)
		assert.Equal(t, uint64(600), env.StepsLeft())
		env.UseSteps(601)
		return nil
	})
	revert, ok := xenv.AsRevert(err)
	assert.True(t, ok)
	assert.Equal(t, xenv.ErrStepLimit, revert.Kind())
}

func TestEnvBuffersOutputs(t *testing.T) {
	env := newTestEnv(t)
	recipient := mica.BytesToAddress([]byte("recipient"))

	_, events, transfers, err := env.Call(func(env *xenv.Environment) []tx.Value {
		env.SetStorage("slot", uint256.NewInt(3))
		assert.Equal(t, uint64(3), env.GetStorage("slot").Uint64())

		env.Log("Named", tx.Uint64(3))
		env.Transfer(env.Sender(), recipient, uint256.NewInt(1))
		return nil
	})
	assert.Nil(t, err)
	assert.Equal(t, 1, len(events))
	assert.Equal(t, mica.BytesToAddress([]byte("contract")), events[0].Address)
	assert.Equal(t, "Named", events[0].Name)
	assert.Equal(t, 1, len(transfers))
	assert.Equal(t, recipient, transfers[0].Recipient)
}

func TestAsRevert(t *testing.T) {
	revert := xenv.NewRevert(xenv.ErrOverflow, "too big")
	r, ok := xenv.AsRevert(revert)
	assert.True(t, ok)
	assert.Equal(t, xenv.ErrOverflow, r.Kind())
	assert.Equal(t, "overflow: too big", revert.Error())

	_, ok = xenv.AsRevert(assert.AnError)
	assert.False(t, ok)
}
