// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package builtin

import (
	ethparams "github.com/ethereum/go-ethereum/params"
	"github.com/holiman/uint256"

	"github.com/micachain/mica/tx"
	"github.com/micachain/mica/xenv"
)

func initCounterMethods() {
	defines := []methodDefine{
		{"incrementBy", func(env *xenv.Environment) []tx.Value {
			amount := env.Uint(0)
			env.Require(!amount.IsZero(), xenv.ErrInvalidArgument, "zero increment")

			env.UseSteps(ethparams.SloadGasEIP2200)
			cur := env.GetStorage(counterSlot)

			sum, overflow := new(uint256.Int).AddOverflow(cur, amount)
			if overflow {
				env.Revert(xenv.ErrOverflow, "counter overflow")
			}
			env.UseSteps(ethparams.SstoreResetGas)
			env.SetStorage(counterSlot, sum)

			env.UseSteps(ethparams.LogGas + ethparams.LogDataGas*32)
			env.Log("Increment", tx.Uint(amount))
			return nil
		}},
		{"decrement", func(env *xenv.Environment) []tx.Value {
			env.UseSteps(ethparams.SloadGasEIP2200)
			cur := env.GetStorage(counterSlot)
			if cur.IsZero() {
				env.Revert(xenv.ErrUnderflow, "counter underflow")
			}
			env.UseSteps(ethparams.SstoreResetGas)
			env.SetStorage(counterSlot, new(uint256.Int).SubUint64(cur, 1))
			return nil
		}},
		{"setValue", func(env *xenv.Environment) []tx.Value {
			x := env.Uint(0)
			env.UseSteps(ethparams.SstoreSetGas)
			env.SetStorage(counterSlot, x)
			return nil
		}},
		{"get", func(env *xenv.Environment) []tx.Value {
			env.UseSteps(ethparams.SloadGasEIP2200)
			return []tx.Value{tx.Uint(env.GetStorage(counterSlot))}
		}},
	}
	registerMethods(Counter.contract, defines)
}
