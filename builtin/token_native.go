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

func initTokenMethods() {
	defines := []methodDefine{
		{"transfer", func(env *xenv.Environment) []tx.Value {
			to := env.Address(0)
			amount := env.Uint(1)

			env.UseSteps(ethparams.SloadGasEIP2200)
			senderBalance := env.GetBalance(env.Sender())
			if senderBalance.Lt(amount) {
				env.Revert(xenv.ErrInsufficientBalance, "insufficient balance for transfer")
			}
			// zero-amount transfers succeed without touching state
			if amount.IsZero() {
				return nil
			}

			env.UseSteps(ethparams.SstoreResetGas * 2)
			env.SetBalance(env.Sender(), new(uint256.Int).Sub(senderBalance, amount))
			recipientBalance := env.GetBalance(to)
			credited, overflow := new(uint256.Int).AddOverflow(recipientBalance, amount)
			if overflow {
				env.Revert(xenv.ErrOverflow, "recipient balance overflow")
			}
			env.SetBalance(to, credited)

			env.Transfer(env.Sender(), to, amount)
			return nil
		}},
		{"balanceOf", func(env *xenv.Environment) []tx.Value {
			who := env.Address(0)
			env.UseSteps(ethparams.SloadGasEIP2200)
			return []tx.Value{tx.Uint(env.GetBalance(who))}
		}},
		{"totalSupply", func(env *xenv.Environment) []tx.Value {
			env.UseSteps(ethparams.SloadGasEIP2200)
			return []tx.Value{tx.Uint(env.GetStorage(totalSupplySlot))}
		}},
	}
	registerMethods(Token.contract, defines)
}
