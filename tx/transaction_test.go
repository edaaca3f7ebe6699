// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/micachain/mica/mica"
	"github.com/micachain/mica/tx"
)

func TestTransactionBuilder(t *testing.T) {
	sender := mica.BytesToAddress([]byte("sender"))
	target := mica.BytesToAddress([]byte("Counter"))

	trx := new(tx.Builder).
		Sender(sender).
		Target(target).
		Method("incrementBy").
		Args(tx.Uint64(5)).
		Build()

	assert.Equal(t, sender, trx.Sender())
	assert.Equal(t, target, trx.Target())
	assert.Equal(t, "incrementBy", trx.Method())
	assert.Equal(t, 1, len(trx.Args()))
	assert.True(t, trx.Args()[0].Equal(tx.Uint64(5)))

	// mutating the returned args must not affect the transaction
	args := trx.Args()
	args[0] = tx.Uint64(100)
	assert.True(t, trx.Args()[0].Equal(tx.Uint64(5)))
}
