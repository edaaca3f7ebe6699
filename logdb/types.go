// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb

import (
	"github.com/holiman/uint256"

	"github.com/micachain/mica/mica"
	"github.com/micachain/mica/tx"
)

// Event represents a committed tx.Event stored in db.
type Event struct {
	Seq     uint64
	TxIndex uint64
	Address mica.Address // always a contract address
	Name    string
	Fields  []tx.Value
}

// Transfer represents a committed tx.Transfer stored in db.
type Transfer struct {
	Seq       uint64
	TxIndex   uint64
	Sender    mica.Address
	Recipient mica.Address
	Amount    *uint256.Int
}

// Order of the query result set.
type Order string

const (
	ASC  Order = "asc"
	DESC Order = "desc"
)

// Range bounds query results by sequence number, inclusive on both
// ends. A zero To means unbounded (sequence numbers start at 1).
type Range struct {
	From uint64
	To   uint64
}

// Options pagination of query results.
type Options struct {
	Offset uint64
	Limit  uint64
}

// EventCriteria matches events by emitting contract and/or name.
type EventCriteria struct {
	Address *mica.Address // always a contract address
	Name    *string
}

// EventFilter filter.
type EventFilter struct {
	CriteriaSet []*EventCriteria
	Range       *Range
	Options     *Options
	Order       Order // default asc
}

// TransferCriteria matches transfers by the involved accounts.
type TransferCriteria struct {
	TxIndex   *uint64
	Sender    *mica.Address
	Recipient *mica.Address
}

// TransferFilter filter.
type TransferFilter struct {
	CriteriaSet []*TransferCriteria
	Range       *Range
	Options     *Options
	Order       Order // default asc
}
