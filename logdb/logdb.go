// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/holiman/uint256"
	_ "github.com/mattn/go-sqlite3" // sqlite driver
	"github.com/pkg/errors"

	"github.com/micachain/mica/mica"
	"github.com/micachain/mica/tx"
)

// LogDB is the append-only log of committed events and transfers.
// Rows are immutable once written, so re-running a query over an
// unchanged range reproduces the same sequence.
type LogDB struct {
	path string
	db   *sql.DB
}

// New create or open log db at given path.
func New(path string) (logDB *LogDB, err error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if logDB == nil {
			db.Close()
		}
	}()
	if _, err := db.Exec(eventTableSchema + transferTableSchema); err != nil {
		return nil, err
	}
	return &LogDB{path, db}, nil
}

// NewMem create a log db in ram.
func NewMem() (*LogDB, error) {
	return New(":memory:")
}

// Close close the log db.
func (db *LogDB) Close() error {
	return db.db.Close()
}

// Path returns the db file path.
func (db *LogDB) Path() string {
	return db.path
}

// Log appends the outputs of one committed transaction, in one sql tx.
// Events and transfers from a rolled-back transaction must never be passed here.
func (db *LogDB) Log(txIndex uint64, events tx.Events, transfers tx.Transfers) (err error) {
	sqlTx, err := db.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			sqlTx.Rollback()
		}
	}()

	for _, event := range events {
		fields, encErr := tx.EncodeValues(event.Fields)
		if encErr != nil {
			return errors.Wrap(encErr, "encode event fields")
		}
		if _, err = sqlTx.Exec(
			"INSERT INTO event(txIndex, address, name, fields) VALUES (?, ?, ?, ?);",
			txIndex,
			event.Address.Bytes(),
			event.Name,
			fields,
		); err != nil {
			return err
		}
	}
	for _, transfer := range transfers {
		if _, err = sqlTx.Exec(
			"INSERT INTO transfer(txIndex, sender, recipient, amount) VALUES (?, ?, ?, ?);",
			txIndex,
			transfer.Sender.Bytes(),
			transfer.Recipient.Bytes(),
			transfer.Amount.Bytes(),
		); err != nil {
			return err
		}
	}
	return sqlTx.Commit()
}

// FilterEvents list events matching the given filter, ordered by sequence.
// A nil filter selects everything, ascending.
func (db *LogDB) FilterEvents(ctx context.Context, filter *EventFilter) ([]*Event, error) {
	if filter == nil {
		return db.queryEvents(ctx, "SELECT * FROM event ORDER BY seq ASC")
	}
	metricsHandleEventsFilter(filter)

	var args []interface{}
	stmt := "SELECT * FROM event WHERE 1"
	if filter.Range != nil {
		args = append(args, filter.Range.From)
		stmt += " AND seq >= ?"
		if filter.Range.To > 0 {
			args = append(args, filter.Range.To)
			stmt += " AND seq <= ?"
		}
	}
	for i, criteria := range filter.CriteriaSet {
		if i == 0 {
			stmt += " AND (( 1"
		} else {
			stmt += " OR ( 1"
		}
		if criteria.Address != nil {
			args = append(args, criteria.Address.Bytes())
			stmt += " AND address = ?"
		}
		if criteria.Name != nil {
			args = append(args, *criteria.Name)
			stmt += " AND name = ?"
		}
		if i == len(filter.CriteriaSet)-1 {
			stmt += " ))"
		} else {
			stmt += " )"
		}
	}

	if filter.Order == DESC {
		stmt += " ORDER BY seq DESC"
	} else {
		stmt += " ORDER BY seq ASC"
	}

	if filter.Options != nil {
		stmt += " LIMIT ?, ?"
		args = append(args, filter.Options.Offset, filter.Options.Limit)
	}
	return db.queryEvents(ctx, stmt, args...)
}

// FilterTransfers list transfers matching the given filter, ordered by sequence.
func (db *LogDB) FilterTransfers(ctx context.Context, filter *TransferFilter) ([]*Transfer, error) {
	if filter == nil {
		return db.queryTransfers(ctx, "SELECT * FROM transfer ORDER BY seq ASC")
	}
	metricsHandleTransfersFilter(filter)

	var args []interface{}
	stmt := "SELECT * FROM transfer WHERE 1"
	if filter.Range != nil {
		args = append(args, filter.Range.From)
		stmt += " AND seq >= ?"
		if filter.Range.To > 0 {
			args = append(args, filter.Range.To)
			stmt += " AND seq <= ?"
		}
	}
	for i, criteria := range filter.CriteriaSet {
		if i == 0 {
			stmt += " AND (( 1"
		} else {
			stmt += " OR ( 1"
		}
		if criteria.TxIndex != nil {
			args = append(args, *criteria.TxIndex)
			stmt += " AND txIndex = ?"
		}
		if criteria.Sender != nil {
			args = append(args, criteria.Sender.Bytes())
			stmt += " AND sender = ?"
		}
		if criteria.Recipient != nil {
			args = append(args, criteria.Recipient.Bytes())
			stmt += " AND recipient = ?"
		}
		if i == len(filter.CriteriaSet)-1 {
			stmt += " ))"
		} else {
			stmt += " )"
		}
	}

	if filter.Order == DESC {
		stmt += " ORDER BY seq DESC"
	} else {
		stmt += " ORDER BY seq ASC"
	}

	if filter.Options != nil {
		stmt += " LIMIT ?, ?"
		args = append(args, filter.Options.Offset, filter.Options.Limit)
	}
	return db.queryTransfers(ctx, stmt, args...)
}

func (db *LogDB) queryEvents(ctx context.Context, stmt string, args ...interface{}) ([]*Event, error) {
	rows, err := db.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		var (
			seq     uint64
			txIndex uint64
			address []byte
			name    string
			fields  []byte
		)
		if err := rows.Scan(
			&seq,
			&txIndex,
			&address,
			&name,
			&fields,
		); err != nil {
			return nil, err
		}
		event := &Event{
			Seq:     seq,
			TxIndex: txIndex,
			Address: mica.BytesToAddress(address),
			Name:    name,
		}
		if len(fields) > 0 {
			vals, err := tx.DecodeValues(fields)
			if err != nil {
				return nil, fmt.Errorf("event %d: %w", seq, err)
			}
			event.Fields = vals
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (db *LogDB) queryTransfers(ctx context.Context, stmt string, args ...interface{}) ([]*Transfer, error) {
	rows, err := db.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transfers []*Transfer
	for rows.Next() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		var (
			seq       uint64
			txIndex   uint64
			sender    []byte
			recipient []byte
			amount    []byte
		)
		if err := rows.Scan(
			&seq,
			&txIndex,
			&sender,
			&recipient,
			&amount,
		); err != nil {
			return nil, err
		}
		transfers = append(transfers, &Transfer{
			Seq:       seq,
			TxIndex:   txIndex,
			Sender:    mica.BytesToAddress(sender),
			Recipient: mica.BytesToAddress(recipient),
			Amount:    new(uint256.Int).SetBytes(amount),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return transfers, nil
}
