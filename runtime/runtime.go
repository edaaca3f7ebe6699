// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import (
	"context"
	"sync"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/micachain/mica/builtin"
	"github.com/micachain/mica/logdb"
	"github.com/micachain/mica/mica"
	"github.com/micachain/mica/state"
	"github.com/micachain/mica/tx"
	"github.com/micachain/mica/xenv"
)

// DefaultStepBudget is the per-transaction step budget.
// Builtin methods are bounded by construction, so the default is
// generous enough never to bite a well-formed call.
const DefaultStepBudget uint64 = 1_000_000

// Output is the outcome of one transaction execution.
// Exactly one of the two outcomes holds: committed-with-events, or
// reverted-with-reason. Never both, never neither.
type Output struct {
	// TxIndex the index assigned at commit. Zero for reverted transactions.
	TxIndex uint64
	// Reverted reports whether the transaction was rolled back.
	Reverted bool
	// RevertReason the failure, set only when Reverted.
	RevertReason *xenv.Revert
	// Values the method return values.
	Values []tx.Value
	// Events emitted events, empty when Reverted.
	Events tx.Events
	// Transfers recorded transfers, empty when Reverted.
	Transfers tx.Transfers
}

// Runtime is to support transaction execution.
// Transactions execute strictly sequentially against the account store.
type Runtime struct {
	stater     *state.Stater
	logDB      *logdb.LogDB
	logger     *logrus.Logger
	stepBudget uint64

	mu sync.Mutex // serializes the single writer
}

// New create a Runtime object.
// logDB is optional; without it committed outputs are not recorded.
func New(stater *state.Stater, logDB *logdb.LogDB, logger *logrus.Logger) *Runtime {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Runtime{
		stater:     stater,
		logDB:      logDB,
		logger:     logger,
		stepBudget: DefaultStepBudget,
	}
}

// SetStepBudget overrides the per-transaction step budget.
// Returns this runtime.
func (rt *Runtime) SetStepBudget(budget uint64) *Runtime {
	rt.stepBudget = budget
	return rt
}

// Stater returns the underlying stater.
func (rt *Runtime) Stater() *state.Stater { return rt.stater }

// ExecuteTransaction runs one transaction to exactly one outcome.
// A revert rolls the transaction back completely and is reported in the
// output, not as an error. The error return is reserved for fatal host
// failures (broken store or log db).
func (rt *Runtime) ExecuteTransaction(trx *tx.Transaction) (*Output, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	st := rt.stater.NewState()
	checkpoint := st.NewCheckpoint()

	txCtx := &xenv.TransactionContext{
		Origin: trx.Sender(),
		Steps:  rt.stepBudget,
	}
	values, events, transfers, err := builtin.Dispatch(st, txCtx, trx.Target(), trx.Method(), trx.Args())
	if err != nil {
		if revert, ok := xenv.AsRevert(err); ok {
			st.RevertTo(checkpoint)
			rt.logger.WithFields(logrus.Fields{
				"tx":     trx.String(),
				"kind":   string(revert.Kind()),
				"reason": revert.Reason(),
			}).Debug("transaction reverted")
			metricTxCounter().AddWithLabel(1, map[string]string{"outcome": "reverted", "kind": string(revert.Kind())})
			return &Output{Reverted: true, RevertReason: revert}, nil
		}
		return nil, errors.WithMessage(err, "dispatch")
	}

	stage, err := st.Stage()
	if err != nil {
		return nil, errors.WithMessage(err, "stage")
	}
	rev, err := stage.Commit()
	if err != nil {
		// under the single-writer lock a conflict means a writer
		// bypassed the runtime; either way the store is intact
		return nil, errors.WithMessage(err, "commit")
	}

	if rt.logDB != nil {
		if err := rt.logDB.Log(rev, events, transfers); err != nil {
			return nil, errors.WithMessage(err, "append log db")
		}
	}

	rt.logger.WithFields(logrus.Fields{
		"tx":        trx.String(),
		"txIndex":   rev,
		"events":    len(events),
		"transfers": len(transfers),
	}).Debug("transaction committed")
	metricTxCounter().AddWithLabel(1, map[string]string{"outcome": "committed", "kind": ""})

	return &Output{
		TxIndex:   rev,
		Values:    values,
		Events:    events,
		Transfers: transfers,
	}, nil
}

// Call runs a transaction against the committed state without
// persisting anything. Useful for read-only methods like get or balanceOf.
func (rt *Runtime) Call(trx *tx.Transaction) (*Output, error) {
	st := rt.stater.NewState()

	txCtx := &xenv.TransactionContext{
		Origin: trx.Sender(),
		Steps:  rt.stepBudget,
	}
	values, events, transfers, err := builtin.Dispatch(st, txCtx, trx.Target(), trx.Method(), trx.Args())
	if err != nil {
		if revert, ok := xenv.AsRevert(err); ok {
			return &Output{Reverted: true, RevertReason: revert}, nil
		}
		return nil, errors.WithMessage(err, "dispatch")
	}
	return &Output{
		Values:    values,
		Events:    events,
		Transfers: transfers,
	}, nil
}

// GetBalance reads the committed balance of an account.
func (rt *Runtime) GetBalance(addr mica.Address) (*uint256.Int, error) {
	return rt.stater.NewState().GetBalance(addr)
}

// GetStorage reads a committed storage slot.
func (rt *Runtime) GetStorage(addr mica.Address, key string) (*uint256.Int, error) {
	return rt.stater.NewState().GetStorage(addr, key)
}

// FilterEvents queries the committed event log.
func (rt *Runtime) FilterEvents(ctx context.Context, filter *logdb.EventFilter) ([]*logdb.Event, error) {
	if rt.logDB == nil {
		return nil, errors.New("runtime: no log db")
	}
	return rt.logDB.FilterEvents(ctx, filter)
}

// FilterTransfers queries the committed transfer log.
func (rt *Runtime) FilterTransfers(ctx context.Context, filter *logdb.TransferFilter) ([]*logdb.Transfer, error) {
	if rt.logDB == nil {
		return nil, errors.New("runtime: no log db")
	}
	return rt.logDB.FilterTransfers(ctx, filter)
}
