// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"github.com/pkg/errors"

	"github.com/micachain/mica/state"
)

// Builder helper to build the genesis state.
type Builder struct {
	stateProcs []func(st *state.State) error
}

// State add a state process.
func (b *Builder) State(proc func(st *state.State) error) *Builder {
	b.stateProcs = append(b.stateProcs, proc)
	return b
}

// Build executes all state procs against a fresh state view and
// commits the result as the store's first revision.
// The stater must be on an empty store.
func (b *Builder) Build(stater *state.Stater) (uint64, error) {
	if stater.Revision() != 0 {
		return 0, errors.New("genesis: store already initialized")
	}

	st := stater.NewState()
	for _, proc := range b.stateProcs {
		if err := proc(st); err != nil {
			return 0, errors.Wrap(err, "genesis: build state")
		}
	}

	stage, err := st.Stage()
	if err != nil {
		return 0, errors.Wrap(err, "genesis: stage")
	}
	rev, err := stage.Commit()
	if err != nil {
		return 0, errors.Wrap(err, "genesis: commit")
	}
	return rev, nil
}
