// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package state manages the versioned account store.
// It follows the flow as below:
//
//	         o
//	         |
//	[ revertable state ]
//	         |
//	  [ stacked map ] -> [ journal ] -> [ staging ] -> [ committed revision ]
//	         |
//	 [ account cache ]
//	         |
//	 [ read-only kv ]
//
// Each state view records the store revision current at its creation
// as its commit base. Reads pass through to the last committed state;
// the base revision is not a read snapshot, so a view is meant to be
// used and committed before the next commit (the runtime's single
// writer guarantees this). Committing a stage bumps the revision; a
// view whose base revision was overtaken fails to commit with
// ConflictError.
package state
