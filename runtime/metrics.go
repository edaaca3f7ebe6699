// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import "github.com/micachain/mica/metrics"

var metricTxCounter = metrics.LazyLoadCounterVec("runtime_tx_count", []string{"outcome", "kind"})
