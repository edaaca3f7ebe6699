// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb

import (
	"github.com/micachain/mica/metrics"
)

var (
	metricQueryCounter      = metrics.LazyLoadCounterVec("logdb_query_count", []string{"type"})
	metricQueryOrderCounter = metrics.LazyLoadCounterVec("logdb_query_order", []string{"type", "order"})
	metricCriteriaBucket    = metrics.LazyLoadHistogramVec("logdb_criteria_length_bucket", []string{"type"}, []int64{0, 2, 5, 10, 25, 100})
)

func metricsHandleEventsFilter(filter *EventFilter) {
	if metrics.NoOp() {
		return
	}
	metricsHandleCommon("event", filter.Order, len(filter.CriteriaSet))
}

func metricsHandleTransfersFilter(filter *TransferFilter) {
	if metrics.NoOp() {
		return
	}
	metricsHandleCommon("transfer", filter.Order, len(filter.CriteriaSet))
}

func metricsHandleCommon(queryType string, order Order, criteriaLen int) {
	metricQueryCounter().AddWithLabel(1, map[string]string{"type": queryType})

	orderLabel := "asc"
	if order == DESC {
		orderLabel = "desc"
	}
	metricQueryOrderCounter().AddWithLabel(1, map[string]string{"type": queryType, "order": orderLabel})

	metricCriteriaBucket().ObserveWithLabels(int64(criteriaLen), map[string]string{"type": queryType})
}
