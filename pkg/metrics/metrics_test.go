// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-keygate.
//
// go-keygate is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("POST", "200"))

	RecordRequest("POST", "200", 25*time.Millisecond)

	after := testutil.ToFloat64(RequestsTotal.WithLabelValues("POST", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordRequestDistinctLabels(t *testing.T) {
	RecordRequest("DELETE", "404", time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(RequestsTotal.WithLabelValues("DELETE", "404")))
	assert.Equal(t, float64(0), testutil.ToFloat64(RequestsTotal.WithLabelValues("DELETE", "500")))
}

func TestRecordError(t *testing.T) {
	before := testutil.ToFloat64(ErrorsTotal.WithLabelValues("NOT_FOUND"))

	RecordError("NOT_FOUND")

	after := testutil.ToFloat64(ErrorsTotal.WithLabelValues("NOT_FOUND"))
	assert.Equal(t, before+1, after)
}
