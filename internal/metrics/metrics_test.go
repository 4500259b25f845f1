package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerExposesCollectors(t *testing.T) {
	RecordRPC("/point.v1.SettlementService/PayShare", "ok", 20*time.Millisecond)
	RecordTransfer("share", "confirmed", time.Second)
	SettlementCompleted()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)

	for _, name := range []string{
		"point_rpc_requests_total",
		"point_ledger_transfers_total",
		"point_settlement_completed_total",
		"point_realtime_subscribers",
	} {
		assert.True(t, strings.Contains(text, name), "missing %s", name)
	}
}
