package metrics

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func scrape(t *testing.T) string {
	t.Helper()
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 200 {
		t.Fatalf("scrape status = %d", rec.Code)
	}
	return rec.Body.String()
}

func TestRecordersShowUpInScrape(t *testing.T) {
	RecordAPIRequest("GET", "/alldata", 200, 3*time.Millisecond)
	TrackActiveRequest(true)
	TrackActiveRequest(false)
	RecordStoreOp("pg", "fetch_all", time.Millisecond, nil)
	RecordStoreOp("pg", "insert_many", time.Millisecond, errors.New("x"))
	RecordInserted("pg", 3)
	RecordInserted("pg", 0)
	RecordChart("svg", 12)

	body := scrape(t)
	for _, want := range []string{
		`piptrade_api_requests_total{method="GET",route="/alldata",status="200"}`,
		`piptrade_api_request_duration_seconds_count{method="GET",route="/alldata"}`,
		`piptrade_api_active_requests 0`,
		`piptrade_store_op_errors_total{backend="pg",op="insert_many"} 1`,
		`piptrade_records_inserted_total{backend="pg"} 3`,
		`piptrade_chart_renders_total{format="svg"}`,
		`piptrade_chart_bars_count`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("scrape missing %q", want)
		}
	}
	if strings.Contains(body, `piptrade_store_op_errors_total{backend="pg",op="fetch_all"}`) {
		t.Fatalf("successful op counted as error")
	}
}
