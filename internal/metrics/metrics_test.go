package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestNewCollector_RegistersMetrics はコレクターの生成で全メトリクスが
// レジストリに登録されることを検証する。
func TestNewCollector_RegistersMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	if c == nil {
		t.Fatal("expected non-nil collector")
	}

	// 登録済みなので二重登録はpanicになる
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	NewCollector(reg)
}

// TestCollector_RecordEntryCounters はエントリ操作カウンターの増加を検証する。
func TestCollector_RecordEntryCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordEntryCreated()
	c.RecordEntryCreated()
	c.RecordEntryUpdated()
	c.RecordEntryDeleted()

	if got := testutil.ToFloat64(c.entriesCreated); got != 2 {
		t.Errorf("entriesCreated = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.entriesUpdated); got != 1 {
		t.Errorf("entriesUpdated = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.entriesDeleted); got != 1 {
		t.Errorf("entriesDeleted = %v, want 1", got)
	}
}

// TestCollector_RecordHTTPStatus はステータスコード別のカウントを検証する。
func TestCollector_RecordHTTPStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHTTPStatus(200)
	c.RecordHTTPStatus(200)
	c.RecordHTTPStatus(404)

	if got := testutil.ToFloat64(c.httpStatus.WithLabelValues("200")); got != 2 {
		t.Errorf("httpStatus{200} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.httpStatus.WithLabelValues("404")); got != 1 {
		t.Errorf("httpStatus{404} = %v, want 1", got)
	}
}

// TestCollector_RecordRequestDuration はヒストグラムへの観測を検証する。
func TestCollector_RecordRequestDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequestDuration(50 * time.Millisecond)
	c.RecordRequestDuration(150 * time.Millisecond)

	count := testutil.CollectAndCount(c.requestDuration)
	if count != 1 {
		t.Errorf("expected 1 histogram metric, got %d", count)
	}
}

// TestCollector_RecordLoginSuccess はログイン成功カウンターを検証する。
func TestCollector_RecordLoginSuccess(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordLoginSuccess()

	if got := testutil.ToFloat64(c.loginSuccess); got != 1 {
		t.Errorf("loginSuccess = %v, want 1", got)
	}
}

// TestCollector_ImplementsInterface はCollectorがMetricsCollectorを
// 満たすことを検証する。
func TestCollector_ImplementsInterface(t *testing.T) {
	reg := prometheus.NewRegistry()
	var _ MetricsCollector = NewCollector(reg)
}
