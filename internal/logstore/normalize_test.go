package logstore

import (
	"testing"

	"go.uber.org/zap"
)

func testClient(t *testing.T) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: "http://localhost:9428", Logger: zap.NewNop()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNormalizeRecordShapes(t *testing.T) {
	c := testClient(t)

	ndjson := `{"_time":"2024-03-01T10:00:00Z","_msg":"first","level":"INFO"}
{"_time":"2024-03-01T10:00:01Z","_msg":"second","level":"ERROR"}`
	array := `[{"_time":"2024-03-01T10:00:00Z","_msg":"first","level":"INFO"},` +
		`{"_time":"2024-03-01T10:00:01Z","_msg":"second","level":"ERROR"}]`

	ndRecords := c.normalizeRecords([]byte(ndjson))
	arrRecords := c.normalizeRecords([]byte(array))

	if len(ndRecords) != 2 || len(arrRecords) != 2 {
		t.Fatalf("got %d ndjson and %d array records, want 2 and 2", len(ndRecords), len(arrRecords))
	}
	for i := range ndRecords {
		if ndRecords[i].Timestamp != arrRecords[i].Timestamp ||
			ndRecords[i].Message != arrRecords[i].Message ||
			ndRecords[i].Fields["level"] != arrRecords[i].Fields["level"] {
			t.Errorf("record %d differs between ndjson and array forms: %+v vs %+v",
				i, ndRecords[i], arrRecords[i])
		}
	}

	if ndRecords[0].Message != "first" || ndRecords[1].Message != "second" {
		t.Errorf("record order not preserved: %q, %q", ndRecords[0].Message, ndRecords[1].Message)
	}
}

func TestNormalizeSingleObject(t *testing.T) {
	c := testClient(t)

	records := c.normalizeRecords([]byte(`{"_time":"2024-03-01T10:00:00Z","_msg":"only","level":"WARN"}`))
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Message != "only" {
		t.Errorf("Message = %q, want %q", records[0].Message, "only")
	}
	if records[0].Level() != "WARN" {
		t.Errorf("Level() = %q, want WARN", records[0].Level())
	}
}

func TestNormalizeNestedValues(t *testing.T) {
	c := testClient(t)

	body := `{"values":[` +
		`{"_time":"2024-03-01T10:00:00Z","_msg":"a"},` +
		`{"_time":"2024-03-01T10:00:01Z","_msg":"b"}]}`
	records := c.normalizeRecords([]byte(body))
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Message != "a" || records[1].Message != "b" {
		t.Errorf("unexpected messages: %q, %q", records[0].Message, records[1].Message)
	}
}

func TestNormalizeSkipsBadLines(t *testing.T) {
	c := testClient(t)

	body := `{"_time":"2024-03-01T10:00:00Z","_msg":"good"}
not valid json at all
{"_time":"bogus","_msg":"bad timestamp"}
{"_time":"2024-03-01T10:00:02Z","_msg":"also good"}`

	records := c.normalizeRecords([]byte(body))
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (bad lines dropped)", len(records))
	}
	if records[0].Message != "good" || records[1].Message != "also good" {
		t.Errorf("unexpected survivors: %q, %q", records[0].Message, records[1].Message)
	}
}

func TestNormalizeEmptyBody(t *testing.T) {
	c := testClient(t)
	if records := c.normalizeRecords(nil); len(records) != 0 {
		t.Errorf("got %d records from empty body, want 0", len(records))
	}
	if records := c.normalizeRecords([]byte("  \n ")); len(records) != 0 {
		t.Errorf("got %d records from blank body, want 0", len(records))
	}
}

func TestNormalizeFieldTypes(t *testing.T) {
	c := testClient(t)

	body := `{"_time":"2024-03-01T10:00:00Z","_msg":"m","pid":42,"ratio":0.5,"ok":true,"gone":null}`
	records := c.normalizeRecords([]byte(body))
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	fields := records[0].Fields
	tests := []struct{ key, want string }{
		{"pid", "42"},
		{"ratio", "0.5"},
		{"ok", "true"},
		{"gone", ""},
	}
	for _, tt := range tests {
		if got := fields[tt.key]; got != tt.want {
			t.Errorf("field %q = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestParseValueList(t *testing.T) {
	wrapped := `{"values":[{"value":"level","hits":10},{"value":"service","hits":4}]}`
	got := parseValueList([]byte(wrapped))
	if len(got) != 2 || got[0] != "level" || got[1] != "service" {
		t.Errorf("wrapped form: got %v", got)
	}

	plain := `["level","service","host"]`
	got = parseValueList([]byte(plain))
	if len(got) != 3 || got[2] != "host" {
		t.Errorf("plain form: got %v", got)
	}

	if got := parseValueList([]byte("garbage")); got != nil {
		t.Errorf("garbage body: got %v, want nil", got)
	}
}

func TestParseStatPoints(t *testing.T) {
	body := `{"status":"success","data":{"result":[` +
		`{"metric":{"service":"api"},"value":[1709280000,"42"]},` +
		`{"metric":{"service":"db"},"value":[1709280000,"7"]}]}}`
	points := parseStatPoints([]byte(body))
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].Labels["service"] != "api" || points[0].Value != 42 {
		t.Errorf("unexpected first point: %+v", points[0])
	}
}

func TestNormalizeRecordsCanonicalizesLevel(t *testing.T) {
	c := testClient(t)
	body := `{"_time":"2024-03-01T10:00:00Z","_msg":"a","level":"warning"}
{"_time":"2024-03-01T10:00:01Z","_msg":"b","severity":"Err"}
{"_time":"2024-03-01T10:00:02Z","_msg":"c","level":50}
{"_time":"2024-03-01T10:00:03Z","_msg":"d"}`

	records := c.normalizeRecords([]byte(body))
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}
	if got := records[0].Level(); got != "WARN" {
		t.Errorf("level[0] = %q, want WARN", got)
	}
	if got := records[1].Level(); got != "ERROR" {
		t.Errorf("level[1] = %q, want ERROR", got)
	}
	if _, ok := records[1].Fields["severity"]; ok {
		t.Error("severity key should be folded into level")
	}
	if got := records[2].Level(); got != "ERROR" {
		t.Errorf("numeric level = %q, want ERROR", got)
	}
	if got := records[3].Level(); got != "unknown" {
		t.Errorf("missing level = %q, want unknown", got)
	}
}
