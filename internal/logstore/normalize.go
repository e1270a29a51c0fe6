package logstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/prismview/prism/internal/logparse"
	"github.com/prismview/prism/internal/model"
)

// The query endpoint answers in one of three shapes: a newline-delimited
// stream of JSON objects, a JSON array of objects, or a single JSON object
// (optionally wrapping its records in a nested "values" array). All three
// normalize to a flat ordered record slice here; no shape ambiguity leaves
// this package.

type rawRecord map[string]interface{}

func (c *Client) normalizeRecords(body []byte) []model.LogRecord {
	raws := c.decodeRaw(body)
	records := make([]model.LogRecord, 0, len(raws))
	for _, raw := range raws {
		rec, err := toLogRecord(raw)
		if err != nil {
			c.log.Warn("skipping malformed record", zap.Error(err))
			continue
		}
		records = append(records, rec)
	}
	return records
}

func (c *Client) decodeRaw(body []byte) []rawRecord {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}

	switch trimmed[0] {
	case '[':
		var arr []rawRecord
		if err := json.Unmarshal(trimmed, &arr); err == nil {
			return arr
		}
	case '{':
		// A single object is only authoritative when the whole body is one
		// JSON document; a body of newline-delimited objects also starts
		// with '{'.
		var obj rawRecord
		if err := json.Unmarshal(trimmed, &obj); err == nil {
			if nested, ok := obj["values"].([]interface{}); ok {
				return unwrapValues(nested)
			}
			return []rawRecord{obj}
		}
	}

	// Newline-delimited: parse each non-blank line independently, dropping
	// lines that fail to parse.
	var raws []rawRecord
	for _, line := range strings.Split(string(trimmed), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var obj rawRecord
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			c.log.Warn("skipping unparseable line", zap.String("line", line), zap.Error(err))
			continue
		}
		raws = append(raws, obj)
	}
	return raws
}

func unwrapValues(values []interface{}) []rawRecord {
	raws := make([]rawRecord, 0, len(values))
	for _, v := range values {
		if obj, ok := v.(map[string]interface{}); ok {
			raws = append(raws, obj)
		}
	}
	return raws
}

// timestampKeys and messageKeys are the record field conventions the store
// is known to emit, in lookup order.
var (
	timestampKeys = []string{"_time", "timestamp", "time"}
	messageKeys   = []string{"_msg", "message", "msg"}
)

func toLogRecord(raw rawRecord) (model.LogRecord, error) {
	var rec model.LogRecord
	rec.Fields = make(map[string]string)

	tsKey, tsValue := pickKey(raw, timestampKeys)
	if tsKey == "" {
		return rec, fmt.Errorf("record has no timestamp field")
	}
	ts, err := parseTimestamp(tsValue)
	if err != nil {
		return rec, fmt.Errorf("record timestamp %q: %w", tsValue, err)
	}
	rec.Timestamp = ts

	msgKey, msgValue := pickKey(raw, messageKeys)
	if msgKey == "" {
		return rec, fmt.Errorf("record has no message field")
	}
	rec.Message = msgValue

	for k, v := range raw {
		if k == tsKey || k == msgKey {
			continue
		}
		rec.Fields[k] = stringify(v)
	}
	normalizeLevel(rec.Fields, raw)
	return rec, nil
}

// normalizeLevel canonicalizes the severity under the "level" key so the
// aggregation layer sees one spelling per tier. Numeric pino/bunyan
// levels are mapped to their string form. Records with no severity field
// at all are left alone.
func normalizeLevel(fields map[string]string, raw rawRecord) {
	for _, key := range logparse.SeverityKeys() {
		v, ok := raw[key]
		if !ok {
			continue
		}
		if n, isNum := v.(float64); isNum {
			fields["level"] = logparse.NumericLevel(int(n))
		} else {
			fields["level"] = logparse.NormalizeSeverity(stringify(v))
		}
		if key != "level" {
			delete(fields, key)
		}
		return
	}
}

func pickKey(raw rawRecord, keys []string) (string, string) {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			return k, stringify(v)
		}
	}
	return "", ""
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	case float64:
		// JSON numbers arrive as float64; render integers without a
		// fractional part.
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", t)
	}
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format")
}

// parseStatPoints decodes the stats endpoint response. The store answers in
// a Prometheus-style envelope: {"data":{"result":[{"metric":{...},"value":[ts,"N"]}]}}.
func parseStatPoints(body []byte) []model.StatPoint {
	var envelope struct {
		Data struct {
			Result []struct {
				Metric map[string]string `json:"metric"`
				Value  []interface{}     `json:"value"`
			} `json:"result"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil
	}

	points := make([]model.StatPoint, 0, len(envelope.Data.Result))
	for _, r := range envelope.Data.Result {
		if len(r.Value) < 2 {
			continue
		}
		var value float64
		switch v := r.Value[1].(type) {
		case string:
			fmt.Sscanf(v, "%g", &value)
		case float64:
			value = v
		}
		points = append(points, model.StatPoint{Labels: r.Metric, Value: value})
	}
	return points
}

// parseValueList decodes field name/value discovery responses: either an
// object with a "values" array of {"value": ..., "hits": ...} entries, or a
// bare JSON array of strings.
func parseValueList(body []byte) []string {
	var wrapped struct {
		Values []struct {
			Value string `json:"value"`
		} `json:"values"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && len(wrapped.Values) > 0 {
		names := make([]string, 0, len(wrapped.Values))
		for _, v := range wrapped.Values {
			names = append(names, v.Value)
		}
		return names
	}

	var plain []string
	if err := json.Unmarshal(body, &plain); err == nil {
		return plain
	}
	return nil
}
