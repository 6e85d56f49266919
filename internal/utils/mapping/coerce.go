package mapping

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// aliases lists the wire names accepted for one canonical field, in priority order.
type aliases []string

// rawObject is one decoded wire item. Values stay raw until a field is read so
// each field can be coerced on its own terms.
type rawObject map[string]json.RawMessage

// dateLayouts are tried in order when parsing timestamps.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// decodeList splits a JSON array into objects. Anything that is not an array
// yields an empty list and non-object items are skipped.
func decodeList(raw json.RawMessage) []rawObject {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []rawObject{}
	}
	out := make([]rawObject, 0, len(items))
	for _, item := range items {
		obj := decodeObject(item)
		if obj == nil {
			continue
		}
		out = append(out, obj)
	}
	return out
}

func decodeObject(raw json.RawMessage) rawObject {
	var obj rawObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	return obj
}

// lookup returns the first alias that is present and not null.
func (o rawObject) lookup(names aliases) (json.RawMessage, bool) {
	for _, name := range names {
		v, ok := o[name]
		if !ok {
			continue
		}
		v = bytes.TrimSpace(v)
		if len(v) == 0 || bytes.Equal(v, []byte("null")) {
			continue
		}
		return v, true
	}
	return nil, false
}

func (o rawObject) str(names aliases) string {
	v, ok := o.lookup(names)
	if !ok {
		return ""
	}
	return rawString(v)
}

// decimal reads a number that may be encoded as a JSON number or a string.
// Missing or malformed values coerce to zero.
func (o rawObject) decimal(names aliases) decimal.Decimal {
	d, ok := o.optDecimal(names)
	if !ok {
		return decimal.Zero
	}
	return *d
}

func (o rawObject) optDecimal(names aliases) (*decimal.Decimal, bool) {
	v, ok := o.lookup(names)
	if !ok {
		return nil, false
	}
	d, err := decimal.NewFromString(strings.TrimSpace(rawString(v)))
	if err != nil {
		zero := decimal.Zero
		return &zero, true
	}
	return &d, true
}

func (o rawObject) int64(names aliases) int64 {
	return o.decimal(names).IntPart()
}

func (o rawObject) int(names aliases) int {
	return int(o.int64(names))
}

func (o rawObject) optInt64(names aliases) *int64 {
	if _, ok := o.lookup(names); !ok {
		return nil
	}
	n := o.int64(names)
	if n == 0 {
		return nil
	}
	return &n
}

func (o rawObject) optInt(names aliases) *int {
	if _, ok := o.lookup(names); !ok {
		return nil
	}
	n := o.int(names)
	return &n
}

// bool accepts JSON booleans, "true"/"false" style strings and 0/1 numbers.
func (o rawObject) bool(names aliases) bool {
	v, ok := o.lookup(names)
	if !ok {
		return false
	}
	s := strings.ToLower(strings.TrimSpace(rawString(v)))
	switch s {
	case "true", "t", "yes", "y", "1":
		return true
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return !d.IsZero()
	}
	return false
}

func (o rawObject) time(names aliases) time.Time {
	t, _ := o.optTime(names)
	if t == nil {
		return time.Time{}
	}
	return *t
}

func (o rawObject) optTime(names aliases) (*time.Time, bool) {
	v, ok := o.lookup(names)
	if !ok {
		return nil, false
	}
	s := strings.TrimSpace(rawString(v))
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, true
		}
	}
	return nil, false
}

func (o rawObject) object(names aliases) rawObject {
	v, ok := o.lookup(names)
	if !ok {
		return nil
	}
	return decodeObject(v)
}

func (o rawObject) list(names aliases) []rawObject {
	v, ok := o.lookup(names)
	if !ok {
		return []rawObject{}
	}
	return decodeList(v)
}

// rawString unquotes JSON strings and returns the literal text of anything else.
func rawString(v json.RawMessage) string {
	if len(v) > 0 && v[0] == '"' {
		var out string
		if err := json.Unmarshal(v, &out); err != nil {
			return ""
		}
		return out
	}
	return string(v)
}
