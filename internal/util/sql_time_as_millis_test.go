package util_test

import (
	"encoding/json"
	"roster/internal/util"
	"testing"
	"time"
)

func TestTimeAsMillisJSON(t *testing.T) {
	ts := util.NewTimeAsMillis(1_600_000_000_123)

	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1600000000123" {
		t.Errorf("expected milliseconds, got %s", data)
	}

	var back util.TimeAsMillis
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Millis() != ts.Millis() {
		t.Errorf("expected %d, got %d", ts.Millis(), back.Millis())
	}

	if err := json.Unmarshal([]byte(`"2020-01-01"`), &back); err == nil {
		t.Error("expected an error for a non numeric timestamp")
	}
}

func TestNullTimeAsMillisJSON(t *testing.T) {
	var v struct {
		At util.NullTimeAsMillis `json:"at"`
	}

	if err := json.Unmarshal([]byte(`{}`), &v); err != nil || v.At.Valid {
		t.Errorf("expected an absent value to be invalid, got %+v (%v)", v.At, err)
	}

	if err := json.Unmarshal([]byte(`{"at": null}`), &v); err != nil || v.At.Valid {
		t.Errorf("expected null to be invalid, got %+v (%v)", v.At, err)
	}

	if err := json.Unmarshal([]byte(`{"at": 42}`), &v); err != nil || !v.At.Valid || v.At.Time.Millis() != 42 {
		t.Errorf("expected 42, got %+v (%v)", v.At, err)
	}

	data, err := json.Marshal(util.NullTimeAsMillis{})
	if err != nil || string(data) != "null" {
		t.Errorf("expected null, got %s (%v)", data, err)
	}
}

func TestTimeAsMillisScan(t *testing.T) {
	expected := time.Date(2001, time.June, 1, 0, 0, 0, 0, time.UTC).UnixMilli()

	for _, src := range []interface{}{expected, []byte("991353600000")} {
		var v util.TimeAsMillis
		if err := v.Scan(src); err != nil {
			t.Fatal(err)
		}
		if v.Millis() != expected {
			t.Errorf("%T: expected %d, got %d", src, expected, v.Millis())
		}
	}

	var v util.TimeAsMillis
	if err := v.Scan("nope"); err == nil {
		t.Error("expected an error scanning a string")
	}

	var nv util.NullTimeAsMillis
	if err := nv.Scan(nil); err != nil || nv.Valid {
		t.Errorf("expected NULL to be invalid, got %+v (%v)", nv, err)
	}
	if value, err := nv.Value(); err != nil || value != nil {
		t.Errorf("expected a nil value, got %v (%v)", value, err)
	}
}

func TestConcatErrors(t *testing.T) {
	if err := util.ConcatErrors(nil); err != nil {
		t.Errorf("expected nil, got %s", err)
	}

	if err := util.ConcatErrors([]error{nil, nil}); err != nil {
		t.Errorf("expected nil, got %s", err)
	}

	err := util.ConcatErrors([]error{util.ErrPublic("a"), nil, util.ErrPublic("b")})
	if err == nil || err.Error() != "a; b" {
		t.Errorf("expected \"a; b\", got %v", err)
	}
}
