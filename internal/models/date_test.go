package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-10", want: NewDate(2024, time.January, 10)},
		{in: " 2024-02-29 ", want: NewDate(2024, time.February, 29)},
		{in: "", want: Date{}},
		{in: "N/A", want: Date{}},
		{in: "10/01/2024", wantErr: true},
		{in: "2023-02-29", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAddMonthsClampsToMonthEnd(t *testing.T) {
	tests := []struct {
		from Date
		n    int
		want Date
	}{
		{NewDate(2024, time.March, 31), -1, NewDate(2024, time.February, 29)},
		{NewDate(2023, time.March, 31), -1, NewDate(2023, time.February, 28)},
		{NewDate(2024, time.January, 15), -1, NewDate(2023, time.December, 15)},
		{NewDate(2024, time.May, 31), -1, NewDate(2024, time.April, 30)},
		{NewDate(2024, time.January, 31), 1, NewDate(2024, time.February, 29)},
	}

	for _, tt := range tests {
		if got := tt.from.AddMonths(tt.n); got != tt.want {
			t.Errorf("%v.AddMonths(%d): expected %v, got %v", tt.from, tt.n, tt.want, got)
		}
	}
}

func TestAddDaysCrossesMonth(t *testing.T) {
	got := NewDate(2024, time.March, 3).AddDays(-7)
	if want := NewDate(2024, time.February, 25); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBetweenIsInclusive(t *testing.T) {
	since := NewDate(2024, time.January, 3)
	until := NewDate(2024, time.January, 10)

	if !since.Between(since, until) || !until.Between(since, until) {
		t.Error("expected bounds to be included")
	}
	if NewDate(2024, time.January, 2).Between(since, until) {
		t.Error("expected day before range to be excluded")
	}
	if NewDate(2024, time.January, 11).Between(since, until) {
		t.Error("expected day after range to be excluded")
	}
}

func TestDateJSON(t *testing.T) {
	type wrapper struct {
		Expiry Date `json:"expiry"`
	}

	out, err := json.Marshal(wrapper{})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != `{"expiry":null}` {
		t.Errorf("unexpected zero encoding %s", out)
	}

	var w wrapper
	if err := json.Unmarshal([]byte(`{"expiry":"2025-12-31"}`), &w); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if w.Expiry != NewDate(2025, time.December, 31) {
		t.Errorf("unexpected date %v", w.Expiry)
	}
	if w.Expiry.String() != "2025-12-31" {
		t.Errorf("unexpected string %q", w.Expiry.String())
	}
	if (Date{}).String() != NotSet {
		t.Errorf("expected zero date to render as %q", NotSet)
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time failed: %v", err)
	}
	if d != NewDate(2024, time.June, 1) {
		t.Errorf("unexpected date %v", d)
	}
	if err := d.Scan(nil); err != nil || !d.IsZero() {
		t.Errorf("expected nil to scan into zero date, got %v (%v)", d, err)
	}
	if err := d.Scan(42); err == nil {
		t.Error("expected error scanning int")
	}
}
