package ledgerbook

import (
	"testing"
	"time"
)

func TestAddMonths_Clamping(t *testing.T) {
	testCases := []struct {
		name   string
		start  string
		months int
		want   string
	}{
		{"plain mid-month", "2024-01-15", 1, "2024-02-15"},
		{"jan 31 to leap february", "2024-01-31", 1, "2024-02-29"},
		{"jan 31 to non-leap february", "2023-01-31", 1, "2023-02-28"},
		{"31st to 30-day month", "2024-03-31", 1, "2024-04-30"},
		{"clamping does not stick", "2024-01-31", 2, "2024-03-31"},
		{"year boundary", "2024-11-15", 3, "2025-02-15"},
		{"year boundary with clamp", "2024-11-30", 3, "2025-02-28"},
		{"zero months", "2024-06-10", 0, "2024-06-10"},
		{"negative months", "2024-03-31", -1, "2024-02-29"},
		{"many years ahead", "2024-01-15", 25, "2026-02-15"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MustParseDate(tc.start).AddMonths(tc.months)
			if got.String() != tc.want {
				t.Errorf("AddMonths(%s, %d) = %s, want %s", tc.start, tc.months, got, tc.want)
			}
		})
	}
}

func TestPeriodKey(t *testing.T) {
	d := NewDate(2024, time.March, 7)
	testCases := []struct {
		period Period
		want   string
	}{
		{Daily, "2024-03-07"},
		{Monthly, "2024-03"},
		{Yearly, "2024"},
	}
	for _, tc := range testCases {
		if got := tc.period.Key(d); got != tc.want {
			t.Errorf("%s.Key(%s) = %q, want %q", tc.period, d, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024-01-15", want: "2024-01-15"},
		{in: "2024-1-5", want: "2024-01-05"},
		{in: " 2024-01-15 ", want: "2024-01-15"},
		{in: "not-a-date", wantErr: true},
		{in: "2024-13-45", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) = %s, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.February, 29)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(b) != `"2024-02-29"` {
		t.Errorf("MarshalJSON() = %s, want %q", b, "2024-02-29")
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

func TestDate_StartEndOf(t *testing.T) {
	d := NewDate(2024, time.February, 12)
	if got := d.StartOf(Monthly); got.String() != "2024-02-01" {
		t.Errorf("StartOf(Monthly) = %s", got)
	}
	if got := d.EndOf(Monthly); got.String() != "2024-02-29" {
		t.Errorf("EndOf(Monthly) = %s", got)
	}
	if got := d.StartOf(Yearly); got.String() != "2024-01-01" {
		t.Errorf("StartOf(Yearly) = %s", got)
	}
	if got := d.EndOf(Yearly); got.String() != "2024-12-31" {
		t.Errorf("EndOf(Yearly) = %s", got)
	}
}
