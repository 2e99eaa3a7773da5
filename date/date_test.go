package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    Date
		expectErr bool
	}{
		{"Canonical", "2024-02-13", New(2024, time.February, 13), false},
		{"Permissive single digits", "2024-2-3", New(2024, time.February, 3), false},
		{"Garbage", "13/02/2024", Date{}, true},
		{"Empty", "", Date{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if (err != nil) != tc.expectErr {
				t.Fatalf("Parse(%q) error = %v, want error: %v", tc.input, err, tc.expectErr)
			}
			if !tc.expectErr && got != tc.expect {
				t.Errorf("Parse(%q) = %s, want %s", tc.input, got, tc.expect)
			}
		})
	}
}

func TestAddNormalizes(t *testing.T) {
	d := New(2024, time.January, 31).Add(1)
	if d.String() != "2024-02-01" {
		t.Errorf("Jan 31 + 1 day = %s, want 2024-02-01", d)
	}
	d = New(2024, time.March, 1).Add(-1)
	if d.String() != "2024-02-29" { // 2024 is a leap year
		t.Errorf("Mar 1 - 1 day = %s, want 2024-02-29", d)
	}
}

func TestHistoryAppendSortsAndOverwrites(t *testing.T) {
	h := new(History[float64])
	h.Append(MustParse("2024-01-03"), 3)
	h.Append(MustParse("2024-01-01"), 1)
	h.Append(MustParse("2024-01-02"), 2)
	h.Append(MustParse("2024-01-02"), 20) // overwrite

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}
	var got []float64
	for _, v := range h.Values() {
		got = append(got, v)
	}
	want := []float64{1, 20, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestHistoryValueAsOf(t *testing.T) {
	h := new(History[float64])
	h.Append(MustParse("2024-01-01"), 10)
	h.Append(MustParse("2024-01-05"), 50)

	testCases := []struct {
		name   string
		day    Date
		expect float64
		found  bool
	}{
		{"Exact day", MustParse("2024-01-05"), 50, true},
		{"Between days", MustParse("2024-01-03"), 10, true},
		{"After last", MustParse("2024-02-01"), 50, true},
		{"Before first", MustParse("2023-12-31"), 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, found := h.ValueAsOf(tc.day)
			if found != tc.found || got != tc.expect {
				t.Errorf("ValueAsOf(%s) = (%v, %v), want (%v, %v)", tc.day, got, found, tc.expect, tc.found)
			}
		})
	}
}

func TestHistoryTail(t *testing.T) {
	h := new(History[float64])
	for i := 1; i <= 5; i++ {
		h.Append(New(2024, time.January, i), float64(i))
	}

	tail := h.Tail(2)
	if tail.Len() != 2 {
		t.Fatalf("Tail(2).Len() = %d, want 2", tail.Len())
	}
	_, first := tail.First()
	if first != 4 {
		t.Errorf("Tail(2) first value = %v, want 4", first)
	}

	// asking for more than available returns everything
	if h.Tail(100).Len() != 5 {
		t.Errorf("Tail(100).Len() = %d, want 5", h.Tail(100).Len())
	}
}

func TestPeriodKey(t *testing.T) {
	on := MustParse("2024-02-13")
	if got := Daily.Key(on); got != "2024-02-13" {
		t.Errorf("Daily.Key = %q", got)
	}
	if got := Monthly.Key(on); got != "2024-02" {
		t.Errorf("Monthly.Key = %q", got)
	}
}
