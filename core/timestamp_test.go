package core

import (
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		secs uint64
		want string
	}{
		{"epoch", 0, "1970-01-01 00:00:00"},
		{"last second of 1970-01-01", 86399, "1970-01-01 23:59:59"},
		{"second day", 86400, "1970-01-02 00:00:00"},
		{"end of 1970", 31535999, "1970-12-31 23:59:59"},
		{"1972 leap day", 68169600, "1972-02-29 00:00:00"},
		{"y2k", 946684800, "2000-01-01 00:00:00"},
		{"2000 leap day", 951782400, "2000-02-29 00:00:00"},
		{"2023-02-28", 1677542400, "2023-02-28 00:00:00"},
		{"2023-02-28 plus one day", 1677542400 + 86400, "2023-03-01 00:00:00"},
		{"2024 leap day", 1709164800, "2024-02-29 00:00:00"},
		{"2024-03-01", 1709251200, "2024-03-01 00:00:00"},
		{"2024-12-31 end", 1735689599, "2024-12-31 23:59:59"},
		{"int32 overflow", 2147483648, "2038-01-19 03:14:08"},
		{"2100 is not leap", 4107542400, "2100-03-01 00:00:00"},
		{"mixed clock", 1700000000, "2023-11-14 22:13:20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimestamp(tt.secs); got != tt.want {
				t.Errorf("FormatTimestamp(%d) = %q, want %q", tt.secs, got, tt.want)
			}
		})
	}
}

func TestFormatTimestamp_MatchesTimePackage(t *testing.T) {
	for secs := uint64(0); secs < 5_000_000_000; secs += 7_776_013 {
		want := time.Unix(int64(secs), 0).UTC().Format("2006-01-02 15:04:05")
		if got := FormatTimestamp(secs); got != want {
			t.Fatalf("FormatTimestamp(%d) = %q, want %q", secs, got, want)
		}
	}
}

func TestFormatTimestamp_Deterministic(t *testing.T) {
	const secs = 1709164800
	a := FormatTimestamp(secs)
	b := FormatTimestamp(secs)
	if a != b {
		t.Errorf("FormatTimestamp not deterministic: %q vs %q", a, b)
	}
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2024, 2, 29, 13, 5, 9, 999, time.FixedZone("CET", 3600))
	if got, want := Timestamp(ts), "2024-02-29 12:05:09"; got != want {
		t.Errorf("Timestamp() = %q, want %q", got, want)
	}
}

func TestTimestamp_BeforeEpoch(t *testing.T) {
	ts := time.Date(1969, 7, 20, 20, 17, 0, 0, time.UTC)
	if got, want := Timestamp(ts), "1970-01-01 00:00:00"; got != want {
		t.Errorf("Timestamp() = %q, want %q", got, want)
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := map[uint64]bool{
		1970: false,
		1972: true,
		1900: false,
		2000: true,
		2023: false,
		2024: true,
		2100: false,
		2400: true,
	}
	for year, want := range tests {
		if got := IsLeapYear(year); got != want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2023, 2); got != 28 {
		t.Errorf("DaysInMonth(2023, 2) = %d", got)
	}
	if got := DaysInMonth(2024, 2); got != 29 {
		t.Errorf("DaysInMonth(2024, 2) = %d", got)
	}
	if got := DaysInMonth(2024, 12); got != 31 {
		t.Errorf("DaysInMonth(2024, 12) = %d", got)
	}
}

func TestDaysInMonth_OutOfRange(t *testing.T) {
	for _, month := range []uint64{0, 13, 100} {
		if got := DaysInMonth(2024, month); got != 0 {
			t.Errorf("DaysInMonth(2024, %d) = %d, want 0", month, got)
		}
	}
}

func BenchmarkFormatTimestamp(b *testing.B) {
	buf := make([]byte, 0, 32)
	for i := 0; i < b.N; i++ {
		buf = AppendTimestamp(buf[:0], 1709164800)
	}
}
