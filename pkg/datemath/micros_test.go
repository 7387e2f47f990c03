package datemath_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"keep-import/pkg/datemath"
)

func TestMicrosToISO(t *testing.T) {
	tests := []struct {
		name string
		usec int64
		want string
	}{
		{
			name: "Epoch",
			usec: 0,
			want: "1970-01-01T00:00:00Z",
		},
		{
			name: "Whole seconds",
			usec: 1_700_000_000_000_000,
			want: "2023-11-14T22:13:20Z",
		},
		{
			name: "Sub-second keeps six digits",
			usec: 1_700_000_000_500_000,
			want: "2023-11-14T22:13:20.500000Z",
		},
		{
			name: "Single microsecond",
			usec: 1_600_000_000_000_001,
			want: "2020-09-13T12:26:40.000001Z",
		},
		{
			name: "Before epoch",
			usec: -1_500_000,
			want: "1969-12-31T23:59:58.500000Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datemath.MicrosToISO(tt.usec)
			if got != tt.want {
				t.Errorf("MicrosToISO(%d) = %q, want %q", tt.usec, got, tt.want)
			}
		})
	}
}

func TestMicrosToISOIsPure(t *testing.T) {
	const usec = 1_612_345_678_901_234
	first := datemath.MicrosToISO(usec)
	for i := 0; i < 5; i++ {
		if got := datemath.MicrosToISO(usec); got != first {
			t.Fatalf("call %d returned %q, first call returned %q", i, got, first)
		}
	}
	if strings.Contains(first, "+00:00") || !strings.HasSuffix(first, "Z") {
		t.Errorf("expected literal Z suffix, got %q", first)
	}
}

func TestMicrosRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 1_612_345_678_901_234, math.MaxInt64}
	for _, v := range values {
		if got := datemath.FromMicros(v).UnixMicro(); got != v {
			t.Errorf("round trip of %d returned %d", v, got)
		}
	}

	parsed, err := time.Parse(time.RFC3339Nano, datemath.MicrosToISO(1_612_345_678_901_234))
	if err != nil {
		t.Fatalf("output is not RFC3339: %v", err)
	}
	if parsed.UnixMicro() != 1_612_345_678_901_234 {
		t.Errorf("parsed back to %d", parsed.UnixMicro())
	}
	if datemath.FromMicros(42).Location() != time.UTC {
		t.Errorf("FromMicros must return UTC")
	}
}
