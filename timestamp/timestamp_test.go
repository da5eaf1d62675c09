package timestamp

import (
	"strconv"
	"testing"
	"time"
)

func TestISO8601(t *testing.T) {
	refTime := time.Date(1985, 4, 12, 23, 20, 50, int(520*time.Millisecond), time.UTC)

	formatted := FormatISO8601(refTime)
	if e, a := "1985-04-12T23:20:50.52Z", formatted; e != a {
		t.Errorf("expected %v, got %v", e, a)
	}

	parseTime, err := ParseISO8601(formatted)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if e, a := refTime, parseTime; !e.Equal(a) {
		t.Errorf("expected %v, got %v", e, a)
	}
}

func TestISO8601Offset(t *testing.T) {
	parseTime, err := ParseISO8601("2014-04-29T20:30:38+02:00")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if e, a := time.Date(2014, 4, 29, 18, 30, 38, 0, time.UTC), parseTime; !e.Equal(a) {
		t.Errorf("expected %v, got %v", e, a)
	}
}

func TestEpochSeconds(t *testing.T) {
	cases := []struct {
		reference    time.Time
		expectedUnix float64
		expectedTime time.Time
	}{
		{
			reference:    time.Date(2018, 1, 9, 20, 51, 21, 123399936, time.UTC),
			expectedUnix: 1515531081.123,
			expectedTime: time.Date(2018, 1, 9, 20, 51, 21, 1.23e8, time.UTC),
		},
		{
			reference:    time.Date(2018, 1, 9, 20, 51, 21, 1e8, time.UTC),
			expectedUnix: 1515531081.1,
			expectedTime: time.Date(2018, 1, 9, 20, 51, 21, 1e8, time.UTC),
		},
		{
			reference:    time.Date(2018, 1, 9, 20, 51, 21, 123567891, time.UTC),
			expectedUnix: 1515531081.123,
			expectedTime: time.Date(2018, 1, 9, 20, 51, 21, 1.23e8, time.UTC),
		},
	}

	for i, tt := range cases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			epochSeconds := FormatEpochSeconds(tt.reference)
			if e, a := tt.expectedUnix, epochSeconds; e != a {
				t.Errorf("expected %v, got %v", e, a)
			}

			parseTime := ParseEpochSeconds(epochSeconds)
			if e, a := tt.expectedTime, parseTime; !e.Equal(a) {
				t.Errorf("expected %v, got %v", e, a)
			}
		})
	}

	// Higher precision inputs truncate to milliseconds.
	if e, a := time.Date(2018, 1, 9, 20, 51, 21, 1.23e8, time.UTC), ParseEpochSeconds(1515531081.12356); !e.Equal(a) {
		t.Errorf("expected %v, got %v", e, a)
	}
}

func TestEpochFarRange(t *testing.T) {
	// Outside the ~1678-2262 window UnixNano overflows int64; epoch
	// formatting must not go through it.
	cases := []time.Time{
		time.Date(9999, 12, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1500, 6, 15, 12, 0, 0, int(250*time.Millisecond), time.UTC),
	}

	for i, reference := range cases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if e, a := reference, ParseEpochSeconds(FormatEpochSeconds(reference)); !e.Equal(a) {
				t.Errorf("expected %v, got %v", e, a)
			}
			if e, a := reference, ParseEpochMilliseconds(FormatEpochMilliseconds(reference)); !e.Equal(a) {
				t.Errorf("expected %v, got %v", e, a)
			}
		})
	}
}

func TestEpochMilliseconds(t *testing.T) {
	refTime := time.Date(2018, 1, 9, 20, 51, 21, int(123*time.Millisecond), time.UTC)

	ms := FormatEpochMilliseconds(refTime)
	if e, a := 1515531081123.0, ms; e != a {
		t.Errorf("expected %v, got %v", e, a)
	}

	parseTime := ParseEpochMilliseconds(ms)
	if e, a := refTime, parseTime; !e.Equal(a) {
		t.Errorf("expected %v, got %v", e, a)
	}
}
