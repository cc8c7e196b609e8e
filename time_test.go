package pausegov

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/iov-one/pausegov/errors"
)

func TestUnixTimeUnmarshal(t *testing.T) {
	cases := map[string]struct {
		raw      string
		wantErr  *errors.Error
		wantTime UnixTime
	}{
		"zero value": {
			raw:      `0`,
			wantTime: 0,
		},
		"a valid unix time": {
			raw:      `1554120000`,
			wantTime: 1554120000,
		},
		"negative time": {
			raw:     `-4`,
			wantErr: errors.ErrInput,
		},
		"RFC3339 string": {
			raw:      `"2019-04-01T12:00:00Z"`,
			wantTime: 1554120000,
		},
		"invalid format": {
			raw:     `"yesterday"`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got UnixTime
			if err := json.Unmarshal([]byte(tc.raw), &got); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil && got != tc.wantTime {
				t.Fatalf("want %d, got %d", tc.wantTime, got)
			}
		})
	}
}

func TestUnixTimeArithmetic(t *testing.T) {
	now := AsUnixTime(time.Date(2019, 4, 1, 12, 0, 0, 0, time.UTC))
	later := now.Add(AsUnixDuration(48 * time.Hour))

	if got := later.Sub(now); got.Duration() != 48*time.Hour {
		t.Fatalf("unexpected difference: %s", got)
	}
	if !later.Time().Equal(now.Time().Add(48 * time.Hour)) {
		t.Fatalf("unexpected time: %s", later)
	}
	if err := UnixTime(-1).Validate(); !errors.ErrState.Is(err) {
		t.Fatalf("unexpected validation result: %v", err)
	}
}

func TestUnixDurationJSON(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    UnixDuration
		wantErr *errors.Error
	}{
		"number of seconds": {
			raw:  `3600`,
			want: 3600,
		},
		"duration notation": {
			raw:  `"48h"`,
			want: 48 * 3600,
		},
		"sub second precision is dropped": {
			raw:  `"1m30.5s"`,
			want: 90,
		},
		"invalid notation": {
			raw:     `"two days"`,
			wantErr: errors.ErrInput,
		},
		"invalid type": {
			raw:     `[1]`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got UnixDuration
			if err := json.Unmarshal([]byte(tc.raw), &got); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}
			if got != tc.want {
				t.Fatalf("want %d, got %d", tc.want, got)
			}
			raw, err := json.Marshal(got)
			if err != nil {
				t.Fatalf("cannot marshal: %s", err)
			}
			var back UnixDuration
			if err := json.Unmarshal(raw, &back); err != nil || back != got {
				t.Fatalf("serialization is not stable: %s", raw)
			}
		})
	}
}
