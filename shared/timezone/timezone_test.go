package timezone_test

import (
	"aircon/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Cleanup(func() { _ = timezone.Load("") })

	instant := time.Date(2025, 3, 1, 2, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		zone      string
		wantErr   bool
		wantZone  string
		formatted string
	}{
		{name: "empty selects utc", zone: "", wantZone: "UTC", formatted: "2025-03-01T02:30:00Z"},
		{name: "named zone", zone: "Asia/Singapore", wantZone: "Asia/Singapore", formatted: "2025-03-01T10:30:00+08:00"},
		{name: "unknown zone falls back to utc", zone: "Mars/Olympus", wantErr: true, wantZone: "UTC", formatted: "2025-03-01T02:30:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := timezone.Load(tt.zone)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantZone, timezone.Location().String())
			assert.Equal(t, tt.formatted, timezone.Format(instant, time.RFC3339))
			assert.Equal(t, tt.wantZone, timezone.Now().Location().String())
		})
	}
}
