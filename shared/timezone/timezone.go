// Package timezone stamps and renders times in the zone named by APP_TIMEZONE.
package timezone

import (
	"aircon/config"
	"fmt"
	"sync/atomic"
	"time"
	_ "time/tzdata" // zone database for images without one

	"github.com/rs/zerolog/log"
)

var location atomic.Pointer[time.Location]

func init() {
	name := config.Get().App.Timezone

	if err := Load(name); err != nil {
		log.Error().Err(err).Msg("Failed to load timezone, falling back to UTC")

		return
	}

	log.Info().Str("timezone", Location().String()).Msg("Application timezone initialized")
}

// Load switches the application zone. An empty name selects UTC, and so does an unknown one,
// which is also reported.
func Load(name string) error {
	if name == "" {
		location.Store(time.UTC)

		return nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		location.Store(time.UTC)

		return fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	location.Store(loc)

	return nil
}

func Location() *time.Location {
	if loc := location.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

// Now returns the current time in the application zone.
func Now() time.Time {
	return time.Now().In(Location())
}

func Format(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
