package utils

import (
	"fmt"
	"time"
)

// TimeAgo renders the elapsed time between t and now in Portuguese,
// using the largest whole unit among days, hours and minutes.
func TimeAgo(t, now time.Time) string {
	elapsed := now.Sub(t)
	if elapsed < 0 {
		elapsed = 0
	}

	minutes := int64(elapsed / time.Minute)
	hours := minutes / 60
	days := hours / 24

	switch {
	case days > 0:
		return plural(days, "dia", "dias")
	case hours > 0:
		return plural(hours, "hora", "horas")
	case minutes > 0:
		return plural(minutes, "minuto", "minutos")
	default:
		return "Agora mesmo"
	}
}

func plural(n int64, one, many string) string {
	unit := one
	if n > 1 {
		unit = many
	}
	return fmt.Sprintf("%d %s atrás", n, unit)
}
