package route

import (
	"evcal/src-server/model"
	"fmt"
	"time"
)

func parseClock(s string) (model.TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("parseClock: %w", err)
	}
	return model.NewTimeOfDay(t.Hour(), t.Minute()), nil
}
