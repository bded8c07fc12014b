package models

import (
	"time"
	_ "time/tzdata"
)

// CurrentTimeModel is the server clock, rendered in the agency timezone.
type CurrentTimeModel struct {
	ReadableTime string `json:"readableTime"`
	Time         int64  `json:"time"`
	Timezone     string `json:"timezone"`
}

type CurrentTimeData struct {
	Entry      CurrentTimeModel `json:"entry"`
	References ReferencesModel  `json:"references"`
}

// NewCurrentTimeData renders t in the named IANA timezone. An empty or
// unknown name falls back to UTC.
func NewCurrentTimeData(t time.Time, timezone string, references ReferencesModel) CurrentTimeData {
	loc, err := time.LoadLocation(timezone)
	if timezone == "" || err != nil {
		loc = time.UTC
	}
	local := t.In(loc)

	return CurrentTimeData{
		Entry: CurrentTimeModel{
			ReadableTime: local.Format(time.RFC3339),
			Time:         t.UnixMilli(),
			Timezone:     loc.String(),
		},
		References: references,
	}
}
