package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Europe/Brussels")
	if err != nil {
		panic(err)
	}
}

// force the timezone to Brussels because the portal renders dates in
// Belgian local time and our servers may end up in another region,
// which skews date-only values derived from <time.Time>.Year()/Month()/Day()
func Now() time.Time {
	return time.Now().In(Location)
}
