package utils

import (
	"fmt"
	"time"
)

var ruMonths = [...]string{
	"январь", "февраль", "март", "апрель", "май", "июнь",
	"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
}

// PeriodLabel renders the budget period header, e.g. "май 2024".
func PeriodLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", ruMonths[t.Month()-1], t.Year())
}

// DateOnly formats t as YYYY-MM-DD in UTC.
func DateOnly(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
