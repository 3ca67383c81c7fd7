package awards

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var weekdayNames = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

// FormatMoney renders v rounded to whole units with thousands separators,
// e.g. "$12,345" or "-$80".
func FormatMoney(v float64) string {
	units := int64(math.Round(v))
	if units < 0 {
		return "-$" + humanize.Comma(-units)
	}
	return "$" + humanize.Comma(units)
}

// FormatDate renders t as "<day> de <month>", e.g. "15 de junio".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d de %s", t.Day(), MonthName(t.Month()))
}

// MonthName returns the Spanish name of m.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

func weekdayName(d time.Weekday) string {
	return weekdayNames[d]
}
