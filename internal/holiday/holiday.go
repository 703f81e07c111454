// Package holiday supplies the static holiday names shown on the
// calendar, keyed by YYYY-MM-DD. Only the presentation layer consults
// it; the core never depends on holiday data.
package holiday

import "fmt"

// ForYear returns the fixed-date Korean public holidays of the given
// year. Lunar-calendar holidays (설날, 석가탄신일, 추석) move each year and
// are not derivable from a fixed mapping, so they are omitted.
func ForYear(year int) map[string]string {
	return map[string]string{
		date(year, 1, 1):   "신정",
		date(year, 3, 1):   "삼일절",
		date(year, 5, 5):   "어린이날",
		date(year, 6, 6):   "현충일",
		date(year, 8, 15):  "광복절",
		date(year, 10, 3):  "개천절",
		date(year, 10, 9):  "한글날",
		date(year, 12, 25): "크리스마스",
	}
}

func date(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
