// Package tokens holds the English name tables and the format token alphabet.
package tokens

// Full day names starting with Sunday.
var Weekdays = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Abbreviated day names, three letters, starting with Sun.
var AbbrWeekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Full month names starting with January.
var Months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Abbreviated month names, three letters, starting with Jan.
var AbbrMonths = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// WeekdayName returns the name of weekday 0 (Sunday) to 6 (Saturday).
func WeekdayName(weekday int, abbr bool) string {
	if weekday < 0 || weekday > 6 {
		return ""
	}
	if abbr {
		return AbbrWeekdays[weekday]
	}
	return Weekdays[weekday]
}

// MonthName returns the name of zero-based month 0 (January) to 11 (December).
func MonthName(month int, abbr bool) string {
	if month < 0 || month > 11 {
		return ""
	}
	if abbr {
		return AbbrMonths[month]
	}
	return Months[month]
}

// MonthIndex returns the zero-based index of an exact, case-sensitive month name, or -1.
func MonthIndex(name string, abbr bool) int {
	table := Months[:]
	if abbr {
		table = AbbrMonths[:]
	}
	for i, month := range table {
		if month == name {
			return i
		}
	}
	return -1
}
