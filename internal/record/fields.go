package record

import (
	"regexp"
	"strconv"
	"time"
	"unicode"
)

// MinShowYear is the first year accepted in a show ID: dates must postdate
// the adoption of the Gregorian calendar.
const MinShowYear = 1583

var (
	reStudentID = regexp.MustCompile(`^\d{2}$`)
	rePassword  = regexp.MustCompile(`^\d{4}$`)
	reShowID    = regexp.MustCompile(`^\d{12}$`)
	reDate      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reShowTime  = regexp.MustCompile(`^(\d{2}):(\d{2})-(\d{2}):(\d{2})$`)
)

const (
	dateLayout   = "2006-01-02"
	showIDLayout = "200601021504"
)

// ValidStudentID reports whether s is exactly two ASCII digits.
func ValidStudentID(s string) bool { return reStudentID.MatchString(s) }

// ValidPassword reports whether s is exactly four ASCII digits.
func ValidPassword(s string) bool { return rePassword.MatchString(s) }

// CheckDate validates a YYYY-MM-DD string.  The year may not start with
// 0 and the day must exist in the calendar.
func CheckDate(s string) error {
	if !reDate.MatchString(s) {
		return syntaxf("date %q is not YYYY-MM-DD", s)
	}
	if s[0] == '0' {
		return semanticf("date %q has a year starting with 0", s)
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return semanticf("date %q does not exist", s)
	}
	return nil
}

// CheckShowID validates a 12 digit YYYYMMDDHHmm identifier.
func CheckShowID(s string) error {
	if !reShowID.MatchString(s) {
		return syntaxf("show id %q is not 12 digits", s)
	}
	if _, err := time.Parse(showIDLayout, s); err != nil {
		return semanticf("show id %q is not a real date and time", s)
	}
	if showYear(s) < MinShowYear {
		return semanticf("show id %q predates %d", s, MinShowYear)
	}
	return nil
}

// CheckTitle accepts letters of any script, digits and inner spaces.
func CheckTitle(s string) error {
	if s == "" {
		return syntaxf("empty title")
	}
	rs := []rune(s)
	if unicode.IsSpace(rs[0]) || unicode.IsSpace(rs[len(rs)-1]) {
		return syntaxf("title %q has surrounding whitespace", s)
	}
	for _, r := range rs {
		if r == ' ' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		return syntaxf("title %q contains %q", s, r)
	}
	return nil
}

// CheckShowTime validates "HH:MM-HH:MM" where the end is after the start.
func CheckShowTime(s string) error {
	m := reShowTime.FindStringSubmatch(s)
	if m == nil {
		return syntaxf("show time %q is not HH:MM-HH:MM", s)
	}
	sh, sm := atoi(m[1]), atoi(m[2])
	eh, em := atoi(m[3]), atoi(m[4])
	if sh > 23 || eh > 23 || sm > 59 || em > 59 {
		return semanticf("show time %q is not a valid time of day", s)
	}
	if eh*60+em <= sh*60+sm {
		return semanticf("show time %q ends before it starts", s)
	}
	return nil
}

func showYear(id string) int { return atoi(id[0:4]) }

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
