// Package rudate parses the Russian-locale date strings FunPay renders into
// its markup: "сегодня, 14:02", "вчера, 09:10", "12 марта 2023, 18:00" and so
// on. Month names come from a fixed table instead of the runtime locale so
// parsing behaves the same on every machine.
package rudate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type DateFormatError struct {
	Text string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("unrecognized date format: %q", e.Text)
}

// genitive case, the only form FunPay renders
var months = map[string]time.Month{
	"января":   time.January,
	"февраля":  time.February,
	"марта":    time.March,
	"апреля":   time.April,
	"мая":      time.May,
	"июня":     time.June,
	"июля":     time.July,
	"августа":  time.August,
	"сентября": time.September,
	"октября":  time.October,
	"ноября":   time.November,
	"декабря":  time.December,
}

// The connector between the day and the time differs between page kinds:
// "12 марта 2023, 18:00" on profile pages, "12 марта 2023 в 18:00" in review
// feeds and last-seen lines. Review feeds mix the two, joining the relative
// form with a comma and the absolute form with "в".
var (
	relativeCommaRegex = regexp.MustCompile(`^(сегодня|вчера), (\d{1,2}):(\d{2})$`)
	relativeInRegex    = regexp.MustCompile(`^(сегодня|вчера) в (\d{1,2}):(\d{2})$`)
	absoluteCommaRegex = regexp.MustCompile(`^(\d{1,2}) ([а-яё]+)(?: (\d{4}))?, (\d{1,2}):(\d{2})$`)
	absoluteInRegex    = regexp.MustCompile(`^(\d{1,2}) ([а-яё]+)(?: (\d{4}))? в (\d{1,2}):(\d{2})$`)
	parentheticalRegex = regexp.MustCompile(`\(.*\)`)
	lastSeenPrefixes   = []string{"Был на сайте", "Была на сайте", "Был", "Была"}
)

// ParseRegistered parses a registration date: "сегодня, HH:mm",
// "вчера, HH:mm" or "D месяца[ YYYY], HH:mm". now supplies the reference day
// and the year when the string omits one.
func ParseRegistered(now time.Time, text string) (time.Time, error) {
	return parse(now, text, relativeCommaRegex, absoluteCommaRegex)
}

// ParseLastSeen parses a last-seen line such as "Был на сайте вчера в 22:15
// (18 часов назад)". The trailing parenthetical is stripped before matching.
// The "never logged in" and "Онлайн" sentinels are the caller's business, not
// this parser's.
func ParseLastSeen(now time.Time, text string) (time.Time, error) {
	text = strings.TrimSpace(parentheticalRegex.ReplaceAllString(text, ""))
	for _, prefix := range lastSeenPrefixes {
		if strings.HasPrefix(text, prefix+" ") {
			text = strings.TrimPrefix(text, prefix+" ")
			break
		}
	}
	return parse(now, text, relativeInRegex, absoluteInRegex)
}

// ParseReviewCreated parses a review creation date: same grammar as
// registration dates but with "в" joining the day and the time in the
// absolute form.
func ParseReviewCreated(now time.Time, text string) (time.Time, error) {
	return parse(now, text, relativeCommaRegex, absoluteInRegex)
}

func parse(now time.Time, text string, relative, absolute *regexp.Regexp) (time.Time, error) {
	if groups := relative.FindStringSubmatch(text); groups != nil {
		hour, _ := strconv.Atoi(groups[2])
		minute, _ := strconv.Atoi(groups[3])

		day := now
		if groups[1] == "вчера" {
			day = day.AddDate(0, 0, -1)
		}
		return at(day, hour, minute), nil
	}

	groups := absolute.FindStringSubmatch(text)
	if groups == nil {
		return time.Time{}, &DateFormatError{Text: text}
	}

	dayOfMonth, _ := strconv.Atoi(groups[1])
	month, ok := months[groups[2]]
	if !ok {
		return time.Time{}, &DateFormatError{Text: text}
	}
	year := now.Year()
	if groups[3] != "" {
		year, _ = strconv.Atoi(groups[3])
	}
	hour, _ := strconv.Atoi(groups[4])
	minute, _ := strconv.Atoi(groups[5])

	return time.Date(year, month, dayOfMonth, hour, minute, 0, 0, now.Location()), nil
}

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}
