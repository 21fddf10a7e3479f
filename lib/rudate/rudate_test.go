package rudate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.June, 14, 10, 30, 45, 120, time.UTC)

func TestParseRegistered(t *testing.T) {
	cases := []struct {
		text   string
		expect time.Time
	}{
		{
			text:   "сегодня, 14:05",
			expect: time.Date(2024, time.June, 14, 14, 5, 0, 0, time.UTC),
		},
		{
			text:   "вчера, 09:10",
			expect: time.Date(2024, time.June, 13, 9, 10, 0, 0, time.UTC),
		},
		{
			text:   "12 марта, 18:30",
			expect: time.Date(2024, time.March, 12, 18, 30, 0, 0, time.UTC),
		},
		{
			text:   "12 марта 2023, 18:00",
			expect: time.Date(2023, time.March, 12, 18, 0, 0, 0, time.UTC),
		},
		{
			text:   "1 января 2020, 00:01",
			expect: time.Date(2020, time.January, 1, 0, 1, 0, 0, time.UTC),
		},
	}

	for _, test := range cases {
		parsed, err := ParseRegistered(now, test.text)
		require.NoError(t, err, test.text)
		require.Equal(t, test.expect, parsed, test.text)
	}
}

func TestParseRegisteredRejectsGarbage(t *testing.T) {
	for _, text := range []string{
		"",
		"позавчера, 10:00",
		"12 smarch, 18:30",
		"12 марта в 18:30",
		"сегодня в 14:05",
		"three days ago",
	} {
		_, err := ParseRegistered(now, text)
		var formatErr *DateFormatError
		require.ErrorAs(t, err, &formatErr, text)
	}
}

func TestParseLastSeen(t *testing.T) {
	cases := []struct {
		text   string
		expect time.Time
	}{
		{
			text:   "Был на сайте сегодня в 14:02 (3 часа назад)",
			expect: time.Date(2024, time.June, 14, 14, 2, 0, 0, time.UTC),
		},
		{
			text:   "Была на сайте вчера в 22:15 (18 часов назад)",
			expect: time.Date(2024, time.June, 13, 22, 15, 0, 0, time.UTC),
		},
		{
			text:   "Был 3 февраля в 07:45 (4 месяца назад)",
			expect: time.Date(2024, time.February, 3, 7, 45, 0, 0, time.UTC),
		},
		{
			text:   "Был 28 декабря 2021 в 23:59 (3 года назад)",
			expect: time.Date(2021, time.December, 28, 23, 59, 0, 0, time.UTC),
		},
	}

	for _, test := range cases {
		parsed, err := ParseLastSeen(now, test.text)
		require.NoError(t, err, test.text)
		require.Equal(t, test.expect, parsed, test.text)
	}
}

func TestParseLastSeenRejectsGarbage(t *testing.T) {
	for _, text := range []string{
		"Онлайн",
		"Был на сайте сегодня, 14:02 (3 часа назад)",
	} {
		_, err := ParseLastSeen(now, text)
		var formatErr *DateFormatError
		require.ErrorAs(t, err, &formatErr, text)
	}
}

func TestParseReviewCreated(t *testing.T) {
	parsed, err := ParseReviewCreated(now, "2 июня в 11:20")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.June, 2, 11, 20, 0, 0, time.UTC), parsed)

	parsed, err = ParseReviewCreated(now, "сегодня, 08:00")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.June, 14, 8, 0, 0, 0, time.UTC), parsed)

	// the relative form joins with a comma, only the absolute form uses "в"
	_, err = ParseReviewCreated(now, "сегодня в 08:00")
	var formatErr *DateFormatError
	require.ErrorAs(t, err, &formatErr)
}
