package calendar

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"30min", 30},
		{"45min", 45},
		{"1h", 60},
		{"2h", 120},
		{"1h 30min", 90},
		{"2h 15min", 135},
		{"1H 30MIN", 90},
		{"", 30},
		{"soon", 30},
		{"0min", 30}, // nol dianggap tidak ter-parse, jatuh ke default
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseDurationMinutes(c.in), "duration %q", c.in)
	}
}

func TestICSStructure(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	now := time.Date(2026, 2, 5, 12, 0, 0, 0, time.UTC)
	e := Event{
		Title:       "Gesundheits-Check; Hausarzt",
		Description: "Blutbild, Blutdruck\nNüchtern erscheinen",
		Start:       start,
		Duration:    "1h",
		Location:    "Praxis Dr. Keller, Zürich",
	}

	ics := e.ICS(now)
	lines := strings.Split(ics, "\r\n")

	assert.Equal(t, "BEGIN:VCALENDAR", lines[0])
	assert.Equal(t, "END:VCALENDAR", lines[len(lines)-1])
	assert.Contains(t, ics, "PRODID:-//VorsorgeGuide//DE")
	assert.Contains(t, ics, "DTSTAMP:20260205T120000")
	assert.Contains(t, ics, "DTSTART:20260310T090000")
	assert.Contains(t, ics, "DTEND:20260310T100000")
	// Escaping titik koma, koma, dan newline.
	assert.Contains(t, ics, `SUMMARY:Gesundheits-Check\; Hausarzt`)
	assert.Contains(t, ics, `DESCRIPTION:Blutbild\, Blutdruck\nNüchtern erscheinen`)
	assert.Contains(t, ics, `LOCATION:Praxis Dr. Keller\, Zürich`)
	// Alarm display 15 menit sebelum mulai.
	assert.Contains(t, ics, "TRIGGER:-PT15M")
	assert.Contains(t, ics, "ACTION:DISPLAY")
	assert.Contains(t, ics, `DESCRIPTION:Erinnerung: Gesundheits-Check\; Hausarzt`)

	uidLine := ""
	for _, l := range lines {
		if strings.HasPrefix(l, "UID:") {
			uidLine = l
		}
	}
	require.NotEmpty(t, uidLine)
	assert.True(t, strings.HasSuffix(uidLine, "@vorsorge-guide-app.com"))
}

func TestICSOmitsEmptyLocation(t *testing.T) {
	e := Event{Title: "Test", Start: time.Now(), Duration: "30min"}
	assert.NotContains(t, e.ICS(time.Now()), "LOCATION:")
}

func TestGoogleURL(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e := Event{Title: "Zahnarzt-Kontrolle", Description: "Jährliche Kontrolle", Start: start, Duration: "45min"}

	raw := e.GoogleURL()
	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "calendar.google.com", parsed.Host)

	q := parsed.Query()
	assert.Equal(t, "TEMPLATE", q.Get("action"))
	assert.Equal(t, "Zahnarzt-Kontrolle", q.Get("text"))
	assert.Equal(t, "20260310T090000Z/20260310T094500Z", q.Get("dates"))
}

func TestOutlookURL(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	e := Event{Title: "Hautkrebs-Screening", Description: "Dermatologe", Start: start, Duration: "30min"}

	raw := e.OutlookURL()
	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "outlook.live.com", parsed.Host)

	q := parsed.Query()
	assert.Equal(t, "/calendar/action/compose", q.Get("path"))
	assert.Equal(t, "addevent", q.Get("rru"))
	assert.Equal(t, "Hautkrebs-Screening", q.Get("subject"))
	assert.Equal(t, "2026-03-10T09:00:00Z", q.Get("startdt"))
	assert.Equal(t, "2026-03-10T09:30:00Z", q.Get("enddt"))
}
