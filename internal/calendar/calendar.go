// internal/calendar/calendar.go
//
// Paket calendar membangun ekspor agenda untuk sebuah task: konten file .ics
// (VCALENDAR/VEVENT dengan alarm 15 menit) serta URL Google Calendar dan
// Outlook. Semua fungsi murni terhadap parameternya.
package calendar

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	icalDateLayout   = "20060102T150405"
	googleDateLayout = "20060102T150405Z"

	// DefaultDurationMinutes dipakai bila string durasi tidak bisa di-parse.
	DefaultDurationMinutes = 30
)

var (
	hoursRe   = regexp.MustCompile(`(?i)(\d+)\s*h`)
	minutesRe = regexp.MustCompile(`(?i)(\d+)\s*min`)
)

// Event adalah bahan ekspor satu entri agenda.
type Event struct {
	Title       string
	Description string
	Start       time.Time
	Duration    string // "30min", "1h", "1h 30min"
	Location    string
}

// ParseDurationMinutes mengubah string durasi seperti "30min", "1h", atau
// "2h 30min" menjadi menit. Format tak dikenal jatuh ke default 30 menit.
func ParseDurationMinutes(duration string) int {
	total := 0
	if m := hoursRe.FindStringSubmatch(duration); m != nil {
		if hours, err := strconv.Atoi(m[1]); err == nil {
			total += hours * 60
		}
	}
	if m := minutesRe.FindStringSubmatch(duration); m != nil {
		if minutes, err := strconv.Atoi(m[1]); err == nil {
			total += minutes
		}
	}
	if total == 0 {
		return DefaultDurationMinutes
	}
	return total
}

// escapeText meng-escape karakter spesial field teks iCalendar (RFC 5545).
func escapeText(text string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\n", `\n`,
	)
	return replacer.Replace(text)
}

func (e Event) end() time.Time {
	return e.Start.Add(time.Duration(ParseDurationMinutes(e.Duration)) * time.Minute)
}

// ICS membangun konten file .ics untuk event, dengan alarm display 15 menit
// sebelum mulai. now dipakai untuk DTSTAMP agar output deterministik di test.
func (e Event) ICS(now time.Time) string {
	uid := uuid.NewString() + "@vorsorge-guide-app.com"

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//VorsorgeGuide//DE",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + now.Format(icalDateLayout),
		"DTSTART:" + e.Start.Format(icalDateLayout),
		"DTEND:" + e.end().Format(icalDateLayout),
		"SUMMARY:" + escapeText(e.Title),
		"DESCRIPTION:" + escapeText(e.Description),
	}
	if e.Location != "" {
		lines = append(lines, "LOCATION:"+escapeText(e.Location))
	}
	lines = append(lines,
		"STATUS:CONFIRMED",
		"SEQUENCE:0",
		"BEGIN:VALARM",
		"TRIGGER:-PT15M",
		"ACTION:DISPLAY",
		fmt.Sprintf("DESCRIPTION:Erinnerung: %s", escapeText(e.Title)),
		"END:VALARM",
		"END:VEVENT",
		"END:VCALENDAR",
	)
	return strings.Join(lines, "\r\n")
}

// GoogleURL membangun URL render Google Calendar untuk event.
func (e Event) GoogleURL() string {
	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", e.Title)
	params.Set("details", e.Description)
	params.Set("dates", fmt.Sprintf("%s/%s",
		e.Start.UTC().Format(googleDateLayout),
		e.end().UTC().Format(googleDateLayout)))
	return "https://calendar.google.com/calendar/render?" + params.Encode()
}

// OutlookURL membangun deeplink compose Outlook untuk event.
func (e Event) OutlookURL() string {
	params := url.Values{}
	params.Set("path", "/calendar/action/compose")
	params.Set("rru", "addevent")
	params.Set("subject", e.Title)
	params.Set("body", e.Description)
	params.Set("startdt", e.Start.UTC().Format(time.RFC3339))
	params.Set("enddt", e.end().UTC().Format(time.RFC3339))
	return "https://outlook.live.com/calendar/0/deeplink/compose?" + params.Encode()
}
