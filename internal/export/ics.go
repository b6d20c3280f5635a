package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/averyhale/briefer/internal/domain"
	"github.com/google/uuid"
)

const icsTimeLayout = "20060102T150405Z"

// defaultShootDuration is assumed when no finish time is set.
const defaultShootDuration = 4 * time.Hour

// CalendarICS writes a single-event iCalendar file for the shoot.
// Unparseable or missing shoot dates fall back to the current day so the
// export always produces a valid calendar.
func CalendarICS(w io.Writer, brief *domain.Brief) error {
	now := time.Now().UTC()
	start := parseShootStart(brief, now)
	end := start.Add(shootDuration(brief))

	location := brief.Location
	if location == "" {
		location = "TBD"
	}
	summary := brief.ProjectName
	if summary == "" {
		summary = "Photography Shoot"
	}

	status := "TENTATIVE"
	if brief.ShootStatus == domain.ShootConfirmed {
		status = "CONFIRMED"
	}

	var lines []string
	lines = append(lines,
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Briefer//Production Brief//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:"+uuid.New().String()+"@briefer",
		"DTSTAMP:"+now.Format(icsTimeLayout),
		"DTSTART:"+start.Format(icsTimeLayout),
		"DTEND:"+end.Format(icsTimeLayout),
		"SUMMARY:"+escapeICSText(summary),
		"DESCRIPTION:"+escapeICSText(eventDescription(brief)),
		"LOCATION:"+escapeICSText(location),
		"STATUS:"+status,
		"SEQUENCE:0",
		"BEGIN:VALARM",
		"TRIGGER:-PT24H",
		"DESCRIPTION:Shoot tomorrow",
		"ACTION:DISPLAY",
		"END:VALARM",
		"END:VEVENT",
		"END:VCALENDAR",
	)

	// iCalendar requires CRLF line endings.
	if _, err := io.WriteString(w, strings.Join(lines, "\r\n")+"\r\n"); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}

func parseShootStart(brief *domain.Brief, fallback time.Time) time.Time {
	day := fallback
	for _, layout := range []string{"2006-01-02", time.RFC3339, "January 2, 2006", "Jan 2, 2006", "01/02/2006"} {
		if t, err := time.Parse(layout, brief.ShootDates); err == nil {
			day = t.UTC()
			break
		}
	}

	if t, err := time.Parse("15:04", brief.ShootStartTime); err == nil {
		return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
	}
	return day
}

func shootDuration(brief *domain.Brief) time.Duration {
	start, err1 := time.Parse("15:04", brief.ShootStartTime)
	finish, err2 := time.Parse("15:04", brief.ShootFinishTime)
	if err1 == nil && err2 == nil && finish.After(start) {
		return finish.Sub(start)
	}
	return defaultShootDuration
}

func eventDescription(brief *domain.Brief) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Shoot: %s\n", brief.ProjectName)
	if brief.Overview != "" {
		fmt.Fprintf(&b, "\nOverview: %s\n", brief.Overview)
	}
	if brief.ShootStatus != "" {
		fmt.Fprintf(&b, "\nStatus: %s\n", brief.ShootStatus)
	}
	if len(brief.Crew) > 0 {
		b.WriteString("\nCrew:\n")
		for _, m := range brief.Crew {
			fmt.Fprintf(&b, "- %s (%s)", m.Name, m.Role)
			if m.CallTime != "" {
				fmt.Fprintf(&b, " - Call: %s", m.CallTime)
			}
			b.WriteString("\n")
		}
	}
	if brief.EmergencyContact != "" {
		fmt.Fprintf(&b, "\nEmergency Contact: %s\n", brief.EmergencyContact)
	}
	return b.String()
}

// escapeICSText escapes text per RFC 5545: backslash, semicolon, comma,
// and newlines.
func escapeICSText(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
	)
	return r.Replace(s)
}
