// Package ics renders minimal iCalendar feeds for job appointments.
package ics

import (
	"fmt"
	"strings"
	"time"
)

// Event is one VEVENT.
type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	Duration    time.Duration
}

const stampLayout = "20060102T150405Z"

// Calendar renders a VCALENDAR document containing the given events.
// Lines are CRLF terminated per RFC 5545.
func Calendar(events []Event) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//InsulHub//Jobs//EN\r\n")
	for _, e := range events {
		writeEvent(&b, e)
	}
	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

func writeEvent(b *strings.Builder, e Event) {
	start := e.Start.UTC()
	end := start.Add(e.Duration)
	b.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(b, "UID:%s\r\n", escape(e.UID))
	fmt.Fprintf(b, "DTSTAMP:%s\r\n", start.Format(stampLayout))
	fmt.Fprintf(b, "DTSTART:%s\r\n", start.Format(stampLayout))
	fmt.Fprintf(b, "DTEND:%s\r\n", end.Format(stampLayout))
	fmt.Fprintf(b, "SUMMARY:%s\r\n", escape(e.Summary))
	if e.Description != "" {
		fmt.Fprintf(b, "DESCRIPTION:%s\r\n", escape(e.Description))
	}
	if e.Location != "" {
		fmt.Fprintf(b, "LOCATION:%s\r\n", escape(e.Location))
	}
	b.WriteString("END:VEVENT\r\n")
}

// escape quotes the characters RFC 5545 reserves in text values.
func escape(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
	)
	return r.Replace(s)
}
