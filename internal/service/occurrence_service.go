// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/teamsassist/meeting-assist-service/internal/domain/models"
	"github.com/teamsassist/meeting-assist-service/pkg/utils"
)

// OccurrenceService computes occurrence times from calendar recurrence
// patterns.
type OccurrenceService struct{}

// NewOccurrenceService creates a new OccurrenceService
func NewOccurrenceService() *OccurrenceService {
	return &OccurrenceService{}
}

var rruleWeekdays = map[string]string{
	"sunday":    "SU",
	"monday":    "MO",
	"tuesday":   "TU",
	"wednesday": "WE",
	"thursday":  "TH",
	"friday":    "FR",
	"saturday":  "SA",
}

var rruleIndexes = map[string]int{
	"first":  1,
	"second": 2,
	"third":  3,
	"fourth": 4,
	"last":   -1,
}

// NextOccurrence computes the first occurrence strictly after the given
// reference time. seriesStart anchors the recurrence; an unknown or
// unsupported pattern yields nil.
func (s *OccurrenceService) NextOccurrence(recurrence *models.Recurrence, seriesStart, after time.Time) *time.Time {
	rule := s.buildRule(recurrence, seriesStart)
	if rule == nil {
		return nil
	}

	next := rule.After(after, false)
	if next.IsZero() {
		return nil
	}
	return utils.TimePtr(next.UTC())
}

// buildRule converts a calendar recurrence into an rrule anchored at the
// series start.
func (s *OccurrenceService) buildRule(recurrence *models.Recurrence, seriesStart time.Time) *rrule.RRule {
	if recurrence == nil || recurrence.Pattern == nil || seriesStart.IsZero() {
		return nil
	}
	pattern := recurrence.Pattern

	var spec strings.Builder

	switch pattern.Type {
	case "daily":
		spec.WriteString("FREQ=DAILY;")
	case "weekly":
		spec.WriteString("FREQ=WEEKLY;")
		if byday := s.parseByDay(pattern.DaysOfWeek, ""); byday != "" {
			spec.WriteString(fmt.Sprintf("BYDAY=%s;", byday))
		}
	case "absoluteMonthly":
		spec.WriteString("FREQ=MONTHLY;")
		if pattern.DayOfMonth > 0 {
			spec.WriteString(fmt.Sprintf("BYMONTHDAY=%d;", pattern.DayOfMonth))
		}
	case "relativeMonthly":
		spec.WriteString("FREQ=MONTHLY;")
		if byday := s.parseByDay(pattern.DaysOfWeek, pattern.Index); byday != "" {
			spec.WriteString(fmt.Sprintf("BYDAY=%s;", byday))
		}
	case "absoluteYearly":
		spec.WriteString("FREQ=YEARLY;")
		if pattern.Month > 0 {
			spec.WriteString(fmt.Sprintf("BYMONTH=%d;", pattern.Month))
		}
		if pattern.DayOfMonth > 0 {
			spec.WriteString(fmt.Sprintf("BYMONTHDAY=%d;", pattern.DayOfMonth))
		}
	case "relativeYearly":
		spec.WriteString("FREQ=YEARLY;")
		if pattern.Month > 0 {
			spec.WriteString(fmt.Sprintf("BYMONTH=%d;", pattern.Month))
		}
		if byday := s.parseByDay(pattern.DaysOfWeek, pattern.Index); byday != "" {
			spec.WriteString(fmt.Sprintf("BYDAY=%s;", byday))
		}
	default:
		return nil
	}

	if pattern.Interval > 1 {
		spec.WriteString(fmt.Sprintf("INTERVAL=%d;", pattern.Interval))
	}

	if r := recurrence.Range; r != nil {
		switch r.Type {
		case "endDate":
			if end, err := time.Parse("2006-01-02", r.EndDate); err == nil {
				// Inclusive end of the final day.
				until := end.Add(24*time.Hour - time.Second)
				spec.WriteString(fmt.Sprintf("UNTIL=%s;", until.UTC().Format("20060102T150405Z")))
			}
		case "numbered":
			if r.NumberOfOccurrences > 0 {
				spec.WriteString(fmt.Sprintf("COUNT=%d;", r.NumberOfOccurrences))
			}
		}
	}

	rule, err := rrule.StrToRRule(strings.TrimSuffix(spec.String(), ";"))
	if err != nil {
		return nil
	}
	rule.DTStart(seriesStart.UTC())
	return rule
}

// parseByDay maps calendar weekday names to BYDAY abbreviations, with an
// optional ordinal prefix (first..fourth, last) for relative patterns.
func (s *OccurrenceService) parseByDay(daysOfWeek []string, index string) string {
	prefix := ""
	if index != "" {
		ordinal, ok := rruleIndexes[strings.ToLower(index)]
		if !ok {
			return ""
		}
		prefix = fmt.Sprintf("%d", ordinal)
	}

	var days []string
	for _, day := range daysOfWeek {
		abbrev, ok := rruleWeekdays[strings.ToLower(day)]
		if !ok {
			continue
		}
		days = append(days, prefix+abbrev)
	}
	return strings.Join(days, ",")
}
