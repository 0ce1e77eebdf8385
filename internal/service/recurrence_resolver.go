// Copyright The Teams Assist Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"

	"github.com/teamsassist/meeting-assist-service/internal/domain"
	"github.com/teamsassist/meeting-assist-service/internal/domain/models"
	"github.com/teamsassist/meeting-assist-service/internal/logging"
	"github.com/teamsassist/meeting-assist-service/pkg/concurrent"
)

// recurrenceResolver backfills recurrence patterns for occurrences and
// exceptions whose calendar view rows carry none. It lives for one
// collection invocation so each distinct identifier is looked up at most
// once even across multiple raw pages. A nil map value means the
// identifier was looked up and yielded nothing; lookup failures degrade to
// the same, never failing the batch.
type recurrenceResolver struct {
	calendar domain.CalendarAPI
	token    string
	pool     *concurrent.WorkerPool

	bySeriesID map[string]*models.Recurrence
	byICalUID  map[string]*models.Recurrence
}

func newRecurrenceResolver(calendar domain.CalendarAPI, token string) *recurrenceResolver {
	return &recurrenceResolver{
		calendar:   calendar,
		token:      token,
		pool:       concurrent.NewWorkerPool(4),
		bySeriesID: make(map[string]*models.Recurrence),
		byICalUID:  make(map[string]*models.Recurrence),
	}
}

// resolve attaches recurrence to the meetings of one page batch. All
// lookups for the batch complete before any attachment happens, so the
// result does not depend on lookup completion order.
func (r *recurrenceResolver) resolve(ctx context.Context, meetings []models.Meeting) {
	var needMaster []int
	for i := range meetings {
		m := &meetings[i]
		if m.Recurrence == nil && (m.SeriesMasterID != "" || m.ICalUID != "") {
			needMaster = append(needMaster, i)
		}
	}
	if len(needMaster) == 0 {
		return
	}

	var seriesIDs, icalUIDs []string
	for _, i := range needMaster {
		m := &meetings[i]
		if m.SeriesMasterID != "" {
			if _, cached := r.bySeriesID[m.SeriesMasterID]; !cached {
				r.bySeriesID[m.SeriesMasterID] = nil
				seriesIDs = append(seriesIDs, m.SeriesMasterID)
			}
		}
		if m.ICalUID != "" {
			if _, cached := r.byICalUID[m.ICalUID]; !cached {
				r.byICalUID[m.ICalUID] = nil
				icalUIDs = append(icalUIDs, m.ICalUID)
			}
		}
	}

	// Each lookup writes to its own slot; the maps are only touched once
	// the whole batch is done.
	seriesResults := make([]*models.Recurrence, len(seriesIDs))
	uidResults := make([]*models.Recurrence, len(icalUIDs))

	var tasks []func() error
	for i, sid := range seriesIDs {
		tasks = append(tasks, func() error {
			recurrence, err := r.calendar.GetEventRecurrence(ctx, r.token, sid)
			if err != nil {
				slog.WarnContext(ctx, "series master lookup failed",
					"series_master_id", sid,
					logging.ErrKey, err)
				return nil
			}
			seriesResults[i] = recurrence
			return nil
		})
	}
	for i, uid := range icalUIDs {
		tasks = append(tasks, func() error {
			recurrence, err := r.calendar.FindSeriesMasterRecurrence(ctx, r.token, uid)
			if err != nil {
				slog.WarnContext(ctx, "series master search by iCalUId failed",
					logging.ErrKey, err)
				return nil
			}
			uidResults[i] = recurrence
			return nil
		})
	}

	_ = r.pool.RunAll(ctx, tasks...)

	for i, sid := range seriesIDs {
		r.bySeriesID[sid] = seriesResults[i]
	}
	for i, uid := range icalUIDs {
		r.byICalUID[uid] = uidResults[i]
	}

	for _, i := range needMaster {
		m := &meetings[i]
		if recurrence := r.bySeriesID[m.SeriesMasterID]; m.SeriesMasterID != "" && recurrence != nil {
			m.Recurrence = recurrence
			continue
		}
		if recurrence := r.byICalUID[m.ICalUID]; m.ICalUID != "" && recurrence != nil {
			m.Recurrence = recurrence
		}
	}
}
