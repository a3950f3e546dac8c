// Package export writes calendar documents to disk: one file per tracked
// entity plus a combined file, with per-entity fault isolation.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	ics "github.com/arran4/golang-ical"

	"nba-cal/internal/calendar"
	"nba-cal/internal/domain"
	"nba-cal/internal/logging"
	"nba-cal/internal/metrics"
	"nba-cal/internal/teams"
)

// Manager builds and serializes the configured calendars.
type Manager struct {
	outputDir string
	builder   *calendar.Builder
	logger    *slog.Logger
	recorder  *metrics.Recorder
}

func NewManager(outputDir string, builder *calendar.Builder, logger *slog.Logger, recorder *metrics.Recorder) *Manager {
	return &Manager{outputDir: outputDir, builder: builder, logger: logger, recorder: recorder}
}

// ExportAll writes one calendar per tracked team, conference, and division,
// plus a combined calendar when anything is tracked. A failing entity is
// logged and skipped; its path is simply absent from the returned list.
func (m *Manager) ExportAll(games []domain.Game, tracked teams.Selection, reminderMinutes int) []string {
	var written []string

	for _, abbrev := range tracked.Teams {
		cal, err := m.builder.ForTeam(games, abbrev, reminderMinutes)
		written = m.writeOrSkip(written, cal, err, abbrev, fileName(abbrev))
	}
	for _, conf := range tracked.Conferences {
		cal, err := m.builder.ForConference(games, conf, reminderMinutes)
		written = m.writeOrSkip(written, cal, err, conf, fileName(conf))
	}
	for _, div := range tracked.Divisions {
		cal, err := m.builder.ForDivision(games, div, reminderMinutes)
		written = m.writeOrSkip(written, cal, err, div, fileName(div))
	}

	if !tracked.IsEmpty() {
		cal := m.builder.Combined(games, reminderMinutes)
		written = m.writeOrSkip(written, cal, nil, "combined", "nba_schedule.ics")
	}

	return written
}

func (m *Manager) writeOrSkip(written []string, cal *ics.Calendar, err error, entity, name string) []string {
	if err != nil {
		logging.Error(m.logger, "skipping calendar", err, "entity", entity)
		return written
	}
	path, err := m.write(cal, name)
	if err != nil {
		logging.Error(m.logger, "failed to write calendar", err, "entity", entity, logging.FieldPath, path)
		return written
	}
	m.recorder.RecordCalendarWritten()
	logging.Info(m.logger, "exported calendar", "entity", entity, logging.FieldPath, path)
	return append(written, path)
}

// write serializes fully in memory first, then lands the bytes with a
// temp-file rename so a failed write never leaves a partial calendar behind.
func (m *Manager) write(cal *ics.Calendar, name string) (string, error) {
	target := filepath.Join(m.outputDir, name)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return target, err
	}

	data := []byte(cal.Serialize())

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return target, err
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return target, err
	}
	return target, nil
}

func fileName(entity string) string {
	return fmt.Sprintf("nba_%s.ics", strings.ToLower(strings.TrimSpace(entity)))
}
