package analytics

import (
	"time"

	"github.com/montanaflynn/stats"

	"github.com/moath17/taskdashbord-sub001/internal/domain/analytics"
	"github.com/moath17/taskdashbord-sub001/internal/domain/task"
)

// ComputeVelocity summarizes completion throughput over trailing 7/30-day
// windows plus cycle-time statistics. A task's cycle time runs from its start
// date (or creation when no start date is set) to its completion timestamp;
// tasks without a completion timestamp are ignored.
func ComputeVelocity(tasks []task.Task, now time.Time) analytics.VelocityMetrics {
	since7 := now.AddDate(0, 0, -7)
	since30 := now.AddDate(0, 0, -30)

	var m analytics.VelocityMetrics
	var cycleDays []float64

	for i := range tasks {
		t := &tasks[i]
		if !t.IsCompleted() || t.CompletedAt == nil {
			continue
		}
		if t.CompletedAt.After(since30) {
			m.CompletedLast30Days++
		}
		if t.CompletedAt.After(since7) {
			m.CompletedLast7Days++
		}

		started := t.CreatedAt
		if t.StartDate != nil {
			started = *t.StartDate
		}
		if d := t.CompletedAt.Sub(started); d > 0 {
			cycleDays = append(cycleDays, d.Hours()/24)
		}
	}

	m.TasksPerDay = float64(m.CompletedLast30Days) / 30

	// stats errors only on empty input; an empty report stays at zero.
	if len(cycleDays) > 0 {
		if mean, err := stats.Mean(cycleDays); err == nil {
			m.AvgCompletionDays = mean
		}
		if median, err := stats.Median(cycleDays); err == nil {
			m.MedianCompletionDays = median
		}
	}
	return m
}
