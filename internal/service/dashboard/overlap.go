package dashboard

import (
	"math"
	"time"

	"github.com/moath17/taskdashbord-sub001/internal/domain/dashboard"
	"github.com/moath17/taskdashbord-sub001/internal/domain/plan"
	"github.com/moath17/taskdashbord-sub001/internal/domain/user"
)

// DetectScheduleConflicts finds date-range intersections between one user's
// approved leave plans and approved training plans. Plans are grouped per
// user first, so records belonging to different users can never pair up. A
// plan missing either boundary date is skipped, never an error.
func DetectScheduleConflicts(users []user.User, leaves []plan.LeavePlan, trainings []plan.TrainingPlan) []dashboard.OverlapRecord {
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	leavesByUser := make(map[string][]plan.LeavePlan)
	for i := range leaves {
		l := &leaves[i]
		if l.Status != plan.StatusApproved || !l.HasDates() {
			continue
		}
		leavesByUser[l.UserID] = append(leavesByUser[l.UserID], *l)
	}

	var conflicts []dashboard.OverlapRecord
	for i := range trainings {
		t := &trainings[i]
		if t.Status != plan.StatusApproved || !t.HasDates() {
			continue
		}
		for _, l := range leavesByUser[t.UserID] {
			start := maxTime(*l.StartDate, *t.StartDate)
			end := minTime(*l.EndDate, *t.EndDate)
			if start.After(end) {
				continue
			}
			conflicts = append(conflicts, dashboard.OverlapRecord{
				UserID:         t.UserID,
				UserName:       names[t.UserID],
				LeavePlanID:    l.ID,
				TrainingPlanID: t.ID,
				OverlapStart:   start,
				OverlapEnd:     end,
				OverlapDays:    inclusiveDays(start, end),
			})
		}
	}
	return conflicts
}

// inclusiveDays counts calendar days with both boundary days included, so a
// single-day overlap is 1.
func inclusiveDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
