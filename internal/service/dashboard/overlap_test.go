package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moath17/taskdashbord-sub001/internal/domain/plan"
	"github.com/moath17/taskdashbord-sub001/internal/domain/user"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func leavePlan(id, userID string, status plan.Status, start, end *time.Time) plan.LeavePlan {
	return plan.LeavePlan{ID: id, UserID: userID, Type: "annual", StartDate: start, EndDate: end, Status: status}
}

func trainingPlan(id, userID string, status plan.Status, start, end *time.Time) plan.TrainingPlan {
	return plan.TrainingPlan{ID: id, UserID: userID, Type: "online", StartDate: start, EndDate: end, Status: status}
}

func TestDetectScheduleConflicts_InclusiveDayCount(t *testing.T) {
	t.Parallel()
	users := []user.User{{ID: "u1", Name: "Alex"}}
	leaves := []plan.LeavePlan{
		leavePlan("l1", "u1", plan.StatusApproved, timePtr(day(2024, 1, 1)), timePtr(day(2024, 1, 10))),
	}
	trainings := []plan.TrainingPlan{
		trainingPlan("tr1", "u1", plan.StatusApproved, timePtr(day(2024, 1, 5)), timePtr(day(2024, 1, 8))),
	}

	conflicts := DetectScheduleConflicts(users, leaves, trainings)

	require.Len(t, conflicts, 1)
	c := conflicts[0]
	assert.Equal(t, "u1", c.UserID)
	assert.Equal(t, "Alex", c.UserName)
	assert.Equal(t, "l1", c.LeavePlanID)
	assert.Equal(t, "tr1", c.TrainingPlanID)
	assert.Equal(t, day(2024, 1, 5), c.OverlapStart)
	assert.Equal(t, day(2024, 1, 8), c.OverlapEnd)
	// Jan 5, 6, 7, 8 inclusive.
	assert.Equal(t, 4, c.OverlapDays)
}

func TestDetectScheduleConflicts_SingleDayOverlap(t *testing.T) {
	t.Parallel()
	users := []user.User{{ID: "u1", Name: "Alex"}}
	leaves := []plan.LeavePlan{
		leavePlan("l1", "u1", plan.StatusApproved, timePtr(day(2024, 3, 1)), timePtr(day(2024, 3, 5))),
	}
	trainings := []plan.TrainingPlan{
		trainingPlan("tr1", "u1", plan.StatusApproved, timePtr(day(2024, 3, 5)), timePtr(day(2024, 3, 9))),
	}

	conflicts := DetectScheduleConflicts(users, leaves, trainings)

	require.Len(t, conflicts, 1)
	assert.Equal(t, 1, conflicts[0].OverlapDays)
}

func TestDetectScheduleConflicts_NeverCrossesUsers(t *testing.T) {
	t.Parallel()
	users := []user.User{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}
	// Identical, fully intersecting ranges - but for different users.
	leaves := []plan.LeavePlan{
		leavePlan("l1", "a", plan.StatusApproved, timePtr(day(2024, 2, 1)), timePtr(day(2024, 2, 10))),
	}
	trainings := []plan.TrainingPlan{
		trainingPlan("tr1", "b", plan.StatusApproved, timePtr(day(2024, 2, 1)), timePtr(day(2024, 2, 10))),
	}

	conflicts := DetectScheduleConflicts(users, leaves, trainings)
	assert.Empty(t, conflicts)
}

func TestDetectScheduleConflicts_OnlyApprovedWithDates(t *testing.T) {
	t.Parallel()
	users := []user.User{{ID: "u1", Name: "Alex"}}
	leaves := []plan.LeavePlan{
		leavePlan("pending", "u1", plan.StatusPending, timePtr(day(2024, 4, 1)), timePtr(day(2024, 4, 10))),
		leavePlan("no-end", "u1", plan.StatusApproved, timePtr(day(2024, 4, 1)), nil),
		leavePlan("ok", "u1", plan.StatusApproved, timePtr(day(2024, 4, 3)), timePtr(day(2024, 4, 6))),
	}
	trainings := []plan.TrainingPlan{
		trainingPlan("rejected", "u1", plan.StatusRejected, timePtr(day(2024, 4, 1)), timePtr(day(2024, 4, 10))),
		trainingPlan("ok", "u1", plan.StatusApproved, timePtr(day(2024, 4, 4)), timePtr(day(2024, 4, 8))),
	}

	conflicts := DetectScheduleConflicts(users, leaves, trainings)

	require.Len(t, conflicts, 1)
	assert.Equal(t, "ok", conflicts[0].LeavePlanID)
	assert.Equal(t, "ok", conflicts[0].TrainingPlanID)
	// Apr 4, 5, 6.
	assert.Equal(t, 3, conflicts[0].OverlapDays)
}

func TestDetectScheduleConflicts_DisjointRanges(t *testing.T) {
	t.Parallel()
	users := []user.User{{ID: "u1", Name: "Alex"}}
	leaves := []plan.LeavePlan{
		leavePlan("l1", "u1", plan.StatusApproved, timePtr(day(2024, 5, 1)), timePtr(day(2024, 5, 5))),
	}
	trainings := []plan.TrainingPlan{
		trainingPlan("tr1", "u1", plan.StatusApproved, timePtr(day(2024, 5, 6)), timePtr(day(2024, 5, 9))),
	}

	conflicts := DetectScheduleConflicts(users, leaves, trainings)
	assert.Empty(t, conflicts)
}

func TestDetectScheduleConflicts_EveryPairEmitted(t *testing.T) {
	t.Parallel()
	users := []user.User{{ID: "u1", Name: "Alex"}}
	leaves := []plan.LeavePlan{
		leavePlan("l1", "u1", plan.StatusApproved, timePtr(day(2024, 6, 1)), timePtr(day(2024, 6, 30))),
	}
	trainings := []plan.TrainingPlan{
		trainingPlan("tr1", "u1", plan.StatusApproved, timePtr(day(2024, 6, 3)), timePtr(day(2024, 6, 4))),
		trainingPlan("tr2", "u1", plan.StatusApproved, timePtr(day(2024, 6, 10)), timePtr(day(2024, 6, 12))),
	}

	conflicts := DetectScheduleConflicts(users, leaves, trainings)
	require.Len(t, conflicts, 2)
	assert.Equal(t, 2, conflicts[0].OverlapDays)
	assert.Equal(t, 3, conflicts[1].OverlapDays)
}
