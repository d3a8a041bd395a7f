package service

import (
	"context"
	"testing"

	"github.com/nconsulting/timecard/internal/domain"
	"github.com/nconsulting/timecard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveTask(t *testing.T) {
	fake := &testutil.FakeAPI{}
	svc := NewTaskService(fake)

	task := domain.Task{
		Username:          "jdoe",
		Project:           "Phoenix",
		Task:              "Backend development",
		TimesheetApprover: "pmurphy",
		HRApprover:        "ahr",
		AllowOvertime:     true,
	}
	require.NoError(t, svc.Save(context.Background(), task))
	require.Len(t, fake.SavedTasks, 1)
	assert.True(t, fake.SavedTasks[0].AllowOvertime)
}

func TestSaveTask_RequiresApprovers(t *testing.T) {
	fake := &testutil.FakeAPI{}
	svc := NewTaskService(fake)

	err := svc.Save(context.Background(), domain.Task{
		Username: "jdoe",
		Project:  "Phoenix",
		Task:     "Backend development",
	})
	assert.Error(t, err)
	assert.Empty(t, fake.SavedTasks)
}

func TestManagers(t *testing.T) {
	svc := NewTaskService(&testutil.FakeAPI{})

	lists, err := svc.Managers(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, lists.TimesheetApprovers)
	assert.NotEmpty(t, lists.HRApprovers)
}
