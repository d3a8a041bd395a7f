package service

import (
	"context"
	"testing"

	"github.com/nconsulting/timecard/internal/domain"
	"github.com/nconsulting/timecard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveProject(t *testing.T) {
	fake := &testutil.FakeAPI{}
	svc := NewProjectService(fake)

	p := domain.Project{
		ProjectName: "Phoenix",
		Client:      "Acme GmbH",
		PONumber:    "PO-7781",
		StartDate:   "2024-01-01",
		EndDate:     "2024-12-31",
	}
	require.NoError(t, svc.Save(context.Background(), p))
	require.Len(t, fake.SavedProjects, 1)
	assert.Equal(t, "Phoenix", fake.SavedProjects[0].ProjectName)
}

func TestSaveProject_RequiresPONumber(t *testing.T) {
	fake := &testutil.FakeAPI{}
	svc := NewProjectService(fake)

	err := svc.Save(context.Background(), domain.Project{ProjectName: "Phoenix"})
	assert.Error(t, err)
	assert.Empty(t, fake.SavedProjects)
}

func TestSaveProject_EndBeforeStart(t *testing.T) {
	fake := &testutil.FakeAPI{}
	svc := NewProjectService(fake)

	err := svc.Save(context.Background(), domain.Project{
		ProjectName: "Phoenix",
		PONumber:    "PO-7781",
		StartDate:   "2024-06-01",
		EndDate:     "2024-01-01",
	})
	assert.ErrorContains(t, err, "end date is before start date")
	assert.Empty(t, fake.SavedProjects)
}
