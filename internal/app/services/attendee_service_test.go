package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owlconnect/owlconnect/internal/app/models"
	"github.com/owlconnect/owlconnect/internal/app/repositories"
	"github.com/owlconnect/owlconnect/internal/db"
	"github.com/owlconnect/owlconnect/internal/pkg/apperrors"
	"github.com/owlconnect/owlconnect/internal/pkg/grid"
)

// fakeTxRunner invokes the transaction body directly; the fake stores below
// ignore the Querier, so no connection is needed.
type fakeTxRunner struct {
	calls int
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	f.calls++
	return fn(ctx, nil)
}

type fakeAttendeeStore struct {
	attendees []*models.Attendee
	attendee  *models.Attendee
	affected  int64
	err       error

	created *models.Attendee
	updated *models.Attendee
}

func (f *fakeAttendeeStore) GetAll(ctx context.Context) ([]*models.Attendee, error) {
	return f.attendees, f.err
}

func (f *fakeAttendeeStore) GetByID(ctx context.Context, id int64) (*models.Attendee, error) {
	return f.attendee, f.err
}

func (f *fakeAttendeeStore) Create(ctx context.Context, q repositories.Querier, attendee *models.Attendee) error {
	if f.err != nil {
		return f.err
	}
	attendee.ID = 42
	f.created = attendee
	return nil
}

func (f *fakeAttendeeStore) Update(ctx context.Context, q repositories.Querier, attendee *models.Attendee) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.updated = attendee
	return f.affected, nil
}

func (f *fakeAttendeeStore) Delete(ctx context.Context, id int64) (int64, error) {
	return f.affected, f.err
}

type fakeDepartmentStore struct {
	departments   []*models.Department
	department    *models.Department
	resolvedID    int64
	attendeeCount int64
	affected      int64
	err           error
	resolveErr    error

	resolvedNames []string
	createdDept   *models.Department
	updatedDept   *models.Department
	deleteCalls   int
}

func (f *fakeDepartmentStore) GetAll(ctx context.Context) ([]*models.Department, error) {
	return f.departments, f.err
}

func (f *fakeDepartmentStore) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return f.department, f.err
}

func (f *fakeDepartmentStore) Create(ctx context.Context, department *models.Department) error {
	if f.err != nil {
		return f.err
	}
	f.createdDept = department
	return nil
}

func (f *fakeDepartmentStore) Update(ctx context.Context, department *models.Department) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.updatedDept = department
	return f.affected, nil
}

func (f *fakeDepartmentStore) GetOrCreateByName(ctx context.Context, q repositories.Querier, name string) (int64, error) {
	if f.resolveErr != nil {
		return 0, f.resolveErr
	}
	f.resolvedNames = append(f.resolvedNames, name)
	return f.resolvedID, nil
}

func (f *fakeDepartmentStore) CountAttendees(ctx context.Context, q repositories.Querier, id int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.attendeeCount, nil
}

func (f *fakeDepartmentStore) Delete(ctx context.Context, q repositories.Querier, id int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.deleteCalls++
	return f.affected, nil
}

func newAttendeeServiceForTest(tx *fakeTxRunner, attendees *fakeAttendeeStore, departments *fakeDepartmentStore) AttendeeService {
	return NewAttendeeService(tx, attendees, departments, grid.NewPager(12), zerolog.Nop())
}

func TestCreateAttendeeResolvesDepartmentInTransaction(t *testing.T) {
	tx := &fakeTxRunner{}
	attendees := &fakeAttendeeStore{}
	departments := &fakeDepartmentStore{resolvedID: 5}
	svc := newAttendeeServiceForTest(tx, attendees, departments)

	attendee := &models.Attendee{FullName: "Jane Doe", Department: "Physics"}
	err := svc.CreateAttendee(context.Background(), attendee)

	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, []string{"Physics"}, departments.resolvedNames)
	require.NotNil(t, attendees.created)
	assert.Equal(t, int64(5), attendees.created.DepartmentID)
	assert.Equal(t, int64(42), attendee.ID)
}

func TestCreateAttendeeTrimsDepartmentName(t *testing.T) {
	tx := &fakeTxRunner{}
	attendees := &fakeAttendeeStore{}
	departments := &fakeDepartmentStore{resolvedID: 5}
	svc := newAttendeeServiceForTest(tx, attendees, departments)

	err := svc.CreateAttendee(context.Background(), &models.Attendee{
		FullName:   "Jane Doe",
		Department: "  Physics  ",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Physics"}, departments.resolvedNames)
}

func TestCreateAttendeeValidationSkipsStores(t *testing.T) {
	tests := []struct {
		name     string
		attendee *models.Attendee
	}{
		{"nil attendee", nil},
		{"empty full name", &models.Attendee{Department: "Physics"}},
		{"blank full name", &models.Attendee{FullName: "   ", Department: "Physics"}},
		{"empty department", &models.Attendee{FullName: "Jane Doe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &fakeTxRunner{}
			attendees := &fakeAttendeeStore{}
			departments := &fakeDepartmentStore{resolvedID: 5}
			svc := newAttendeeServiceForTest(tx, attendees, departments)

			err := svc.CreateAttendee(context.Background(), tt.attendee)

			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			assert.Zero(t, tx.calls)
			assert.Nil(t, attendees.created)
		})
	}
}

func TestCreateAttendeeResolveFailureWritesNothing(t *testing.T) {
	tx := &fakeTxRunner{}
	attendees := &fakeAttendeeStore{}
	departments := &fakeDepartmentStore{resolveErr: assert.AnError}
	svc := newAttendeeServiceForTest(tx, attendees, departments)

	err := svc.CreateAttendee(context.Background(), &models.Attendee{
		FullName:   "Jane Doe",
		Department: "Physics",
	})

	assert.Error(t, err)
	assert.Nil(t, attendees.created)
}

func TestUpdateAttendeeResolvesDepartment(t *testing.T) {
	tx := &fakeTxRunner{}
	attendees := &fakeAttendeeStore{affected: 1}
	departments := &fakeDepartmentStore{resolvedID: 9}
	svc := newAttendeeServiceForTest(tx, attendees, departments)

	affected, err := svc.UpdateAttendee(context.Background(), &models.Attendee{
		ID:         3,
		FullName:   "Jane Doe",
		Department: "Chemistry",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, []string{"Chemistry"}, departments.resolvedNames)
	require.NotNil(t, attendees.updated)
	assert.Equal(t, int64(9), attendees.updated.DepartmentID)
}

func TestListAttendeesShufflesAndComputesMeta(t *testing.T) {
	stored := make([]*models.Attendee, 13)
	for i := range stored {
		stored[i] = &models.Attendee{ID: int64(i + 1)}
	}
	svc := newAttendeeServiceForTest(&fakeTxRunner{}, &fakeAttendeeStore{attendees: stored}, &fakeDepartmentStore{})

	attendees, meta, err := svc.ListAttendees(context.Background())

	require.NoError(t, err)
	assert.ElementsMatch(t, stored, attendees)
	assert.Equal(t, 13, meta.Count)
	assert.Equal(t, 12, meta.PageSize)
	assert.Equal(t, 2, meta.TotalPages)
}

func TestListAttendeesEmptyMeta(t *testing.T) {
	svc := newAttendeeServiceForTest(&fakeTxRunner{}, &fakeAttendeeStore{}, &fakeDepartmentStore{})

	attendees, meta, err := svc.ListAttendees(context.Background())

	require.NoError(t, err)
	assert.Empty(t, attendees)
	assert.Equal(t, 0, meta.Count)
	assert.Equal(t, 1, meta.TotalPages)
}

func TestDeleteAttendeeRejectsInvalidID(t *testing.T) {
	svc := newAttendeeServiceForTest(&fakeTxRunner{}, &fakeAttendeeStore{}, &fakeDepartmentStore{})

	_, err := svc.DeleteAttendee(context.Background(), 0)

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}
