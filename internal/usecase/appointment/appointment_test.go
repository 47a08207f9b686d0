package appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/vet-clinic/internal/events"
	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
	"github.com/BruksfildServices01/vet-clinic/internal/logging"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
)

// ------------------------------------------------------
// fakes
// ------------------------------------------------------

type fakeRepo struct {
	mu sync.Mutex

	nextID       uint
	petOwners    map[uint]uint
	appointments map[uint]*models.Appointment
	rows         []domain.ListRow

	failWith error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		petOwners:    map[uint]uint{},
		appointments: map[uint]*models.Appointment{},
	}
}

func (r *fakeRepo) CreateForOwner(_ context.Context, ownerID uint, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		return r.failWith
	}
	if r.petOwners[ap.PetID] != ownerID {
		return httperr.ErrBusiness("pet_not_owned")
	}
	r.nextID++
	ap.ID = r.nextID
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeRepo) GetForOwner(ctx context.Context, id, ownerID uint) (*models.Appointment, error) {
	ap, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.petOwners[ap.PetID] != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	return ap, nil
}

func (r *fakeRepo) ListForOwner(context.Context, uint) ([]domain.ListRow, error) {
	return r.rows, r.failWith
}

func (r *fakeRepo) ListAll(context.Context) ([]domain.ListRow, error) {
	return r.rows, r.failWith
}

func (r *fakeRepo) TransitionForOwner(_ context.Context, id, ownerID uint, to domain.Status, from []domain.Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok || r.petOwners[ap.PetID] != ownerID || !contains(from, ap.Status) {
		return false, nil
	}
	ap.Status = string(to)
	return true, nil
}

func (r *fakeRepo) Transition(_ context.Context, id uint, to domain.Status, from []domain.Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok || !contains(from, ap.Status) {
		return false, nil
	}
	ap.Status = string(to)
	return true, nil
}

func contains(list []domain.Status, s string) bool {
	for _, v := range list {
		if string(v) == s {
			return true
		}
	}
	return false
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, ev events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func newDispatcher(t *testing.T) (*events.Dispatcher, *recordingPublisher) {
	t.Helper()
	pub := &recordingPublisher{}
	return events.NewDispatcher(pub, logging.Discard(), 10), pub
}

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newCreate(repo domain.Repository, d *events.Dispatcher) *CreateAppointment {
	uc := NewCreateAppointment(repo, d, time.UTC)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

// ------------------------------------------------------
// create
// ------------------------------------------------------

func TestCreateAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.petOwners[5] = 1
	d, pub := newDispatcher(t)

	ap, err := newCreate(repo, d).Execute(context.Background(), CreateAppointmentInput{
		OwnerID:         1,
		PetID:           5,
		VetID:           1,
		AppointmentDate: "2026-03-11T09:30",
		Reason:          "  vaccine ",
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", ap.Status)
	assert.Equal(t, "vaccine", ap.Reason)
	assert.Equal(t, time.Date(2026, 3, 11, 9, 30, 0, 0, time.UTC), ap.AppointmentDate)

	d.Close()
	require.Len(t, pub.events, 1)
	assert.Equal(t, events.AppointmentBooked, pub.events[0].Type)
	assert.Equal(t, ap.ID, pub.events[0].AppointmentID)
}

func TestCreateAppointmentRejections(t *testing.T) {
	cases := []struct {
		name string
		in   CreateAppointmentInput
		code string
	}{
		{"missing pet", CreateAppointmentInput{OwnerID: 1, VetID: 1, AppointmentDate: "2026-04-01"}, "missing_fields"},
		{"missing date", CreateAppointmentInput{OwnerID: 1, PetID: 5, VetID: 1}, "missing_fields"},
		{"garbage date", CreateAppointmentInput{OwnerID: 1, PetID: 5, VetID: 1, AppointmentDate: "next tuesday"}, "invalid_date"},
		{"past date", CreateAppointmentInput{OwnerID: 1, PetID: 5, VetID: 1, AppointmentDate: "2026-03-09T10:00:00Z"}, "date_in_past"},
		{"exactly now", CreateAppointmentInput{OwnerID: 1, PetID: 5, VetID: 1, AppointmentDate: "2026-03-10T12:00:00Z"}, "date_in_past"},
		{"foreign pet", CreateAppointmentInput{OwnerID: 2, PetID: 5, VetID: 1, AppointmentDate: "2026-03-12"}, "pet_not_owned"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepo()
			repo.petOwners[5] = 1

			_, err := newCreate(repo, nil).Execute(context.Background(), tc.in)
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
			assert.Empty(t, repo.appointments)
		})
	}
}

func TestCreateAppointmentUsesConfiguredLocation(t *testing.T) {
	repo := newFakeRepo()
	repo.petOwners[5] = 1

	loc := time.FixedZone("UTC-3", -3*60*60)
	uc := NewCreateAppointment(repo, nil, loc)
	uc.now = func() time.Time { return fixedNow }

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID: 1, PetID: 5, VetID: 1, AppointmentDate: "2026-03-11 09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC), ap.AppointmentDate)
}

// ------------------------------------------------------
// cancel
// ------------------------------------------------------

func seeded(status domain.Status) *fakeRepo {
	repo := newFakeRepo()
	repo.petOwners[5] = 1
	repo.appointments[10] = &models.Appointment{ID: 10, PetID: 5, VetID: 1, Status: string(status)}
	return repo
}

func TestCancelAppointment(t *testing.T) {
	for _, from := range []domain.Status{domain.StatusPending, domain.StatusConfirmed} {
		repo := seeded(from)
		d, pub := newDispatcher(t)

		err := NewCancelAppointment(repo, d).Execute(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", repo.appointments[10].Status)

		d.Close()
		require.Len(t, pub.events, 1)
		assert.Equal(t, events.AppointmentCancelled, pub.events[0].Type)
	}
}

func TestCancelAppointmentRejections(t *testing.T) {
	t.Run("already cancelled", func(t *testing.T) {
		repo := seeded(domain.StatusCancelled)
		err := NewCancelAppointment(repo, nil).Execute(context.Background(), 1, 10)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("completed", func(t *testing.T) {
		repo := seeded(domain.StatusCompleted)
		err := NewCancelAppointment(repo, nil).Execute(context.Background(), 1, 10)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
		assert.Equal(t, "completed", repo.appointments[10].Status)
	})

	t.Run("someone else's", func(t *testing.T) {
		repo := seeded(domain.StatusPending)
		err := NewCancelAppointment(repo, nil).Execute(context.Background(), 2, 10)
		assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
		assert.Equal(t, "pending", repo.appointments[10].Status)
	})

	t.Run("unknown", func(t *testing.T) {
		repo := seeded(domain.StatusPending)
		err := NewCancelAppointment(repo, nil).Execute(context.Background(), 1, 99)
		assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	})
}

// ------------------------------------------------------
// admin status
// ------------------------------------------------------

func TestUpdateAppointmentStatus(t *testing.T) {
	repo := seeded(domain.StatusCancelled)
	d, pub := newDispatcher(t)
	uc := NewUpdateAppointmentStatus(repo, d)

	ap, err := uc.Execute(context.Background(), 99, 10, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", ap.Status)

	// same state is accepted
	ap, err = uc.Execute(context.Background(), 99, 10, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", ap.Status)

	d.Close()
	assert.Len(t, pub.events, 2)
}

func TestUpdateAppointmentStatusRejections(t *testing.T) {
	repo := seeded(domain.StatusPending)
	uc := NewUpdateAppointmentStatus(repo, nil)

	_, err := uc.Execute(context.Background(), 99, 10, "archived")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
	assert.Equal(t, "pending", repo.appointments[10].Status)

	_, err = uc.Execute(context.Background(), 99, 404, "denied")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

// ------------------------------------------------------
// lists
// ------------------------------------------------------

func TestListsRenderISODates(t *testing.T) {
	repo := newFakeRepo()
	repo.rows = []domain.ListRow{{
		ID:              3,
		AppointmentDate: time.Date(2026, 5, 1, 14, 0, 0, 0, time.UTC),
		Status:          "pending",
		PetName:         "Rex",
		VetName:         "Dr. Sarah Johnson",
		OwnerName:       "alice",
	}}

	mine, err := NewListMyAppointments(repo).Execute(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "2026-05-01T14:00:00.000Z", mine[0].AppointmentDate)
	assert.Equal(t, "Rex", mine[0].PetName)

	all, err := NewListAllAppointments(repo).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "alice", all[0].OwnerName)
}

func TestListsNeverReturnNil(t *testing.T) {
	mine, err := NewListMyAppointments(newFakeRepo()).Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, mine)
	assert.Empty(t, mine)

	repo := newFakeRepo()
	repo.failWith = errors.New("db down")
	_, err = NewListAllAppointments(repo).Execute(context.Background())
	assert.Error(t, err)
}
