// Package memory is an in-process ledger used for local runs and tests.
// It enforces the same one-booked-appointment-per-slot rule as the
// postgres partial index.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/Ayush2004sharma/MedSync-Backend/internal/domain/appointment"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/domain/schedule"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/models"
)

type slotKey struct {
	doctorID uuid.UUID
	at       int64
}

func keyOf(doctorID uuid.UUID, at time.Time) slotKey {
	return slotKey{doctorID: doctorID, at: at.UnixMicro()}
}

type Store struct {
	mu sync.RWMutex

	appointments map[uuid.UUID]models.Appointment
	booked       map[slotKey]uuid.UUID
	schedules    map[uuid.UUID]models.WeeklySchedule
	doctors      map[uuid.UUID]models.Doctor
	users        map[uuid.UUID]models.User

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		appointments: make(map[uuid.UUID]models.Appointment),
		booked:       make(map[slotKey]uuid.UUID),
		schedules:    make(map[uuid.UUID]models.WeeklySchedule),
		doctors:      make(map[uuid.UUID]models.Doctor),
		users:        make(map[uuid.UUID]models.User),
		now:          time.Now,
	}
}

// PutDoctor and PutUser seed the reference rows the listings decorate with.

func (s *Store) PutDoctor(d models.Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doctors[d.ID] = d
}

func (s *Store) PutUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (s *Store) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	if ap.Status == "" {
		ap.Status = string(domain.InitialStatus())
	}
	now := s.now()
	if ap.CreatedAt.IsZero() {
		ap.CreatedAt = now
	}
	if ap.UpdatedAt.IsZero() {
		ap.UpdatedAt = now
	}

	k := keyOf(ap.DoctorID, ap.ScheduledFor)
	if ap.Status == string(domain.StatusBooked) {
		if _, taken := s.booked[k]; taken {
			return domain.ErrSlotTaken
		}
		s.booked[k] = ap.ID
	}

	row := *ap
	row.Patient, row.Doctor = nil, nil
	s.appointments[ap.ID] = row
	return nil
}

func (s *Store) FindBookedAppointment(
	_ context.Context,
	doctorID uuid.UUID,
	scheduledFor time.Time,
) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.booked[keyOf(doctorID, scheduledFor)]
	if !ok {
		return nil, nil
	}
	ap := s.appointments[id]
	return &ap, nil
}

func (s *Store) GetAppointment(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ap, ok := s.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ap, nil
}

func (s *Store) UpdateAppointmentStatus(
	_ context.Context,
	ap *models.Appointment,
	from domain.Status,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.appointments[ap.ID]
	if !ok || cur.Status != string(from) {
		return domain.ErrStatusChanged
	}

	k := keyOf(cur.DoctorID, cur.ScheduledFor)
	wasBooked := cur.Status == string(domain.StatusBooked)
	willBook := ap.Status == string(domain.StatusBooked)

	if willBook && !wasBooked {
		if _, taken := s.booked[k]; taken {
			return domain.ErrSlotTaken
		}
		s.booked[k] = cur.ID
	}
	if wasBooked && !willBook {
		delete(s.booked, k)
	}

	cur.Status = ap.Status
	cur.DecidedAt = ap.DecidedAt
	cur.CancelledAt = ap.CancelledAt
	cur.CompletedAt = ap.CompletedAt
	cur.UpdatedAt = ap.UpdatedAt
	s.appointments[cur.ID] = cur
	return nil
}

func (s *Store) DeleteAppointment(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap, ok := s.appointments[id]
	if !ok {
		return nil
	}
	if ap.Status == string(domain.StatusBooked) {
		delete(s.booked, keyOf(ap.DoctorID, ap.ScheduledFor))
	}
	delete(s.appointments, id)
	return nil
}

func (s *Store) ListBookedForDay(
	_ context.Context,
	doctorID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Appointment
	for k, id := range s.booked {
		if k.doctorID != doctorID {
			continue
		}
		ap := s.appointments[id]
		if ap.ScheduledFor.Before(start) || ap.ScheduledFor.After(end) {
			continue
		}
		out = append(out, ap)
	}
	sortBySchedule(out)
	return out, nil
}

func (s *Store) ListAppointmentsForPatient(
	_ context.Context,
	userID uuid.UUID,
) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Appointment
	for _, ap := range s.appointments {
		if ap.UserID != userID {
			continue
		}
		if d, ok := s.doctors[ap.DoctorID]; ok {
			ap.Doctor = &d
		}
		out = append(out, ap)
	}
	sortBySchedule(out)
	return out, nil
}

func (s *Store) ListAppointmentsForDoctor(
	_ context.Context,
	doctorID uuid.UUID,
	statuses []domain.Status,
) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := make(map[string]struct{}, len(statuses))
	for _, st := range statuses {
		want[string(st)] = struct{}{}
	}

	var out []models.Appointment
	for _, ap := range s.appointments {
		if ap.DoctorID != doctorID {
			continue
		}
		if _, ok := want[ap.Status]; !ok {
			continue
		}
		if u, ok := s.users[ap.UserID]; ok {
			ap.Patient = &u
		}
		out = append(out, ap)
	}
	sortBySchedule(out)
	return out, nil
}

func sortBySchedule(apps []models.Appointment) {
	sort.Slice(apps, func(i, j int) bool {
		if apps[i].ScheduledFor.Equal(apps[j].ScheduledFor) {
			return apps[i].CreatedAt.Before(apps[j].CreatedAt)
		}
		return apps[i].ScheduledFor.Before(apps[j].ScheduledFor)
	})
}

// --------------------------------------------------
// Weekly schedules
// --------------------------------------------------

func (s *Store) GetWeeklySchedule(_ context.Context, doctorID uuid.UUID) (*models.WeeklySchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ws, ok := s.schedules[doctorID]
	if !ok {
		return nil, schedule.ErrNotFound
	}
	return &ws, nil
}

func (s *Store) UpsertWeeklySchedule(_ context.Context, ws *models.WeeklySchedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if prev, ok := s.schedules[ws.DoctorID]; ok {
		ws.ID = prev.ID
		ws.CreatedAt = prev.CreatedAt
	} else {
		if ws.ID == uuid.Nil {
			ws.ID = uuid.New()
		}
		ws.CreatedAt = now
	}
	ws.UpdatedAt = now

	s.schedules[ws.DoctorID] = *ws
	return nil
}

var (
	_ domain.Repository = (*Store)(nil)
	_ schedule.Store    = (*Store)(nil)
)
