package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ayush2004sharma/MedSync-Backend/internal/audit"
	domain "github.com/Ayush2004sharma/MedSync-Backend/internal/domain/appointment"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/httperr"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/models"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type RequestBookingInput struct {
	UserID   uuid.UUID
	DoctorID uuid.UUID

	ScheduledFor string
	Notes        string
}

// ======================================================
// USE CASE
// ======================================================

type RequestBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewRequestBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *RequestBooking {
	return &RequestBooking{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RequestBooking) Execute(
	ctx context.Context,
	in RequestBookingInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Parse
	// --------------------------------------------------
	if strings.TrimSpace(in.ScheduledFor) == "" {
		return nil, httperr.InvalidArgument(CodeInvalidDate, "scheduledFor is required")
	}
	at, err := timezone.ParseTimestamp(in.ScheduledFor, uc.loc)
	if err != nil {
		return nil, httperr.InvalidArgument(CodeInvalidDate, "Invalid date format")
	}

	// --------------------------------------------------
	// Slot already booked?
	// The index catches whatever slips past this check.
	// --------------------------------------------------
	existing, err := uc.repo.FindBookedAppointment(ctx, in.DoctorID, at)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errSlotBooked("")
	}

	// --------------------------------------------------
	// Insert pending
	// --------------------------------------------------
	now := timezone.NowIn(uc.loc)
	ap := &models.Appointment{
		ID:           uuid.New(),
		UserID:       in.UserID,
		DoctorID:     in.DoctorID,
		ScheduledFor: at,
		Status:       string(domain.InitialStatus()),
		Notes:        strings.TrimSpace(in.Notes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, mapLedgerError(err, "")
	}

	// --------------------------------------------------
	// Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.UserID,
		Action:   "appointment_requested",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"doctor":       in.DoctorID,
			"scheduledFor": at,
		},
	})

	return ap, nil
}
