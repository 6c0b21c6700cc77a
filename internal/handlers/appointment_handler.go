package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/Ayush2004sharma/MedSync-Backend/internal/domain/appointment"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/dto"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/httperr"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/httpresp"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/middleware"
	ucAppointment "github.com/Ayush2004sharma/MedSync-Backend/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availability *ucAppointment.GetAvailability
	request      *ucAppointment.RequestBooking
	decide       *ucAppointment.DecideAppointment
	cancel       *ucAppointment.CancelAppointment
	listPatient  *ucAppointment.ListPatientAppointments
	listDoctor   *ucAppointment.ListDoctorAppointments
	delete       *ucAppointment.DeleteAppointment
	log          *zap.Logger
}

func NewAppointmentHandler(
	availability *ucAppointment.GetAvailability,
	request *ucAppointment.RequestBooking,
	decide *ucAppointment.DecideAppointment,
	cancel *ucAppointment.CancelAppointment,
	listPatient *ucAppointment.ListPatientAppointments,
	listDoctor *ucAppointment.ListDoctorAppointments,
	remove *ucAppointment.DeleteAppointment,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		availability: availability,
		request:      request,
		decide:       decide,
		cancel:       cancel,
		listPatient:  listPatient,
		listDoctor:   listDoctor,
		delete:       remove,
		log:          log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RequestBookingRequest struct {
	ScheduledFor string `json:"scheduledFor" binding:"required"`
	Notes        string `json:"notes"`
}

type DecideRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

// ======================================================
// HELPERS
// ======================================================

func (h *AppointmentHandler) doctorParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("doctorId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Invalid doctor id")
		return uuid.Nil, false
	}
	return id, true
}

// appointmentParam treats an unparsable id as an unknown appointment.
func (h *AppointmentHandler) appointmentParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, ucAppointment.CodeAppointmentNotFound, "Appointment not found")
		return uuid.Nil, false
	}
	return id, true
}

func mustCaller(c *gin.Context) middleware.Caller {
	caller, _ := middleware.CallerFrom(c)
	return caller
}

// ======================================================
// AVAILABILITY
// ======================================================

// GET /api/appointments/:doctorId/slots?date=YYYY-MM-DD
func (h *AppointmentHandler) Slots(c *gin.Context) {
	doctorID, ok := h.doctorParam(c)
	if !ok {
		return
	}

	av, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		DoctorID: doctorID,
		Date:     c.Query("date"),
	})
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":           av.Date.Format("2006-01-02"),
		"active":         av.Active,
		"availableSlots": av.AvailableSlots,
	})
}

// ======================================================
// REQUEST
// ======================================================

// POST /api/appointments/:doctorId
func (h *AppointmentHandler) Request(c *gin.Context) {
	doctorID, ok := h.doctorParam(c)
	if !ok {
		return
	}

	var req RequestBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "scheduledFor is required")
		return
	}

	ap, err := h.request.Execute(c.Request.Context(), ucAppointment.RequestBookingInput{
		UserID:       mustCaller(c).ID,
		DoctorID:     doctorID,
		ScheduledFor: req.ScheduledFor,
		Notes:        req.Notes,
	})
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message":     "Appointment booked successfully, pending doctor approval",
		"appointment": ap,
	})
}

// ======================================================
// DECIDE
// ======================================================

// PATCH /api/appointments/:id/approve
func (h *AppointmentHandler) Decide(c *gin.Context) {
	id, ok := h.appointmentParam(c)
	if !ok {
		return
	}

	var req DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "approve must be true or false")
		return
	}

	caller := mustCaller(c)
	ap, err := h.decide.Execute(c.Request.Context(), ucAppointment.DecideInput{
		AppointmentID: id,
		DoctorID:      caller.ID,
		Approve:       *req.Approve,
		Admin:         caller.IsAdmin(),
	})
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	msg := "Appointment rejected successfully"
	if *req.Approve {
		msg = "Appointment approved successfully"
	}
	httpresp.OK(c, gin.H{
		"message":     msg,
		"appointment": ap,
	})
}

// ======================================================
// CANCEL
// ======================================================

// PATCH /api/appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := h.appointmentParam(c)
	if !ok {
		return
	}

	caller := mustCaller(c)
	ap, err := h.cancel.Execute(c.Request.Context(), ucAppointment.CancelInput{
		AppointmentID: id,
		ActorID:       caller.ID,
		Admin:         caller.IsAdmin(),
	})
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":     "Appointment cancelled successfully",
		"appointment": ap,
	})
}

// ======================================================
// LISTINGS
// ======================================================

// GET /api/appointments/user
func (h *AppointmentHandler) ListForPatient(c *gin.Context) {
	apps, err := h.listPatient.Execute(c.Request.Context(), mustCaller(c).ID)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.Collection(c, "appointments", dto.ForPatient(apps))
}

// GET /api/appointments/doctor
func (h *AppointmentHandler) ListForDoctor(c *gin.Context) {
	apps, err := h.listDoctor.Execute(c.Request.Context(), mustCaller(c).ID)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.Collection(c, "appointments", dto.ForDoctor(apps))
}

// ======================================================
// DELETE
// ======================================================

// DELETE /api/appointments/:id/delete
//
// Unknown and malformed ids succeed; there is nothing left to delete.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err == nil {
		if err := h.delete.Execute(c.Request.Context(), mustCaller(c).ID, id); err != nil {
			httperr.FromError(c, h.log, err)
			return
		}
	}

	httpresp.OK(c, gin.H{"message": "Appointment deleted successfully"})
}
