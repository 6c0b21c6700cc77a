package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Ayush2004sharma/MedSync-Backend/internal/httperr"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/httpresp"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/models"
	ucSchedule "github.com/Ayush2004sharma/MedSync-Backend/internal/usecase/schedule"
)

type ScheduleHandler struct {
	get    *ucSchedule.GetWeeklySchedule
	update *ucSchedule.UpdateWeeklySchedule
	log    *zap.Logger
}

func NewScheduleHandler(
	get *ucSchedule.GetWeeklySchedule,
	update *ucSchedule.UpdateWeeklySchedule,
	log *zap.Logger,
) *ScheduleHandler {
	return &ScheduleHandler{get: get, update: update, log: log}
}

// ScheduleUpdateRequest is keyed sun..sat. Missing days are stored inactive.
type ScheduleUpdateRequest struct {
	Schedule map[string]models.DaySchedule `json:"schedule" binding:"required"`
}

// GET /api/doctors/:doctorId/schedule
func (h *ScheduleHandler) Get(c *gin.Context) {
	doctorID, err := uuid.Parse(c.Param("doctorId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Invalid doctor id")
		return
	}

	ws, err := h.get.Execute(c.Request.Context(), doctorID)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.OK(c, ws)
}

// PUT /api/doctors/me/schedule
func (h *ScheduleHandler) Update(c *gin.Context) {
	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "schedule is required")
		return
	}

	ws, err := h.update.Execute(c.Request.Context(), ucSchedule.UpdateInput{
		DoctorID: mustCaller(c).ID,
		Days:     req.Schedule,
	})
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	httpresp.OK(c, ws)
}
