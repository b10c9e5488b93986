package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/medpoint/hospital-scheduler/internal/dto"
	"github.com/medpoint/hospital-scheduler/internal/httperr"
	"github.com/medpoint/hospital-scheduler/internal/metrics"
	"github.com/medpoint/hospital-scheduler/internal/middleware"
	"github.com/medpoint/hospital-scheduler/internal/models"
	"github.com/medpoint/hospital-scheduler/internal/usecase/booking"
	"github.com/medpoint/hospital-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db           *gorm.DB
	createUC     *booking.CreateBooking
	changeStatus *booking.ChangeStatus
	metrics      *metrics.Collector
}

func NewAppointmentHandler(
	db *gorm.DB,
	createUC *booking.CreateBooking,
	changeStatus *booking.ChangeStatus,
	m *metrics.Collector,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		createUC:     createUC,
		changeStatus: changeStatus,
		metrics:      m,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	DoctorID    uint   `json:"doctor_id" binding:"required"`
	PatientName string `json:"patient_name" binding:"required"`
	Date        string `json:"appointment_date" binding:"required"`
	Time        string `json:"appointment_time" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "doctor_id, patient_name, appointment_date, and appointment_time are required.")
		return
	}

	// Format is checked before the booking rules ever run.
	if !validators.IsValidDate(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Invalid date format. Use YYYY-MM-DD.")
		return
	}
	if !validators.IsValidTime(req.Time) {
		httperr.BadRequest(c, "invalid_time", "Invalid time format. Use HH:MM (24-hour format).")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), booking.CreateBookingInput{
		DoctorID:    req.DoctorID,
		PatientName: req.PatientName,
		Date:        req.Date,
		Time:        req.Time,
		UserID:      userID,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "slot_taken"):
			h.metrics.BookingsTotal.WithLabelValues("slot_taken").Inc()
		case httperr.IsBusiness(err, "weekend_not_allowed"),
			httperr.IsBusiness(err, "past_date"),
			httperr.IsBusiness(err, "outside_working_hours"):
			h.metrics.BookingsTotal.WithLabelValues("rejected").Inc()
		default:
			h.metrics.BookingsTotal.WithLabelValues("error").Inc()
		}
		httperr.WriteBusiness(c, err)
		return
	}

	h.metrics.BookingsTotal.WithLabelValues("created").Inc()

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment created successfully",
		"appointment": dto.NewAppointmentView(ap),
	})
}

// ======================================================
// LIST (OWN)
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var aps []models.Appointment
	if err := h.db.
		Preload("Doctor").
		Where("user_id = ?", userID).
		Order("date DESC, time DESC").
		Find(&aps).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments", "Internal server error.")
		return
	}

	views := make([]dto.AppointmentView, 0, len(aps))
	for i := range aps {
		views = append(views, dto.NewAppointmentView(&aps[i]))
	}

	c.JSON(http.StatusOK, gin.H{"appointments": views})
}

// ======================================================
// STATUS (OWNER SCOPE)
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_status", "Invalid status. Must be one of: pending, completed, cancelled.")
		return
	}

	ap, err := h.changeStatus.Execute(c.Request.Context(), booking.ChangeStatusInput{
		AppointmentID: uint(id),
		NewStatus:     req.Status,
		ActorID:       userID,
		ActorRole:     role,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment status updated successfully",
		"appointment": dto.NewAppointmentView(ap),
	})
}
