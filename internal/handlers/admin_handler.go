package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/medpoint/hospital-scheduler/internal/audit"
	"github.com/medpoint/hospital-scheduler/internal/cache"
	domain "github.com/medpoint/hospital-scheduler/internal/domain/schedule"
	"github.com/medpoint/hospital-scheduler/internal/dto"
	"github.com/medpoint/hospital-scheduler/internal/httperr"
	"github.com/medpoint/hospital-scheduler/internal/middleware"
	"github.com/medpoint/hospital-scheduler/internal/models"
	"github.com/medpoint/hospital-scheduler/internal/usecase/booking"
	"github.com/medpoint/hospital-scheduler/internal/validators"
)

type AdminHandler struct {
	db           *gorm.DB
	audit        *audit.Dispatcher
	directory    *cache.DoctorDirectory
	changeStatus *booking.ChangeStatus
	deleteDoctor *booking.DeleteDoctor
}

func NewAdminHandler(
	db *gorm.DB,
	auditDispatcher *audit.Dispatcher,
	directory *cache.DoctorDirectory,
	changeStatus *booking.ChangeStatus,
	deleteDoctor *booking.DeleteDoctor,
) *AdminHandler {
	return &AdminHandler{
		db:           db,
		audit:        auditDispatcher,
		directory:    directory,
		changeStatus: changeStatus,
		deleteDoctor: deleteDoctor,
	}
}

// ======================================================
// STATS
// ======================================================

func (h *AdminHandler) Stats(c *gin.Context) {
	var totalUsers, totalDoctors, totalAppointments, pending, completed int64

	h.db.Model(&models.User{}).Where("role = ?", "user").Count(&totalUsers)
	h.db.Model(&models.Doctor{}).Count(&totalDoctors)
	h.db.Model(&models.Appointment{}).Count(&totalAppointments)
	h.db.Model(&models.Appointment{}).Where("status = ?", domain.StatusPending).Count(&pending)
	h.db.Model(&models.Appointment{}).Where("status = ?", domain.StatusCompleted).Count(&completed)

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"totalUsers":            totalUsers,
			"totalDoctors":          totalDoctors,
			"totalAppointments":     totalAppointments,
			"pendingAppointments":   pending,
			"completedAppointments": completed,
			"cancelledAppointments": totalAppointments - pending - completed,
		},
	})
}

// ======================================================
// USERS
// ======================================================

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := h.db.
		Where("role = ?", "user").
		Order("created_at DESC").
		Find(&users).Error; err != nil {

		httperr.Internal(c, "failed_to_list_users", "Internal server error.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// ======================================================
// APPOINTMENTS
// ======================================================

func (h *AdminHandler) ListAppointments(c *gin.Context) {
	var aps []models.Appointment
	if err := h.db.
		Preload("Doctor").
		Preload("User").
		Order("date DESC, time DESC").
		Find(&aps).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments", "Internal server error.")
		return
	}

	views := make([]dto.AppointmentView, 0, len(aps))
	for i := range aps {
		views = append(views, dto.NewAdminAppointmentView(&aps[i]))
	}

	c.JSON(http.StatusOK, gin.H{"appointments": views})
}

func (h *AdminHandler) UpdateAppointmentStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

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
		ActorID:       adminID,
		ActorRole:     "admin",
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment status updated successfully",
		"appointment": dto.NewAdminAppointmentView(ap),
	})
}

func (h *AdminHandler) DeleteAppointment(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.Internal(c, "internal_error", "Internal server error.")
		return
	}

	if err := h.db.Delete(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Internal server error.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}

// ======================================================
// DOCTORS
// ======================================================

type DoctorRequest struct {
	Name              string `json:"name" binding:"required"`
	Specialty         string `json:"specialty" binding:"required"`
	WorkingHoursStart string `json:"working_hours_start" binding:"required"`
	WorkingHoursEnd   string `json:"working_hours_end" binding:"required"`
}

type UpdateDoctorRequest struct {
	Name              *string `json:"name,omitempty"`
	Specialty         *string `json:"specialty,omitempty"`
	WorkingHoursStart *string `json:"working_hours_start,omitempty"`
	WorkingHoursEnd   *string `json:"working_hours_end,omitempty"`
}

func (h *AdminHandler) ListDoctors(c *gin.Context) {
	var doctors []models.Doctor
	if err := h.db.Order("name ASC").Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Internal server error.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

func validWorkingWindow(start, end string) bool {
	if !validators.IsValidTime(start) || !validators.IsValidTime(end) {
		return false
	}
	startMin, err := domain.MinutesOfDay(start)
	if err != nil {
		return false
	}
	endMin, err := domain.MinutesOfDay(end)
	if err != nil {
		return false
	}
	return startMin < endMin
}

func (h *AdminHandler) CreateDoctor(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "All fields are required.")
		return
	}

	if !validWorkingWindow(req.WorkingHoursStart, req.WorkingHoursEnd) {
		httperr.BadRequest(c, "invalid_working_hours", "Working hours must be HH:MM values with start before end.")
		return
	}

	doctor := models.Doctor{
		Name:              req.Name,
		Specialty:         req.Specialty,
		WorkingHoursStart: req.WorkingHoursStart,
		WorkingHoursEnd:   req.WorkingHoursEnd,
	}

	if err := h.db.Create(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_create_doctor", "Internal server error.")
		return
	}

	h.directory.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "doctor_created",
		Entity:   "doctor",
		EntityID: &doctor.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Doctor created successfully",
		"doctor":  doctor,
	})
}

func (h *AdminHandler) UpdateDoctor(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Invalid doctor id.")
		return
	}

	var doctor models.Doctor
	if err := h.db.First(&doctor, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
			return
		}
		httperr.Internal(c, "internal_error", "Internal server error.")
		return
	}

	var req UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Specialty != nil {
		doctor.Specialty = *req.Specialty
	}
	if req.WorkingHoursStart != nil {
		doctor.WorkingHoursStart = *req.WorkingHoursStart
	}
	if req.WorkingHoursEnd != nil {
		doctor.WorkingHoursEnd = *req.WorkingHoursEnd
	}

	if !validWorkingWindow(doctor.WorkingHoursStart, doctor.WorkingHoursEnd) {
		httperr.BadRequest(c, "invalid_working_hours", "Working hours must be HH:MM values with start before end.")
		return
	}

	if err := h.db.Save(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_update_doctor", "Internal server error.")
		return
	}

	h.directory.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "doctor_updated",
		Entity:   "doctor",
		EntityID: &doctor.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Doctor updated successfully",
		"doctor":  doctor,
	})
}

func (h *AdminHandler) DeleteDoctor(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Invalid doctor id.")
		return
	}

	if err := h.deleteDoctor.Execute(c.Request.Context(), uint(id), adminID); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	h.directory.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted successfully"})
}
