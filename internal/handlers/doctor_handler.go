package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/medpoint/hospital-scheduler/internal/cache"
	"github.com/medpoint/hospital-scheduler/internal/httperr"
	"github.com/medpoint/hospital-scheduler/internal/usecase/booking"
)

type DoctorHandler struct {
	db           *gorm.DB
	directory    *cache.DoctorDirectory
	availability *booking.GetAvailability
}

func NewDoctorHandler(
	db *gorm.DB,
	directory *cache.DoctorDirectory,
	availability *booking.GetAvailability,
) *DoctorHandler {
	return &DoctorHandler{
		db:           db,
		directory:    directory,
		availability: availability,
	}
}

type doctorListItem struct {
	ID           uint         `json:"id"`
	Name         string       `json:"name"`
	Specialty    string       `json:"specialty"`
	WorkingHours workingHours `json:"working_hours"`
}

type workingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (h *DoctorHandler) List(c *gin.Context) {
	doctors, hit := h.directory.Get(c.Request.Context())
	if !hit {
		if err := h.db.Order("name ASC").Find(&doctors).Error; err != nil {
			httperr.Internal(c, "failed_to_list_doctors", "Internal server error.")
			return
		}
		h.directory.Set(c.Request.Context(), doctors)
	}

	items := make([]doctorListItem, 0, len(doctors))
	for _, d := range doctors {
		items = append(items, doctorListItem{
			ID:        d.ID,
			Name:      d.Name,
			Specialty: d.Specialty,
			WorkingHours: workingHours{
				Start: d.WorkingHoursStart,
				End:   d.WorkingHoursEnd,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{"doctors": items})
}

func (h *DoctorHandler) Availability(c *gin.Context) {
	doctorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Invalid doctor id.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter date is required.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), uint(doctorID), dateStr)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}
