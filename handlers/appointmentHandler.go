package handlers

import (
	"DentalDesk/middlewares"
	"DentalDesk/models"
	"DentalDesk/repositories"
	"DentalDesk/services"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service   *services.AppointmentService
	reminders *services.ReminderService
}

func NewAppointmentHandler(service *services.AppointmentService, reminders *services.ReminderService) *AppointmentHandler {
	return &AppointmentHandler{service: service, reminders: reminders}
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	createdBy, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "User not found in context"})
		return
	}

	if err := h.service.Create(c.Request.Context(), &appointment, createdBy); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(201, appointment)
}

func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	appointment, err := h.service.GetByID(c.Request.Context(), c.Param("appointment_id"))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	if appointment == nil {
		c.JSON(404, gin.H{"error": "Appointment not found"})
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	// Optional ?start=YYYY-MM-DD&end=YYYY-MM-DD narrows to a date range,
	// ?date=YYYY-MM-DD to a single day.
	date, hasDate, err := parseDateQuery(c, "date")
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if hasDate {
		appointments, err := h.service.GetByDate(c.Request.Context(), date)
		if err != nil {
			middlewares.RespondError(c, err)
			return
		}
		c.JSON(200, appointments)
		return
	}

	start, hasStart, err := parseDateQuery(c, "start")
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	end, hasEnd, err := parseDateQuery(c, "end")
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if hasStart && hasEnd {
		appointments, err := h.service.GetByDateRange(c.Request.Context(), start, end)
		if err != nil {
			middlewares.RespondError(c, err)
			return
		}
		c.JSON(200, appointments)
		return
	}

	appointments, err := h.service.GetAll(c.Request.Context(), limit, offset)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, appointments)
}

func (h *AppointmentHandler) GetAppointmentsByPatient(c *gin.Context) {
	appointments, err := h.service.GetByPatient(c.Request.Context(), c.Param("patient_id"))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, appointments)
}

func (h *AppointmentHandler) GetAppointmentsByDoctor(c *gin.Context) {
	var startPtr, endPtr *time.Time
	start, hasStart, err := parseDateQuery(c, "start")
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if hasStart {
		startPtr = &start
	}
	end, hasEnd, err := parseDateQuery(c, "end")
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if hasEnd {
		endPtr = &end
	}

	appointments, err := h.service.GetByDoctor(c.Request.Context(), c.Param("doctor_id"), startPtr, endPtr)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, appointments)
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var update repositories.AppointmentUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	appointment, err := h.service.Update(c.Request.Context(), c.Param("appointment_id"), update)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("appointment_id")); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Appointment deleted"})
}

func (h *AppointmentHandler) CheckIn(c *gin.Context) {
	appointment, err := h.service.CheckIn(c.Request.Context(), c.Param("appointment_id"))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) CheckOut(c *gin.Context) {
	appointment, err := h.service.CheckOut(c.Request.Context(), c.Param("appointment_id"))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	var body struct {
		Reason *string `json:"reason"`
	}
	// An empty body is fine, the reason is optional
	_ = c.ShouldBindJSON(&body)

	appointment, err := h.service.Cancel(c.Request.Context(), c.Param("appointment_id"), body.Reason)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) SendReminder(c *gin.Context) {
	appointment, err := h.reminders.SendReminder(c.Request.Context(), c.Param("appointment_id"))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, appointment)
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter. A present
// but malformed value is an error, not an absent parameter.
func parseDateQuery(c *gin.Context, name string) (time.Time, bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, false, nil
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid %s: want a YYYY-MM-DD date", name)
	}
	return date, true, nil
}
