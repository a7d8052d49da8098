package handlers

import (
	"DentalDesk/middlewares"
	"DentalDesk/models"
	"DentalDesk/repositories"
	"DentalDesk/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c.Request.Context(), &patient); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(201, patient)
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	patient, err := h.service.GetByID(c.Request.Context(), c.Param("patient_id"))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	if patient == nil {
		c.JSON(404, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(200, patient)
}

func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	patients, err := h.service.GetAll(c.Request.Context(), limit, offset)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, patients)
}

func (h *PatientHandler) SearchPatients(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(400, gin.H{"error": "Missing search term"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	patients, err := h.service.Search(c.Request.Context(), term, limit)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, patients)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	var update repositories.PatientUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	patient, err := h.service.Update(c.Request.Context(), c.Param("patient_id"), update)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, patient)
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("patient_id")); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Patient deleted"})
}
