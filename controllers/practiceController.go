package controllers

import (
	"DentalDesk/handlers"
	"DentalDesk/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupPracticeRoutes registers the patient and appointment routes. All of
// them require a valid access token, and each operation is guarded by the
// matching entry in the role permission table.
func SetupPracticeRoutes(router *gin.Engine, patientHandler *handlers.PatientHandler, appointmentHandler *handlers.AppointmentHandler) {
	practice := router.Group("/", middlewares.TokenAuthMiddleware())
	perm := middlewares.PermissionAuthMiddleware

	practice.POST("/patients", perm("patients.create"), patientHandler.CreatePatient)
	practice.GET("/patients", perm("patients.view"), patientHandler.GetAllPatients)
	practice.GET("/patients/search", perm("patients.view"), patientHandler.SearchPatients)
	practice.GET("/patients/:patient_id", perm("patients.view"), patientHandler.GetPatientByID)
	practice.PUT("/patients/:patient_id", perm("patients.update"), patientHandler.UpdatePatient)
	practice.DELETE("/patients/:patient_id", perm("patients.delete"), patientHandler.DeletePatient)
	practice.GET("/patients/:patient_id/appointments", perm("appointments.view"), appointmentHandler.GetAppointmentsByPatient)

	practice.POST("/appointments", perm("appointments.create"), appointmentHandler.CreateAppointment)
	practice.GET("/appointments", perm("appointments.view"), appointmentHandler.GetAllAppointments)
	practice.GET("/appointments/:appointment_id", perm("appointments.view"), appointmentHandler.GetAppointmentByID)
	practice.PUT("/appointments/:appointment_id", perm("appointments.update"), appointmentHandler.UpdateAppointment)
	practice.DELETE("/appointments/:appointment_id", perm("appointments.delete"), appointmentHandler.DeleteAppointment)
	practice.POST("/appointments/:appointment_id/check-in", perm("appointments.update"), appointmentHandler.CheckIn)
	practice.POST("/appointments/:appointment_id/check-out", perm("appointments.update"), appointmentHandler.CheckOut)
	practice.POST("/appointments/:appointment_id/cancel", perm("appointments.cancel"), appointmentHandler.Cancel)
	practice.POST("/appointments/:appointment_id/reminder", perm("appointments.remind"), appointmentHandler.SendReminder)

	practice.GET("/doctors/:doctor_id/appointments", perm("appointments.view"), appointmentHandler.GetAppointmentsByDoctor)
}
