package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"DentalDesk/repositories"
	"DentalDesk/services"

	"github.com/gin-gonic/gin"
)

func newAppointmentTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := openAdminTestStore(t)
	appointmentRepo := repositories.NewAppointmentRepository(store)
	patientRepo := repositories.NewPatientRepository(store)
	handler := NewAppointmentHandler(
		services.NewAppointmentService(appointmentRepo),
		services.NewReminderService(appointmentRepo, patientRepo, nil),
	)

	router := gin.New()
	router.GET("/appointments", handler.GetAllAppointments)
	router.GET("/doctors/:doctor_id/appointments", handler.GetAppointmentsByDoctor)
	return router
}

func TestGetAllAppointmentsRejectsMalformedDates(t *testing.T) {
	router := newAppointmentTestRouter(t)

	for _, query := range []string{"?date=tomorrow", "?start=2026-13-99&end=2026-09-30", "?start=2026-09-01&end=soon"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/appointments"+query, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", query, rec.Code)
		}
	}

	// Well-formed queries still answer.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/appointments?date=2026-09-14", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("valid date: status = %d, want 200", rec.Code)
	}
}

func TestGetAppointmentsByDoctorRejectsMalformedDates(t *testing.T) {
	router := newAppointmentTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/doctors/d1/appointments?start=nope", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for a malformed start date", rec.Code)
	}
}
