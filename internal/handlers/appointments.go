package handlers

import (
	"beacon-care-server/internal/middleware"
	"beacon-care-server/internal/models"
	"beacon-care-server/internal/store"
	"beacon-care-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Store *store.Store
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(s *store.Store) *AppointmentHandler {
	return &AppointmentHandler{Store: s}
}

// ScheduleAppointmentRequest represents the request body for scheduling
// a visit.
type ScheduleAppointmentRequest struct {
	PatientName string `json:"patientName"`
	Datetime    string `json:"datetime"`
}

// ScheduleAppointment schedules a new visit at the clinical site.
// Patients always schedule for themselves regardless of the supplied
// name; any prior SCHEDULED visit for the patient is replaced.
func (h *AppointmentHandler) ScheduleAppointment(c *gin.Context) {
	var req ScheduleAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	role, _ := middleware.GetUserRoleFromContext(c)
	patientName := req.PatientName
	if role == models.RolePatient {
		state := h.Store.State()
		patient, found := state.PatientByID(middleware.GetPatientIDFromContext(c))
		if !found {
			utils.Forbidden(c, "No patient record linked to this session.")
			return
		}
		patientName = patient.Name
	}

	appt := h.Store.ScheduleAppointment(patientName, req.Datetime)
	if appt == nil {
		utils.NotFound(c, "Patient not found")
		return
	}

	utils.Created(c, "Appointment scheduled successfully", appt)
}

// GetAppointments lists appointments visible to the caller: patients see
// their own, clinical staff see all.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	role, _ := middleware.GetUserRoleFromContext(c)
	state := h.Store.State()

	if role == models.RolePatient {
		patientID := middleware.GetPatientIDFromContext(c)
		own := make([]models.Appointment, 0)
		for _, a := range state.Appointments {
			if a.PatientID == patientID {
				own = append(own, a)
			}
		}
		utils.Success(c, "Appointments fetched successfully", own)
		return
	}

	utils.Success(c, "Appointments fetched successfully", state.Appointments)
}

// ConfirmAppointment marks an appointment CONFIRMED. Patients may only
// confirm their own visits.
func (h *AppointmentHandler) ConfirmAppointment(c *gin.Context) {
	id := c.Param("id")
	if !h.authorizeAppointment(c, id) {
		return
	}

	if !h.Store.ConfirmAppointment(id) {
		utils.NotFound(c, "Appointment not found")
		return
	}
	utils.Success(c, "Appointment confirmed", nil)
}

// CompleteAppointment records a completed clinical encounter.
func (h *AppointmentHandler) CompleteAppointment(c *gin.Context) {
	if !h.Store.CompleteAppointment(c.Param("id")) {
		utils.NotFound(c, "Appointment not found")
		return
	}
	utils.Success(c, "Appointment completed", nil)
}

// CancelAppointment marks a single appointment CANCELLED, preserving
// history.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	if !h.Store.CancelAppointment(c.Param("id")) {
		utils.NotFound(c, "Appointment not found")
		return
	}
	utils.Success(c, "Appointment cancelled", nil)
}

// RescheduleAppointmentRequest represents the request body for shifting
// a visit by a number of hours.
type RescheduleAppointmentRequest struct {
	Hours int `json:"hours" binding:"required"`
}

// RescheduleAppointment shifts a visit by the requested number of hours
// and returns it to the SCHEDULED state.
func (h *AppointmentHandler) RescheduleAppointment(c *gin.Context) {
	var req RescheduleAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !h.Store.RescheduleByHours(c.Param("id"), req.Hours) {
		utils.NotFound(c, "Appointment not found")
		return
	}
	utils.Success(c, "Appointment rescheduled", nil)
}

// RescheduleOneWeek pushes a visit one week out from its original time.
func (h *AppointmentHandler) RescheduleOneWeek(c *gin.Context) {
	if !h.Store.RescheduleOneWeek(c.Param("id")) {
		utils.NotFound(c, "Appointment not found")
		return
	}
	utils.Success(c, "Appointment rescheduled", nil)
}

// CancelAllRequest represents the request body for cancelling every
// visit a patient has.
type CancelAllRequest struct {
	PatientName string `json:"patientName" binding:"required"`
}

// CancelAllForPatient removes every appointment for the named patient
// from the collection.
func (h *AppointmentHandler) CancelAllForPatient(c *gin.Context) {
	var req CancelAllRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !h.Store.CancelAppointmentsFor(req.PatientName) {
		utils.NotFound(c, "Patient not found")
		return
	}
	utils.Success(c, "All visits cancelled", nil)
}

func (h *AppointmentHandler) authorizeAppointment(c *gin.Context, id string) bool {
	role, _ := middleware.GetUserRoleFromContext(c)
	if role != models.RolePatient {
		return true
	}

	state := h.Store.State()
	appt, found := state.AppointmentByID(id)
	if !found || appt.PatientID != middleware.GetPatientIDFromContext(c) {
		utils.Forbidden(c, "You are not authorized to act on this appointment.")
		return false
	}
	return true
}
