package handlers

import (
	"beacon-care-server/internal/middleware"
	"beacon-care-server/internal/models"
	"beacon-care-server/internal/store"
	"beacon-care-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// PatientHandler handles patient record reads. Records are seeded;
// onboarding is out of scope, so there are no writes here.
type PatientHandler struct {
	Store *store.Store
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(s *store.Store) *PatientHandler {
	return &PatientHandler{Store: s}
}

// GetPatients lists all patient records for clinical staff.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	state := h.Store.State()
	utils.Success(c, "Patients fetched successfully", state.Patients)
}

// GetPatientByID returns a single record. Patient sessions may only read
// their own linked record.
func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id := c.Param("id")

	role, _ := middleware.GetUserRoleFromContext(c)
	if role == models.RolePatient && id != middleware.GetPatientIDFromContext(c) {
		utils.Forbidden(c, "You are not authorized to view this record.")
		return
	}

	state := h.Store.State()
	patient, found := state.PatientByID(id)
	if !found {
		utils.NotFound(c, "Patient not found")
		return
	}
	utils.Success(c, "Patient fetched successfully", patient)
}
