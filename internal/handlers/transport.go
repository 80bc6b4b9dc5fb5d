package handlers

import (
	"fmt"

	"beacon-care-server/internal/middleware"
	"beacon-care-server/internal/models"
	"beacon-care-server/internal/store"
	"beacon-care-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// TransportHandler handles fleet and SOS related requests.
type TransportHandler struct {
	Store *store.Store
}

// NewTransportHandler creates a new TransportHandler.
func NewTransportHandler(s *store.Store) *TransportHandler {
	return &TransportHandler{Store: s}
}

// GetRides lists all transport requests, newest-first.
func (h *TransportHandler) GetRides(c *gin.Context) {
	state := h.Store.State()
	utils.Success(c, "Rides fetched successfully", state.TransportRequests)
}

// RequestRideRequest represents the request body for requesting a ride.
type RequestRideRequest struct {
	PatientID     string `json:"patientId"`
	AppointmentID string `json:"appointmentId"`
}

// RequestRide queues a pickup for a patient, optionally timed against an
// appointment. Patient sessions always request for their own record.
func (h *TransportHandler) RequestRide(c *gin.Context) {
	var req RequestRideRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patientID := req.PatientID
	role, _ := middleware.GetUserRoleFromContext(c)
	if role == models.RolePatient {
		patientID = middleware.GetPatientIDFromContext(c)
	}

	if !h.Store.RequestRide(patientID, req.AppointmentID) {
		utils.NotFound(c, "Patient not found")
		return
	}
	utils.Created(c, "Pickup requested", nil)
}

// ClaimRide lets the authenticated driver claim an open ride.
func (h *TransportHandler) ClaimRide(c *gin.Context) {
	driver, found := currentUser(c, h.Store)
	if !found {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	if !h.Store.ClaimRide(c.Param("id"), driver.ID, driver.Name) {
		utils.NotFound(c, "Ride not found")
		return
	}
	utils.Success(c, "Ride claimed", nil)
}

// UpdateRideStatusRequest represents the request body for advancing a
// ride.
type UpdateRideStatusRequest struct {
	Status models.TransportStatus `json:"status" binding:"required,oneof=REQUESTED ASSIGNED ACCEPTED PICKED_UP COMPLETED FAILED"`
}

// UpdateRideStatus advances a ride through the dispatch states and logs
// the driver's action on the coordination feed.
func (h *TransportHandler) UpdateRideStatus(c *gin.Context) {
	var req UpdateRideStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	driver, found := currentUser(c, h.Store)
	if !found {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	if !h.Store.UpdateTransportStatus(c.Param("id"), req.Status) {
		utils.NotFound(c, "Ride not found")
		return
	}

	h.Store.AddNotification(fmt.Sprintf("Driver %s updated ride status to %s.", driver.Name, req.Status), "")
	utils.Success(c, "Ride status updated", nil)
}

// FailRideRequest represents the request body for reporting a failed
// ride.
type FailRideRequest struct {
	Reason string `json:"reason"`
}

// FailRide marks a ride FAILED with the driver's reason.
func (h *TransportHandler) FailRide(c *gin.Context) {
	var req FailRideRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if req.Reason == "" {
		req.Reason = "Driver reported urgent issue"
	}

	if !h.Store.FailRide(c.Param("id"), req.Reason) {
		utils.NotFound(c, "Ride not found")
		return
	}
	utils.Success(c, "Ride marked failed", nil)
}

// CallDriver records a fleet connection attempt for a ride.
func (h *TransportHandler) CallDriver(c *gin.Context) {
	h.Store.CallDriver(c.Param("id"))
	utils.Success(c, "Connecting to Beacon Fleet", nil)
}

// EmergencyRequest represents the request body for SOS operations.
type EmergencyRequest struct {
	PatientID string `json:"patientId"`
}

// RequestEmergency dispatches an SOS ambulance ride. Patient sessions
// always raise the SOS for their own record; repeated requests while one
// is active are no-ops.
func (h *TransportHandler) RequestEmergency(c *gin.Context) {
	var req EmergencyRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patientID := h.resolveEmergencyTarget(c, req.PatientID)
	if patientID == "" {
		utils.Forbidden(c, "No patient record linked to this session.")
		return
	}

	h.Store.RequestEmergency(patientID)
	utils.Success(c, "Emergency dispatch acknowledged", nil)
}

// ResolveEmergency stands down the active SOS for a patient.
func (h *TransportHandler) ResolveEmergency(c *gin.Context) {
	var req EmergencyRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patientID := h.resolveEmergencyTarget(c, req.PatientID)
	if patientID == "" {
		utils.Forbidden(c, "No patient record linked to this session.")
		return
	}

	h.Store.ResolveEmergency(patientID)
	utils.Success(c, "Emergency resolved", nil)
}

func (h *TransportHandler) resolveEmergencyTarget(c *gin.Context, requested string) string {
	role, _ := middleware.GetUserRoleFromContext(c)
	if role == models.RolePatient {
		return middleware.GetPatientIDFromContext(c)
	}
	return requested
}
