package dispatch

import (
	"fmt"

	"beacon-care-server/internal/models"
	"beacon-care-server/internal/store"
)

// Command is the structured intent emitted by the assistant service: a
// function name plus the argument bag matching its declared schema. The
// dispatcher accepts this shape exactly and never requires the caller to
// pre-authorize.
type Command struct {
	FunctionName string `json:"functionName" binding:"required"`
	Action       string `json:"action,omitempty"`
	PatientName  string `json:"patientName,omitempty"`
	Datetime     string `json:"datetime,omitempty"`
	Title        string `json:"title,omitempty"`
	Priority     string `json:"priority,omitempty"`
	DriverName   string `json:"driverName,omitempty"`
	Enable       bool   `json:"enable,omitempty"`
	Target       string `json:"target,omitempty"`
}

// Recognized functionName values.
const (
	FnConsultVirtualDoctor = "consultVirtualDoctor"
	FnGetPatientInfo       = "getPatientInfo"
	FnManageAppointment    = "manageAppointment"
	FnManageTask           = "manageTask"
	FnManageTransport      = "manageTransport"
	FnNavigate             = "navigate"
)

// navigate targets.
const (
	ViewMain      = "MAIN"
	ViewInbox     = "INBOX"
	ViewLogistics = "LOGISTICS"
)

// Result is the dispatcher's acknowledgment: a short human-readable
// reply (never raw ids or error detail) and, for navigation intents, the
// view the caller should switch to.
type Result struct {
	Reply    string `json:"reply"`
	Navigate string `json:"navigate,omitempty"`
}

// Dispatcher bridges a caller's role and identity to the store's
// operation set. It overrides the target identity for PATIENT callers,
// authorizes before resolving any name (so a patient can never probe for
// another patient's existence) and maps each intent onto store
// operations with deterministic sub-branching on the action argument.
type Dispatcher struct {
	store *store.Store
}

// New creates a Dispatcher over the given store.
func New(s *store.Store) *Dispatcher {
	return &Dispatcher{store: s}
}

// Dispatch executes one intent on behalf of the caller. Unrecognized
// intents acknowledge generically; nothing here returns an error.
func (d *Dispatcher) Dispatch(cmd Command, caller models.User) Result {
	isPatient := caller.Role == models.RolePatient

	// Patients can only ever act on their own record, regardless of any
	// name the assistant extracted.
	target := cmd.PatientName
	if isPatient {
		target = caller.Name
	}

	switch cmd.FunctionName {
	case FnConsultVirtualDoctor:
		d.store.ToggleVirtualDoctor(cmd.Enable)
		if cmd.Enable {
			return Result{Reply: "Beacon Consultation mode engaged."}
		}
		return Result{Reply: "Beacon Consultation mode disengaged."}

	case FnManageAppointment:
		switch cmd.Action {
		case "ADD":
			d.store.ScheduleAppointment(target, cmd.Datetime)
		case "CANCEL":
			d.store.CancelAppointmentsFor(target)
		default:
			d.store.UpdateAppointmentTime(target, cmd.Datetime)
		}
		return Result{Reply: fmt.Sprintf("Clinical schedule updated for %s.", store.DefaultSite)}

	case FnManageTask:
		d.store.ManageTask(cmd.Action, target, cmd.Title, models.TaskPriority(cmd.Priority))
		return Result{Reply: "Beacon work queue updated."}

	case FnManageTransport:
		if isPatient && cmd.Action != store.ActionRequest {
			return Result{Reply: "Access denied to administrative logistics."}
		}
		d.store.ManageTransport(cmd.Action, target, cmd.DriverName)
		return Result{Reply: "Beacon Fleet updated."}

	case FnGetPatientInfo:
		p, found := d.store.FindPatient(target)
		if !found {
			return Result{Reply: "Record not found in Beacon."}
		}
		return Result{Reply: fmt.Sprintf("%s: Risk %s.", p.Name, p.RiskLevel)}

	case FnNavigate:
		if isPatient && cmd.Target == ViewLogistics {
			return Result{Reply: "Access denied to logistics system."}
		}
		return Result{
			Reply:    fmt.Sprintf("Navigation to %s verified.", cmd.Target),
			Navigate: cmd.Target,
		}

	default:
		return Result{Reply: "Command processed by Beacon."}
	}
}
