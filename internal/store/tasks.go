package store

import (
	"beacon-care-server/internal/models"
)

// ManageTask creates or resolves a follow-up task for the named patient.
// CREATE appends a PENDING task due today, defaulting the title to
// "Care Review" and the priority to MEDIUM. RESOLVE removes the
// patient's first PENDING task and is a no-op when none exists.
func (s *Store) ManageTask(action, patientName, title string, priority models.TaskPriority) bool {
	patient, found := s.FindPatient(patientName)
	if !found {
		return false
	}

	if action == ActionCreate {
		s.update(func(cur models.State) (models.State, bool) {
			taskTitle := title
			if taskTitle == "" {
				taskTitle = "Care Review"
			}
			taskPriority := priority
			if taskPriority == "" {
				taskPriority = models.TaskPriorityMedium
			}
			task := models.FollowUpTask{
				ID:        newID("k"),
				PatientID: patient.ID,
				Title:     taskTitle,
				Priority:  taskPriority,
				Status:    models.TaskPending,
				DueDate:   s.now().Format("2006-01-02"),
			}

			next := cur
			next.Tasks = append([]models.FollowUpTask{task}, cur.Tasks...)
			return next, true
		})
		return true
	}

	s.update(func(cur models.State) (models.State, bool) {
		for _, t := range cur.Tasks {
			if t.PatientID == patient.ID && t.Status == models.TaskPending {
				kept := make([]models.FollowUpTask, 0, len(cur.Tasks))
				for _, other := range cur.Tasks {
					if other.ID != t.ID {
						kept = append(kept, other)
					}
				}
				next := cur
				next.Tasks = kept
				return next, true
			}
		}
		return cur, false
	})
	return true
}

// ResolveTask removes a task from the work queue by id.
func (s *Store) ResolveTask(taskID string) bool {
	return s.update(func(cur models.State) (models.State, bool) {
		kept := make([]models.FollowUpTask, 0, len(cur.Tasks))
		for _, t := range cur.Tasks {
			if t.ID != taskID {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(cur.Tasks) {
			return cur, false
		}

		next := cur
		next.Tasks = kept
		return next, true
	})
}
