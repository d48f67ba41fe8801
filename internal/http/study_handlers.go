package httpapi

import (
	"encoding/json"
	"net/http"

	"universe-backend-go/internal/universe"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]universe.User{"user": s.Store.CurrentUser()})
}

func (s *Server) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var patch universe.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	updated := s.Store.UpdateUser(patch)
	WriteJSON(w, http.StatusOK, map[string]universe.User{"user": updated})
}

func (s *Server) ListEvents(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string][]universe.Event{"items": s.Store.Events()})
}

func (s *Server) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var event universe.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	WriteJSON(w, http.StatusCreated, s.Store.AddEvent(event))
}

func (s *Server) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var patch universe.EventPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	s.Store.UpdateEvent(chi.URLParam(r, "eventId"), patch)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	s.Store.DeleteEvent(chi.URLParam(r, "eventId"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) ListClasses(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string][]universe.ClassEvent{"items": s.Store.Classes()})
}

func (s *Server) CreateClass(w http.ResponseWriter, r *http.Request) {
	var class universe.ClassEvent
	if err := json.NewDecoder(r.Body).Decode(&class); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	WriteJSON(w, http.StatusCreated, s.Store.AddClass(class))
}

func (s *Server) UpdateClass(w http.ResponseWriter, r *http.Request) {
	var patch universe.ClassPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	s.Store.UpdateClass(chi.URLParam(r, "classId"), patch)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) DeleteClass(w http.ResponseWriter, r *http.Request) {
	s.Store.DeleteClass(chi.URLParam(r, "classId"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) ListAssignments(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string][]universe.Assignment{"items": s.Store.Assignments()})
}

func (s *Server) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var assignment universe.Assignment
	if err := json.NewDecoder(r.Body).Decode(&assignment); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	WriteJSON(w, http.StatusCreated, s.Store.AddAssignment(assignment))
}

func (s *Server) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	var patch universe.AssignmentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	s.Store.UpdateAssignment(chi.URLParam(r, "assignmentId"), patch)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	s.Store.DeleteAssignment(chi.URLParam(r, "assignmentId"))
	w.WriteHeader(http.StatusNoContent)
}
