package mock

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/viant/taskmgr/schema"
)

func (s *Service) listTasks(w http.ResponseWriter, r *http.Request) {
	owner := userID(r)
	query := &schema.TaskQuery{
		Search: strings.ToLower(r.URL.Query().Get("search")),
		Sort:   r.URL.Query().Get("sort"),
		Order:  r.URL.Query().Get("order"),
	}
	query.Init()
	var tasks []*schema.Task
	s.tasks.Range(func(_ string, task *schema.Task) bool {
		if task.Owner != owner {
			return true
		}
		if query.Search != "" &&
			!strings.Contains(strings.ToLower(task.Title), query.Search) &&
			!strings.Contains(strings.ToLower(task.Description), query.Search) {
			return true
		}
		aCopy := *task
		tasks = append(tasks, &aCopy)
		return true
	})
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if query.Order == schema.OrderDesc {
			a, b = b, a
		}
		if query.Sort == schema.SortByTitle {
			return a.Title < b.Title
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	if tasks == nil {
		tasks = []*schema.Task{}
	}
	writeData(w, http.StatusOK, "", tasks)
}

func (s *Service) createTask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	title := r.FormValue("title")
	if title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	now := time.Now().UTC()
	task := &schema.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: r.FormValue("description"),
		Image:       uploadedFile(r, "image"),
		Owner:       userID(r),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.tasks.Put(task.ID, task)
	writeData(w, http.StatusCreated, "task created", task)
}

func (s *Service) updateTask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	id, owner := chi.URLParam(r, "id"), userID(r)
	title, description, image := r.FormValue("title"), r.FormValue("description"), uploadedFile(r, "image")
	var result *schema.Task
	s.tasks.Update(id, func(task *schema.Task) *schema.Task {
		if task.Owner != owner {
			return task
		}
		updated := *task
		if title != "" {
			updated.Title = title
		}
		updated.Description = description
		if image != "" {
			updated.Image = image
		}
		updated.UpdatedAt = time.Now().UTC()
		result = &updated
		return &updated
	})
	if result == nil {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	writeData(w, http.StatusOK, "task updated", result)
}

func (s *Service) deleteTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	task, ok := s.tasks.Get(id)
	if !ok || task.Owner != userID(r) {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	s.tasks.Delete(id)
	writeData(w, http.StatusOK, "task deleted", nil)
}
