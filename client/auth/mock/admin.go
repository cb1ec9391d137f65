package mock

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/viant/taskmgr/schema"
)

func (s *Service) listUsers(w http.ResponseWriter, r *http.Request) {
	var users []*schema.User
	for _, anAccount := range s.accounts.Values() {
		user := anAccount.user
		users = append(users, &user)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	writeData(w, http.StatusOK, "", users)
}

func (s *Service) blockUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == userID(r) {
		writeError(w, http.StatusBadRequest, "cannot block yourself")
		return
	}
	s.setBlocked(w, id, true)
	s.revokeRefreshTokens(id)
}

func (s *Service) unblockUser(w http.ResponseWriter, r *http.Request) {
	s.setBlocked(w, chi.URLParam(r, "id"), false)
}

func (s *Service) setBlocked(w http.ResponseWriter, id string, blocked bool) {
	s.modifyUser(w, id, func(user *schema.User) {
		user.IsBlocked = blocked
	})
}
