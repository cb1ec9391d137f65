package mock

import (
	"net/http"
	"strings"
	"time"

	"github.com/viant/taskmgr/schema"
	"golang.org/x/crypto/bcrypt"
)

func (s *Service) currentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := s.User(userID(r))
	if !ok {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeData(w, http.StatusOK, "", user)
}

func (s *Service) updateAvatar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	avatar := uploadedFile(r, "avatar")
	if avatar == "" {
		writeError(w, http.StatusBadRequest, "avatar file is required")
		return
	}
	s.modifyUser(w, userID(r), func(user *schema.User) {
		user.Avatar = avatar
	})
}

func (s *Service) updateProfile(w http.ResponseWriter, r *http.Request) {
	update := &schema.AccountUpdate{}
	if err := decodeJSON(r, update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	id := userID(r)
	if update.Email != "" {
		email := strings.ToLower(update.Email)
		if owner, ok := s.emails.Get(email); ok && owner != id {
			writeError(w, http.StatusConflict, errEmailTaken.Error())
			return
		}
		if current, ok := s.User(id); ok && current.Email != email {
			s.emails.Delete(current.Email)
			s.emails.Put(email, id)
		}
		update.Email = email
	}
	s.modifyUser(w, id, func(user *schema.User) {
		if update.FullName != "" {
			user.FullName = update.FullName
		}
		if update.Email != "" {
			user.Email = update.Email
		}
	})
}

func (s *Service) changePassword(w http.ResponseWriter, r *http.Request) {
	change := &schema.PasswordChange{}
	if err := decodeJSON(r, change); err != nil || change.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(change.NewPassword), bcrypt.MinCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	matched := false
	s.accounts.Update(userID(r), func(a *account) *account {
		if bcrypt.CompareHashAndPassword(a.passwordHash, []byte(change.OldPassword)) != nil {
			return a
		}
		matched = true
		updated := *a
		updated.passwordHash = hash
		updated.user.UpdatedAt = time.Now().UTC()
		return &updated
	})
	if !matched {
		writeError(w, http.StatusBadRequest, "old password is incorrect")
		return
	}
	writeData(w, http.StatusOK, "password changed", nil)
}

func (s *Service) modifyUser(w http.ResponseWriter, id string, fn func(user *schema.User)) {
	var user schema.User
	found := s.accounts.Update(id, func(a *account) *account {
		updated := *a
		fn(&updated.user)
		updated.user.UpdatedAt = time.Now().UTC()
		user = updated.user
		return &updated
	})
	if !found {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeData(w, http.StatusOK, "user updated", &user)
}
