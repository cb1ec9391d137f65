package mock

import (
	"net/http"
	"strings"
	"time"

	"github.com/viant/taskmgr/schema"
	"golang.org/x/crypto/bcrypt"
)

func (s *Service) login(w http.ResponseWriter, r *http.Request) {
	credentials := &schema.Credentials{}
	if err := decodeJSON(r, credentials); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	id, ok := s.emails.Get(strings.ToLower(credentials.Email))
	var anAccount *account
	if ok {
		anAccount, ok = s.accounts.Get(id)
	}
	if !ok || bcrypt.CompareHashAndPassword(anAccount.passwordHash, []byte(credentials.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if anAccount.user.IsBlocked {
		writeError(w, http.StatusForbidden, "user is blocked")
		return
	}
	s.writeSession(w, http.StatusOK, "logged in", id)
}

func (s *Service) register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	email, fullName, password := r.FormValue("email"), r.FormValue("fullName"), r.FormValue("password")
	if email == "" || fullName == "" || password == "" {
		writeError(w, http.StatusBadRequest, "email, fullName and password are required")
		return
	}
	user, err := s.AddUser(email, fullName, password, false)
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if avatar := uploadedFile(r, "image"); avatar != "" {
		s.accounts.Update(user.ID, func(a *account) *account {
			updated := *a
			updated.user.Avatar = avatar
			return &updated
		})
	}
	s.writeSession(w, http.StatusCreated, "registered", user.ID)
}

func (s *Service) refresh(w http.ResponseWriter, r *http.Request) {
	s.refreshCalls.Add(1)
	if s.refreshDelay > 0 {
		time.Sleep(s.refreshDelay)
	}
	request := &schema.RefreshRequest{}
	if err := decodeJSON(r, request); err != nil || request.RefreshToken == "" {
		writeError(w, http.StatusBadRequest, "refresh token is required")
		return
	}
	if s.failRefresh.Load() {
		writeError(w, http.StatusUnauthorized, "refresh token expired")
		return
	}
	owner, ok := s.refreshTokens.Get(request.RefreshToken)
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}
	if subject, err := s.parseJWT(request.RefreshToken, refreshTokenType); err != nil || subject != owner {
		writeError(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}
	s.refreshTokens.Delete(request.RefreshToken)
	pair, err := s.IssueTokens(owner)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeData(w, http.StatusOK, "token refreshed", pair)
}

func (s *Service) logout(w http.ResponseWriter, r *http.Request) {
	s.revokeRefreshTokens(userID(r))
	writeData(w, http.StatusOK, "logged out", nil)
}

func (s *Service) writeSession(w http.ResponseWriter, status int, message, id string) {
	pair, err := s.IssueTokens(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	user, _ := s.User(id)
	writeData(w, status, message, &schema.LoginResult{User: user, TokenPair: *pair})
}
