package mock

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/viant/taskmgr/schema"
)

type contextKey string

const userIDKey contextKey = "userID"

// Handler returns the backend router.
func (s *Service) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(echoRequestID)

	router.Post(schema.PathLogin, s.login)
	router.Post(schema.PathRegister, s.register)
	router.Post(schema.PathRefreshToken, s.refresh)

	router.Group(func(r chi.Router) {
		r.Use(s.authenticate)
		r.Post(schema.PathLogout, s.logout)
		r.Get(schema.PathCurrentUser, s.currentUser)
		r.Patch(schema.PathAvatar, s.updateAvatar)
		r.Patch(schema.PathUpdateProfile, s.updateProfile)
		r.Patch(schema.PathChangePassword, s.changePassword)

		r.Get(schema.PathTasks, s.listTasks)
		r.Post(schema.PathTasks, s.createTask)
		r.Put(schema.PathTask, s.updateTask)
		r.Delete(schema.PathTask, s.deleteTask)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAdmin)
			r.Get(schema.PathAdminUsers, s.listUsers)
			r.Patch(schema.PathAdminBlock, s.blockUser)
			r.Patch(schema.PathAdminUnblock, s.unblockUser)
		})
	})
	return router
}

func echoRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.Header.Get("X-Request-Id"); id != "" {
			w.Header().Set("X-Request-Id", id)
		}
		next.ServeHTTP(w, r)
	})
}

// authenticate rejects requests without a current access token
func (s *Service) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			writeError(w, http.StatusUnauthorized, "missing access token")
			return
		}
		userID, err := s.parseJWT(tokenString, accessTokenType)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid access token")
			return
		}
		anAccount, ok := s.accounts.Get(userID)
		if !ok {
			writeError(w, http.StatusUnauthorized, "unknown user")
			return
		}
		if anAccount.user.IsBlocked {
			writeError(w, http.StatusForbidden, "user is blocked")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

func (s *Service) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := s.User(userID(r))
		if !ok || !user.IsAdmin {
			writeError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func userID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}
