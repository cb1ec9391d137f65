package schema

// Backend REST endpoints, relative to the API base URL.
const (
	PathLogin          = "/user/login"
	PathRegister       = "/user/register"
	PathLogout         = "/user/logout"
	PathRefreshToken   = "/user/refresh-token"
	PathCurrentUser    = "/user/current-user"
	PathAvatar         = "/user/avatar"
	PathUpdateProfile  = "/user/update-profile"
	PathChangePassword = "/user/change-password"

	PathTasks = "/task"
	PathTask  = "/task/{id}"

	PathAdminUsers   = "/admin/users"
	PathAdminBlock   = "/admin/block/{id}"
	PathAdminUnblock = "/admin/unblock/{id}"
)
