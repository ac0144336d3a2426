package user

import (
	"os"
	"os/user"
	"strings"
)

// DefaultUsername returns the display name offered when registering without --username.
// It prefers the OS account's full name, then its login name, then $USER.
// An empty string means nothing usable was found.
func DefaultUsername() string {
	if current, err := user.Current(); err == nil {
		// GECOS may carry extra comma-separated fields after the full name
		if name, _, _ := strings.Cut(current.Name, ","); strings.TrimSpace(name) != "" {
			return strings.TrimSpace(name)
		}
		if current.Username != "" {
			return current.Username
		}
	}
	return strings.TrimSpace(os.Getenv("USER"))
}
