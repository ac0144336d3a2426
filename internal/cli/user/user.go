package user

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/listo/internal/models"
)

// UserCmd returns the user parent command
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage the local account",
	}

	cmd.AddCommand(RegisterCmd())
	cmd.AddCommand(LoginCmd())
	cmd.AddCommand(WhoamiCmd())
	cmd.AddCommand(RemoveCmd())

	return cmd
}

// UserJSON is the JSON shape of the account in command output; it never
// carries the secret
type UserJSON struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// GetID lets quiet mode print the email
func (u UserJSON) GetID() string {
	return u.Email
}

func toJSON(c models.Credential) UserJSON {
	return UserJSON{Username: c.Username, Email: c.Email}
}

// userResult is the account plus the line shown to humans
type userResult struct {
	UserJSON
	message string
}

func (r userResult) String() string {
	return r.message
}

type removedResult struct{}

func (removedResult) String() string {
	return "✓ Account removed"
}
