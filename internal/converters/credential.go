package converters

import (
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/thenoetrevino/listo/internal/models"
)

// CredentialRecord is the on-disk shape of the user record
type CredentialRecord struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

const credentialSchema = `{
	"type": "object",
	"required": ["username", "email", "password"],
	"properties": {
		"username": {"type": "string"},
		"email":    {"type": "string"},
		"password": {"type": "string"}
	}
}`

var credentialRecord = jsonschema.MustCompileString("listo://schemas/user.json", credentialSchema)

// EncodeCredential serializes the user record
func EncodeCredential(c models.Credential) ([]byte, error) {
	return json.Marshal(CredentialRecord{
		Username: c.Username,
		Email:    c.Email,
		Password: c.Password,
	})
}

// DecodeCredential parses and validates the user record
func DecodeCredential(data []byte) (models.Credential, error) {
	if err := validate(credentialRecord, data); err != nil {
		return models.Credential{}, err
	}

	var r CredentialRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return models.Credential{}, fmt.Errorf("decode user: %w", err)
	}
	return models.Credential{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}, nil
}
