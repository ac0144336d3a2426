package models

// Credential is the single locally stored user identity
type Credential struct {
	Username string
	Email    string
	// Password holds an argon2id hash. Records written by older clients may
	// still carry the plaintext secret until their next sign-in.
	Password string
}

// Public returns a copy of the credential without its secret
func (c Credential) Public() Credential {
	c.Password = ""
	return c
}
