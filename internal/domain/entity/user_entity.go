package entity

// User is a login credential provisioned out of band (seed/admin).
// Password holds the bcrypt hash, never the raw secret.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
}
