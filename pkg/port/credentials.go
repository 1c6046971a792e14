package port

// CredentialValidator decides if a username and password pair
// grants access to the protected part of the application.
type CredentialValidator interface {
	Validate(username, password string) bool
}
