package domain

// Owned is implemented by every entity that carries an ownership field
// (owner, host or user). The returned value is the owning user's id.
type Owned interface {
	OwnerIdentity() string
}
