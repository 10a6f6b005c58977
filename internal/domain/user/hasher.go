package user

// PasswordHasher is the credential hashing capability the principal store
// depends on. Verify must not reveal whether the hash or the password was at
// fault.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
