package service

// PasswordHasher defines the interface for passcode hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt).
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext passcode.
	Hash(passcode string) (string, error)

	// Check compares a plaintext passcode with a hash to see if they match.
	Check(passcode, hash string) bool
}
