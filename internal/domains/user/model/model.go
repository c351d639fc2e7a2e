package model

const (
	TableName  = "users"
	EntityName = "user"

	FieldID             = "id"
	FieldRole           = "role"
	FieldFullName       = "full_name"
	FieldEmail          = "email"
	FieldEmailHash      = "email_hash"
	FieldHashedPassword = "hashed_password"
)

// User keeps full_name and email as AES-GCM ciphertext. email_hash is the
// keyed lookup hash used to find a user by email without decrypting.
type User struct {
	ID             int64  `db:"id"`
	Role           string `db:"role"`
	FullName       string `db:"full_name"`
	Email          string `db:"email"`
	EmailHash      string `db:"email_hash"`
	HashedPassword string `db:"hashed_password"`
}
