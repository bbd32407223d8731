package storage

// Keys shared with the rest of the session. The cart key is owned by the
// cart store; token is written by the login flow outside this program and
// read-only here; order_id is written once after a successful submission.
const (
	KeyCart    = "cart"
	KeyToken   = "token"
	KeyOrderID = "order_id"
)

// Store is the persisted key-value state a session survives page loads
// through. Deleting one key must leave the others untouched.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}
