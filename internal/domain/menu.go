package domain

// MenuItem is one entry of the remote menu. The client only ever reads it;
// the backend owns it.
type MenuItem struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}
