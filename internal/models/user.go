package models

// User represents the signed-in visitor as returned by the remote auth
// service. Credential handling and token issuance live entirely on that
// service; this record is display state.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
