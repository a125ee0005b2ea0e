package response

// LoginResponse is what the client caches and later mirrors back through the
// x-role header. No token is minted anywhere.
type LoginResponse struct {
	Success bool   `json:"success"`
	Role    string `json:"role"`
	Email   string `json:"email"`
}
