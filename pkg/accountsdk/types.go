package accountsdk

// ErrorResponse is the body returned for any failed request. The service
// deliberately exposes a single message string and nothing else.
type ErrorResponse struct {
	// Error is a human-readable message (e.g. "Invalid credentials")
	Error string `json:"error"`
}

// SignupRequest contains the fields for creating a new account.
// All four fields are required.
type SignupRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	// Identifier is either the username or the email address. Anything
	// containing an "@" is treated as an email.
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// UserDetails are the public fields of an account. The password hash is never
// part of any response.
type UserDetails struct {
	// ID is omitted in login responses.
	ID       string `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// SignupResponse is returned on successful account creation.
type SignupResponse struct {
	Message string      `json:"message"`
	User    UserDetails `json:"user"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserDetails `json:"user"`
}

// HealthResponse is returned from the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
