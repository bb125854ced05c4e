package httperr

// Response is the envelope the error middleware emits for errors attached to
// the gin context (panics included).
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}
