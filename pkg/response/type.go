package response

// ErrorResp is the JSON body sent with every 4xx/5xx that carries a message.
type ErrorResp struct {
	Error string `json:"error"`
}
