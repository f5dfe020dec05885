package model

// Greeting is returned by the hello endpoint.
type Greeting struct {
	Message string `json:"message"`
}
