package models

// ErrorBody is the error envelope every storefront endpoint returns on
// failure: `{"error": "..."}`.
type ErrorBody struct {
	Error string `json:"error"`
}

func Error(message string) ErrorBody {
	return ErrorBody{Error: message}
}
