package httpserver

import "github.com/labstack/echo/v4"

// errorBody is the single-message failure shape: {"error": "..."}.
func errorBody(message string) map[string]string {
	return map[string]string{"error": message}
}

// errorsBody is the validation failure shape: {"errors": ["...", ...]}.
func errorsBody(violations []string) map[string][]string {
	return map[string][]string{"errors": violations}
}

func messageOf(he *echo.HTTPError) string {
	if msg, ok := he.Message.(string); ok {
		return msg
	}
	if err, ok := he.Message.(error); ok {
		return err.Error()
	}
	return "Bad request"
}
