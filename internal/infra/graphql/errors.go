package graphql

import (
	"fmt"
	"strings"
)

type Error struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// ErrorList is the top level errors payload of a GraphQL response. Callers
// wrap it with entity context before propagating.
type ErrorList []Error

func (e ErrorList) Error() string {
	if len(e) == 0 {
		return "graphql error"
	}
	messages := make([]string, 0, len(e))
	for _, item := range e {
		msg := strings.TrimSpace(item.Message)
		if msg == "" {
			msg = "unknown error"
		}
		if code, ok := item.Extensions["code"].(string); ok && code != "" {
			msg = fmt.Sprintf("%s (%s)", msg, code)
		}
		messages = append(messages, msg)
	}
	return strings.Join(messages, "; ")
}

type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func newStatusError(statusCode int, status string, body []byte) *StatusError {
	return &StatusError{
		StatusCode: statusCode,
		Status:     status,
		Body:       strings.TrimSpace(string(body)),
	}
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("graphql request failed: %s", e.Status)
	}
	return fmt.Sprintf("graphql request failed: %s: %s", e.Status, e.Body)
}
