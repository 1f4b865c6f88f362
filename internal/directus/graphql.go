package directus

import (
	"encoding/json"
	"strings"
)

// graphqlRequest is the body POSTed to /graphql.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphqlResponse is the standard GraphQL response envelope. Data is kept
// raw so each caller can unmarshal into its own result shape.
type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

type graphqlError struct {
	Message string `json:"message"`
}

// joinGraphQLErrors flattens the errors array of a GraphQL response into a
// single string, one message per error, separated by "; ".
func joinGraphQLErrors(errs []graphqlError) string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Message)
	}
	return strings.Join(messages, "; ")
}
