package stigg

import (
	"zuora-catalog-importer/internal/infra/graphql"
	"zuora-catalog-importer/internal/logging"
)

// Client implements the target catalog services against the platform GraphQL
// API. All create inputs are scoped to the configured environment.
type Client struct {
	gql           *graphql.Client
	environmentID string
	logger        logging.LoggerService
}

func NewClient(gql *graphql.Client, environmentID string, logger logging.LoggerService) *Client {
	return &Client{
		gql:           gql,
		environmentID: environmentID,
		logger:        logger,
	}
}

func eq(value any) map[string]any {
	return map[string]any{"eq": value}
}
