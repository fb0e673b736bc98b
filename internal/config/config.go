package config

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	API    APIConfig
	Import ImportConfig
}

type APIConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type ImportConfig struct {
	EnvironmentID string
	ProductIDs    []string
	DryRun        bool
	Publish       bool
	Update        bool
}

const DefaultBaseURL = "https://api.stigg.io/graphql"

func (c Config) Validate() error {
	if strings.TrimSpace(c.API.APIKey) == "" {
		return fmt.Errorf("missing required API key: set X_API_KEY or --api-key")
	}
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return fmt.Errorf("missing API base URL")
	}
	if strings.TrimSpace(c.Import.EnvironmentID) == "" {
		return fmt.Errorf("missing required environment id: set ENVIRONMENT_ID or --environment-id")
	}
	if len(c.Import.ProductIDs) == 0 {
		return fmt.Errorf("missing required product ids: set ZUORA_PRODUCT_IDS or --product-ids")
	}
	return nil
}

// SplitProductIDs parses the comma separated product id list taken from the
// CLI flag or ZUORA_PRODUCT_IDS.
func SplitProductIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
