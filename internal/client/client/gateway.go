package client

import (
	"net/http"
	"time"

	"github.com/benhsieh-dev/Youtube/internal/logging"
)

// Gateway routes each operation to the origin that serves it. Callers depend
// on the Identity and Videos interfaces only, so collapsing both origins into
// one later is a change local to NewGateway.
type Gateway struct {
	Identity IdentityClient
	Videos   VideoClient
}

// GatewayConfig holds the origin base URLs and the per-request timeout.
// Timeout does not apply to video uploads.
type GatewayConfig struct {
	IdentityBaseURL string
	LegacyBaseURL   string
	Timeout         time.Duration
}

func NewGateway(cfg GatewayConfig, logger logging.Logger) (*Gateway, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	identity, err := NewIdentityHTTPClient(cfg.IdentityBaseURL, httpClient, logger)
	if err != nil {
		return nil, err
	}
	videos, err := NewVideoHTTPClient(cfg.LegacyBaseURL, httpClient, logger)
	if err != nil {
		return nil, err
	}

	return &Gateway{Identity: identity, Videos: videos}, nil
}
