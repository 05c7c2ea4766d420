// Package finland fetches Finland-specific public data for the report:
// electricity spot prices, aurora activity, road weather, and public
// transport disruptions. Every source degrades independently; a failed fetch
// omits its section and never aborts the report.
package finland

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aikalabs/aika-go/internal/cache"
	"github.com/aikalabs/aika-go/internal/conf"
	"github.com/aikalabs/aika-go/internal/logging"
)

const requestTimeout = 10 * time.Second

var logger *slog.Logger

func init() {
	logger = logging.ForService("finland")
	if logger == nil {
		logger = slog.Default().With("service", "finland")
	}
}

// Service reads the Finland data sources configured in settings.
type Service struct {
	settings *conf.Settings
	store    *cache.Store
	client   *http.Client
}

// NewService returns a Service over the given configuration and cache.
func NewService(settings *conf.Settings, store *cache.Store) *Service {
	return &Service{
		settings: settings,
		store:    store,
		client:   &http.Client{Timeout: requestTimeout},
	}
}

// inFinland gates every source: the data is meaningless outside the country.
func (s *Service) inFinland() bool {
	return strings.EqualFold(s.settings.Location.Country, "FI")
}

// fetchJSON issues a GET with optional headers and returns the body on a 200.
func (s *Service) fetchJSON(url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Debug("failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode, url: url}
	}
	return io.ReadAll(resp.Body)
}

type statusError struct {
	code int
	url  string
}

func (e *statusError) Error() string {
	return "unexpected status " + http.StatusText(e.code) + " from " + e.url
}
