package catalog

import (
	"time"

	"github.com/cartcompass/backend/internal/domain"
	"github.com/cartcompass/backend/internal/infrastructure/refdata"
	"github.com/cartcompass/backend/internal/usecase"
)

// RegistryConfig holds construction parameters for the provider registry
type RegistryConfig struct {
	// Mode selects provider wiring: "simulated" serves every chain from the
	// reference dataset; "hybrid" uses live APIs with simulated fallback for
	// chains that have a base URL configured.
	Mode string

	// LiveBaseURLs maps chain id to its retailer search API base URL
	LiveBaseURLs map[string]string

	APIKey         string
	RequestsPerSec float64
	Burst          int
	Cache          domain.CacheRepository
	CacheTTL       time.Duration
	EnableDebugLog bool
}

// Registry builds and holds one CatalogProvider per known chain
type Registry struct {
	providers map[string]domain.CatalogProvider
	dataset   *refdata.Dataset
}

// NewRegistry wires a provider for every chain in the reference dataset.
// Chains with a configured live base URL get a hybrid provider in hybrid
// mode; everything else is simulated.
func NewRegistry(dataset *refdata.Dataset, quoter *usecase.Quoter, config RegistryConfig) *Registry {
	providers := make(map[string]domain.CatalogProvider)

	for _, chainID := range dataset.Chains() {
		simulated := NewSimulatedProvider(chainID, dataset, quoter)

		baseURL := config.LiveBaseURLs[chainID]
		if config.Mode == "hybrid" && baseURL != "" {
			client := NewClient(ClientConfig{
				StoreID:        chainID,
				BaseURL:        baseURL,
				APIKey:         config.APIKey,
				RequestsPerSec: config.RequestsPerSec,
				Burst:          config.Burst,
				Cache:          config.Cache,
				CacheTTL:       config.CacheTTL,
				EnableDebugLog: config.EnableDebugLog,
			})
			live := NewLiveProvider(chainID, client, quoter)
			live.SetDebug(config.EnableDebugLog)
			providers[chainID] = NewHybridProvider(live, simulated)
			continue
		}

		providers[chainID] = simulated
	}

	return &Registry{providers: providers, dataset: dataset}
}

// Provider returns the provider for a chain
func (r *Registry) Provider(chainID string) (domain.CatalogProvider, error) {
	provider, ok := r.providers[chainID]
	if !ok {
		return nil, domain.ErrUnknownStore
	}
	return provider, nil
}

// Providers resolves a provider per requested chain, failing on the first
// unknown chain.
func (r *Registry) Providers(chainIDs []string) ([]domain.CatalogProvider, error) {
	out := make([]domain.CatalogProvider, 0, len(chainIDs))
	for _, chainID := range chainIDs {
		provider, err := r.Provider(chainID)
		if err != nil {
			return nil, err
		}
		out = append(out, provider)
	}
	return out, nil
}

// Chains returns the chain ids with a registered provider
func (r *Registry) Chains() []string {
	return r.dataset.Chains()
}
