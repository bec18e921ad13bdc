package inventory_client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redhatinsights/inventory-search-backend/pkg/api"
	"github.com/redhatinsights/inventory-search-backend/pkg/cache"
	"github.com/redhatinsights/inventory-search-backend/pkg/config"
	"github.com/redhatinsights/inventory-search-backend/pkg/filter"
	"github.com/redhatinsights/inventory-search-backend/pkg/instrumentation"
)

// InventoryClient shapes requests against the host-inventory API and
// forwards its responses untouched.
type InventoryClient interface {
	ListTags(ctx context.Context, params ListParams) (TagsResponse, int, error)
	ListSapSids(ctx context.Context, params ListParams) (SapSidsResponse, int, error)
	ListHosts(ctx context.Context, params ListParams) (HostsResponse, int, error)
	CountHosts(ctx context.Context, params ListParams) (int64, int, error)
	WorkloadsCheck(ctx context.Context, sel filter.Selection) (api.WorkloadsResponse, error)
}

type inventoryClient struct {
	client  *http.Client
	cache   cache.Cache
	metrics *instrumentation.Metrics
}

func NewInventoryClient(metrics *instrumentation.Metrics) (InventoryClient, error) {
	timeout := time.Duration(config.Get().Clients.Inventory.Timeout) * time.Second

	transport, err := config.GetTransport(timeout)
	if err != nil {
		return nil, fmt.Errorf("error creating http transport: %w", err)
	}

	httpClient := http.Client{Transport: transport, Timeout: timeout}

	return inventoryClient{client: &httpClient, cache: cache.Initialize(), metrics: metrics}, nil
}

// ListParams carries the request shape every inventory listing operation
// accepts. Zero values are left off the wire.
type ListParams struct {
	Tags           []string   // structured tags as namespace/key=value strings
	Filter         filter.Map // nested filter, flattened into filter[...] parameters
	PerPage        int
	Page           int
	Search         string
	RegisteredWith string
	OrderBy        string
	OrderHow       string
}
