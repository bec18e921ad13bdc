package inventory_client

import (
	"context"
	"sync"

	"github.com/redhatinsights/inventory-search-backend/pkg/api"
	"github.com/redhatinsights/inventory-search-backend/pkg/filter"
)

// WorkloadsCheck probes which workload types exist in the org's inventory:
// hosts reporting a SAP system, hosts with Ansible Automation Platform and
// hosts with Microsoft SQL Server. The three counts are independent, so
// the requests go out together and the call blocks until all three settle.
// There is no partial result, the first error fails the whole probe.
func (ic inventoryClient) WorkloadsCheck(ctx context.Context, sel filter.Selection) (api.WorkloadsResponse, error) {
	base := filter.BuildFilter(sel)
	response := api.WorkloadsResponse{}

	type probe struct {
		field string
		out   *api.HostCount
	}
	probes := []probe{
		{field: "sap_system", out: &response.Sap},
		{field: "ansible", out: &response.Ansible},
		{field: "mssql", out: &response.Mssql},
	}

	errors := make([]error, len(probes))

	var wg sync.WaitGroup
	wg.Add(len(probes))
	for i := range probes {
		go func(slot int, p probe) {
			defer wg.Done()
			params := ListParams{
				Filter: filter.WithCondition(base, p.field, filter.String("not_nil")),
				Search: sel.Search,
			}
			total, _, err := ic.CountHosts(ctx, params)
			if err == nil {
				*p.out = api.HostCount{Total: total}
			} else {
				errors[slot] = err
			}
		}(i, probes[i])
	}
	wg.Wait()

	// Errors are fatal for the probe as a whole, return the first one.
	for i := range errors {
		if errors[i] != nil {
			return api.WorkloadsResponse{}, errors[i]
		}
	}
	return response, nil
}
