package inventory_client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/redhatinsights/inventory-search-backend/pkg/api"
	"github.com/redhatinsights/inventory-search-backend/pkg/cache"
	"github.com/redhatinsights/inventory-search-backend/pkg/config"
	"github.com/redhatinsights/inventory-search-backend/pkg/filter"
	"github.com/redhatinsights/platform-go-middlewares/v2/identity"
	"github.com/rs/zerolog/log"
)

const (
	tagsPath    = "/api/inventory/v1/tags"
	sapSidsPath = "/api/inventory/v1/system_profile/sap_sids"
	hostsPath   = "/api/inventory/v1/hosts"
)

type ResponseMeta struct {
	Total   int64 `json:"total"`
	Count   int64 `json:"count"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
}

type TagsResponse struct {
	ResponseMeta
	Results []api.TagItem `json:"results"`
}

type SapSidsResponse struct {
	ResponseMeta
	Results []api.SapSidItem `json:"results"`
}

type Host struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Fqdn        string `json:"fqdn"`
	OrgID       string `json:"org_id"`
	Stale       string `json:"staleness"`
}

type HostsResponse struct {
	ResponseMeta
	Results []Host `json:"results"`
}

// encode turns the parameter set into its wire form. The nested filter is
// flattened under the filter namespace; the enhancer names the array index
// placeholder for list leaves.
func (p ListParams) encode(enhancer string) string {
	q := url.Values{}
	for _, tag := range p.Tags {
		q.Add("tags", tag)
	}
	filter.AddToQuery(q, filter.Flatten(p.Filter, filter.DefaultPrefix, enhancer))
	if p.PerPage != 0 {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Page != 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.RegisteredWith != "" {
		q.Set("registered_with", p.RegisteredWith)
	}
	if p.OrderBy != "" {
		q.Set("order_by", p.OrderBy)
		q.Set("order_how", p.OrderHow)
	}
	return q.Encode()
}

func encodedIdentity(ctx context.Context) (string, error) {
	id := identity.GetIdentity(ctx)
	jsonIdentity, err := json.Marshal(id)
	if err != nil {
		return "", fmt.Errorf("error marshaling json: %w", err)
	}
	return base64.StdEncoding.EncodeToString(jsonIdentity), nil
}

// ListTags requests one page of structured tags under the active filter,
// ordered by tag name ascending. Pages are cached per identity when a
// cache is configured.
func (ic inventoryClient) ListTags(ctx context.Context, params ListParams) (TagsResponse, int, error) {
	var tagsResp TagsResponse

	if params.OrderBy == "" {
		params.OrderBy = "tag"
		params.OrderHow = "ASC"
	}
	query := params.encode("")

	cached, err := ic.cache.GetTagList(ctx, query)
	if err != nil && !errors.Is(err, cache.NotFound) {
		log.Error().Err(err).Msg("ListTags - error reading from cache")
	}
	if cached != nil {
		err = json.Unmarshal(cached, &tagsResp)
		if err != nil {
			return TagsResponse{}, http.StatusInternalServerError, fmt.Errorf("error during unmarshal response body: %w", err)
		}
		return tagsResp, http.StatusOK, nil
	}

	body, statusCode, err := ic.doGet(ctx, tagsPath, query, "tags")
	if err != nil {
		return TagsResponse{}, statusCode, err
	}

	if err := ic.cache.SetTagList(ctx, query, body); err != nil {
		log.Error().Err(err).Msg("ListTags - error writing to cache")
	}

	err = json.Unmarshal(body, &tagsResp)
	if err != nil {
		return TagsResponse{}, statusCode, fmt.Errorf("error during unmarshal response body: %w", err)
	}
	return tagsResp, statusCode, nil
}

// ListSapSids requests one page of SAP system identifiers under the active
// filter. List leaves use the contains placeholder so partially typed SIDs
// match.
func (ic inventoryClient) ListSapSids(ctx context.Context, params ListParams) (SapSidsResponse, int, error) {
	var sidsResp SapSidsResponse

	body, statusCode, err := ic.doGet(ctx, sapSidsPath, params.encode(filter.SIDsEnhancer), "sap_sids")
	if err != nil {
		return SapSidsResponse{}, statusCode, err
	}

	err = json.Unmarshal(body, &sidsResp)
	if err != nil {
		return SapSidsResponse{}, statusCode, fmt.Errorf("error during unmarshal response body: %w", err)
	}
	return sidsResp, statusCode, nil
}

// ListHosts requests one page of hosts under the active filter.
func (ic inventoryClient) ListHosts(ctx context.Context, params ListParams) (HostsResponse, int, error) {
	var hostsResp HostsResponse

	body, statusCode, err := ic.doGet(ctx, hostsPath, params.encode(""), "hosts")
	if err != nil {
		return HostsResponse{}, statusCode, err
	}

	err = json.Unmarshal(body, &hostsResp)
	if err != nil {
		return HostsResponse{}, statusCode, fmt.Errorf("error during unmarshal response body: %w", err)
	}
	return hostsResp, statusCode, nil
}

// CountHosts asks for the smallest possible host page and reads the total.
func (ic inventoryClient) CountHosts(ctx context.Context, params ListParams) (int64, int, error) {
	params.PerPage = 1
	params.Page = 1

	hostsResp, statusCode, err := ic.ListHosts(ctx, params)
	if err != nil {
		return 0, statusCode, err
	}
	return hostsResp.Total, statusCode, nil
}

func (ic inventoryClient) doGet(ctx context.Context, path string, query string, operation string) ([]byte, int, error) {
	statusCode := http.StatusInternalServerError
	server := config.Get().Clients.Inventory.Server
	var body []byte

	fullPath := server + path
	if query != "" {
		fullPath += "?" + query
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullPath, nil)
	if err != nil {
		return nil, statusCode, fmt.Errorf("error building request: %w", err)
	}

	encodedXRHID, err := encodedIdentity(ctx)
	if err != nil {
		return nil, statusCode, fmt.Errorf("error getting encoded XRHID: %w", err)
	}
	req.Header.Set(api.IdentityHeader, encodedXRHID)

	resp, err := ic.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, statusCode, fmt.Errorf("error reading response body: %w", err)
		}
		if resp.StatusCode != 0 {
			statusCode = resp.StatusCode
		}
	}
	if ic.metrics != nil {
		ic.metrics.RecordInventoryRequest(operation, statusCode)
	}
	if err != nil {
		return nil, statusCode, fmt.Errorf("error sending request: %w", err)
	}
	if statusCode < 200 || statusCode >= 300 {
		return nil, statusCode, fmt.Errorf("unexpected status code with body: %s", string(body))
	}
	return body, statusCode, nil
}
