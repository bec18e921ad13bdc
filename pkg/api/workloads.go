package api

// HostCount is the raw result of one host-count probe
type HostCount struct {
	Total int64 `json:"total"` // Total number of hosts matching the probe condition
}

// WorkloadsResponse groups the three workload existence probes. The three
// requests behind it are issued together; the response either carries all
// three results or the whole probe failed.
type WorkloadsResponse struct {
	Sap     HostCount `json:"sap"`     // Hosts reporting a SAP system
	Ansible HostCount `json:"ansible"` // Hosts with Ansible Automation Platform present
	Mssql   HostCount `json:"mssql"`   // Hosts with Microsoft SQL Server present
}
