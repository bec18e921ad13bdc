package filter

// Workload category keys as presented by the filter menu.
const (
	WorkloadSAP     = "SAP"
	WorkloadAnsible = "Ansible Automation Platform"
	WorkloadMssql   = "Microsoft SQL"
)

// Workload is the per-category selection flag.
type Workload struct {
	Selected bool `json:"isSelected"`
}

// Selection is the state of the workload filter menu: which workload
// categories are checked, which SAP system IDs are picked and the
// free-text search term, if any.
type Selection struct {
	Workloads map[string]Workload `json:"workloads,omitempty"`
	SIDs      []string            `json:"sids,omitempty"`
	Search    string              `json:"search,omitempty"`
}

func (s Selection) workloadSelected(key string) bool {
	return s.Workloads[key].Selected
}

// BuildFilter translates a selection into the nested filter object the
// inventory API understands. Each optional condition is inserted only when
// its selection flag warrants it: a checked SAP workload asks for hosts
// where sap_system is true, picked SIDs constrain sap_sids, and the
// Ansible and MSSQL workloads ask for a not-null system profile marker.
func BuildFilter(s Selection) Map {
	profile := Map{}
	if s.workloadSelected(WorkloadSAP) {
		profile["sap_system"] = Bool(true)
	}
	if len(s.SIDs) > 0 {
		profile["sap_sids"] = StringList(s.SIDs...)
	}
	if s.workloadSelected(WorkloadAnsible) {
		profile["ansible"] = String("not_nil")
	}
	if s.workloadSelected(WorkloadMssql) {
		profile["mssql"] = String("not_nil")
	}
	return Map{"system_profile": Nested(profile)}
}

// WithCondition returns a copy of the nested filter with one extra
// system_profile condition set, leaving the receiver untouched.
func WithCondition(in Map, field string, value Value) Map {
	out := Map{}
	for k, v := range in {
		out[k] = v
	}
	profile := Map{}
	if nested, ok := out["system_profile"]; ok && nested.Kind() == KindMap {
		for k, v := range nested.Nested() {
			profile[k] = v
		}
	}
	profile[field] = value
	out["system_profile"] = Nested(profile)
	return out
}
