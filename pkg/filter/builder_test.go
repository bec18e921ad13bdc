package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFilterEmptySelection(t *testing.T) {
	f := BuildFilter(Selection{})

	require.Contains(t, f, "system_profile")
	assert.Empty(t, f["system_profile"].Nested())
}

func TestBuildFilterAllWorkloads(t *testing.T) {
	f := BuildFilter(Selection{
		Workloads: map[string]Workload{
			WorkloadSAP:     {Selected: true},
			WorkloadAnsible: {Selected: true},
			WorkloadMssql:   {Selected: true},
		},
		SIDs: []string{"S01"},
	})

	profile := f["system_profile"].Nested()
	assert.Equal(t, Bool(true), profile["sap_system"])
	assert.Equal(t, String("not_nil"), profile["ansible"])
	assert.Equal(t, String("not_nil"), profile["mssql"])
	assert.Equal(t, []string{"S01"}, profile["sap_sids"].StringList())
}

func TestBuildFilterUnselectedWorkloadsOmitted(t *testing.T) {
	f := BuildFilter(Selection{
		Workloads: map[string]Workload{
			WorkloadSAP:     {Selected: false},
			WorkloadAnsible: {Selected: true},
		},
	})

	profile := f["system_profile"].Nested()
	_, hasSap := profile["sap_system"]
	assert.False(t, hasSap)
	assert.Len(t, profile, 1)
}

func TestWithCondition(t *testing.T) {
	base := BuildFilter(Selection{SIDs: []string{"S01"}})
	extended := WithCondition(base, "mssql", String("not_nil"))

	// base is untouched
	assert.Len(t, base["system_profile"].Nested(), 1)

	profile := extended["system_profile"].Nested()
	assert.Equal(t, String("not_nil"), profile["mssql"])
	assert.Equal(t, []string{"S01"}, profile["sap_sids"].StringList())
}

func TestWithConditionNoProfile(t *testing.T) {
	extended := WithCondition(Map{}, "sap_system", String("not_nil"))
	assert.Equal(t, String("not_nil"), extended["system_profile"].Nested()["sap_system"])
}
