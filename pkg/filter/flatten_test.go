package filter

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenScalars(t *testing.T) {
	in := Map{
		"stale":   Bool(true),
		"os":      String("rhel"),
		"nested":  Nested(Map{"deep": String("x")}),
		"sids":    StringList("S01", "S02"),
		"empties": Nested(Map{}),
	}

	flat := Flatten(in, "filter", "")

	assert.Equal(t, Bool(true), flat["filter[stale]"])
	assert.Equal(t, String("rhel"), flat["filter[os]"])
	assert.Equal(t, String("x"), flat["filter[nested][deep]"])
	assert.Equal(t, StringList("S01", "S02"), flat["filter[sids][]"])
	assert.Len(t, flat, 4)
}

func TestFlattenArrayCollapsesToSingleEntry(t *testing.T) {
	flat := Flatten(Map{"sap_sids": StringList("ABC", "DEF", "GHI")}, "", "")

	require.Len(t, flat, 1)
	v, ok := flat["[sap_sids][]"]
	require.True(t, ok)
	assert.Equal(t, []string{"ABC", "DEF", "GHI"}, v.StringList())
}

func TestFlattenArrayEnhancer(t *testing.T) {
	flat := Flatten(Map{"sap_sids": StringList("ABC")}, "filter", SIDsEnhancer)

	require.Len(t, flat, 1)
	_, ok := flat["filter[sap_sids][contains][]"]
	assert.True(t, ok)
}

func TestGenerateFilterEmpty(t *testing.T) {
	assert.Empty(t, GenerateFilter(nil))
	assert.Empty(t, GenerateFilter(Map{}))
}

func TestGenerateFilterSelection(t *testing.T) {
	sel := Selection{
		Workloads: map[string]Workload{WorkloadSAP: {Selected: true}},
		SIDs:      []string{"S01"},
	}

	flat := Flatten(BuildFilter(sel), "", "")

	assert.Equal(t, Bool(true), flat["[system_profile][sap_system]"])
	assert.Equal(t, []string{"S01"}, flat["[system_profile][sap_sids][]"].StringList())
}

func TestFromAnyDropsFunctionsAndDates(t *testing.T) {
	in := map[string]any{
		"keep": "yes",
		"fn":   func() {},
		"when": time.Now(),
		"deep": map[string]any{
			"also_fn":   func(int) int { return 0 },
			"also_when": time.Now(),
			"flag":      true,
		},
	}

	flat := Flatten(FromAny(in), "filter", "")

	assert.Equal(t, String("yes"), flat["filter[keep]"])
	assert.Equal(t, Bool(true), flat["filter[deep][flag]"])
	assert.Len(t, flat, 2)
}

func TestFlattenNestRoundTrip(t *testing.T) {
	in := Map{
		"system_profile": Nested(Map{
			"sap_system": Bool(true),
			"sap_sids":   StringList("S01", "S02"),
			"operating_system": Nested(Map{
				"name": String("RHEL"),
			}),
		}),
		"stale": String("fresh"),
	}

	for _, enhancer := range []string{"", SIDsEnhancer} {
		flat := Flatten(in, "", enhancer)
		assert.True(t, in.Equal(Nest(flat, enhancer)), "enhancer=%q", enhancer)
	}
}

func TestAddToQuery(t *testing.T) {
	q := url.Values{}
	AddToQuery(q, Flatten(Map{
		"system_profile": Nested(Map{
			"sap_system": Bool(true),
			"sap_sids":   StringList("S01", "S02"),
			"ansible":    String("not_nil"),
		}),
	}, "filter", ""))

	assert.Equal(t, "true", q.Get("filter[system_profile][sap_system]"))
	assert.Equal(t, "not_nil", q.Get("filter[system_profile][ansible]"))
	assert.Equal(t, []string{"S01", "S02"}, q["filter[system_profile][sap_sids][]"])
}
