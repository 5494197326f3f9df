package simulator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Scenarios(t *testing.T) {
	file, err := LoadFile("testdata/scenarios.toml")
	require.NoError(t, err)
	require.Len(t, file.Scenarios, 7)

	outcomes := Run(file)
	for _, o := range outcomes {
		assert.True(t, o.Passed(), "%s: %v", o.Scenario.Name, o.Failures)
	}

	var out bytes.Buffer
	assert.Zero(t, Report(&out, outcomes))
	assert.Contains(t, out.String(), "7 scenarios, 0 failed")
	assert.Contains(t, out.String(), "PASS  A: overpayment of a single period becomes credit")
}

func TestRunScenario_ReportsMismatches(t *testing.T) {
	file, err := Decode(strings.NewReader(`
[[scenario]]
amount = 60000

  [[scenario.period]]
  key = "period_1"
  amount_due = 40000

  [scenario.expect]
  statuses = ["partially_paid"]
  credit_added = 0
`))
	require.NoError(t, err)

	outcome := RunScenario(file.Scenarios[0])
	assert.False(t, outcome.Passed())
	assert.Len(t, outcome.Failures, 2)
	assert.Equal(t, "scenario 1", outcome.Scenario.Name)
	assert.Equal(t, "cash", outcome.Scenario.Source)

	var out bytes.Buffer
	assert.Equal(t, 1, Report(&out, []Outcome{outcome}))
	assert.Contains(t, out.String(), "! credit_added: want 0, got 20000")
}

func TestRunScenario_UnexpectedError(t *testing.T) {
	file, err := Decode(strings.NewReader(`
[[scenario]]
amount = 0
source = "credit"

  [[scenario.period]]
  key = "period_1"
  amount_due = 40000

  [scenario.expect]
  credit_consumed = 0
`))
	require.NoError(t, err)

	outcome := RunScenario(file.Scenarios[0])
	require.Len(t, outcome.Failures, 1)
	assert.Equal(t, `error: want "", got "insufficient_credit"`, outcome.Failures[0])
}

func TestDecode_RejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader(`
[[scenario]]
amount = 100
ammount = 200
`))
	assert.ErrorContains(t, err, "ammount")
}
