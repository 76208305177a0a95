package main

import (
	"bytes"
	"testing"

	"github.com/KasperOmsK/hofn"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestReduce(t *testing.T) {
	out, err := run(t, "reduce", "-f", "testdata/sample.yaml", "--skip-missing")
	require.NoError(t, err)
	require.Equal(t, "7\n", out)

	out, err = run(t, "reduce", "-f", "testdata/sample.yaml")
	require.NoError(t, err)
	require.Equal(t, "null\n", out)
}

func TestReduce_Operator(t *testing.T) {
	out, err := run(t, "reduce", "-f", "testdata/sample.yaml", "--skip-missing", "--op", "mul")

	require.NoError(t, err)
	require.Equal(t, "8\n", out)
}

func TestCumulative(t *testing.T) {
	out, err := run(t, "cumulative", "-f", "testdata/sample.yaml", "--skip-missing")

	require.NoError(t, err)
	require.Equal(t, "- 1\n- 3\n- 3\n- 7\n", out)
}

func TestZip(t *testing.T) {
	out, err := run(t, "zip", "-f", "testdata/sample.yaml", "--skip-missing")

	require.NoError(t, err)
	require.Equal(t, "- 11\n- 2\n- 0\n- 44\n", out)
}

func TestZip_LengthMismatch(t *testing.T) {
	_, err := run(t, "zip", "-f", "testdata/ragged.yaml")

	require.ErrorIs(t, err, hofn.ErrLengthMismatch)
}

func TestAxis(t *testing.T) {
	out, err := run(t, "axis", "-f", "testdata/sample.yaml", "--skip-missing", "--by", "column")
	require.NoError(t, err)
	require.Equal(t, "- 4\n- 6\n- 5\n", out)

	out, err = run(t, "axis", "-f", "testdata/sample.yaml")
	require.NoError(t, err)
	require.Equal(t, "- null\n- 12\n", out)

	_, err = run(t, "axis", "-f", "testdata/sample.yaml", "--by", "diagonal")
	require.Error(t, err)
}

func TestGroup(t *testing.T) {
	out, err := run(t, "group", "-f", "testdata/sample.yaml", "--skip-missing")

	require.NoError(t, err)
	require.Equal(t, "a: 1\nb: 6\n", out)
}

func TestGroup_LengthMismatch(t *testing.T) {
	_, err := run(t, "group", "-f", "testdata/ragged.yaml")

	require.ErrorIs(t, err, hofn.ErrLengthMismatch)
}

func TestConfigFile(t *testing.T) {
	out, err := run(t, "group", "-f", "testdata/sample.yaml", "--config", "testdata/hofn.yaml")

	require.NoError(t, err)
	require.Equal(t, "a: 1\nb: 4\n", out)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("HOFN_FILE", "testdata/sample.yaml")
	t.Setenv("HOFN_SKIP_MISSING", "true")

	out, err := run(t, "reduce")

	require.NoError(t, err)
	require.Equal(t, "7\n", out)
}

func TestErrors(t *testing.T) {
	_, err := run(t, "reduce")
	require.ErrorContains(t, err, "no dataset")

	_, err = run(t, "reduce", "-f", "testdata/sample.yaml", "--op", "pow")
	require.ErrorContains(t, err, "unknown operator")

	_, err = run(t, "reduce", "-f", "testdata/missing.yaml")
	require.Error(t, err)

	_, err = run(t, "reduce", "-f", "testdata/sample.yaml", "--log-level", "loud")
	require.ErrorContains(t, err, "log level")
}
