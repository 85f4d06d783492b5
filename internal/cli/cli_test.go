package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvexact/knapsack"
)

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestCombine(t *testing.T) {
	out, err := run(t, "combine", "--weights", "2,3,6,7", "--target", "7")
	require.NoError(t, err)
	assert.Equal(t, "[2 2 3]\n[7]\n", out)

	out, err = run(t, "combine", "--weights", "1,2,5", "--target", "5", "--count")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	out, err = run(t, "combine", "--weights", "2,3,6,7", "--target", "7", "--limit", "1")
	require.NoError(t, err)
	assert.Equal(t, "[2 2 3]\n", out)

	out, err = run(t, "combine", "--weights", "10,1,2,7,6,1,5", "--target", "8", "--no-reuse", "--max-length", "2")
	require.NoError(t, err)
	assert.Equal(t, "[1 7]\n[2 6]\n", out)
}

func TestCombine_EmptyAndInvalid(t *testing.T) {
	out, err := run(t, "combine", "--weights", "2", "--target", "0")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = run(t, "combine", "--weights", "0,2", "--target", "4")
	assert.Error(t, err)
}

func TestDistance(t *testing.T) {
	out, err := run(t, "distance", "horse", "ros")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, err = run(t, "distance", "intention", "execution", "--rolling")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	out, err = run(t, "distance", "intention", "execution", "--max", "2")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, err = run(t, "distance", "ab", "ac", "--script")
	require.NoError(t, err)
	assert.Equal(t, "1\nmatch a\nsubstitute b -> c\n", out)

	_, err = run(t, "distance", "only-one")
	assert.Error(t, err)
}

func TestKnapsack(t *testing.T) {
	for _, strategy := range []string{"table", "rolling"} {
		out, err := run(t, "knapsack", "--weights", "10,20,30", "--values", "60,100,120",
			"--capacity", "50", "--strategy", strategy)
		require.NoError(t, err)
		assert.Equal(t, "220\n", out, strategy)
	}

	out, err := run(t, "knapsack", "--weights", "10,20,30", "--values", "60,100,120", "--capacity", "50", "--items")
	require.NoError(t, err)
	assert.Equal(t, "value=220 weight=50 items=[1 2]\n", out)
}

func TestKnapsack_Errors(t *testing.T) {
	_, err := run(t, "knapsack", "--weights", "1,2", "--values", "3", "--capacity", "5")
	assert.ErrorIs(t, err, knapsack.ErrLengthMismatch)

	_, err = run(t, "knapsack", "--weights", "1", "--values", "3", "--capacity=-1")
	assert.ErrorIs(t, err, knapsack.ErrNegativeCapacity)

	_, err = run(t, "knapsack", "--weights", "1", "--values", "3", "--capacity", "5", "--strategy", "greedy")
	assert.ErrorIs(t, err, knapsack.ErrUnknownStrategy)

	_, err = run(t, "knapsack", "--weights", "1", "--values", "3")
	assert.Error(t, err, "capacity is required")
}
