package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ZhouZhiping045/FidelityGPT/internal/domain"
	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
)

func TestSelectCmd_Defaults(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newSelectCmd())

	mockWorkflow.EXPECT().Select(domain.SelectArgs{
		Paths:    []m.Path{"testdata"},
		Corpus:   "fidelity_new.c",
		Strategy: domain.StrategySalience,
		Blocks:   domain.BlockArgs{Threshold: 50, Size: 50, Overlap: 5},
	}).Return(nil)

	cmd.SetArgs([]string{"select"})
	require.NoError(t, cmd.Execute())
}

func TestSelectCmd_Flags(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newSelectCmd())

	mockWorkflow.EXPECT().Select(mock.MatchedBy(func(args domain.SelectArgs) bool {
		return args.Strategy == domain.StrategyRandom &&
			args.Seed == 42 &&
			assert.ObjectsAreEqual([]string{"**/*.c", "*.txt"}, args.Include) &&
			assert.ObjectsAreEqual([]m.Path{"./queries/...", "b.c"}, args.Paths) &&
			args.Corpus == "ref.c"
	})).Return(nil)

	cmd.SetArgs([]string{"--corpus", "ref.c", "select", "--strategy", "random", "--seed", "42",
		"--include", "**/*.c", "-i", "*.txt", "./queries/...", "b.c"})
	require.NoError(t, cmd.Execute())
}

func TestSelectCmd_UnknownStrategy(t *testing.T) {
	cmd, _ := newTestRoot(t, newSelectCmd())

	cmd.SetArgs([]string{"select", "--strategy", "greedy"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "greedy")
}

func TestNewSelectCmd(t *testing.T) {
	cmd := newSelectCmd()

	assert.Equal(t, "select [paths...]", cmd.Use)
	assert.Equal(t, selectLongDescription, cmd.Long)
	assert.Equal(t, "salience", cmd.Flags().Lookup("strategy").DefValue)
}
