package types_test

import (
	"testing"

	"github.com/arthur-debert/clangfmt/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestWorkItemKind_String(t *testing.T) {
	assert.Equal(t, "file", types.WorkItemFile.String())
	assert.Equal(t, "directory", types.WorkItemDirectory.String())
	assert.Equal(t, "unknown", types.WorkItemKind(42).String())
}

func TestRunResult_MarkAltered(t *testing.T) {
	result := &types.RunResult{Considered: 3}

	result.MarkAltered("/repo/a.cpp")
	result.MarkAltered("/repo/c.cpp")

	assert.Equal(t, 2, result.Altered)
	assert.Equal(t, []string{"/repo/a.cpp", "/repo/c.cpp"}, result.AlteredPaths)
	assert.Equal(t, 3, result.Considered)
}
