package usegraph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oakmoss/tsexport/internal/usepath"
)

func TestResolveHitOnFirstSegmentOnly(t *testing.T) {
	table := Table{
		{Components: []usepath.Component{{Kind: usepath.RootDir}, usepath.NormalComponent("model")}, Name: "model"},
	}

	// "model::AnythingElse" should still resolve on the "model" entry;
	// the rest of the path is never re-checked against the table.
	resolved, ok := table.Resolve([]string{"model", "AnythingElse"})

	assert.True(t, ok)
	assert.Equal(t, "model", resolved.Name)
}

func TestResolveMissReturnsFalse(t *testing.T) {
	table := Table{{Name: "model"}}

	_, ok := table.Resolve([]string{"unrelated", "Thing"})

	assert.False(t, ok)
}

func TestLastSegment(t *testing.T) {
	assert.Equal(t, "HashMap", LastSegment([]string{"std", "collections", "HashMap"}))
	assert.Equal(t, "", LastSegment(nil))
}

func TestCrossModuleCandidatesFiltersLocalRelative(t *testing.T) {
	absolute := usepath.RsPath{Components: []usepath.Component{{Kind: usepath.RootDir}, usepath.NormalComponent("a")}, Name: "A"}
	parentRelative := usepath.RsPath{Components: []usepath.Component{{Kind: usepath.ParentDir}, usepath.NormalComponent("b")}, Name: "B"}
	plainRelative := usepath.RsPath{Components: []usepath.Component{usepath.NormalComponent("c")}, Name: "C"}

	out := CrossModuleCandidates([]usepath.RsPath{absolute, parentRelative, plainRelative})

	var names []string
	for _, p := range out {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"A", "B"}, names)
}
