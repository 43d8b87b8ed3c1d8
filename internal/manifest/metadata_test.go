package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePackageSinglePackageNoNameGiven(t *testing.T) {
	m := &Metadata{Packages: []Package{{Name: "my_crate"}}}

	pkg, err := m.ResolvePackage("")

	require.NoError(t, err)
	assert.Equal(t, "my_crate", pkg.Name)
}

func TestResolvePackageAmbiguousWithoutName(t *testing.T) {
	m := &Metadata{Packages: []Package{{Name: "a"}, {Name: "b"}}}

	_, err := m.ResolvePackage("")

	assert.Error(t, err)
}

func TestResolvePackageByName(t *testing.T) {
	m := &Metadata{Packages: []Package{{Name: "a"}, {Name: "b"}}}

	pkg, err := m.ResolvePackage("b")

	require.NoError(t, err)
	assert.Equal(t, "b", pkg.Name)
}

func TestResolvePackageUnknownName(t *testing.T) {
	m := &Metadata{Packages: []Package{{Name: "a"}}}

	_, err := m.ResolvePackage("nonexistent")

	assert.Error(t, err)
}

func TestResolvePackageEmptyWorkspace(t *testing.T) {
	m := &Metadata{}

	_, err := m.ResolvePackage("")

	assert.Error(t, err)
}
