package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capsdiag/internal/model"
)

func TestDefaultCatalog(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)
	require.Len(t, catalog.Profiles, 4)

	p, ok := catalog.Profile(model.CategoryAnalyzer)
	require.True(t, ok)
	assert.Equal(t, "アナライザー", p.Name)
	assert.Equal(t, "Analyzer", p.Label)
	assert.NotEmpty(t, p.Traits)
	assert.NotEmpty(t, p.Roles)
}

func TestProfilesForKeepsOrder(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	profiles := catalog.ProfilesFor([]model.Category{model.CategorySupporter, model.CategoryController})
	require.Len(t, profiles, 2)
	assert.Equal(t, model.CategorySupporter, profiles[0].Category)
	assert.Equal(t, model.CategoryController, profiles[1].Category)
}

func TestParseCatalogRejectsIncomplete(t *testing.T) {
	_, err := ParseCatalog([]byte("profiles:\n  - category: a\n    name: x\n"))
	assert.ErrorContains(t, err, "missing from catalog")

	_, err = ParseCatalog([]byte("profiles:\n  - category: z\n    name: x\n"))
	assert.ErrorContains(t, err, "unknown category")
}
