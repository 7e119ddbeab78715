package main

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The swagger middleware reads the spec file during startup and panics when
// it is absent, so the file has to ship with the tree.
func TestSwaggerSpecShipsWithTheTree(t *testing.T) {
	raw, err := os.ReadFile("../../docs/swagger.json")
	require.NoError(t, err, "docs/swagger.json must exist, swagger.New panics without it")

	var spec struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &spec))
	assert.Equal(t, "2.0", spec.Swagger)

	for _, p := range []string{
		"/api/users/login",
		"/api/admin/getDashboardData",
		"/api/crmSales/createRequest",
		"/api/hoardings/getAllOrders",
	} {
		assert.Contains(t, spec.Paths, p)
	}
}
