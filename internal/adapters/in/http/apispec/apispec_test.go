package apispec_test

import (
	"testing"

	"kitchen/internal/adapters/in/http/apispec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestLoad(t *testing.T) {
	doc, err := apispec.Load()

	require.NoError(t, err)
	for _, path := range []string{"/api/pedido", "/api/pedidos", "/api/pedido/{id}", "/api/productos", "/api/productos/{id}"} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestSwaggerRegistration(t *testing.T) {
	doc, err := swag.ReadDoc()

	require.NoError(t, err)
	assert.JSONEq(t, string(apispec.JSON()), doc)
}
