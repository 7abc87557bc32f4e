package memory

import (
	"log/slog"
	"testing"

	"github.com/mrops-br/storefront-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/text/language"
)

var (
	testTracer = noop.NewTracerProvider().Tracer("test")
	testLogger = slog.New(slog.DiscardHandler)
)

func product(id, name, price string) domain.Product {
	return domain.Product{ID: id, Name: name, Price: decimal.RequireFromString(price)}
}

func newTestCatalog(t *testing.T, products ...domain.Product) *Catalog {
	t.Helper()
	c, err := NewCatalog(products, language.BritishEnglish, testTracer, testLogger)
	require.NoError(t, err)
	return c
}

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
