// Package embedded provides a catalog Source backed by a compiled-in demo
// product list, used when no remote catalog is configured and by tests. The
// payload shares the wire shape (and the decode path) of the remote catalog.
package embedded

import (
	"context"
	_ "embed"

	"github.com/go-faster/errors"

	"github.com/storefront-go/storefront/internal/domain/catalog"
)

//go:embed products.json
var productsJSON []byte

// Compile-time check ensuring Source satisfies the catalog contract.
var _ catalog.Source = (*Source)(nil)

// Source serves the embedded demo catalog.
type Source struct{}

// New creates the embedded catalog source.
func New() *Source {
	return &Source{}
}

// Fetch decodes the embedded payload. It cannot fail at runtime unless the
// embedded data is corrupt, in which case the failure surfaces as the same
// opaque catalog.ErrUnavailable as a remote failure.
func (s *Source) Fetch(ctx context.Context) ([]catalog.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(catalog.ErrUnavailable, err.Error())
	}

	products, err := catalog.DecodeProducts(productsJSON)
	if err != nil {
		return nil, errors.Wrap(catalog.ErrUnavailable, err.Error())
	}
	return products, nil
}
