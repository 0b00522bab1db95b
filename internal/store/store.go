// Package store provides the keyed collection store all durable platform
// state lives in. Each collection is a single JSON document read in full and
// rewritten in full on every mutation; there are no transactions and the last
// write wins. The interface exists so the business services can run against
// an in-memory store in tests and against PostgreSQL in deployments.
package store

import "context"

// Collection keys. One key holds one JSON array of the corresponding entity.
const (
	KeyDemands         = "pohi_customer_demands"
	KeyStock           = "pohi_manufacturer_stock"
	KeyCompanies       = "pohi_mock_companies"
	KeyConfirmedMatches = "pohi_confirmed_matches"
)

// Store is a string-keyed JSON blob store.
//
// Get unmarshals the collection stored under key into v. A missing key is not
// an error: v is left untouched, so callers pass a pointer to an empty slice.
// Put marshals v and replaces the collection under key wholesale.
type Store interface {
	Get(ctx context.Context, key string, v any) error
	Put(ctx context.Context, key string, v any) error
}
