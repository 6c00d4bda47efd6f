package identifier

import "context"

// SeedFunc reports the numerically largest value already present in a
// namespace, so a missing counter row can be seeded from historical data.
type SeedFunc func(ctx context.Context) (int, error)

// SequenceRepository allocates the next value of a named counter. Next must
// run inside the caller's transaction when one is present in the context, and
// must lock the counter row so two concurrent allocations never return the
// same value.
type SequenceRepository interface {
	Next(ctx context.Context, namespace string, seed SeedFunc) (int, error)
}

// Namespace names for the sequential identifier counters.
const (
	NamespaceCompany    = "company"
	NamespaceBranch     = "branch"
	NamespaceAsset      = "asset"
	NamespaceDataCenter = "datacenter"
)

// TicketNamespace returns the counter namespace for a ticket prefix.
// Branch-prefixed tickets (HQ-001) and unprefixed tickets (T001) count
// independently.
func TicketNamespace(prefix string) string {
	return "ticket:" + prefix
}
