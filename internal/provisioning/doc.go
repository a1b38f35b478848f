// Package provisioning implements the container provisioning pipeline: an
// ordered, fail-fast sequence of idempotency-checked phases driven against
// the host lifecycle tooling.
//
// Phases run strictly sequentially; each phase's postcondition is the next
// phase's precondition. The uniqueness check runs before any mutation, so
// re-running the pipeline with an unchanged container ID is rejected up
// front instead of double-provisioning. Post-creation phases (network,
// options, guest software) are soft in best-effort mode: their failures are
// collected as warnings and reported at the end rather than aborting.
package provisioning
