package provisioning

import "errors"

// Fatal pipeline errors. Each aborts the run immediately and causes a
// non-zero process exit.
var (
	// ErrDuplicateID means the requested container ID already denotes a
	// live container on this host.
	ErrDuplicateID = errors.New("container ID already in use")

	// ErrNoCacheStorage means no storage pool accepts template images.
	ErrNoCacheStorage = errors.New("no storage pool accepts template images")

	// ErrNetworkUnreachable means the host has no outbound connectivity.
	ErrNetworkUnreachable = errors.New("host has no outbound connectivity")

	// ErrTemplateFetch means the template download failed. The wrapped cause
	// carries the raw tool diagnostic; repository downtime, full storage,
	// and a wrong filename are indistinguishable here.
	ErrTemplateFetch = errors.New("template fetch failed")

	// ErrCreateFailed means container creation failed.
	ErrCreateFailed = errors.New("container creation failed")
)
