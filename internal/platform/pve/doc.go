// Package pve wraps the Proxmox VE host command-line tools (pct, pvesm,
// pveam) behind narrow interfaces so the provisioning pipeline never touches
// os/exec directly.
//
// All external invocations flow through [Runner]; tests substitute a fake
// runner and assert on the exact command lines produced. The template cache
// check is wrapped behind [ImageCache] because the on-disk cache directory
// layout is a contract with the storage tooling, not with this package.
package pve
