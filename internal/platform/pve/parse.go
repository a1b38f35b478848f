package pve

import (
	"strings"
)

// ParseStatus extracts the lifecycle state from pct status output.
// Expected form: "status: running". Returns "" if the line is absent.
func ParseStatus(output string) string {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "status:"); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

// ParseStorageStatus parses the table emitted by pvesm status. The first
// line is a header; data lines are whitespace-separated columns of
// name, type, status, total, used, available, percent.
func ParseStorageStatus(output string) []Storage {
	var storages []Storage

	lines := strings.Split(output, "\n")
	for i, line := range lines {
		if i == 0 {
			continue // header
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		storages = append(storages, Storage{
			Name:   fields[0],
			Type:   fields[1],
			Active: fields[2] == "active",
		})
	}

	return storages
}

// FirstGlobalAddress returns the first non-loopback IPv4 address from
// ip addr output, without the prefix length. Returns "" when none is found.
func FirstGlobalAddress(output string) string {
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) < 2 || fields[0] != "inet" {
			continue
		}
		addr := fields[1]
		if slash := strings.IndexByte(addr, '/'); slash >= 0 {
			addr = addr[:slash]
		}
		if strings.HasPrefix(addr, "127.") {
			continue
		}
		return addr
	}
	return ""
}
