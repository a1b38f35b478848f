package pve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		output   string
		expected string
	}{
		{"running", "status: running\n", "running"},
		{"stopped", "status: stopped\n", "stopped"},
		{"leading noise", "some warning\nstatus: running\n", "running"},
		{"no status line", "nothing here\n", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseStatus(tt.output))
		})
	}
}

func TestParseStorageStatus(t *testing.T) {
	t.Parallel()
	output := "" +
		"Name             Type     Status           Total            Used       Available        %\n" +
		"local             dir     active        98497780        12920452        80527356   13.12%\n" +
		"nfs-backup        nfs   inactive               0               0               0    0.00%\n" +
		"\n"

	storages := ParseStorageStatus(output)
	assert.Equal(t, []Storage{
		{Name: "local", Type: "dir", Active: true},
		{Name: "nfs-backup", Type: "nfs", Active: false},
	}, storages)
}

func TestParseStorageStatus_EmptyOutput(t *testing.T) {
	t.Parallel()
	assert.Empty(t, ParseStorageStatus(""))
	assert.Empty(t, ParseStorageStatus("Name Type Status Total Used Available %\n"))
}

func TestFirstGlobalAddress(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		output   string
		expected string
	}{
		{
			name: "skips loopback",
			output: "1: lo: <LOOPBACK,UP,LOWER_UP> mtu 65536\n" +
				"    inet 127.0.0.1/8 scope host lo\n" +
				"2: eth0@if10: <BROADCAST,MULTICAST,UP,LOWER_UP> mtu 1500\n" +
				"    inet 10.0.0.5/24 scope global eth0\n",
			expected: "10.0.0.5",
		},
		{
			name:     "first of several",
			output:   "    inet 192.168.1.20/24 scope global eth0\n    inet 10.0.0.5/24 scope global eth1\n",
			expected: "192.168.1.20",
		},
		{
			name:     "loopback only",
			output:   "    inet 127.0.0.1/8 scope host lo\n",
			expected: "",
		},
		{
			name:     "no addresses",
			output:   "2: eth0: <BROADCAST,MULTICAST> mtu 1500\n",
			expected: "",
		},
		{
			name:     "empty output",
			output:   "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FirstGlobalAddress(tt.output))
		})
	}
}
