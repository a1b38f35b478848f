// Package ui renders operator-facing summaries with lipgloss styling.
package ui

import (
	"fmt"
	"strings"

	"github.com/mhartig/unifi-lxc/internal/config"
	"github.com/mhartig/unifi-lxc/internal/provisioning"
	"github.com/mhartig/unifi-lxc/internal/util/prerequisites"
)

// RenderReport renders the end-of-run summary from the final pipeline state.
func RenderReport(cfg *config.Config, state *provisioning.State) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Provisioning summary"))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Container"))
	b.WriteString("\n")
	writeRow(&b, "ID", fmt.Sprintf("%d", cfg.VMID))
	writeRow(&b, "Hostname", cfg.Hostname)
	writeRow(&b, "Template", cfg.Template)
	writeRow(&b, "Cache pool", state.TemplateStorage)
	writeRow(&b, "Status", styledStatus(state.FinalStatus))

	b.WriteString(sectionStyle.Render("Network"))
	b.WriteString("\n")
	writeRow(&b, "Bridge", cfg.Bridge)
	writeRow(&b, "Configured", cfg.IPCIDR)
	if state.Address != "" {
		writeRow(&b, "Guest address", okStyle.Render(state.Address))
	} else {
		writeRow(&b, "Guest address", warningStyle.Render("not discovered"))
	}

	b.WriteString(sectionStyle.Render("Software"))
	b.WriteString("\n")
	if state.Installed {
		writeRow(&b, cfg.App.Name, okStyle.Render(checkMark+" installed"))
	} else {
		writeRow(&b, cfg.App.Name, warningStyle.Render(warnMark+" not installed"))
	}

	if len(state.Warnings) > 0 {
		b.WriteString(sectionStyle.Render("Warnings"))
		b.WriteString("\n")
		for _, w := range state.Warnings {
			b.WriteString(warningStyle.Render(fmt.Sprintf("  %s %s: %v", warnMark, w.Phase, w.Err)))
			b.WriteString("\n")
		}
	}

	if state.Installed && state.Address != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf("\nThe controller will come up at https://%s:8443 once initialized.", state.Address)))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderDoctor renders the host tooling check.
func RenderDoctor(results *prerequisites.CheckResults) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Host environment"))
	b.WriteString("\n")

	for _, r := range results.Results {
		if r.Found {
			line := fmt.Sprintf("  %s %-6s %s", checkMark, r.Tool.Name, dimStyle.Render(r.Path))
			if r.Version != "" {
				line += dimStyle.Render("  " + r.Version)
			}
			b.WriteString(okStyle.Render(line))
		} else {
			b.WriteString(failedStyle.Render(fmt.Sprintf("  %s %-6s %s", crossMark, r.Tool.Name, r.Tool.Description)))
		}
		b.WriteString("\n")
	}

	if err := results.Error(); err != nil {
		b.WriteString("\n")
		b.WriteString(failedStyle.Render(err.Error()))
		b.WriteString("\n")
	}

	return b.String()
}

func styledStatus(status string) string {
	switch status {
	case "running":
		return okStyle.Render(status)
	case "stopped", "unknown", "":
		return warningStyle.Render(orDash(status))
	default:
		return status
	}
}

func writeRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %-14s %s\n", label, orDash(value))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
