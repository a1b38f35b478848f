package handlers

import (
	"fmt"

	"github.com/mhartig/unifi-lxc/internal/ui"
)

// renderDoctor renders the host check results (for testing injection).
var renderDoctor = ui.RenderDoctor

// Doctor checks the host tooling and prints the results.
func Doctor() error {
	results := checkDefaultPrereqs()

	fmt.Print(renderDoctor(results))

	if results.HasErrors() {
		return fmt.Errorf("host is missing required tools")
	}
	return nil
}
