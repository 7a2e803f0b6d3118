package pipeline

import (
	"context"
	"strings"

	"github.com/MarcelBraghetto/forge/internal/core/domain"
)

// installToolchain adds the given compilation targets to the host
// toolchain. rustup already reports success for components that are
// installed, so the invocation is idempotent and no presence check is
// needed here.
func (d *Deps) installToolchain(ctx context.Context, triples ...string) error {
	script := domain.NewScript("rustup target add " + strings.Join(triples, " "))
	return d.Runner.Run(ctx, script)
}
