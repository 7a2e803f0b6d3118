package pipeline

import (
	"context"
	"path/filepath"
	"strings"
	"text/template"

	"go.trai.ch/zerr"

	"github.com/MarcelBraghetto/forge/internal/core/domain"
	"github.com/MarcelBraghetto/forge/internal/engine/collect"
)

// wasmTriple is the Emscripten-backed WebAssembly compilation target.
const wasmTriple = "wasm32-unknown-emscripten"

// emccFlags configures the Emscripten link step: SDL2 and SDL2_image come
// from Emscripten's own ports, so the browser target never touches the
// fetched native sources the Apple and Android targets build themselves.
const emccFlags = `-s USE_SDL=2 -s USE_SDL_IMAGE=2 -s SDL2_IMAGE_FORMATS='["png"]' -s USE_WEBGL2=1`

// loaderTemplate is the HTML document that bootstraps the compiled
// artifact. The canvas carries the configured dimensions as literal
// attributes; the application's display-size query reads them back from
// the host, so they must match the configuration exactly.
var loaderTemplate = template.Must(template.New("loader").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Name}}</title>
<style>
body { margin: 0; padding: 0; background-color: #000000; }
canvas.emscripten { display: block; margin: 0 auto; border: 0 none; }
</style>
</head>
<body>
<canvas class="emscripten" id="canvas" width="{{.Canvas.Width}}" height="{{.Canvas.Height}}" oncontextmenu="event.preventDefault()"></canvas>
<script type="text/javascript">
var Module = {
    canvas: (function() { return document.getElementById("canvas"); })()
};
</script>
<script type="text/javascript" src="{{.Name}}.js"></script>
</body>
</html>
`))

// loaderDocument renders the loader HTML for the project.
func loaderDocument(project domain.Project) (string, error) {
	var b strings.Builder
	if err := loaderTemplate.Execute(&b, project); err != nil {
		return "", zerr.Wrap(err, "failed to render loader document")
	}
	return b.String(), nil
}

// browser builds the WebAssembly output and its HTML loader.
type browser struct {
	deps *Deps
}

func (p *browser) Name() string {
	return domain.TargetBrowser.ID()
}

func (p *browser) Build(ctx context.Context, bctx *domain.Context) error {
	return p.deps.runSteps(ctx, []step{
		{"install toolchain", func(ctx context.Context) error {
			return p.deps.installToolchain(ctx, wasmTriple)
		}},
		{"compile", func(ctx context.Context) error {
			return p.deps.compile(ctx, bctx, p.spec(bctx))
		}},
		{"create output", func(ctx context.Context) error {
			return p.createOutput(ctx, bctx)
		}},
	})
}

// Run builds and then serves the output directory, opening the default
// browser at its root. The hosting runtime owns the execution loop from
// there on and repeatedly invokes the application's frame callback.
func (p *browser) Run(ctx context.Context, bctx *domain.Context) error {
	if err := p.Build(ctx, bctx); err != nil {
		return err
	}
	return p.deps.serveAndOpen(ctx, collect.OutputDir(bctx), "127.0.0.1:0")
}

func (p *browser) spec(bctx *domain.Context) compileSpec {
	return compileSpec{
		triple:       wasmTriple,
		manifestPath: bctx.ManifestPath(),
		targetDir:    bctx.ArtifactsDir(""),
		env:          map[string]string{"EMCC_CFLAGS": emccFlags},
	}
}

func (p *browser) createOutput(_ context.Context, bctx *domain.Context) error {
	if err := p.deps.Collector.Clean(bctx); err != nil {
		return err
	}

	spec := p.spec(bctx)
	name := bctx.Project.Name
	if err := p.deps.Collector.Collect(bctx,
		artifactPath(bctx, spec, name+".js"),
		artifactPath(bctx, spec, name+".wasm"),
	); err != nil {
		return err
	}

	out := collect.OutputDir(bctx)
	doc, err := loaderDocument(bctx.Project)
	if err != nil {
		return err
	}
	if err := p.deps.Ops.WriteString(doc, filepath.Join(out, "index.html")); err != nil {
		return err
	}
	return p.deps.placeAssets(bctx, out)
}
