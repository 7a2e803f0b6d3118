package app

// Components contains the initialized application components the CLI
// layer needs.
type Components struct {
	App *App
}
