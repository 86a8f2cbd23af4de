// Package figure turns the nuclear models into renderable figures.
//
// A [Figure] is a backend-neutral description: titles, axis labels, line
// series, guide lines and an optional 3D surface. Renderers in viz and
// export consume it without knowing which model produced it.
//
// Figures are built by name through a [Registry]:
//
//	reg := figure.NewRegistry()
//	fig, err := reg.Build("separation", config.DefaultConfig())
package figure
