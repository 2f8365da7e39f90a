package quditvis

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/theapemachine/errnie"
)

// label positions just beyond the poles of the unit sphere
var (
	groundLabel = Point3{Z: -1.3}
	topLabel    = Point3{Z: 1.2}
)

/*
Renderer turns qudit states into figures. It owns a worker pool for the
density field and is safe for concurrent use; every call builds its own
Figure.
*/
type Renderer struct {
	config *Config
	pool   *Q
}

func NewRenderer(ctx context.Context, config *Config) *Renderer {
	if config == nil {
		config = NewConfig()
	}

	errnie.Info("NewRenderer - resolution %d, workers %d", config.Resolution, config.Workers)

	return &Renderer{
		config: config,
		pool:   NewQ(ctx, config.Workers),
	}
}

// Close stops the worker pool. The Renderer must not be used afterwards.
func (r *Renderer) Close() {
	r.pool.Close()
}

/*
Render computes the Husimi Q field of state over the sphere and returns
a figure of the colored sphere:

 1. sample theta over [0, π] and phi over [0, 2π)
 2. evaluate the Q function on the full grid
 3. map the grid onto the unit sphere
 4. normalize the field between its observed min and max
 5. color each grid point through the colormap
 6. attach the colored surface
 7. label the poles when a qudit dimension is given
 8. orient the camera

Unnormalized states are used as given; a zero state yields a flat field.
*/
func (r *Renderer) Render(ctx context.Context, state State, opts ...Option) (*Figure, error) {
	cfg := r.config.clone()
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if state == nil || state.Dim() == 0 {
		return nil, ErrEmptyState
	}

	errnie.Info("Render - dim %d, resolution %d", state.Dim(), cfg.Resolution)

	grid, err := NewAngularGrid(cfg.Resolution)
	if err != nil {
		return nil, err
	}

	metrics := NewMetrics()
	started := time.Now()

	density, err := spinQField(ctx, r.pool, state, grid.Thetas, grid.Phis, WithMetrics(metrics))
	if err != nil {
		return nil, fmt.Errorf("husimi field: %w", err)
	}
	fieldTime := time.Since(started)

	composeStarted := time.Now()
	mesh := NewSphereMesh(grid)
	norm := NewNormalize(density)

	colors := make([][]color.NRGBA, len(grid.Thetas))
	for i := range colors {
		colors[i] = make([]color.NRGBA, len(grid.Phis))
		for j := range colors[i] {
			colors[i][j] = color.NRGBAModel.Convert(cfg.Colormap.At(norm.At(density.At(i, j)))).(color.NRGBA)
		}
	}

	fig := NewFigure(cfg.Width, cfg.Height)
	fig.Background = cfg.Background
	fig.Shade = cfg.Shade
	fig.Grid = grid
	fig.Density = density
	fig.Norm = norm
	fig.PlotSurface(mesh, colors)

	if cfg.QuditDim > 0 {
		fig.Text(groundLabel, ket(0))
		fig.Text(topLabel, ket(cfg.QuditDim))
	}

	view := cfg.View()
	fig.ViewInit(view.Azim, view.Elev)

	fig.Stats = metrics.Snapshot()
	fig.Stats.Samples = len(grid.Thetas) * len(grid.Phis)
	fig.Stats.FieldTime = fieldTime
	fig.Stats.ComposeTime = time.Since(composeStarted)

	return fig, nil
}

// Render is a one-shot helper that runs a throwaway Renderer with the defaults.
func Render(ctx context.Context, state State, opts ...Option) (*Figure, error) {
	cfg := NewConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	r := NewRenderer(ctx, cfg)
	defer r.Close()

	return r.Render(ctx, state)
}

func ket(n int) string {
	return fmt.Sprintf("|%d⟩", n)
}
