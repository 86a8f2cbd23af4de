// Package automation renders scripted batches of figures and parameter
// sweeps from YAML scenarios.
package automation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/san-kum/nucviz/internal/config"
	"github.com/san-kum/nucviz/internal/export"
	"github.com/san-kum/nucviz/internal/figure"
	"github.com/san-kum/nucviz/internal/viz"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Scenario is a list of figures to build in order.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep builds one figure. Params use dotted config keys such as
// "deformation.beta".
type ScenarioStep struct {
	Figure string             `yaml:"figure"`
	Preset string             `yaml:"preset"`
	Params map[string]float64 `yaml:"params"`
	Out    string             `yaml:"out"`
	XLSX   string             `yaml:"xlsx"`
}

type StepResult struct {
	Step   ScenarioStep
	Figure *figure.Figure
	Files  []string
}

// Params lists the step's preset and overrides as archive parameters.
func (r StepResult) Params() map[string]string {
	out := make(map[string]string, len(r.Step.Params)+2)
	out["figure"] = r.Step.Figure
	if r.Step.Preset != "" {
		out["preset"] = r.Step.Preset
	}
	for k, v := range r.Step.Params {
		out[k] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return out
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s has no steps", path)
	}
	return &scenario, nil
}

// stepConfig derives a step's configuration from base without touching it.
func stepConfig(base *config.Config, preset string, params map[string]float64) (*config.Config, error) {
	cfg := base.Clone()
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}
	for k, v := range params {
		if err := cfg.Set(k, v); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// RunScenario executes all steps, writing any requested files. Results of
// completed steps are returned alongside the first error.
func RunScenario(ctx context.Context, scenario *Scenario, registry *figure.Registry, base *config.Config, cmap viz.Colormap) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		log.WithFields(log.Fields{
			"step":   fmt.Sprintf("%d/%d", i+1, len(scenario.Steps)),
			"figure": step.Figure,
		}).Info("running step")

		cfg, err := stepConfig(base, step.Preset, step.Params)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		fig, err := registry.Build(step.Figure, cfg)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		res := StepResult{Step: step, Figure: fig}
		if step.Out != "" {
			if err := export.WriteSVG(step.Out, fig, cmap); err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
			res.Files = append(res.Files, step.Out)
		}
		if step.XLSX != "" {
			if err := export.WriteXLSX(step.XLSX, fig); err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
			res.Files = append(res.Files, step.XLSX)
		}
		results = append(results, res)
	}

	return results, nil
}

// ParameterSweep rebuilds one figure across evenly spaced values of a
// config setting.
type ParameterSweep struct {
	Figure   string
	Param    string
	Min      float64
	Max      float64
	NumSteps int
	// OutDir receives one SVG per value when set.
	OutDir string
}

type SweepResult struct {
	Value  float64
	Figure *figure.Figure
	Path   string
}

func RunSweep(ctx context.Context, sweep *ParameterSweep, registry *figure.Registry, base *config.Config, cmap viz.Colormap) ([]SweepResult, error) {
	if sweep.NumSteps < 1 {
		return nil, fmt.Errorf("sweep needs at least one step, got %d", sweep.NumSteps)
	}
	if sweep.OutDir != "" {
		if err := os.MkdirAll(sweep.OutDir, 0755); err != nil {
			return nil, err
		}
	}

	step := 0.0
	if sweep.NumSteps > 1 {
		step = (sweep.Max - sweep.Min) / float64(sweep.NumSteps-1)
	}

	results := make([]SweepResult, 0, sweep.NumSteps)
	for i := 0; i < sweep.NumSteps; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		value := sweep.Min + float64(i)*step

		cfg, err := stepConfig(base, "", map[string]float64{sweep.Param: value})
		if err != nil {
			return results, err
		}
		fig, err := registry.Build(sweep.Figure, cfg)
		if err != nil {
			return results, fmt.Errorf("%s=%g: %w", sweep.Param, value, err)
		}

		res := SweepResult{Value: value, Figure: fig}
		if sweep.OutDir != "" {
			res.Path = filepath.Join(sweep.OutDir, fmt.Sprintf("%s_%02d.svg", fig.Stem, i))
			if err := export.WriteSVG(res.Path, fig, cmap); err != nil {
				return results, err
			}
		}
		results = append(results, res)

		log.WithFields(log.Fields{
			"step":      fmt.Sprintf("%d/%d", i+1, sweep.NumSteps),
			sweep.Param: value,
		}).Info("sweep step done")
	}
	return results, nil
}
