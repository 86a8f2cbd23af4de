package config

import "sort"

// Presets are named deformation shapes.
var Presets = map[string]*DeformationConfig{
	"spherical":    {L: 0, M: 0, Beta: 0.0, R0: 1.0, Points: 200},
	"prolate":      {L: 2, M: 0, Beta: 0.3, R0: 1.0, Points: 200},
	"oblate":       {L: 2, M: 0, Beta: -0.3, R0: 1.0, Points: 200},
	"octupole":     {L: 3, M: 0, Beta: 0.3, R0: 1.0, Points: 200},
	"tetrahedral":  {L: 3, M: 2, Beta: 0.3, R0: 1.0, Points: 200},
	"hexadecapole": {L: 4, M: 0, Beta: 0.2, R0: 1.0, Points: 200},
}

func GetPreset(name string) *DeformationConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
