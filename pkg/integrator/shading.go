package integrator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownShadingModel is returned by ParseShadingModel for unrecognized names
var ErrUnknownShadingModel = errors.New("unknown shading model")

// ShadingModel selects the specular term used for direct lighting
type ShadingModel int

const (
	// ShadingNone uses the diffuse term only and skips reflection and refraction
	ShadingNone ShadingModel = iota
	// ShadingPhong mirrors the light direction about the normal and compares it with the view vector
	ShadingPhong
	// ShadingBlinnPhong uses the half vector between light and view directions
	ShadingBlinnPhong
)

// String returns the canonical name of the model
func (m ShadingModel) String() string {
	switch m {
	case ShadingNone:
		return "None"
	case ShadingPhong:
		return "Phong"
	case ShadingBlinnPhong:
		return "Blinn-Phong"
	default:
		return fmt.Sprintf("ShadingModel(%d)", int(m))
	}
}

// ParseShadingModel converts a model name to a ShadingModel. Matching ignores case.
func ParseShadingModel(name string) (ShadingModel, error) {
	for _, m := range []ShadingModel{ShadingNone, ShadingPhong, ShadingBlinnPhong} {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return ShadingNone, fmt.Errorf("%w: %q (expected None, Phong or Blinn-Phong)", ErrUnknownShadingModel, name)
}
