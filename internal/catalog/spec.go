package catalog

// Operation is one of the supported generation categories.
type Operation string

const (
	TextToImage  Operation = "text-to-image"
	TextToVideo  Operation = "text-to-video"
	ImageToVideo Operation = "image-to-video"
	TextToAudio  Operation = "text-to-audio"
	TextToSpeech Operation = "text-to-speech"
	ImageToImage Operation = "image-to-image"
	VideoToVideo Operation = "video-to-video"
	ImageTo3D    Operation = "image-to-3d"
)

// AllOperations lists every operation in display order.
var AllOperations = []Operation{
	TextToImage,
	TextToVideo,
	ImageToVideo,
	TextToAudio,
	TextToSpeech,
	ImageToImage,
	VideoToVideo,
	ImageTo3D,
}

func (o Operation) Valid() bool {
	for _, op := range AllOperations {
		if o == op {
			return true
		}
	}
	return false
}

// DisplayName returns a human readable label for pickers.
func (o Operation) DisplayName() string {
	switch o {
	case TextToImage:
		return "Text to Image"
	case TextToVideo:
		return "Text to Video"
	case ImageToVideo:
		return "Image to Video"
	case TextToAudio:
		return "Text to Audio"
	case TextToSpeech:
		return "Text to Speech"
	case ImageToImage:
		return "Image to Image"
	case VideoToVideo:
		return "Video to Video"
	case ImageTo3D:
		return "Image to 3D"
	default:
		return string(o)
	}
}

// ParamType is the declared wire type of a model parameter.
type ParamType string

const (
	ParamString  ParamType = "string"
	ParamNumber  ParamType = "number"
	ParamBoolean ParamType = "boolean"
	ParamArray   ParamType = "array"
)

// ItemProperty describes one property of an object element inside an
// array-typed parameter (e.g. the r/g/b channels of a palette color).
type ItemProperty struct {
	Name     string     `json:"name"`
	Type     ParamType  `json:"type"`
	Required bool       `json:"required"`
	Min      *float64   `json:"min,omitempty"`
	Max      *float64   `json:"max,omitempty"`
}

// ParameterSpec describes one input field of a model.
//
// Defaults only make sense on optional fields; the registry rejects a spec
// that is both required and defaulted.
type ParameterSpec struct {
	Name      string         `json:"name"`
	Type      ParamType      `json:"type"`
	Required  bool           `json:"required"`
	Options   []interface{}  `json:"options,omitempty"`
	Min       *float64       `json:"min,omitempty"`
	Max       *float64       `json:"max,omitempty"`
	MinLength *int           `json:"min_length,omitempty"`
	MaxLength *int           `json:"max_length,omitempty"`
	Default   interface{}    `json:"default,omitempty"`
	Items     []ItemProperty `json:"items,omitempty"`
}

// ModelSchema describes one backend model: its identity, the operation it
// belongs to, and its ordered parameter list.
type ModelSchema struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Operation   Operation       `json:"operation"`
	Description string          `json:"description,omitempty"`
	Parameters  []ParameterSpec `json:"parameters"`
	Pricing     *Pricing        `json:"pricing,omitempty"`
}

// Param returns the spec for a named parameter.
func (m *ModelSchema) Param(name string) (ParameterSpec, bool) {
	for _, p := range m.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return ParameterSpec{}, false
}

// ---- table builders ----
//
// The catalog files declare hundreds of parameters; these tiny builders keep
// those tables readable. They return copies, so specs can be shared freely.

func str(name string) ParameterSpec {
	return ParameterSpec{Name: name, Type: ParamString}
}

func num(name string) ParameterSpec {
	return ParameterSpec{Name: name, Type: ParamNumber}
}

func boolean(name string) ParameterSpec {
	return ParameterSpec{Name: name, Type: ParamBoolean}
}

func array(name string) ParameterSpec {
	return ParameterSpec{Name: name, Type: ParamArray}
}

func (p ParameterSpec) req() ParameterSpec {
	p.Required = true
	return p
}

func (p ParameterSpec) def(v interface{}) ParameterSpec {
	p.Default = v
	return p
}

func (p ParameterSpec) enum(vals ...interface{}) ParameterSpec {
	p.Options = vals
	return p
}

func (p ParameterSpec) bounds(min, max float64) ParameterSpec {
	p.Min = &min
	p.Max = &max
	return p
}

func (p ParameterSpec) length(min, max int) ParameterSpec {
	p.MinLength = &min
	p.MaxLength = &max
	return p
}

func (p ParameterSpec) maxLen(max int) ParameterSpec {
	p.MaxLength = &max
	return p
}

func (p ParameterSpec) items(props ...ItemProperty) ParameterSpec {
	p.Items = props
	return p
}

func prop(name string, t ParamType, required bool, min, max float64) ItemProperty {
	return ItemProperty{Name: name, Type: t, Required: required, Min: &min, Max: &max}
}

// imageSizes is the shared size enum most diffusion endpoints accept.
var imageSizes = []interface{}{
	"square_hd", "square", "portrait_4_3", "portrait_16_9",
	"landscape_4_3", "landscape_16_9",
}

func imageSizeParam(defaultSize string) ParameterSpec {
	return str("image_size").enum(imageSizes...).def(defaultSize)
}
