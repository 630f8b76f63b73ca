package template

import (
	"bytes"
	"path"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/ducttape-items/internal/entities/attribute"
	"github.com/KirkDiggler/ducttape-items/internal/errors"
)

// Definition file names looked up in a template folder, in order
const (
	DefinitionTOML = "template.toml"
	DefinitionYAML = "template.yaml"
	MaskImage      = "template.png"
)

// Definition is the declarative document a template is loaded from
type Definition struct {
	DataName   string             `toml:"data_name" yaml:"data_name" validate:"required"`
	Attribute  map[string]KindDef `toml:"attribute" yaml:"attribute" validate:"dive,keys,attrkind,endkeys"`
	Components map[string]string  `toml:"components" yaml:"components" validate:"required,min=1,dive,keys,required,endkeys,maskcolor"`
	Fallback   map[string]string  `toml:"fallback" yaml:"fallback" validate:"dive,required"`
}

// KindDef holds the entries declared for one attribute kind
type KindDef struct {
	Strategy string                  `toml:"strategy" yaml:"strategy" validate:"required,oneof=Sum Average Manual"`
	Attr     map[string]AttributeDef `toml:"attr" yaml:"attr" validate:"dive,keys,uuid,endkeys"`
}

// AttributeDef is one entry keyed by its uuid. An empty reason is hidden.
type AttributeDef struct {
	Priority uint8              `toml:"priority" yaml:"priority"`
	Reason   string             `toml:"reason" yaml:"reason"`
	Modifier map[string]float64 `toml:"modifier" yaml:"modifier" validate:"len=1,dive,keys,oneof=Multiply Add Set multiply add set,endkeys"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("maskcolor", func(fl validator.FieldLevel) bool {
		_, err := ParseMaskColor(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("attrkind", func(fl validator.FieldLevel) bool {
		_, err := attribute.ParseKind(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks field tags and that fallbacks only name known components
func (d *Definition) Validate() error {
	if err := validate.Struct(d); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid template definition")
	}
	for part := range d.Fallback {
		if _, ok := d.Components[part]; !ok {
			return errors.InvalidArgumentf("fallback for unknown component %q", part)
		}
	}
	return nil
}

// ParseTOML decodes a TOML definition, rejecting unknown fields
func ParseTOML(data []byte) (*Definition, error) {
	var def Definition
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&def); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeTemplateLoad, "failed to decode TOML template")
	}
	return &def, nil
}

// ParseYAML decodes a YAML definition, rejecting unknown fields
func ParseYAML(data []byte) (*Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeTemplateLoad, "failed to decode YAML template")
	}
	return &def, nil
}

// ParseDefinition picks the decoder from the file extension
func ParseDefinition(name string, data []byte) (*Definition, error) {
	switch path.Ext(name) {
	case ".toml":
		return ParseTOML(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, errors.TemplateLoadf("unsupported template format %q", name)
	}
}
