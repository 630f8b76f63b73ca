package template

import (
	"github.com/KirkDiggler/ducttape-items/internal/errors"
)

var (
	// ErrTemplateLoad matches every failure to read or decode a template definition
	ErrTemplateLoad = errors.New(errors.CodeTemplateLoad, "template load failed")
	// ErrTextureComposite matches every failure to build a template texture
	ErrTextureComposite = errors.New(errors.CodeTextureComposite, "texture composite failed")
)
