package formatter

import (
	"fmt"
	"io"

	"github.com/cristianoliveira/dexview/internal/domain"
)

// Resolve turns a preset name or a literal template into a validated template.
func Resolve(nameOrTemplate string) (string, error) {
	template := nameOrTemplate
	if preset, err := NewPresetRegistry().Get(nameOrTemplate); err == nil {
		template = preset.Template
	}
	if err := NewTemplateEngine().Validate(template); err != nil {
		return "", err
	}
	return template, nil
}

// RenderView writes one line per row of view using template, which may also
// name a preset. Nothing is written for an empty view.
func RenderView(view domain.View, favs domain.Favorites, nameOrTemplate string, w io.Writer) error {
	template, err := Resolve(nameOrTemplate)
	if err != nil {
		return err
	}
	if favs == nil {
		favs = domain.NoFavorites
	}

	engine := NewTemplateEngine()
	for _, item := range view.Items {
		line, err := engine.Substitute(template, VariableContext{Item: item, Favorite: favs.Contains(item.ID)})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
