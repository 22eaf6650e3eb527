package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cristianoliveira/dexview/internal/domain"
	"github.com/cristianoliveira/dexview/internal/format"
)

// VariableContext contains all data needed to resolve the variables of one row.
type VariableContext struct {
	Item     domain.Item
	Favorite bool
}

// Variables lists every supported variable in documentation order.
var Variables = []string{
	"id",
	"number",
	"position",
	"name",
	"display-name",
	"types",
	"type-count",
	"image",
	"favorite",
	"star",
}

// VariableResolver resolves template variables to their values.
type VariableResolver interface {
	// Resolve returns the string value for a given variable name and context.
	Resolve(varName string, ctx VariableContext) (string, error)
}

// variableResolver implements VariableResolver interface.
type variableResolver struct{}

// NewVariableResolver creates a new variable resolver instance.
func NewVariableResolver() VariableResolver {
	return &variableResolver{}
}

// Resolve returns the string value for a variable from the context.
func (vr *variableResolver) Resolve(varName string, ctx VariableContext) (string, error) {
	switch varName {
	case "id":
		return strconv.Itoa(ctx.Item.ID), nil
	case "number":
		return format.ItemNumber(ctx.Item.ID), nil
	case "position":
		return strconv.Itoa(ctx.Item.Position), nil
	case "name":
		return ctx.Item.Name, nil
	case "display-name":
		return format.DisplayName(ctx.Item.Name), nil
	case "types":
		return strings.Join(ctx.Item.Types, ","), nil
	case "type-count":
		return strconv.Itoa(len(ctx.Item.Types)), nil
	case "image":
		return format.ImageOrPlaceholder(ctx.Item.Image), nil
	case "favorite":
		return strconv.FormatBool(ctx.Favorite), nil
	case "star":
		if ctx.Favorite {
			return "★", nil
		}
		return " ", nil
	default:
		return "", unknownVariableError(varName)
	}
}

// IsKnownVariable reports whether name can be resolved.
func IsKnownVariable(name string) bool {
	for _, v := range Variables {
		if v == name {
			return true
		}
	}
	return false
}

func unknownVariableError(name string) error {
	return fmt.Errorf("unknown variable: %s (available: %s)", name, strings.Join(Variables, ", "))
}
