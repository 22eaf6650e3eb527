package errors

import "github.com/cristianoliveira/dexview/internal/colors"

// consoleOutput routes each message kind to a printer function.
type consoleOutput struct {
	errorFn   func(msgs ...string)
	warningFn func(msgs ...string)
	infoFn    func(msgs ...string)
	successFn func(msgs ...string)
}

var _ ColorOutput = consoleOutput{}

func (o consoleOutput) Error(msgs ...string)   { o.errorFn(msgs...) }
func (o consoleOutput) Warning(msgs ...string) { o.warningFn(msgs...) }
func (o consoleOutput) Info(msgs ...string)    { o.infoFn(msgs...) }
func (o consoleOutput) Success(msgs ...string) { o.successFn(msgs...) }

// NewDefaultCLIHandler creates a CLI handler printing through the colors package.
func NewDefaultCLIHandler() *CLIHandler {
	return NewCLIHandler(consoleOutput{
		errorFn:   colors.Error,
		warningFn: colors.Warning,
		infoFn:    colors.Info,
		successFn: colors.Success,
	})
}

// Hint returns a follow-up suggestion for err, or "" when there is none.
func Hint(err error) string {
	switch {
	case Is(err, ErrNotFound):
		return "Use 'dexview list --search <name>' to look a creature up"
	case Is(err, ErrCatalogLoad), Is(err, ErrTransport):
		return "Check your network connection or the api_base_url setting"
	case Is(err, ErrPersistence):
		return "Local state may be corrupt; run with --debug for details"
	default:
		return ""
	}
}

// Report prints err followed by its hint, if any.
func (h *CLIHandler) Report(err error) {
	if err == nil {
		return
	}
	h.Error(err.Error())
	if hint := Hint(err); hint != "" {
		h.Info(hint)
	}
}
