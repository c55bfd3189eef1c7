package weather

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Labels resolves the English display labels of icons into the language of
// a message catalog. Labels without a translation are returned unchanged.
type Labels struct {
	tag     language.Tag
	printer *message.Printer
}

// NewLabels returns Labels for tag backed by cat. A nil cat uses the
// process-wide default catalog of golang.org/x/text/message.
func NewLabels(tag language.Tag, cat catalog.Catalog) *Labels {
	var opts []message.Option
	if cat != nil {
		opts = append(opts, message.Catalog(cat))
	}
	return &Labels{tag: tag, printer: message.NewPrinter(tag, opts...)}
}

// DefaultLabels returns untranslated English labels.
func DefaultLabels() *Labels {
	return NewLabels(language.English, nil)
}

// Language returns the language the labels are rendered in.
func (l *Labels) Language() language.Tag {
	return l.tag
}

// Label translates msg.
func (l *Labels) Label(msg string) string {
	if l == nil || l.printer == nil {
		return msg
	}
	return l.printer.Sprintf(msg)
}
