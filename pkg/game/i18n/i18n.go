// Package i18n holds the message catalogue used by the HUD and the map dump.
package i18n

import (
	_ "embed"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/en.po
var enPo []byte

var catalogue = load(enPo)

func load(data []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(data)
	return po
}

// Get returns the translation of id. Messages with placeholders are
// formatted by the caller with fmt.Sprintf. Unknown ids are returned as-is.
func Get(id string) string {
	return catalogue.Get(id, []interface{}{}...)
}

// Use replaces the catalogue with a parsed .po document
func Use(data []byte) {
	catalogue = load(data)
}
