package manifest

import (
	"fmt"
	"strings"

	"github.com/fortdoc-labs/fortdoc/macro"
)

// RegisterMacros installs the manifest's alias definitions plus the built-in
// |url|, |media| and |page| macros derived from the project's base URL. The
// built-ins are skipped when no base URL is configured. A conflicting or
// malformed definition fails the whole registration.
func (m *Manifest) RegisterMacros(reg *macro.Registry) error {
	var definitions []string
	if m.BaseURL != "" {
		definitions = append(definitions,
			"url = "+m.BaseURL,
			"media = "+joinURL(m.BaseURL, "media"),
			"page = "+joinURL(m.BaseURL, "page"),
		)
	}
	definitions = append(definitions, m.Aliases...)

	for _, def := range definitions {
		if _, _, err := reg.Register(def); err != nil {
			return fmt.Errorf("registering project macros: %w", err)
		}
	}
	return nil
}

func joinURL(base, elem string) string {
	return strings.TrimRight(base, "/") + "/" + elem
}
