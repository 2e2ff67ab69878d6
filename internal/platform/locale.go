package platform

import (
	golocale "github.com/jeandeaual/go-locale"
)

// SystemLocale returns the host's preferred locale tag, or "" when it cannot be read.
func SystemLocale() string {
	tag, err := golocale.GetLocale()
	if err != nil {
		return ""
	}
	return tag
}
