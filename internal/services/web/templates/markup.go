// Package templates renders the site's pages as templ components.
package templates

import "strconv"

func itoa(v int) string {
	return strconv.Itoa(v)
}
