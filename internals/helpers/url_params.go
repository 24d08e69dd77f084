package helper

import (
	"net/url"
	"strings"
)

// AddParamToURL appends key=value to link, keeping the parameters already
// present in their order. The value is query-escaped. Empty keys or values and
// keys already present leave the link untouched.
func AddParamToURL(link, key, value string) string {
	if key == "" || value == "" {
		return link
	}
	if strings.Contains(link, "?"+key+"=") || strings.Contains(link, "&"+key+"=") {
		return link
	}
	sep := "?"
	if strings.Contains(link, "?") {
		sep = "&"
	}
	return link + sep + key + "=" + url.QueryEscape(value)
}
