package catalog

import (
	"net/url"
	"strings"

	"github.com/weppos/publicsuffix-go/publicsuffix"
)

// LinkSite returns the registrable domain of an item link,
// e.g. "https://en.wikipedia.org/wiki/Unity" -> "wikipedia.org".
// It returns "" when the link has no recognizable host.
func LinkSite(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	if !strings.Contains(link, "://") && strings.Contains(link, ".") {
		link = "https://" + link
	}

	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	if !strings.Contains(host, ".") {
		return ""
	}

	domain, err := publicsuffix.Domain(host)
	if err != nil {
		return host
	}
	return domain
}
