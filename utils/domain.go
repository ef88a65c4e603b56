package utils

import (
	"regexp"
	"strings"
)

var domainPattern = regexp.MustCompile(`^([a-z0-9-]+\.)+[a-z]{2,}$`)

// NormalizeDomain reduces a URL or host to its bare lower-case domain.
func NormalizeDomain(input string) string {
	domain := strings.ToLower(strings.TrimSpace(input))
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimPrefix(domain, "www.")

	if i := strings.IndexAny(domain, "/?"); i >= 0 {
		domain = domain[:i]
	}
	return domain
}

func IsValidDomain(domain string) bool {
	return domainPattern.MatchString(domain)
}
