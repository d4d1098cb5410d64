package config

import "strings"

// IsOriginAllowed reports whether an origin may call the API. An origin is
// allowed on exact match, or when it shares a root domain with an allowed
// origin (so pai.example.dev is allowed when example.dev is configured).
// Single-label hosts like localhost require an exact match.
func (c CORSConfig) IsOriginAllowed(origin string) bool {
	if len(c.AllowedOrigins) == 0 {
		return false
	}

	originRoot, originHasRoot := rootDomain(domainOf(origin))

	for _, allowed := range c.AllowedOrigins {
		if origin == allowed {
			return true
		}
		if allowedRoot, ok := rootDomain(domainOf(allowed)); ok && originHasRoot && originRoot == allowedRoot {
			return true
		}
	}

	return false
}

// IsDevKeyValid reports whether a request-supplied dev key matches the
// configured one. An unset config key never matches.
func (c CORSConfig) IsDevKeyValid(key string) bool {
	return c.DevKey != "" && key == c.DevKey
}

// domainOf strips scheme, path, and port from an origin string.
func domainOf(origin string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(origin, "https://"), "http://")
	host, _, _ = strings.Cut(host, "/")
	host, _, _ = strings.Cut(host, ":")
	return host
}

// rootDomain returns the last two labels of a domain. Single-label domains
// have no root and report false.
func rootDomain(domain string) (string, bool) {
	parts := strings.Split(domain, ".")
	if len(parts) < 2 {
		return "", false
	}
	return parts[len(parts)-2] + "." + parts[len(parts)-1], true
}
