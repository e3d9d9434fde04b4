package validators

import (
	"net"
	"net/mail"
	"strings"
)

// IsEmailDomainValid reports whether an address is well formed and its
// domain resolves (MX first, bare A/AAAA as fallback). Used at account
// registration only; login trusts stored addresses.
func IsEmailDomainValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	_, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || domain == "" {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}
	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
