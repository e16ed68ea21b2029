package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid reports whether an address's domain can plausibly
// receive mail. Registration wants more than syntactic validity, so the
// domain must publish MX records, falling back to an A/AAAA lookup for
// domains that run mail on the web host.
func IsEmailDomainValid(email string) bool {
	domain, ok := emailDomain(email)
	if !ok {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}

// emailDomain extracts the part after the last '@'. Both the local part and
// the domain must be non-empty.
func emailDomain(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", false
	}
	return email[at+1:], true
}
