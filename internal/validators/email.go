package validators

import (
	"net"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmailFormatValid applies the same "email" rule gin binding tags use.
func IsEmailFormatValid(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// IsEmailDomainValid resolves the domain part of email. It performs network
// lookups and is only used when CHECK_EMAIL_DOMAIN is enabled.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
