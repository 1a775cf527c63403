// Package redact masks credentials in strings before they are logged.
// Database URLs carry a password in the userinfo section; log lines and
// error messages must never echo it.
package redact

import (
	"net/url"
	"regexp"
)

// Placeholder replaces redacted credential material.
const Placeholder = "xxxxx"

// Fallback for connection strings that net/url cannot parse.
var userinfoRegex = regexp.MustCompile(`(?i)((?:postgres|postgresql)://[^:/@]+:)[^@]+@`)

// URL returns dsn with any password replaced by Placeholder. The input is
// returned unchanged when it carries no credentials.
func URL(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return userinfoRegex.ReplaceAllString(dsn, "${1}"+Placeholder+"@")
	}
	if _, hasPassword := u.User.Password(); !hasPassword {
		return dsn
	}
	u.User = url.UserPassword(u.User.Username(), Placeholder)
	return u.String()
}
