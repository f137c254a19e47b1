package lockfile

import "strings"

// SplitKey splits a packages or snapshots section key into package name and
// version. Both sections encode "<name>@<version>": the name may carry a
// leading @scope/ prefix, so the version separator is the last '@'. Snapshot
// keys may append a parenthesized peer-dependency qualifier, which is
// stripped before extraction, e.g.
// "@ahooksjs/use-request@2.8.15(react@18.3.1)" -> ("@ahooksjs/use-request", "2.8.15").
func SplitKey(raw string) (name, version string) {
	key := raw
	if i := strings.IndexByte(key, '('); i >= 0 {
		key = key[:i]
	}
	// Pre-v9 lockfiles prefix definition keys with a slash.
	key = strings.TrimPrefix(key, "/")

	at := strings.LastIndexByte(key, '@')
	if at <= 0 {
		// No separator, or the '@' is the leading scope marker.
		return key, ""
	}
	name, version = key[:at], key[at+1:]

	// Pre-v9 lockfiles qualify versions with an underscore-joined peer
	// suffix instead of parentheses.
	if i := strings.IndexByte(version, '_'); i >= 0 {
		version = version[:i]
	}
	return name, version
}

// StripPeerSuffix removes a parenthesized peer-dependency qualifier from a
// version reference: "4.8.3(react-dom@18.3.1)(react@18.3.1)" -> "4.8.3".
func StripPeerSuffix(version string) string {
	if i := strings.IndexByte(version, '('); i >= 0 {
		return version[:i]
	}
	return version
}
