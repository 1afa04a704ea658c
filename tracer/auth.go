package tracer

import "encoding/base64"

// AuthorizationHeader is the header carrying the collector credential.
const AuthorizationHeader = "Authorization"

// BasicAuthHeader returns the value of an HTTP Basic Authorization header
// for the given credential pair: "Basic " followed by the padded standard
// base64 encoding of "username:password".
//
// Empty values are encoded as given; no validation is performed.
func BasicAuthHeader(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

// AuthHeaders returns the single-entry header map handed to the exporter.
// The map is freshly allocated, so callers may keep or discard it freely.
func AuthHeaders(username, password string) map[string]string {
	return map[string]string{
		AuthorizationHeader: BasicAuthHeader(username, password),
	}
}
