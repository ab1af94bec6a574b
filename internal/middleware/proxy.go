// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

package middleware

import (
	"context"
	"net/http"
	"strings"
)

const baseURLKey contextKey = "base_url"

// ProxyHeaders resolves the externally visible base URL of each request so
// generated links point at the address the client used, not the address the
// server listens on. The RFC 7239 Forwarded header takes precedence; the
// legacy X-Forwarded-Proto, X-Forwarded-Host and X-Forwarded-Port headers
// are consulted when it is absent.
func ProxyHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		host := r.Host

		if fwd := r.Header.Get("Forwarded"); fwd != "" {
			if p, h := parseForwarded(fwd); p != "" || h != "" {
				if p != "" {
					scheme = p
				}
				if h != "" {
					host = h
				}
			}
		} else {
			if p := r.Header.Get("X-Forwarded-Proto"); p != "" {
				scheme = p
			}
			if h := r.Header.Get("X-Forwarded-Host"); h != "" {
				host = h
			}
			if port := r.Header.Get("X-Forwarded-Port"); port != "" {
				host = replacePort(host, port)
			}
		}

		base := scheme + "://" + host + "/"
		ctx := context.WithValue(r.Context(), baseURLKey, base)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BaseURL returns the base URL resolved by ProxyHeaders, always with a
// trailing slash. Falls back to empty string when the middleware did not run.
func BaseURL(ctx context.Context) string {
	if base, ok := ctx.Value(baseURLKey).(string); ok {
		return base
	}
	return ""
}

// parseForwarded extracts the proto and host parameters from the first
// element of an RFC 7239 Forwarded header.
func parseForwarded(value string) (proto, host string) {
	// Only the first (closest) proxy element matters for link generation.
	first := strings.Split(value, ",")[0]
	for _, part := range strings.Split(first, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		v = strings.Trim(v, `"`)
		switch strings.ToLower(k) {
		case "proto":
			proto = v
		case "host":
			host = v
		}
	}
	return proto, host
}

// replacePort swaps or appends the port of a host:port string. Default
// ports are not elided; the forwarded port is what the client dialed.
func replacePort(host, port string) string {
	if i := strings.LastIndex(host, ":"); i >= 0 && !strings.Contains(host[i:], "]") {
		host = host[:i]
	}
	return host + ":" + port
}
