// Package transport builds the HTTP client used to fetch the listing page.
//
// Requests go out directly by default. When a SOCKS5 proxy address is given
// (typically a local Tor daemon on 127.0.0.1:9050), every connection is
// dialed through that proxy instead.
package transport
