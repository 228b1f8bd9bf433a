package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/net/proxy"
)

// UserAgent identifies ransomcheck in outgoing requests.
const UserAgent = "ransomcheck/1.0 (+https://github.com/nao1215/ransomcheck)"

// maxRedirects limits how many redirects a single fetch follows.
const maxRedirects = 10

// ErrInvalidProxyAddress is returned when the proxy address is not in
// "host:port" form.
var ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")

// ValidateProxyAddress checks that address is a "host:port" pair with a
// port between 1 and 65535.
func ValidateProxyAddress(address string) error {
	host, port, err := net.SplitHostPort(address)
	if err != nil || host == "" {
		return ErrInvalidProxyAddress
	}

	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return ErrInvalidProxyAddress
	}
	return nil
}

// NewHTTPClient returns an HTTP client with the given timeout.
// If proxyAddress is empty the client dials directly; otherwise all
// connections go through the SOCKS5 proxy at proxyAddress.
//
// The proxy is not contacted here. A proxy that is down surfaces as a
// transport error on the first request.
func NewHTTPClient(proxyAddress string, timeout time.Duration) (*http.Client, error) {
	base := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert // DefaultTransport is always *http.Transport

	if proxyAddress != "" {
		if err := ValidateProxyAddress(proxyAddress); err != nil {
			return nil, err
		}

		// Tor's SOCKS port does not require authentication.
		dialer, err := proxy.SOCKS5("tcp", proxyAddress, nil, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
		}

		base.Proxy = nil
		base.DialContext = contextDialer(dialer)
	}

	return &http.Client{
		Transport: &userAgentTransport{base: base, userAgent: UserAgent},
		Timeout:   timeout,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}, nil
}

// contextDialer adapts a proxy.Dialer to the DialContext signature.
// The SOCKS5 dialer from x/net implements proxy.ContextDialer, which is used
// when available so cancellation reaches the proxy handshake.
func contextDialer(d proxy.Dialer) func(ctx context.Context, network, addr string) (net.Conn, error) {
	if cd, ok := d.(proxy.ContextDialer); ok {
		return cd.DialContext
	}
	return func(_ context.Context, network, addr string) (net.Conn, error) {
		return d.Dial(network, addr)
	}
}

// userAgentTransport sets the User-Agent header on every request,
// including the ones issued while following redirects.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

// RoundTrip implements http.RoundTripper.
func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if clone.Header.Get("User-Agent") == "" {
		clone.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(clone)
}
