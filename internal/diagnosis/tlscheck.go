package diagnosis

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"time"
)

// CertInfo summarizes the peer certificate presented during the handshake.
type CertInfo struct {
	Subject   string
	Issuer    string
	NotBefore time.Time
	NotAfter  time.Time
}

// TLSVerifier performs the live certificate sub-check for https targets.
// Failures are absorbed by the security analyzer as issues, never raised
// past the analyzer boundary.
type TLSVerifier interface {
	Verify(ctx context.Context, host string) (*CertInfo, error)
}

var errNoPeerCertificate = errors.New("server presented no certificate")

// TLSChecker dials the target host on port 443 with a bounded timeout and
// records the certificate it presents.
type TLSChecker struct {
	timeout time.Duration
}

// NewTLSChecker returns a TLSChecker with the given handshake timeout.
func NewTLSChecker(timeout time.Duration) *TLSChecker {
	return &TLSChecker{timeout: timeout}
}

// Verify performs a TLS handshake against host:443 and returns the leaf
// certificate's subject, issuer, and validity window.
func (c *TLSChecker) Verify(ctx context.Context, host string) (*CertInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: c.timeout},
		Config:    &tls.Config{ServerName: host},
	}

	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, "443"))
	if err != nil {
		return nil, err
	}
	defer func() { _ = conn.Close() }()

	state := conn.(*tls.Conn).ConnectionState()
	if len(state.PeerCertificates) == 0 {
		return nil, errNoPeerCertificate
	}

	leaf := state.PeerCertificates[0]
	return &CertInfo{
		Subject:   leaf.Subject.String(),
		Issuer:    leaf.Issuer.String(),
		NotBefore: leaf.NotBefore,
		NotAfter:  leaf.NotAfter,
	}, nil
}
