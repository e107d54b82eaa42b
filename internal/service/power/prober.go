package power

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	derrors "github.com/Ivan200424/Voltyk/internal/errors"
)

// TCPProber - роутер считается включённым, если принимает TCP-соединение
type TCPProber struct {
	port    int
	timeout time.Duration
}

func NewTCPProber(port int, timeout time.Duration) *TCPProber {
	return &TCPProber{port: port, timeout: timeout}
}

func (p *TCPProber) Probe(ctx context.Context, address string) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", p.target(address))
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

func (p *TCPProber) target(address string) string {
	if _, _, err := net.SplitHostPort(address); err == nil {
		return address
	}
	return net.JoinHostPort(address, strconv.Itoa(p.port))
}

// NormalizeAddress - проверка адреса роутера: IP или IP:порт
func NormalizeAddress(raw string) (string, error) {
	addr := strings.TrimSpace(raw)
	if addr == "" {
		return "", fmt.Errorf("empty address: %w", derrors.ErrInvalidIP)
	}

	host, port := addr, ""
	if h, p, err := net.SplitHostPort(addr); err == nil {
		host, port = h, p
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return "", fmt.Errorf("%q: %w", raw, derrors.ErrInvalidIP)
	}
	if !probeable(ip) {
		return "", fmt.Errorf("%q: not a public router address: %w", raw, derrors.ErrInvalidIP)
	}
	if port == "" {
		return ip.String(), nil
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return "", fmt.Errorf("port %q: %w", port, derrors.ErrInvalidIP)
	}
	return net.JoinHostPort(ip.String(), port), nil
}

// probeable - адреса самого сервера и служебные сети проверять нельзя
func probeable(ip net.IP) bool {
	return !ip.IsLoopback() &&
		!ip.IsUnspecified() &&
		!ip.IsLinkLocalUnicast() &&
		!ip.IsMulticast() &&
		!ip.IsInterfaceLocalMulticast() &&
		!ip.IsLinkLocalMulticast()
}
