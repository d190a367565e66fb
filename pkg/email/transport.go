package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"agroflow-backend/config"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"gopkg.in/gomail.v2"
)

// implicitTLSPort is the SMTPS port; every other port negotiates STARTTLS
// when the server offers it.
const implicitTLSPort = 465

const defaultTimeout = 10 * time.Second

// ConfigError reports an SMTP configuration that cannot be used. It is not
// retryable: the deployment has to be fixed.
type ConfigError struct {
	Missing []string
	Reason  string
}

func (e *ConfigError) Error() string {
	if len(e.Missing) > 0 {
		return "email: missing configuration: " + strings.Join(e.Missing, ", ")
	}
	return "email: invalid configuration: " + e.Reason
}

// Message is a single outbound email.
type Message struct {
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

// Transport delivers mail through one SMTP relay. A Transport holds no
// connection; every Verify or Send dials a fresh one.
type Transport struct {
	host        string
	port        int
	username    string
	password    string
	from        string
	timeout     time.Duration
	implicitTLS bool
	tlsConfig   *tls.Config
}

// TransportOption customizes a Transport built by BuildTransport.
type TransportOption func(*Transport)

// WithTLSConfig replaces the client TLS configuration used for both implicit
// TLS and STARTTLS.
func WithTLSConfig(cfg *tls.Config) TransportOption {
	return func(t *Transport) {
		if cfg != nil {
			t.tlsConfig = cfg
		}
	}
}

// WithImplicitTLS forces implicit TLS on or off regardless of the port.
func WithImplicitTLS(on bool) TransportOption {
	return func(t *Transport) {
		t.implicitTLS = on
	}
}

// BuildTransport validates cfg and returns a Transport for it. All five of
// SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASS and EMAIL_FROM are required.
func BuildTransport(cfg config.SMTPConfig, opts ...TransportOption) (*Transport, error) {
	if missing := MissingKeys(cfg); len(missing) > 0 {
		return nil, &ConfigError{Missing: missing}
	}

	port, err := strconv.Atoi(strings.TrimSpace(cfg.Port))
	if err != nil || port <= 0 || port > 65535 {
		return nil, &ConfigError{Reason: fmt.Sprintf("SMTP_PORT %q is not a valid port", cfg.Port)}
	}

	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	host := strings.TrimSpace(cfg.Host)
	t := &Transport{
		host:        host,
		port:        port,
		username:    cfg.User,
		password:    cfg.Pass,
		from:        cfg.From,
		timeout:     timeout,
		implicitTLS: port == implicitTLSPort,
		tlsConfig: &tls.Config{
			ServerName: host,
			MinVersion: tls.VersionTLS12,
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// MissingKeys lists the required environment keys that are empty in cfg.
func MissingKeys(cfg config.SMTPConfig) []string {
	required := []struct {
		key   string
		value string
	}{
		{"SMTP_HOST", cfg.Host},
		{"SMTP_PORT", cfg.Port},
		{"SMTP_USER", cfg.User},
		{"SMTP_PASS", cfg.Pass},
		{"EMAIL_FROM", cfg.From},
	}

	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.key)
		}
	}
	return missing
}

// Addr returns host:port of the relay.
func (t *Transport) Addr() string {
	return net.JoinHostPort(t.host, strconv.Itoa(t.port))
}

// Secure reports whether the transport uses implicit TLS.
func (t *Transport) Secure() bool {
	return t.implicitTLS
}

// Verify performs the handshake a send would do (greeting, STARTTLS, AUTH)
// and quits without sending anything.
func (t *Transport) Verify(ctx context.Context) error {
	c, err := t.dial(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Noop(); err != nil {
		return err
	}
	return c.Quit()
}

// Send delivers msg from the configured sender address.
func (t *Transport) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", t.from)
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	switch {
	case msg.HTMLBody != "" && msg.TextBody != "":
		m.SetBody("text/plain", msg.TextBody)
		m.AddAlternative("text/html", msg.HTMLBody)
	case msg.HTMLBody != "":
		m.SetBody("text/html", msg.HTMLBody)
	default:
		m.SetBody("text/plain", msg.TextBody)
	}

	c, err := t.dial(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Mail(t.from, nil); err != nil {
		return err
	}
	if err := c.Rcpt(msg.To, nil); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := m.WriteTo(w); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	// The relay has accepted the message at this point; a failed QUIT does
	// not undo that.
	_ = c.Quit()
	return nil
}

// errNoStartTLS is the text go-smtp uses when the server does not advertise
// STARTTLS.
const errNoStartTLS = "doesn't support STARTTLS"

// dial connects and authenticates. On implicit TLS ports the connection is
// wrapped before the greeting; otherwise STARTTLS is attempted first and the
// session falls back to plaintext when the relay does not offer it.
func (t *Transport) dial(ctx context.Context) (*smtp.Client, error) {
	var (
		c   *smtp.Client
		err error
	)
	switch {
	case t.implicitTLS:
		c, err = t.connect(ctx, func(conn net.Conn) (*smtp.Client, error) {
			return smtp.NewClient(tls.Client(conn, t.tlsConfig)), nil
		})
	default:
		c, err = t.connect(ctx, func(conn net.Conn) (*smtp.Client, error) {
			return smtp.NewClientStartTLS(conn, t.tlsConfig)
		})
		if err != nil && strings.Contains(err.Error(), errNoStartTLS) {
			c, err = t.connect(ctx, func(conn net.Conn) (*smtp.Client, error) {
				return smtp.NewClient(conn), nil
			})
		}
	}
	if err != nil {
		return nil, err
	}

	// EHLO on the final channel; a bad certificate surfaces here.
	if err := c.Hello("localhost"); err != nil {
		_ = c.Close()
		return nil, err
	}

	if ok, _ := c.Extension("AUTH"); ok {
		if err := c.Auth(sasl.NewPlainClient("", t.username, t.password)); err != nil {
			_ = c.Close()
			return nil, err
		}
	}

	return c, nil
}

func (t *Transport) connect(ctx context.Context, newClient func(net.Conn) (*smtp.Client, error)) (*smtp.Client, error) {
	dialer := &net.Dialer{Timeout: t.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", t.Addr())
	if err != nil {
		return nil, err
	}

	c, err := newClient(&deadlineConn{Conn: conn, limit: t.timeout})
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	c.CommandTimeout = t.timeout
	c.SubmissionTimeout = t.timeout
	return c, nil
}

// deadlineConn caps every deadline go-smtp sets at limit from now, including
// the greeting and STARTTLS exchange that run before CommandTimeout can be
// changed. A cleared deadline also becomes limit from now.
type deadlineConn struct {
	net.Conn
	limit time.Duration
}

func (d *deadlineConn) clamp(at time.Time) time.Time {
	latest := time.Now().Add(d.limit)
	if at.IsZero() || at.After(latest) {
		return latest
	}
	return at
}

func (d *deadlineConn) SetDeadline(at time.Time) error {
	return d.Conn.SetDeadline(d.clamp(at))
}

func (d *deadlineConn) SetReadDeadline(at time.Time) error {
	return d.Conn.SetReadDeadline(d.clamp(at))
}

func (d *deadlineConn) SetWriteDeadline(at time.Time) error {
	return d.Conn.SetWriteDeadline(d.clamp(at))
}
