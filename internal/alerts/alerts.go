// Package alerts e-mails a digest of low-stock and expiring items.
package alerts

import (
	"context"
	"fmt"
	"html"
	"net/smtp"
	"strings"

	"github.com/rogerio-castellano/retail-tracker/internal/config"
	"github.com/rogerio-castellano/retail-tracker/internal/models"
	"github.com/rogerio-castellano/retail-tracker/internal/reporting"
	"go.uber.org/zap"
)

type Mailer interface {
	SendHTML(subject, body string) error
}

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	from, to string
	addr     string
	auth     smtp.Auth
}

func NewSMTPMailer(cfg config.AlertsConfig) *SMTPMailer {
	m := &SMTPMailer{
		from: cfg.From,
		to:   cfg.To,
		addr: fmt.Sprintf("%s:%d", cfg.SMTPServer, cfg.SMTPPort),
	}
	if !cfg.SMTPAuthDisabled {
		m.auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPServer)
	}
	return m
}

func (m *SMTPMailer) SendHTML(subject, body string) error {
	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + m.to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")
	return smtp.SendMail(m.addr, m.auth, m.from, []string{m.to}, []byte(msg))
}

type ReportSource interface {
	Report(ctx context.Context, asOf models.Date) (reporting.Report, error)
}

type Notifier struct {
	source   ReportSource
	mailer   Mailer
	currency string
	logger   *zap.Logger
}

func NewNotifier(source ReportSource, mailer Mailer, currency string, logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{source: source, mailer: mailer, currency: currency, logger: logger}
}

// SendDigest mails the alerts for asOf. Nothing is sent when there is nothing to report.
func (n *Notifier) SendDigest(ctx context.Context, asOf models.Date) (bool, error) {
	report, err := n.source.Report(ctx, asOf)
	if err != nil {
		return false, fmt.Errorf("build report: %w", err)
	}

	subject, body, ok := Digest(report, n.currency)
	if !ok {
		n.logger.Info("no stock alerts to send", zap.Stringer("as_of", asOf))
		return false, nil
	}

	if err := n.mailer.SendHTML(subject, body); err != nil {
		return false, fmt.Errorf("send digest: %w", err)
	}
	n.logger.Info("stock alert digest sent",
		zap.Stringer("as_of", asOf),
		zap.Int("low_stock", len(report.LowStock)),
		zap.Int("expiring", len(report.Expiring)))
	return true, nil
}

// Digest composes the HTML alert e-mail. ok is false when no item needs attention.
func Digest(r reporting.Report, currency string) (subject, body string, ok bool) {
	if len(r.LowStock) == 0 && len(r.Expiring) == 0 {
		return "", "", false
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "<h2>Stock alerts for %s</h2>", r.AsOf)

	if len(r.LowStock) > 0 {
		fmt.Fprintf(&sb, "<h3>Low stock (below %d units)</h3><ul>", reporting.RestockThreshold)
		for _, item := range r.LowStock {
			fmt.Fprintf(&sb, "<li><b>%s</b>: %d left, supplier %s</li>",
				html.EscapeString(item.ProductName), item.Quantity, html.EscapeString(supplierOf(item)))
		}
		sb.WriteString("</ul>")
	}

	if len(r.Expiring) > 0 {
		sb.WriteString("<h3>Expired or expiring</h3><ul>")
		for _, item := range r.Expiring {
			fmt.Fprintf(&sb, "<li><b>%s</b>: %d units, expiry %s, stock value %s</li>",
				html.EscapeString(item.ProductName), item.Quantity, item.ExpiryDate,
				reporting.FormatMoney(reporting.Valuation([]models.StockItem{item}).TotalStockValue, currency))
		}
		sb.WriteString("</ul>")
	}

	subject = fmt.Sprintf("Stock alerts: %d low, %d expiring", len(r.LowStock), len(r.Expiring))
	return subject, sb.String(), true
}

func supplierOf(item models.StockItem) string {
	if item.Supplier == "" {
		return models.NotSet
	}
	return item.Supplier
}
