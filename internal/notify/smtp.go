package notify

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"maktaba-be/internal/logger"
	"maktaba-be/internal/order"

	"go.uber.org/zap"
)

// SMTPNotifier delivers order emails over plain SMTP. The store address
// receives a copy of every new order.
type SMTPNotifier struct {
	host     string
	port     string
	username string
	password string
	from     string
	store    string

	// send is swappable for tests; defaults to smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPNotifier(host, port, username, password, storeEmail string) *SMTPNotifier {
	return &SMTPNotifier{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     storeEmail,
		store:    storeEmail,
		send:     smtp.SendMail,
	}
}

var _ order.Notifier = (*SMTPNotifier)(nil)

func (n *SMTPNotifier) deliver(ctx context.Context, to, subject, html string) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "notify"),
		zap.String("to", to),
	)

	var msg strings.Builder
	msg.WriteString("From: " + n.from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(html)

	var auth smtp.Auth
	if n.username != "" {
		auth = smtp.PlainAuth("", n.username, n.password, n.host)
	}

	addr := fmt.Sprintf("%s:%s", n.host, n.port)
	if err := n.send(addr, auth, n.from, []string{to}, []byte(msg.String())); err != nil {
		log.Warn("email delivery failed", zap.Error(err))
		return
	}
	log.Info("email sent")
}

func (n *SMTPNotifier) OrderCreated(ctx context.Context, o *order.Order, customerEmail string) {
	subject, html, err := renderNewOrder(o)
	if err != nil {
		logger.FromCtx(ctx).Error("could not render order email", zap.Error(err))
		return
	}

	if customerEmail != "" {
		n.deliver(ctx, customerEmail, subject, html)
	}

	// The store always hears about new orders, guest or not.
	storeSubject := fmt.Sprintf("طلب جديد وارد: #%d", o.ID)
	storeHTML := fmt.Sprintf("<h3>طلب جديد من %s</h3>", o.CustomerName) + html
	n.deliver(ctx, n.store, storeSubject, storeHTML)
}

func (n *SMTPNotifier) OrderStatusChanged(ctx context.Context, o *order.Order, customerEmail string) {
	if customerEmail == "" {
		return
	}

	subject, html, err := renderStatusUpdate(o)
	if err != nil {
		logger.FromCtx(ctx).Error("could not render status email", zap.Error(err))
		return
	}
	n.deliver(ctx, customerEmail, subject, html)
}
