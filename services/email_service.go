package services

import (
	"fmt"
	"strings"
	"sync"
	"teentops_server/structs"
	"teentops_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.ApiKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	// Email delivery is disabled entirely when no API key is configured
	if es.cfg.Email.ApiKey == "" {
		es.logger.Debug("Email delivery disabled, skipping send",
			gecho.Field("subject", subject))
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendOrderConfirmationEmail sends the order confirmation to the customer
func (es *EmailService) SendOrderConfirmationEmail(email, name string, order *tables.Order) error {
	totalFormatted := formatCents(order.TotalAmount)

	var itemsBuilder strings.Builder
	for i := range order.Items {
		item := &order.Items[i]
		label := item.VariantID.String()
		if item.Variant != nil {
			label = item.Variant.SKU
			if item.Variant.Product != nil {
				label = fmt.Sprintf("%s (%s, %s)", item.Variant.Product.Name, item.Variant.Size, item.Variant.Color)
			}
		}
		fmt.Fprintf(&itemsBuilder, "<li>%dx %s - %s</li>", item.Quantity, label, formatCents(item.TotalPrice()))
	}

	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #2c3e50; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				.order-details { background-color: white; padding: 15px; margin: 15px 0; border-radius: 5px; }
				.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
				ul { list-style-type: none; padding: 0; }
				li { padding: 5px 0; border-bottom: 1px solid #eee; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>Thank you for your order!</h1>
				</div>
				<div class="content">
					<p>Dear %s,</p>
					<p>Your order has been received. Below you will find the details.</p>

					<div class="order-details">
						<h3>Order Number: <strong>%s</strong></h3>
						<h4>Order Items:</h4>
						<ul>%s</ul>
						<p><strong>Total: %s</strong></p>

						<h4>Delivery Address:</h4>
						<p>%s</p>
					</div>

					<p>We will contact you on %s once your order is confirmed.</p>

					<p>Questions? Contact us at %s</p>
				</div>

				<div class="footer">
					<p>TeenTops | Everyday Fashion for Teens</p>
				</div>
			</div>
		</body>
		</html>
	`, name, order.OrderID, itemsBuilder.String(), totalFormatted, order.FullAddress(),
		order.CustomerPhone, es.cfg.Contact.Email)

	subject := fmt.Sprintf("Order confirmation %s", order.OrderID)

	return es.SendEmail([]string{email}, subject, emailBody)
}

// SendContactNotificationEmail forwards a contact form submission to the shop inbox
func (es *EmailService) SendContactNotificationEmail(contact *tables.Contact) error {
	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head><meta charset="UTF-8"></head>
		<body>
			<h2>New contact form submission</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Phone:</strong> %s</p>
			<p><strong>Subject:</strong> %s</p>
			<p>%s</p>
		</body>
		</html>
	`, contact.Name, contact.Email, contact.Phone, contact.Subject, contact.Message)

	subject := fmt.Sprintf("Contact form: %s", contact.Subject)

	return es.SendEmail([]string{es.cfg.Contact.Email}, subject, emailBody)
}

func formatCents(cents uint64) string {
	return fmt.Sprintf("%.2f TND", float64(cents)/100)
}
