package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// ResendClient sends transactional email through the Resend HTTP API.
type ResendClient struct {
	apiKey string
	from   string
	http   *http.Client
}

var resendClient *ResendClient

func InitResend(apiKey, from string) {
	resendClient = &ResendClient{
		apiKey: apiKey,
		from:   from,
		http:   &http.Client{Timeout: 15 * time.Second},
	}
}

func GetResendClient() *ResendClient {
	if resendClient == nil {
		InitResend(os.Getenv("RESEND_API_KEY"), os.Getenv("RESEND_FROM"))
	}
	return resendClient
}

type resendAttachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"` // base64
}

type resendPayload struct {
	From        string             `json:"from"`
	To          []string           `json:"to"`
	Subject     string             `json:"subject"`
	HTML        string             `json:"html"`
	Attachments []resendAttachment `json:"attachments,omitempty"`
}

func (r *ResendClient) send(payload resendPayload) error {
	if r.apiKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return fmt.Errorf("resend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend returned %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// OrderInvoiceEmailData holds everything the invoice email template needs.
type OrderInvoiceEmailData struct {
	CustomerName  string
	CustomerEmail string
	OrderNumber   string
	OrderDate     string
	AddressLine   string
	City          string
	State         string
	Pincode       string
	Items         []OrderInvoiceItem
	Subtotal      float64
	DeliveryFee   float64
	Total         float64
	PDFContent    []byte
}

// OrderInvoiceItem represents a line item in an invoice email.
type OrderInvoiceItem struct {
	ProductName string
	Quantity    int
	Price       float64
	Subtotal    float64
}

// SendOrderInvoicePDFEmail sends an order invoice with an HTML summary and
// the PDF attached.
func (r *ResendClient) SendOrderInvoicePDFEmail(data OrderInvoiceEmailData) error {
	var itemsRows strings.Builder
	for _, item := range data.Items {
		itemsRows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px; color: #1f3d2b;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #1f3d2b;">%d</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #1f3d2b;">₹%.2f</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; font-weight: 600; color: #1f3d2b;">₹%.2f</td>
      </tr>
    `, item.ProductName, item.Quantity, item.Price, item.Subtotal))
	}

	html := fmt.Sprintf(`
  <div style="max-width: 560px; margin: 0 auto; font-family: Arial, sans-serif;">
    <h2 style="color: #1f3d2b;">Bagicha 🌿</h2>
    <p>Hi %s,</p>
    <p>Thanks for your order <strong>%s</strong> placed on %s. Your invoice is attached.</p>
    <p style="color: #555;">Delivery to: %s, %s, %s - %s</p>
    <table style="width: 100%%; border-collapse: collapse;">
      <thead>
        <tr style="border-bottom: 1px solid #ddd;">
          <th style="text-align: left; padding: 8px 0;">Item</th>
          <th style="text-align: right; padding: 8px 0;">Qty</th>
          <th style="text-align: right; padding: 8px 0;">Price</th>
          <th style="text-align: right; padding: 8px 0;">Total</th>
        </tr>
      </thead>
      <tbody>%s</tbody>
    </table>
    <hr style="border: none; border-top: 1px solid #ddd;" />
    <p style="text-align: right; margin: 4px 0;">Subtotal: ₹%.2f</p>
    <p style="text-align: right; margin: 4px 0;">Delivery: ₹%.2f</p>
    <p style="text-align: right; font-size: 16px; font-weight: 700;">Grand Total: ₹%.2f</p>
    <p style="color: #888; font-size: 12px;">Happy growing! — the Bagicha team</p>
  </div>
`, data.CustomerName, data.OrderNumber, data.OrderDate,
		data.AddressLine, data.City, data.State, data.Pincode,
		itemsRows.String(), data.Subtotal, data.DeliveryFee, data.Total)

	payload := resendPayload{
		From:    r.from,
		To:      []string{data.CustomerEmail},
		Subject: fmt.Sprintf("Your Bagicha invoice — %s", data.OrderNumber),
		HTML:    html,
		Attachments: []resendAttachment{{
			Filename: fmt.Sprintf("invoice-%s.pdf", data.OrderNumber),
			Content:  base64.StdEncoding.EncodeToString(data.PDFContent),
		}},
	}

	if err := r.send(payload); err != nil {
		return err
	}
	log.Printf("[email.invoice] sent order=%s to=%s", data.OrderNumber, data.CustomerEmail)
	return nil
}
