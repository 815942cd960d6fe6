package services

import (
	"bytes"
	"fmt"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
)

// GenerateOrderInvoicePDF renders an order invoice in memory.
func GenerateOrderInvoicePDF(order *models.Order, customerName string) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	leafGreen := color.Color{Red: 31, Green: 61, Blue: 43}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("INVOICE", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: leafGreen,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("BAGICHA", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: leafGreen,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("support@bagicha.store", props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("DELIVER TO", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: leafGreen,
			})
		})
		m.Col(6, func() {
			m.Text("INVOICE DETAILS", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: leafGreen,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(customerName, props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: leafGreen,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Invoice #%s", order.OrderNumber), props.Text{
				Size:  10,
				Color: leafGreen,
				Align: consts.Right,
			})
		})
	})

	address := order.Address
	addressLine := address.Line1
	if address.Line2 != nil && *address.Line2 != "" {
		addressLine += ", " + *address.Line2
	}
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(fmt.Sprintf("%s, %s, %s - %s", addressLine, address.City, address.State, address.Pincode), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", order.CreatedAt.Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Item", props.Text{Size: 8, Style: consts.Bold, Color: leafGreen})
		})
		m.Col(2, func() {
			m.Text("Qty", props.Text{Size: 8, Style: consts.Bold, Color: leafGreen, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text("Price", props.Text{Size: 8, Style: consts.Bold, Color: leafGreen, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text("Total", props.Text{Size: 8, Style: consts.Bold, Color: leafGreen, Align: consts.Right})
		})
	})

	for _, item := range order.Items {
		item := item
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(item.Name, props.Text{Size: 9, Color: leafGreen})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", item.Qty), props.Text{Size: 9, Color: leafGreen, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("Rs %.2f", item.Price), props.Text{Size: 9, Color: leafGreen, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("Rs %.2f", item.Price*float64(item.Qty)), props.Text{Size: 9, Color: leafGreen, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})

	totals := []struct {
		label string
		value float64
		bold  bool
	}{
		{"Subtotal", order.Subtotal, false},
		{"Delivery Fee", order.DeliveryFee, false},
		{"Grand Total", order.Total, true},
	}
	for _, row := range totals {
		row := row
		m.Row(5, func() {
			m.Col(8, func() {})
			m.Col(2, func() {
				style := consts.Normal
				if row.bold {
					style = consts.Bold
				}
				m.Text(row.label, props.Text{Size: 9, Style: style, Color: leafGreen, Align: consts.Right})
			})
			m.Col(2, func() {
				style := consts.Normal
				if row.bold {
					style = consts.Bold
				}
				m.Text(fmt.Sprintf("Rs %.2f", row.value), props.Text{Size: 9, Style: style, Color: leafGreen, Align: consts.Right})
			})
		})
	}

	m.Row(10, func() {})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Payment method: %s  •  Status: %s", order.PaymentMethod, order.Status), props.Text{
				Size:  8,
				Color: mediumGray,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return &buf, nil
}
