package notifications

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bath14971-sudo/dom-car-finder/pkg/enums"
)

type statusContent struct {
	Subject string
	Message string
}

var statusMessages = map[enums.OrderStatus]statusContent{
	enums.OrderStatusPending: {
		Subject: "Order Received - Car Plus",
		Message: "Your order has been received and is being processed.",
	},
	enums.OrderStatusConfirmed: {
		Subject: "Order Confirmed - Car Plus",
		Message: "Great news! Your order has been confirmed and is being prepared.",
	},
	enums.OrderStatusProcessing: {
		Subject: "Order Processing - Car Plus",
		Message: "Your order is currently being processed. We'll update you soon!",
	},
	enums.OrderStatusShipped: {
		Subject: "Order Shipped - Car Plus",
		Message: "Your order has been shipped and is on its way to you!",
	},
	enums.OrderStatusDelivered: {
		Subject: "Order Delivered - Car Plus",
		Message: "Your order has been delivered. Thank you for shopping with Car Plus!",
	},
	enums.OrderStatusCancelled: {
		Subject: "Order Cancelled - Car Plus",
		Message: "Your order has been cancelled. If you have any questions, please contact us.",
	},
}

// contentFor returns the per-status subject and message with a generic
// fallback for statuses the map does not know.
func contentFor(status enums.OrderStatus) statusContent {
	if content, ok := statusMessages[status]; ok {
		return content
	}
	return statusContent{
		Subject: "Order Status Update - Car Plus",
		Message: fmt.Sprintf("Your order status has been updated to: %s", status),
	}
}

const orderEmailTemplate = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #0d9488, #14b8a6); color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0; }
    .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 8px 8px; }
    .order-id { background: #e2e8f0; padding: 10px 15px; border-radius: 4px; display: inline-block; margin: 15px 0; }
    .status-badge { background: #0d9488; color: white; padding: 8px 16px; border-radius: 20px; display: inline-block; text-transform: uppercase; font-size: 12px; font-weight: bold; }
    .footer { text-align: center; margin-top: 20px; color: #666; font-size: 14px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Car Plus</h1>
      <p>Order Status Update</p>
    </div>
    <div class="content">
      <p>Hello,</p>
      <p>%s</p>
      <p class="order-id"><strong>Order ID:</strong> %s...</p>
      <p><strong>Status:</strong> <span class="status-badge">%s</span></p>
      <p><strong>Total Amount:</strong> $%s</p>
      <p>If you have any questions about your order, please don't hesitate to contact us.</p>
    </div>
    <div class="footer">
      <p>Thank you for choosing Car Plus!</p>
      <p>&copy; 2024 Car Plus. All rights reserved.</p>
    </div>
  </div>
</body>
</html>`

// orderEmailHTML renders the shared order email body.
func orderEmailHTML(message string, orderID uuid.UUID, status enums.OrderStatus, total decimal.Decimal) string {
	return fmt.Sprintf(orderEmailTemplate, message, shortOrderID(orderID), status, total.StringFixed(2))
}

func shortOrderID(orderID uuid.UUID) string {
	id := orderID.String()
	if len(id) > 8 {
		id = id[:8]
	}
	return id
}
