package entity

import "time"

const OrderStatusPaid = "paid"

// Order is written only after the payment provider confirms capture and
// is immutable afterwards. Items is a snapshot copy of the cart, not a
// live reference.
type Order struct {
	ID        string     `json:"id" firestore:"id"`
	BuyerName string     `json:"buyer_name" firestore:"buyerName"`
	Email     string     `json:"email" firestore:"email"`
	Total     float64    `json:"total" firestore:"total"`
	Items     []CartItem `json:"items" firestore:"items"`
	Date      time.Time  `json:"date" firestore:"date"`
	PaymentID string     `json:"payment_id" firestore:"paymentId"`
	Status    string     `json:"status" firestore:"status"`
}
