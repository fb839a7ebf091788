package entity

// CartItem is one product line in a session cart. At most one item per
// product id; repeated adds increment Qty.
type CartItem struct {
	ID    string  `json:"id" firestore:"id"`
	Title string  `json:"title" firestore:"title"`
	Price float64 `json:"price" firestore:"price"`
	Image string  `json:"image" firestore:"image"`
	Qty   int     `json:"qty" firestore:"qty"`
}

type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
}
