package entities

// Message is one inbound chat event. It lives for a single dispatch and
// is never stored.
type Message struct {
	ChatID     int64
	Text       string // lowercased by the transport adapter
	WebAppData string // raw payload pushed by the embedded web app, "" if none
}

// WebAppPayload is the form data pushed from the embedded web app.
// Fields the app did not fill stay empty strings.
type WebAppPayload struct {
	Email  string `json:"email"`
	Number string `json:"number"`
	Name   string `json:"name"`
}

// PurchaseProduct is one line item of a purchase confirmation.
type PurchaseProduct struct {
	Title string `json:"title" binding:"required"`
}

// PurchaseRequest is the body of POST /web-data. TotalPrice is a pointer
// so that a zero price still passes the required check.
type PurchaseRequest struct {
	QueryID    string            `json:"queryId" binding:"required"`
	Products   []PurchaseProduct `json:"products" binding:"omitempty,dive"`
	TotalPrice *float64          `json:"totalPrice" binding:"required"`
}
