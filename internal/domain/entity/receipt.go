package entity

// ReceiptHeader holds the store/business header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string   `json:"storeName"`
	Lines     []string `json:"lines,omitempty"` // address, phone, email, website
	TaxNumber string   `json:"taxNumber,omitempty"`
	Message   string   `json:"message,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice Cents  `json:"unitPrice"`
	Total     Cents  `json:"total"`
}

// Receipt is a value object representing a printable receipt.
// It is not persisted; it is composed from a sale and the settings at render time.
type Receipt struct {
	Header        ReceiptHeader `json:"header"`
	ReceiptNumber string        `json:"receiptNumber"`
	Date          string        `json:"date"`
	PaymentType   string        `json:"paymentType"`
	Items         []ReceiptItem `json:"items"`
	SubTotal      Cents         `json:"subtotal"`
	TaxLabel      string        `json:"taxLabel,omitempty"`
	Tax           Cents         `json:"tax"`
	Total         Cents         `json:"total"`
	Barcode       string        `json:"barcode,omitempty"`
	Footer        string        `json:"footer,omitempty"`
}
