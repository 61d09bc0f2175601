package entity

// TaxSettings is the global tax configuration applied to every cart
type TaxSettings struct {
	Enabled   bool    `json:"enabled"`
	Rate      float64 `json:"rate"` // percent, 20 means 20%
	Name      string  `json:"name"`
	TaxNumber string  `json:"taxNumber,omitempty"`
}

// DefaultTaxSettings returns the settings used until the owner saves their own
func DefaultTaxSettings() TaxSettings {
	return TaxSettings{
		Enabled: true,
		Rate:    20,
		Name:    "VAT",
	}
}

// BusinessInfo is printed in the receipt header
type BusinessInfo struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Website   string `json:"website"`
	TaxNumber string `json:"taxNumber,omitempty"`
}

// DefaultBusinessInfo returns placeholder business details
func DefaultBusinessInfo() BusinessInfo {
	return BusinessInfo{Name: "My Store"}
}

// ReceiptSettings controls what the rendered receipt shows
type ReceiptSettings struct {
	ShowLogo      bool   `json:"showLogo"`
	ShowTaxNumber bool   `json:"showTaxNumber"`
	ShowWebsite   bool   `json:"showWebsite"`
	ShowBarcode   bool   `json:"showBarcode"`
	Header        string `json:"header"`
	Footer        string `json:"footer"`
}

// DefaultReceiptSettings returns the receipt layout used out of the box
func DefaultReceiptSettings() ReceiptSettings {
	return ReceiptSettings{
		ShowLogo:      true,
		ShowTaxNumber: true,
		ShowWebsite:   true,
		ShowBarcode:   false,
		Footer:        "Thank you for your business!",
	}
}
