package tracking

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/locatepro/tracking-system/internal/core/domain"
)

// RenderReceipt projects the current shipment state into a printable HTML
// document. It is a pure function of the record apart from the generation
// timestamp in the footer: no state is kept between calls, and the record is
// never mutated.
func RenderReceipt(record *domain.ShipmentRecord) ([]byte, error) {
	data := receiptData{
		Record:    record,
		Progress:  record.DisplayProgress(),
		Delivered: record.Status == domain.StatusDelivered,
		Generated: time.Now().UTC().Format("2006-01-02"),
	}

	if record.TrackingID != "" {
		png, err := qrcode.Encode(record.TrackingID, qrcode.Medium, 128)
		if err == nil {
			data.QRCode = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
		}
		// A QR encode failure only loses the code, not the receipt.
	}

	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type receiptData struct {
	Record    *domain.ShipmentRecord
	Progress  float64
	Delivered bool
	Generated string
	QRCode    template.URL
}

// orDash substitutes the placeholder for absent optional fields so printed
// receipts never show a blank cell.
func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

var receiptTemplate = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"orDash": orDash,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Shipment Receipt {{.Record.TrackingID}}</title>
<style>
body { font-family: sans-serif; color: #1f2937; margin: 40px; }
h1 { color: #0057ff; }
table { border-collapse: collapse; width: 100%; margin-bottom: 24px; }
td { padding: 6px 10px; border-bottom: 1px solid #e5e7eb; }
td.label { color: #6b7280; width: 180px; }
.stamp { color: #16a34a; font-weight: bold; font-size: 20px; }
.footer { color: #6b7280; font-size: 12px; border-top: 2px solid #cbd5e1; padding-top: 12px; }
</style>
</head>
<body>
<h1>LocatePro Logistics</h1>
<p>Your Reliable Logistics Partner</p>
{{if .QRCode}}<img src="{{.QRCode}}" alt="Scan to track" width="96" height="96">{{end}}

<h2>Shipment Details</h2>
<table>
<tr><td class="label">Tracking ID</td><td><strong>{{.Record.TrackingID}}</strong></td></tr>
<tr><td class="label">Status</td><td>{{orDash .Record.Status}}</td></tr>
<tr><td class="label">From</td><td>{{orDash .Record.Origin}}</td></tr>
<tr><td class="label">To</td><td>{{orDash .Record.Destination}}</td></tr>
<tr><td class="label">Current Location</td><td>{{orDash .Record.CurrentLocation}}</td></tr>
<tr><td class="label">Progress</td><td>{{printf "%.0f" .Progress}}%</td></tr>
<tr><td class="label">ETA</td><td>{{orDash .Record.ETA}}</td></tr>
<tr><td class="label">Freight Type</td><td>{{orDash .Record.FreightType}}</td></tr>
<tr><td class="label">Sender</td><td>{{orDash .Record.Sender}}</td></tr>
<tr><td class="label">Recipient</td><td>{{orDash .Record.Recipient}}</td></tr>
<tr><td class="label">Product</td><td>{{orDash .Record.Product}}</td></tr>
<tr><td class="label">Payment</td><td>{{orDash .Record.PaymentMethod}}</td></tr>
<tr><td class="label">Amount</td><td>{{orDash .Record.Cost}}</td></tr>
</table>

<h2>Tracking History</h2>
{{if .Record.Events}}
<table>
{{range .Record.Events}}
<tr><td class="label">{{orDash .Time}}</td><td>{{.Text}}{{if .Location}} ({{.Location}}){{end}}</td></tr>
{{end}}
</table>
{{else}}
<p>No history yet.</p>
{{end}}

{{if .Delivered}}<p class="stamp">DELIVERED</p>{{end}}

<div class="footer">
<p>Thank you for choosing LocatePro for your logistics needs!</p>
<p>This receipt is auto-generated on {{.Generated}}.</p>
</div>
</body>
</html>
`))
