package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	config "github.com/goldenpalm/resort_backend/configs"
	"github.com/goldenpalm/resort_backend/models"
)

var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><style>
body { font-family: Georgia, serif; margin: 48px; color: #222; }
h1 { color: #8a6d1d; border-bottom: 2px solid #8a6d1d; padding-bottom: 8px; }
table { width: 100%; border-collapse: collapse; margin-top: 24px; }
td { padding: 8px 4px; border-bottom: 1px solid #ddd; }
td:first-child { color: #666; width: 40%; }
.total { font-size: 1.3em; font-weight: bold; }
.footer { margin-top: 48px; color: #999; font-size: 0.85em; }
</style></head>
<body>
<h1>Golden Palm Resort — Payment Receipt</h1>
<table>
<tr><td>Receipt for</td><td>{{.GuestName}}</td></tr>
<tr><td>Booking reference</td><td>{{.BookingReference}}</td></tr>
<tr><td>Transaction</td><td>{{.TransactionID}}</td></tr>
<tr><td>Payment method</td><td>{{.Method}}</td></tr>
<tr><td>Payment date</td><td>{{.PaymentDate}}</td></tr>
<tr class="total"><td>Amount</td><td>LKR {{.Amount}}</td></tr>
</table>
<p class="footer">Thank you for staying with Golden Palm Resort.</p>
</body>
</html>`))

// GenerateReceipt renders a PDF receipt for a completed payment, uploads it
// and stores the URL on the payment. Best-effort: callers run it in a
// goroutine and a failure only logs.
func GenerateReceipt(store Store, paymentID uuid.UUID) {
	payment, err := store.Payments().FindByID(paymentID)
	if err != nil {
		log.Printf("🔥 Receipt: payment %s not found: %v", paymentID, err)
		return
	}
	if payment.PaymentStatus != models.PaymentStatusCompleted || payment.PaymentDate == nil {
		return
	}

	guestName := ""
	reference := ""
	switch {
	case payment.Booking != nil:
		reference = payment.Booking.BookingReference
		guestName = payment.Booking.User.FullName()
	case payment.EventBooking != nil:
		reference = payment.EventBooking.BookingReference
		guestName = payment.EventBooking.ContactPerson
	}

	html, err := renderReceiptHTML(guestName, reference, payment)
	if err != nil {
		log.Printf("🔥 Receipt: failed to render HTML for payment %s: %v", paymentID, err)
		return
	}

	pdfBytes, err := renderPDF(html)
	if err != nil {
		log.Printf("🔥 Receipt: failed to render PDF for payment %s: %v", paymentID, err)
		return
	}

	url, err := uploadReceipt(pdfBytes, payment.TransactionID)
	if err != nil {
		log.Printf("🔥 Receipt: failed to upload receipt for payment %s: %v", paymentID, err)
		return
	}

	payment.ReceiptURL = &url
	if err := store.Payments().Save(payment); err != nil {
		log.Printf("🔥 Receipt: failed to save receipt URL for payment %s: %v", paymentID, err)
		return
	}
	log.Printf("✅ Receipt generated for payment %s", payment.TransactionID)
}

func renderReceiptHTML(guestName, reference string, payment *models.Payment) (string, error) {
	data := struct {
		GuestName        string
		BookingReference string
		TransactionID    string
		Method           string
		PaymentDate      string
		Amount           string
	}{
		GuestName:        guestName,
		BookingReference: reference,
		TransactionID:    payment.TransactionID,
		Method:           payment.PaymentMethod,
		PaymentDate:      payment.PaymentDate.Format("January 2, 2006"),
		Amount:           payment.Amount.StringFixed(2),
	}

	var rendered bytes.Buffer
	if err := receiptTemplate.Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}

func renderPDF(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadReceipt(fileBytes []byte, transactionID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("receipts/%s_%s", transactionID, uuid.New().String()),
		Folder:       "golden_palm_receipts",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}
	return uploadResult.SecureURL, nil
}
