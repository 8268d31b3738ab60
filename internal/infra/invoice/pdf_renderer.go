// Package invoice renders order confirmations into PDF documents.
package invoice

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"aquashop/config"
	"aquashop/internal/domain/entity"
	"aquashop/internal/domain/service"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultStoreName = "Mvs_Aqua - The Aquatic Habitat"
	defaultTagline   = "Specialty Catalog for Aquatic Life"

	qrImageSizeMM = 22
	qrPixels      = 192
)

// pdfRenderer implements service.InvoiceRenderer on top of gofpdf.
// Filenames follow {orderId}_{TYPE}_{unixMilli}.pdf so repeated renders of
// one order never collide.
type pdfRenderer struct {
	outputDir  string
	publicPath string
	baseURL    string
	storeName  string
	tagline    string
	logger     *slog.Logger
}

// NewPDFRenderer is the constructor for pdfRenderer.
// It ensures the output directory exists up front so a misconfigured path
// fails at startup rather than on the first confirmation.
func NewPDFRenderer(cfg *config.Config, logger *slog.Logger) (service.InvoiceRenderer, error) {
	invoiceCfg := cfg.Invoice
	if invoiceCfg == nil {
		return nil, errors.New("invoice configuration must be provided")
	}

	if err := os.MkdirAll(invoiceCfg.OutputDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create invoice output directory")
	}

	storeName := invoiceCfg.StoreName
	if storeName == "" {
		storeName = defaultStoreName
	}
	tagline := invoiceCfg.Tagline
	if tagline == "" {
		tagline = defaultTagline
	}

	return &pdfRenderer{
		outputDir:  invoiceCfg.OutputDir,
		publicPath: invoiceCfg.PublicPath,
		baseURL:    invoiceCfg.BaseURL,
		storeName:  storeName,
		tagline:    tagline,
		logger:     logger,
	}, nil
}

// Render draws a single CLIENT or AUDIT document and returns its public
// location. The location is returned only after the file has been fully
// written and closed.
func (r *pdfRenderer) Render(ctx context.Context, details *entity.InvoiceDetails) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, "render cancelled")
	}

	filename := fmt.Sprintf("%s_%s_%d.pdf", details.OrderID, details.Type, time.Now().UnixMilli())
	location := path.Join(r.publicPath, filename)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	r.drawHeader(pdf, details)
	r.drawCustomerBlock(pdf, details)
	r.drawItemsTable(pdf, details)
	r.drawFooter(pdf, details, location)

	if pdf.Err() {
		return "", errors.Wrap(pdf.Error(), "failed to assemble invoice document")
	}

	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, "render cancelled")
	}

	filePath := filepath.Join(r.outputDir, filename)
	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", errors.Wrapf(err, "failed to write invoice %s", filename)
	}

	r.logger.Debug("Rendered invoice",
		slog.String("order_id", details.OrderID),
		slog.String("type", details.Type.String()),
		slog.String("location", location),
	)

	return location, nil
}

func (r *pdfRenderer) drawHeader(pdf *gofpdf.Fpdf, details *entity.InvoiceDetails) {
	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 12, r.storeName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, r.tagline, "", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, details.Type.Label(), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Invoice ID: %s", details.OrderID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", details.InvoiceDate.Format("02 Jan 2006")), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func (r *pdfRenderer) drawCustomerBlock(pdf *gofpdf.Fpdf, details *entity.InvoiceDetails) {
	addr := details.CustomerAddress

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Customer Name: %s", details.CustomerName), "", 1, "L", false, 0, "")

	shipping := fmt.Sprintf("Shipping Address: %s, %s, %s - %s", addr.AddressLine1, addr.City, addr.State, addr.ZipCode)
	if addr.AddressLine2 != "" {
		shipping = fmt.Sprintf("Shipping Address: %s, %s, %s, %s - %s", addr.AddressLine1, addr.AddressLine2, addr.City, addr.State, addr.ZipCode)
	}
	pdf.CellFormat(0, 6, shipping, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Phone: %s", addr.PhoneNumber), "", 1, "L", false, 0, "")
	pdf.Ln(6)
}

func (r *pdfRenderer) drawItemsTable(pdf *gofpdf.Fpdf, details *entity.InvoiceDetails) {
	const (
		colItem  = 80.0
		colQty   = 25.0
		colPrice = 35.0
		colTotal = 40.0
	)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(colItem, 7, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colQty, 7, "Quantity", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colPrice, 7, "Unit Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colTotal, 7, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, item := range details.Items {
		pdf.CellFormat(colItem, 7, item.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(colQty, 7, fmt.Sprintf("%d", item.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(colPrice, 7, "Rs. "+item.Price.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, 7, "Rs. "+item.LineTotal().StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetDrawColor(170, 170, 170)
	pdf.SetLineWidth(0.3)
	left, _, right, _ := pdf.GetMargins()
	pageWidth, _ := pdf.GetPageSize()
	pdf.Line(left, pdf.GetY(), pageWidth-right, pdf.GetY())
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "GRAND TOTAL: Rs. "+details.TotalAmount.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.Ln(4)
}

func (r *pdfRenderer) drawFooter(pdf *gofpdf.Fpdf, details *entity.InvoiceDetails, location string) {
	pdf.SetFont("Helvetica", "", 9)

	if details.Type == entity.InvoiceTypeAudit {
		pdf.CellFormat(0, 5, fmt.Sprintf("Order Confirmed By: %s", details.ConfirmationName), "", 1, "R", false, 0, "")
		pdf.CellFormat(0, 5, fmt.Sprintf("Generated On: %s", time.Now().Format("02 Jan 2006 15:04:05")), "", 1, "R", false, 0, "")

		return
	}

	pdf.CellFormat(0, 5, "Thank you for your business!", "", 1, "L", false, 0, "")

	// Client invoices carry a QR code pointing back at the hosted document.
	if r.baseURL == "" {
		return
	}
	png, err := qrcode.Encode(r.baseURL+location, qrcode.Medium, qrPixels)
	if err != nil {
		pdf.SetError(errors.Wrap(err, "failed to encode invoice QR code"))

		return
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("invoice-qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("invoice-qr", pdf.GetX(), pdf.GetY()+2, qrImageSizeMM, qrImageSizeMM, false, opts, 0, "")
}
