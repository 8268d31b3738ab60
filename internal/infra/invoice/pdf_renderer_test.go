package invoice

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"aquashop/config"
	"aquashop/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) (*pdfRenderer, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Invoice = &config.InvoiceConfig{
		OutputDir:  dir,
		PublicPath: "/invoices",
		BaseURL:    "http://localhost:5000",
	}

	renderer, err := NewPDFRenderer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return renderer.(*pdfRenderer), dir
}

func testDetails(invoiceType entity.InvoiceType) *entity.InvoiceDetails {
	return &entity.InvoiceDetails{
		OrderID:      "ORD-1",
		CustomerName: "John Doe",
		CustomerAddress: entity.ShippingAddress{
			FullName:     "John Doe",
			AddressLine1: "123 Ocean Drive",
			City:         "Mumbai",
			State:        "Maharashtra",
			ZipCode:      "400001",
			Country:      "India",
			PhoneNumber:  "+919876543210",
		},
		Items: []entity.CartItem{
			{ProductID: "prod-001", Name: "Blue Tang", Price: decimal.NewFromInt(2500), Quantity: 1},
			{ProductID: "prod-002", Name: "Coral Frag", Price: decimal.NewFromInt(800), Quantity: 2},
		},
		TotalAmount:      decimal.NewFromInt(4100),
		ConfirmationName: "Jane",
		InvoiceDate:      time.Now(),
		Type:             invoiceType,
	}
}

func TestPDFRenderer_RenderClientAndAudit(t *testing.T) {
	renderer, dir := newTestRenderer(t)
	ctx := context.Background()

	clientLoc, err := renderer.Render(ctx, testDetails(entity.InvoiceTypeClient))
	require.NoError(t, err)
	auditLoc, err := renderer.Render(ctx, testDetails(entity.InvoiceTypeAudit))
	require.NoError(t, err)

	assert.NotEqual(t, clientLoc, auditLoc)
	assert.True(t, strings.HasPrefix(clientLoc, "/invoices/ORD-1_CLIENT_"))
	assert.True(t, strings.HasPrefix(auditLoc, "/invoices/ORD-1_AUDIT_"))
	assert.True(t, strings.HasSuffix(clientLoc, ".pdf"))

	for _, loc := range []string{clientLoc, auditLoc} {
		filePath := filepath.Join(dir, filepath.Base(loc))
		info, err := os.Stat(filePath)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestPDFRenderer_CancelledContext(t *testing.T) {
	renderer, dir := newTestRenderer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loc, err := renderer.Render(ctx, testDetails(entity.InvoiceTypeClient))
	assert.Error(t, err)
	assert.Empty(t, loc)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no file should be written for a cancelled render")
}

func TestPDFRenderer_MissingOutputDir(t *testing.T) {
	renderer, dir := newTestRenderer(t)

	// Point at a directory that no longer exists so the final flush fails.
	renderer.outputDir = filepath.Join(dir, "missing", "nested")

	loc, err := renderer.Render(context.Background(), testDetails(entity.InvoiceTypeAudit))
	assert.Error(t, err)
	assert.Empty(t, loc)
}

func TestNewPDFRenderer_MissingConfig(t *testing.T) {
	cfg := &config.Config{}

	renderer, err := NewPDFRenderer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
	assert.Nil(t, renderer)
}
