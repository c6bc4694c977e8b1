package vendors

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"mandi/db"
	"mandi/models"
	"mandi/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ExportCatalogPDF renders the vendor's catalog as a printable PDF,
// one block per product with a QR shelf label encoding the product id.
func ExportCatalogPDF(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	vendorID := utils.GetUserIDFromContext(r.Context())
	if vendorID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var vendor models.User
	_ = db.UserCollection.FindOne(ctx, bson.M{"userid": vendorID}).Decode(&vendor)

	findOpts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := db.ProductCollection.Find(ctx, bson.M{"vendorid": vendorID}, findOpts)
	if err != nil {
		http.Error(w, "Could not retrieve products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var list []models.Product
	if err := cursor.All(ctx, &list); err != nil {
		http.Error(w, "Error reading product data", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	title := vendor.StoreName
	if title == "" {
		title = "Product Catalog"
	}
	pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 8, time.Now().Format("02 Jan 2006"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	imgOpts := gofpdf.ImageOptions{ImageType: "png"}

	for _, p := range list {
		if pdf.GetY() > 240 {
			pdf.AddPage()
		}

		y := pdf.GetY()

		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, p.Name, "", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "", 10)
		price := fmt.Sprintf("Rs. %.2f", p.Price)
		if p.DiscountedPrice > 0 && p.DiscountedPrice < p.Price {
			price = fmt.Sprintf("Rs. %.2f (MRP Rs. %.2f)", p.DiscountedPrice, p.Price)
		}
		status := "In stock"
		if !p.IsAvailable {
			status = "Unavailable"
		}
		pdf.MultiCell(140, 6, fmt.Sprintf(
			"Category: %s\n%s\nStock: %d - %s",
			p.Category, price, p.Stock, status,
		), "", "L", false)

		qrData := fmt.Sprintf("mandi://shop/%s/product/%s", vendorID, p.ProductID)
		if qrCode, err := qrcode.Encode(qrData, qrcode.Medium, 128); err == nil {
			name := "qr-" + p.ProductID
			pdf.RegisterImageOptionsReader(name, imgOpts, bytes.NewReader(qrCode))
			pdf.ImageOptions(name, 165, y, 25, 25, false, imgOpts, 0, "")
		}

		pdf.Ln(4)
		pdf.SetDrawColor(200, 200, 200)
		pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
		pdf.Ln(4)
	}

	if len(list) == 0 {
		pdf.SetFont("Arial", "I", 11)
		pdf.CellFormat(0, 10, "No products yet.", "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate catalog", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=catalog-"+vendorID+".pdf")
	w.Write(buf.Bytes())
}
