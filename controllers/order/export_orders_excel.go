package orderControllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Dulanji-Amanda/SweetZone/store"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// GET /orders/export (admin)
func ExportOrdersToExcel(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "UserID", "PlacedAt", "PaymentMethod", "Address",
			"Subtotal", "DeliveryFee", "Total", "Items",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range orders.All() {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.UserID)
			row.AddCell().SetValue(o.PlacedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(string(o.PaymentMethod))
			row.AddCell().SetValue(o.Address)
			row.AddCell().SetValue(o.Subtotal)
			row.AddCell().SetValue(o.DeliveryFee)
			row.AddCell().SetValue(o.Total)

			var lines []string
			for _, item := range o.Items {
				lines = append(lines, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
			}
			row.AddCell().SetValue(strings.Join(lines, ", "))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
