package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/rishitrebant/SoleConnect/catalog"
)

// ExportProductsToExcel streams the full catalog as an .xlsx download.
// GET /admin/products/export
func ExportProductsToExcel(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := store.All()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Brand", "Name", "Subtitle", "Price", "OriginalPrice",
			"Discount%", "Sizes", "Vendors", "LowestVendorPrice", "Description",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Brand)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Subtitle)
			row.AddCell().SetValue(p.Price.String())
			row.AddCell().SetValue(p.OriginalPrice.String())
			row.AddCell().SetValue(p.DiscountPercentage())

			var sizes []string
			for _, s := range p.Sizes {
				sizes = append(sizes, strconv.Itoa(s))
			}
			row.AddCell().SetValue(strings.Join(sizes, ","))

			var vendors []string
			for _, v := range p.Vendors {
				vendors = append(vendors, fmt.Sprintf("%s@%s", v.Name, v.Price.String()))
			}
			row.AddCell().SetValue(strings.Join(vendors, ";"))
			row.AddCell().SetValue(p.LowestVendorPrice().String())
			row.AddCell().SetValue(p.Description)
		}

		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
