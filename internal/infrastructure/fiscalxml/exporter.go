// Package fiscalxml genera la representación XML del comprobante para el
// archivo fiscal de la tienda.
package fiscalxml

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/tu-usuario/ventas-pos/internal/application/sales"
	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
)

var _ sales.ComprobanteXMLExporter = (*Exporter)(nil)

// Exporter serializa una venta como XML de archivo.
type Exporter struct {
	storeName string
	storeRUC  string
}

// NewExporter construye el exportador con los datos del emisor.
func NewExporter(storeName, storeRUC string) *Exporter {
	return &Exporter{storeName: storeName, storeRUC: storeRUC}
}

// Export genera el documento XML del comprobante.
func (e *Exporter) Export(sale *entity.Sale, items []*entity.SaleItem) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("comprobante")
	root.CreateAttr("numero", sale.Comprobante)
	root.CreateAttr("tipo", sale.DocumentType)
	root.CreateAttr("fecha", sale.Date.Format("2006-01-02"))

	emisor := root.CreateElement("emisor")
	emisor.CreateElement("razonSocial").SetText(e.storeName)
	if e.storeRUC != "" {
		emisor.CreateElement("ruc").SetText(e.storeRUC)
	}

	cliente := root.CreateElement("cliente")
	cliente.CreateElement("nombre").SetText(sale.CustomerName)
	if sale.CustomerTaxID != "" {
		cliente.CreateElement("identificacion").SetText(sale.CustomerTaxID)
	}
	if sale.CustomerAddress != "" {
		cliente.CreateElement("direccion").SetText(sale.CustomerAddress)
	}

	detalles := root.CreateElement("detalles")
	for _, it := range items {
		linea := detalles.CreateElement("linea")
		linea.CreateAttr("producto", it.ProductID)
		linea.CreateElement("descripcion").SetText(it.Description)
		linea.CreateElement("cantidad").SetText(it.Quantity.String())
		linea.CreateElement("precioUnitario").SetText(it.UnitPrice.StringFixed(2))
		linea.CreateElement("subtotal").SetText(it.Subtotal.StringFixed(2))
	}

	totales := root.CreateElement("totales")
	totales.CreateElement("subtotal").SetText(sale.Subtotal.StringFixed(2))
	totales.CreateElement("iva").SetText(sale.Tax.StringFixed(2))
	totales.CreateElement("descuento").SetText(sale.Discount.StringFixed(2))
	totales.CreateElement("total").SetText(sale.Total.StringFixed(2))

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializar comprobante XML: %w", err)
	}
	return out, nil
}
