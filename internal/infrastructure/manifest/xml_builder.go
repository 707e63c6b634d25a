// Package manifest builds the dispatch manifest XML that accompanies a
// material transfer when it is exchanged with external ERP systems.
package manifest

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/sitestock/sitestock-api/internal/application/document"
	"github.com/sitestock/sitestock-api/internal/domain/entity"
)

const manifestNamespace = "urn:sitestock:dispatch-manifest:v1"

// XMLBuilder implements document.ManifestBuilder using etree.
type XMLBuilder struct{}

func NewXMLBuilder() *XMLBuilder { return &XMLBuilder{} }

// BuildManifestXML serializes the transfer into the manifest document.
func (b *XMLBuilder) BuildManifestXML(data document.TransferDocumentData) ([]byte, error) {
	if data.Transfer == nil {
		return nil, fmt.Errorf("manifest: transfer is required")
	}
	t := data.Transfer

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("DispatchManifest")
	root.CreateAttr("xmlns", manifestNamespace)
	root.CreateAttr("transferNo", t.TransferNo)

	header := root.CreateElement("Header")
	header.CreateElement("TransferID").SetText(t.ID)
	header.CreateElement("Status").SetText(t.Status)
	header.CreateElement("Priority").SetText(t.Priority)
	header.CreateElement("RequestedDate").SetText(t.RequestedDate.Format("2006-01-02"))
	header.CreateElement("InventoryType").SetText(t.InventoryType)
	if t.GSTIn != "" {
		tax := header.CreateElement("Tax")
		tax.CreateElement("GSTIN").SetText(t.GSTIn)
		tax.CreateElement("State").SetText(t.State)
		tax.CreateElement("StateCode").SetText(t.StateCode)
	}

	root.AddChild(partyElement("From", data.FromUser, t.FromLocation))
	root.AddChild(partyElement("To", data.ToUser, t.ToLocation))

	dispatch := root.CreateElement("Dispatch")
	if data.Vehicle != nil {
		vehicle := dispatch.CreateElement("Vehicle")
		vehicle.CreateElement("RegistrationNo").SetText(data.Vehicle.RegistrationNo)
		if data.Vehicle.Model != "" {
			vehicle.CreateElement("Model").SetText(data.Vehicle.Model)
		}
	}
	if t.DriverName != "" {
		dispatch.CreateElement("DriverName").SetText(t.DriverName)
	}
	if t.ETAMinutes != nil {
		dispatch.CreateElement("ETAMinutes").SetText(strconv.Itoa(*t.ETAMinutes))
	}

	items := root.CreateElement("Items")
	items.CreateAttr("count", strconv.Itoa(len(data.Items)))
	for _, it := range data.Items {
		item := items.CreateElement("Item")
		item.CreateAttr("id", it.ID)
		item.CreateElement("Code").SetText(it.ItemCode)
		item.CreateElement("Name").SetText(it.ItemName)
		item.CreateElement("Type").SetText(it.ItemType)
		qty := item.CreateElement("Quantity")
		qty.SetText(strconv.FormatInt(it.Quantity, 10))
		if it.Unit != "" {
			qty.CreateAttr("unit", it.Unit)
		}
		if it.HSNCode != "" {
			item.CreateElement("HSNCode").SetText(it.HSNCode)
		}
		if it.Notes != "" {
			item.CreateElement("Notes").SetText(it.Notes)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("manifest: serialize: %w", err)
	}
	return out, nil
}

func partyElement(tag string, u *entity.User, location string) *etree.Element {
	el := etree.NewElement(tag)
	if u != nil {
		el.CreateElement("UserID").SetText(u.ID)
		el.CreateElement("Name").SetText(u.Name)
		if u.Email != "" {
			el.CreateElement("Email").SetText(u.Email)
		}
	}
	el.CreateElement("Location").SetText(location)
	return el
}
