// Package pdf renders the printable delivery challan that travels with a
// material transfer.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Transfer No + Date  │  Status + Priority           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FROM: sender + location     │  TO: receiver + location     │
//	│  DISPATCH: vehicle / driver / ETA                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qty | Item | Type | Unit | HSN                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: GSTIN + state + signature line                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/sitestock/sitestock-api/internal/application/document"
	"github.com/sitestock/sitestock-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoChallanGenerator implements document.ChallanGenerator using Maroto v2.
type MarotoChallanGenerator struct{}

func NewMarotoChallanGenerator() *MarotoChallanGenerator { return &MarotoChallanGenerator{} }

// GenerateChallanPDF renders the challan and returns its bytes.
func (g *MarotoChallanGenerator) GenerateChallanPDF(
	_ context.Context,
	data document.TransferDocumentData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Delivery Challan "+data.Transfer.TransferNo, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data.Transfer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(data.Transfer, data.FromUser, data.ToUser))
	m.AddRows(dispatchRow(data.Transfer, data.Vehicle))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(data.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range footerRows(data.Transfer) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate challan: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: transfer number + date (left), status + priority (right).
func headerRow(t *entity.MaterialTransfer) core.Row {
	date := t.RequestedDate.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("DELIVERY CHALLAN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(t.TransferNo, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 9,
			}),
		),
		col.New(5).Add(
			text.New("Date: "+date, props.Text{
				Size: 9, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New("Status: "+t.Status, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 7,
			}),
			text.New("Priority: "+t.Priority, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// partiesRow: sender on the left, receiver on the right.
func partiesRow(t *entity.MaterialTransfer, from, to *entity.User) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New("FROM", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(userLine(from), props.Text{Style: fontstyle.Bold, Size: 9, Top: 6}),
			text.New(t.FromLocation, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(userLine(to), props.Text{Style: fontstyle.Bold, Size: 9, Top: 6}),
			text.New(t.ToLocation, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// dispatchRow: vehicle, driver and ETA in a single band.
func dispatchRow(t *entity.MaterialTransfer, v *entity.Vehicle) core.Row {
	vehicle := "—"
	if v != nil {
		vehicle = v.RegistrationNo
		if v.Model != "" {
			vehicle += " (" + v.Model + ")"
		}
	}
	eta := "—"
	if t.ETAMinutes != nil {
		eta = strconv.Itoa(*t.ETAMinutes) + " min"
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DISPATCH", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Vehicle: %s   |   Driver: %s   |   ETA: %s",
				vehicle,
				nonEmpty(t.DriverName, "—"),
				eta,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Item", 5, align.Left),
		h("Type", 2, align.Center),
		h("Unit", 2, align.Center),
		h("HSN", 2, align.Right),
	)
}

// tableItemRows: one row per line item.
func tableItemRows(items []*entity.MaterialTransferItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		name := it.ItemName
		if it.ItemCode != "" {
			name = it.ItemCode + " · " + name
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				strconv.FormatInt(it.Quantity, 10),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				it.ItemType,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(it.Unit, "—"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(it.HSNCode, "—"),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// footerRows: GST details plus a signature line for the receiver.
func footerRows(t *entity.MaterialTransfer) []core.Row {
	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New(fmt.Sprintf("GSTIN: %s   |   State: %s (%s)",
				nonEmpty(t.GSTIn, "—"),
				nonEmpty(t.State, "—"),
				nonEmpty(t.StateCode, "—"),
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		)),
		row.New(6),
	}
	rows = append(rows, row.New(14).Add(
		col.New(6),
		col.New(6).Add(
			text.New("_______________________________", props.Text{
				Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Receiver's signature", props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	))
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Goods dispatched for site transfer, not for sale. "+
				"Retain this challan as proof of movement.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))
	return rows
}

func userLine(u *entity.User) string {
	if u == nil {
		return "—"
	}
	if u.Location != "" {
		return u.Name + " · " + u.Location
	}
	return u.Name
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
