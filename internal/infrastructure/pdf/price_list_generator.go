// Package pdf renders a distributor's current price list with Maroto v2.
//
// A4 layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: distributor name │ "Price List" + date             │
//	│  CONTACT: phone / address                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Material | Category | Mfr | Unit | Stock | Price    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/buildmate/buildmate-api/internal/application/usecase"
	"github.com/buildmate/buildmate-api/internal/domain/entity"
	"github.com/buildmate/buildmate-api/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.PriceListPDFGenerator = (*PriceListGenerator)(nil)

// PriceListGenerator implements usecase.PriceListPDFGenerator using Maroto v2.
type PriceListGenerator struct{}

// NewPriceListGenerator builds the generator.
func NewPriceListGenerator() *PriceListGenerator { return &PriceListGenerator{} }

// GeneratePriceList renders the PDF and returns its bytes.
func (g *PriceListGenerator) GeneratePriceList(
	_ context.Context,
	distributor *entity.User,
	items []repository.OwnPriceItem,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Price List", true).
		WithAuthor(distributor.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(distributor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(contactRow(distributor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, it := range items {
		m.AddRows(itemRow(it))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: distributor name (left) and title + date (right).
func headerRow(distributor *entity.User) core.Row {
	date := time.Now().Format("02/01/2006")
	return row.New(14).Add(
		col.New(7).Add(
			text.New(distributor.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Price List", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New(date, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func contactRow(distributor *entity.User) core.Row {
	contact := distributor.Email
	if distributor.Phone != "" {
		contact += "  ·  " + distributor.Phone
	}
	if distributor.Address != "" {
		contact += "  ·  " + distributor.Address
	}
	return row.New(6).Add(
		col.New(12).Add(
			text.New(contact, props.Text{Size: 8, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	return row.New(8).Add(
		col.New(4).Add(text.New("Material", header)),
		col.New(2).Add(text.New("Category", header)),
		col.New(2).Add(text.New("Manufacturer", header)),
		col.New(1).Add(text.New("Unit", header)),
		col.New(1).Add(text.New("Stock", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right})),
		col.New(2).Add(text.New("Price (₹)", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right})),
	)
}

func itemRow(it repository.OwnPriceItem) core.Row {
	name := it.MaterialName
	if it.Grade != "" {
		name += " · " + it.Grade
	}
	stock := "-"
	if it.Quantity != nil {
		stock = it.Quantity.String()
	}
	cell := props.Text{Size: 8}
	return row.New(6).Add(
		col.New(4).Add(text.New(name, cell)),
		col.New(2).Add(text.New(it.Category, cell)),
		col.New(2).Add(text.New(it.Manufacturer, cell)),
		col.New(1).Add(text.New(it.Unit, cell)),
		col.New(1).Add(text.New(stock, props.Text{Size: 8, Align: align.Right})),
		col.New(2).Add(text.New(it.Price.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
	)
}
