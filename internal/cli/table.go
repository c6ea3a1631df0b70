package cli

import (
	"fmt"
	"strings"

	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/model"
)

// RenderAssociationTable renders the association result set as a styled
// table with tier and discount columns.
func RenderAssociationTable(associations []model.ProductPairAssociation, tiers model.TierScheme) string {
	if len(associations) == 0 {
		return SubtleStyle.Render("No associations to display. Run 'basket analyze' first.")
	}

	var sb strings.Builder

	header := fmt.Sprintf("%-10s %-28s %-10s %-28s %6s %8s %8s %6s %-12s %5s",
		"Product A", "Description", "Product B", "Description",
		"Count", "Supp AB", "Conf A→B", "Lift", "Tier", "Disc")
	sb.WriteString(TableHeaderStyle.Render(header))
	sb.WriteString("\n")

	for i := range associations {
		a := &associations[i]
		tier := tiers.Classify(a.Lift)
		row := fmt.Sprintf("%-10s %-28s %-10s %-28s %6d %8.4f %8.3f %6.2f %-12s %4d%%",
			a.StockCodeA,
			truncate(a.DescriptionA, 28),
			a.StockCodeB,
			truncate(a.DescriptionB, 28),
			a.PairCount,
			a.SupportAB,
			a.ConfidenceAToB,
			a.Lift,
			tier,
			tiers.Discount(tier))
		sb.WriteString(TableCellStyle.Render(row))
		sb.WriteString("\n")
	}

	return sb.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
