package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Keoroanthony/go-crm/internal/db"
	"github.com/Keoroanthony/go-crm/internal/models"
	"github.com/Keoroanthony/go-crm/internal/service"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "list <customers|products|orders>",
		Short:     "Print stored records as a table",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"customers", "products", "orders"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gdb, err := opts.openDB()
			if err != nil {
				return err
			}
			defer db.Close(gdb)

			q := service.NewQueryService(gdb)
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			switch args[0] {
			case "customers":
				customers, err := q.ListCustomers(ctx)
				if err != nil {
					return err
				}
				return renderCustomers(out, customers)
			case "products":
				products, err := q.ListProducts(ctx)
				if err != nil {
					return err
				}
				return renderProducts(out, products)
			default:
				orders, err := q.ListOrders(ctx)
				if err != nil {
					return err
				}
				return renderOrders(out, orders)
			}
		},
	}
}

func renderTable(w io.Writer, header []string, rows [][]string) error {
	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}

	table := tablewriter.NewWriter(w)
	table.Header(cells...)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	return table.Render()
}

func renderCustomers(w io.Writer, customers []models.Customer) error {
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		phone := ""
		if c.Phone != nil {
			phone = *c.Phone
		}
		rows = append(rows, []string{id(c.ID), c.Name, c.Email, phone})
	}
	return renderTable(w, []string{"ID", "Name", "Email", "Phone"}, rows)
}

func renderProducts(w io.Writer, products []models.Product) error {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{id(p.ID), p.Name, p.Price.StringFixed(2), strconv.Itoa(p.Stock)})
	}
	return renderTable(w, []string{"ID", "Name", "Price", "Stock"}, rows)
}

func renderOrders(w io.Writer, orders []models.Order) error {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		names := make([]string, 0, len(o.Products))
		for _, p := range o.Products {
			names = append(names, p.Name)
		}
		rows = append(rows, []string{
			id(o.ID),
			o.Customer.Email,
			strings.Join(names, ", "),
			o.TotalAmount.StringFixed(2),
			o.OrderDate.Format("2006-01-02 15:04"),
		})
	}
	return renderTable(w, []string{"ID", "Customer", "Products", "Total", "Order Date"}, rows)
}

func id(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
