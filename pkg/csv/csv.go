package csv

import (
	"bufio"
	"fmt"
	"io"

	"github.com/yurifrl/bankstat/pkg/aggregate"
)

// Header is the first line of every month-category report.
const Header = "month,category,amount"

// Write renders rows as month,category,amount lines with two-decimal amounts.
func Write(w io.Writer, rows []aggregate.Row) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(bw, "%s,%s,%s\n", r.Month, r.Category, r.Amount.StringFixed(2)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
