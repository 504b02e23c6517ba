package service

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/yurifrl/bankstat/pkg/aggregate"
	"github.com/yurifrl/bankstat/pkg/categorizer"
	"github.com/yurifrl/bankstat/pkg/config"
	"github.com/yurifrl/bankstat/pkg/csv"
	"github.com/yurifrl/bankstat/pkg/models"
	"github.com/yurifrl/bankstat/pkg/parser"
)

const summaryTitle = "=== Spending / Income by Category ==="

type Processor struct {
	config      *config.Config
	logger      *log.Logger
	out         io.Writer
	parser      *parser.Parser
	categorizer *categorizer.Categorizer
}

// Result holds everything produced by one run.
type Result struct {
	Transactions  []*models.Transaction
	Totals        aggregate.Totals
	Rows          []aggregate.Row
	ReportPath    string
	ReportWritten bool
}

// NewProcessor builds a pipeline with the default rule table. The console
// summary is written to out.
func NewProcessor(config *config.Config, logger *log.Logger, out io.Writer) *Processor {
	return NewProcessorWithRules(config, logger, out, categorizer.DefaultRules())
}

func NewProcessorWithRules(config *config.Config, logger *log.Logger, out io.Writer, rules categorizer.Rules) *Processor {
	return &Processor{
		config:      config,
		logger:      logger,
		out:         out,
		parser:      parser.New(logger),
		categorizer: categorizer.New(rules),
	}
}

// Run parses, categorizes and aggregates inputPath, prints the summary and
// writes the month-category report. Only malformed dates or amounts fail the
// run; an unwritable report is logged and the run still succeeds.
func (p *Processor) Run(inputPath string) (*Result, error) {
	txns, err := p.parser.ParseFile(inputPath)
	if err != nil {
		return nil, err
	}
	p.categorizer.CategorizeAll(txns)

	res := &Result{
		Transactions: txns,
		Totals:       aggregate.TotalsByCategory(txns),
		Rows:         aggregate.MonthCategoryReport(txns),
		ReportPath:   p.config.Report.Path,
	}
	total := res.Totals.Sum()
	p.logger.Info("processed transactions", "path", inputPath, "count", len(txns), "categories", len(res.Totals), "total", total.StringFixed(2))
	if monthly := aggregate.SumRows(res.Rows); !monthly.Equal(total) {
		p.logger.Warn("category and monthly totals differ", "category_total", total.String(), "monthly_total", monthly.String())
	}

	p.PrintSummary(res.Totals)

	if err := p.WriteReport(res.ReportPath, res.Rows); err != nil {
		p.logger.Error("failed to write report", "path", res.ReportPath, "error", err)
		return res, nil
	}
	res.ReportWritten = true
	fmt.Fprintf(p.out, "Wrote category-by-month report to %s\n", res.ReportPath)
	return res, nil
}

// PrintSummary writes one line per category in lexicographic order.
func (p *Processor) PrintSummary(totals aggregate.Totals) {
	r := lipgloss.NewRenderer(p.out)
	titleStyle := r.NewStyle().Bold(true)

	fmt.Fprintln(p.out, titleStyle.Render(summaryTitle))
	for _, category := range totals.Categories() {
		fmt.Fprintf(p.out, "%-14s : %10s\n", category, totals[category].StringFixed(2))
	}
}

// WriteReport creates path and writes rows to it as CSV.
func (p *Processor) WriteReport(path string, rows []aggregate.Row) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating report file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing report file: %w", cerr)
		}
	}()

	if err := csv.Write(f, rows); err != nil {
		return fmt.Errorf("error writing report file: %w", err)
	}
	p.logger.Debug("wrote report", "path", path, "rows", len(rows))
	return nil
}
