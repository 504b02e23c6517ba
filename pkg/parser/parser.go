package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"github.com/yurifrl/bankstat/pkg/models"
)

const (
	// DateLayout is the only accepted date format (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	delimiter  = ","
	minFields  = 3
)

type Parser struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Parser {
	return &Parser{
		logger: logger,
	}
}

// ParseFile reads transactions from the CSV file at path.
//
// A file that cannot be opened or read is logged and yields no transactions
// with a nil error, so an empty result may mean either an empty export or an
// unreadable one. Only a malformed date or amount is returned as an error.
func (p *Parser) ParseFile(path string) ([]*models.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		p.logger.Error("failed to read transactions", "path", path, "error", err)
		return nil, nil
	}
	defer f.Close()

	txs, err := p.ParseReader(f)
	if err != nil {
		var fieldErr *FieldError
		if errors.As(err, &fieldErr) {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		p.logger.Error("failed to read transactions", "path", path, "error", err)
		return nil, nil
	}
	p.logger.Debug("parsed transactions", "path", path, "count", len(txs))
	return txs, nil
}

// ParseReader is ParseLines over the lines of r. Unlike ParseFile, read
// failures are returned.
func (p *Parser) ParseReader(r io.Reader) ([]*models.Transaction, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}
	return p.ParseLines(lines)
}

// ParseLines converts raw CSV lines (header first) into transactions, in
// input order. The header is discarded without validation.
func (p *Parser) ParseLines(lines []string) ([]*models.Transaction, error) {
	if len(lines) <= 1 {
		return nil, nil
	}

	txs := make([]*models.Transaction, 0, len(lines)-1)
	for i := 1; i < len(lines); i++ {
		tx, err := p.parseRow(i+1, lines[i])
		if err != nil {
			return nil, err
		}
		if tx == nil {
			continue
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// parseRow returns (nil, nil) for rows that are skipped and a *FieldError for
// rows whose date or amount is present but invalid.
func (p *Parser) parseRow(lineNumber int, line string) (*models.Transaction, error) {
	fields := strings.Split(line, delimiter)
	if len(fields) < minFields {
		p.logger.Debug("line has less than 3 fields, skipping", "line", lineNumber)
		return nil, nil
	}

	dateStr := strings.TrimSpace(fields[0])
	description := strings.TrimSpace(fields[1])
	amountStr := strings.TrimSpace(fields[2])
	if dateStr == "" || description == "" || amountStr == "" {
		p.logger.Debug("line has empty fields, skipping", "line", lineNumber)
		return nil, nil
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return nil, &FieldError{Line: lineNumber, Field: FieldDate, Value: dateStr, Err: err}
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, &FieldError{Line: lineNumber, Field: FieldAmount, Value: amountStr, Err: err}
	}

	return models.NewTransaction(date, description, amount), nil
}

// readLines splits r on '\n', dropping a trailing '\r'. Lines have no
// length limit.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
