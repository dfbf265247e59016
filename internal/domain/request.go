package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultDatasetFilename = "stock.csv"

// OptimizationRequest is one submission to the optimization service.
// It is built fresh per submission and discarded once the call resolves.
type OptimizationRequest struct {
	Dataset     []byte
	Filename    string
	CostRate    decimal.Decimal
	MinQuantity int
}

// BuildRequest validates the raw inputs and assembles an OptimizationRequest.
// It performs no I/O.
func BuildRequest(dataset []byte, costRate, minQuantity string) (OptimizationRequest, error) {
	return BuildRequestFile(DefaultDatasetFilename, dataset, costRate, minQuantity)
}

// BuildRequestFile is BuildRequest with the original file name of the dataset.
func BuildRequestFile(filename string, dataset []byte, costRate, minQuantity string) (OptimizationRequest, error) {
	if len(dataset) == 0 {
		return OptimizationRequest{}, &ValidationError{Message: MsgMissingDataset, Field: "stock_file"}
	}

	rate, err := parseCostRate(costRate)
	if err != nil {
		return OptimizationRequest{}, &ValidationError{Message: MsgInvalidParameter, Field: "cost_rate", Err: err}
	}

	minQty, err := parseMinQuantity(minQuantity)
	if err != nil {
		return OptimizationRequest{}, &ValidationError{Message: MsgInvalidParameter, Field: "min_quantity", Err: err}
	}

	filename = strings.TrimSpace(filename)
	if filename == "" {
		filename = DefaultDatasetFilename
	}

	return OptimizationRequest{
		Dataset:     dataset,
		Filename:    filename,
		CostRate:    rate,
		MinQuantity: minQty,
	}, nil
}

// decimal.NewFromString rejects NaN and infinities, so a successful parse is finite.
func parseCostRate(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, errors.New("cost_rate is empty")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse cost_rate %q: %w", s, err)
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("cost_rate must be positive, got %s", d)
	}

	return d, nil
}

func parseMinQuantity(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("min_quantity is empty")
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse min_quantity %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("min_quantity must be non-negative, got %d", n)
	}

	return n, nil
}

// CostRateString is the wire form of the cost rate.
func (r OptimizationRequest) CostRateString() string { return r.CostRate.String() }

// MinQuantityString is the wire form of the minimum quantity.
func (r OptimizationRequest) MinQuantityString() string { return strconv.Itoa(r.MinQuantity) }
