package optimizer

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"transport-optimizer/internal/domain"
)

// Multipart field names expected by the optimization service.
const (
	FieldStockFile   = "stock_file"
	FieldCostRate    = "cost_rate"
	FieldMinQuantity = "min_quantity"
)

// encodeMultipart serializes the request as multipart/form-data and returns
// the body together with its Content-Type (including the boundary).
func encodeMultipart(req domain.OptimizationRequest) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile(FieldStockFile, req.Filename)
	if err != nil {
		return nil, "", fmt.Errorf("create %s part: %w", FieldStockFile, err)
	}
	if _, err := fw.Write(req.Dataset); err != nil {
		return nil, "", fmt.Errorf("write %s part: %w", FieldStockFile, err)
	}

	if err := mw.WriteField(FieldCostRate, req.CostRateString()); err != nil {
		return nil, "", fmt.Errorf("write %s field: %w", FieldCostRate, err)
	}
	if err := mw.WriteField(FieldMinQuantity, req.MinQuantityString()); err != nil {
		return nil, "", fmt.Errorf("write %s field: %w", FieldMinQuantity, err)
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}

	return &buf, mw.FormDataContentType(), nil
}
