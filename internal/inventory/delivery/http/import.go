package http

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/vbms/inventory-service/internal/inventory/usecase/command"
)

// csvColumns are the recognized header names for CSV imports.
var csvColumns = map[string]func(*command.ImportRow, string){
	"sku":              func(r *command.ImportRow, v string) { r.SKU = v },
	"name":             func(r *command.ImportRow, v string) { r.Name = v },
	"barcode":          func(r *command.ImportRow, v string) { r.Barcode = v },
	"category":         func(r *command.ImportRow, v string) { r.Category = v },
	"quantity":         func(r *command.ImportRow, v string) { r.Quantity = v },
	"cost":             func(r *command.ImportRow, v string) { r.Cost = v },
	"selling_price":    func(r *command.ImportRow, v string) { r.SellingPrice = v },
	"reorder_point":    func(r *command.ImportRow, v string) { r.ReorderPoint = v },
	"reorder_quantity": func(r *command.ImportRow, v string) { r.ReorderQuantity = v },
	"maximum":          func(r *command.ImportRow, v string) { r.Maximum = v },
}

// ImportItems handles POST /api/inventory/import
//
// Accepts either a JSON body {"rows": [...]} or a multipart upload with a
// CSV "file" part. Rows are processed independently; a bad row is reported
// in the result and never aborts the batch.
func (h *InventoryHandler) ImportItems(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	var (
		rows        []command.ImportRow
		performedBy string
		err         error
	)

	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if contentType == "multipart/form-data" {
		rows, performedBy, err = rowsFromMultipart(r)
	} else {
		rows, performedBy, err = rowsFromJSON(r)
	}
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	result, err := h.importItems.Handle(command.ImportItemsCommand{
		OwnerID:     ownerID,
		Rows:        rows,
		PerformedBy: performedBy,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Import completed",
		Data:    result,
	})
}

func rowsFromJSON(r *http.Request) ([]command.ImportRow, string, error) {
	var req struct {
		Rows        []command.ImportRow `json:"rows"`
		PerformedBy string              `json:"performed_by"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, "", errInvalidBody
	}
	return req.Rows, req.PerformedBy, nil
}

func rowsFromMultipart(r *http.Request) ([]command.ImportRow, string, error) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		return nil, "", errInvalidBody
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, "", errMissingFile
	}
	defer file.Close()

	rows, err := parseCSV(file)
	if err != nil {
		return nil, "", err
	}
	return rows, r.FormValue("performed_by"), nil
}

// parseCSV reads a header row plus data rows into import rows. Unknown
// columns are ignored so exports from other tools import cleanly.
func parseCSV(reader io.Reader) ([]command.ImportRow, error) {
	cr := csv.NewReader(reader)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, errEmptyCSV
	}

	setters := make([]func(*command.ImportRow, string), len(header))
	for i, col := range header {
		setters[i] = csvColumns[strings.ToLower(strings.TrimSpace(col))]
	}

	var rows []command.ImportRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errMalformedCSV
		}
		var row command.ImportRow
		for i, value := range record {
			if i < len(setters) && setters[i] != nil {
				setters[i](&row, strings.TrimSpace(value))
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

var (
	errInvalidBody  = httpError("Invalid request body")
	errMissingFile  = httpError("Missing CSV file part")
	errEmptyCSV     = httpError("CSV file is empty")
	errMalformedCSV = httpError("Malformed CSV row")
)

type httpError string

func (e httpError) Error() string { return string(e) }
