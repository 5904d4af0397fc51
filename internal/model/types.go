/*
PURPOSE:
  Defines the core data structures used throughout client-data.
  A Client is one record of the data file.

REQUIREMENTS:
  User-specified:
  - Store account number, pin code, name, phone and balance.

  Implementation-discovered:
  - Need JSON tags for the JSON Lines export.
  - Field order on disk is fixed by internal/records, not by this struct.

ARCHITECTURE INTEGRATION:
  - Used by: internal/records, internal/output, internal/app
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.

USAGE:
  c := model.Client{AccountNumber: "A100", Name: "Alice", Balance: 250}

SELF-HEALING INSTRUCTIONS:
  - If a new column is needed, add the field here and update the codec and the CSV header.

RELATED FILES:
  - internal/records/codec.go
  - internal/output/csv.go

MAINTENANCE:
  - Update when the record layout changes.
*/

package model

// Client represents a single client record.
type Client struct {
	AccountNumber string  `json:"account_number"`
	PinCode       string  `json:"pin_code"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Balance       float64 `json:"balance"`
}
