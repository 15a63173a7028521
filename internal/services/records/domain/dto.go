package domain

import "piptrade/internal/core/record"

// Messages the /alldata routes answer with
const (
	MsgSaved       = "Data saved successfully"
	MsgSaveFailed  = "An error occurred while saving data"
	MsgFetchFailed = "An error occurred while retrieving data"
)

// SavedResponse is the 201 body of POST /alldata
type SavedResponse struct {
	Message string          `json:"message" example:"Data saved successfully"`
	Data    []record.Record `json:"data"`
}

// ListResponse is the 200 body of GET /alldata
type ListResponse struct {
	Data []record.Record `json:"data"`
}

// FailureResponse is the 500 body of both /alldata routes
type FailureResponse struct {
	Error         string `json:"error" example:"An error occurred while retrieving data"`
	SpecificError string `json:"specificError" example:"timeout: context deadline exceeded"`
}
