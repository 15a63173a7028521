package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"piptrade/internal/core/record"
)

// dataError marks malformed or invalid input
type dataError struct{ err error }

func (e dataError) Error() string { return e.err.Error() }
func (e dataError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var de dataError
	if errors.As(err, &de) {
		return exitDataError
	}
	return exitError
}

// readDataset loads a bare array or a {"data": [...]} dump of GET /alldata
func readDataset(path string) ([]record.Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return parseDataset(raw)
}

func parseDataset(raw []byte) ([]record.Record, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, dataError{errors.New("empty dataset")}
	}

	var recs []record.Record
	if raw[0] == '{' {
		var dump struct {
			Data []record.Record `json:"data"`
		}
		if err := json.Unmarshal(raw, &dump); err != nil {
			return nil, dataError{fmt.Errorf("parsing dump: %w", err)}
		}
		recs = dump.Data
	} else if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, dataError{fmt.Errorf("parsing array: %w", err)}
	}

	// ids are assigned by the store
	for i := range recs {
		recs[i] = recs[i].WithID("")
	}
	return recs, nil
}
