package main

import (
	"encoding/json"
	"io"
	"os"

	"piptrade/internal/client"
	"piptrade/internal/core/chart"
	"piptrade/internal/core/filter"
)

const (
	formatSVG  = "svg"
	formatJSON = "json"
)

// openOut returns stdout for "-" and a created file otherwise
func openOut(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func write(w io.Writer, s *client.Session, format string) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s.Geometry())
	}
	surf := chart.NewSurface()
	if _, err := s.Render(surf); err != nil {
		return err
	}
	_, err := surf.WriteTo(w)
	return err
}

func writeOptions(w io.Writer, s *client.Session) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.Options())
}

func keyNames(ks []filter.Key) []string {
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = string(k)
	}
	return out
}
