package main

import (
	"log"
	"os"

	"github.com/osuushi/stit/advanced"
	"github.com/osuushi/stit/config"
	"github.com/osuushi/stit/export"
)

// Write every output that has a path, then the inline preview if asked for.
func writeOutputs(result advanced.Result, output config.Output) error {
	writers := []struct {
		path  string
		write func(string) error
	}{
		{output.PNG, func(path string) error { return export.WritePNG(path, result.Cells, output.Size) }},
		{output.DXF, func(path string) error { return export.WriteDXF(path, result.Cells) }},
		{output.PDF, func(path string) error { return export.WritePDF(path, result) }},
	}
	for _, w := range writers {
		if w.path == "" {
			continue
		}
		if err := w.write(w.path); err != nil {
			return err
		}
		log.Printf("wrote %s", w.path)
	}

	if output.Preview {
		return export.Preview(os.Stdout, result.Cells, output.Size)
	}
	return nil
}
