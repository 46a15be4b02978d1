package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-dyn/val"

	"github.com/scott-cotton/cli"
)

func getDocFile(cfg *MainConfig, cc *cli.Context, path string) (*val.Value, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return cfg.decode(d)
}

// readDocs reads a file, or cc.In for "-", and decodes each
// "---"-separated document.
func readDocs(cfg *MainConfig, cc *cli.Context, path string) ([]*val.Value, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	raw := bytes.Split(in, []byte("\n---\n"))
	docs := make([]*val.Value, 0, len(raw))
	for i, d := range raw {
		v, err := cfg.decode(d)
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		docs = append(docs, v)
	}
	return docs, nil
}
