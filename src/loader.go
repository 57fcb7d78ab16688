package numo

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// LoadProgram keeps only the digits of r, up to MaxCodeSize of them
func LoadProgram(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	code := make([]byte, 0, 256)
	for len(code) < MaxCodeSize {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if b >= '0' && b <= '9' {
			code = append(code, b)
		}
	}
	return code, nil
}

// LoadFile reads a program file
func LoadFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open file %s: %w", filename, err)
	}
	defer f.Close()

	code, err := LoadProgram(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read file %s: %w", filename, err)
	}
	return code, nil
}
