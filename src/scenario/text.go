package scenario

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads the text scenario format.
func Parse(r io.Reader) (*Scenario, error) {
	scanner := bufio.NewScanner(r)
	var (
		header  []int
		records []record
		line    int
	)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if header == nil {
			fields, err := parseInts(text, 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %v", line, ErrHeader, err)
			}
			header = fields
			continue
		}
		fields, err := parseInts(text, 3)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", line, ErrRecord, err)
		}
		records = append(records, record{Time: fields[0], Src: fields[1], Dest: fields[2], line: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	if header == nil {
		return nil, ErrHeader
	}
	return build(header[0], header[1], records)
}

func parseInts(text string, n int) ([]int, error) {
	fields := strings.Fields(text)
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d fields, got %d", n, len(fields))
	}
	values := make([]int, n)
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
