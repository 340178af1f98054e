package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Numbers loads an integer dataset from path. The format is a count
// header line followed by one integer per line; the header is advisory
// and lines beyond it are still read. Malformed lines are skipped.
func Numbers(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)

	var capacity int
	if sc.Scan() {
		capacity, _ = strconv.Atoi(strings.TrimSpace(sc.Text()))
	}

	out := make([]int, 0, max(capacity, 0))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("dataset: %s: %w", path, ErrEmptyDataset)
	}

	return out, nil
}

// SaveNumbers writes values to path in the Numbers format, creating the
// parent directory when needed.
func SaveNumbers(path string, values []int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("dataset: mkdir for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, len(values))
	for _, v := range values {
		fmt.Fprintln(w, v)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("dataset: write %s: %w", path, err)
	}

	return f.Close()
}

// Students loads student records from a CSV file with columns
// name,birthdate,neighborhood,city. Rows with a wrong column count are
// skipped.
func Students(path string) ([]Student, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var out []Student
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read %s: %w", path, err)
		}
		if len(record) != 4 {
			continue
		}
		out = append(out, Student{
			Name:         strings.TrimSpace(record[0]),
			BirthDate:    strings.TrimSpace(record[1]),
			Neighborhood: strings.TrimSpace(record[2]),
			City:         strings.TrimSpace(record[3]),
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("dataset: %s: %w", path, ErrEmptyDataset)
	}

	return out, nil
}

// SaveStudents writes records to path as CSV, creating the parent
// directory when needed.
func SaveStudents(path string, records []Student) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("dataset: mkdir for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, s := range records {
		if err := w.Write([]string{s.Name, s.BirthDate, s.Neighborhood, s.City}); err != nil {
			return fmt.Errorf("dataset: write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("dataset: write %s: %w", path, err)
	}

	return f.Close()
}
