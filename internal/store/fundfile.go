package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/theirongolddev/rockpile/internal/model"
)

// DefaultFundFile is the fund file used when nothing else is configured.
const DefaultFundFile = "fund.json"

// SaveFund writes the whole fund to path as indented JSON.
// It writes path+".tmp" first and renames it over path.
func SaveFund(path string, f model.Fund) error {
	f.Normalize()

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating fund dir: %w", err)
		}
	}

	tmp := path + ".tmp"
	file, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating fund file: %w", err)
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		_ = file.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("encoding fund: %w", err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("writing fund file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing fund file: %w", err)
	}
	return nil
}

// LoadFund reads a fund previously written by SaveFund.
// Missing "members" or "expenses" load as empty lists.
func LoadFund(path string) (model.Fund, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-supplied on purpose
	if err != nil {
		return model.Fund{}, fmt.Errorf("reading fund file: %w", err)
	}

	var f model.Fund
	if err := json.Unmarshal(data, &f); err != nil {
		return model.Fund{}, fmt.Errorf("parsing fund file: %w", err)
	}
	f.Normalize()
	if err := f.Validate(); err != nil {
		return model.Fund{}, fmt.Errorf("invalid fund file: %w", err)
	}
	return f, nil
}

// LoadFundOrNew loads path, or returns an empty fund when the file does not exist.
func LoadFundOrNew(path string) (model.Fund, error) {
	f, err := LoadFund(path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.NewFund(), nil
	}
	return f, err
}
