package lib

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mholt/archiver"
)

func Exists(path string) bool {
	if _, err := os.Stat(path); err == nil {
		return true
	} else if os.IsNotExist(err) {
		return false
	}

	return true
}

/*
	return an encoded object as bytes
*/
func Marshal(v interface{}) ([]byte, error) {
	b := new(bytes.Buffer)
	err := gob.NewEncoder(b).Encode(v)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

/*
	return a decoded object from bytes
*/
func Unmarshal(data []byte, v interface{}) error {
	b := bytes.NewBuffer(data)
	return gob.NewDecoder(b).Decode(v)
}

/*
	Normalize resolves a path to its absolute, cleaned form.
*/
func Normalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, err
	}

	return filepath.Clean(abs), nil
}

/*
	BackupProject zips the project file next to itself before an
	in-place rewrite. Returns the archive path.
*/
func BackupProject(path string) (string, error) {
	stamp := time.Now().Format("20060102-150405")
	dst := fmt.Sprintf("%s.backup-%s.zip", path, stamp)

	if err := archiver.Archive([]string{path}, dst); err != nil {
		return "", fmt.Errorf("backup project: %w", err)
	}

	return dst, nil
}
