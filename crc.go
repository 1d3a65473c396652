package image2gb

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

// crcFile hashes the whole source file so a batch scan can tell whether
// an image changed since it was last exported.
func crcFile(file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := crc32.NewIEEE()
	if _, err = io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%.*X", crc32.Size<<1, h.Sum(nil)), nil
}
