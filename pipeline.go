package image2gb

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"
)

func isImage(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".png", ".gif":
		return true
	}
	return false
}

// assetName derives a C identifier from an image filename: extension
// dropped, anything that would be illegal replaced with an underscore,
// first letter upregulated, truncated to the allowed length.
func assetName(file string) string {
	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))

	b := []rune(name)
	for i, r := range b {
		switch {
		case r == '_', unicode.IsLetter(r):
		case unicode.IsDigit(r) && i > 0:
		default:
			b[i] = '_'
		}
	}

	if len(b) > NameMax {
		b = b[:NameMax]
	}
	b[0] = unicode.ToUpper(b[0])

	return string(b)
}

func (i *Image2GB) findImages(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() || !isImage(file) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (i *Image2GB) exportWorker(ctx context.Context, bank int, in <-chan string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			crc, err := crcFile(file)
			if err != nil {
				errc <- err
				return
			}

			// Unchanged since the last export?
			last, err := i.db.FindCRCBySource(file)
			if err != nil {
				errc <- err
				return
			}
			if last == crc {
				i.logger.Printf("Skipping \"%s\", unchanged\n", file)
				continue
			}

			asset := &Asset{
				Name: assetName(file),
				Bank: bank,
			}

			res, err := i.ExportFile(file, asset, filepath.Dir(file))
			if err != nil {
				errc <- err
				return
			}

			i.logger.Printf("Exported \"%s\" as %s, %d unique of %d tiles\n", file, asset.Name, res.UniqueTiles, res.TotalTiles)
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan walks path looking for images and exports each one next to its
// source, skipping any whose cataloged CRC is unchanged. All exported
// assets are placed in the given ROM bank.
func (i *Image2GB) Scan(path string, bank int) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := i.findImages(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for n := 0; n < 4; n++ {
		errc, err := i.exportWorker(ctx, bank, files)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
