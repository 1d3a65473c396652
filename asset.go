package image2gb

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bodgit/image2gb/tile"
)

const (
	// NameMax is the longest allowed asset name. The name seeds C
	// identifiers so it stays short enough to leave room for the
	// generated prefixes.
	NameMax = 28

	// BankMax is the last addressable ROM bank.
	BankMax = 255
)

var (
	errEmptyName = errors.New("image2gb: asset name is empty")
	errLongName  = fmt.Errorf("image2gb: asset name is longer than %d characters", NameMax)
	errBadName   = errors.New("image2gb: asset name must be a valid C identifier")
	errBadBank   = fmt.Errorf("image2gb: bank must be between 0 and %d", BankMax)
)

// Asset is the export configuration for one image: the base name used for
// the generated C identifiers and the ROM bank the data is placed in, 0
// meaning the default bank.
type Asset struct {
	Name string
	Bank int
}

func identifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func (a *Asset) validate() error {
	switch {
	case a.Name == "":
		return errEmptyName
	case len(a.Name) > NameMax:
		return errLongName
	case !identifier(a.Name):
		return errBadName
	case a.Bank < 0 || a.Bank > BankMax:
		return errBadBank
	}
	return nil
}

// The generated files follow the GBDK-2020 conventions: a doc comment
// summarizing the asset, BANKREF plumbing when the data lives outside the
// default bank, and a pair of unsigned char arrays for the tile data and
// the tile map.
const headerFormat = `/**
 * @file  %s.h
 * @brief %s, exported by Image2GB for use with GBDK-2020 - header.
 *
 * Unique tiles  : %d
 * Total tiles   : %d
 * Size (tiles)  : %dx%d
 * Size (pixels) : %dx%d
 * Bank          : %d
 */

#pragma once

%s

// CONSTANTS ///////////////////////////////////////////////////////////////////

#define GAME_BACKGROUNDS_%s_TILES %dU /**< How many unique tiles this background has. */

#define GAME_BACKGROUNDS_%s_SIZE_X %dU /**< Width of this background, in 8x8 tiles. */
#define GAME_BACKGROUNDS_%s_SIZE_Y %dU /**< Height of this background, in 8x8 tiles. */

/** %s (data), exported by Image2GB for use with GBDK-2020.
 */
extern const unsigned char BackgroundData%s[];

/** %s (map), exported by Image2GB for use with GBDK-2020.
 */
extern const unsigned char BackgroundMap%s[];
`

const sourceFormat = `/**
 * @file  %s.c
 * @brief %s, exported by Image2GB for use with GBDK-2020 - data.
 *
 * Unique tiles  : %d
 * Total tiles   : %d
 * Size (tiles)  : %dx%d
 * Size (pixels) : %dx%d
 * Bank          : %d
 */

#include "%s.h"

%s

// CONSTANTS ///////////////////////////////////////////////////////////////////

const unsigned char BackgroundData%s[] =
{
`

const sourceMapFormat = `};

/** %s (map), exported by Image2GB for use with GBDK-2020.
 */
const unsigned char BackgroundMap%s[] =
{
`

func (a *Asset) includes(bankref string) string {
	if a.Bank == 0 {
		return "#include <stdint.h>"
	}
	return fmt.Sprintf("#include <gb/gb.h>\n\n%s(GAME_BACKGROUNDS_%s)", bankref, strings.ToUpper(a.Name))
}

func (a *Asset) writeHeader(w io.Writer, res *Result) error {
	lower, upper := strings.ToLower(a.Name), strings.ToUpper(a.Name)

	_, err := fmt.Fprintf(w, headerFormat,
		lower, a.Name,
		res.UniqueTiles, res.TotalTiles, res.Width, res.Height,
		res.Width*tile.Size, res.Height*tile.Size,
		a.Bank,
		a.includes("BANKREF_EXTERN"),
		upper, res.UniqueTiles, upper, res.Width, upper, res.Height,
		a.Name, a.Name, a.Name, a.Name)

	return err
}

func (a *Asset) writeSource(w io.Writer, res *Result, tiles []tile.Data, tileMap []int) error {
	lower := strings.ToLower(a.Name)

	if _, err := fmt.Fprintf(w, sourceFormat,
		lower, a.Name,
		res.UniqueTiles, res.TotalTiles, res.Width, res.Height,
		res.Width*tile.Size, res.Height*tile.Size,
		a.Bank,
		lower,
		a.includes("BANKREF"),
		a.Name); err != nil {
		return err
	}

	if err := tile.WriteData(w, tiles, res.UniqueTiles); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, sourceMapFormat, a.Name, a.Name); err != nil {
		return err
	}

	if err := tile.WriteMap(w, tileMap, res.Width); err != nil {
		return err
	}

	_, err := fmt.Fprint(w, "\n};\n")

	return err
}
