/*
Package image2gb exports images as Game Boy background assets: a pair of
C source and header files ready to build with GBDK-2020, containing the
deduplicated tile data and the tile map that reassembles the image.
*/
package image2gb

import "log"

type Image2GB struct {
	db     *AssetDB
	logger *log.Logger
}

func New(db string, logger *log.Logger) (*Image2GB, error) {
	adb, err := NewAssetDB(db)
	if err != nil {
		return nil, err
	}

	return &Image2GB{
		db:     adb,
		logger: logger,
	}, nil
}

func (i *Image2GB) Close() error {
	return i.db.Close()
}
