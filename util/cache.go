// util/cache.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// On-disk object cache for things that are expensive to recompute:
// extracted panel geometry and optimizer results, keyed by a
// caller-provided path (normally a hash of the inputs). Objects are
// msgpack-encoded and zstd-compressed.

func fullCachePath(path string) (string, error) {
	cd, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cd, "Ascent", path), nil
}

func CacheStoreObject(path string, obj any) error {
	path, err := fullCachePath(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	zw, err := zstd.NewWriter(f)
	if err != nil {
		return err
	}

	if err := msgpack.NewEncoder(zw).Encode(obj); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

func CacheRetrieveObject(path string, obj any) (time.Time, error) {
	path, err := fullCachePath(path)
	if err != nil {
		return time.Time{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return time.Time{}, err
	}

	zr, err := zstd.NewReader(f)
	if err != nil {
		return time.Time{}, err
	}
	defer zr.Close()

	return fi.ModTime(), msgpack.NewDecoder(zr).Decode(obj)
}
